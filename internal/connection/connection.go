// Package connection manages named connection profiles. Profiles live in
// connections.yaml alongside the active config scope; the file records which
// profile is active so commands can run without naming one every time.
package connection

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Authentication modes.
const (
	AuthSQL        = "sql"        // SQL login, password sent to the tool's stdin
	AuthAAD        = "aad"        // federated mode, no password transmitted
	AuthIntegrated = "integrated" // Windows integrated security
)

var (
	// ErrNotFound is returned when a named profile does not exist.
	ErrNotFound = errors.New("connection not found")
	// ErrDuplicate is returned when adding a profile whose name is taken.
	ErrDuplicate = errors.New("connection already exists")
	// ErrNoActive is returned when no profile is selected and none is active.
	ErrNoActive = errors.New("no active connection - run: sqlmate connection use <name>")
)

// Profile is one saved connection.
type Profile struct {
	Name     string `yaml:"name"`
	Server   string `yaml:"server"`
	Database string `yaml:"database,omitempty"`
	User     string `yaml:"user,omitempty"`
	Password string `yaml:"password,omitempty"`
	Auth     string `yaml:"auth,omitempty"` // sql (default), aad, integrated
}

// UseAAD reports whether the profile uses federated authentication.
func (p Profile) UseAAD() bool {
	return p.Auth == AuthAAD
}

// AuthMode returns the profile's authentication mode, defaulting to sql.
func (p Profile) AuthMode() string {
	if p.Auth == "" {
		return AuthSQL
	}
	return p.Auth
}

// file is the YAML shape of connections.yaml.
type file struct {
	Active   string    `yaml:"active,omitempty"`
	Profiles []Profile `yaml:"profiles,omitempty"`
}

// Store reads and writes connection profiles.
type Store struct {
	path string
	data file
}

// Open loads the store from dir/connections.yaml. A missing file yields an
// empty store.
func Open(dir string) (*Store, error) {
	path := filepath.Join(dir, "connections.yaml")
	s := &Store{path: path}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("malformed connections file %s: %w", path, err)
	}
	return s, nil
}

// Path returns the file this store persists to.
func (s *Store) Path() string { return s.path }

// List returns all profiles sorted by name.
func (s *Store) List() []Profile {
	out := make([]Profile, len(s.data.Profiles))
	copy(out, s.data.Profiles)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Get returns the named profile.
func (s *Store) Get(name string) (Profile, error) {
	for _, p := range s.data.Profiles {
		if p.Name == name {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Add appends a new profile. The first profile added becomes active.
func (s *Store) Add(p Profile) error {
	if p.Name == "" {
		return errors.New("connection name required")
	}
	if p.Server == "" {
		return errors.New("connection server required")
	}
	if _, err := s.Get(p.Name); err == nil {
		return fmt.Errorf("%w: %s", ErrDuplicate, p.Name)
	}
	s.data.Profiles = append(s.data.Profiles, p)
	if s.data.Active == "" {
		s.data.Active = p.Name
	}
	return nil
}

// Remove deletes the named profile, clearing the active marker if it pointed
// at it.
func (s *Store) Remove(name string) error {
	for i, p := range s.data.Profiles {
		if p.Name == name {
			s.data.Profiles = append(s.data.Profiles[:i], s.data.Profiles[i+1:]...)
			if s.data.Active == name {
				s.data.Active = ""
			}
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, name)
}

// SetActive marks the named profile as the default.
func (s *Store) SetActive(name string) error {
	if _, err := s.Get(name); err != nil {
		return err
	}
	s.data.Active = name
	return nil
}

// ActiveName returns the name of the active profile, or "".
func (s *Store) ActiveName() string { return s.data.Active }

// Resolve returns the named profile, or the active one when name is empty.
func (s *Store) Resolve(name string) (Profile, error) {
	if name != "" {
		return s.Get(name)
	}
	if s.data.Active == "" {
		return Profile{}, ErrNoActive
	}
	return s.Get(s.data.Active)
}

// Save writes the store back to disk with user-only permissions: profiles
// may carry passwords.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	raw, err := yaml.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("marshalling connections: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0600); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}
