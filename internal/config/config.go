// Package config provides reading and writing of sqlmate configuration.
// Supports both global (~/.sqlmate/config.yaml) and local (.sqlmate/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.sqlmate/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is repository-specific config in .sqlmate/config.yaml
	ScopeLocal
)

// HTTP holds proxy settings consumed when downloading external tools.
type HTTP struct {
	Proxy     string `yaml:"proxy,omitempty"`
	StrictSSL *bool  `yaml:"strict_ssl,omitempty"`
}

// SSMS holds overrides for the SsmsMin tool location.
type SSMS struct {
	URL string `yaml:"url,omitempty"` // download URL override
	Dir string `yaml:"dir,omitempty"` // install directory override
}

// ExecFormatter describes a user-configured formatter that pipes document
// content through an external command. These appear in the format picker
// alongside the built-in providers.
type ExecFormatter struct {
	Name     string   `yaml:"name"`
	Command  string   `yaml:"command"`
	Args     []string `yaml:"args,omitempty"`
	Dialects []string `yaml:"dialects,omitempty"` // empty means all dialects
}

// Config contains configuration for sqlmate.
type Config struct {
	HTTP       HTTP            `yaml:"http,omitempty"`
	SSMS       SSMS            `yaml:"ssms,omitempty"`
	Formatters []ExecFormatter `yaml:"formatters,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are well-formed.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.HTTP.Proxy != "" {
		if _, err := url.Parse(c.HTTP.Proxy); err != nil {
			return fmt.Errorf("%w: http.proxy is not a valid URL: %v", ErrInvalidValue, err)
		}
	}
	for i, f := range c.Formatters {
		if f.Name == "" {
			return fmt.Errorf("%w: formatters[%d] has no name", ErrInvalidValue, i)
		}
		if f.Command == "" {
			return fmt.Errorf("%w: formatter %q has no command", ErrInvalidValue, f.Name)
		}
	}
	return nil
}

// StrictSSL returns whether TLS certificates are verified on downloads
// (defaults to true).
func (c *Config) StrictSSL() bool {
	if c.HTTP.StrictSSL == nil {
		return true
	}
	return *c.HTTP.StrictSSL
}

// Proxy returns the HTTP proxy URL, or empty for direct connections.
func (c *Config) Proxy() string {
	return c.HTTP.Proxy
}

// HomeDir returns the sqlmate user directory (~/.sqlmate).
// Falls back to the current directory when the home directory is unknown.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".sqlmate"
	}
	return filepath.Join(home, ".sqlmate")
}

// LocalPath returns the path to the local (repository) config file.
func LocalPath() string {
	return filepath.Join(".sqlmate", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.sqlmate/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sqlmate", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	// Check if local config exists
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	// Fall back to global
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Dir returns the directory holding this config file. Sibling files
// (connections.yaml) live in the same directory.
func (c *Config) Dir() string {
	if c.path != "" {
		return filepath.Dir(c.path)
	}
	return HomeDir()
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
