package connection

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile(name string) Profile {
	return Profile{
		Name:   name,
		Server: "tcp:db.example.com,1433",
		User:   "sa",
		Auth:   AuthSQL,
	}
}

func TestStore_AddGetRemove(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Add(testProfile("prod")))
	require.NoError(t, s.Add(testProfile("staging")))

	got, err := s.Get("prod")
	require.NoError(t, err)
	assert.Equal(t, "tcp:db.example.com,1433", got.Server)

	err = s.Add(testProfile("prod"))
	assert.ErrorIs(t, err, ErrDuplicate)

	require.NoError(t, s.Remove("staging"))
	_, err = s.Get("staging")
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.Remove("staging")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Active(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	// No profiles: resolving the active profile fails clearly
	_, err = s.Resolve("")
	assert.ErrorIs(t, err, ErrNoActive)

	// First added profile becomes active
	require.NoError(t, s.Add(testProfile("prod")))
	assert.Equal(t, "prod", s.ActiveName())

	require.NoError(t, s.Add(testProfile("staging")))
	require.NoError(t, s.SetActive("staging"))

	got, err := s.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "staging", got.Name)

	// Explicit name overrides active
	got, err = s.Resolve("prod")
	require.NoError(t, err)
	assert.Equal(t, "prod", got.Name)

	assert.ErrorIs(t, s.SetActive("missing"), ErrNotFound)

	// Removing the active profile clears the marker
	require.NoError(t, s.Remove("staging"))
	_, err = s.Resolve("")
	assert.ErrorIs(t, err, ErrNoActive)
}

func TestStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)
	p := testProfile("prod")
	p.Password = "hunter2"
	require.NoError(t, s.Add(p))
	require.NoError(t, s.Save())

	reloaded, err := Open(dir)
	require.NoError(t, err)
	got, err := reloaded.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "prod", got.Name)
	assert.Equal(t, "hunter2", got.Password)

	if runtime.GOOS != "windows" {
		info, err := os.Stat(filepath.Join(dir, "connections.yaml"))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	}
}

func TestProfile_UseAAD(t *testing.T) {
	assert.True(t, Profile{Auth: AuthAAD}.UseAAD())
	assert.False(t, Profile{Auth: AuthSQL}.UseAAD())
	assert.False(t, Profile{}.UseAAD())
	assert.Equal(t, AuthSQL, Profile{}.AuthMode())
}
