package download

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const toolBytes = "#!/bin/sh\necho ssmsmin\n"

func server(t *testing.T, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(toolBytes))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestResolve_Downloads(t *testing.T) {
	srv := server(t, http.StatusOK)
	dir := t.TempDir()

	res := Resolve(context.Background(), Config{
		DownloadURL:    srv.URL,
		InstallDir:     dir,
		ExecutableName: "ssmsmin",
		StrictSSL:      true,
	})

	require.True(t, res.OK(), "resolve failed: %v", res.Err)
	assert.Equal(t, filepath.Join(dir, "ssmsmin"), res.Path)

	data, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	assert.Equal(t, toolBytes, string(data))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(res.Path)
		require.NoError(t, err)
		assert.NotZero(t, info.Mode()&0111, "downloaded tool should be executable")
	}
}

func TestResolve_LocatesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ssmsmin")
	require.NoError(t, os.WriteFile(path, []byte("installed"), 0755))

	// No URL configured: resolution must still succeed from disk
	res := Resolve(context.Background(), Config{
		InstallDir:     dir,
		ExecutableName: "ssmsmin",
	})

	require.True(t, res.OK())
	assert.Equal(t, path, res.Path)
}

func TestResolve_FailureIsAValue(t *testing.T) {
	t.Run("http error", func(t *testing.T) {
		srv := server(t, http.StatusNotFound)
		res := Resolve(context.Background(), Config{
			DownloadURL:    srv.URL,
			InstallDir:     t.TempDir(),
			ExecutableName: "ssmsmin",
		})

		assert.False(t, res.OK())
		assert.Error(t, res.Err)
		assert.Empty(t, res.Path)
	})

	t.Run("no URL", func(t *testing.T) {
		res := Resolve(context.Background(), Config{
			InstallDir:     t.TempDir(),
			ExecutableName: "ssmsmin",
		})

		assert.False(t, res.OK())
		assert.ErrorIs(t, res.Err, ErrNoURL)
	})

	t.Run("failed download leaves nothing behind", func(t *testing.T) {
		srv := server(t, http.StatusInternalServerError)
		dir := t.TempDir()

		res := Resolve(context.Background(), Config{
			DownloadURL:    srv.URL,
			InstallDir:     dir,
			ExecutableName: "ssmsmin",
		})
		require.False(t, res.OK())

		// A later resolve must not find a half-installed tool
		assert.NoFileExists(t, filepath.Join(dir, "ssmsmin"))
	})
}

func TestHTTPClient_Proxy(t *testing.T) {
	client, err := httpClient(Config{ProxyURL: "http://proxy.corp:8080", StrictSSL: true})
	require.NoError(t, err)

	transport := client.Transport.(*http.Transport)
	require.NotNil(t, transport.Proxy)

	req, _ := http.NewRequest(http.MethodGet, "http://example.com", nil)
	proxyURL, err := transport.Proxy(req)
	require.NoError(t, err)
	assert.Equal(t, "http://proxy.corp:8080", proxyURL.String())

	// Strict SSL keeps certificate verification on
	assert.Nil(t, transport.TLSClientConfig)
}

func TestHTTPClient_InsecureSSL(t *testing.T) {
	client, err := httpClient(Config{StrictSSL: false})
	require.NoError(t, err)

	transport := client.Transport.(*http.Transport)
	require.NotNil(t, transport.TLSClientConfig)
	assert.True(t, transport.TLSClientConfig.InsecureSkipVerify)
}
