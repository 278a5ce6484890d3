// activate.go resolves the SsmsMin executable, once per process.
//
// Resolution is lazy: nothing is downloaded until a command actually needs
// the tool. The outcome is held as an explicit result value rather than an
// error return, so a failed download does not fail the command that
// triggered it - the failure surfaces when a launch is attempted, with the
// recorded reason.

package ssms

import (
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"time"

	"github.com/jpl-au/sqlmate/internal/download"
	"github.com/jpl-au/sqlmate/internal/telemetry"
)

const (
	// executableName is the file SsmsMin installs as.
	executableName = "SsmsMin.exe"

	// defaultDownloadURL is where the helper is fetched from when ssms.url
	// is not configured.
	defaultDownloadURL = "https://download.microsoft.com/download/ssmsmin/" + executableName
)

// ErrWrongPlatform is returned on hosts that cannot run the tool.
var ErrWrongPlatform = errors.New("SSMS dialogs require Windows")

// resolveTool locates or downloads SsmsMin, recording the startup telemetry
// events. The first caller pays the download; later callers get the cached
// result, success or failure alike. The result is assigned exactly once.
func (e *Extension) resolveTool(ctx context.Context) download.Result {
	e.resolveOnce.Do(func() {
		if runtime.GOOS != "windows" {
			e.resolved = download.Result{Err: ErrWrongPlatform}
			return
		}

		begin := time.Now()
		e.resolved = download.Resolve(ctx, e.downloadConfig())

		if e.resolved.OK() {
			telemetry.Event("startup/ExtensionStarted").
				Prop("installationTime", e.resolved.Duration.Milliseconds()).
				Prop("beginningTimestamp", begin.UnixMilli()).
				Write(nil)
		} else {
			telemetry.Event("startup/ExtensionInitializationFailed").Write(e.resolved.Err)
		}
	})
	return e.resolved
}

// downloadConfig merges the tool location settings with the ambient proxy
// configuration.
func (e *Extension) downloadConfig() download.Config {
	url := e.cfg.SSMS.URL
	if url == "" {
		url = defaultDownloadURL
	}
	dir := e.cfg.SSMS.Dir
	if dir == "" {
		dir = filepath.Join(e.cfg.Dir(), "tools", "ssmsmin")
	}
	return download.Config{
		DownloadURL:    url,
		InstallDir:     dir,
		ExecutableName: executableName,
		ProxyURL:       e.cfg.Proxy(),
		StrictSSL:      e.cfg.StrictSSL(),
	}
}
