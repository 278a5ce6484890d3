package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// A failing command still opens and closes the telemetry store cleanly:
// the events database exists after a non-zero exit.
func TestTelemetryPersistsOnFailedCommand(t *testing.T) {
	e := newTestEnv(t)

	out, err := e.runErr("connection", "use", "nosuch")
	assert.Error(t, err)
	e.contains(out, "nosuch")

	_, statErr := os.Stat(filepath.Join(e.dir, ".sqlmate", "telemetry", "events.db"))
	assert.NoError(t, statErr)
}
