// context.go defines the Context interface for extension access to sqlmate internals.
//
// Separated from extension.go to isolate dependency injection concerns.
// The Context provides a controlled surface area for extensions - they can
// access what they need without reaching into arbitrary internals.
//
// Design: Context uses an interface to enable testing with mock implementations.
// Extensions receive Context during Init(), not at construction, to support
// the two-phase initialization pattern where extensions register before
// the shared services are available.

package extension

import (
	"github.com/jpl-au/sqlmate/internal/config"
	"github.com/jpl-au/sqlmate/internal/connection"
	"github.com/jpl-au/sqlmate/internal/pick"
)

// Context provides extensions controlled access to sqlmate internals.
// Extensions receive this during initialisation to access shared resources.
type Context interface {
	// Config returns user configuration for respecting user preferences.
	Config() *config.Config

	// Connections returns the connection profile store.
	Connections() *connection.Store

	// Picker returns the selection prompt used by interactive commands.
	Picker() pick.Picker
}

// extContext implements Context.
type extContext struct {
	cfg    *config.Config
	conns  *connection.Store
	picker pick.Picker
}

// NewContext creates a new extension context.
func NewContext(cfg *config.Config, conns *connection.Store, picker pick.Picker) Context {
	return &extContext{
		cfg:    cfg,
		conns:  conns,
		picker: picker,
	}
}

// Config returns the loaded user configuration.
func (c *extContext) Config() *config.Config {
	return c.cfg
}

// Connections returns the connection profile store.
func (c *extContext) Connections() *connection.Store {
	return c.conns
}

// Picker returns the selection prompt.
func (c *extContext) Picker() pick.Picker {
	return c.picker
}
