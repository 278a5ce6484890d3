// Package all imports all core sqlmate extensions.
// Import this package to register all built-in commands.
package all

import (
	// Core extensions - each registers itself via init()
	_ "github.com/jpl-au/sqlmate/extension/connection"
	_ "github.com/jpl-au/sqlmate/extension/core"
	_ "github.com/jpl-au/sqlmate/extension/format"
	_ "github.com/jpl-au/sqlmate/extension/ssms"
)
