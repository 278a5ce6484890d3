// flags.go defines constants for all CLI flag names.
//
// Using constants instead of string literals prevents typos and enables
// compile-time checking when flag names are used in both Flags().Type()
// definitions and GetType() calls.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "dry-run" -> FlagDryRun).

package extension

// Flag name constants for CLI commands.
// These are used with cobra's Flags().Type() and GetType() methods.
const (
	// Boolean flags

	FlagDiff   = "diff"    // Show a diff preview instead of writing
	FlagForce  = "force"   // Skip confirmation / overwrite
	FlagList   = "list"    // List mode (no interactive prompt)
	FlagLocal  = "local"   // Use local scope config
	FlagNoWait = "no-wait" // Return without waiting for the spawned process

	// String flags

	FlagAt       = "at"       // Cursor position (e.g., "12" or "12:5")
	FlagAuth     = "auth"     // Authentication mode (sql, aad, integrated)
	FlagDatabase = "database" // Database name
	FlagLines    = "lines"    // Line range specification (e.g., "10:20")
	FlagPassword = "password" // Connection password
	FlagServer   = "server"   // Server address
	FlagURN      = "urn"      // Object URN inside the external tool
	FlagUse      = "use"      // Provider name to use, bypassing the picker
	FlagUser     = "user"     // Login user name
)
