/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Separated from root.go to isolate the initialisation logic that loads
// config, opens the connection store, and wires up extensions.
//
// Design: Extensions register during init() but aren't initialised until
// first command execution. This two-phase pattern allows extensions to
// declare commands before any configuration exists. The shared context is
// created once and injected into all extensions.

package cmd

import (
	"fmt"
	"sync"

	"github.com/jpl-au/sqlmate/extension"
	"github.com/jpl-au/sqlmate/internal/config"
	"github.com/jpl-au/sqlmate/internal/connection"
	"github.com/jpl-au/sqlmate/internal/pick"
	"github.com/jpl-au/sqlmate/internal/telemetry"
)

// standaloneCommands lists commands that bypass automatic context
// initialisation. Built dynamically from extension-declared standalone
// commands.
var standaloneCommands map[string]bool

// buildStandaloneCommands creates the set of commands that skip context
// initialisation.
//
// Why this exists: Most commands need config and the connection store, but
// some must work without them. Bootstrap commands (config, guide, version)
// help users set up or learn about sqlmate before anything is configured,
// and serve manages its own lifecycle. Extensions declare these through
// the extension.Standalone interface.
func buildStandaloneCommands() map[string]bool {
	cmds := make(map[string]bool)
	for _, ext := range extension.All() {
		if s, ok := ext.(extension.Standalone); ok {
			for _, name := range s.StandaloneCommands() {
				cmds[name] = true
			}
		}
	}
	return cmds
}

// Global extension context, created during initialisation.
var (
	extContext extension.Context
	initOnce   sync.Once
	initErr    error
)

// initExtensions loads shared services and injects them into extensions.
//
// Why sync.Once: The context is shared across all extensions and must be
// created exactly once per process, even if multiple commands somehow
// trigger it.
func initExtensions() error {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}

		conns, err := connection.Open(cfg.Dir())
		if err != nil {
			initErr = err
			return
		}

		// Scope telemetry to the active config directory
		telemetry.SetProject(cfg.Dir())

		extContext = extension.NewContext(cfg, conns, pick.NewTerminal())

		// Inject the shared context into all Initializable extensions.
		// This is dependency injection - extensions receive services rather
		// than creating them themselves, enabling shared state.
		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}

		// Build standaloneCommands after all extensions are registered
		standaloneCommands = buildStandaloneCommands()
	})
}
