// Package handlers provides explicit registration of all command handlers.
// Registration happens from main() rather than init(), so the dependency graph
// stays explicit and importing a handler package has no side effects.
package handlers

import (
	"github.com/Kargones/ufe/internal/command/handlers/converters"
	"github.com/Kargones/ufe/internal/command/handlers/dbcheck"
	"github.com/Kargones/ufe/internal/command/handlers/explain"
	"github.com/Kargones/ufe/internal/command/handlers/help"
	"github.com/Kargones/ufe/internal/command/handlers/version"
)

// RegisterAll explicitly registers all command handlers in the global registry.
// Call this once from main() before using any commands.
// Returns an error if any handler registration fails.
func RegisterAll() error {
	for _, register := range []func() error{
		explain.RegisterCmd,
		converters.RegisterCmd,
		dbcheck.RegisterCmd,
		version.RegisterCmd,
		help.RegisterCmd,
	} {
		if err := register(); err != nil {
			return err
		}
	}
	return nil
}
