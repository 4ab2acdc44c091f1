package main

import (
	"github.com/matsen/citelabel/internal/config"
	"github.com/matsen/citelabel/internal/label"
	"github.com/matsen/citelabel/internal/store"
)

// styleFlag is the shared --style value for commands that compute labels.
var styleFlag string

// resolveStyle picks the label style: the --style flag, then the
// configured default_style, then the built-in default. Exits with a
// config error for an unknown name.
func resolveStyle() (string, label.Style) {
	name := styleFlag
	if name == "" {
		name = config.DefaultStyle()
	}
	if name == "" {
		name = label.DefaultStyle
	}

	s, err := label.StyleByName(name)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	return name, s
}

// mustOpenLibrary returns the store for the configured library directory,
// exiting when the library has not been initialized.
func mustOpenLibrary() *store.Store {
	dir := config.LibraryPath()
	if dir == "" {
		exitWithError(ExitConfigError, "no library path configured (set %s or library_path in %s)",
			config.EnvLibraryRoot, config.Path())
	}

	s := store.Open(dir)
	if !s.Exists() {
		exitWithError(ExitConfigError, "no library at %s (run 'citelabel init' first)", dir)
	}
	return s
}
