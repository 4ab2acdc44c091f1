package main

import (
	"fmt"

	"github.com/matsen/citelabel/internal/config"
	"github.com/matsen/citelabel/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new citation library",
	Long: `Initialize a new citation library in the configured directory.

Creates:
  <library>/
  ├── entries.jsonl   # Entry source of truth (empty)
  └── labels.db       # SQLite label index`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := config.LibraryPath()
	if dir == "" {
		exitWithError(ExitConfigError, "no library path configured (set %s or library_path in %s)",
			config.EnvLibraryRoot, config.Path())
	}

	s := store.Open(dir)
	if s.Exists() {
		exitWithError(ExitError, "library already exists at %s", dir)
	}

	if err := s.Init(); err != nil {
		exitWithError(ExitError, "initializing library: %v", err)
	}

	if humanOutput {
		fmt.Printf("Initialized citation library at %s\n", dir)
		return nil
	}
	return outputJSON(StatusResponse{Status: "initialized", Path: dir})
}
