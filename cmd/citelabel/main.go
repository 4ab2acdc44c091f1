// Package main provides the citelabel CLI entry point.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "citelabel",
	Short: "Author-year citation label generator",
	Long: `citelabel derives short, human-readable labels for bibliography
entries ("Einstein", "Curie et al.", "Python Foundation") as used in
author-year style reference lists.

Entries live in a git-versionable JSONL library with an ephemeral SQLite
index of computed labels for fast lookup. All commands output JSON by
default for easy integration with other tools.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Load .env file if present (for CITELABEL_ROOT)
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}
