package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	listCmd.Flags().StringVar(&styleFlag, "style", "", "Label style (see 'citelabel styles')")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all entries with their labels",
	Long: `List every entry in the library with its computed label, reading
from the SQLite label index. The index is rebuilt first if the entries
file has changed since the last sync.`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	s := mustOpenLibrary()

	stale, err := s.NeedsSync()
	if err != nil {
		exitWithError(ExitError, "checking index: %v", err)
	}
	if stale {
		_, style := resolveStyle()
		if _, err := s.Sync(style); err != nil {
			exitWithError(ExitError, "rebuilding index: %v", err)
		}
	}

	labeled, err := s.Labels()
	if err != nil {
		exitWithError(ExitError, "reading index: %v", err)
	}

	if humanOutput {
		for _, le := range labeled {
			fmt.Printf("%-24s %-12s %s\n", le.Key, le.Type, le.Label)
		}
		return nil
	}
	return outputJSON(labeled)
}
