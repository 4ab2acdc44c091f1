package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	syncCmd.Flags().StringVar(&styleFlag, "style", "", "Label style (see 'citelabel styles')")
	rootCmd.AddCommand(syncCmd)
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Rebuild the label index",
	Long: `Rebuild the SQLite label index from entries.jsonl, recomputing every
entry's label with the selected style.`,
	RunE: runSync,
}

func runSync(cmd *cobra.Command, args []string) error {
	name, style := resolveStyle()

	s := mustOpenLibrary()
	n, err := s.Sync(style)
	if err != nil {
		exitWithError(ExitError, "rebuilding index: %v", err)
	}

	if humanOutput {
		fmt.Printf("Indexed %d entries with style %s\n", n, name)
		return nil
	}
	return outputJSON(SyncResponse{Status: "synced", Style: name, Entries: n})
}
