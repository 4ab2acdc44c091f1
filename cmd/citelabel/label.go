package main

import (
	"fmt"

	"github.com/matsen/citelabel/internal/entry"
	"github.com/spf13/cobra"
)

var labelStdin bool

func init() {
	labelCmd.Flags().StringVar(&styleFlag, "style", "", "Label style (see 'citelabel styles')")
	labelCmd.Flags().BoolVar(&labelStdin, "stdin", false, "Label a single entry read as JSON from stdin")
	rootCmd.AddCommand(labelCmd)
}

var labelCmd = &cobra.Command{
	Use:   "label [key...]",
	Short: "Derive labels for entries",
	Long: `Derive citation labels for the named entries, or for every entry in
the library when no keys are given.

With --stdin a single entry is read as JSON from stdin and labeled
without touching the library.`,
	RunE: runLabel,
}

func runLabel(cmd *cobra.Command, args []string) error {
	_, style := resolveStyle()

	if labelStdin {
		e, err := readEntryArg(nil)
		if err != nil {
			exitWithError(ExitDataError, "reading entry: %v", err)
		}
		return printLabels([]LabelResponse{{Key: e.Key, Type: e.Type, Label: style(e)}})
	}

	s := mustOpenLibrary()
	entries, err := s.Load()
	if err != nil {
		exitWithError(ExitDataError, "loading entries: %v", err)
	}

	if len(args) > 0 {
		entries, err = selectByKey(entries, args)
		if err != nil {
			exitWithError(ExitError, "%v", err)
		}
	}

	results := make([]LabelResponse, 0, len(entries))
	for _, e := range entries {
		results = append(results, LabelResponse{Key: e.Key, Type: e.Type, Label: style(e)})
	}
	return printLabels(results)
}

// selectByKey filters entries down to the requested keys, preserving the
// requested order.
func selectByKey(entries []entry.Entry, keys []string) ([]entry.Entry, error) {
	byKey := make(map[string]entry.Entry, len(entries))
	for _, e := range entries {
		byKey[e.Key] = e
	}

	selected := make([]entry.Entry, 0, len(keys))
	for _, key := range keys {
		e, ok := byKey[key]
		if !ok {
			return nil, fmt.Errorf("entry %q not found", key)
		}
		selected = append(selected, e)
	}
	return selected, nil
}

func printLabels(results []LabelResponse) error {
	if humanOutput {
		for _, r := range results {
			if r.Key != "" {
				fmt.Printf("%-24s %s\n", r.Key, r.Label)
			} else {
				fmt.Println(r.Label)
			}
		}
		return nil
	}
	return outputJSON(results)
}
