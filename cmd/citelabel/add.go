package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/matsen/citelabel/internal/entry"
	"github.com/matsen/citelabel/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add [file]",
	Short: "Add an entry to the library",
	Long: `Add a bibliography entry to the library from a JSON file, or from
stdin when no file is given.

The entry is appended to entries.jsonl; the label index becomes stale
until the next sync. Example input:

  {
    "type": "article",
    "key": "Einstein1905-re",
    "persons": {"author": [{"first": "Albert", "last": "Einstein"}]},
    "fields": {}
  }`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	e, err := readEntryArg(args)
	if err != nil {
		exitWithError(ExitDataError, "reading entry: %v", err)
	}

	s := mustOpenLibrary()
	if err := s.Append(e); err != nil {
		code := ExitError
		if errors.Is(err, store.ErrDuplicateKey) || errors.Is(err, store.ErrMissingKey) {
			code = ExitDataError
		}
		exitWithError(code, "adding entry: %v", err)
	}

	if humanOutput {
		fmt.Printf("Added %s\n", e.Key)
		return nil
	}
	return outputJSON(StatusResponse{Status: "added", Path: e.Key})
}

// readEntryArg decodes an entry from the file argument or stdin.
func readEntryArg(args []string) (entry.Entry, error) {
	var data []byte
	var err error

	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return entry.Entry{}, err
	}

	e := entry.New("")
	if err := json.Unmarshal(data, &e); err != nil {
		return entry.Entry{}, fmt.Errorf("parsing entry JSON: %w", err)
	}
	return e, nil
}
