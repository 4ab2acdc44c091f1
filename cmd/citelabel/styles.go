package main

import (
	"fmt"

	"github.com/matsen/citelabel/internal/label"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(stylesCmd)
}

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List the available label styles",
	RunE:  runStyles,
}

// StyleInfo describes one registered label style.
type StyleInfo struct {
	Name    string `json:"name"`
	Default bool   `json:"default,omitempty"`
}

func runStyles(cmd *cobra.Command, args []string) error {
	names := label.StyleNames()

	if humanOutput {
		for _, name := range names {
			if name == label.DefaultStyle {
				fmt.Printf("%s (default)\n", name)
			} else {
				fmt.Println(name)
			}
		}
		return nil
	}

	infos := make([]StyleInfo, 0, len(names))
	for _, name := range names {
		infos = append(infos, StyleInfo{Name: name, Default: name == label.DefaultStyle})
	}
	return outputJSON(infos)
}
