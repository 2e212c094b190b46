package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corey/mehen/internal/adapters/treesitter"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages and file extensions",
	RunE:  runLanguages,
}

func runLanguages(cmd *cobra.Command, args []string) error {
	parser := treesitter.NewParser()
	for _, tag := range parser.Languages() {
		fmt.Printf("%-12s %s\n", tag, strings.Join(parser.ExtensionsFor(tag), " "))
	}
	return nil
}
