// mehen computes source code metrics over tree-sitter syntax trees.
// Single binary, five languages — cyclomatic, cognitive, Halstead, ABC,
// maintainability index and friends, per function, type and file.
package main

import (
	"os"

	"github.com/corey/mehen/cmd/mehen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
