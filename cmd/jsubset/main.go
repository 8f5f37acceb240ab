// Command jsubset runs and explores programs in the jsubset language.
package main

import (
	"fmt"
	"os"

	"github.com/jsubset/jsubset/cmd/jsubset/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
