package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information, overridable by build flags.
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "jsubset",
	Short: "A tree-walking interpreter for a small JavaScript subset",
	Long: `jsubset runs programs written in a deliberately small subset of
JavaScript: var/let/const declarations, functions and closures, the usual
arithmetic/comparison/logical operators, plain objects and arrays, and
control flow (if/while/for). There is no module system, no prototype-chain
mutation beyond plain objects, and no exception handling.`,
	Version: Version,
}

// Execute runs the root command and returns any error it produced.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
