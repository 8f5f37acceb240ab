package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jsubset/jsubset/internal/replshell"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive jsubset prompt",
	RunE: func(cmd *cobra.Command, args []string) error {
		return replshell.Run(os.Stdout, os.Stderr)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
