package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "imp",
	Short: "imp — a small procedural interpreted language",
	Long: `imp is the interpreter for the imp language.

Commands:
  run      Execute a (.imp) source file
  repl     Start the interactive read-exec-print loop
  version  Print the interpreter version
`,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return err
	}
	return nil
}

func init() {
	rootCmd.AddCommand(RunCmd, ReplCmd, VersionCmd)
}
