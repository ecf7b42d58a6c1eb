package cmd

import (
	"fmt"
	"imp/repl"
	"os"

	"github.com/spf13/cobra"
)

var ReplCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive read-exec-print loop",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("imp %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type quit; to exit.\n", Version)
		repl.Start(os.Stdout)
	},
}
