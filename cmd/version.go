package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const Version = "0.1.0"

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the interpreter version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(Version)
	},
}
