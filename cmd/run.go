package cmd

import (
	"errors"
	"fmt"
	"imp/interpreter"
	"imp/lexer"
	"imp/parser"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var RunCmd = &cobra.Command{
	Use:   "run [file.imp]",
	Short: "Execute a (.imp) source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := args[0]

		if filepath.Ext(target) != ".imp" {
			return fmt.Errorf("file must have a .imp extension, got %s", target)
		}

		content, err := os.ReadFile(target)
		if err != nil {
			return fmt.Errorf("reading %s: %w", target, err)
		}

		l := lexer.NewLexer(target, string(content))
		p := parser.NewParser(l.Tokenize(), filepath.Base(target))
		program := p.Parse()

		if len(p.Errors) != 0 {
			return errors.Join(p.Errors...)
		}

		i := interpreter.NewInterpreter(nil, nil)
		output := i.Run(program)
		if output != "" {
			fmt.Print(output)
		}
		return nil
	},
}
