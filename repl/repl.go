package repl

import (
	"errors"
	"fmt"
	"imp/interpreter"
	"imp/lexer"
	"imp/parser"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

const (
	PROMPT      = ">>> "
	historyFile = ".imp_history"
)

// Start runs the read-exec-print loop until quit; or EOF. The interpreter
// core does no I/O itself, all line reading and printing happens here.
func Start(out io.Writer) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	i := interpreter.NewInterpreter(nil, nil)

	for {
		line, err := ln.Prompt(PROMPT)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			// Ctrl+D or a closed stream
			fmt.Fprintln(out)
			return
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		l := lexer.NewLexer("", line)
		p := parser.NewParser(l.Tokenize(), "")
		program := p.Parse()
		if len(p.Errors) != 0 {
			// discard the line, the environments stay intact
			for _, perr := range p.Errors {
				fmt.Fprintln(out, perr)
			}
			continue
		}

		output := i.Run(program)
		if output != "" {
			io.WriteString(out, output)
		}

		if i.Halted() {
			return
		}
	}
}
