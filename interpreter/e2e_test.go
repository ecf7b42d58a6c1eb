package interpreter_test

import (
	"imp/interpreter"
	"imp/lexer"
	"imp/parser"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type programFixture struct {
	Name   string `yaml:"name"`
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

func TestPrograms(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("testdata", "programs.yaml"))
	require.NoError(t, err)

	var fixtures []programFixture
	require.NoError(t, yaml.Unmarshal(raw, &fixtures))
	require.NotEmpty(t, fixtures)

	for _, fixture := range fixtures {
		t.Run(fixture.Name, func(t *testing.T) {
			l := lexer.NewLexer("", fixture.Input)
			p := parser.NewParser(l.Tokenize(), "")
			program := p.Parse()
			require.Empty(t, p.Errors, "parse errors for %q", fixture.Input)

			i := interpreter.NewInterpreter(nil, nil)
			require.Equal(t, fixture.Output, i.Run(program))
		})
	}
}
