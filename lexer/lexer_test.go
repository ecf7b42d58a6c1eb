package lexer_test

import (
	"imp/lexer"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextToken(t *testing.T) {
	input := `x := 3; print x + 2;`

	expected := []lexer.LiteralToken{
		{Text: "x", Kind: lexer.TokenIdentifier},
		{Text: ":=", Kind: lexer.TokenWalrus},
		{Text: "3", Kind: lexer.TokenInt},
		{Text: ";", Kind: lexer.TokenSemicolon},
		{Text: "print", Kind: lexer.TokenPrint},
		{Text: "x", Kind: lexer.TokenIdentifier},
		{Text: "+", Kind: lexer.TokenPlus},
		{Text: "2", Kind: lexer.TokenInt},
		{Text: ";", Kind: lexer.TokenSemicolon},
		{Text: "", Kind: lexer.TokenEOF},
	}

	l := lexer.NewLexer("", input)
	for _, want := range expected {
		tok := l.NextToken()
		require.Equal(t, want, tok.LiteralToken)
	}
}

func TestTwoCharOperatorsBeforeOneChar(t *testing.T) {
	// <= must never tokenize as < followed by a stray =
	input := `< <= > >= / /= == :=`

	expected := []lexer.TokenKind{
		lexer.TokenLess,
		lexer.TokenLessOrEqual,
		lexer.TokenGreater,
		lexer.TokenGreaterOrEqual,
		lexer.TokenSlash,
		lexer.TokenNotEquals,
		lexer.TokenEquals,
		lexer.TokenWalrus,
		lexer.TokenEOF,
	}

	l := lexer.NewLexer("", input)
	for _, kind := range expected {
		require.Equal(t, kind, l.NextToken().Kind)
	}
}

func TestKeywordsAreReserved(t *testing.T) {
	tests := []struct {
		input string
		kind  lexer.TokenKind
	}{
		{"fn", lexer.TokenFn},
		{"end", lexer.TokenEnd},
		{"if", lexer.TokenIf},
		{"then", lexer.TokenThen},
		{"else", lexer.TokenElse},
		{"fi", lexer.TokenFi},
		{"let", lexer.TokenLet},
		{"apply", lexer.TokenApply},
		{"quit", lexer.TokenQuit},
		{"print", lexer.TokenPrint},
		{"procedure", lexer.TokenProcedure},
		{"endproc", lexer.TokenEndProc},
		{"call", lexer.TokenCall},
		{"do", lexer.TokenDo},
		{"od", lexer.TokenOd},
		{"and", lexer.TokenAnd},
		{"or", lexer.TokenOr},
		{"true", lexer.TokenBool},
		{"false", lexer.TokenBool},
		// near-keywords stay identifiers
		{"prints", lexer.TokenIdentifier},
		{"iff", lexer.TokenIdentifier},
		{"enda", lexer.TokenIdentifier},
	}

	for _, tt := range tests {
		l := lexer.NewLexer("", tt.input)
		require.Equal(t, tt.kind, l.NextToken().Kind, "input %q", tt.input)
	}
}

func TestBareColonAndEqualsAreErrors(t *testing.T) {
	for _, input := range []string{":", "="} {
		l := lexer.NewLexer("", input)
		tok := l.NextToken()
		require.Equal(t, lexer.TokenError, tok.Kind)
		require.Equal(t, input, tok.Text)
	}
}

func TestRowColTracking(t *testing.T) {
	input := "x := 1;\nprint x;"

	l := lexer.NewLexer("", input)
	tokens := l.Tokenize()

	require.Equal(t, 1, tokens[0].Row)
	require.Equal(t, 1, tokens[0].Col)

	// print starts the second row
	require.Equal(t, lexer.TokenPrint, tokens[4].Kind)
	require.Equal(t, 2, tokens[4].Row)
	require.Equal(t, 1, tokens[4].Col)
}

func TestCommentsAreSkipped(t *testing.T) {
	input := "# a comment\nprint 1; # trailing\n"

	l := lexer.NewLexer("", input)
	tokens := l.Tokenize()

	kinds := []lexer.TokenKind{}
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	require.Equal(t, []lexer.TokenKind{
		lexer.TokenPrint, lexer.TokenInt, lexer.TokenSemicolon, lexer.TokenEOF,
	}, kinds)
}
