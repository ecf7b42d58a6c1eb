package lexer

type TokenKind = string

const (

	// Keywords
	TokenFn        TokenKind = "fn"
	TokenEnd       TokenKind = "end"
	TokenIf        TokenKind = "if"
	TokenThen      TokenKind = "then"
	TokenElse      TokenKind = "else"
	TokenFi        TokenKind = "fi"
	TokenLet       TokenKind = "let"
	TokenApply     TokenKind = "apply"
	TokenQuit      TokenKind = "quit"
	TokenPrint     TokenKind = "print"
	TokenProcedure TokenKind = "procedure"
	TokenEndProc   TokenKind = "endproc"
	TokenCall      TokenKind = "call"
	TokenDo        TokenKind = "do"
	TokenOd        TokenKind = "od"
	TokenAnd       TokenKind = "and"
	TokenOr        TokenKind = "or"

	// Units
	TokenBraceOpen    TokenKind = "("
	TokenBraceClose   TokenKind = ")"
	TokenBracketOpen  TokenKind = "["
	TokenBracketClose TokenKind = "]"
	TokenComma        TokenKind = ","
	TokenSemicolon    TokenKind = ";"

	// Arithmetic Operators
	TokenPlus     TokenKind = "+"
	TokenMinus    TokenKind = "-"
	TokenMultiply TokenKind = "*"
	TokenSlash    TokenKind = "/"

	// Comparison Operators
	TokenEquals         TokenKind = "=="
	TokenNotEquals      TokenKind = "/="
	TokenGreater        TokenKind = ">"
	TokenLess           TokenKind = "<"
	TokenGreaterOrEqual TokenKind = ">="
	TokenLessOrEqual    TokenKind = "<="

	// Bind Operator
	TokenWalrus TokenKind = ":="

	// Var Naming
	TokenIdentifier TokenKind = "identifier"

	// Literals
	TokenInt  TokenKind = "int"
	TokenBool TokenKind = "bool"

	// Error
	TokenError TokenKind = "error"

	// EOF
	TokenEOF TokenKind = "end of file"
)

type LiteralToken struct {
	Text string
	Kind TokenKind
}

type Lexer struct {
	Content []rune
	// help mainly in error detection when having multi file execution
	FilePath string
	Row      int
	Col      int
	Cur      int
}
