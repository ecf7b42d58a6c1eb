package lexer

import (
	"unicode"
)

func NewLexer(filePath string, content string) *Lexer {
	lexer := Lexer{
		Content:  []rune(content),
		FilePath: filePath,
		Row:      1,
		Col:      1,
		Cur:      0,
	}
	return &lexer
}

func (l *Lexer) readChar() {
	if l.Cur >= len(l.Content) {
		// reach end of input
		return
	}

	char := l.Content[l.Cur]

	switch char {
	case '\n':
		l.Row++
		l.Col = 1
	default:
		l.Col++
	}

	// increment to deal with the next char
	l.Cur++
}

type Token struct {
	LiteralToken
	Row int
	Col int
}

func (l *Lexer) NextToken() Token {
	l.skipWhiteSpace()
	l.skipComment()

	token := Token{
		Row: l.Row,
		Col: l.Col,
	}

	if l.Cur >= len(l.Content) {
		token.LiteralToken = LiteralToken{
			Kind: TokenEOF,
			Text: "",
		}
		return token
	}

	char := l.Content[l.Cur]

	switch string(char) {
	case TokenBraceOpen:
		l.readChar()
		token.LiteralToken = LiteralToken{
			Kind: TokenBraceOpen,
			Text: "(",
		}
	case TokenBraceClose:
		l.readChar()
		token.LiteralToken = LiteralToken{
			Kind: TokenBraceClose,
			Text: ")",
		}
	case TokenBracketOpen:
		l.readChar()
		token.LiteralToken = LiteralToken{
			Kind: TokenBracketOpen,
			Text: "[",
		}
	case TokenBracketClose:
		l.readChar()
		token.LiteralToken = LiteralToken{
			Kind: TokenBracketClose,
			Text: "]",
		}
	case TokenComma:
		l.readChar()
		token.LiteralToken = LiteralToken{
			Kind: TokenComma,
			Text: ",",
		}
	case TokenSemicolon:
		l.readChar()
		token.LiteralToken = LiteralToken{
			Kind: TokenSemicolon,
			Text: ";",
		}
	case TokenPlus:
		l.readChar()
		token.LiteralToken = LiteralToken{
			Kind: TokenPlus,
			Text: "+",
		}
	case TokenMinus:
		l.readChar()
		token.LiteralToken = LiteralToken{
			Kind: TokenMinus,
			Text: "-",
		}
	case TokenMultiply:
		l.readChar()
		token.LiteralToken = LiteralToken{
			Kind: TokenMultiply,
			Text: "*",
		}
	case TokenSlash:
		// /= needs to be tried before the bare division operator
		l.readChar()
		if l.peekChar() == "=" {
			l.readChar()
			token.LiteralToken = LiteralToken{
				Kind: TokenNotEquals,
				Text: "/=",
			}
		} else {
			token.LiteralToken = LiteralToken{
				Kind: TokenSlash,
				Text: "/",
			}
		}
	case TokenGreater:
		l.readChar()
		if l.peekChar() == "=" {
			l.readChar()
			token.LiteralToken = LiteralToken{
				Kind: TokenGreaterOrEqual,
				Text: ">=",
			}
		} else {
			token.LiteralToken = LiteralToken{
				Kind: TokenGreater,
				Text: ">",
			}
		}
	case TokenLess:
		l.readChar()
		if l.peekChar() == "=" {
			l.readChar()
			token.LiteralToken = LiteralToken{
				Kind: TokenLessOrEqual,
				Text: "<=",
			}
		} else {
			token.LiteralToken = LiteralToken{
				Kind: TokenLess,
				Text: "<",
			}
		}
	case ":":
		// bare colon isn't part of the grammar, only :=
		l.readChar()
		if l.peekChar() == "=" {
			l.readChar()
			token.LiteralToken = LiteralToken{
				Kind: TokenWalrus,
				Text: ":=",
			}
		} else {
			token.LiteralToken = LiteralToken{
				Kind: TokenError,
				Text: ":",
			}
		}
	case "=":
		// same for =, only == exists
		l.readChar()
		if l.peekChar() == "=" {
			l.readChar()
			token.LiteralToken = LiteralToken{
				Kind: TokenEquals,
				Text: "==",
			}
		} else {
			token.LiteralToken = LiteralToken{
				Kind: TokenError,
				Text: "=",
			}
		}
	default:
		if isLetter(char) {
			return l.readIdentifier()
		} else if isDigit(char) {
			return l.readNumber()
		} else {
			l.readChar()
			token.LiteralToken = LiteralToken{
				Kind: TokenError,
				Text: string(char),
			}
		}
	}
	return token
}

func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			break
		}
	}
	return tokens
}

func (l *Lexer) peekChar() string {
	if l.Cur >= len(l.Content) {
		return ""
	}
	return string(l.Content[l.Cur])
}

func isLetter(char rune) bool {
	return unicode.IsLetter(char) || char == '_'
}

func isDigit(char rune) bool {
	return unicode.IsDigit(char)
}

func (l *Lexer) readIdentifier() Token {
	startPos := l.Cur

	// save them to return
	row := l.Row
	col := l.Col

	for l.Cur < len(l.Content) {
		char := l.Content[l.Cur]
		if isLetter(char) || isDigit(char) {
			l.readChar()
		} else {
			break
		}
	}

	text := string(l.Content[startPos:l.Cur])

	if tokenKind, isKeyword := Keywords[text]; isKeyword {
		return Token{LiteralToken: LiteralToken{
			Kind: tokenKind,
			Text: text,
		}, Row: row, Col: col}
	}

	return Token{
		LiteralToken: LiteralToken{
			Kind: TokenIdentifier,
			Text: text,
		},
		Row: row,
		Col: col,
	}
}

func (l *Lexer) readNumber() Token {
	startPos := l.Cur
	row := l.Row
	col := l.Col

	for l.Cur < len(l.Content) && isDigit(l.Content[l.Cur]) {
		l.readChar()
	}

	text := string(l.Content[startPos:l.Cur])

	return Token{
		LiteralToken: LiteralToken{
			Kind: TokenInt,
			Text: text,
		},
		Row: row,
		Col: col,
	}
}

func (l *Lexer) skipComment() {
	for l.Cur < len(l.Content) && l.Content[l.Cur] == '#' {
		for l.Cur < len(l.Content) && l.Content[l.Cur] != '\n' {
			l.readChar()
		}
		l.skipWhiteSpace()
	}
}

func (l *Lexer) skipWhiteSpace() {
	for l.Cur < len(l.Content) && unicode.IsSpace(l.Content[l.Cur]) {
		l.readChar()
	}
}
