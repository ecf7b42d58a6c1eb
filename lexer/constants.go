package lexer

type Operator = string

var (
	Keywords = map[string]TokenKind{
		"fn":        TokenFn,
		"end":       TokenEnd,
		"if":        TokenIf,
		"then":      TokenThen,
		"else":      TokenElse,
		"fi":        TokenFi,
		"let":       TokenLet,
		"apply":     TokenApply,
		"quit":      TokenQuit,
		"print":     TokenPrint,
		"procedure": TokenProcedure,
		"endproc":   TokenEndProc,
		"call":      TokenCall,
		"do":        TokenDo,
		"od":        TokenOd,
		"and":       TokenAnd,
		"or":        TokenOr,
		"true":      TokenBool,
		"false":     TokenBool,
	}

	ArithOperators = map[TokenKind]Operator{
		TokenPlus:     "+",
		TokenMinus:    "-",
		TokenMultiply: "*",
		TokenSlash:    "/",
	}

	LogicOperators = map[TokenKind]Operator{
		TokenAnd: "and",
		TokenOr:  "or",
	}

	CompareOperators = map[TokenKind]Operator{
		TokenEquals:         "==",
		TokenNotEquals:      "/=",
		TokenGreater:        ">",
		TokenGreaterOrEqual: ">=",
		TokenLess:           "<",
		TokenLessOrEqual:    "<=",
	}
)
