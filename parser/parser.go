package parser

import (
	"errors"
	"fmt"
	"imp/ast"
	"imp/lexer"
	"strconv"
)

const (
	_ int = iota
	LOWEST
	OR          // or
	AND         // and
	LESSGREATER // < > <= >= == /=
	SUM         // + -
	PRODUCT     // * /
)

var precedences = map[lexer.TokenKind]int{
	lexer.TokenOr:             OR,
	lexer.TokenAnd:            AND,
	lexer.TokenEquals:         LESSGREATER,
	lexer.TokenNotEquals:      LESSGREATER,
	lexer.TokenLess:           LESSGREATER,
	lexer.TokenLessOrEqual:    LESSGREATER,
	lexer.TokenGreater:        LESSGREATER,
	lexer.TokenGreaterOrEqual: LESSGREATER,
	lexer.TokenPlus:           SUM,
	lexer.TokenMinus:          SUM,
	lexer.TokenSlash:          PRODUCT,
	lexer.TokenMultiply:       PRODUCT,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

type Parser struct {
	tokens         []lexer.Token
	FilePath       string
	Errors         []error
	Pos            int
	prefixParseFns map[lexer.TokenKind]prefixParseFn
	infixParseFns  map[lexer.TokenKind]infixParseFn

	curToken  lexer.Token
	peekToken lexer.Token // one token lookahead
}

func NewParser(tokens []lexer.Token, filepath string) *Parser {
	p := Parser{
		tokens:         tokens,
		FilePath:       filepath,
		Errors:         []error{},
		prefixParseFns: make(map[lexer.TokenKind]prefixParseFn),
		infixParseFns:  make(map[lexer.TokenKind]infixParseFn),
		Pos:            0,
	}

	// atoms
	p.registerPrefix(lexer.TokenInt, p.parseIntegerLiteral)
	p.registerPrefix(lexer.TokenBool, p.parseBooleanLiteral)
	p.registerPrefix(lexer.TokenIdentifier, p.parseIdentifier)
	p.registerPrefix(lexer.TokenFn, p.parseFunctionExpression)
	p.registerPrefix(lexer.TokenIf, p.parseIfExpression)
	p.registerPrefix(lexer.TokenLet, p.parseLetExpression)
	p.registerPrefix(lexer.TokenApply, p.parseApplyExpression)
	p.registerPrefix(lexer.TokenBraceOpen, p.parseGroupedExpression)

	// binary operators, all left-associative through the Pratt loop
	p.registerInfix(lexer.TokenPlus, p.parseInfixExpression)
	p.registerInfix(lexer.TokenMinus, p.parseInfixExpression)
	p.registerInfix(lexer.TokenMultiply, p.parseInfixExpression)
	p.registerInfix(lexer.TokenSlash, p.parseInfixExpression)
	p.registerInfix(lexer.TokenAnd, p.parseInfixExpression)
	p.registerInfix(lexer.TokenOr, p.parseInfixExpression)
	p.registerInfix(lexer.TokenEquals, p.parseInfixExpression)
	p.registerInfix(lexer.TokenNotEquals, p.parseInfixExpression)
	p.registerInfix(lexer.TokenLess, p.parseInfixExpression)
	p.registerInfix(lexer.TokenLessOrEqual, p.parseInfixExpression)
	p.registerInfix(lexer.TokenGreater, p.parseInfixExpression)
	p.registerInfix(lexer.TokenGreaterOrEqual, p.parseInfixExpression)

	// set the tok position
	p.nextToken()
	p.nextToken()

	return &p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	if p.Pos < len(p.tokens) {
		p.peekToken = p.tokens[p.Pos]
		p.Pos++
	} else {
		// a short or empty token slice still terminates the parse loop
		p.peekToken = lexer.Token{LiteralToken: lexer.LiteralToken{Kind: lexer.TokenEOF}}
	}
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Kind]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curTokenKindIs(kind lexer.TokenKind) bool {
	return p.curToken.Kind == kind
}

func (p *Parser) peekTokenKindIs(kind lexer.TokenKind) bool {
	return p.peekToken.Kind == kind
}

func (p *Parser) add(err error) {
	if len(err.Error()) > 0 {
		p.Errors = append(p.Errors, err)
	}
}

func (p *Parser) error(tok lexer.Token, msg ...interface{}) error {
	errMsg := fmt.Sprintf("\033[1;90m%s:%d:%d:\033[0m ERROR: %s", p.FilePath, tok.Row, tok.Col, fmt.Sprint(msg...))

	return errors.New(errMsg)
}

// sync consumes tokens up to and including the next semicolon, so one broken
// statement doesn't poison everything behind it
func (p *Parser) sync() {
	for !p.curTokenKindIs(lexer.TokenSemicolon) && !p.curTokenKindIs(lexer.TokenEOF) {
		p.nextToken()
	}
	if p.curTokenKindIs(lexer.TokenSemicolon) {
		p.nextToken()
	}
}

func (p *Parser) registerPrefix(tokenType lexer.TokenKind, fn prefixParseFn) {
	p.prefixParseFns[tokenType] = fn
}

func (p *Parser) registerInfix(tokenType lexer.TokenKind, fn infixParseFn) {
	p.infixParseFns[tokenType] = fn
}

func (p *Parser) Parse() *ast.Program {
	program := ast.Program{
		Statements: []ast.Statement{},
	}

	for !p.curTokenKindIs(lexer.TokenEOF) {
		stmt, err := p.parseStatement()

		if err != nil {
			p.add(err)
			p.sync()
		} else {
			program.Statements = append(program.Statements, stmt)
		}
	}

	return &program
}

// errSynced signals a failure whose message was already recorded, add
// drops the empty text and sync still kicks in
var errSynced = errors.New("")

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.curToken.Kind {
	case lexer.TokenQuit:
		return p.parseQuitStatement()
	case lexer.TokenPrint:
		return p.parsePrintStatement()
	case lexer.TokenIf:
		return p.parseIfStatement()
	case lexer.TokenProcedure:
		return p.parseProcedureDeclaration()
	case lexer.TokenCall:
		return p.parseCallStatement()
	case lexer.TokenDo:
		return p.parseBlockStatement()
	case lexer.TokenIdentifier:
		// assignment is the only statement with no leading keyword
		return p.parseAssignStatement()
	case lexer.TokenError:
		return nil, p.error(p.curToken, "unexpected character ", strconv.Quote(p.curToken.Text))
	default:
		return nil, p.error(p.curToken, "expected a statement, instead got ", p.curToken.Text)
	}
}

func (p *Parser) parseQuitStatement() (ast.Statement, error) {
	stmt := &ast.QuitStatement{Token: p.curToken}
	p.nextToken()

	if !p.curTokenKindIs(lexer.TokenSemicolon) {
		return nil, p.error(p.curToken, "expected ; after quit, instead got ", p.curToken.Text)
	}
	p.nextToken()

	return stmt, nil
}

func (p *Parser) parsePrintStatement() (ast.Statement, error) {
	stmt := &ast.PrintStatement{Token: p.curToken}
	p.nextToken()

	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil, errSynced
	}

	if !p.curTokenKindIs(lexer.TokenSemicolon) {
		return nil, p.error(p.curToken, "expected ; after print expression, instead got ", p.curToken.Text)
	}
	p.nextToken()

	return stmt, nil
}

func (p *Parser) parseAssignStatement() (ast.Statement, error) {
	name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Text}

	if !p.peekTokenKindIs(lexer.TokenWalrus) {
		return nil, p.error(p.peekToken, "expected := after ", name.Value, ", instead got ", p.peekToken.Text)
	}
	p.nextToken()

	stmt := &ast.AssignStatement{Token: p.curToken, Name: name}
	p.nextToken()

	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil, errSynced
	}

	if !p.curTokenKindIs(lexer.TokenSemicolon) {
		return nil, p.error(p.curToken, "expected ; after assignment, instead got ", p.curToken.Text)
	}
	p.nextToken()

	return stmt, nil
}

// if c then s1 else s2 fi, no trailing semicolon on the block form
func (p *Parser) parseIfStatement() (ast.Statement, error) {
	stmt := &ast.IfStatement{Token: p.curToken}
	p.nextToken()

	stmt.Condition = p.parseExpression(LOWEST)
	if stmt.Condition == nil {
		return nil, errSynced
	}

	if !p.curTokenKindIs(lexer.TokenThen) {
		return nil, p.error(p.curToken, "expected then after if condition, instead got ", p.curToken.Text)
	}
	p.nextToken()

	consequence, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	stmt.Consequence = consequence

	if !p.curTokenKindIs(lexer.TokenElse) {
		return nil, p.error(p.curToken, "expected else in if statement, instead got ", p.curToken.Text)
	}
	p.nextToken()

	alternative, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	stmt.Alternative = alternative

	if !p.curTokenKindIs(lexer.TokenFi) {
		return nil, p.error(p.curToken, "expected fi to close if statement, instead got ", p.curToken.Text)
	}
	p.nextToken()

	return stmt, nil
}

func (p *Parser) parseProcedureDeclaration() (ast.Statement, error) {
	stmt := &ast.ProcedureDeclaration{Token: p.curToken}
	p.nextToken()

	if !p.curTokenKindIs(lexer.TokenIdentifier) {
		return nil, p.error(p.curToken, "expected procedure name, instead got ", p.curToken.Text)
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Text}
	p.nextToken()

	if !p.curTokenKindIs(lexer.TokenBraceOpen) {
		return nil, p.error(p.curToken, "expected ( after procedure name, instead got ", p.curToken.Text)
	}

	params, err := p.parseParameterList(lexer.TokenBraceClose)
	if err != nil {
		return nil, err
	}
	stmt.Params = params

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	stmt.Body = body

	if !p.curTokenKindIs(lexer.TokenEndProc) {
		return nil, p.error(p.curToken, "expected endproc to close procedure ", stmt.Name.Value, ", instead got ", p.curToken.Text)
	}
	p.nextToken()

	return stmt, nil
}

func (p *Parser) parseCallStatement() (ast.Statement, error) {
	stmt := &ast.CallStatement{Token: p.curToken}
	p.nextToken()

	if !p.curTokenKindIs(lexer.TokenIdentifier) {
		return nil, p.error(p.curToken, "expected procedure name after call, instead got ", p.curToken.Text)
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Text}
	p.nextToken()

	if !p.curTokenKindIs(lexer.TokenBraceOpen) {
		return nil, p.error(p.curToken, "expected ( after ", stmt.Name.Value, ", instead got ", p.curToken.Text)
	}

	args := p.parseExpressionList(lexer.TokenBraceClose)
	if args == nil {
		return nil, errSynced
	}
	stmt.Args = args

	if !p.curTokenKindIs(lexer.TokenSemicolon) {
		return nil, p.error(p.curToken, "expected ; after call, instead got ", p.curToken.Text)
	}
	p.nextToken()

	return stmt, nil
}

// do s1 s2 ... sn od; one or more statements
func (p *Parser) parseBlockStatement() (ast.Statement, error) {
	stmt := &ast.BlockStatement{Token: p.curToken, Body: []ast.Statement{}}
	p.nextToken()

	for !p.curTokenKindIs(lexer.TokenOd) {
		if p.curTokenKindIs(lexer.TokenEOF) {
			return nil, p.error(p.curToken, "expected od to close do block, instead got end of input")
		}
		inner, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmt.Body = append(stmt.Body, inner)
	}

	if len(stmt.Body) == 0 {
		return nil, p.error(p.curToken, "do block expects at least one statement")
	}

	// consume od
	p.nextToken()

	if !p.curTokenKindIs(lexer.TokenSemicolon) {
		return nil, p.error(p.curToken, "expected ; after od, instead got ", p.curToken.Text)
	}
	p.nextToken()

	return stmt, nil
}

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Kind]
	if prefix == nil {
		p.add(p.error(p.curToken, "expected an expression, instead got ", p.curToken.Text))
		return nil
	}
	left := prefix()
	if left == nil {
		return nil
	}

	for precedence < p.curPrecedence() {
		infix := p.infixParseFns[p.curToken.Kind]
		if infix == nil {
			return left
		}
		left = infix(left)
		if left == nil {
			return nil
		}
	}

	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	ident := &ast.Identifier{Token: p.curToken, Value: p.curToken.Text}
	p.nextToken()
	return ident
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	lit := &ast.IntegerLiteral{Token: p.curToken}

	// literals are plain decimal digit runs, never octal or hex
	value, err := strconv.ParseInt(p.curToken.Text, 10, 64)
	if err != nil {
		p.add(p.error(p.curToken, "could not parse ", p.curToken.Text, " as integer"))
		return nil
	}

	lit.Value = value
	p.nextToken()
	return lit
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	lit := &ast.BooleanLiteral{Token: p.curToken, Value: p.curToken.Text == "true"}
	p.nextToken()
	return lit
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()

	exp := p.parseExpression(LOWEST)
	if exp == nil {
		return nil
	}

	if !p.curTokenKindIs(lexer.TokenBraceClose) {
		p.add(p.error(p.curToken, "expected ) to close grouped expression, instead got ", p.curToken.Text))
		return nil
	}
	p.nextToken()

	return exp
}

// fn [a, b] body end
func (p *Parser) parseFunctionExpression() ast.Expression {
	exp := &ast.FunctionExpression{Token: p.curToken}
	p.nextToken()

	if !p.curTokenKindIs(lexer.TokenBracketOpen) {
		p.add(p.error(p.curToken, "expected [ after fn, instead got ", p.curToken.Text))
		return nil
	}

	params, err := p.parseParameterList(lexer.TokenBracketClose)
	if err != nil {
		p.add(err)
		return nil
	}
	exp.Params = params

	exp.Body = p.parseExpression(LOWEST)
	if exp.Body == nil {
		return nil
	}

	if !p.curTokenKindIs(lexer.TokenEnd) {
		p.add(p.error(p.curToken, "expected end to close fn, instead got ", p.curToken.Text))
		return nil
	}
	p.nextToken()

	return exp
}

func (p *Parser) parseIfExpression() ast.Expression {
	exp := &ast.IfExpression{Token: p.curToken}
	p.nextToken()

	exp.Condition = p.parseExpression(LOWEST)
	if exp.Condition == nil {
		return nil
	}

	if !p.curTokenKindIs(lexer.TokenThen) {
		p.add(p.error(p.curToken, "expected then after if condition, instead got ", p.curToken.Text))
		return nil
	}
	p.nextToken()

	exp.Consequence = p.parseExpression(LOWEST)
	if exp.Consequence == nil {
		return nil
	}

	if !p.curTokenKindIs(lexer.TokenElse) {
		p.add(p.error(p.curToken, "expected else in if expression, instead got ", p.curToken.Text))
		return nil
	}
	p.nextToken()

	exp.Alternative = p.parseExpression(LOWEST)
	if exp.Alternative == nil {
		return nil
	}

	if !p.curTokenKindIs(lexer.TokenFi) {
		p.add(p.error(p.curToken, "expected fi to close if expression, instead got ", p.curToken.Text))
		return nil
	}
	p.nextToken()

	return exp
}

// let [x := e ; y := e] body end, every initializer sees the outer scope
func (p *Parser) parseLetExpression() ast.Expression {
	exp := &ast.LetExpression{Token: p.curToken, Bindings: []*ast.LetBinding{}}
	p.nextToken()

	if !p.curTokenKindIs(lexer.TokenBracketOpen) {
		p.add(p.error(p.curToken, "expected [ after let, instead got ", p.curToken.Text))
		return nil
	}
	p.nextToken()

	for !p.curTokenKindIs(lexer.TokenBracketClose) {
		if !p.curTokenKindIs(lexer.TokenIdentifier) {
			p.add(p.error(p.curToken, "expected binding name in let, instead got ", p.curToken.Text))
			return nil
		}
		name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Text}
		p.nextToken()

		if !p.curTokenKindIs(lexer.TokenWalrus) {
			p.add(p.error(p.curToken, "expected := after ", name.Value, ", instead got ", p.curToken.Text))
			return nil
		}
		p.nextToken()

		value := p.parseExpression(LOWEST)
		if value == nil {
			return nil
		}
		exp.Bindings = append(exp.Bindings, &ast.LetBinding{Name: name, Value: value})

		if p.curTokenKindIs(lexer.TokenSemicolon) {
			p.nextToken()
		} else if !p.curTokenKindIs(lexer.TokenBracketClose) {
			p.add(p.error(p.curToken, "expected ; or ] in let bindings, instead got ", p.curToken.Text))
			return nil
		}
	}

	// consume ]
	p.nextToken()

	exp.Body = p.parseExpression(LOWEST)
	if exp.Body == nil {
		return nil
	}

	if !p.curTokenKindIs(lexer.TokenEnd) {
		p.add(p.error(p.curToken, "expected end to close let, instead got ", p.curToken.Text))
		return nil
	}
	p.nextToken()

	return exp
}

// apply callee (a, b)
func (p *Parser) parseApplyExpression() ast.Expression {
	exp := &ast.ApplyExpression{Token: p.curToken}
	p.nextToken()

	exp.Callee = p.parseExpression(LOWEST)
	if exp.Callee == nil {
		return nil
	}

	if !p.curTokenKindIs(lexer.TokenBraceOpen) {
		p.add(p.error(p.curToken, "expected ( before apply arguments, instead got ", p.curToken.Text))
		return nil
	}

	args := p.parseExpressionList(lexer.TokenBraceClose)
	if args == nil {
		return nil
	}
	exp.Args = args

	return exp
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	precedence := p.curPrecedence()
	p.nextToken()

	right := p.parseExpression(precedence)
	if right == nil {
		return nil
	}

	switch {
	case lexer.ArithOperators[tok.Kind] != "":
		return &ast.ArithExpression{Token: tok, Operator: tok.Text, Left: left, Right: right}
	case lexer.LogicOperators[tok.Kind] != "":
		return &ast.LogicExpression{Token: tok, Operator: tok.Text, Left: left, Right: right}
	case lexer.CompareOperators[tok.Kind] != "":
		return &ast.CompareExpression{Token: tok, Operator: tok.Text, Left: left, Right: right}
	default:
		p.add(p.error(tok, "unknown binary operator ", tok.Text))
		return nil
	}
}

// parseParameterList expects the opening delimiter on curToken and consumes
// through the closing one
func (p *Parser) parseParameterList(closing lexer.TokenKind) ([]*ast.Identifier, error) {
	params := []*ast.Identifier{}
	p.nextToken()

	for !p.curTokenKindIs(closing) {
		if !p.curTokenKindIs(lexer.TokenIdentifier) {
			return nil, p.error(p.curToken, "expected parameter name, instead got ", p.curToken.Text)
		}
		params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Text})
		p.nextToken()

		if p.curTokenKindIs(lexer.TokenComma) {
			p.nextToken()
		} else if !p.curTokenKindIs(closing) {
			return nil, p.error(p.curToken, "expected , or ", closing, " in parameter list, instead got ", p.curToken.Text)
		}
	}

	// consume the closing delimiter
	p.nextToken()

	return params, nil
}

// parseExpressionList expects the opening delimiter on curToken, errors were
// already recorded when nil comes back
func (p *Parser) parseExpressionList(closing lexer.TokenKind) []ast.Expression {
	list := []ast.Expression{}
	p.nextToken()

	for !p.curTokenKindIs(closing) {
		exp := p.parseExpression(LOWEST)
		if exp == nil {
			return nil
		}
		list = append(list, exp)

		if p.curTokenKindIs(lexer.TokenComma) {
			p.nextToken()
		} else if !p.curTokenKindIs(closing) {
			p.add(p.error(p.curToken, "expected , or ", closing, " in argument list, instead got ", p.curToken.Text))
			return nil
		}
	}

	// consume the closing delimiter
	p.nextToken()

	return list
}
