package ast

import (
	"bytes"
	"fmt"
	"imp/lexer"
	"strings"
)

type Node interface {
	TokenLiteral() string
	String() string
	GetToken() lexer.Token
}

type Statement interface {
	Node
	statementNode()
}

type Expression interface {
	Node
	expressionNode()
}

type Program struct {
	Node
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	} else {
		return ""
	}
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}

type Identifier struct {
	Token lexer.Token // the identifier token
	Value string
}

func (i *Identifier) expressionNode()       {}
func (i *Identifier) TokenLiteral() string  { return i.Token.Text }
func (i *Identifier) GetToken() lexer.Token { return i.Token }
func (i *Identifier) String() string        { return i.Value }

type IntegerLiteral struct {
	Token lexer.Token
	Value int64
}

func (il *IntegerLiteral) expressionNode()       {}
func (il *IntegerLiteral) TokenLiteral() string  { return il.Token.Text }
func (il *IntegerLiteral) GetToken() lexer.Token { return il.Token }
func (il *IntegerLiteral) String() string        { return fmt.Sprintf("%d", il.Value) }

type BooleanLiteral struct {
	Token lexer.Token
	Value bool
}

func (bl *BooleanLiteral) expressionNode()       {}
func (bl *BooleanLiteral) TokenLiteral() string  { return bl.Token.Text }
func (bl *BooleanLiteral) GetToken() lexer.Token { return bl.Token }
func (bl *BooleanLiteral) String() string        { return bl.Token.Text }

// fn [a, b] body end
type FunctionExpression struct {
	Token  lexer.Token // the fn token
	Params []*Identifier
	Body   Expression
}

func (fe *FunctionExpression) expressionNode()       {}
func (fe *FunctionExpression) TokenLiteral() string  { return fe.Token.Text }
func (fe *FunctionExpression) GetToken() lexer.Token { return fe.Token }
func (fe *FunctionExpression) String() string {
	var out bytes.Buffer
	params := []string{}
	for _, p := range fe.Params {
		params = append(params, p.String())
	}
	out.WriteString("fn [")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString("] ")
	out.WriteString(fe.Body.String())
	out.WriteString(" end")
	return out.String()
}

type LetBinding struct {
	Name  *Identifier
	Value Expression
}

// let [x := e ; y := e] body end, bindings keep source order
type LetExpression struct {
	Token    lexer.Token // the let token
	Bindings []*LetBinding
	Body     Expression
}

func (le *LetExpression) expressionNode()       {}
func (le *LetExpression) TokenLiteral() string  { return le.Token.Text }
func (le *LetExpression) GetToken() lexer.Token { return le.Token }
func (le *LetExpression) String() string {
	var out bytes.Buffer
	out.WriteString("let [")
	for idx, binding := range le.Bindings {
		out.WriteString(binding.Name.String())
		out.WriteString(" := ")
		out.WriteString(binding.Value.String())
		if idx+1 <= len(le.Bindings)-1 {
			out.WriteString(" ; ")
		}
	}
	out.WriteString("] ")
	out.WriteString(le.Body.String())
	out.WriteString(" end")
	return out.String()
}

// apply callee (a, b)
type ApplyExpression struct {
	Token  lexer.Token // the apply token
	Callee Expression
	Args   []Expression
}

func (ae *ApplyExpression) expressionNode()       {}
func (ae *ApplyExpression) TokenLiteral() string  { return ae.Token.Text }
func (ae *ApplyExpression) GetToken() lexer.Token { return ae.Token }
func (ae *ApplyExpression) String() string {
	var out bytes.Buffer
	args := []string{}
	for _, a := range ae.Args {
		args = append(args, a.String())
	}
	out.WriteString("apply ")
	out.WriteString(ae.Callee.String())
	out.WriteString(" (")
	out.WriteString(strings.Join(args, ", "))
	out.WriteString(")")
	return out.String()
}

type IfExpression struct {
	Token       lexer.Token // the if token
	Condition   Expression
	Consequence Expression
	Alternative Expression
}

func (ie *IfExpression) expressionNode()       {}
func (ie *IfExpression) TokenLiteral() string  { return ie.Token.Text }
func (ie *IfExpression) GetToken() lexer.Token { return ie.Token }
func (ie *IfExpression) String() string {
	var out bytes.Buffer
	out.WriteString("if ")
	out.WriteString(ie.Condition.String())
	out.WriteString(" then ")
	out.WriteString(ie.Consequence.String())
	out.WriteString(" else ")
	out.WriteString(ie.Alternative.String())
	out.WriteString(" fi")
	return out.String()
}

// ArithExpression, LogicExpression and CompareExpression share the same
// shape but stay separate nodes, the evaluator lifts each one over a
// different operand domain.
type ArithExpression struct {
	Token    lexer.Token // the operator token
	Operator string
	Left     Expression
	Right    Expression
}

func (ae *ArithExpression) expressionNode()       {}
func (ae *ArithExpression) TokenLiteral() string  { return ae.Token.Text }
func (ae *ArithExpression) GetToken() lexer.Token { return ae.Token }
func (ae *ArithExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", ae.Left.String(), ae.Operator, ae.Right.String())
}

type LogicExpression struct {
	Token    lexer.Token
	Operator string
	Left     Expression
	Right    Expression
}

func (le *LogicExpression) expressionNode()       {}
func (le *LogicExpression) TokenLiteral() string  { return le.Token.Text }
func (le *LogicExpression) GetToken() lexer.Token { return le.Token }
func (le *LogicExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", le.Left.String(), le.Operator, le.Right.String())
}

type CompareExpression struct {
	Token    lexer.Token
	Operator string
	Left     Expression
	Right    Expression
}

func (ce *CompareExpression) expressionNode()       {}
func (ce *CompareExpression) TokenLiteral() string  { return ce.Token.Text }
func (ce *CompareExpression) GetToken() lexer.Token { return ce.Token }
func (ce *CompareExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", ce.Left.String(), ce.Operator, ce.Right.String())
}

// x := e;
type AssignStatement struct {
	Token lexer.Token // the := token
	Name  *Identifier
	Value Expression
}

func (as *AssignStatement) statementNode()        {}
func (as *AssignStatement) TokenLiteral() string  { return as.Token.Text }
func (as *AssignStatement) GetToken() lexer.Token { return as.Token }
func (as *AssignStatement) String() string {
	var out bytes.Buffer
	out.WriteString(as.Name.String())
	out.WriteString(" := ")
	out.WriteString(as.Value.String())
	out.WriteString(";")
	return out.String()
}

type PrintStatement struct {
	Token lexer.Token // the print token
	Value Expression
}

func (ps *PrintStatement) statementNode()        {}
func (ps *PrintStatement) TokenLiteral() string  { return ps.Token.Text }
func (ps *PrintStatement) GetToken() lexer.Token { return ps.Token }
func (ps *PrintStatement) String() string {
	return "print " + ps.Value.String() + ";"
}

type QuitStatement struct {
	Token lexer.Token // the quit token
}

func (qs *QuitStatement) statementNode()        {}
func (qs *QuitStatement) TokenLiteral() string  { return qs.Token.Text }
func (qs *QuitStatement) GetToken() lexer.Token { return qs.Token }
func (qs *QuitStatement) String() string        { return "quit;" }

type IfStatement struct {
	Token       lexer.Token // the if token
	Condition   Expression
	Consequence Statement
	Alternative Statement
}

func (is *IfStatement) statementNode()        {}
func (is *IfStatement) TokenLiteral() string  { return is.Token.Text }
func (is *IfStatement) GetToken() lexer.Token { return is.Token }
func (is *IfStatement) String() string {
	var out bytes.Buffer
	out.WriteString("if ")
	out.WriteString(is.Condition.String())
	out.WriteString(" then ")
	out.WriteString(is.Consequence.String())
	out.WriteString(" else ")
	out.WriteString(is.Alternative.String())
	out.WriteString(" fi")
	return out.String()
}

// procedure p(a, b) body endproc
//
// The declaration itself is what gets registered in the procedure
// environment, there is no separate closure record.
type ProcedureDeclaration struct {
	Token  lexer.Token // the procedure token
	Name   *Identifier
	Params []*Identifier
	Body   Statement
}

func (pd *ProcedureDeclaration) statementNode()        {}
func (pd *ProcedureDeclaration) TokenLiteral() string  { return pd.Token.Text }
func (pd *ProcedureDeclaration) GetToken() lexer.Token { return pd.Token }
func (pd *ProcedureDeclaration) String() string {
	var out bytes.Buffer
	params := []string{}
	for _, p := range pd.Params {
		params = append(params, p.String())
	}
	out.WriteString("procedure ")
	out.WriteString(pd.Name.String())
	out.WriteString("(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") ")
	out.WriteString(pd.Body.String())
	out.WriteString(" endproc")
	return out.String()
}

// call p(a, b);
type CallStatement struct {
	Token lexer.Token // the call token
	Name  *Identifier
	Args  []Expression
}

func (cs *CallStatement) statementNode()        {}
func (cs *CallStatement) TokenLiteral() string  { return cs.Token.Text }
func (cs *CallStatement) GetToken() lexer.Token { return cs.Token }
func (cs *CallStatement) String() string {
	var out bytes.Buffer
	args := []string{}
	for _, a := range cs.Args {
		args = append(args, a.String())
	}
	out.WriteString("call ")
	out.WriteString(cs.Name.String())
	out.WriteString("(")
	out.WriteString(strings.Join(args, ", "))
	out.WriteString(");")
	return out.String()
}

// do s1 s2 ... sn od;
type BlockStatement struct {
	Token lexer.Token // the do token
	Body  []Statement
}

func (bs *BlockStatement) statementNode()        {}
func (bs *BlockStatement) TokenLiteral() string  { return bs.Token.Text }
func (bs *BlockStatement) GetToken() lexer.Token { return bs.Token }
func (bs *BlockStatement) String() string {
	var out bytes.Buffer
	out.WriteString("do ")
	for _, s := range bs.Body {
		out.WriteString(s.String())
		out.WriteString(" ")
	}
	out.WriteString("od;")
	return out.String()
}
