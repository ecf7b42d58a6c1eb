package object

import (
	"bytes"
	"fmt"
	"imp/ast"
	"reflect"
	"strings"
)

type ObjectType string

const (
	INTEGER_OBJ   = "INTEGER"
	BOOLEAN_OBJ   = "BOOLEAN"
	CLOSURE_OBJ   = "CLOSURE"
	EXCEPTION_OBJ = "EXCEPTION"
)

type Object interface {
	Type() ObjectType
	Inspect() string
}

type Integer struct {
	Value int64
}

func (i *Integer) Type() ObjectType { return INTEGER_OBJ }
func (i *Integer) Inspect() string  { return fmt.Sprintf("%d", i.Value) }

type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ObjectType { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string {
	if b.Value {
		return "True"
	}
	return "False"
}

// Closure pairs the parameter list and body with a snapshot of the defining
// environment. The snapshot is read-only from the closure's perspective,
// later assignments in the defining scope don't reach it.
type Closure struct {
	Parameters []*ast.Identifier
	Body       ast.Expression
	Env        *Environment
}

func (c *Closure) Type() ObjectType { return CLOSURE_OBJ }
func (c *Closure) Inspect() string {
	var out bytes.Buffer
	params := []string{}
	for _, p := range c.Parameters {
		params = append(params, p.String())
	}
	out.WriteString("<fn [")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString("] ")
	out.WriteString(c.Body.String())
	out.WriteString(" ")
	out.WriteString(c.Env.Inspect())
	out.WriteString(">")
	return out.String()
}

// Exception is a runtime fault as a first-class value. It flows through the
// same channel as every other result, callers pattern-match on it.
type Exception struct {
	Message string
}

func (e *Exception) Type() ObjectType { return EXCEPTION_OBJ }
func (e *Exception) Inspect() string  { return "exn: " + e.Message }

// Equals compares two values structurally. Closures are equal iff their
// parameters, body and captured environment all are.
func Equals(a, b Object) bool {
	return reflect.DeepEqual(a, b)
}

func IsException(obj Object) bool {
	if obj != nil {
		return obj.Type() == EXCEPTION_OBJ
	}
	return false
}
