package object_test

import (
	"imp/ast"
	"imp/lexer"
	"imp/object"
	"testing"

	"github.com/go-test/deep"
)

func TestInspect(t *testing.T) {
	tests := []struct {
		obj      object.Object
		expected string
	}{
		{&object.Integer{Value: 42}, "42"},
		{&object.Integer{Value: -7}, "-7"},
		{&object.Boolean{Value: true}, "True"},
		{&object.Boolean{Value: false}, "False"},
		{&object.Exception{Message: "Division by 0"}, "exn: Division by 0"},
	}

	for _, tt := range tests {
		if diff := deep.Equal(tt.obj.Inspect(), tt.expected); diff != nil {
			t.Error(diff)
		}
	}
}

func TestClosureInspect(t *testing.T) {
	body := &ast.Identifier{
		Token: lexer.Token{LiteralToken: lexer.LiteralToken{Text: "x", Kind: lexer.TokenIdentifier}},
		Value: "x",
	}
	env := object.NewEnvironment().
		Bind("y", &object.Integer{Value: 2}).
		Bind("x", &object.Integer{Value: 1})
	closure := &object.Closure{
		Parameters: []*ast.Identifier{body},
		Body:       body,
		Env:        env,
	}

	// env bindings render sorted by name, the form is stable
	expected := "<fn [x] x {x: 1, y: 2}>"
	if diff := deep.Equal(closure.Inspect(), expected); diff != nil {
		t.Error(diff)
	}
}

func TestEquals(t *testing.T) {
	body := &ast.IntegerLiteral{Value: 1}
	envA := object.NewEnvironment().Bind("x", &object.Integer{Value: 1})
	envB := object.NewEnvironment().Bind("x", &object.Integer{Value: 1})
	envC := object.NewEnvironment().Bind("x", &object.Integer{Value: 2})

	tests := []struct {
		a, b     object.Object
		expected bool
	}{
		{&object.Integer{Value: 1}, &object.Integer{Value: 1}, true},
		{&object.Integer{Value: 1}, &object.Integer{Value: 2}, false},
		{&object.Boolean{Value: true}, &object.Boolean{Value: true}, true},
		{&object.Integer{Value: 1}, &object.Boolean{Value: true}, false},
		{&object.Exception{Message: "Cannot lift"}, &object.Exception{Message: "Cannot lift"}, true},
		// closures compare by params + body + captured environment
		{&object.Closure{Body: body, Env: envA}, &object.Closure{Body: body, Env: envB}, true},
		{&object.Closure{Body: body, Env: envA}, &object.Closure{Body: body, Env: envC}, false},
	}

	for _, tt := range tests {
		if got := object.Equals(tt.a, tt.b); got != tt.expected {
			t.Errorf("Equals(%s, %s) = %v, want %v", tt.a.Inspect(), tt.b.Inspect(), got, tt.expected)
		}
	}
}

func TestEnvironmentIsPersistent(t *testing.T) {
	base := object.NewEnvironment()

	one := base.Bind("x", &object.Integer{Value: 1})
	two := one.Bind("x", &object.Integer{Value: 2})

	if _, ok := base.Resolve("x"); ok {
		t.Error("Bind mutated the original environment")
	}

	val, ok := one.Resolve("x")
	if !ok || val.Inspect() != "1" {
		t.Errorf("expected x=1 in derived env, got %v", val)
	}

	val, ok = two.Resolve("x")
	if !ok || val.Inspect() != "2" {
		t.Errorf("expected x=2 in rebound env, got %v", val)
	}
}

func TestEnvironmentExtend(t *testing.T) {
	names := []*ast.Identifier{
		{Value: "a"},
		{Value: "b"},
	}
	vals := []object.Object{
		&object.Integer{Value: 1},
		&object.Integer{Value: 2},
	}

	base := object.NewEnvironment().Bind("a", &object.Integer{Value: 99})
	extended := base.Extend(names, vals)

	val, _ := extended.Resolve("a")
	if val.Inspect() != "1" {
		t.Errorf("extension should overwrite on name collision, got a=%s", val.Inspect())
	}
	val, _ = extended.Resolve("b")
	if val.Inspect() != "2" {
		t.Errorf("expected b=2, got %s", val.Inspect())
	}

	// base snapshot untouched
	val, _ = base.Resolve("a")
	if val.Inspect() != "99" {
		t.Errorf("Extend mutated the original environment, a=%s", val.Inspect())
	}
}

func TestProcEnvironmentIsPersistent(t *testing.T) {
	decl := &ast.ProcedureDeclaration{
		Name: &ast.Identifier{Value: "inc"},
		Body: &ast.QuitStatement{},
	}

	base := object.NewProcEnvironment()
	derived := base.Register(decl)

	if _, ok := base.Resolve("inc"); ok {
		t.Error("Register mutated the original procedure environment")
	}
	got, ok := derived.Resolve("inc")
	if !ok {
		t.Fatal("expected inc in derived procedure environment")
	}
	if diff := deep.Equal(got, decl); diff != nil {
		t.Error(diff)
	}
}
