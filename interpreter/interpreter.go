package interpreter

import (
	"bytes"
	"fmt"
	"imp/ast"
	"imp/lexer"
	"imp/object"
)

var (
	TRUE  = &object.Boolean{Value: true}
	FALSE = &object.Boolean{Value: false}
)

// Farewell is what executing quit; prints, the driver stops its loop after
// seeing Halted.
const Farewell = "Bye!"

type Interpreter struct {
	penv   *object.ProcEnvironment
	env    *object.Environment
	halted bool
}

func NewInterpreter(penv *object.ProcEnvironment, env *object.Environment) *Interpreter {
	if penv == nil {
		penv = object.NewProcEnvironment()
	}
	if env == nil {
		env = object.NewEnvironment()
	}
	return &Interpreter{
		penv: penv,
		env:  env,
	}
}

func newException(format string, a ...interface{}) *object.Exception {
	return &object.Exception{Message: fmt.Sprintf(format, a...)}
}

// Env is the current value environment snapshot.
func (i *Interpreter) Env() *object.Environment { return i.env }

// ProcEnv is the current procedure environment snapshot.
func (i *Interpreter) ProcEnv() *object.ProcEnvironment { return i.penv }

// Halted reports whether a quit statement was executed.
func (i *Interpreter) Halted() bool { return i.halted }

// Run executes every statement of the program against the threaded
// environment pair and returns the concatenated output. Parse errors never
// reach this point, and runtime faults come back as printed exception
// values, so Run itself cannot fail.
func (i *Interpreter) Run(program *ast.Program) string {
	var out bytes.Buffer
	for _, stmt := range program.Statements {
		out.WriteString(i.Exec(stmt))
		if i.halted {
			break
		}
	}
	return out.String()
}

// Exec reduces one statement against the interpreter's environment pair and
// rebinds the pair to whatever the statement produced.
func (i *Interpreter) Exec(stmt ast.Statement) string {
	output, penv, env := i.exec(stmt, i.penv, i.env)
	i.penv = penv
	i.env = env
	return output
}

func (i *Interpreter) exec(stmt ast.Statement, penv *object.ProcEnvironment, env *object.Environment) (string, *object.ProcEnvironment, *object.Environment) {
	switch nd := stmt.(type) {
	case *ast.PrintStatement:
		val := i.Eval(nd.Value, env)
		return val.Inspect() + "\n", penv, env

	case *ast.AssignStatement:
		val := i.Eval(nd.Value, env)
		return "", penv, env.Bind(nd.Name.Value, val)

	case *ast.QuitStatement:
		i.halted = true
		return Farewell + "\n", penv, env

	case *ast.IfStatement:
		cond := i.Eval(nd.Condition, env)
		boolean, ok := cond.(*object.Boolean)
		if !ok {
			return "exn: Condition is not a Bool\n", penv, env
		}
		if boolean.Value {
			return i.exec(nd.Consequence, penv, env)
		}
		return i.exec(nd.Alternative, penv, env)

	case *ast.BlockStatement:
		return i.execSequence(nd.Body, penv, env)

	case *ast.ProcedureDeclaration:
		return "", penv.Register(nd), env

	case *ast.CallStatement:
		return i.execCall(nd, penv, env)

	default:
		return fmt.Sprintf("exn: Unknown statement %s\n", stmt.String()), penv, env
	}
}

// execSequence threads the environment pair across each step and
// concatenates every step's output. The empty list is the identity.
func (i *Interpreter) execSequence(stmts []ast.Statement, penv *object.ProcEnvironment, env *object.Environment) (string, *object.ProcEnvironment, *object.Environment) {
	var out bytes.Buffer
	for _, stmt := range stmts {
		output, nextPEnv, nextEnv := i.exec(stmt, penv, env)
		out.WriteString(output)
		penv, env = nextPEnv, nextEnv
		if i.halted {
			break
		}
	}
	return out.String(), penv, env
}

// execCall runs a registered procedure against the caller's environment
// extended with the parameter bindings. Unlike closures, procedures capture
// nothing: they see the caller's live bindings, and the environment their
// body produces flows back to the caller.
func (i *Interpreter) execCall(nd *ast.CallStatement, penv *object.ProcEnvironment, env *object.Environment) (string, *object.ProcEnvironment, *object.Environment) {
	decl, ok := penv.Resolve(nd.Name.Value)
	if !ok {
		return fmt.Sprintf("Procedure %s undefined\n", nd.Name.Value), penv, env
	}

	if len(nd.Args) != len(decl.Params) {
		return "exn: Argument count mismatch\n", penv, env
	}

	args := make([]object.Object, 0, len(nd.Args))
	for _, arg := range nd.Args {
		args = append(args, i.Eval(arg, env))
	}

	output, _, bodyEnv := i.exec(decl.Body, penv, env.Extend(decl.Params, args))
	return output, penv, bodyEnv
}

// Eval reduces an expression plus a value environment to a value. It is
// total: every fault becomes an Exception value, never a Go error or panic.
func (i *Interpreter) Eval(exp ast.Expression, env *object.Environment) object.Object {
	switch nd := exp.(type) {
	case *ast.IntegerLiteral:
		return &object.Integer{Value: nd.Value}

	case *ast.BooleanLiteral:
		return nativeBooleanObject(nd.Value)

	case *ast.Identifier:
		val, ok := env.Resolve(nd.Value)
		if !ok {
			return newException("No match in env")
		}
		return val

	case *ast.FunctionExpression:
		return &object.Closure{Parameters: nd.Params, Body: nd.Body, Env: env}

	case *ast.ArithExpression:
		return i.evalArithExpression(nd, env)

	case *ast.LogicExpression:
		return i.evalLogicExpression(nd, env)

	case *ast.CompareExpression:
		return i.evalCompareExpression(nd, env)

	case *ast.IfExpression:
		return i.evalIfExpression(nd, env)

	case *ast.LetExpression:
		return i.evalLetExpression(nd, env)

	case *ast.ApplyExpression:
		return i.evalApplyExpression(nd, env)

	default:
		return newException("Unknown expression %s", exp.String())
	}
}

func nativeBooleanObject(val bool) *object.Boolean {
	if val {
		return TRUE
	} else {
		return FALSE
	}
}

// evalArithExpression lifts an operator over integer operands. Division
// guards the literal-zero divisor before evaluating anything, and the
// evaluated divisor besides, the host must never divide by zero itself.
func (i *Interpreter) evalArithExpression(nd *ast.ArithExpression, env *object.Environment) object.Object {
	if nd.Operator == lexer.TokenSlash {
		if lit, ok := nd.Right.(*ast.IntegerLiteral); ok && lit.Value == 0 {
			return newException("Division by 0")
		}
	}

	left, ok := i.Eval(nd.Left, env).(*object.Integer)
	if !ok {
		return newException("Cannot lift")
	}
	right, ok := i.Eval(nd.Right, env).(*object.Integer)
	if !ok {
		return newException("Cannot lift")
	}

	switch nd.Operator {
	case lexer.TokenPlus:
		return &object.Integer{Value: left.Value + right.Value}
	case lexer.TokenMinus:
		return &object.Integer{Value: left.Value - right.Value}
	case lexer.TokenMultiply:
		return &object.Integer{Value: left.Value * right.Value}
	case lexer.TokenSlash:
		if right.Value == 0 {
			return newException("Division by 0")
		}
		return &object.Integer{Value: left.Value / right.Value}
	default:
		return newException("Unknown operator %s", nd.Operator)
	}
}

func (i *Interpreter) evalLogicExpression(nd *ast.LogicExpression, env *object.Environment) object.Object {
	left, ok := i.Eval(nd.Left, env).(*object.Boolean)
	if !ok {
		return newException("Cannot lift")
	}
	right, ok := i.Eval(nd.Right, env).(*object.Boolean)
	if !ok {
		return newException("Cannot lift")
	}

	switch nd.Operator {
	case lexer.TokenAnd:
		return nativeBooleanObject(left.Value && right.Value)
	case lexer.TokenOr:
		return nativeBooleanObject(left.Value || right.Value)
	default:
		return newException("Unknown operator %s", nd.Operator)
	}
}

func (i *Interpreter) evalCompareExpression(nd *ast.CompareExpression, env *object.Environment) object.Object {
	left, ok := i.Eval(nd.Left, env).(*object.Integer)
	if !ok {
		return newException("Cannot lift")
	}
	right, ok := i.Eval(nd.Right, env).(*object.Integer)
	if !ok {
		return newException("Cannot lift")
	}

	switch nd.Operator {
	case lexer.TokenLess:
		return nativeBooleanObject(left.Value < right.Value)
	case lexer.TokenLessOrEqual:
		return nativeBooleanObject(left.Value <= right.Value)
	case lexer.TokenGreater:
		return nativeBooleanObject(left.Value > right.Value)
	case lexer.TokenGreaterOrEqual:
		return nativeBooleanObject(left.Value >= right.Value)
	case lexer.TokenEquals:
		return nativeBooleanObject(left.Value == right.Value)
	case lexer.TokenNotEquals:
		return nativeBooleanObject(left.Value != right.Value)
	default:
		return newException("Unknown operator %s", nd.Operator)
	}
}

// evalIfExpression demands exactly a Boolean condition, evaluated once (the
// language has no side effects in expressions, so caching is unobservable).
func (i *Interpreter) evalIfExpression(nd *ast.IfExpression, env *object.Environment) object.Object {
	cond := i.Eval(nd.Condition, env)

	boolean, ok := cond.(*object.Boolean)
	if !ok {
		return newException("Condition is not a Bool")
	}

	if boolean.Value {
		return i.Eval(nd.Consequence, env)
	}
	return i.Eval(nd.Alternative, env)
}

// evalLetExpression evaluates every initializer in the outer environment,
// then extends it with all bindings at once. Initializers never see each
// other.
func (i *Interpreter) evalLetExpression(nd *ast.LetExpression, env *object.Environment) object.Object {
	names := make([]*ast.Identifier, 0, len(nd.Bindings))
	vals := make([]object.Object, 0, len(nd.Bindings))
	for _, binding := range nd.Bindings {
		names = append(names, binding.Name)
		vals = append(vals, i.Eval(binding.Value, env))
	}

	return i.Eval(nd.Body, env.Extend(names, vals))
}

// evalApplyExpression evaluates the arguments in the caller's environment
// and the body in the closure's captured one extended with the parameter
// bindings.
func (i *Interpreter) evalApplyExpression(nd *ast.ApplyExpression, env *object.Environment) object.Object {
	callee := i.Eval(nd.Callee, env)

	closure, ok := callee.(*object.Closure)
	if !ok {
		return newException("Apply to non-closure")
	}

	if len(nd.Args) != len(closure.Parameters) {
		return newException("Argument count mismatch")
	}

	args := make([]object.Object, 0, len(nd.Args))
	for _, arg := range nd.Args {
		args = append(args, i.Eval(arg, env))
	}

	return i.Eval(closure.Body, closure.Env.Extend(closure.Parameters, args))
}
