package object

import (
	"bytes"
	"imp/ast"
	"sort"
	"strings"
)

// Environment is a persistent name -> value mapping. Bind and Extend return
// a derived copy, the receiver is never mutated. Closures and procedure
// calls carry whole snapshots, so there is no outer-scope chain.
type Environment struct {
	store map[string]Object
}

func NewEnvironment() *Environment {
	return &Environment{
		store: make(map[string]Object),
	}
}

func (e *Environment) Resolve(name string) (Object, bool) {
	obj, ok := e.store[name]
	return obj, ok
}

func (e *Environment) Bind(name string, val Object) *Environment {
	store := make(map[string]Object, len(e.store)+1)
	for k, v := range e.store {
		store[k] = v
	}
	store[name] = val
	return &Environment{store: store}
}

// Extend binds names to vals positionally on top of e. Both slices need to
// be the same length, callers check arity beforehand.
func (e *Environment) Extend(names []*ast.Identifier, vals []Object) *Environment {
	store := make(map[string]Object, len(e.store)+len(names))
	for k, v := range e.store {
		store[k] = v
	}
	for idx, name := range names {
		store[name.Value] = vals[idx]
	}
	return &Environment{store: store}
}

func (e *Environment) Len() int {
	return len(e.store)
}

// Inspect renders the bindings sorted by name, the closure display in
// object.go depends on this form staying stable.
func (e *Environment) Inspect() string {
	names := make([]string, 0, len(e.store))
	for name := range e.store {
		names = append(names, name)
	}
	sort.Strings(names)

	var out bytes.Buffer
	pairs := []string{}
	for _, name := range names {
		pairs = append(pairs, name+": "+e.store[name].Inspect())
	}
	out.WriteString("{")
	out.WriteString(strings.Join(pairs, ", "))
	out.WriteString("}")
	return out.String()
}

// ProcEnvironment maps procedure names to their declarations. The
// declaration itself is the stored value, procedures capture no lexical
// environment and are re-resolved against the call-site Env.
type ProcEnvironment struct {
	store map[string]*ast.ProcedureDeclaration
}

func NewProcEnvironment() *ProcEnvironment {
	return &ProcEnvironment{
		store: make(map[string]*ast.ProcedureDeclaration),
	}
}

func (pe *ProcEnvironment) Resolve(name string) (*ast.ProcedureDeclaration, bool) {
	decl, ok := pe.store[name]
	return decl, ok
}

func (pe *ProcEnvironment) Register(decl *ast.ProcedureDeclaration) *ProcEnvironment {
	store := make(map[string]*ast.ProcedureDeclaration, len(pe.store)+1)
	for k, v := range pe.store {
		store[k] = v
	}
	store[decl.Name.Value] = decl
	return &ProcEnvironment{store: store}
}

func (pe *ProcEnvironment) Len() int {
	return len(pe.store)
}
