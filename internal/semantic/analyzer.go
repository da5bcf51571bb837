// Package semantic validates an ast.Program's name resolution in two
// passes: a global pass collecting function names, then a per-function
// pass walking each body against a scope chain. It performs no type
// checking beyond "this is an integer variable" since the language has
// exactly one type.
package semantic

import (
	"github.com/arabicc/arabicc/internal/ast"
)

// Analyzer holds the state shared across a single analysis run: the
// table of declared function names. Only a name's presence is recorded;
// arities are not tracked, so call arity is unchecked.
type Analyzer struct {
	functions map[string]bool
}

// New creates an Analyzer with an empty function table.
func New() *Analyzer {
	return &Analyzer{functions: make(map[string]bool)}
}

// Analyze runs both passes over prog, returning the first *Error
// encountered, or nil if prog is valid.
func Analyze(prog *ast.Program) error {
	a := New()
	if err := a.collectFunctions(prog); err != nil {
		return err
	}
	for _, fn := range prog.Functions {
		if err := a.analyzeFunction(fn); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) collectFunctions(prog *ast.Program) error {
	for _, fn := range prog.Functions {
		if a.functions[fn.Name] {
			return newError("Function " + fn.Name + " already defined")
		}
		a.functions[fn.Name] = true
	}
	return nil
}

func (a *Analyzer) analyzeFunction(fn *ast.Function) error {
	global := newScope(nil)
	fnScope := newScope(global)

	for _, param := range fn.Params {
		if !fnScope.define(param) {
			return newError("Parameter '" + param + "' already defined")
		}
	}

	return a.analyzeBlock(fn.Body, fnScope)
}

// analyzeBlock walks stmts against sc without pushing a new scope: the
// language does not block-scope if/while bodies, so a VarDecl inside a
// nested block remains visible for the rest of the enclosing function.
func (a *Analyzer) analyzeBlock(block *ast.Block, sc *scope) error {
	for _, stmt := range block.Statements {
		if err := a.analyzeStatement(stmt, sc); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) analyzeStatement(stmt ast.Statement, sc *scope) error {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		if err := a.analyzeExpression(s.Value, sc); err != nil {
			return err
		}
		if !sc.define(s.Name) {
			return newError("Variable '" + s.Name + "' already defined")
		}
		return nil

	case *ast.Assign:
		if !sc.exists(s.Name) {
			return newError("Variable '" + s.Name + "' not defined")
		}
		return a.analyzeExpression(s.Value, sc)

	case *ast.If:
		if err := a.analyzeExpression(s.Condition, sc); err != nil {
			return err
		}
		if err := a.analyzeBlock(s.Then, sc); err != nil {
			return err
		}
		if s.Else != nil {
			return a.analyzeBlock(s.Else, sc)
		}
		return nil

	case *ast.While:
		if err := a.analyzeExpression(s.Condition, sc); err != nil {
			return err
		}
		return a.analyzeBlock(s.Body, sc)

	case *ast.Return:
		return a.analyzeExpression(s.Value, sc)

	case *ast.Print:
		return a.analyzeExpression(s.Value, sc)

	case *ast.FunctionCall:
		return a.analyzeCall(s, sc)

	default:
		return newError("unhandled statement type")
	}
}

func (a *Analyzer) analyzeExpression(expr ast.Expression, sc *scope) error {
	switch e := expr.(type) {
	case *ast.Number:
		return nil

	case *ast.Ident:
		if !sc.exists(e.Name) {
			return newError("Variable '" + e.Name + "' not defined")
		}
		return nil

	case *ast.Binary:
		if err := a.analyzeExpression(e.Left, sc); err != nil {
			return err
		}
		return a.analyzeExpression(e.Right, sc)

	case *ast.Unary:
		return a.analyzeExpression(e.Operand, sc)

	case *ast.FunctionCall:
		return a.analyzeCall(e, sc)

	default:
		return newError("unhandled expression type")
	}
}

func (a *Analyzer) analyzeCall(call *ast.FunctionCall, sc *scope) error {
	if !a.functions[call.Name] {
		return newError("Function '" + call.Name + "' not defined")
	}
	for _, arg := range call.Args {
		if err := a.analyzeExpression(arg, sc); err != nil {
			return err
		}
	}
	return nil
}
