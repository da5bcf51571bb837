package semantic

import (
	"testing"

	"github.com/arabicc/arabicc/internal/lexer"
	"github.com/arabicc/arabicc/internal/parser"
)

func analyzeSource(t *testing.T, src string) error {
	t.Helper()
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	prog, err := parser.Parse(tokens)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return Analyze(prog)
}

func TestValidProgramPasses(t *testing.T) {
	src := `دالة جمع(a, b) { ارجع a + b; } دالة رئيسية() { اطبع(جمع(7, 8)); ارجع 0; }`
	if err := analyzeSource(t, src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUndefinedVariableReference(t *testing.T) {
	err := analyzeSource(t, `دالة رئيسية() { اطبع(y); ارجع 0; }`)
	if err == nil {
		t.Fatal("expected a semantic error")
	}
	if err.Error() != "Variable 'y' not defined" {
		t.Errorf("got %q, want %q", err.Error(), "Variable 'y' not defined")
	}
}

func TestDuplicateVariableInSameScope(t *testing.T) {
	err := analyzeSource(t, `دالة رئيسية() { متغير x = 1; متغير x = 2; ارجع 0; }`)
	if err == nil {
		t.Fatal("expected a semantic error")
	}
}

func TestAssignToUndeclaredVariable(t *testing.T) {
	err := analyzeSource(t, `دالة رئيسية() { x = 1; }`)
	if err == nil {
		t.Fatal("expected a semantic error")
	}
}

func TestDuplicateFunctionName(t *testing.T) {
	err := analyzeSource(t, `دالة رئيسية() { ارجع 0; } دالة رئيسية() { ارجع 1; }`)
	if err == nil {
		t.Fatal("expected a semantic error for duplicate function")
	}
}

func TestDuplicateParameter(t *testing.T) {
	err := analyzeSource(t, `دالة جمع(a, a) { ارجع a; } دالة رئيسية() { ارجع جمع(1, 2); }`)
	if err == nil {
		t.Fatal("expected a semantic error for duplicate parameter")
	}
}

func TestUnresolvedCalledFunction(t *testing.T) {
	err := analyzeSource(t, `دالة رئيسية() { ارجع غير_موجود(); }`)
	if err == nil {
		t.Fatal("expected a semantic error for unresolved function")
	}
}

// VarDecls inside a nested if/while block stay visible for the rest of
// the enclosing function: there is no block scoping in this language.
func TestVarDeclInsideIfLeaksToEnclosingFunction(t *testing.T) {
	src := `دالة رئيسية() {
		اذا (1) {
			متغير x = 5;
		}
		اطبع(x);
		ارجع 0;
	}`
	if err := analyzeSource(t, src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestVarDeclReferencingItselfFailsWithoutOuterShadow(t *testing.T) {
	err := analyzeSource(t, `دالة رئيسية() { متغير x = x; ارجع 0; }`)
	if err == nil {
		t.Fatal("expected a semantic error: x not yet defined when its initializer runs")
	}
}
