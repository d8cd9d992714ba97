package transform

import (
	"testing"

	"github.com/example/jsmin/ast"
	"github.com/tdewolff/test"
)

var dceTests = []transformTest{
	// unreachable statements
	{"function f() { return 1; g(); }", "function f() { return 1 }"},
	{"function f() { throw e; g(); h(); }", "function f() { throw e }"},
	{"for (;;) { break; g(); }", "for (;;) { break }"},
	{"function f() { return g(); var x = 1; }", "function f() { return g(); var x }"},
	{"function f() { return g(); var x; }", "function f() { return g(); var x }"},
	{"function f() { return g; function g() {} }", "function f() { return g; function g() {} }"},
	{"function f() { return; let x = 1; }", "function f() { return }"},

	// constant tests
	{"if (false) { doSomething(); }", ""},
	{"if (true) a(); else b();", "a();"},
	{"if (0) a(); else b();", "b();"},
	{"if (false) { var v = g(); }", "var v;"},
	{"while (false) { g(); }", ""},
	{"for (var i = 0; false; i++) g(i);", "var i = 0;"},
	{"for (init(); false;) g();", "init();"},
	{"x = true ? a : b", "x = a"},
	{"x = 0 ? a : b", "x = b"},
	{"x = false && y()", "x = false"},
	{"x = true && y()", "x = y()"},
	{"x = null ?? y()", "x = y()"},
	{"x = 1 ?? y()", "x = 1"},

	// unreferenced locals
	{"function f() { var x = 1; return 2 }", "function f() { return 2 }"},
	{"function f() { var x = 1; var y = x; return 2 }", "function f() { return 2 }"},
	{"function f() { let x = g(); return 2 }", "function f() { let x = g(); return 2 }"},
	{"function f() { function g() {} return 1 }", "function f() { return 1 }"},
	{"function f() { function g() { h() } function h() {} }", "function f() {}"},
	{"function f() { class C {} }", "function f() {}"},
	{"function f() { class C extends B {} }", "function f() { class C extends B {} }"},
	{"function f(a) { return 1 }", "function f(a) { return 1 }"},

	// never touched
	{"var unused = 1;", "var unused = 1;"},
	{"function unused() {}", "function unused() {}"},
	{"function f() { var x = 1; eval(s) }", "function f() { var x = 1; eval(s) }"},
	{"function f() { var x = 1; with (o) {} }", "function f() { var x = 1; with (o) {} }"},

	// this and direct eval
	{"x = (true ? o.m : n)()", "x = (true ? o.m : n)()"},
	{"x = (true && o.m)()", "x = (true && o.m)()"},
	{"x = (0 || eval)(s)", "x = (0 || eval)(s)"},
}

func TestEliminateDeadCode(t *testing.T) {
	runTests(t, dceTests, DCEPass)
}

func TestEliminateDeadCodeIsIdempotent(t *testing.T) {
	for _, tt := range dceTests {
		t.Run(tt.input, func(t *testing.T) {
			once := run(t, tt.input, DCEPass)
			twice := run(t, tt.input, DCEPass, DCEPass)
			test.That(t, ast.Equal(once, twice))
		})
	}
}

func TestDeadBranchLeavesNoFreeNames(t *testing.T) {
	prog := run(t, "if (false) { doSomething(); }", DCEPass)
	test.T(t, len(prog.Statements), 0)
	test.T(t, len(prog.Scope.Free), 0)
}

func TestBlockFunctionSurvivesConstantTest(t *testing.T) {
	prog := run(t, "if (true) { function g() {} } g()", DCEPass)
	test.T(t, len(prog.Statements), 2)
	b, ok := prog.Statements[0].(*ast.BlockStatement)
	test.That(t, ok, "function declaration must stay in its block")
	test.T(t, len(b.Statements), 1)
	test.T(t, len(prog.Scope.Free), 0)
}

func TestDeadCodeProtectsDirectives(t *testing.T) {
	prog := run(t, `function f() { if (false) g(); "use strict"; return this }`, DCEPass)
	fd := prog.Statements[0].(*ast.FunctionDeclaration)
	stmt := fd.Body.Statements[0].(*ast.ExpressionStatement)
	_, ok := stmt.Expression.(*ast.ParenthesizedExpression)
	test.That(t, ok, "string statement must not become a directive")
}
