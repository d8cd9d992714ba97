package transform

import (
	"testing"

	"github.com/example/jsmin/ast"
	"github.com/tdewolff/test"
)

func TestSimplify(t *testing.T) {
	runTests(t, []transformTest{
		{"var a = 1; var b = 2;", "var a = 1, b = 2;"},
		{"let a = 1; let b = 2; var c;", "let a = 1, b = 2; var c;"},
		{"{ a(); { b(); } }", "a(); b();"},
		{"{ let x = 1; f(x) }", "{ let x = 1; f(x) }"},
		{"if (a) { b() }", "if (a) b()"},
		{"if (a) { b() } else { c() }", "if (a) b(); else c()"},
		{"while (x) {}", "while (x);"},
		{"for (;;) { f() }", "for (;;) f()"},
		{";;f();;", "f();"},
		{"function f() { { var x = 1; } return x }", "function f() { var x = 1; return x }"},
	}, SimplifyPass)
}

func TestSimplifyDropsParentheses(t *testing.T) {
	prog := run(t, "x = (1 + 2) * 3", SimplifyPass)
	assign := prog.Statements[0].(*ast.ExpressionStatement).Expression.(*ast.AssignmentExpression)
	mul := assign.Right.(*ast.BinaryExpression)
	_, ok := mul.Left.(*ast.BinaryExpression)
	test.That(t, ok, "parentheses must be dropped")
}

func TestSimplifyMergesDeclarations(t *testing.T) {
	prog := run(t, "var a = 1; var b = 2; { var c = 3; }", SimplifyPass)
	test.T(t, len(prog.Statements), 1)
	test.T(t, len(prog.Statements[0].(*ast.VariableDeclaration).Declarations), 3)
}

func TestSimplifyDanglingElse(t *testing.T) {
	prog := run(t, "if (a) { if (b) c() } else d()", SimplifyPass)
	stmt := prog.Statements[0].(*ast.IfStatement)
	_, ok := stmt.Consequence.(*ast.BlockStatement)
	test.That(t, ok, "braces around an inner if without else must stay")

	prog = run(t, "if (a) { while (x) { if (b) c() } } else d()", SimplifyPass)
	stmt = prog.Statements[0].(*ast.IfStatement)
	_, ok = stmt.Consequence.(*ast.BlockStatement)
	test.That(t, ok, "braces around a loop ending in an if must stay")

	prog = run(t, "if (a) { if (b) c(); else e() } else d()", SimplifyPass)
	stmt = prog.Statements[0].(*ast.IfStatement)
	_, ok = stmt.Consequence.(*ast.IfStatement)
	test.That(t, ok, "inner if with else needs no braces")
}

func TestSimplifyKeepsDeclarationBodies(t *testing.T) {
	prog := run(t, "if (a) { let x = 1 }", SimplifyPass)
	stmt := prog.Statements[0].(*ast.IfStatement)
	_, ok := stmt.Consequence.(*ast.BlockStatement)
	test.That(t, ok)
}

func TestSimplifyProtectsDirectives(t *testing.T) {
	prog := run(t, `{ "use strict" } x = 1`, SimplifyPass)
	stmt := prog.Statements[0].(*ast.ExpressionStatement)
	_, ok := stmt.Expression.(*ast.ParenthesizedExpression)
	test.That(t, ok, "string statement must not become a directive")

	prog = run(t, `"use strict"; x = 1`, SimplifyPass)
	stmt = prog.Statements[0].(*ast.ExpressionStatement)
	_, ok = stmt.Expression.(*ast.StringLiteral)
	test.That(t, ok, "directive must stay")
}

func TestSimplifyIsIdempotent(t *testing.T) {
	inputs := []string{
		"if (a) { while (x) { if (b) c() } } else d()",
		`{ "use strict" } x = 1`,
		"var a; { var b; { let c; } }",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			once := run(t, input, SimplifyPass)
			twice := run(t, input, SimplifyPass, SimplifyPass)
			test.That(t, ast.Equal(once, twice))
		})
	}
}
