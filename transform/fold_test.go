package transform

import (
	"testing"

	"github.com/example/jsmin/ast"
	"github.com/tdewolff/test"
)

func TestFold(t *testing.T) {
	runTests(t, []transformTest{
		{"x = 1 + 2", "x = 3"},
		{"x = 1 / 3", "x = 1 / 3"},
		{"x = 6 / 3", "x = 2"},
		{"x = 7 % 4", "x = 3"},
		{"x = 2 ** 10", "x = 1024"},
		{`x = "a" + 1`, `x = "a1"`},
		{`x = "a" + "b" + "c"`, `x = "abc"`},
		{`x = y + "a" + "b"`, `x = y + "ab"`},
		{`x = "a" + y + "b"`, `x = "a" + y + "b"`},
		{`x = -"5"`, "x = -5"},
		{"x = 1 - 3", "x = -2"},
		{"x = 5 & 3", "x = 1"},
		{"x = 5 | 3", "x = 7"},
		{"x = 5 ^ 3", "x = 6"},
		{"x = -1 >>> 28", "x = 15"},
		{"x = 1 << 2", "x = 4"},
		{"x = ~5", "x = -6"},
		{`x = "abc" === "abc"`, "x = true"},
		{`x = "abc" !== "abd"`, "x = true"},
		{`x = 1 == "1"`, `x = 1 == "1"`},
		{`x = typeof "s"`, `x = "string"`},
		{"x = 1 && 2", "x = 2"},
		{`x = 0 || "a"`, `x = "a"`},
		{"x = null ?? 1", "x = 1"},
		{"x = y * (2 + 3)", "x = y * 5"},
		{"x = !0", "x = !0"},
		{"x = 1 < 2", "x = 1 < 2"},

		// no literal spelling
		{"x = 0 / 0", "x = 0 / 0"},
		{"x = 1 / 0", "x = 1 / 0"},
		{"x = 0 * -1", "x = 0 * -1"},
		{`x = -"abc"`, `x = -"abc"`},
		{"x = 1e308 * 10", "x = 1e308 * 10"},

		// operands that are not constants
		{"x = y + 1", "x = y + 1"},
		{"x = y && 2", "x = y && 2"},
	}, FoldPass)
}

func TestFoldKeepsNegativeLiteral(t *testing.T) {
	prog := run(t, "x = -5", FoldPass)
	assign := prog.Statements[0].(*ast.ExpressionStatement).Expression.(*ast.AssignmentExpression)
	neg, ok := assign.Right.(*ast.UnaryExpression)
	test.That(t, ok)
	test.String(t, neg.Operator, "-")
	test.Float(t, neg.Operand.(*ast.NumberLiteral).Value, 5)
}

func TestFoldProtectsDirectives(t *testing.T) {
	prog := run(t, `"use " + "strict"; x = 1`, FoldPass)
	stmt := prog.Statements[0].(*ast.ExpressionStatement)
	paren, ok := stmt.Expression.(*ast.ParenthesizedExpression)
	test.That(t, ok, "folded string statement must not become a directive")
	test.String(t, paren.Expression.(*ast.StringLiteral).Value, "use strict")
}

func TestFoldKeepsExistingDirectives(t *testing.T) {
	prog := run(t, `"use strict"; x = 1 + 2`, FoldPass)
	stmt := prog.Statements[0].(*ast.ExpressionStatement)
	_, ok := stmt.Expression.(*ast.StringLiteral)
	test.That(t, ok)
}

func TestFoldIsIdempotent(t *testing.T) {
	inputs := []string{
		"x = 1 + 2 * 3",
		`x = y + "a" + "b" + "c"`,
		"x = -(1 + 2)",
		`"a" + "b"; x = 1`,
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			once := run(t, input, FoldPass)
			twice := run(t, input, FoldPass, FoldPass)
			test.That(t, ast.Equal(once, twice))
		})
	}
}
