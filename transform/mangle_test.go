package transform

import (
	"strconv"
	"testing"

	"github.com/example/jsmin/ast"
	"github.com/example/jsmin/token"
	"github.com/tdewolff/test"
)

func TestMangle(t *testing.T) {
	runTests(t, []transformTest{
		{"function add(a, b) { return a + b }", "function add(a, b) { return a + b }"},
		{"function f(first, second) { return second + second + first }", "function f(b, a) { return a + a + b }"},
		{"function f(x) { return a + x }", "function f(b) { return a + b }"},
		{"function f(p) { return function (q) { return p + q } }", "function f(a) { return function (b) { return a + b } }"},
		{"function f() { let x = 1; { let y = 2; g(x, y) } }", "function f() { let a = 1; { let b = 2; g(a, b) } }"},
		{"function f(p) { return function (q) { return q } }", "function f(a) { return function (a) { return a } }"},
		{"var longName = 1; function outer() { return longName }", "var longName = 1; function outer() { return longName }"},
		{"x = function named() { return named }", "x = function a() { return a }"},
		{"x = (value) => value * 2", "x = (a) => a * 2"},
		{"try { f() } catch (error) { g(error) }", "try { f() } catch (a) { g(a) }"},
		{"for (let index = 0; index < 3; index++) f(index)", "for (let a = 0; a < 3; a++) f(a)"},
		{"x = class Named { m() { return Named } }", "x = class a { m() { return a } }"},

		// protected scopes
		{"function f(longName) { eval(longName) }", "function f(longName) { eval(longName) }"},
		{"function f(longName) { with (o) g(longName) }", "function f(longName) { with (o) g(longName) }"},
		{"function f(outerName) { return function (x) { eval(x) } }", "function f(outerName) { return function (x) { eval(x) } }"},
		{"function f(longName) { eval(s); return function (x) { return x } }", "function f(longName) { eval(s); return function (a) { return a } }"},
	}, ManglePass)
}

func TestMangleCatchParamRedeclaredByVar(t *testing.T) {
	runTests(t, []transformTest{
		{"function f() { try { a() } catch (e) { var e = 1; return e } }", "function f() { try { a() } catch (b) { var b = 1; return b } }"},
		{"function f() { var x1 = g(), x2 = g(); try {} catch (e) { var e = 1 } return [e, x1, x2, x1, x2] }", "function f() { var a = g(), b = g(); try {} catch (c) { var c = 1 } return [c, a, b, a, b] }"},
		{"function f() { { let x = 1; try {} catch (e) { var e = 2; g(e, x) } } return e }", "function f() { { let b = 1; try {} catch (a) { var a = 2; g(a, b) } } return a }"},
		{"try {} catch (e) { var e = 1; f(e) }", "try {} catch (e) { var e = 1; f(e) }"},
	}, ManglePass)
}

func TestMangleIsIdempotent(t *testing.T) {
	inputs := []string{
		"function f(first, second) { return second + second + first }",
		"function f(p) { return function (q) { return p + q + a } }",
		"function f() { var x = 1; { let y = 2; g(x, y) } }",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			once := run(t, input, ManglePass)
			twice := run(t, input, ManglePass, ManglePass)
			test.That(t, ast.Equal(once, twice))
		})
	}
}

func TestMangleManyBindings(t *testing.T) {
	src := "function f() { var "
	for i := 0; i < 200; i++ {
		if i > 0 {
			src += ", "
		}
		src += "v" + strconv.Itoa(i)
	}
	src += "; return v0 }"
	prog := run(t, src, ManglePass)

	fd := prog.Statements[0].(*ast.FunctionDeclaration)
	seen := map[string]bool{}
	for _, decl := range fd.Body.Statements[0].(*ast.VariableDeclaration).Declarations {
		name := decl.Name.(*ast.Identifier).Value
		test.That(t, !token.IsReserved(name), "reserved name", name)
		test.That(t, !seen[name], "duplicate name", name)
		seen[name] = true
	}
	test.T(t, len(seen), 200)
}

func TestShortName(t *testing.T) {
	tests := []struct {
		i    int
		want string
	}{
		{0, "a"},
		{25, "z"},
		{26, "A"},
		{52, "$"},
		{53, "_"},
		{54, "aa"},
		{55, "ab"},
		{54 + 63, "a9"},
		{54 + 64, "ba"},
		{54 + 54*64, "aaa"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			test.String(t, shortName(tt.i), tt.want)
		})
	}
}

func TestNameGenSkipsReserved(t *testing.T) {
	var gen nameGen
	seen := map[string]bool{}
	for i := 0; i < 54+54*64; i++ {
		name := gen.next()
		test.That(t, !token.IsReserved(name), "reserved name", name)
		test.That(t, !seen[name], "duplicate name", name)
		seen[name] = true
	}
	test.That(t, !seen["do"] && !seen["if"] && !seen["in"])
}
