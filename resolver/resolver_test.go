package resolver

import (
	"testing"

	"github.com/example/jsmin/ast"
	"github.com/example/jsmin/diagnostic"
	"github.com/example/jsmin/parser"
	"github.com/tdewolff/test"
)

func resolve(t *testing.T, input string) (*ast.Program, []diagnostic.Diagnostic) {
	t.Helper()
	prog, err := parser.Parse(input)
	if err != nil {
		t.Fatalf("input=%q: parser error: %s", input, err)
	}
	return prog, Resolve(prog)
}

func countKind(list []diagnostic.Diagnostic, kind diagnostic.Kind) int {
	n := 0
	for _, d := range list {
		if d.Kind == kind {
			n++
		}
	}
	return n
}

func symbol(t *testing.T, scope *ast.Scope, name string) *ast.Symbol {
	t.Helper()
	sym := scope.Symbols[name]
	if sym == nil {
		t.Fatalf("expected %q to be declared in %s scope", name, scope.Kind)
	}
	return sym
}

func funcDecl(t *testing.T, stmt ast.Statement) *ast.FunctionDeclaration {
	t.Helper()
	fd, ok := stmt.(*ast.FunctionDeclaration)
	if !ok {
		t.Fatalf("expected FunctionDeclaration, got %T", stmt)
	}
	return fd
}

func TestFreeReferences(t *testing.T) {
	prog, diags := resolve(t, "console.log(x); x = 1;")
	global := prog.Scope
	test.T(t, len(global.Symbols), 0)
	test.T(t, len(global.Free["console"]), 1)
	test.T(t, len(global.Free["x"]), 2)

	test.T(t, len(diags), 1)
	test.T(t, diags[0].Kind, diagnostic.UnresolvedReference)
	test.T(t, diags[0].Severity, diagnostic.Warning)
	test.String(t, diags[0].Message, "'x' is not defined")
	test.T(t, diags[0].Line, 1)
	test.T(t, diags[0].Column, 13)
}

func TestHoisting(t *testing.T) {
	prog, diags := resolve(t, "f(); var a = 1; function f() { return a }")
	test.T(t, len(diags), 0)

	a := symbol(t, prog.Scope, "a")
	f := symbol(t, prog.Scope, "f")
	test.T(t, a.Kind, ast.Var)
	test.T(t, f.Kind, ast.Func)
	test.T(t, len(a.Decls), 1)
	test.T(t, len(a.Refs), 1)
	test.T(t, len(f.Decls), 1)
	test.T(t, len(f.Refs), 1)
	test.T(t, len(prog.Scope.Free), 0)
}

func TestFunctionScope(t *testing.T) {
	prog, diags := resolve(t, "function g(a, b) { var c = a + b; return c + a }")
	test.T(t, len(diags), 0)

	g := funcDecl(t, prog.Statements[0])
	test.That(t, g.Scope != nil)
	test.T(t, g.Scope.Kind, ast.FunctionScope)
	test.That(t, g.Scope.Parent == prog.Scope)
	test.T(t, symbol(t, g.Scope, "a").Kind, ast.Param)
	test.T(t, symbol(t, g.Scope, "b").Kind, ast.Param)
	test.T(t, symbol(t, g.Scope, "c").Kind, ast.Var)
	test.T(t, symbol(t, g.Scope, "a").Uses(), 3)
	test.T(t, symbol(t, g.Scope, "c").Uses(), 2)
	test.That(t, g.Body.Scope == nil, "function body has no scope of its own")
}

func TestBlockShadowing(t *testing.T) {
	prog, diags := resolve(t, "let x = 1; { let x = 2; x; } x;")
	test.T(t, len(diags), 0)

	outer := symbol(t, prog.Scope, "x")
	block := prog.Statements[1].(*ast.BlockStatement)
	inner := symbol(t, block.Scope, "x")
	test.That(t, outer != inner)
	test.T(t, len(outer.Refs), 1)
	test.T(t, len(inner.Refs), 1)

	ref := block.Statements[1].(*ast.ExpressionStatement).Expression.(*ast.Identifier)
	test.That(t, ref.Symbol == inner)
}

func TestAnnexBFunctionInBlock(t *testing.T) {
	prog, diags := resolve(t, "{ function f() {} } f();")
	test.T(t, len(diags), 0)

	f := symbol(t, prog.Scope, "f")
	test.T(t, f.Kind, ast.Func)
	test.T(t, len(f.Refs), 1)
	test.T(t, len(f.Decls), 1)

	block := prog.Statements[0].(*ast.BlockStatement)
	test.T(t, len(block.Scope.Symbols), 0)
}

func TestAnnexBBlockedByLexical(t *testing.T) {
	prog, diags := resolve(t, "let f = 1; { function f() {} }")
	test.T(t, len(diags), 0)

	test.T(t, symbol(t, prog.Scope, "f").Kind, ast.Let)
	block := prog.Statements[1].(*ast.BlockStatement)
	test.T(t, symbol(t, block.Scope, "f").Kind, ast.Func)
}

func TestRedeclaration(t *testing.T) {
	errs := []string{
		"let a; let a;",
		"let a; var a;",
		"var a; let a;",
		"const a = 1; function a() {}",
		"function a() {} let a;",
		"class A {} class A {}",
		"{ var b; let b; }",
		"try {} catch (e) { let e; }",
		"function f() { let x; { var x; } }",
		"switch (1) { case 0: let y; case 1: let y; }",
	}
	for _, input := range errs {
		t.Run(input, func(t *testing.T) {
			_, diags := resolve(t, input)
			test.T(t, countKind(diags, diagnostic.Redeclaration), 1)
			test.That(t, diagnostic.HasErrors(diags))
		})
	}

	ok := []string{
		"var a; var a;",
		"function f() {} var f;",
		"var f; function f() {}",
		"function f(a) { var a; }",
		"try {} catch (e) { var e; }",
		"{ function f() {} function f() {} }",
		"for (let i = 0;;) {} for (let i = 0;;) {}",
		"let a; { let a; }",
	}
	for _, input := range ok {
		t.Run(input, func(t *testing.T) {
			_, diags := resolve(t, input)
			test.T(t, countKind(diags, diagnostic.Redeclaration), 0)
		})
	}
}

func TestRedeclarationMessage(t *testing.T) {
	_, diags := resolve(t, "let a;\nlet a;")
	test.T(t, len(diags), 1)
	test.String(t, diags[0].String(), "2:5: error: Identifier 'a' has already been declared")
}

func TestUseBeforeDeclaration(t *testing.T) {
	tests := []struct {
		input string
		warns int
	}{
		{"x; let x = 1;", 1},
		{"let y = y;", 1},
		{"typeof z; let z;", 1},
		{"for (let i of i) {}", 1},
		{"function f() { return x } let x;", 0},
		{"let x = 1; x;", 0},
		{"f(); function f() {}", 0},
		{"a; var a;", 0},
		{"class A { m() { return A } }", 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, diags := resolve(t, tt.input)
			test.T(t, countKind(diags, diagnostic.UseBeforeDeclaration), tt.warns)
			test.That(t, !diagnostic.HasErrors(diags))
		})
	}
}

func TestUnresolvedWarnings(t *testing.T) {
	tests := []struct {
		input string
		warns int
	}{
		{"a; a; b;", 2},
		{"typeof q === 'undefined'", 0},
		{"Math.max(1, 2); console.log(window)", 0},
		{"function f() { return arguments }", 0},
		{"function f() { return () => arguments }", 0},
		{"arguments", 1},
		{"() => arguments", 1},
		{"l: for (;;) { break l; }", 0},
		{"var o = {a: 1}; o.a; o.b;", 0},
		{"function f() { return new.target }", 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, diags := resolve(t, tt.input)
			test.T(t, countKind(diags, diagnostic.UnresolvedReference), tt.warns)
		})
	}
}

func TestPropertyKeysAreNotReferences(t *testing.T) {
	prog, _ := resolve(t, "var b; var o = {a: b, b, [k]: 1, c() {}}; o.a; o[b];")
	global := prog.Scope
	test.T(t, len(global.Free), 1)
	test.T(t, len(global.Free["k"]), 1)
	test.T(t, len(symbol(t, global, "b").Refs), 3)
	test.T(t, len(symbol(t, global, "o").Refs), 2)
}

func TestDestructuringBindings(t *testing.T) {
	prog, diags := resolve(t, "var {a, b: [c, ...d], e = a, ...f} = {}; [a, c] = [c, a];")
	test.T(t, len(diags), 0)
	for _, name := range []string{"a", "c", "d", "e", "f"} {
		test.T(t, len(symbol(t, prog.Scope, name).Decls), 1, name)
	}
	test.That(t, prog.Scope.Symbols["b"] == nil, "b is a property key")
	test.T(t, len(symbol(t, prog.Scope, "a").Refs), 3)
	test.T(t, len(symbol(t, prog.Scope, "c").Refs), 2)
}

func TestBindingIdentifiers(t *testing.T) {
	prog, _ := resolve(t, "var {a, b: [c, , ...d], e = 1, ...f} = x;")
	decl := prog.Statements[0].(*ast.VariableDeclaration)
	var names []string
	for _, id := range BindingIdentifiers(decl.Declarations[0].Name) {
		names = append(names, id.Value)
	}
	test.T(t, names, []string{"a", "c", "d", "e", "f"})
	test.T(t, len(BindingIdentifiers(nil)), 0)
}

func TestNamedFunctionExpression(t *testing.T) {
	prog, diags := resolve(t, "(function fact(n) { return n && fact(n - 1) });")
	test.T(t, len(diags), 0)
	fe := ast.Unparen(prog.Statements[0].(*ast.ExpressionStatement).Expression).(*ast.FunctionExpression)
	fact := symbol(t, fe.Scope, "fact")
	test.T(t, len(fact.Decls), 1)
	test.T(t, len(fact.Refs), 1)
	test.That(t, prog.Scope.Symbols["fact"] == nil)
}

func TestCatchAndLoopScopes(t *testing.T) {
	prog, diags := resolve(t, "try {} catch ({a, b}) { a } for (let i = 0; i < 3; i++) {}")
	test.T(t, len(diags), 0)

	try := prog.Statements[0].(*ast.TryStatement)
	test.T(t, try.Handler.Scope.Kind, ast.CatchScope)
	test.T(t, symbol(t, try.Handler.Scope, "a").Kind, ast.CatchParam)
	test.T(t, len(symbol(t, try.Handler.Scope, "a").Refs), 1)
	test.That(t, try.Handler.Body.Scope.Parent == try.Handler.Scope)

	loop := prog.Statements[1].(*ast.ForStatement)
	i := symbol(t, loop.Scope, "i")
	test.T(t, i.Kind, ast.Let)
	test.T(t, len(i.Decls), 1)
	test.T(t, len(i.Refs), 2)
}

func TestClassNames(t *testing.T) {
	prog, diags := resolve(t, "class A extends B { m() { return A } } var C = class D { n() { return D } };")
	test.T(t, countKind(diags, diagnostic.UnresolvedReference), 1)

	a := symbol(t, prog.Scope, "A")
	test.T(t, a.Kind, ast.Class)
	test.T(t, len(a.Refs), 1)
	test.That(t, prog.Scope.Symbols["D"] == nil)

	ce := prog.Statements[1].(*ast.VariableDeclaration).Declarations[0].Value.(*ast.ClassExpression)
	test.T(t, ce.Scope.Kind, ast.ClassScope)
	test.T(t, len(symbol(t, ce.Scope, "D").Refs), 1)
}

func TestDirectEvalMarksAncestors(t *testing.T) {
	prog, _ := resolve(t, "function f() { function g() { eval('x') } } function h() {}")
	f := funcDecl(t, prog.Statements[0])
	g := funcDecl(t, f.Body.Statements[0])
	h := funcDecl(t, prog.Statements[1])

	test.That(t, g.Scope.ContainsEval)
	test.That(t, f.Scope.ContainsEval)
	test.That(t, prog.Scope.ContainsEval)
	test.That(t, !h.Scope.ContainsEval)
	test.That(t, f.Scope.Protected())
}

func TestShadowedEvalIsNotDirect(t *testing.T) {
	prog, _ := resolve(t, "function f() { var eval; eval('x') }")
	f := funcDecl(t, prog.Statements[0])
	test.That(t, !f.Scope.ContainsEval)
	test.That(t, !prog.Scope.ContainsEval)
}

func TestWithMarksAncestors(t *testing.T) {
	prog, _ := resolve(t, "function f(o) { with (o) { x } } function g() {}")
	f := funcDecl(t, prog.Statements[0])
	g := funcDecl(t, prog.Statements[1])
	test.That(t, f.Scope.ContainsWith)
	test.That(t, prog.Scope.ContainsWith)
	test.That(t, !g.Scope.ContainsWith)
}

func TestResolveTwice(t *testing.T) {
	prog, _ := resolve(t, "var a = 1; function f(b) { return a + b + c }")
	first := prog.Scope
	diags := Resolve(prog)

	test.That(t, prog.Scope != first)
	test.T(t, len(diags), 1)
	a := symbol(t, prog.Scope, "a")
	test.T(t, len(a.Decls), 1)
	test.T(t, len(a.Refs), 1)
	test.T(t, len(prog.Scope.Free["c"]), 1)

	f := funcDecl(t, prog.Statements[1])
	test.That(t, f.Scope.Parent == prog.Scope)
	test.T(t, len(prog.Scope.Children), 1)
}
