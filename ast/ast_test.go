package ast_test

import (
	"testing"

	"github.com/example/jsmin/ast"
	"github.com/example/jsmin/parser"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("input=%q: %v", src, err)
	}
	return prog
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b  string
		equal bool
	}{
		{`a + b`, `a+b`, true},
		{`(a + b) * c`, `(a+b)*c`, true},
		{`((a))`, `a`, true},
		{"var x = 1\nvar y = 2", `var x=1;var y=2;`, true},
		{`a + b`, `a - b`, false},
		{`1`, `1.0`, true},
		{`0`, `-0`, false},
		{`f(a)`, `f(a, b)`, false},
		{`x = {a: 1}`, `x = {a: 2}`, false},
		{"`a${b}`", "`a${b}`", true},
	}

	for _, tt := range tests {
		got := ast.Equal(mustParse(t, tt.a), mustParse(t, tt.b))
		if got != tt.equal {
			t.Errorf("Equal(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.equal)
		}
	}
}

func TestEqualUsesRenamedSymbols(t *testing.T) {
	a := mustParse(t, `x`)
	b := mustParse(t, `y`)
	id := a.Statements[0].(*ast.ExpressionStatement).Expression.(*ast.Identifier)
	id.Symbol = &ast.Symbol{Name: "y", Original: "x"}
	if !ast.Equal(a, b) {
		t.Error("expected identifiers to compare by their printed name")
	}
}

func TestInspectOrder(t *testing.T) {
	prog := mustParse(t, "f(a, `x${b}y`, c.d)")
	var names []string
	ast.Inspect(prog, func(n ast.Node) bool {
		if id, ok := n.(*ast.Identifier); ok {
			names = append(names, id.Value)
		}
		return true
	})
	want := []string{"f", "a", "b", "c", "d"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d]: expected %s, got %s", i, want[i], names[i])
		}
	}
}

func TestInspectPrune(t *testing.T) {
	prog := mustParse(t, `a; function f() { b }`)
	count := 0
	ast.Inspect(prog, func(n ast.Node) bool {
		if _, ok := n.(*ast.Identifier); ok {
			count++
		}
		_, isFn := n.(*ast.FunctionDeclaration)
		return !isFn
	})
	if count != 1 {
		t.Errorf("expected the function body to be skipped, counted %d identifiers", count)
	}
}

func TestRewriteRemovesStatements(t *testing.T) {
	prog := mustParse(t, `a; debugger; b; if (c) debugger;`)
	ast.Rewrite(prog, func(n ast.Node) ast.Node {
		if _, ok := n.(*ast.DebuggerStatement); ok {
			return nil
		}
		return n
	})
	if len(prog.Statements) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(prog.Statements))
	}
	ifs := prog.Statements[2].(*ast.IfStatement)
	if _, ok := ifs.Consequence.(*ast.EmptyStatement); !ok {
		t.Errorf("expected empty consequence, got %T", ifs.Consequence)
	}
}

func TestRewriteReplacesExpressions(t *testing.T) {
	prog := mustParse(t, `x = a + b`)
	ast.Rewrite(prog, func(n ast.Node) ast.Node {
		if id, ok := n.(*ast.Identifier); ok && id.Value == "b" {
			return &ast.NumberLiteral{Value: 2}
		}
		return n
	})
	if !ast.Equal(prog, mustParse(t, `x = a + 2`)) {
		t.Error("expected b to be replaced by 2")
	}
}

func TestScopeDeclareLookup(t *testing.T) {
	global := ast.NewScope(ast.GlobalScope, nil)
	fn := ast.NewScope(ast.FunctionScope, global)
	block := ast.NewScope(ast.BlockScope, fn)

	x := global.Declare("x", ast.Var)
	y := fn.Declare("y", ast.Let)

	if block.Lookup("x") != x || block.Lookup("y") != y {
		t.Error("lookup did not walk the scope chain")
	}
	if global.Lookup("y") != nil {
		t.Error("inner binding visible from outer scope")
	}
	if !block.IsWithin(global) || global.IsWithin(block) {
		t.Error("IsWithin is wrong")
	}
	if block.Global() != global {
		t.Error("Global did not return the root")
	}
	if !y.Kind.Lexical() || x.Kind.Lexical() {
		t.Error("Lexical is wrong")
	}

	// renaming keeps the map keyed by the source name
	y.Name = "a"
	if fn.Symbols["y"] != y {
		t.Error("renamed symbol no longer found by its source name")
	}
	fn.Remove(y)
	if fn.Lookup("y") != nil || len(fn.Order) != 0 {
		t.Error("Remove left the symbol behind")
	}
}

func TestScopeAdoptDetach(t *testing.T) {
	global := ast.NewScope(ast.GlobalScope, nil)
	outer := ast.NewScope(ast.BlockScope, global)
	inner := ast.NewScope(ast.BlockScope, outer)

	global.Adopt(outer)
	if inner.Parent != global || len(outer.Children) != 0 {
		t.Fatal("Adopt did not move children")
	}
	outer.Detach()
	if len(global.Children) != 1 || global.Children[0] != inner {
		t.Errorf("expected only the adopted child, got %d children", len(global.Children))
	}
}

func TestSymbolUnlink(t *testing.T) {
	sym := &ast.Symbol{Name: "x"}
	decl, ref := &ast.Identifier{Value: "x"}, &ast.Identifier{Value: "x"}
	sym.Decls = append(sym.Decls, decl)
	sym.Refs = append(sym.Refs, ref)

	if sym.Uses() != 2 {
		t.Fatalf("expected 2 uses, got %d", sym.Uses())
	}
	if !sym.Unlink(ref) || sym.Unlink(ref) {
		t.Error("unlinking a reference twice")
	}
	if !sym.Unlink(decl) || sym.Uses() != 0 {
		t.Error("declaration not unlinked")
	}
}
