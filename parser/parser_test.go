package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/example/jsmin/ast"
	"github.com/example/jsmin/lexer"
)

func parse(t *testing.T, input string) *ast.Program {
	t.Helper()
	prog, err := Parse(input)
	if err != nil {
		t.Fatalf("input=%q: parser error: %s", input, err)
	}
	return prog
}

func expectStmtCount(t *testing.T, prog *ast.Program, n int) {
	t.Helper()
	if len(prog.Statements) != n {
		t.Fatalf("expected %d statements, got %d", n, len(prog.Statements))
	}
}

// firstExpr returns the expression of the first statement.
func firstExpr(t *testing.T, input string) ast.Expression {
	t.Helper()
	prog := parse(t, input)
	es, ok := prog.Statements[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("expected ExpressionStatement, got %T", prog.Statements[0])
	}
	return es.Expression
}

// ---------- Variable Declarations ----------

func TestVarDeclaration(t *testing.T) {
	prog := parse(t, `var x = 1;`)
	expectStmtCount(t, prog, 1)
	decl, ok := prog.Statements[0].(*ast.VariableDeclaration)
	if !ok {
		t.Fatalf("expected VariableDeclaration, got %T", prog.Statements[0])
	}
	if decl.Kind != "var" {
		t.Errorf("expected kind var, got %s", decl.Kind)
	}
	ident, ok := decl.Declarations[0].Name.(*ast.Identifier)
	if !ok {
		t.Fatalf("expected Identifier, got %T", decl.Declarations[0].Name)
	}
	if ident.Value != "x" {
		t.Errorf("expected x, got %s", ident.Value)
	}
	num, ok := decl.Declarations[0].Value.(*ast.NumberLiteral)
	if !ok || num.Value != 1 {
		t.Errorf("expected number 1, got %#v", decl.Declarations[0].Value)
	}
}

func TestMultipleDeclarators(t *testing.T) {
	prog := parse(t, `var a = 1, b = 2, c;`)
	decl := prog.Statements[0].(*ast.VariableDeclaration)
	if len(decl.Declarations) != 3 {
		t.Fatalf("expected 3 declarators, got %d", len(decl.Declarations))
	}
	if decl.Declarations[2].Value != nil {
		t.Error("expected nil value for c")
	}
}

func TestDestructuringDeclarations(t *testing.T) {
	prog := parse(t, `const { a, b: c, d = 1, ...rest } = obj; let [x, , y = 2, ...z] = arr;`)
	expectStmtCount(t, prog, 2)

	obj := prog.Statements[0].(*ast.VariableDeclaration).Declarations[0].Name.(*ast.ObjectPattern)
	if len(obj.Properties) != 3 {
		t.Fatalf("expected 3 properties, got %d", len(obj.Properties))
	}
	if _, ok := obj.Properties[2].Value.(*ast.AssignmentPattern); !ok {
		t.Errorf("expected AssignmentPattern for d = 1, got %T", obj.Properties[2].Value)
	}
	if rest, ok := obj.Rest.(*ast.Identifier); !ok || rest.Value != "rest" {
		t.Errorf("expected rest identifier, got %#v", obj.Rest)
	}

	arr := prog.Statements[1].(*ast.VariableDeclaration).Declarations[0].Name.(*ast.ArrayPattern)
	if len(arr.Elements) != 4 {
		t.Fatalf("expected 4 elements, got %d", len(arr.Elements))
	}
	if arr.Elements[1] != nil {
		t.Error("expected nil for elision")
	}
	if _, ok := arr.Elements[3].(*ast.RestElement); !ok {
		t.Errorf("expected RestElement, got %T", arr.Elements[3])
	}
}

func TestShorthandPropertyHasSeparateKeyAndValue(t *testing.T) {
	expr := firstExpr(t, `({a})`)
	obj := ast.Unparen(expr).(*ast.ObjectLiteral)
	prop := obj.Properties[0]
	if prop.Key == prop.Value {
		t.Fatal("shorthand key and value share a node")
	}
	if prop.Key.(*ast.Identifier).Value != "a" || prop.Value.(*ast.Identifier).Value != "a" {
		t.Errorf("unexpected shorthand property %#v", prop)
	}
}

// ---------- Statements ----------

func TestStatements(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`if (a) b; else c;`, "IfStatement"},
		{`while (a) {}`, "WhileStatement"},
		{`do x++; while (a)`, "DoWhileStatement"},
		{`for (var i = 0; i < 10; i++) {}`, "ForStatement"},
		{`for (;;) break;`, "ForStatement"},
		{`for (var k in o) {}`, "ForInStatement"},
		{`for (const v of list) {}`, "ForOfStatement"},
		{`for (a.b of list) {}`, "ForOfStatement"},
		{`switch (x) { case 1: break; default: }`, "SwitchStatement"},
		{`try {} catch (e) {} finally {}`, "TryStatement"},
		{`try {} catch {}`, "TryStatement"},
		{`throw new Error("x")`, "ThrowStatement"},
		{`function f(a, b = 1, ...c) { return a }`, "FunctionDeclaration"},
		{`async function f() { await g() }`, "FunctionDeclaration"},
		{`function* g() { yield 1; yield* h() }`, "FunctionDeclaration"},
		{`class A extends B { constructor() { super() } static m() {} get x() { return 1 } }`, "ClassDeclaration"},
		{`outer: for (;;) { continue outer }`, "LabeledStatement"},
		{`debugger`, "DebuggerStatement"},
		{`;`, "EmptyStatement"},
		{`with (o) x`, "WithStatement"},
		{`{ let x = 1 }`, "BlockStatement"},
	}

	for _, tt := range tests {
		prog := parse(t, tt.input)
		if got := ast.TypeName(prog.Statements[0]); got != tt.want {
			t.Errorf("input=%q: expected %s, got %s", tt.input, tt.want, got)
		}
	}
}

func TestForAwait(t *testing.T) {
	prog := parse(t, `async function f() { for await (const x of xs) {} }`)
	fn := prog.Statements[0].(*ast.FunctionDeclaration)
	loop, ok := fn.Body.Statements[0].(*ast.ForOfStatement)
	if !ok {
		t.Fatalf("expected ForOfStatement, got %T", fn.Body.Statements[0])
	}
	if !loop.Await {
		t.Error("expected await flag")
	}
}

func TestForInInitializerAllowsInInParens(t *testing.T) {
	prog := parse(t, `for (var x = ("a" in o); x; ) {}`)
	loop := prog.Statements[0].(*ast.ForStatement)
	init := loop.Init.(*ast.VariableDeclaration)
	bin, ok := ast.Unparen(init.Declarations[0].Value).(*ast.BinaryExpression)
	if !ok || bin.Operator != "in" {
		t.Errorf("expected in expression, got %#v", init.Declarations[0].Value)
	}
}

// ---------- ASI ----------

func TestAutomaticSemicolonInsertion(t *testing.T) {
	tests := []struct {
		input string
		count int
	}{
		{"a = 1\nb = 2", 2},
		{"var a = 1\nvar b = 2\n", 2},
		{"x\n++y", 2},
		{"do {} while (a) b()", 2},
		{"{ a } b", 2},
		{"a = b\n(c)", 1},
	}

	for _, tt := range tests {
		prog := parse(t, tt.input)
		if len(prog.Statements) != tt.count {
			t.Errorf("input=%q: expected %d statements, got %d", tt.input, tt.count, len(prog.Statements))
		}
	}
}

func TestRestrictedProductions(t *testing.T) {
	prog := parse(t, "function f() { return\n1 }")
	fn := prog.Statements[0].(*ast.FunctionDeclaration)
	if len(fn.Body.Statements) != 2 {
		t.Fatalf("expected return and expression statement, got %d statements", len(fn.Body.Statements))
	}
	if ret := fn.Body.Statements[0].(*ast.ReturnStatement); ret.Value != nil {
		t.Error("expected bare return")
	}

	prog = parse(t, "x\n++\ny")
	expectStmtCount(t, prog, 2)
	upd := prog.Statements[1].(*ast.ExpressionStatement).Expression.(*ast.UpdateExpression)
	if !upd.Prefix {
		t.Error("expected ++ to bind to the following operand")
	}

	prog = parse(t, "a: for (;;) { break\na }")
	loop := prog.Statements[0].(*ast.LabeledStatement).Body.(*ast.ForStatement)
	if br := loop.Body.(*ast.BlockStatement).Statements[0].(*ast.BreakStatement); br.Label != nil {
		t.Error("expected unlabeled break")
	}
}

// ---------- Expressions ----------

func TestOperatorPrecedence(t *testing.T) {
	expr := firstExpr(t, `a + b * c`)
	bin := expr.(*ast.BinaryExpression)
	if bin.Operator != "+" {
		t.Fatalf("expected + at the root, got %s", bin.Operator)
	}
	if r := bin.Right.(*ast.BinaryExpression); r.Operator != "*" {
		t.Errorf("expected * on the right, got %s", r.Operator)
	}

	expr = firstExpr(t, `a ** b ** c`)
	exp := expr.(*ast.BinaryExpression)
	if _, ok := exp.Right.(*ast.BinaryExpression); !ok {
		t.Error("expected ** to be right associative")
	}

	expr = firstExpr(t, `a = b = c`)
	asg := expr.(*ast.AssignmentExpression)
	if _, ok := asg.Right.(*ast.AssignmentExpression); !ok {
		t.Error("expected = to be right associative")
	}

	expr = firstExpr(t, `a || b && c`)
	lor := expr.(*ast.LogicalExpression)
	if lor.Operator != "||" {
		t.Errorf("expected || at the root, got %s", lor.Operator)
	}

	expr = firstExpr(t, `a ? b : c ? d : e`)
	cond := expr.(*ast.ConditionalExpression)
	if _, ok := cond.Alternate.(*ast.ConditionalExpression); !ok {
		t.Error("expected nested conditional in alternate")
	}
}

func TestArrowFunctions(t *testing.T) {
	tests := []struct {
		input  string
		params int
		async  bool
	}{
		{`x => x`, 1, false},
		{`() => {}`, 0, false},
		{`(a, b) => a + b`, 2, false},
		{`(a, ...b) => b`, 2, false},
		{`({a, b}, [c]) => a`, 2, false},
		{`(a = 1, {b} = {}) => a`, 2, false},
		{`async x => x`, 1, true},
		{`async (a, b) => a`, 2, true},
	}

	for _, tt := range tests {
		arrow, ok := firstExpr(t, tt.input).(*ast.ArrowFunctionExpression)
		if !ok {
			t.Errorf("input=%q: expected ArrowFunctionExpression", tt.input)
			continue
		}
		if len(arrow.Params) != tt.params {
			t.Errorf("input=%q: expected %d params, got %d", tt.input, tt.params, len(arrow.Params))
		}
		if arrow.Async != tt.async {
			t.Errorf("input=%q: expected async=%v", tt.input, tt.async)
		}
	}

	arrow := firstExpr(t, `({a, b}) => a`).(*ast.ArrowFunctionExpression)
	if _, ok := arrow.Params[0].(*ast.ObjectPattern); !ok {
		t.Errorf("expected ObjectPattern param, got %T", arrow.Params[0])
	}
}

func TestAsyncCall(t *testing.T) {
	call, ok := firstExpr(t, `async(1, 2)`).(*ast.CallExpression)
	if !ok {
		t.Fatal("expected a call to async")
	}
	if len(call.Arguments) != 2 {
		t.Errorf("expected 2 arguments, got %d", len(call.Arguments))
	}
}

func TestDestructuringAssignment(t *testing.T) {
	asg := ast.Unparen(firstExpr(t, `({a, b: c.d, e = 1} = obj)`)).(*ast.AssignmentExpression)
	pat, ok := asg.Left.(*ast.ObjectPattern)
	if !ok {
		t.Fatalf("expected ObjectPattern, got %T", asg.Left)
	}
	if _, ok := pat.Properties[1].Value.(*ast.MemberExpression); !ok {
		t.Errorf("expected member target, got %T", pat.Properties[1].Value)
	}
	if _, ok := pat.Properties[2].Value.(*ast.AssignmentPattern); !ok {
		t.Errorf("expected AssignmentPattern, got %T", pat.Properties[2].Value)
	}

	asg = firstExpr(t, `[a, [b], ...c] = d`).(*ast.AssignmentExpression)
	arr := asg.Left.(*ast.ArrayPattern)
	if _, ok := arr.Elements[1].(*ast.ArrayPattern); !ok {
		t.Errorf("expected nested ArrayPattern, got %T", arr.Elements[1])
	}
	if _, ok := arr.Elements[2].(*ast.RestElement); !ok {
		t.Errorf("expected RestElement, got %T", arr.Elements[2])
	}
}

func TestOptionalChain(t *testing.T) {
	chain, ok := firstExpr(t, `a?.b.c()`).(*ast.ChainExpression)
	if !ok {
		t.Fatal("expected ChainExpression")
	}
	call := chain.Expression.(*ast.CallExpression)
	member := call.Callee.(*ast.MemberExpression)
	inner := member.Object.(*ast.MemberExpression)
	if !inner.Optional || member.Optional {
		t.Error("expected only a?.b to be optional")
	}

	// parentheses end the chain
	member, ok = firstExpr(t, `(a?.b).c`).(*ast.MemberExpression)
	if !ok {
		t.Fatal("expected MemberExpression")
	}
	paren := member.Object.(*ast.ParenthesizedExpression)
	if _, ok := paren.Expression.(*ast.ChainExpression); !ok {
		t.Errorf("expected ChainExpression inside parens, got %T", paren.Expression)
	}

	chain = firstExpr(t, `f?.(x)`).(*ast.ChainExpression)
	if c := chain.Expression.(*ast.CallExpression); !c.Optional {
		t.Error("expected optional call")
	}
}

func TestNewExpression(t *testing.T) {
	n := firstExpr(t, `new a.b.C(1)`).(*ast.NewExpression)
	if _, ok := n.Callee.(*ast.MemberExpression); !ok {
		t.Errorf("expected member callee, got %T", n.Callee)
	}
	if len(n.Arguments) != 1 {
		t.Errorf("expected 1 argument, got %d", len(n.Arguments))
	}

	member := firstExpr(t, `new Foo().bar`).(*ast.MemberExpression)
	if _, ok := member.Object.(*ast.NewExpression); !ok {
		t.Errorf("expected new as member object, got %T", member.Object)
	}

	call := firstExpr(t, `new new X()()`).(*ast.NewExpression)
	if _, ok := call.Callee.(*ast.NewExpression); !ok {
		t.Errorf("expected nested new, got %T", call.Callee)
	}

	prog := parse(t, `function F() { return new.target }`)
	ret := prog.Statements[0].(*ast.FunctionDeclaration).Body.Statements[0].(*ast.ReturnStatement)
	if _, ok := ret.Value.(*ast.MetaProperty); !ok {
		t.Errorf("expected MetaProperty, got %T", ret.Value)
	}
}

func TestTemplateLiterals(t *testing.T) {
	tmpl := firstExpr(t, "`a${b}c${d}e`").(*ast.TemplateLiteral)
	if len(tmpl.Quasis) != 3 || len(tmpl.Expressions) != 2 {
		t.Fatalf("expected 3 quasis and 2 expressions, got %d and %d", len(tmpl.Quasis), len(tmpl.Expressions))
	}
	if tmpl.Quasis[0].Raw != "a" || tmpl.Quasis[2].Raw != "e" || !tmpl.Quasis[2].Tail {
		t.Errorf("unexpected quasis %#v", tmpl.Quasis)
	}

	tagged := firstExpr(t, "tag`x\\n`").(*ast.TaggedTemplateExpression)
	if tagged.Quasi.Quasis[0].Raw != `x\n` {
		t.Errorf("expected raw text, got %q", tagged.Quasi.Quasis[0].Raw)
	}
}

func TestNumberLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"0", 0},
		{"42", 42},
		{"1.5e3", 1500},
		{".5", 0.5},
		{"0x1F", 31},
		{"0o17", 15},
		{"0b101", 5},
		{"017", 15},
		{"019", 19},
		{"1_000_000", 1000000},
	}

	for _, tt := range tests {
		num, ok := firstExpr(t, tt.input).(*ast.NumberLiteral)
		if !ok {
			t.Errorf("input=%q: expected NumberLiteral", tt.input)
			continue
		}
		if num.Value != tt.want {
			t.Errorf("input=%q: expected %v, got %v", tt.input, tt.want, num.Value)
		}
	}

	big := firstExpr(t, "0xFF_FFn").(*ast.BigIntLiteral)
	if big.Value != "0xFFFF" {
		t.Errorf("expected 0xFFFF, got %s", big.Value)
	}
}

func TestRegExpLiteral(t *testing.T) {
	re := firstExpr(t, `/a\/b/gi`).(*ast.RegExpLiteral)
	if re.Pattern != `a\/b` || re.Flags != "gi" {
		t.Errorf("unexpected regexp %q / %q", re.Pattern, re.Flags)
	}
}

func TestRegExpAfterStatementHeader(t *testing.T) {
	tests := []string{
		`if (x) /re/.test(s)`,
		`if (x) a(); else /re/.test(s)`,
		`while (x) /a/g.exec(s)`,
		`for (;;) /a/.exec(s)`,
		`for (k in o) /=/.test(k)`,
		`for (v of a) /b/.test(v)`,
		`with (o) /c/i.test(s)`,
		`do x(); while (y) /d/.test(s)`,
	}
	for _, input := range tests {
		found := false
		ast.Inspect(parse(t, input), func(n ast.Node) bool {
			if _, ok := n.(*ast.RegExpLiteral); ok {
				found = true
			}
			return true
		})
		if !found {
			t.Errorf("input=%q: expected a regexp literal", input)
		}
	}

	bin, ok := ast.Unparen(firstExpr(t, `(a) / b / c`)).(*ast.BinaryExpression)
	if !ok || bin.Operator != "/" {
		t.Errorf("expected division after a parenthesized expression, got %#v", bin)
	}
}

func TestObjectLiteralMembers(t *testing.T) {
	obj := ast.Unparen(firstExpr(t, `({a: 1, "b": 2, [c]: 3, d() {}, get e() { return 1 }, set e(v) {}, async f() {}, *g() {}, ...h, get: 1})`)).(*ast.ObjectLiteral)
	if len(obj.Properties) != 10 {
		t.Fatalf("expected 10 properties, got %d", len(obj.Properties))
	}
	if !obj.Properties[2].Computed {
		t.Error("expected computed key")
	}
	if !obj.Properties[3].Method {
		t.Error("expected method")
	}
	if obj.Properties[4].Kind != "get" || obj.Properties[5].Kind != "set" {
		t.Errorf("expected accessors, got %s and %s", obj.Properties[4].Kind, obj.Properties[5].Kind)
	}
	if fn := obj.Properties[6].Value.(*ast.FunctionExpression); !fn.Async {
		t.Error("expected async method")
	}
	if obj.Properties[8].Kind != "spread" {
		t.Errorf("expected spread, got %s", obj.Properties[8].Kind)
	}
	if obj.Properties[9].Kind != "init" {
		t.Errorf("expected property named get, got %s", obj.Properties[9].Kind)
	}
}

func TestClassMembers(t *testing.T) {
	prog := parse(t, `class A { constructor() {} static s() {} static() {} get g() { return 1 } async *it() {} ["c"]() {} }`)
	methods := prog.Statements[0].(*ast.ClassDeclaration).Body.Methods
	if len(methods) != 6 {
		t.Fatalf("expected 6 methods, got %d", len(methods))
	}
	if methods[0].Kind != "constructor" {
		t.Errorf("expected constructor, got %s", methods[0].Kind)
	}
	if !methods[1].Static {
		t.Error("expected static method")
	}
	if methods[2].Static || methods[2].Key.(*ast.Identifier).Value != "static" {
		t.Error("expected method named static")
	}
	if methods[3].Kind != "get" {
		t.Errorf("expected getter, got %s", methods[3].Kind)
	}
	if !methods[4].Value.Async || !methods[4].Value.Generator {
		t.Error("expected async generator method")
	}
	if !methods[5].Computed {
		t.Error("expected computed key")
	}
}

func TestKeywordsAsPropertyNames(t *testing.T) {
	member := firstExpr(t, `a.default.if`).(*ast.MemberExpression)
	if member.Property.(*ast.Identifier).Value != "if" {
		t.Errorf("expected if, got %#v", member.Property)
	}
}

// ---------- Errors ----------

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		input string
		msg   string
	}{
		{`function( {`, "expected identifier"},
		{`var`, "expected identifier"},
		{`const x;`, "missing initializer"},
		{`let {a};`, "missing initializer"},
		{`a b`, "unexpected"},
		{`return 1`, "illegal return"},
		{`break`, "illegal break"},
		{`for (;;) { continue foo }`, "undefined label"},
		{"throw\nx", "newline after throw"},
		{`if (a) let x = 1`, "lexical declaration"},
		{`-a ** 2`, "exponentiation"},
		{`a ?? b || c`, "cannot mix"},
		{`1 = 2`, "invalid left-hand side"},
		{`a() = 1`, "invalid left-hand side"},
		{`a?.b = 1`, "invalid left-hand side"},
		{`x + 1 ++`, "invalid left-hand side"},
		{`({a = 1})`, "shorthand property initializer"},
		{`switch (x) { default: default: }`, "more than one default"},
		{`try {}`, "missing catch or finally"},
		{`import x from "y"`, "modules"},
		{`export default 1`, "modules"},
		{`()`, "unexpected token )"},
		{`(a, ...b)`, "unexpected token ..."},
		{"(a)\n=> a", "line terminator"},
		{`new a?.b()`, "optional chain"},
		{"a?.b`c`", "tagged template"},
		{`class A { constructor() {} constructor() {} }`, "one constructor"},
		{`({get a(x) {}})`, "getter"},
		{`/a/gg`, "flags"},
		{`x = {`, "expected"},
		{`for (var a = b in c);`, "may not have an initializer"},
	}

	for _, tt := range tests {
		prog, err := Parse(tt.input)
		if err == nil {
			t.Errorf("input=%q: expected error", tt.input)
			continue
		}
		if prog != nil {
			t.Errorf("input=%q: expected no AST on error", tt.input)
		}
		if !strings.Contains(err.Error(), tt.msg) {
			t.Errorf("input=%q: expected error containing %q, got %q", tt.input, tt.msg, err)
		}
	}
}

func TestSyntaxErrorPosition(t *testing.T) {
	_, err := Parse("var a = 1;\nvar = 2;")
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
	if se.Line != 2 || se.Column != 5 {
		t.Errorf("expected 2:5, got %d:%d", se.Line, se.Column)
	}
}

func TestLexErrorPropagates(t *testing.T) {
	_, err := Parse(`var s = "unterminated`)
	var le *lexer.LexError
	if !errors.As(err, &le) {
		t.Fatalf("expected *lexer.LexError, got %T (%v)", err, err)
	}
}
