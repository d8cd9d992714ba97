// Package printer turns a syntax tree back into JavaScript source.
//
// The compact mode writes no whitespace that the grammar does not need,
// omits the semicolons that precede a closing brace or the end of the input
// and adds only the parentheses that precedence and the grammar require.
// The pretty mode indents and spaces the same output for reading.
package printer

import (
	"math"
	"strings"

	"github.com/example/jsmin/ast"
	"github.com/example/jsmin/value"
)

// Mode selects the output layout.
type Mode int

const (
	Compact Mode = iota
	Pretty
)

func (m Mode) String() string {
	if m == Pretty {
		return "pretty"
	}
	return "compact"
}

// Expression precedence, lowest first.
const (
	precLowest int = iota
	precComma
	precAssign
	precConditional
	precNullish
	precLogicalOr
	precLogicalAnd
	precBitwiseOr
	precBitwiseXor
	precBitwiseAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
	precExponent
	precPrefix
	precPostfix
	precCall
	precMember
	precPrimary
)

var binaryPrec = map[string]int{
	"??":         precNullish,
	"||":         precLogicalOr,
	"&&":         precLogicalAnd,
	"|":          precBitwiseOr,
	"^":          precBitwiseXor,
	"&":          precBitwiseAnd,
	"==":         precEquality,
	"!=":         precEquality,
	"===":        precEquality,
	"!==":        precEquality,
	"<":          precRelational,
	">":          precRelational,
	"<=":         precRelational,
	">=":         precRelational,
	"instanceof": precRelational,
	"in":         precRelational,
	"<<":         precShift,
	">>":         precShift,
	">>>":        precShift,
	"+":          precAdditive,
	"-":          precAdditive,
	"*":          precMultiplicative,
	"/":          precMultiplicative,
	"%":          precMultiplicative,
	"**":         precExponent,
}

type printer struct {
	buf    []byte
	pretty bool
	indent int

	// semi is a statement terminator that has not been written yet. It is
	// dropped before a closing brace and at the end of the program.
	semi bool

	// regexEnd is the output length right after a regular expression
	// literal, whose flags a following word would extend.
	regexEnd int
}

// Print returns the source text of prog.
func Print(prog *ast.Program, mode Mode) string {
	p := &printer{pretty: mode == Pretty}
	p.statements(prog.Statements)
	p.semi = false
	if p.pretty && len(p.buf) > 0 {
		p.buf = append(p.buf, '\n')
	}
	return string(p.buf)
}

// PrintExpression returns the source text of a single expression.
func PrintExpression(e ast.Expression, mode Mode) string {
	p := &printer{pretty: mode == Pretty}
	p.expr(e, precLowest)
	return string(p.buf)
}

// ---------- output ----------

func isIdentByte(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' ||
		c == '$' || c == '_' || c == '\\' || c >= 0x80
}

// separate reports whether a space must go between the output so far and s
// to keep the two from lexing differently.
func (p *printer) separate(s string) bool {
	n := len(p.buf)
	if n == 0 || s == "" {
		return false
	}
	last, next := p.buf[n-1], s[0]
	switch {
	case isIdentByte(last) && isIdentByte(next), n == p.regexEnd && isIdentByte(next):
		return true
	case last == '+' && next == '+', last == '-' && next == '-':
		return true
	case last == '/' && (next == '/' || next == '*'):
		return true
	case last == '?' && next == '.':
		return true
	case last == '<' && strings.HasPrefix(s, "!--"):
		return true
	case last == '!' && n >= 2 && p.buf[n-2] == '<' && strings.HasPrefix(s, "--"):
		return true
	case next == '>' && n >= 2 && p.buf[n-2] == '-' && last == '-':
		return true
	}
	return false
}

func (p *printer) print(s string) {
	if p.semi {
		p.semi = false
		p.buf = append(p.buf, ';')
	}
	if p.separate(s) {
		p.buf = append(p.buf, ' ')
	}
	p.buf = append(p.buf, s...)
}

// space writes a space in pretty mode.
func (p *printer) space() {
	if p.pretty {
		p.print(" ")
	}
}

func (p *printer) newline() {
	if !p.pretty {
		return
	}
	p.print("\n")
	for i := 0; i < p.indent; i++ {
		p.buf = append(p.buf, "  "...)
	}
}

// semicolon ends a statement that needs a terminator.
func (p *printer) semicolon() {
	if p.pretty {
		p.print(";")
		return
	}
	p.semi = true
}

// closeBrace writes a } without the pending terminator.
func (p *printer) closeBrace() {
	p.semi = false
	p.print("}")
}

func (p *printer) comma() {
	p.print(",")
	p.space()
}

// ---------- statements ----------

func (p *printer) statements(list []ast.Statement) {
	for i, s := range list {
		if i > 0 {
			p.newline()
		}
		p.stmt(s)
	}
}

func (p *printer) block(b *ast.BlockStatement) {
	p.print("{")
	if len(b.Statements) > 0 {
		p.indent++
		p.newline()
		p.statements(b.Statements)
		p.indent--
		p.semi = false
		p.newline()
	}
	p.closeBrace()
}

// body prints the statement governed by if, a loop, with or a label.
func (p *printer) body(s ast.Statement) {
	if b, ok := s.(*ast.BlockStatement); ok {
		p.space()
		p.block(b)
		return
	}
	if _, ok := s.(*ast.EmptyStatement); ok {
		p.print(";")
		return
	}
	p.space()
	p.stmt(s)
}

func (p *printer) stmt(s ast.Statement) {
	switch s := s.(type) {
	case *ast.ExpressionStatement:
		if startsAmbiguously(s.Expression, true) {
			p.print("(")
			p.expr(s.Expression, precLowest)
			p.print(")")
		} else {
			p.expr(s.Expression, precLowest)
		}
		p.semicolon()

	case *ast.VariableDeclaration:
		p.varDecl(s, false)
		p.semicolon()

	case *ast.BlockStatement:
		p.block(s)

	case *ast.EmptyStatement:
		p.print(";")

	case *ast.ReturnStatement:
		p.print("return")
		if s.Value != nil {
			p.space()
			p.expr(s.Value, precLowest)
		}
		p.semicolon()

	case *ast.ThrowStatement:
		p.print("throw")
		p.space()
		p.expr(s.Argument, precLowest)
		p.semicolon()

	case *ast.BreakStatement:
		p.print("break")
		if s.Label != nil {
			p.print(s.Label.Value)
		}
		p.semicolon()

	case *ast.ContinueStatement:
		p.print("continue")
		if s.Label != nil {
			p.print(s.Label.Value)
		}
		p.semicolon()

	case *ast.DebuggerStatement:
		p.print("debugger")
		p.semicolon()

	case *ast.IfStatement:
		p.ifStatement(s)

	case *ast.WhileStatement:
		p.print("while")
		p.space()
		p.print("(")
		p.expr(s.Condition, precLowest)
		p.print(")")
		p.body(s.Body)

	case *ast.DoWhileStatement:
		p.print("do")
		p.body(s.Body)
		p.space()
		p.print("while")
		p.space()
		p.print("(")
		p.expr(s.Condition, precLowest)
		p.print(")")
		p.semicolon()

	case *ast.ForStatement:
		p.forStatement(s)

	case *ast.ForInStatement:
		p.print("for")
		p.space()
		p.print("(")
		p.forHead(s.Left)
		p.space()
		p.print("in")
		p.space()
		p.expr(s.Right, precLowest)
		p.print(")")
		p.body(s.Body)

	case *ast.ForOfStatement:
		p.print("for")
		if s.Await {
			p.print("await")
		}
		p.space()
		p.print("(")
		p.forHead(s.Left)
		p.space()
		p.print("of")
		p.space()
		p.expr(s.Right, precAssign)
		p.print(")")
		p.body(s.Body)

	case *ast.SwitchStatement:
		p.switchStatement(s)

	case *ast.TryStatement:
		p.print("try")
		p.space()
		p.block(s.Block)
		if h := s.Handler; h != nil {
			p.space()
			p.print("catch")
			if h.Param != nil {
				p.space()
				p.print("(")
				p.pattern(h.Param)
				p.print(")")
			}
			p.space()
			p.block(h.Body)
		}
		if s.Finalizer != nil {
			p.space()
			p.print("finally")
			p.space()
			p.block(s.Finalizer)
		}

	case *ast.FunctionDeclaration:
		p.function(s.Name, s.Params, s.Body, s.Async, s.Generator)

	case *ast.ClassDeclaration:
		p.class(s.Name, s.SuperClass, s.Body)

	case *ast.LabeledStatement:
		p.print(s.Label.Value)
		p.print(":")
		p.space()
		p.stmt(s.Body)

	case *ast.WithStatement:
		p.print("with")
		p.space()
		p.print("(")
		p.expr(s.Object, precLowest)
		p.print(")")
		p.body(s.Body)

	default:
		panic(&Error{Node: ast.TypeName(s)})
	}
}

func (p *printer) ifStatement(s *ast.IfStatement) {
	p.print("if")
	p.space()
	p.print("(")
	p.expr(s.Condition, precLowest)
	p.print(")")
	if s.Alternative == nil {
		p.body(s.Consequence)
		return
	}

	if _, isBlock := s.Consequence.(*ast.BlockStatement); !isBlock && ast.OpenIf(s.Consequence) {
		p.space()
		p.block(&ast.BlockStatement{Statements: []ast.Statement{s.Consequence}})
	} else {
		p.body(s.Consequence)
	}
	p.space()
	p.print("else")
	if alt, ok := s.Alternative.(*ast.IfStatement); ok {
		p.space()
		p.ifStatement(alt)
		return
	}
	p.body(s.Alternative)
}

func (p *printer) forStatement(s *ast.ForStatement) {
	p.print("for")
	p.space()
	p.print("(")
	switch init := s.Init.(type) {
	case nil:
	case *ast.VariableDeclaration:
		p.varDecl(init, true)
	case ast.Expression:
		if containsIn(init) || startsAmbiguously(init, false) {
			p.print("(")
			p.expr(init, precLowest)
			p.print(")")
		} else {
			p.expr(init, precLowest)
		}
	}
	p.print(";")
	if s.Test != nil {
		p.space()
		p.expr(s.Test, precLowest)
	}
	p.print(";")
	if s.Update != nil {
		p.space()
		p.expr(s.Update, precLowest)
	}
	p.print(")")
	p.body(s.Body)
}

// forHead prints the left side of a for-in or for-of loop.
func (p *printer) forHead(left ast.Node) {
	switch left := left.(type) {
	case *ast.VariableDeclaration:
		p.varDecl(left, true)
	case ast.Expression:
		if startsAmbiguously(left, false) {
			p.print("(")
			p.expr(left, precLowest)
			p.print(")")
			return
		}
		p.expr(left, precCall)
	}
}

func (p *printer) switchStatement(s *ast.SwitchStatement) {
	p.print("switch")
	p.space()
	p.print("(")
	p.expr(s.Discriminant, precLowest)
	p.print(")")
	p.space()
	p.print("{")
	p.indent++
	for _, c := range s.Cases {
		p.newline()
		if c.Test != nil {
			p.print("case")
			p.space()
			p.expr(c.Test, precLowest)
		} else {
			p.print("default")
		}
		p.print(":")
		if len(c.Consequent) > 0 {
			p.indent++
			p.newline()
			p.statements(c.Consequent)
			p.indent--
		}
	}
	p.indent--
	p.semi = false
	if len(s.Cases) > 0 {
		p.newline()
	}
	p.closeBrace()
}

// varDecl prints a declaration without its terminator. In a for head an
// initializer containing the in operator is parenthesized.
func (p *printer) varDecl(d *ast.VariableDeclaration, forHead bool) {
	p.print(d.Kind)
	p.space()
	for i, v := range d.Declarations {
		if i > 0 {
			p.comma()
		}
		p.pattern(v.Name)
		if v.Value == nil {
			continue
		}
		p.space()
		p.print("=")
		p.space()
		if forHead && containsIn(v.Value) {
			p.print("(")
			p.expr(v.Value, precLowest)
			p.print(")")
		} else {
			p.expr(v.Value, precAssign)
		}
	}
}

// containsIn reports whether e uses the in operator anywhere.
func containsIn(e ast.Expression) bool {
	found := false
	ast.Inspect(e, func(n ast.Node) bool {
		if found {
			return false
		}
		if b, ok := n.(*ast.BinaryExpression); ok && b.Operator == "in" {
			found = true
		}
		return !found
	})
	return found
}

// leftmost returns the expression whose first token begins the printed
// form of e.
func leftmost(e ast.Expression) ast.Expression {
	for {
		switch x := e.(type) {
		case *ast.BinaryExpression:
			e = x.Left
		case *ast.LogicalExpression:
			e = x.Left
		case *ast.AssignmentExpression:
			e = x.Left
		case *ast.ConditionalExpression:
			e = x.Test
		case *ast.SequenceExpression:
			e = x.Expressions[0]
		case *ast.CallExpression:
			e = x.Callee
		case *ast.MemberExpression:
			e = x.Object
		case *ast.TaggedTemplateExpression:
			e = x.Tag
		case *ast.ChainExpression:
			e = x.Expression
		case *ast.UpdateExpression:
			if x.Prefix {
				return e
			}
			e = x.Operand
		default:
			return e
		}
	}
}

// startsAmbiguously reports whether e, printed at the start of a statement
// (or of a for head), would be read as something else: a block, a function
// or class declaration, or a let declaration.
func startsAmbiguously(e ast.Expression, statement bool) bool {
	switch x := leftmost(e).(type) {
	case *ast.ObjectLiteral, *ast.ObjectPattern:
		return statement
	case *ast.FunctionExpression, *ast.ClassExpression:
		return statement
	case *ast.Identifier:
		return x.Name() == "let" || x.Name() == "async" && !statement
	}
	return false
}

// ---------- functions and classes ----------

func (p *printer) function(name *ast.Identifier, params []ast.Expression, body *ast.BlockStatement, async, generator bool) {
	if async {
		p.print("async")
		p.space()
	}
	p.print("function")
	if generator {
		p.print("*")
	}
	if name != nil {
		if generator {
			p.space()
		}
		p.print(name.Name())
	}
	p.params(params)
	p.space()
	p.block(body)
}

func (p *printer) params(params []ast.Expression) {
	p.print("(")
	for i, param := range params {
		if i > 0 {
			p.comma()
		}
		p.pattern(param)
	}
	p.print(")")
}

func (p *printer) arrow(a *ast.ArrowFunctionExpression) {
	if a.Async {
		p.print("async")
		p.space()
	}
	if id, ok := singleParam(a.Params); ok {
		p.print(id.Name())
	} else {
		p.params(a.Params)
	}
	p.space()
	p.print("=>")
	p.space()
	switch b := a.Body.(type) {
	case *ast.BlockStatement:
		p.block(b)
	case ast.Expression:
		switch leftmost(b).(type) {
		case *ast.ObjectLiteral, *ast.ObjectPattern:
			p.print("(")
			p.expr(b, precLowest)
			p.print(")")
		default:
			p.expr(b, precAssign)
		}
	}
}

func singleParam(params []ast.Expression) (*ast.Identifier, bool) {
	if len(params) != 1 {
		return nil, false
	}
	id, ok := params[0].(*ast.Identifier)
	return id, ok
}

func (p *printer) class(name *ast.Identifier, super ast.Expression, body *ast.ClassBody) {
	p.print("class")
	if name != nil {
		p.space()
		p.print(name.Name())
	}
	if super != nil {
		p.space()
		p.print("extends")
		p.space()
		p.expr(super, precCall)
	}
	p.space()
	p.print("{")
	p.indent++
	for _, m := range body.Methods {
		p.newline()
		p.method(m)
	}
	p.indent--
	if len(body.Methods) > 0 {
		p.newline()
	}
	p.closeBrace()
}

func (p *printer) method(m *ast.MethodDefinition) {
	if m.Static {
		p.print("static")
		p.space()
	}
	p.methodHead(m.Kind, m.Value)
	p.propertyKey(m.Key, m.Computed)
	p.params(m.Value.Params)
	p.space()
	p.block(m.Value.Body)
}

// methodHead prints the get, set, async and * prefixes of a method.
func (p *printer) methodHead(kind string, fn *ast.FunctionExpression) {
	switch kind {
	case "get", "set":
		p.print(kind)
		p.space()
	}
	if fn.Async {
		p.print("async")
		p.space()
	}
	if fn.Generator {
		p.print("*")
	}
}

func (p *printer) propertyKey(key ast.Expression, computed bool) {
	if computed {
		p.print("[")
		p.expr(key, precAssign)
		p.print("]")
		return
	}
	switch k := key.(type) {
	case *ast.Identifier:
		p.print(k.Value)
	case *ast.StringLiteral:
		p.print(Quote(k.Value))
	case *ast.NumberLiteral:
		p.print(value.FormatNumber(k.Value))
	case *ast.BigIntLiteral:
		p.print(k.Value + "n")
	default:
		p.expr(key, precAssign)
	}
}

// ---------- patterns ----------

func (p *printer) pattern(e ast.Expression) {
	switch e := e.(type) {
	case *ast.Identifier:
		p.print(e.Name())
	case *ast.ObjectPattern:
		p.print("{")
		for i, prop := range e.Properties {
			if i > 0 {
				p.comma()
			}
			p.property(prop)
		}
		if e.Rest != nil {
			if len(e.Properties) > 0 {
				p.comma()
			}
			p.print("...")
			p.pattern(e.Rest)
		}
		p.closeBrace()
	case *ast.ArrayPattern:
		p.elements(e.Elements, p.pattern)
	case *ast.AssignmentPattern:
		p.pattern(e.Left)
		p.space()
		p.print("=")
		p.space()
		p.expr(e.Right, precAssign)
	case *ast.RestElement:
		p.print("...")
		p.pattern(e.Argument)
	default:
		p.expr(e, precAssign)
	}
}

// elements prints an array literal or pattern. A trailing hole needs an
// extra comma.
func (p *printer) elements(elems []ast.Expression, each func(ast.Expression)) {
	p.print("[")
	for i, el := range elems {
		if i > 0 {
			p.comma()
		}
		if el != nil {
			each(el)
		}
	}
	if n := len(elems); n > 0 && elems[n-1] == nil {
		p.print(",")
	}
	p.print("]")
}

// shorthand reports whether a property prints as {x} or {x = 1}.
func shorthand(prop *ast.Property) bool {
	if prop.Computed || prop.Method || prop.Kind != "init" {
		return false
	}
	key, ok := prop.Key.(*ast.Identifier)
	if !ok || key.Value == "__proto__" {
		return false
	}
	v := prop.Value
	if ap, ok := v.(*ast.AssignmentPattern); ok {
		v = ap.Left
	}
	id, ok := v.(*ast.Identifier)
	return ok && id.Name() == key.Value
}

func (p *printer) property(prop *ast.Property) {
	switch {
	case prop.Kind == "spread":
		p.print("...")
		p.expr(prop.Value, precAssign)
	case shorthand(prop):
		p.pattern(prop.Value)
	case prop.Kind == "get" || prop.Kind == "set" || prop.Method:
		fn := prop.Value.(*ast.FunctionExpression)
		p.methodHead(prop.Kind, fn)
		p.propertyKey(prop.Key, prop.Computed)
		p.params(fn.Params)
		p.space()
		p.block(fn.Body)
	default:
		p.propertyKey(prop.Key, prop.Computed)
		p.print(":")
		p.space()
		p.pattern(prop.Value)
	}
}

// ---------- expressions ----------

func precedence(e ast.Expression) int {
	switch e := e.(type) {
	case *ast.SequenceExpression:
		return precComma
	case *ast.AssignmentExpression, *ast.ArrowFunctionExpression, *ast.YieldExpression,
		*ast.SpreadElement, *ast.AssignmentPattern, *ast.RestElement:
		return precAssign
	case *ast.ConditionalExpression:
		return precConditional
	case *ast.LogicalExpression:
		return binaryPrec[e.Operator]
	case *ast.BinaryExpression:
		return binaryPrec[e.Operator]
	case *ast.UnaryExpression, *ast.AwaitExpression:
		return precPrefix
	case *ast.UpdateExpression:
		if e.Prefix {
			return precPrefix
		}
		return precPostfix
	case *ast.CallExpression, *ast.NewExpression, *ast.ChainExpression:
		return precCall
	case *ast.MemberExpression, *ast.TaggedTemplateExpression, *ast.MetaProperty:
		return precMember
	case *ast.NumberLiteral:
		if e.Value < 0 || e.Value == 0 && math.Signbit(e.Value) {
			return precPrefix
		}
	}
	return precPrimary
}

// expr prints e, parenthesized if its precedence is below level.
func (p *printer) expr(e ast.Expression, level int) {
	if precedence(e) < level {
		p.paren(e)
		return
	}
	p.expression(e)
}

func (p *printer) paren(e ast.Expression) {
	p.print("(")
	p.expression(e)
	p.print(")")
}

// operand prints the object of a member access, the callee of a call or the
// tag of a template. An optional chain there must keep its parentheses.
func (p *printer) operand(e ast.Expression, level int) {
	if _, ok := e.(*ast.ChainExpression); ok {
		p.paren(e)
		return
	}
	p.expr(e, level)
}

// hasCall reports whether a new callee contains a call that new would
// otherwise take as its own argument list.
func hasCall(e ast.Expression) bool {
	for {
		switch x := e.(type) {
		case *ast.CallExpression:
			return true
		case *ast.MemberExpression:
			e = x.Object
		case *ast.TaggedTemplateExpression:
			e = x.Tag
		default:
			return false
		}
	}
}

func (p *printer) arguments(args []ast.Expression) {
	p.print("(")
	for i, a := range args {
		if i > 0 {
			p.comma()
		}
		p.expr(a, precAssign)
	}
	p.print(")")
}

func (p *printer) binary(op string, left, right ast.Expression) {
	prec := binaryPrec[op]
	lp, rp := prec, prec+1
	if op == "**" {
		lp, rp = precPostfix, precExponent
	}
	p.binaryOperand(op, left, lp)
	p.space()
	p.print(op)
	p.space()
	p.binaryOperand(op, right, rp)
}

// binaryOperand adds the parentheses that keep ?? from mixing with && and
// || in addition to the ones precedence needs.
func (p *printer) binaryOperand(op string, e ast.Expression, level int) {
	if l, ok := e.(*ast.LogicalExpression); ok && (op == "??") != (l.Operator == "??") && isLogical(op) {
		p.paren(e)
		return
	}
	p.expr(e, level)
}

func isLogical(op string) bool {
	return op == "&&" || op == "||" || op == "??"
}

func (p *printer) expression(e ast.Expression) {
	switch e := e.(type) {
	case *ast.Identifier:
		p.print(e.Name())
	case *ast.NumberLiteral:
		p.number(e.Value)
	case *ast.BigIntLiteral:
		p.print(e.Value + "n")
	case *ast.StringLiteral:
		p.print(Quote(e.Value))
	case *ast.BooleanLiteral:
		if e.Value {
			p.print("true")
		} else {
			p.print("false")
		}
	case *ast.NullLiteral:
		p.print("null")
	case *ast.RegExpLiteral:
		p.print("/" + e.Pattern + "/" + e.Flags)
		p.regexEnd = len(p.buf)
	case *ast.TemplateLiteral:
		p.template(e)
	case *ast.TaggedTemplateExpression:
		p.operand(e.Tag, precCall)
		p.template(e.Quasi)
	case *ast.ThisExpression:
		p.print("this")
	case *ast.SuperExpression:
		p.print("super")
	case *ast.MetaProperty:
		p.print(e.Meta + "." + e.Property)
	case *ast.ParenthesizedExpression:
		p.print("(")
		p.expr(e.Expression, precLowest)
		p.print(")")

	case *ast.ArrayLiteral:
		p.elements(e.Elements, func(el ast.Expression) { p.expr(el, precAssign) })
	case *ast.ObjectLiteral:
		p.print("{")
		for i, prop := range e.Properties {
			if i > 0 {
				p.comma()
			}
			p.property(prop)
		}
		p.closeBrace()
	case *ast.ObjectPattern, *ast.ArrayPattern, *ast.AssignmentPattern, *ast.RestElement:
		p.pattern(e)

	case *ast.FunctionExpression:
		p.function(e.Name, e.Params, e.Body, e.Async, e.Generator)
	case *ast.ArrowFunctionExpression:
		p.arrow(e)
	case *ast.ClassExpression:
		p.class(e.Name, e.SuperClass, e.Body)

	case *ast.UnaryExpression:
		p.print(e.Operator)
		p.expr(e.Operand, precPrefix)
	case *ast.AwaitExpression:
		p.print("await")
		p.space()
		p.expr(e.Argument, precPrefix)
	case *ast.UpdateExpression:
		if e.Prefix {
			p.print(e.Operator)
			p.expr(e.Operand, precCall)
		} else {
			p.expr(e.Operand, precCall)
			p.print(e.Operator)
		}
	case *ast.BinaryExpression:
		p.binary(e.Operator, e.Left, e.Right)
	case *ast.LogicalExpression:
		p.binary(e.Operator, e.Left, e.Right)
	case *ast.AssignmentExpression:
		p.pattern(e.Left)
		p.space()
		p.print(e.Operator)
		p.space()
		p.expr(e.Right, precAssign)
	case *ast.ConditionalExpression:
		p.expr(e.Test, precNullish)
		p.space()
		p.print("?")
		p.space()
		p.expr(e.Consequent, precAssign)
		p.space()
		p.print(":")
		p.space()
		p.expr(e.Alternate, precAssign)
	case *ast.SequenceExpression:
		for i, x := range e.Expressions {
			if i > 0 {
				p.comma()
			}
			p.expr(x, precAssign)
		}
	case *ast.YieldExpression:
		p.print("yield")
		if e.Delegate {
			p.print("*")
		}
		if e.Argument != nil {
			p.space()
			p.expr(e.Argument, precAssign)
		}
	case *ast.SpreadElement:
		p.print("...")
		p.expr(e.Argument, precAssign)

	case *ast.CallExpression:
		p.operand(e.Callee, precCall)
		if e.Optional {
			p.print("?.")
		}
		p.arguments(e.Arguments)
	case *ast.NewExpression:
		p.print("new")
		p.space()
		if hasCall(e.Callee) {
			p.paren(e.Callee)
		} else {
			p.operand(e.Callee, precMember)
		}
		p.arguments(e.Arguments)
	case *ast.MemberExpression:
		p.member(e)
	case *ast.ChainExpression:
		p.expression(e.Expression)

	default:
		panic(&Error{Node: ast.TypeName(e)})
	}
}

func (p *printer) member(e *ast.MemberExpression) {
	p.operand(e.Object, precCall)
	if e.Computed {
		if e.Optional {
			p.print("?.")
		}
		p.print("[")
		p.expr(e.Property, precLowest)
		p.print("]")
		return
	}
	if n, ok := e.Object.(*ast.NumberLiteral); ok && precedence(n) == precPrimary && isDigits(value.FormatNumber(n.Value)) {
		// 1..toString(): the first dot belongs to the number
		p.print(".")
	}
	if e.Optional {
		p.print("?.")
	} else {
		p.print(".")
	}
	p.print(e.Property.(*ast.Identifier).Value)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (p *printer) number(f float64) {
	switch {
	case math.IsNaN(f):
		p.print("(0/0)")
	case f < 0 || f == 0 && math.Signbit(f):
		p.print("-")
		p.print(value.FormatNumber(-f))
	default:
		p.print(value.FormatNumber(f))
	}
}

func (p *printer) template(t *ast.TemplateLiteral) {
	p.print("`")
	for i, q := range t.Quasis {
		p.buf = append(p.buf, q.Raw...)
		if i < len(t.Expressions) {
			p.buf = append(p.buf, "${"...)
			p.expr(t.Expressions[i], precLowest)
			p.buf = append(p.buf, '}')
		}
	}
	p.buf = append(p.buf, '`')
}
