package transform

import (
	"github.com/example/jsmin/ast"
	"github.com/example/jsmin/resolver"
	"github.com/example/jsmin/token"
	"github.com/example/jsmin/value"
)

type eliminator struct {
	prog    *ast.Program
	changed bool
}

// EliminateDeadCode removes unreachable statements, branches selected away
// by constant tests and local declarations that nothing references. It
// repeats until nothing changes, since removing one declaration can leave
// another one unreferenced.
//
// Names declared with var or hoisted out of blocks survive the removal of
// the statements that declared them. Declarations in the global scope and in
// scopes reachable from eval or with are never removed.
func EliminateDeadCode(prog *ast.Program) {
	d := &eliminator{prog: prog}
	keepDirectives(prog, func() {
		for {
			d.changed = false
			ast.Rewrite(prog, d.node)
			if !d.changed {
				return
			}
		}
	})
}

func (d *eliminator) node(n ast.Node) ast.Node {
	switch n := n.(type) {
	case *ast.Program:
		n.Statements = d.list(n.Statements)
	case *ast.BlockStatement:
		n.Statements = d.list(n.Statements)
	case *ast.SwitchCase:
		n.Consequent = d.list(n.Consequent)
	case *ast.IfStatement:
		return d.ifStatement(n)
	case *ast.WhileStatement:
		if v, ok := constValue(n.Condition); ok && !v.ToBoolean() {
			return d.replaceDead(n, nil)
		}
	case *ast.ForStatement:
		return d.forStatement(n)
	case *ast.ConditionalExpression:
		return d.conditional(n)
	case *ast.LogicalExpression:
		return d.logical(n)
	}
	return n
}

// list removes empty statements, statements following a completion and
// unreferenced declarations from a statement list.
func (d *eliminator) list(stmts []ast.Statement) []ast.Statement {
	out := stmts[:0]
	terminated := false
	for _, s := range stmts {
		if isEmpty(s) {
			d.changed = true
			continue
		}
		if terminated {
			out = d.appendDead(out, s)
			continue
		}
		if s = d.unreferenced(s); s == nil {
			continue
		}
		out = append(out, s)
		switch s.(type) {
		case *ast.ReturnStatement, *ast.ThrowStatement, *ast.BreakStatement, *ast.ContinueStatement:
			terminated = true
		}
	}
	return out
}

func isEmpty(s ast.Statement) bool {
	switch s := s.(type) {
	case *ast.EmptyStatement:
		return true
	case *ast.BlockStatement:
		return len(s.Statements) == 0
	}
	return false
}

// appendDead appends what must remain of an unreachable statement s.
func (d *eliminator) appendDead(out []ast.Statement, s ast.Statement) []ast.Statement {
	switch s := s.(type) {
	case *ast.FunctionDeclaration:
		// initialized on entry to the enclosing list
		return append(out, s)
	case *ast.VariableDeclaration:
		if s.Kind != "var" {
			if referenced(s) {
				return append(out, s)
			}
			d.changed = true
			discard(d.prog, s)
			return out
		}
		if bare(s) {
			return append(out, s)
		}
	case *ast.ClassDeclaration:
		if len(s.Name.Symbol.Refs) > 0 {
			return append(out, s)
		}
	}
	if r := d.replaceDead(s, nil); r != nil {
		return append(out, r.(ast.Statement))
	}
	return out
}

// referenced reports whether any name a lexical declaration binds is used.
func referenced(decl *ast.VariableDeclaration) bool {
	for _, v := range decl.Declarations {
		for _, id := range resolver.BindingIdentifiers(v.Name) {
			if id.Symbol != nil && len(id.Symbol.Refs) > 0 {
				return true
			}
		}
	}
	return false
}

// bare reports whether decl only declares names, without initializers.
func bare(decl *ast.VariableDeclaration) bool {
	for _, v := range decl.Declarations {
		if _, ok := v.Name.(*ast.Identifier); !ok || v.Value != nil {
			return false
		}
	}
	return true
}

// replaceDead discards the unreachable statement dead and returns the
// statement that replaces it: keep, followed by a var declaration of the
// names dead hoists. The result is nil when nothing remains.
func (d *eliminator) replaceDead(dead ast.Statement, keep ast.Statement) ast.Node {
	d.changed = true
	var names []*ast.Identifier
	if dead != nil {
		names = hoistedNames(dead)
		discard(d.prog, dead, names...)
	}

	var stmts []ast.Statement
	if keep != nil {
		stmts = append(stmts, keep)
	}
	if len(names) > 0 {
		stmts = append(stmts, varDeclaration(names, dead))
	}
	switch len(stmts) {
	case 0:
		return nil
	case 1:
		if _, ok := stmts[0].(*ast.FunctionDeclaration); !ok {
			return stmts[0]
		}
	}
	return &ast.BlockStatement{Token: token.Token{Type: token.LeftBrace, Literal: "{"}, Statements: stmts}
}

// hoistedNames returns the identifiers of the var bindings a statement
// declares, including block-level functions hoisted out of their block.
func hoistedNames(stmt ast.Statement) []*ast.Identifier {
	var out []*ast.Identifier
	ast.Inspect(stmt, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.FunctionExpression, *ast.ArrowFunctionExpression, *ast.ClassExpression, *ast.ClassDeclaration:
			return false
		case *ast.FunctionDeclaration:
			if sym := n.Name.Symbol; sym != nil && (sym.Scope.Kind == ast.FunctionScope || sym.Scope.Kind == ast.GlobalScope) {
				out = append(out, n.Name)
			}
			return false
		case *ast.VariableDeclaration:
			if n.Kind == "var" {
				for _, v := range n.Declarations {
					out = append(out, resolver.BindingIdentifiers(v.Name)...)
				}
			}
		}
		return true
	})
	return out
}

func varDeclaration(names []*ast.Identifier, at ast.Node) *ast.VariableDeclaration {
	tok := tokenAt(at)
	tok.Type, tok.Literal = token.Var, "var"
	decl := &ast.VariableDeclaration{Token: tok, Kind: "var"}
	for _, id := range names {
		decl.Declarations = append(decl.Declarations, &ast.VariableDeclarator{Token: id.Token, Name: id})
	}
	return decl
}

// removable reports whether the declaration of sym may be dropped.
func removable(sym *ast.Symbol) bool {
	if sym == nil || len(sym.Refs) > 0 {
		return false
	}
	switch sym.Kind {
	case ast.Param, ast.CatchParam:
		return false
	}
	return sym.Scope.Kind != ast.GlobalScope && !sym.Scope.Protected()
}

// unreferenced drops the parts of a declaration that nothing uses. It
// returns nil when the whole statement goes away.
func (d *eliminator) unreferenced(s ast.Statement) ast.Statement {
	switch s := s.(type) {
	case *ast.FunctionDeclaration:
		if removable(s.Name.Symbol) {
			d.changed = true
			discard(d.prog, s)
			return nil
		}
	case *ast.ClassDeclaration:
		if removable(s.Name.Symbol) && pureClass(s.SuperClass, s.Body) {
			d.changed = true
			discard(d.prog, s)
			return nil
		}
	case *ast.VariableDeclaration:
		kept := s.Declarations[:0]
		for _, v := range s.Declarations {
			if id, ok := v.Name.(*ast.Identifier); ok && removable(id.Symbol) && pure(v.Value) {
				d.changed = true
				discard(d.prog, v)
				continue
			}
			kept = append(kept, v)
		}
		s.Declarations = kept
		if len(kept) == 0 {
			return nil
		}
	}
	return s
}

func (d *eliminator) ifStatement(n *ast.IfStatement) ast.Node {
	v, ok := constValue(n.Condition)
	if !ok {
		return n
	}
	keep, dead := n.Consequence, n.Alternative
	if !v.ToBoolean() {
		keep, dead = dead, keep
	}
	if dead == nil {
		d.changed = true
		if keep == nil {
			return nil
		}
		if _, ok := keep.(*ast.FunctionDeclaration); ok {
			return &ast.BlockStatement{Token: token.Token{Type: token.LeftBrace, Literal: "{"}, Statements: []ast.Statement{keep}}
		}
		return keep
	}
	return d.replaceDead(dead, keep)
}

func (d *eliminator) forStatement(n *ast.ForStatement) ast.Node {
	if n.Test == nil {
		return n
	}
	v, ok := constValue(n.Test)
	if !ok || v.ToBoolean() {
		return n
	}
	var init ast.Statement
	switch h := n.Init.(type) {
	case *ast.VariableDeclaration:
		if h.Kind != "var" {
			return n
		}
		init = h
	case ast.Expression:
		init = &ast.ExpressionStatement{Token: tokenAt(h), Expression: h}
	}
	discard(d.prog, n.Update)
	if n.Scope != nil {
		n.Scope.Detach()
	}
	return d.replaceDead(n.Body, init)
}

// thisSensitive reports whether moving e out of a wrapping expression could
// change the this value of a call or turn an indirect eval into a direct one.
func thisSensitive(e ast.Expression) bool {
	switch e := ast.Unparen(e).(type) {
	case *ast.MemberExpression, *ast.ChainExpression:
		return true
	case *ast.Identifier:
		return e.Value == "eval"
	}
	return false
}

func (d *eliminator) conditional(n *ast.ConditionalExpression) ast.Expression {
	v, ok := constValue(n.Test)
	if !ok {
		return n
	}
	keep, dead := n.Consequent, n.Alternate
	if !v.ToBoolean() {
		keep, dead = dead, keep
	}
	if thisSensitive(keep) {
		return n
	}
	d.changed = true
	discard(d.prog, dead)
	return keep
}

func (d *eliminator) logical(n *ast.LogicalExpression) ast.Expression {
	l, ok := constValue(n.Left)
	if !ok {
		return n
	}
	if _, ok := constValue(n.Right); ok {
		// left to Fold
		return n
	}
	var short bool
	switch n.Operator {
	case "&&":
		short = !l.ToBoolean()
	case "||":
		short = l.ToBoolean()
	case "??":
		short = l.Type != value.TypeNull && l.Type != value.TypeUndefined
	}
	if short {
		d.changed = true
		discard(d.prog, n.Right)
		return n.Left
	}
	if thisSensitive(n.Right) {
		return n
	}
	d.changed = true
	return n.Right
}
