// Package resolver builds the scope tree of a program and binds every
// identifier to the symbol it denotes.
package resolver

import (
	"fmt"

	"github.com/example/jsmin/ast"
	"github.com/example/jsmin/diagnostic"
)

type resolver struct {
	bag diagnostic.Bag

	global *ast.Scope
	scope  *ast.Scope

	annexB      map[*ast.FunctionDeclaration]bool
	initialized map[*ast.Symbol]bool
	warned      map[string]bool

	// nonArrow counts the enclosing non-arrow functions, which provide an
	// implicit arguments binding.
	nonArrow int
}

// Resolve builds the scope tree of prog and binds its identifiers. Any
// previous resolution is discarded first, so Resolve can be run again after
// the tree has been transformed.
func Resolve(prog *ast.Program) []diagnostic.Diagnostic {
	reset(prog)

	global := ast.NewScope(ast.GlobalScope, nil)
	global.Free = make(map[string][]*ast.Identifier)
	prog.Scope = global

	r := &resolver{
		global:      global,
		scope:       global,
		annexB:      make(map[*ast.FunctionDeclaration]bool),
		initialized: make(map[*ast.Symbol]bool),
		warned:      make(map[string]bool),
	}
	r.declare(prog.Statements, global)
	r.statements(prog.Statements)
	return r.bag.Diagnostics()
}

// reset clears identifier links and scopes left by an earlier resolution.
func reset(prog *ast.Program) {
	prog.Scope = nil
	ast.Inspect(prog, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.Identifier:
			n.Symbol = nil
		case *ast.BlockStatement:
			n.Scope = nil
		case *ast.ForStatement:
			n.Scope = nil
		case *ast.ForInStatement:
			n.Scope = nil
		case *ast.ForOfStatement:
			n.Scope = nil
		case *ast.SwitchStatement:
			n.Scope = nil
		case *ast.CatchClause:
			n.Scope = nil
		case *ast.FunctionDeclaration:
			n.Scope = nil
		case *ast.FunctionExpression:
			n.Scope = nil
		case *ast.ArrowFunctionExpression:
			n.Scope = nil
		case *ast.ClassExpression:
			n.Scope = nil
		}
		return true
	})
}

// declare declares the names of a function body or program in fn.
func (r *resolver) declare(stmts []ast.Statement, fn *ast.Scope) {
	r.hoist(stmts, fn)
	r.declareFunctions(stmts, fn)
	r.declareLexical(stmts, fn, nil)
}

func (r *resolver) statements(stmts []ast.Statement) {
	for _, s := range stmts {
		r.visit(s)
	}
}

func (r *resolver) declareFunctions(stmts []ast.Statement, scope *ast.Scope) {
	for _, fd := range topLevelFunctions(stmts) {
		if r.annexB[fd] {
			continue
		}
		if sym := scope.Symbols[fd.Name.Value]; sym != nil {
			if sym.Kind.Lexical() {
				r.redeclared(fd.Name)
			}
			continue
		}
		scope.Declare(fd.Name.Value, ast.Func)
	}
}

// declareLexical declares the let, const and class bindings of stmts. catch
// is the enclosing catch scope when stmts is a catch body.
func (r *resolver) declareLexical(stmts []ast.Statement, scope, catch *ast.Scope) {
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *ast.VariableDeclaration:
			r.declareLexicalDecl(s, scope, catch)
		case *ast.ClassDeclaration:
			r.declareLexicalName(s.Name, ast.Class, scope, catch)
		}
	}
}

func (r *resolver) declareLexicalDecl(decl *ast.VariableDeclaration, scope, catch *ast.Scope) {
	kind := ast.Let
	switch decl.Kind {
	case "var":
		return
	case "const":
		kind = ast.Const
	}
	for _, d := range decl.Declarations {
		for _, id := range BindingIdentifiers(d.Name) {
			r.declareLexicalName(id, kind, scope, catch)
		}
	}
}

func (r *resolver) declareLexicalName(id *ast.Identifier, kind ast.SymbolKind, scope, catch *ast.Scope) {
	if scope.Symbols[id.Value] != nil || catch != nil && catch.Symbols[id.Value] != nil {
		r.redeclared(id)
		return
	}
	scope.Declare(id.Value, kind)
}

func (r *resolver) enter(kind ast.ScopeKind) (*ast.Scope, func()) {
	outer := r.scope
	r.scope = ast.NewScope(kind, outer)
	return r.scope, func() { r.scope = outer }
}

// ---------- Binding ----------

// bind links a declaring identifier to the symbol its name resolves to.
func (r *resolver) bind(id *ast.Identifier) {
	sym := r.scope.Lookup(id.Value)
	if sym == nil {
		panic(fmt.Sprintf("resolver: %q declared but not in scope", id.Value))
	}
	sym.Decls = append(sym.Decls, id)
	id.Symbol = sym
	r.initialized[sym] = true
}

// reference links a referencing identifier to its symbol, or records it as
// free. quiet suppresses the unresolved warning (typeof x).
func (r *resolver) reference(id *ast.Identifier, quiet bool) {
	sym := r.scope.Lookup(id.Value)
	if sym == nil {
		r.global.Free[id.Value] = append(r.global.Free[id.Value], id)
		if quiet || IsKnownGlobal(id.Value) || id.Value == "arguments" && r.nonArrow > 0 || r.warned[id.Value] {
			return
		}
		r.warned[id.Value] = true
		r.bag.Warnf(diagnostic.UnresolvedReference, id.Token.Line, id.Token.Column,
			"'%s' is not defined", id.Value)
		return
	}
	sym.Refs = append(sym.Refs, id)
	id.Symbol = sym

	if sym.Kind.Lexical() && !r.initialized[sym] && !r.crossesFunction(sym.Scope) {
		r.bag.Warnf(diagnostic.UseBeforeDeclaration, id.Token.Line, id.Token.Column,
			"'%s' is used before its declaration", id.Value)
	}
}

// crossesFunction reports whether a function boundary lies between the
// current scope and decl.
func (r *resolver) crossesFunction(decl *ast.Scope) bool {
	for sc := r.scope; sc != nil && sc != decl; sc = sc.Parent {
		if sc.Kind == ast.FunctionScope {
			return true
		}
	}
	return false
}

// pattern resolves a binding pattern: leaves are declarations, default
// values and computed keys are ordinary expressions.
func (r *resolver) pattern(e ast.Expression) {
	switch p := e.(type) {
	case *ast.Identifier:
		r.bind(p)
	case *ast.ObjectPattern:
		for _, prop := range p.Properties {
			if prop.Computed {
				r.visit(prop.Key)
			}
			r.pattern(prop.Value)
		}
		if p.Rest != nil {
			r.pattern(p.Rest)
		}
	case *ast.ArrayPattern:
		for _, el := range p.Elements {
			if el != nil {
				r.pattern(el)
			}
		}
	case *ast.AssignmentPattern:
		r.pattern(p.Left)
		r.visit(p.Right)
	case *ast.RestElement:
		r.pattern(p.Argument)
	default:
		panic(fmt.Sprintf("resolver: unexpected %s in binding pattern", ast.TypeName(e)))
	}
}

func (r *resolver) markProtected(with bool) {
	for sc := r.scope; sc != nil; sc = sc.Parent {
		if with {
			sc.ContainsWith = true
		} else {
			sc.ContainsEval = true
		}
	}
}

// ---------- Functions and classes ----------

// function resolves params and body in a new function scope. name is the
// self-binding of a named function expression.
func (r *resolver) function(params []ast.Expression, body ast.Node, name *ast.Identifier, arrow bool) *ast.Scope {
	scope, leave := r.enter(ast.FunctionScope)
	defer leave()
	if !arrow {
		r.nonArrow++
		defer func() { r.nonArrow-- }()
	}

	for _, p := range params {
		for _, id := range BindingIdentifiers(p) {
			if scope.Symbols[id.Value] == nil {
				scope.Declare(id.Value, ast.Param)
			}
		}
	}

	block, _ := body.(*ast.BlockStatement)
	if block != nil {
		r.declare(block.Statements, scope)
	}
	if name != nil {
		if scope.Symbols[name.Value] == nil {
			scope.Declare(name.Value, ast.Func)
		}
		r.bind(name)
	}

	for _, p := range params {
		r.pattern(p)
	}
	if block != nil {
		r.statements(block.Statements)
	} else {
		r.visit(body)
	}
	return scope
}

func (r *resolver) classBody(body *ast.ClassBody) {
	for _, m := range body.Methods {
		if m.Computed {
			r.visit(m.Key)
		}
		m.Value.Scope = r.function(m.Value.Params, m.Value.Body, nil, false)
	}
}

// ---------- Traversal ----------

func (r *resolver) visit(n ast.Node) {
	switch n := n.(type) {
	case nil:
	case *ast.Identifier:
		r.reference(n, false)

	case *ast.VariableDeclaration:
		for _, d := range n.Declarations {
			if d.Value != nil {
				r.visit(d.Value)
			}
			r.pattern(d.Name)
		}

	case *ast.BlockStatement:
		r.block(n, nil)

	case *ast.FunctionDeclaration:
		r.bind(n.Name)
		n.Scope = r.function(n.Params, n.Body, nil, false)

	case *ast.FunctionExpression:
		n.Scope = r.function(n.Params, n.Body, n.Name, false)

	case *ast.ArrowFunctionExpression:
		n.Scope = r.function(n.Params, n.Body, nil, true)

	case *ast.ClassDeclaration:
		if n.SuperClass != nil {
			r.visit(n.SuperClass)
		}
		r.bind(n.Name)
		r.classBody(n.Body)

	case *ast.ClassExpression:
		if n.Name == nil {
			if n.SuperClass != nil {
				r.visit(n.SuperClass)
			}
			r.classBody(n.Body)
			return
		}
		scope, leave := r.enter(ast.ClassScope)
		n.Scope = scope
		scope.Declare(n.Name.Value, ast.Class)
		if n.SuperClass != nil {
			r.visit(n.SuperClass)
		}
		r.bind(n.Name)
		r.classBody(n.Body)
		leave()

	case *ast.ForStatement:
		scope, leave := r.enter(ast.BlockScope)
		n.Scope = scope
		if decl, ok := n.Init.(*ast.VariableDeclaration); ok {
			r.declareLexicalDecl(decl, scope, nil)
		}
		r.visit(n.Init)
		r.visit(n.Test)
		r.visit(n.Update)
		r.visit(n.Body)
		leave()

	case *ast.ForInStatement:
		n.Scope = r.forInOf(n.Left, n.Right, n.Body)

	case *ast.ForOfStatement:
		n.Scope = r.forInOf(n.Left, n.Right, n.Body)

	case *ast.SwitchStatement:
		r.visit(n.Discriminant)
		scope, leave := r.enter(ast.BlockScope)
		n.Scope = scope
		var all []ast.Statement
		for _, c := range n.Cases {
			all = append(all, c.Consequent...)
		}
		r.declareFunctions(all, scope)
		r.declareLexical(all, scope, nil)
		for _, c := range n.Cases {
			r.visit(c.Test)
			r.statements(c.Consequent)
		}
		leave()

	case *ast.TryStatement:
		r.visit(n.Block)
		if h := n.Handler; h != nil {
			scope, leave := r.enter(ast.CatchScope)
			h.Scope = scope
			for _, id := range BindingIdentifiers(h.Param) {
				if scope.Symbols[id.Value] != nil {
					r.redeclared(id)
					continue
				}
				scope.Declare(id.Value, ast.CatchParam)
			}
			if h.Param != nil {
				r.pattern(h.Param)
			}
			r.block(h.Body, scope)
			leave()
		}
		if n.Finalizer != nil {
			r.visit(n.Finalizer)
		}

	case *ast.WithStatement:
		r.visit(n.Object)
		r.markProtected(true)
		r.visit(n.Body)

	case *ast.LabeledStatement:
		r.visit(n.Body)
	case *ast.BreakStatement, *ast.ContinueStatement, *ast.MetaProperty:

	case *ast.MemberExpression:
		r.visit(n.Object)
		if n.Computed {
			r.visit(n.Property)
		}

	case *ast.Property:
		if n.Computed {
			r.visit(n.Key)
		}
		r.visit(n.Value)

	case *ast.UnaryExpression:
		if id, ok := ast.Unparen(n.Operand).(*ast.Identifier); ok && n.Operator == "typeof" {
			r.reference(id, true)
			return
		}
		r.visit(n.Operand)

	case *ast.CallExpression:
		r.visit(n.Callee)
		for _, a := range n.Arguments {
			r.visit(a)
		}
		if id, ok := ast.Unparen(n.Callee).(*ast.Identifier); ok && id.Value == "eval" && id.Symbol == nil {
			r.markProtected(false)
		}

	default:
		for _, c := range ast.Children(n) {
			r.visit(c)
		}
	}
}

// block resolves a block statement in a new block scope. catch is the
// enclosing catch scope for a catch body.
func (r *resolver) block(b *ast.BlockStatement, catch *ast.Scope) {
	scope, leave := r.enter(ast.BlockScope)
	defer leave()
	b.Scope = scope

	for _, fd := range topLevelFunctions(b.Statements) {
		if r.annexB[fd] {
			continue
		}
		if sym := scope.Symbols[fd.Name.Value]; sym != nil {
			continue
		}
		scope.Declare(fd.Name.Value, ast.Func)
	}
	r.declareLexical(b.Statements, scope, catch)
	r.statements(b.Statements)
}

func (r *resolver) forInOf(left ast.Node, right ast.Expression, body ast.Statement) *ast.Scope {
	scope, leave := r.enter(ast.BlockScope)
	defer leave()

	decl, isDecl := left.(*ast.VariableDeclaration)
	if isDecl {
		r.declareLexicalDecl(decl, scope, nil)
	}
	r.visit(right)
	r.visit(left)
	r.visit(body)
	return scope
}
