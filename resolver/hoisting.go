package resolver

import (
	"github.com/example/jsmin/ast"
	"github.com/example/jsmin/diagnostic"
)

// hoister collects the var declarations of one function body and the block
// level function declarations that Annex B hoists to the function scope.
type hoister struct {
	r  *resolver
	fn *ast.Scope

	// enclosing block-level names while scanning, innermost last. The value
	// is true for let/const/class and false for catch parameters.
	names []map[string]bool
}

// hoist declares the var-scoped names of stmts in the function scope fn.
func (r *resolver) hoist(stmts []ast.Statement, fn *ast.Scope) {
	h := &hoister{r: r, fn: fn, names: []map[string]bool{lexicalNames(stmts)}}
	h.collectVarDecls(stmts, false)
}

func (h *hoister) push(m map[string]bool) { h.names = append(h.names, m) }
func (h *hoister) pop()                   { h.names = h.names[:len(h.names)-1] }

// collectVarDecls recursively walks all nested statements (but not nested
// functions) to find var declarations.
func (h *hoister) collectVarDecls(stmts []ast.Statement, inBlock bool) {
	for _, stmt := range stmts {
		h.collectVarDeclsFromStmt(stmt, inBlock)
	}
}

func (h *hoister) collectVarDeclsFromStmt(stmt ast.Statement, inBlock bool) {
	switch s := stmt.(type) {
	case *ast.VariableDeclaration:
		h.varDeclaration(s)
	case *ast.FunctionDeclaration:
		if inBlock {
			h.blockFunction(s)
		}
	case *ast.BlockStatement:
		h.push(lexicalNames(s.Statements))
		h.collectVarDecls(s.Statements, true)
		h.pop()
	case *ast.IfStatement:
		h.collectVarDeclsFromStmt(s.Consequence, true)
		if s.Alternative != nil {
			h.collectVarDeclsFromStmt(s.Alternative, true)
		}
	case *ast.ForStatement:
		h.push(headNames(s.Init))
		if decl, ok := s.Init.(*ast.VariableDeclaration); ok {
			h.varDeclaration(decl)
		}
		h.collectVarDeclsFromStmt(s.Body, true)
		h.pop()
	case *ast.ForInStatement:
		h.forInOf(s.Left, s.Body)
	case *ast.ForOfStatement:
		h.forInOf(s.Left, s.Body)
	case *ast.WhileStatement:
		h.collectVarDeclsFromStmt(s.Body, true)
	case *ast.DoWhileStatement:
		h.collectVarDeclsFromStmt(s.Body, true)
	case *ast.SwitchStatement:
		var all []ast.Statement
		for _, c := range s.Cases {
			all = append(all, c.Consequent...)
		}
		h.push(lexicalNames(all))
		h.collectVarDecls(all, true)
		h.pop()
	case *ast.TryStatement:
		h.collectVarDeclsFromStmt(s.Block, inBlock)
		if s.Handler != nil {
			params := map[string]bool{}
			for _, id := range BindingIdentifiers(s.Handler.Param) {
				params[id.Value] = false
			}
			h.push(params)
			h.collectVarDeclsFromStmt(s.Handler.Body, inBlock)
			h.pop()
		}
		if s.Finalizer != nil {
			h.collectVarDeclsFromStmt(s.Finalizer, inBlock)
		}
	case *ast.LabeledStatement:
		h.collectVarDeclsFromStmt(s.Body, inBlock)
	case *ast.WithStatement:
		h.collectVarDeclsFromStmt(s.Body, true)
	}
}

func (h *hoister) forInOf(left ast.Node, body ast.Statement) {
	h.push(headNames(left))
	if decl, ok := left.(*ast.VariableDeclaration); ok {
		h.varDeclaration(decl)
	}
	h.collectVarDeclsFromStmt(body, true)
	h.pop()
}

func (h *hoister) varDeclaration(decl *ast.VariableDeclaration) {
	if decl.Kind != "var" {
		return
	}
	for _, d := range decl.Declarations {
		for _, id := range BindingIdentifiers(d.Name) {
			h.declareVar(id)
		}
	}
}

func (h *hoister) declareVar(id *ast.Identifier) {
	for _, m := range h.names {
		if m[id.Value] {
			h.r.redeclared(id)
			return
		}
	}
	if sym := h.fn.Symbols[id.Value]; sym != nil {
		if sym.Kind.Lexical() {
			h.r.redeclared(id)
		}
		return
	}
	h.fn.Declare(id.Value, ast.Var)
}

// blockFunction hoists a function declared in a block to the function scope
// unless an enclosing lexical binding or a parameter of the same name would
// make the var binding observable differently.
func (h *hoister) blockFunction(fd *ast.FunctionDeclaration) {
	name := fd.Name.Value
	for _, m := range h.names[:len(h.names)-1] {
		if _, ok := m[name]; ok {
			return
		}
	}
	if _, ok := h.names[len(h.names)-1][name]; ok {
		return
	}
	sym := h.fn.Symbols[name]
	if sym != nil && (sym.Kind == ast.Param || sym.Kind.Lexical()) {
		return
	}
	if sym == nil {
		h.fn.Declare(name, ast.Func)
	}
	h.r.annexB[fd] = true
}

// lexicalNames returns the let, const and class names declared directly in stmts.
func lexicalNames(stmts []ast.Statement) map[string]bool {
	names := map[string]bool{}
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *ast.VariableDeclaration:
			if s.Kind == "var" {
				continue
			}
			for _, d := range s.Declarations {
				for _, id := range BindingIdentifiers(d.Name) {
					names[id.Value] = true
				}
			}
		case *ast.ClassDeclaration:
			names[s.Name.Value] = true
		}
	}
	return names
}

func headNames(head ast.Node) map[string]bool {
	if decl, ok := head.(*ast.VariableDeclaration); ok && decl.Kind != "var" {
		return lexicalNames([]ast.Statement{decl})
	}
	return map[string]bool{}
}

// topLevelFunctions returns the function declarations that belong directly to
// a statement list, looking through labels.
func topLevelFunctions(stmts []ast.Statement) []*ast.FunctionDeclaration {
	var out []*ast.FunctionDeclaration
	for _, stmt := range stmts {
		for {
			l, ok := stmt.(*ast.LabeledStatement)
			if !ok {
				break
			}
			stmt = l.Body
		}
		if fd, ok := stmt.(*ast.FunctionDeclaration); ok {
			out = append(out, fd)
		}
	}
	return out
}

// BindingIdentifiers returns the identifiers a binding pattern declares, in
// source order.
func BindingIdentifiers(pattern ast.Expression) []*ast.Identifier {
	var out []*ast.Identifier
	var walk func(e ast.Expression)
	walk = func(e ast.Expression) {
		switch p := e.(type) {
		case *ast.Identifier:
			out = append(out, p)
		case *ast.ObjectPattern:
			for _, prop := range p.Properties {
				walk(prop.Value)
			}
			if p.Rest != nil {
				walk(p.Rest)
			}
		case *ast.ArrayPattern:
			for _, el := range p.Elements {
				if el != nil {
					walk(el)
				}
			}
		case *ast.AssignmentPattern:
			walk(p.Left)
		case *ast.RestElement:
			walk(p.Argument)
		}
	}
	if pattern != nil {
		walk(pattern)
	}
	return out
}

func (r *resolver) redeclared(id *ast.Identifier) {
	r.bag.Errorf(diagnostic.Redeclaration, id.Token.Line, id.Token.Column,
		"Identifier '%s' has already been declared", id.Value)
}
