package transform

import (
	"github.com/example/jsmin/ast"
	"github.com/example/jsmin/token"
)

// Simplify makes structural changes that shorten the printed program
// without changing its meaning: parentheses kept from the source are
// dropped (the printer adds back the ones precedence needs), adjacent
// declarations of the same kind are merged, blocks that declare nothing are
// spliced into the enclosing list and single-statement bodies lose their
// braces.
func Simplify(prog *ast.Program) {
	keepDirectives(prog, func() {
		ast.Rewrite(prog, simplify)
	})
}

func simplify(n ast.Node) ast.Node {
	switch n := n.(type) {
	case *ast.ParenthesizedExpression:
		return n.Expression
	case *ast.Program:
		n.Statements = simplifyList(n.Statements)
	case *ast.BlockStatement:
		n.Statements = simplifyList(n.Statements)
	case *ast.SwitchCase:
		n.Consequent = simplifyList(n.Consequent)
	case *ast.IfStatement:
		if n.Alternative != nil {
			n.Alternative = unwrap(n.Alternative)
			c := unwrap(n.Consequence)
			if ast.OpenIf(c) {
				c = &ast.BlockStatement{Token: token.Token{Type: token.LeftBrace, Literal: "{"}, Statements: []ast.Statement{c}}
			}
			n.Consequence = c
		} else {
			n.Consequence = unwrap(n.Consequence)
		}
	case *ast.WhileStatement:
		n.Body = unwrap(n.Body)
	case *ast.DoWhileStatement:
		n.Body = unwrap(n.Body)
	case *ast.ForStatement:
		n.Body = unwrap(n.Body)
	case *ast.ForInStatement:
		n.Body = unwrap(n.Body)
	case *ast.ForOfStatement:
		n.Body = unwrap(n.Body)
	case *ast.WithStatement:
		n.Body = unwrap(n.Body)
	}
	return n
}

func simplifyList(stmts []ast.Statement) []ast.Statement {
	var out []ast.Statement
	for _, s := range stmts {
		switch s := s.(type) {
		case *ast.EmptyStatement:
			continue
		case *ast.BlockStatement:
			if !declares(s.Statements) {
				for _, inner := range s.Statements {
					out = appendMerged(out, inner)
				}
				continue
			}
		}
		out = appendMerged(out, s)
	}
	return out
}

// appendMerged appends s, merging it into the previous statement when both
// are declarations of the same kind.
func appendMerged(out []ast.Statement, s ast.Statement) []ast.Statement {
	decl, ok := s.(*ast.VariableDeclaration)
	if ok && len(out) > 0 {
		if prev, ok := out[len(out)-1].(*ast.VariableDeclaration); ok && prev.Kind == decl.Kind {
			prev.Declarations = append(prev.Declarations, decl.Declarations...)
			return out
		}
	}
	return append(out, s)
}

// declares reports whether a statement list declares block-scoped names.
func declares(stmts []ast.Statement) bool {
	for _, s := range stmts {
		if isDeclaration(s) {
			return true
		}
	}
	return false
}

func isDeclaration(s ast.Statement) bool {
	switch s := s.(type) {
	case *ast.VariableDeclaration:
		return s.Kind != "var"
	case *ast.FunctionDeclaration, *ast.ClassDeclaration:
		return true
	case *ast.LabeledStatement:
		return isDeclaration(s.Body)
	}
	return false
}

// unwrap replaces a body block by its only statement, or by an empty
// statement when the block is empty.
func unwrap(body ast.Statement) ast.Statement {
	b, ok := body.(*ast.BlockStatement)
	if !ok {
		return body
	}
	switch len(b.Statements) {
	case 0:
		return &ast.EmptyStatement{Token: token.Token{Type: token.Semicolon, Literal: ";", Line: b.Token.Line, Column: b.Token.Column}}
	case 1:
		if s := b.Statements[0]; !isDeclaration(s) {
			return s
		}
	}
	return body
}
