package transform

import (
	"github.com/example/jsmin/ast"
	"github.com/example/jsmin/token"
)

// keepDirectives runs pass and then parenthesizes every string statement
// the pass moved into a directive prologue, so that folding "use " +
// "strict" or removing the statements in front of a string cannot switch a
// function into strict mode.
func keepDirectives(prog *ast.Program, pass func()) {
	before := directives(prog)
	pass()
	for s := range directives(prog) {
		if before[s] {
			continue
		}
		lit := s.Expression
		s.Expression = &ast.ParenthesizedExpression{
			Token:      token.Token{Type: token.LeftParen, Literal: "(", Line: s.Token.Line, Column: s.Token.Column},
			Expression: lit,
		}
	}
}

// directives returns the statements that form directive prologues.
func directives(prog *ast.Program) map[*ast.ExpressionStatement]bool {
	out := make(map[*ast.ExpressionStatement]bool)
	prologue := func(stmts []ast.Statement) {
		for _, s := range stmts {
			es, ok := s.(*ast.ExpressionStatement)
			if !ok {
				return
			}
			if _, ok := es.Expression.(*ast.StringLiteral); !ok {
				return
			}
			out[es] = true
		}
	}
	prologue(prog.Statements)
	ast.Inspect(prog, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.FunctionDeclaration:
			prologue(n.Body.Statements)
		case *ast.FunctionExpression:
			prologue(n.Body.Statements)
		case *ast.ArrowFunctionExpression:
			if b, ok := n.Body.(*ast.BlockStatement); ok {
				prologue(b.Statements)
			}
		}
		return true
	})
	return out
}
