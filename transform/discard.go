package transform

import "github.com/example/jsmin/ast"

// discard drops the subtree n from the program's bookkeeping: identifiers are
// unlinked from their symbols or from the free list and the scopes n owns
// are detached. Identifiers in keep stay linked.
func discard(prog *ast.Program, n ast.Node, keep ...*ast.Identifier) {
	if n == nil {
		return
	}
	ast.Inspect(n, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.Identifier:
			for _, k := range keep {
				if k == n {
					return true
				}
			}
			unlink(prog, n)
		default:
			if sc := scopeOf(n); sc != nil {
				sc.Detach()
			}
		}
		return true
	})
}

func unlink(prog *ast.Program, id *ast.Identifier) {
	if id.Symbol != nil {
		id.Symbol.Unlink(id)
		return
	}
	free := prog.Scope.Free
	list := free[id.Value]
	for i, x := range list {
		if x == id {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(free, id.Value)
	} else {
		free[id.Value] = list
	}
}

// scopeOf returns the scope a node introduces, if any.
func scopeOf(n ast.Node) *ast.Scope {
	switch n := n.(type) {
	case *ast.Program:
		return n.Scope
	case *ast.BlockStatement:
		return n.Scope
	case *ast.ForStatement:
		return n.Scope
	case *ast.ForInStatement:
		return n.Scope
	case *ast.ForOfStatement:
		return n.Scope
	case *ast.SwitchStatement:
		return n.Scope
	case *ast.CatchClause:
		return n.Scope
	case *ast.FunctionDeclaration:
		return n.Scope
	case *ast.FunctionExpression:
		return n.Scope
	case *ast.ArrowFunctionExpression:
		return n.Scope
	case *ast.ClassExpression:
		return n.Scope
	}
	return nil
}
