package transform

import "github.com/example/jsmin/ast"

// binding is what an identifier denotes: a symbol, or a free name when sym
// is nil.
type binding struct {
	sym  *ast.Symbol
	name string
}

type snapshot struct {
	ids map[*ast.Identifier]binding
}

func takeSnapshot(prog *ast.Program) *snapshot {
	return &snapshot{ids: bindings(prog)}
}

// bindings collects every declaring, referencing and free identifier of a
// resolved program.
func bindings(prog *ast.Program) map[*ast.Identifier]binding {
	out := make(map[*ast.Identifier]binding)
	for name, ids := range prog.Scope.Free {
		for _, id := range ids {
			out[id] = binding{name: name}
		}
	}
	var visit func(sc *ast.Scope)
	visit = func(sc *ast.Scope) {
		for _, sym := range sc.Order {
			for _, id := range sym.Decls {
				out[id] = binding{sym: sym}
			}
			for _, id := range sym.Refs {
				out[id] = binding{sym: sym}
			}
		}
		for _, c := range sc.Children {
			visit(c)
		}
	}
	visit(prog.Scope)
	return out
}

// check compares the bindings of the identifiers that survived a pass with
// the ones they had before it. Two identifiers must share a symbol after the
// pass exactly when they shared one before, and free names must stay free.
func (s *snapshot) check(pass string, prog *ast.Program) {
	fwd := make(map[*ast.Symbol]*ast.Symbol)
	rev := make(map[*ast.Symbol]*ast.Symbol)

	for id, now := range bindings(prog) {
		was, ok := s.ids[id]
		if !ok {
			continue
		}
		switch {
		case was.sym == nil && now.sym == nil:
			if was.name != now.name {
				invariant(pass, "free name %q became %q at %d:%d", was.name, now.name, id.Token.Line, id.Token.Column)
			}
		case was.sym == nil:
			invariant(pass, "free name %q is captured by a binding at %d:%d", was.name, id.Token.Line, id.Token.Column)
		case now.sym == nil:
			invariant(pass, "%q no longer resolves at %d:%d", was.sym.Original, id.Token.Line, id.Token.Column)
		default:
			if m, ok := fwd[was.sym]; ok && m != now.sym {
				invariant(pass, "references to %q were split at %d:%d", was.sym.Original, id.Token.Line, id.Token.Column)
			}
			if m, ok := rev[now.sym]; ok && m != was.sym {
				invariant(pass, "%q collides with %q at %d:%d", was.sym.Original, m.Original, id.Token.Line, id.Token.Column)
			}
			fwd[was.sym] = now.sym
			rev[now.sym] = was.sym
		}
	}
}
