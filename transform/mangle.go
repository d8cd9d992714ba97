package transform

import (
	"sort"

	"github.com/example/jsmin/ast"
)

type mangler struct {
	// outer holds, per scope, the symbols declared outside it that are used
	// inside it. Their names must stay visible there.
	outer map[*ast.Scope]map[*ast.Symbol]bool
	// free holds, per scope, the unresolved names used inside it.
	free map[*ast.Scope]map[string]bool
	// hoisted maps a catch parameter redeclared by a var in the catch body
	// to the symbol that var hoists to. Both must end up with one name.
	hoisted map[*ast.Symbol]*ast.Symbol
	// pins lists those catch parameters by the scope their var hoists to.
	pins map[*ast.Scope][]*ast.Symbol
	// reserved holds, per scope, names pinned by an enclosing scope.
	reserved map[*ast.Scope]map[string]bool
}

// Mangle renames the bindings of every scope except the global one to short
// names. Scopes are handled outermost first; within a scope the most used
// binding gets the first name. A name is skipped when it is reserved, when a
// binding from an enclosing scope is used under that name inside the scope,
// or when the scope uses a free name spelled the same. Scopes that contain a
// direct eval or a with statement keep their names. A catch parameter that a
// var in its body redeclares takes the name of the hoisted var.
func Mangle(prog *ast.Program) {
	m := &mangler{
		outer:    make(map[*ast.Scope]map[*ast.Symbol]bool),
		free:     make(map[*ast.Scope]map[string]bool),
		hoisted:  make(map[*ast.Symbol]*ast.Symbol),
		pins:     make(map[*ast.Scope][]*ast.Symbol),
		reserved: make(map[*ast.Scope]map[string]bool),
	}
	m.collect(prog)
	m.collectHoisted(prog.Scope)
	m.pin(prog.Scope)
	for _, c := range prog.Scope.Children {
		m.scope(c)
	}
	commit(prog.Scope)
}

func (m *mangler) collect(prog *ast.Program) {
	free := make(map[*ast.Identifier]bool)
	for _, ids := range prog.Scope.Free {
		for _, id := range ids {
			free[id] = true
		}
	}

	for id, sc := range identScopes(prog) {
		switch {
		case id.Symbol != nil:
			for s := sc; s != nil && s != id.Symbol.Scope; s = s.Parent {
				if m.outer[s] == nil {
					m.outer[s] = make(map[*ast.Symbol]bool)
				}
				m.outer[s][id.Symbol] = true
			}
		case free[id]:
			for s := sc; s != nil; s = s.Parent {
				if m.free[s] == nil {
					m.free[s] = make(map[string]bool)
				}
				m.free[s][id.Value] = true
			}
		}
	}
}

// identScopes maps every identifier to the innermost scope around it.
func identScopes(prog *ast.Program) map[*ast.Identifier]*ast.Scope {
	out := make(map[*ast.Identifier]*ast.Scope)
	var walk func(n ast.Node, sc *ast.Scope)
	walk = func(n ast.Node, sc *ast.Scope) {
		if s := scopeOf(n); s != nil {
			sc = s
		}
		if id, ok := n.(*ast.Identifier); ok {
			out[id] = sc
			return
		}
		for _, c := range ast.Children(n) {
			walk(c, sc)
		}
	}
	walk(prog, prog.Scope)
	return out
}

// collectHoisted finds the catch parameters that a var in the catch body
// redeclares. The var binds to the parameter but is declared in the
// enclosing function, so the printed var must spell the function's name.
func (m *mangler) collectHoisted(sc *ast.Scope) {
	if sc.Kind == ast.CatchScope {
		vs := varScope(sc)
		for _, sym := range sc.Order {
			if sym.Kind != ast.CatchParam || len(sym.Decls) < 2 {
				continue
			}
			if h := vs.Symbols[sym.Original]; h != nil {
				m.hoisted[sym] = h
				m.pins[vs] = append(m.pins[vs], sym)
			}
		}
	}
	for _, c := range sc.Children {
		m.collectHoisted(c)
	}
}

// varScope returns the scope a var declared in sc hoists to.
func varScope(sc *ast.Scope) *ast.Scope {
	for sc.Kind != ast.FunctionScope && sc.Kind != ast.GlobalScope && sc.Parent != nil {
		sc = sc.Parent
	}
	return sc
}

// pin reserves the final names of the vars hoisted into vs in every scope
// between vs and the catch scopes that redeclare them.
func (m *mangler) pin(vs *ast.Scope) {
	for _, sym := range m.pins[vs] {
		name := m.hoisted[sym].Name
		for s := sym.Scope; s != nil && s != vs; s = s.Parent {
			if m.reserved[s] == nil {
				m.reserved[s] = make(map[string]bool)
			}
			m.reserved[s][name] = true
		}
	}
}

func (m *mangler) scope(sc *ast.Scope) {
	if !sc.Protected() {
		m.rename(sc)
	}
	m.pin(sc)
	for _, c := range sc.Children {
		m.scope(c)
	}
}

func (m *mangler) rename(sc *ast.Scope) {
	if len(sc.Order) == 0 {
		return
	}
	taken := make(map[string]bool)
	for sym := range m.outer[sc] {
		taken[sym.Name] = true
	}
	for name := range m.free[sc] {
		taken[name] = true
	}
	for name := range m.reserved[sc] {
		taken[name] = true
	}

	syms := make([]*ast.Symbol, 0, len(sc.Order))
	for _, sym := range sc.Order {
		if h := m.hoisted[sym]; h != nil {
			sym.Name = h.Name
			continue
		}
		syms = append(syms, sym)
	}
	sort.SliceStable(syms, func(i, j int) bool {
		return syms[i].Uses() > syms[j].Uses()
	})

	var gen nameGen
	for _, sym := range syms {
		name := gen.next()
		for taken[name] {
			name = gen.next()
		}
		sym.Name = name
	}
}

// commit writes the new names into the identifiers, so that resolving the
// program again yields the renamed bindings.
func commit(sc *ast.Scope) {
	for _, sym := range sc.Order {
		for _, id := range sym.Decls {
			id.Value = sym.Name
		}
		for _, id := range sym.Refs {
			id.Value = sym.Name
		}
	}
	for _, c := range sc.Children {
		commit(c)
	}
}
