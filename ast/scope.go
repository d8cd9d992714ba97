package ast

// ScopeKind classifies a Scope.
type ScopeKind int

const (
	GlobalScope ScopeKind = iota
	FunctionScope
	BlockScope
	CatchScope
	ClassScope
)

var scopeKindNames = [...]string{
	GlobalScope:   "global",
	FunctionScope: "function",
	BlockScope:    "block",
	CatchScope:    "catch",
	ClassScope:    "class",
}

func (k ScopeKind) String() string {
	if int(k) < len(scopeKindNames) {
		return scopeKindNames[k]
	}
	return "unknown"
}

// SymbolKind is the kind of declaration that introduced a Symbol.
type SymbolKind int

const (
	Var SymbolKind = iota
	Let
	Const
	Func
	Param
	Class
	CatchParam
)

var symbolKindNames = [...]string{
	Var:        "var",
	Let:        "let",
	Const:      "const",
	Func:       "function",
	Param:      "param",
	Class:      "class",
	CatchParam: "catch",
}

func (k SymbolKind) String() string {
	if int(k) < len(symbolKindNames) {
		return symbolKindNames[k]
	}
	return "unknown"
}

// Lexical reports whether the binding has a temporal dead zone.
func (k SymbolKind) Lexical() bool {
	return k == Let || k == Const || k == Class
}

// Scope is a node of the scope tree. Scopes are owned by the AST node that
// introduces them; Parent is a back-reference and is never used for ownership.
type Scope struct {
	Kind     ScopeKind
	Parent   *Scope
	Children []*Scope

	// Symbols is keyed by the source name of the binding, which does not
	// change when the Symbol is renamed.
	Symbols map[string]*Symbol
	Order   []*Symbol

	// ContainsEval and ContainsWith are set on the scope holding a direct
	// eval call or a with statement and on all of its ancestors.
	ContainsEval bool
	ContainsWith bool

	// Free holds the unresolved references of the whole program. Only the
	// global scope populates it.
	Free map[string][]*Identifier
}

func NewScope(kind ScopeKind, parent *Scope) *Scope {
	s := &Scope{
		Kind:    kind,
		Parent:  parent,
		Symbols: make(map[string]*Symbol),
	}
	if parent != nil {
		parent.Children = append(parent.Children, s)
	}
	return s
}

// Declare adds a new Symbol to the scope. The caller checks for an existing one.
func (s *Scope) Declare(name string, kind SymbolKind) *Symbol {
	sym := &Symbol{Name: name, Original: name, Kind: kind, Scope: s}
	s.Symbols[name] = sym
	s.Order = append(s.Order, sym)
	return sym
}

// Lookup resolves name through the scope chain.
func (s *Scope) Lookup(name string) *Symbol {
	for sc := s; sc != nil; sc = sc.Parent {
		if sym, ok := sc.Symbols[name]; ok {
			return sym
		}
	}
	return nil
}

// Remove deletes sym from the scope.
func (s *Scope) Remove(sym *Symbol) {
	if s.Symbols[sym.Original] == sym {
		delete(s.Symbols, sym.Original)
	}
	for i, o := range s.Order {
		if o == sym {
			s.Order = append(s.Order[:i], s.Order[i+1:]...)
			break
		}
	}
}

// Detach removes s from its parent's children.
func (s *Scope) Detach() {
	if s.Parent == nil {
		return
	}
	p := s.Parent
	for i, c := range p.Children {
		if c == s {
			p.Children = append(p.Children[:i], p.Children[i+1:]...)
			break
		}
	}
}

// Adopt moves the children of c to s.
func (s *Scope) Adopt(c *Scope) {
	for _, child := range c.Children {
		child.Parent = s
		s.Children = append(s.Children, child)
	}
	c.Children = nil
}

// Protected reports whether names in this scope may be observed dynamically
// through eval or with.
func (s *Scope) Protected() bool {
	return s.ContainsEval || s.ContainsWith
}

// IsWithin reports whether s is anc or one of its descendants.
func (s *Scope) IsWithin(anc *Scope) bool {
	for sc := s; sc != nil; sc = sc.Parent {
		if sc == anc {
			return true
		}
	}
	return false
}

// Global returns the root of the scope tree.
func (s *Scope) Global() *Scope {
	sc := s
	for sc.Parent != nil {
		sc = sc.Parent
	}
	return sc
}

// Symbol is a single binding. All identifiers that denote it share the
// pointer, so renaming a Symbol renames every occurrence.
type Symbol struct {
	Name     string
	Original string
	Kind     SymbolKind
	Scope    *Scope
	Decls    []*Identifier
	Refs     []*Identifier
}

// Uses is the number of identifiers bound to the symbol.
func (s *Symbol) Uses() int {
	return len(s.Decls) + len(s.Refs)
}

// Unlink removes id from the declaring or referencing identifiers.
// It reports whether id was found.
func (s *Symbol) Unlink(id *Identifier) bool {
	if i := indexOf(s.Refs, id); i >= 0 {
		s.Refs = append(s.Refs[:i], s.Refs[i+1:]...)
		return true
	}
	if i := indexOf(s.Decls, id); i >= 0 {
		s.Decls = append(s.Decls[:i], s.Decls[i+1:]...)
		return true
	}
	return false
}

func indexOf(ids []*Identifier, id *Identifier) int {
	for i, x := range ids {
		if x == id {
			return i
		}
	}
	return -1
}
