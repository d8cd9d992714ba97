// Package transform implements the minification passes that rewrite a
// resolved program: constant folding, dead code elimination, renaming and
// structural simplification.
//
// Every pass receives a freshly resolved program. Run re-resolves the tree
// after each pass, so a pass may restructure blocks and scopes freely as long
// as it keeps the identifiers it leaves in the tree correctly named.
package transform

import (
	"fmt"

	"github.com/example/jsmin/ast"
	"github.com/example/jsmin/diagnostic"
	"github.com/example/jsmin/resolver"
)

// Pass is a single named rewrite of a resolved program.
type Pass struct {
	Name string
	Fn   func(prog *ast.Program)
}

var (
	FoldPass     = Pass{Name: "fold", Fn: Fold}
	DCEPass      = Pass{Name: "dce", Fn: EliminateDeadCode}
	ManglePass   = Pass{Name: "mangle", Fn: Mangle}
	SimplifyPass = Pass{Name: "simplify", Fn: Simplify}
)

// Config controls Run.
type Config struct {
	// Verify checks after every pass that the program still resolves and
	// that every surviving identifier denotes the same binding as before.
	Verify bool
}

// InvariantError reports a pass that left the program in a state the
// resolver does not accept. It is raised with panic.
type InvariantError struct {
	Pass string
	Msg  string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pass, e.Msg)
}

func invariant(pass, format string, args ...any) {
	panic(&InvariantError{Pass: pass, Msg: fmt.Sprintf(format, args...)})
}

// Run applies passes in order. prog must have been resolved; it is resolved
// again after every pass.
func Run(prog *ast.Program, passes []Pass, cfg Config) {
	if prog.Scope == nil {
		resolver.Resolve(prog)
	}
	for _, p := range passes {
		var before *snapshot
		if cfg.Verify {
			before = takeSnapshot(prog)
		}

		p.Fn(prog)
		diags := resolver.Resolve(prog)

		if cfg.Verify {
			for _, d := range diags {
				if d.Severity == diagnostic.Error {
					invariant(p.Name, "output does not resolve: %s", d)
				}
			}
			before.check(p.Name, prog)
		}
	}
}
