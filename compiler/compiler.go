// Package compiler ties the pipeline together: it parses a script, resolves
// its scopes, runs the enabled transform passes and prints the result.
package compiler

import (
	"errors"
	"fmt"

	"github.com/example/jsmin/ast"
	"github.com/example/jsmin/diagnostic"
	"github.com/example/jsmin/lexer"
	"github.com/example/jsmin/parser"
	"github.com/example/jsmin/printer"
	"github.com/example/jsmin/resolver"
	"github.com/example/jsmin/transform"
)

// Options selects the passes and the output layout.
type Options struct {
	MangleNames    bool
	FoldConstants  bool
	RemoveDeadCode bool
	Simplify       bool
	Mode           printer.Mode

	// Verify checks after every pass that each surviving identifier still
	// denotes the binding it denoted before.
	Verify bool
}

// DefaultOptions enables every pass and prints compactly.
func DefaultOptions() Options {
	return Options{
		MangleNames:    true,
		FoldConstants:  true,
		RemoveDeadCode: true,
		Simplify:       true,
		Mode:           printer.Compact,
	}
}

// Passes returns the passes o enables in pipeline order.
func (o Options) Passes() []transform.Pass {
	var passes []transform.Pass
	if o.FoldConstants {
		passes = append(passes, transform.FoldPass)
	}
	if o.RemoveDeadCode {
		passes = append(passes, transform.DCEPass)
	}
	if o.MangleNames {
		passes = append(passes, transform.ManglePass)
	}
	if o.Simplify {
		passes = append(passes, transform.SimplifyPass)
	}
	return passes
}

// Result is the outcome of one compilation. Code is empty whenever
// Diagnostics holds an error.
type Result struct {
	Code        string
	Diagnostics []diagnostic.Diagnostic
}

// HasErrors reports whether the compilation failed.
func (r Result) HasErrors() bool {
	return diagnostic.HasErrors(r.Diagnostics)
}

// InternalError reports a bug in a pass or in the printer: a node shape the
// code did not expect or a broken scope invariant.
type InternalError struct {
	Stage string
	Err   error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error in %s: %v", e.Stage, e.Err)
}

func (e *InternalError) Unwrap() error { return e.Err }

// Compile minifies source. It never panics: syntax errors and internal
// errors are returned as diagnostics.
func Compile(source string, opts Options) Result {
	prog, err := parser.Parse(source)
	if err != nil {
		return Result{Diagnostics: []diagnostic.Diagnostic{ParseDiagnostic(err)}}
	}

	var bag diagnostic.Bag
	bag.AddAll(resolver.Resolve(prog))
	if bag.HasErrors() {
		return Result{Diagnostics: bag.Diagnostics()}
	}

	code, err := build(prog, opts)
	if err != nil {
		bag.Errorf(diagnostic.Internal, 0, 0, "%v", err)
		return Result{Diagnostics: bag.Diagnostics()}
	}
	return Result{Code: code, Diagnostics: bag.Diagnostics()}
}

// build runs the passes over a resolved program and prints it, turning a
// panic raised on the way into an *InternalError.
func build(prog *ast.Program, opts Options) (code string, err error) {
	stage := "transform"
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		// *transform.InvariantError, *printer.Error and runtime errors
		switch r := r.(type) {
		case error:
			err = &InternalError{Stage: stage, Err: r}
		default:
			err = &InternalError{Stage: stage, Err: fmt.Errorf("%v", r)}
		}
	}()

	transform.Run(prog, opts.Passes(), transform.Config{Verify: opts.Verify})
	stage = "printer"
	return printer.Print(prog, opts.Mode), nil
}

// ParseDiagnostic converts an error returned by parser.Parse into a
// diagnostic.
func ParseDiagnostic(err error) diagnostic.Diagnostic {
	var lexErr *lexer.LexError
	if errors.As(err, &lexErr) {
		return diagnostic.NewError(diagnostic.LexError, lexErr.Line, lexErr.Column, "%s", lexErr.Msg)
	}
	var synErr *parser.SyntaxError
	if errors.As(err, &synErr) {
		return diagnostic.NewError(diagnostic.SyntaxError, synErr.Line, synErr.Column, "%s", synErr.Msg)
	}
	return diagnostic.NewError(diagnostic.SyntaxError, 0, 0, "%v", err)
}
