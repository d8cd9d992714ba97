// Package diagnostic defines the errors and warnings reported by the compiler.
package diagnostic

import "fmt"

// Severity represents the severity level of a diagnostic
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

// MarshalText lets diagnostics serialize with readable severities.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Kind classifies a diagnostic.
type Kind string

const (
	LexError             Kind = "lex-error"
	SyntaxError          Kind = "syntax-error"
	Redeclaration        Kind = "redeclaration"
	UnresolvedReference  Kind = "unresolved-reference"
	UseBeforeDeclaration Kind = "use-before-declaration"
	Internal             Kind = "internal"
)

// Diagnostic represents a compiler diagnostic (error or warning)
type Diagnostic struct {
	Severity Severity
	Kind     Kind
	Message  string
	Line     int
	Column   int
}

// NewError creates a new error diagnostic
func NewError(kind Kind, line, col int, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: Error, Kind: kind, Message: fmt.Sprintf(format, args...), Line: line, Column: col}
}

// NewWarning creates a new warning diagnostic
func NewWarning(kind Kind, line, col int, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: Warning, Kind: kind, Message: fmt.Sprintf(format, args...), Line: line, Column: col}
}

// String formats the diagnostic as "line:col: severity: message".
func (d Diagnostic) String() string {
	if d.Line == 0 {
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}
	return fmt.Sprintf("%d:%d: %s: %s", d.Line, d.Column, d.Severity, d.Message)
}

// HasErrors reports whether any diagnostic in list is an error.
func HasErrors(list []Diagnostic) bool {
	for _, d := range list {
		if d.Severity == Error {
			return true
		}
	}
	return false
}
