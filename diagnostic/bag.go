package diagnostic

import (
	"fmt"
	"io"
	"sort"
)

// Bag collects diagnostics during one compilation.
type Bag struct {
	diagnostics []Diagnostic
	errorCount  int
	warnCount   int
}

// Add adds a diagnostic to the bag
func (b *Bag) Add(d Diagnostic) {
	b.diagnostics = append(b.diagnostics, d)
	switch d.Severity {
	case Error:
		b.errorCount++
	case Warning:
		b.warnCount++
	}
}

// AddAll adds every diagnostic in list.
func (b *Bag) AddAll(list []Diagnostic) {
	for _, d := range list {
		b.Add(d)
	}
}

// Errorf adds an error diagnostic.
func (b *Bag) Errorf(kind Kind, line, col int, format string, args ...any) {
	b.Add(NewError(kind, line, col, format, args...))
}

// Warnf adds a warning diagnostic.
func (b *Bag) Warnf(kind Kind, line, col int, format string, args ...any) {
	b.Add(NewWarning(kind, line, col, format, args...))
}

// HasErrors returns true if there are any errors
func (b *Bag) HasErrors() bool { return b.errorCount > 0 }

// ErrorCount returns the number of errors
func (b *Bag) ErrorCount() int { return b.errorCount }

// WarningCount returns the number of warnings
func (b *Bag) WarningCount() int { return b.warnCount }

// Diagnostics returns the diagnostics in source order. Diagnostics at the
// same position keep the order they were added in.
func (b *Bag) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(b.diagnostics))
	copy(out, b.diagnostics)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Line != out[j].Line {
			return out[i].Line < out[j].Line
		}
		return out[i].Column < out[j].Column
	})
	return out
}

// Fprint writes one line per diagnostic prefixed with name, skipping
// warnings when quiet is set.
func Fprint(w io.Writer, name string, list []Diagnostic, quiet bool) {
	for _, d := range list {
		if quiet && d.Severity == Warning {
			continue
		}
		fmt.Fprintf(w, "%s:%s\n", name, d)
	}
}
