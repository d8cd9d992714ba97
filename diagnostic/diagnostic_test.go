package diagnostic

import (
	"bytes"
	"testing"

	"github.com/tdewolff/test"
)

func TestDiagnosticString(t *testing.T) {
	d := NewError(SyntaxError, 3, 7, "unexpected %s", "'}'")
	test.String(t, d.String(), "3:7: error: unexpected '}'")

	d = NewWarning(Internal, 0, 0, "no position")
	test.String(t, d.String(), "warning: no position")
}

func TestBagCounts(t *testing.T) {
	var b Bag
	b.Warnf(UnresolvedReference, 2, 1, "'x' is not defined")
	b.Errorf(Redeclaration, 1, 5, "Identifier 'y' has already been declared")
	b.Warnf(UseBeforeDeclaration, 1, 1, "'z' is used before its declaration")

	test.T(t, b.ErrorCount(), 1)
	test.T(t, b.WarningCount(), 2)
	test.That(t, b.HasErrors())

	list := b.Diagnostics()
	test.T(t, len(list), 3)
	test.T(t, list[0].Kind, UseBeforeDeclaration)
	test.T(t, list[1].Kind, Redeclaration)
	test.T(t, list[2].Kind, UnresolvedReference)
	test.That(t, HasErrors(list))
}

func TestFprintQuiet(t *testing.T) {
	list := []Diagnostic{
		NewWarning(UnresolvedReference, 1, 1, "'a' is not defined"),
		NewError(SyntaxError, 2, 3, "bad"),
	}

	var buf bytes.Buffer
	Fprint(&buf, "in.js", list, true)
	test.String(t, buf.String(), "in.js:2:3: error: bad\n")

	buf.Reset()
	Fprint(&buf, "in.js", list, false)
	test.String(t, buf.String(), "in.js:1:1: warning: 'a' is not defined\nin.js:2:3: error: bad\n")
}
