package testrunner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tdewolff/test"
)

func TestParseMetadata(t *testing.T) {
	src := `/*---
description: a test
features: [let, class-fields-public]
flags:
  - onlyStrict
negative:
  phase: parse
  type: SyntaxError
---*/
var 1;`
	meta := parseMetadata(src)
	test.String(t, meta.Description, "a test")
	test.T(t, meta.Features, []string{"let", "class-fields-public"})
	test.T(t, meta.Flags, []string{"onlyStrict"})
	test.String(t, meta.Negative.Phase, "parse")
	test.String(t, meta.Negative.Type, "SyntaxError")

	meta = parseMetadata("x = 1")
	test.String(t, meta.Negative.Phase, "")
}

func TestCheck(t *testing.T) {
	test.String(t, check("var x = 1 + 2; if (x !== 3) throw new Error('bad')", false), "")
	test.String(t, check("var 1;", true), "")
	test.That(t, check("var 1;", false) != "", "a syntax error must fail a positive test")
	test.String(t, check("x = 1", true), "expected a parse error")
}

func writeTest(t *testing.T, dir, name, src string) {
	t.Helper()
	path := filepath.Join(dir, "test", name)
	test.Error(t, os.MkdirAll(filepath.Dir(path), 0o755))
	test.Error(t, os.WriteFile(path, []byte(src), 0o644))
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	writeTest(t, dir, "language/valid.js", "function f(a, b) { return a + b }\nf(1, 2);\n")
	writeTest(t, dir, "language/negative.js", "/*---\nnegative:\n  phase: parse\n  type: SyntaxError\n---*/\nvar 1;\n")
	writeTest(t, dir, "language/module.js", "/*---\nflags: [module]\n---*/\nexport var x;\n")
	writeTest(t, dir, "language/fields.js", "/*---\nfeatures: [class-fields-public]\n---*/\nclass A { x = 1 }\n")
	writeTest(t, dir, "other/skipped-by-filter.js", "x = 1")

	results, summary := Run(Config{Test262Dir: dir, Filter: "language", Jobs: 2})
	test.T(t, summary.Total, 4)
	test.T(t, summary.Passed, 2)
	test.T(t, summary.Skipped, 2)
	test.T(t, summary.Failed, 0)

	byPath := map[string]Result{}
	for _, r := range results {
		byPath[filepath.ToSlash(r.Path)] = r.Result
	}
	test.T(t, byPath["test/language/valid.js"], Pass)
	test.T(t, byPath["test/language/negative.js"], Pass)
	test.T(t, byPath["test/language/module.js"], Skip)
	test.T(t, byPath["test/language/fields.js"], Skip)
}

func TestRunLimit(t *testing.T) {
	dir := t.TempDir()
	writeTest(t, dir, "a.js", "a()")
	writeTest(t, dir, "b.js", "b()")
	writeTest(t, dir, "c.js", "c()")

	results, summary := Run(Config{Test262Dir: dir, Limit: 2})
	test.T(t, summary.Total, 2)
	test.T(t, len(results), 2)
	test.String(t, filepath.Base(results[0].Path), "a.js")
}
