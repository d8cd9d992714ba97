// Package testrunner checks the compiler against a test262 checkout. Tests
// that must fail to parse have to be rejected; every other test must compile,
// its output must be accepted by an independent parser, and compiling the
// output again must give the same text.
package testrunner

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/example/jsmin/compiler"
	"github.com/example/jsmin/diagnostic"
	"github.com/example/jsmin/parser"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"
	"golang.org/x/sync/errgroup"
)

type Result int

const (
	Pass Result = iota
	Fail
	Skip
	Error
)

func (r Result) String() string {
	switch r {
	case Pass:
		return "PASS"
	case Fail:
		return "FAIL"
	case Skip:
		return "SKIP"
	case Error:
		return "ERROR"
	}
	return "UNKNOWN"
}

type TestResult struct {
	Path    string
	Result  Result
	Message string
	Elapsed time.Duration
}

type Summary struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
	Errors  int
	Elapsed time.Duration
}

type Config struct {
	Test262Dir string
	Filter     string
	Limit      int
	Verbose    bool

	// Jobs bounds the tests compiled at once; 0 means GOMAXPROCS.
	Jobs int
}

// timeout bounds a single compilation.
const timeout = 5 * time.Second

// Run discovers and runs Test262 tests, returning results in path order and
// a summary.
func Run(cfg Config) ([]TestResult, Summary) {
	testDir := filepath.Join(cfg.Test262Dir, "test")

	// Discover test files
	var testFiles []string
	filepath.Walk(testDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".js") || strings.Contains(path, "_FIXTURE") {
			return nil
		}
		// Apply filter
		if cfg.Filter != "" {
			rel, _ := filepath.Rel(testDir, path)
			if !strings.Contains(rel, cfg.Filter) {
				return nil
			}
		}
		testFiles = append(testFiles, path)
		return nil
	})

	// Apply limit
	if cfg.Limit > 0 && len(testFiles) > cfg.Limit {
		testFiles = testFiles[:cfg.Limit]
	}

	jobs := cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	start := time.Now()
	results := make([]TestResult, len(testFiles))
	var g errgroup.Group
	g.SetLimit(jobs)
	for i, path := range testFiles {
		g.Go(func() error {
			rel, _ := filepath.Rel(cfg.Test262Dir, path)
			results[i] = runSingleTest(path, rel)
			return nil
		})
	}
	g.Wait()

	var summary Summary
	summary.Total = len(testFiles)
	for _, tr := range results {
		switch tr.Result {
		case Pass:
			summary.Passed++
		case Fail:
			summary.Failed++
		case Skip:
			summary.Skipped++
		case Error:
			summary.Errors++
		}

		if cfg.Verbose {
			msg := ""
			if tr.Message != "" {
				msg = " " + tr.Message
			}
			fmt.Printf("%s %s%s\n", tr.Result, tr.Path, msg)
		}
	}

	summary.Elapsed = time.Since(start)
	return results, summary
}

func runSingleTest(path, rel string) TestResult {
	source, err := os.ReadFile(path)
	if err != nil {
		return TestResult{Path: rel, Result: Error, Message: "read error: " + err.Error()}
	}

	meta := parseMetadata(string(source))

	// Skip tests with unsupported features
	for _, feat := range meta.Features {
		if isUnsupportedFeature(feat) {
			return TestResult{Path: rel, Result: Skip, Message: "unsupported feature: " + feat}
		}
	}

	for _, flag := range meta.Flags {
		switch flag {
		case "module":
			return TestResult{Path: rel, Result: Skip, Message: "module test"}
		case "onlyStrict":
			// strict mode early errors are not detected
			if meta.Negative.Phase == "parse" {
				return TestResult{Path: rel, Result: Skip, Message: "strict mode early error"}
			}
		}
	}

	start := time.Now()
	resultCh := make(chan string, 1)
	go func() {
		resultCh <- check(string(source), meta.Negative.Phase == "parse")
	}()

	var msg string
	select {
	case msg = <-resultCh:
	case <-time.After(timeout):
		return TestResult{
			Path:    rel,
			Result:  Error,
			Message: fmt.Sprintf("timeout (%s)", timeout),
			Elapsed: time.Since(start),
		}
	}

	elapsed := time.Since(start)
	if msg != "" {
		return TestResult{Path: rel, Result: Fail, Message: msg, Elapsed: elapsed}
	}
	return TestResult{Path: rel, Result: Pass, Elapsed: elapsed}
}

// check compiles source and returns why it fails the test, or "".
func check(source string, negative bool) (msg string) {
	defer func() {
		if r := recover(); r != nil {
			msg = fmt.Sprintf("panic: %v", r)
		}
	}()

	opts := compiler.DefaultOptions()
	opts.Verify = true
	r := compiler.Compile(source, opts)
	if negative {
		if r.HasErrors() {
			return ""
		}
		return "expected a parse error"
	}
	if r.HasErrors() {
		return firstError(r)
	}

	if _, err := js.Parse(parse.NewInputString(r.Code), js.Options{}); err != nil {
		return "output rejected by the reference parser: " + firstLine(err.Error())
	}
	if _, err := parser.Parse(r.Code); err != nil {
		return "output does not parse: " + err.Error()
	}
	again := compiler.Compile(r.Code, opts)
	if again.HasErrors() {
		return "output does not compile: " + firstError(again)
	}
	if again.Code != r.Code {
		return "compiling the output changes it"
	}
	return ""
}

func firstError(r compiler.Result) string {
	for _, d := range r.Diagnostics {
		if d.Severity == diagnostic.Error {
			return d.String()
		}
	}
	return ""
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// TestMetadata is the part of a test's YAML frontmatter the runner reads.
type TestMetadata struct {
	Description string
	Features    []string
	Flags       []string
	Includes    []string
	Negative    NegativeExpectation
}

type NegativeExpectation struct {
	Phase string // "parse", "resolution", "runtime"
	Type  string // "SyntaxError", "TypeError", etc.
}

// parseMetadata reads the frontmatter between /*--- and ---*/. Lists may be
// written inline or one "- item" per line.
func parseMetadata(source string) TestMetadata {
	var meta TestMetadata
	_, rest, ok := strings.Cut(source, "/*---")
	if !ok {
		return meta
	}
	front, _, ok := strings.Cut(rest, "---*/")
	if !ok {
		return meta
	}

	var list *[]string
	inNegative := false
	for line := range strings.Lines(front) {
		indented := strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if item, ok := strings.CutPrefix(line, "- "); ok {
			if list != nil {
				*list = append(*list, strings.TrimSpace(item))
			}
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		if indented {
			if inNegative {
				switch key {
				case "phase":
					meta.Negative.Phase = value
				case "type":
					meta.Negative.Type = value
				}
			}
			continue
		}

		inNegative, list = false, nil
		switch key {
		case "description":
			meta.Description = value
		case "negative":
			inNegative = true
		case "features":
			list = &meta.Features
		case "flags":
			list = &meta.Flags
		case "includes":
			list = &meta.Includes
		}
		if list != nil && strings.HasPrefix(value, "[") {
			*list = parseInlineList(value)
			list = nil
		}
	}
	return meta
}

func parseInlineList(s string) []string {
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func isUnsupportedFeature(feat string) bool {
	unsupported := map[string]bool{
		"class-fields-public":          true,
		"class-fields-private":         true,
		"class-fields-private-in":      true,
		"class-methods-private":        true,
		"class-static-fields-public":   true,
		"class-static-fields-private":  true,
		"class-static-methods-private": true,
		"class-static-block":           true,
		"import.meta":                  true,
		"dynamic-import":               true,
		"top-level-await":              true,
		"decorators":                   true,
		"import-assertions":            true,
		"import-attributes":            true,
		"json-modules":                 true,
		"source-phase-imports":         true,
		"explicit-resource-management": true,
		"regexp-modifiers":             true,
	}
	return unsupported[feat]
}
