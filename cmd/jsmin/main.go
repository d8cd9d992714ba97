package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/example/jsmin/compiler"
	"github.com/example/jsmin/diagnostic"
	"github.com/example/jsmin/lexer"
	"github.com/example/jsmin/parser"
	"github.com/example/jsmin/printer"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"
	"golang.org/x/sync/errgroup"
)

const version = "0.3.0"

var (
	outFile  = flag.String("o", "", "write output to `file` (single input only)")
	outDir   = flag.String("d", "", "write each output into `dir` under its input's base name")
	mangle   = flag.Bool("mangle", true, "rename local bindings")
	fold     = flag.Bool("fold", true, "fold constant expressions")
	dce      = flag.Bool("dce", true, "remove dead code")
	simplify = flag.Bool("simplify", true, "simplify statements")
	pretty   = flag.Bool("pretty", false, "indent the output")
	dumpAST  = flag.Bool("ast", false, "dump the AST as JSON instead of compiling")
	dumpToks = flag.Bool("tokens", false, "dump the token stream instead of compiling")
	verify   = flag.Bool("verify", false, "check the passes and re-parse the output with an independent parser")
	quiet    = flag.Bool("q", false, "suppress warnings")
	showVer  = flag.Bool("version", false, "print the version and exit")
)

// errFailed marks a file whose diagnostics are already printed.
var errFailed = errors.New("compilation failed")

// job is one input and its output.
type job struct {
	name   string
	source string
	out    string
	failed bool
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: jsmin [options] [file.js...]\n")
		fmt.Fprintf(os.Stderr, "Reads standard input when no file is given.\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVer {
		fmt.Println("jsmin", version)
		return
	}
	if *outFile != "" && flag.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "Error: -o needs a single input; use -d for several\n")
		os.Exit(2)
	}

	jobs, err := readInputs(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := compiler.Options{
		MangleNames:    *mangle,
		FoldConstants:  *fold,
		RemoveDeadCode: *dce,
		Simplify:       *simplify,
		Verify:         *verify,
	}
	if *pretty {
		opts.Mode = printer.Pretty
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, j := range jobs {
		g.Go(func() error { return run(j, opts) })
	}
	// Failures are recorded per file; Wait only orders the output.
	_ = g.Wait()

	status := 0
	for _, j := range jobs {
		if j.failed {
			status = 1
			continue
		}
		if err := writeOutput(j); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			status = 1
		}
	}
	os.Exit(status)
}

func readInputs(names []string) ([]*job, error) {
	if len(names) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading standard input: %w", err)
		}
		return []*job{{name: "<stdin>", source: string(data)}}, nil
	}
	jobs := make([]*job, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading file: %w", err)
		}
		jobs = append(jobs, &job{name: name, source: string(data)})
	}
	return jobs, nil
}

// run processes one input. A failing file never stops the others, so the
// error is recorded on the job and nil returned.
func run(j *job, opts compiler.Options) error {
	var err error
	switch {
	case *dumpToks:
		j.out, err = tokens(j.source)
	case *dumpAST:
		j.out, err = astJSON(j.source)
	default:
		err = compile(j, opts)
	}
	if err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(os.Stderr, "%s: %v\n", j.name, err)
		}
		j.failed = true
	}
	return nil
}

func compile(j *job, opts compiler.Options) error {
	r := compiler.Compile(j.source, opts)
	diagnostic.Fprint(os.Stderr, j.name, r.Diagnostics, *quiet)
	if r.HasErrors() {
		return errFailed
	}
	if *verify {
		if _, err := js.Parse(parse.NewInputString(r.Code), js.Options{}); err != nil {
			return fmt.Errorf("output does not parse: %w", err)
		}
	}
	j.out = r.Code
	return nil
}

func tokens(source string) (string, error) {
	var out []byte
	for tok, err := range lexer.Tokenize(source) {
		if err != nil {
			return "", err
		}
		out = fmt.Appendf(out, "%d:%d\t%s\t%q\n", tok.Line, tok.Column, tok.Type, tok.Literal)
	}
	return string(out), nil
}

func astJSON(source string) (string, error) {
	program, err := parser.Parse(source)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(program, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding AST: %w", err)
	}
	return string(data) + "\n", nil
}

func writeOutput(j *job) error {
	switch {
	case *outFile != "":
		return os.WriteFile(*outFile, []byte(j.out), 0o644)
	case *outDir != "":
		if err := os.MkdirAll(*outDir, 0o755); err != nil {
			return err
		}
		name := filepath.Base(j.name)
		if j.name == "<stdin>" {
			name = "stdin.js"
		}
		return os.WriteFile(filepath.Join(*outDir, name), []byte(j.out), 0o644)
	}
	_, err := io.WriteString(os.Stdout, j.out)
	if err == nil && !*pretty && j.out != "" && !*dumpAST && !*dumpToks {
		_, err = io.WriteString(os.Stdout, "\n")
	}
	return err
}
