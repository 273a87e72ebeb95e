// Command labo runs Labo programs.
//
// Usage:
//
//	labo [options] [file.labo]
//
// The program is read from -i, the first argument, or standard input, and
// its output goes to -o or standard output. Diagnostics go to standard
// error as file:line:col: message.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/you-not-fish/labo/internal/config"
	"github.com/you-not-fish/labo/internal/pipeline"
	"github.com/you-not-fish/labo/internal/syntax"
	"github.com/you-not-fish/labo/internal/types2"
)

// Version information
const Version = "0.1.0-dev"

const optstring = "i:o:ntajyc:rxvh"

// options holds the parsed command line.
type options struct {
	input      string
	output     string
	configPath string

	noTypecheck bool
	emitTokens  bool
	emitAST     bool
	json        bool
	emitTyped   bool
	repl        bool
	trace       bool
	version     bool
	help        bool

	args []string // positional arguments
}

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Labo %s\n\n", Version)
	fmt.Fprintf(w, "Usage: labo [options] [file.labo]\n\n")
	fmt.Fprintf(w, "Options:\n")
	fmt.Fprintf(w, "  -i file   read the program from file\n")
	fmt.Fprintf(w, "  -o file   write program output to file\n")
	fmt.Fprintf(w, "  -n        skip static type checking\n")
	fmt.Fprintf(w, "  -t        print the token stream\n")
	fmt.Fprintf(w, "  -a        print the AST\n")
	fmt.Fprintf(w, "  -j        print the AST as JSON (with -a)\n")
	fmt.Fprintf(w, "  -y        print the AST with expression types\n")
	fmt.Fprintf(w, "  -c file   read settings from a YAML file\n")
	fmt.Fprintf(w, "  -r        start an interactive session\n")
	fmt.Fprintf(w, "  -x        trace phase timings\n")
	fmt.Fprintf(w, "  -v        print version\n")
	fmt.Fprintf(w, "  -h        print this help\n")
}

func parseOptions(args []string) (*options, error) {
	opts, optind, err := getopt.Getopts(args, optstring)
	if err != nil {
		return nil, err
	}

	o := &options{args: args[optind:]}
	for _, opt := range opts {
		switch opt.Option {
		case 'i':
			o.input = opt.Value
		case 'o':
			o.output = opt.Value
		case 'c':
			o.configPath = opt.Value
		case 'n':
			o.noTypecheck = true
		case 't':
			o.emitTokens = true
		case 'a':
			o.emitAST = true
		case 'j':
			o.json = true
		case 'y':
			o.emitTyped = true
		case 'r':
			o.repl = true
		case 'x':
			o.trace = true
		case 'v':
			o.version = true
		default: // case 'h':
			o.help = true
		}
	}
	if o.input == "" && len(o.args) > 0 {
		o.input = o.args[0]
		o.args = o.args[1:]
	}
	if len(o.args) > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(o.args, " "))
	}
	return o, nil
}

// settings merges the config file, if any, with the command line.
func settings(o *options) (*config.Config, error) {
	conf := config.Default()
	if o.configPath != "" {
		var err error
		if conf, err = config.Load(o.configPath); err != nil {
			return nil, err
		}
	}
	if o.noTypecheck {
		conf.Typecheck = false
	}
	if o.json {
		conf.ASTFormat = "json"
	}
	if o.trace {
		conf.Trace = true
	}
	return conf, nil
}

// run is main without the process exit, for testing.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	o, err := parseOptions(args)
	if err != nil {
		fmt.Fprintf(stderr, "labo: %v\n", err)
		usage(stderr)
		return 1
	}
	if o.help {
		usage(stdout)
		return 0
	}
	if o.version {
		fmt.Fprintf(stdout, "labo version %s\n", Version)
		fmt.Fprintf(stdout, "go version %s\n", runtime.Version())
		return 0
	}

	conf, err := settings(o)
	if err != nil {
		fmt.Fprintf(stderr, "labo: %v\n", err)
		return 1
	}
	d := newDiagnostics(stderr, conf.Color)

	pconf := pipeline.Config{NoTypecheck: !conf.Typecheck}
	if conf.Trace {
		pconf.Trace = log.New(stderr, "labo: ", 0)
	}

	if o.repl {
		return runREPL(conf, pconf, stdout, d)
	}

	filename := o.input
	src := stdin
	if filename == "" {
		filename = "<stdin>"
	} else {
		f, err := os.Open(filename)
		if err != nil {
			d.fatal(err)
			return 1
		}
		defer f.Close()
		src = f
	}

	out := &output{name: o.output, w: stdout}
	defer func() {
		if err := out.Close(); err != nil {
			d.fatal(err)
		}
	}()

	switch {
	case o.emitTokens:
		return runEmitTokens(filename, src, out, d)
	case o.emitAST:
		return runEmitAST(filename, src, out, conf.ASTFormat, pconf, d)
	case o.emitTyped:
		return runEmitTypedAST(filename, src, out, pconf, d)
	}

	prog, err := pipeline.Parse(filename, src, pconf)
	if err != nil {
		d.report(err)
		return 1
	}
	if err := pipeline.Check(prog, pconf); err != nil {
		d.report(err)
		return 1
	}
	if err := out.open(); err != nil {
		d.fatal(err)
		return 1
	}
	if err := pipeline.Execute(prog, out, pconf); err != nil {
		d.report(err)
		return 1
	}
	return 0
}

// runEmitTokens scans the input and prints all tokens with positions.
func runEmitTokens(filename string, src io.Reader, out io.Writer, d *diagnostics) int {
	s := syntax.NewScanner(filename, src)

	fmt.Fprintf(out, "%-20s %-8s %s\n", "POSITION", "TOKEN", "LITERAL")
	fmt.Fprintf(out, "%-20s %-8s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 8), strings.Repeat("-", 20))

	for {
		s.Next()
		if err := s.Err(); err != nil {
			d.report(&pipeline.Error{Phase: pipeline.PhaseLex, Err: err})
			return 1
		}
		fmt.Fprintf(out, "%-20s %-8s %q\n", s.Pos(), s.Token(), s.Literal())
		if s.Token().IsEOF() {
			return 0
		}
	}
}

// runEmitAST parses the input and prints the AST.
func runEmitAST(filename string, src io.Reader, out io.Writer, format string, pconf pipeline.Config, d *diagnostics) int {
	prog, err := pipeline.Parse(filename, src, pconf)
	if err != nil {
		d.report(err)
		return 1
	}

	switch format {
	case "json":
		if err := syntax.FprintJSON(out, prog); err != nil {
			d.fatal(err)
			return 1
		}
	default:
		syntax.Fprint(out, prog)
	}
	return 0
}

// runEmitTypedAST parses and type-checks the input and prints the AST with
// the type of every expression.
func runEmitTypedAST(filename string, src io.Reader, out io.Writer, pconf pipeline.Config, d *diagnostics) int {
	prog, err := pipeline.Parse(filename, src, pconf)
	if err != nil {
		d.report(err)
		return 1
	}

	info := &types2.Info{}
	pconf.Info = info
	pconf.NoTypecheck = false
	if err := pipeline.Check(prog, pconf); err != nil {
		d.report(err)
		return 1
	}

	syntax.FprintWith(out, prog, func(x syntax.Expr) string {
		if t := info.TypeOf(x); t != nil {
			return t.String()
		}
		return ""
	})
	return 0
}

// output is the program's output sink. A named file is created on first
// use, so a run that stops before execution leaves it untouched.
type output struct {
	name string
	w    io.Writer
	f    *os.File
}

func (o *output) open() error {
	if o.name == "" || o.f != nil {
		return nil
	}
	f, err := os.Create(o.name)
	if err != nil {
		return err
	}
	o.f, o.w = f, f
	return nil
}

func (o *output) Write(p []byte) (int, error) {
	if err := o.open(); err != nil {
		return 0, err
	}
	return o.w.Write(p)
}

func (o *output) Close() error {
	if o.f == nil {
		return nil
	}
	return o.f.Close()
}

// diagnostics writes error messages, with the label coloured when enabled.
type diagnostics struct {
	w     io.Writer
	label *color.Color
}

// newDiagnostics returns diagnostics writing to w. In "auto" mode the label
// is coloured only when w is a terminal.
func newDiagnostics(w io.Writer, mode string) *diagnostics {
	c := color.New(color.FgRed, color.Bold)
	switch mode {
	case "always":
		c.EnableColor()
	case "never":
		c.DisableColor()
	default:
		if isTerminal(w) {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return &diagnostics{w: w, label: c}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// report prints a pipeline error as "<phase> error: file:line:col: msg".
func (d *diagnostics) report(err error) {
	label := "error:"
	if pe, ok := err.(*pipeline.Error); ok {
		label = fmt.Sprintf("%s error:", pe.Phase)
	}
	d.label.Fprint(d.w, label)
	fmt.Fprintf(d.w, " %v\n", err)
}

// fatal prints an error that is not tied to a source position.
func (d *diagnostics) fatal(err error) {
	d.label.Fprint(d.w, "labo:")
	fmt.Fprintf(d.w, " %v\n", err)
}
