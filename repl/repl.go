// Package repl implements Lumen's interactive Read-Eval-Print Loop.
//
// It keeps a single Interpreter alive across lines so that `let`/`fn`
// bindings entered on one line are visible on the next, exactly the way
// a REPL for a language with lexical scoping must behave.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/lumen-lang/lumen/eval"
	"github.com/lumen-lang/lumen/lexer"
	"github.com/lumen-lang/lumen/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
	yellowColor = color.New(color.FgYellow)
)

// Repl bundles the cosmetic configuration of an interactive session: its
// banner, prompt, and the separator line used around the banner.
type Repl struct {
	Banner  string
	Version string
	Prompt  string
	Line    string
}

// New creates a Repl with the given banner, version string, and prompt.
func New(banner, version, prompt string) *Repl {
	return &Repl{
		Banner:  banner,
		Version: version,
		Prompt:  prompt,
		Line:    strings.Repeat("-", 64),
	}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintln(w, r.Line)
	cyanColor.Fprintln(w, r.Banner)
	blueColor.Fprintln(w, r.Line)
	yellowColor.Fprintln(w, "lumen "+r.Version)
	cyanColor.Fprintln(w, "Type an expression or statement and press enter.")
	cyanColor.Fprintln(w, "Type .exit to quit.")
	blueColor.Fprintln(w, r.Line)
}

// Start runs the loop until the user types ".exit", sends EOF (Ctrl-D),
// or readline itself fails. Parse and runtime errors are reported in red
// and do not end the session — only a malformed source line is lost, not
// the whole REPL (unlike file mode, which is fail-fast).
func (r *Repl) Start(w io.Writer) error {
	r.printBanner(w)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdout: w,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	in := eval.New()
	in.SetWriter(w)

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on Ctrl-D, readline.ErrInterrupt on Ctrl-C
			io.WriteString(w, "\n")
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			return nil
		}
		rl.SaveHistory(line)

		r.evalLine(w, in, line)
	}
}

func (r *Repl) evalLine(w io.Writer, in *eval.Interpreter, line string) {
	tokens, err := lexer.Tokenize(line)
	if err != nil {
		redColor.Fprintln(w, err)
		return
	}
	prog, err := parser.New(tokens).ParseProgram()
	if err != nil {
		redColor.Fprintln(w, err)
		return
	}
	if err := in.Eval(prog); err != nil {
		redColor.Fprintln(w, err)
	}
}
