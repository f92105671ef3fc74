// Command lumen is the driver for the lumen interpreter: it either runs
// a source file to completion or drops into an interactive REPL.
//
// Unlike the teacher's main.go, argument handling goes through the
// standard library's flag package rather than raw os.Args switching —
// this driver exposes real flags (-version) beyond a single positional
// file argument, so flag earns its keep here even though the teacher
// itself didn't need it for a single bare filename.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/lumen-lang/lumen/eval"
	"github.com/lumen-lang/lumen/parser"
	"github.com/lumen-lang/lumen/repl"
)

const version = "v0.1.0"

const banner = `
  _
 | |_   _ _ __ ___   ___ _ __
 | | | | | '_ ` + "`" + ` _ \ / _ \ '_ \
 | | |_| | | | | | |  __/ | | |
 |_|\__,_|_| |_| |_|\___|_| |_|
`

// Exit codes: 0 success, 64 usage error and 65 source-level
// (lex/parse/runtime) error (both taken from BSD sysexits.h), and 1 for
// an I/O error.
const (
	exitOK      = 0
	exitUsage   = 64
	exitDataErr = 65
	exitIOErr   = 1
)

var (
	redColor = color.New(color.FgRed)
)

func main() {
	showVersion := flag.Bool("version", false, "print the lumen version and exit")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: lumen [flags] [script]")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println("lumen " + version)
		os.Exit(exitOK)
	}

	switch flag.NArg() {
	case 0:
		r := repl.New(banner, version, "lumen>> ")
		if err := r.Start(os.Stdout); err != nil {
			redColor.Fprintln(os.Stderr, err)
			os.Exit(exitIOErr)
		}
	case 1:
		os.Exit(runFile(flag.Arg(0)))
	default:
		flag.Usage()
		os.Exit(exitUsage)
	}
}

// runFile executes a single source file to completion and returns the
// process exit code: exitOK on success, exitDataErr if the source fails
// to lex, parse, or run, exitIOErr if the file cannot be read.
func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "lumen: %v\n", err)
		return exitIOErr
	}

	prog, err := parser.Parse(string(source))
	if err != nil {
		redColor.Fprintln(os.Stderr, err)
		return exitDataErr
	}

	if err := eval.New().Eval(prog); err != nil {
		redColor.Fprintln(os.Stderr, err)
		return exitDataErr
	}
	return exitOK
}
