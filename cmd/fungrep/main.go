// Fungrep prints the lines of standard input that a regular expression
// matches in full.
//
// Usage:
//
//	fungrep [flags] <regex>
//
// The pattern language has characters, concatenation, '|', '*' and
// grouping parentheses. With -dump the compiled automaton is written
// to a file, optionally as a Graphviz digraph, and -render runs an
// external command on it.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/pkg/profile"

	"github.com/Ashish-Basetty/fungex"
	"github.com/Ashish-Basetty/fungex/nfa"
	"github.com/Ashish-Basetty/fungex/syntax"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type config struct {
	dump       string
	format     string
	render     string
	ast        bool
	cpuprofile string
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "fungrep: ", 0)

	var cfg config
	fs := flag.NewFlagSet("fungrep", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.dump, "dump", "", "write the compiled automaton to `file`")
	fs.StringVar(&cfg.format, "format", "text", "format of -dump: text or dot")
	fs.StringVar(&cfg.render, "render", "", "run `command` with the -dump file as its last argument")
	fs.BoolVar(&cfg.ast, "ast", false, "pretty print the parsed pattern to stderr")
	fs.StringVar(&cfg.cpuprofile, "cpuprofile", "", "write a CPU profile into `dir`")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: fungrep [flags] <regex>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	if cfg.format != "text" && cfg.format != "dot" {
		logger.Printf("unknown -format %q", cfg.format)
		return 2
	}
	if cfg.render != "" && cfg.dump == "" {
		logger.Print("-render requires -dump")
		return 2
	}

	if cfg.cpuprofile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.cpuprofile), profile.Quiet).Stop()
	}

	re, err := fungex.Compile(fs.Arg(0))
	if err != nil {
		var perr syntax.ParseError
		if errors.As(err, &perr) {
			logger.Printf("%d: %s", perr.Pos.Begin, perr.Message)
		} else {
			logger.Print(err)
		}
		return 1
	}

	if cfg.ast {
		printer := pp.New()
		printer.SetOutput(stderr)
		printer.SetColoringEnabled(false)
		printer.Println(re.Syntax().Expr)
	}

	if cfg.dump != "" {
		if err := dump(cfg.dump, cfg.format, re.NFA()); err != nil {
			logger.Print(err)
			return 1
		}
		if cfg.render != "" {
			if err := render(cfg.render, cfg.dump, stderr); err != nil {
				logger.Printf("render: %v", err)
			}
		}
	}

	if _, err := fungex.Filter(stdin, stdout, re.Matcher()); err != nil {
		logger.Print(err)
		return 1
	}
	return 0
}

func dump(filename, format string, m *nfa.NFA) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if format == "dot" {
		err = nfa.WriteDot(f, m)
	} else {
		err = nfa.WriteText(f, m)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func render(command, filename string, stderr io.Writer) error {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return errors.New("empty command")
	}
	cmd := exec.Command(fields[0], append(fields[1:], filename)...)
	cmd.Stdout = stderr
	cmd.Stderr = stderr
	return cmd.Run()
}
