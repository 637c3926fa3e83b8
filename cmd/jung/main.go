package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/peterh/liner"

	"github.com/nulljosh/jung"
)

const (
	appName     = "jung"
	historyFile = ".jung_history"
	prompt      = ">> "
)

func red(s string) string  { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		os.Exit(repl())
	}

	switch os.Args[1] {
	case "--version", "-v":
		fmt.Printf("%s v%s\n", appName, jung.Version)
		return
	case "--help", "-h":
		usage()
		return
	}

	os.Exit(runFile(os.Args[1]))
}

func usage() {
	fmt.Printf(`Usage: %s [options] [file]

Options:
  --version, -v    Print version
  --help, -h       Print this help

Run without arguments for interactive REPL.
Run with a file path to execute a script.
`, appName)
}

func runFile(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot open file '%s'\n", appName, path)
		return 1
	}

	ip := jung.NewInterpreter()
	if err := ip.Run(string(src)); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	return 0
}

func repl() int {
	fmt.Printf("%s v%s — Ctrl+D exits\n", appName, jung.Version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	ip := jung.NewInterpreter()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			return 1
		}
		if line == "" {
			continue
		}

		v, show, rerr := ip.EvalLine(line)
		if rerr != nil {
			fmt.Fprintln(os.Stderr, red(rerr.Error()))
			continue
		}
		if show {
			fmt.Println(blue(jung.ToString(v)))
		}
		ln.AppendHistory(line)
	}
}
