package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/peterh/liner"

	"nyalang/eval"
	"nyalang/parser"
	"nyalang/types"
)

const (
	promptMain = "nya> "
	promptCont = "...> "
	banner     = "NyaLang REPL\nCtrl+C cancels input, Ctrl+D exits. Type :help for commands."
)

// runREPL reads units from the terminal and runs each in session.
// An empty historyPath disables the history file.
func runREPL(session *eval.Session, historyPath string, stdout, stderr io.Writer) int {
	fmt.Fprintln(stdout, banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(historyPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	for {
		src, ok := readUnit(ln)
		if !ok {
			fmt.Fprintln(stdout)
			return exitOK
		}
		trimmed := strings.TrimSpace(src)
		if trimmed == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		if strings.HasPrefix(trimmed, ":") {
			if quit := replCommand(session, trimmed, stdout); quit {
				return exitOK
			}
			continue
		}

		v, err := session.Run(src)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			continue
		}
		if v != nil && !types.IsNull(v) {
			fmt.Fprintln(stdout, formatResult(v))
		}
	}
}

// readUnit reads lines until the brackets of the input balance.
// Returns false at end of input.
func readUnit(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if openDelimiters(b.String()) <= 0 {
			return b.String(), true
		}
	}
}

// openDelimiters counts the brackets left open at the end of src.
// Brackets inside strings and comments are skipped by the lexer.
func openDelimiters(src string) int {
	depth := 0
	for _, tok := range parser.Tokenize(src) {
		switch tok.Type {
		case parser.TOKEN_LBRACE, parser.TOKEN_LPAREN, parser.TOKEN_LBRACKET:
			depth++
		case parser.TOKEN_RBRACE, parser.TOKEN_RPAREN, parser.TOKEN_RBRACKET:
			depth--
		}
	}
	return depth
}

// replCommand handles a ':' command. Returns true when the REPL should exit.
func replCommand(session *eval.Session, cmd string, stdout io.Writer) bool {
	switch strings.ToLower(cmd) {
	case ":quit", ":q", ":exit":
		return true
	case ":globals":
		fmt.Fprint(stdout, formatGlobals(session.Globals()))
	case ":natives":
		fmt.Fprintln(stdout, strings.Join(session.Registry().Names(), " "))
	case ":help":
		fmt.Fprintln(stdout, ":globals  list the global names defined so far")
		fmt.Fprintln(stdout, ":natives  list the $ functions")
		fmt.Fprintln(stdout, ":quit     leave the session")
	default:
		fmt.Fprintln(stdout, "unknown command. Type :help for commands.")
	}
	return false
}

// formatGlobals lists global names with their slot ids, one per line
func formatGlobals(globals parser.Globals) string {
	names := make([]string, 0, len(globals))
	for name := range globals {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		fmt.Fprintf(&sb, "%s\n", globals[name])
	}
	return sb.String()
}
