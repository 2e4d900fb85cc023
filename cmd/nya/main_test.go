package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nyalang/eval"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("NYA_HISTORY", "")
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(""), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeSource(t *testing.T, name, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunEval(t *testing.T) {
	code, out, errOut := runCLI(t, "-e", "var x = 20; x * 2 + 2;")
	if code != exitOK {
		t.Fatalf("exit = %d, stderr %q", code, errOut)
	}
	if out != "42\n" {
		t.Errorf("stdout = %q, want %q", out, "42\n")
	}
}

func TestRunFilesShareGlobals(t *testing.T) {
	first := writeSource(t, "a.nya", "var greeting = \"hi\";\n")
	second := writeSource(t, "b.nya", "print greeting + \" there\";\n")

	code, out, errOut := runCLI(t, first, second)
	if code != exitOK {
		t.Fatalf("exit = %d, stderr %q", code, errOut)
	}
	if out != "hi there\n" {
		t.Errorf("stdout = %q", out)
	}
}

func TestRunFileThenEval(t *testing.T) {
	lib := writeSource(t, "lib.nya", "fun sq(n) { return n * n; }\n")
	code, out, _ := runCLI(t, "-e", "sq(9);", lib)
	if code != exitOK || out != "81\n" {
		t.Errorf("exit = %d, stdout %q", code, out)
	}
}

func TestRunFailures(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.nya")
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"unknown flag", []string{"-nope"}, exitUsage},
		{"zero max depth", []string{"-max-depth", "0", "-e", "1;"}, exitUsage},
		{"runtime error", []string{"-e", "null();"}, exitFailure},
		{"strict parse error", []string{"-strict", "-e", "var = ;"}, exitFailure},
		{"missing file", []string{missing}, exitFailure},
		{"tick budget", []string{"-max-ticks", "50", "-e", "while (true) {}"}, exitFailure},
		{"bad config", []string{"-config", missing, "-e", "1;"}, exitUsage},
		{"help", []string{"-h"}, exitOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runCLI(t, tt.args...)
			if code != tt.code {
				t.Errorf("exit = %d, want %d (stderr %q)", code, tt.code, errOut)
			}
		})
	}
}

func TestRunErrorMessage(t *testing.T) {
	code, _, errOut := runCLI(t, "-e", "null();")
	if code != exitFailure {
		t.Fatalf("exit = %d", code)
	}
	if !strings.HasPrefix(errOut, "Error: ") {
		t.Errorf("stderr = %q, want Error: prefix", errOut)
	}
}

func TestRunQuietHidesWarnings(t *testing.T) {
	_, _, loud := runCLI(t, "-e", "$Warning(\"careful\");")
	if !strings.Contains(loud, "careful") {
		t.Errorf("warning missing from stderr: %q", loud)
	}
	_, _, quiet := runCLI(t, "-quiet", "-e", "$Warning(\"careful\");")
	if strings.Contains(quiet, "careful") {
		t.Errorf("quiet run printed warning: %q", quiet)
	}
}

func TestDump(t *testing.T) {
	code, out, errOut := runCLI(t, "-dump", "-e", "var a = 1; print a;")
	if code != exitOK {
		t.Fatalf("exit = %d, stderr %q", code, errOut)
	}
	if out == "" || !strings.HasSuffix(out, "\n") {
		t.Errorf("dump output = %q", out)
	}

	if code, _, _ := runCLI(t, "-dump"); code != exitUsage {
		t.Errorf("dump without source exit = %d, want %d", code, exitUsage)
	}
}

func TestOpenDelimiters(t *testing.T) {
	tests := []struct {
		src  string
		want int
	}{
		{"1 + 2;", 0},
		{"function f() {", 1},
		{"var a = [1, [2,", 2},
		{"if (x) { f(", 2},
		{"}", -1},
		{"print \"{ [ (\";", 0},
		{"var r = { a: 1 };", 0},
	}
	for _, tt := range tests {
		if got := openDelimiters(tt.src); got != tt.want {
			t.Errorf("openDelimiters(%q) = %d, want %d", tt.src, got, tt.want)
		}
	}
}

func newSessionForTest(t *testing.T, out *bytes.Buffer) *eval.Session {
	t.Helper()
	return eval.NewSession(eval.SessionOptions{
		Strict:      true,
		Output:      out,
		Warnings:    out,
		Diagnostics: out,
		Input:       strings.NewReader(""),
	})
}

func TestReplCommands(t *testing.T) {
	var out bytes.Buffer
	s := newSessionForTest(t, &out)
	if _, err := s.Run("var beta = 1; var alpha = 2;"); err != nil {
		t.Fatal(err)
	}
	out.Reset()

	if replCommand(s, ":globals", &out) {
		t.Fatal(":globals asked to quit")
	}
	got := out.String()
	if strings.Index(got, "alpha") > strings.Index(got, "beta") || !strings.Contains(got, "beta") {
		t.Errorf(":globals = %q, want sorted names", got)
	}

	out.Reset()
	replCommand(s, ":natives", &out)
	if !strings.Contains(out.String(), "Len") {
		t.Errorf(":natives = %q", out.String())
	}

	if !replCommand(s, ":quit", &out) {
		t.Error(":quit did not quit")
	}
}
