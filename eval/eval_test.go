package eval

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"nyalang/parser"
	"nyalang/types"
)

// newTestSession returns a strict session printing into a buffer
func newTestSession() (*Session, *bytes.Buffer, *bytes.Buffer) {
	var out, warn bytes.Buffer
	s := NewSession(SessionOptions{
		Strict:      true,
		Output:      &out,
		Warnings:    &warn,
		Diagnostics: &warn,
		Input:       strings.NewReader(""),
	})
	return s, &out, &warn
}

// run executes src in a fresh session and returns what it printed
func run(t *testing.T, src string) string {
	t.Helper()
	s, out, _ := newTestSession()
	if _, err := s.Run(src); err != nil {
		t.Fatalf("Run(%q) failed: %v", src, err)
	}
	return out.String()
}

// runError executes src and returns the runtime error it must raise
func runError(t *testing.T, src string) *types.RuntimeError {
	t.Helper()
	s, _, _ := newTestSession()
	_, err := s.Run(src)
	if err == nil {
		t.Fatalf("Run(%q) succeeded, want a runtime error", src)
	}
	var rerr *types.RuntimeError
	if !errors.As(err, &rerr) {
		t.Fatalf("Run(%q) error %v is not a runtime error", src, err)
	}
	return rerr
}

func TestPrograms(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"arithmetic", "print 1 + 2 * 3;", "7\n"},
		{"string concatenation", `print "n=" + 4;`, "n=4\n"},
		{"factorial", "fun fact(n) { if (n <= 1) return 1; return n * fact(n - 1); } print fact(5);", "120\n"},
		{"while", "var i = 0; while (i < 3) { print i; i = i + 1; }", "0\n1\n2\n"},
		{"for", "for (var i = 0; i < 3; ++i) print i;", "0\n1\n2\n"},
		{"for continue runs increment", "for (var i = 0; i < 5; ++i) { if (i % 2 == 0) continue; print i; }", "1\n3\n"},
		{"break", "var i = 0; while (true) { if (i == 2) break; print i; ++i; }", "0\n1\n"},
		{"nested break leaves inner loop only", "for (var i = 0; i < 2; ++i) { for (var j = 0; j < 5; ++j) { if (j == 1) break; print i + \":\" + j; } }", "0:0\n1:0\n"},
		{"switch case", "var x = 2; switch (x) { case 1: print 1; case 2: print 2; default: print 0; }", "2\n"},
		{"switch default", `switch ("z") { case "a": print "a"; default: print "d"; }`, "d\n"},
		{"switch no match", "switch (9) { case 1: print 1; } print \"end\";", "end\n"},
		{"forward goto", `goto skip; print "no"; label skip; print "yes";`, "yes\n"},
		{"backward goto", "var i = 0; label top; ++i; if (i < 3) goto top; print i;", "3\n"},
		{"goto out of a loop", `while (true) { goto done; } label done; print "out";`, "out\n"},
		{"sibling labels", `var n = 0; { ++n; goto a; print "no"; label a; } { ++n; goto a; print "no"; label a; } print n;`, "2\n"},
		{"goto from nested block", `var n = 0; label top; ++n; { { if (n < 3) goto top; } } print n;`, "3\n"},
		{"truthiness", `if (0) print "zero"; if ("") print "empty"; if (null) print "null"; if (false) print "false";`, "zero\nempty\n"},
		{"logical ops", "print 1 && null; print null || 2; print true ^^ true; print !0;", "false\ntrue\nfalse\nfalse\n"},
		{"ternary", "print 1 < 2 ? \"y\" : \"n\";", "y\n"},
		{"compound assignment", "var x = 10; x += 5; x -= 1; x *= 2; print x;", "28\n"},
		{"prefix increment", "var x = 1; print ++x; print x;", "2\n2\n"},
		{"arrays", "var a = [1, 2, [3, 4]]; a[0] = 9; print a; print a[2, 1];", "[9, 2, [3, 4]]\n4\n"},
		{"arrays share", "var a = [1]; var b = a; b[0] = 2; print a[0];", "2\n"},
		{"records", `var r = {x: 1, "y z": 2}; r.x = 5; print r.x + r.@"y z";`, "7\n"},
		{"record this", "var r = {n: 3, get: fun () => this.n}; r.n = 4; print r.get();", "4\n"},
		{"closure shares state", "fun counter() { var c = 0; return fun () { c = c + 1; return c; }; } var f = counter(); f(); f(); print f();", "3\n"},
		{"two closures share a cell", "var get; var set; { var v = 1; get = fun () => v; set = fun (x) { v = x; }; } set(5); print get();", "5\n"},
		{"closures per activation", "fun mk(n) { return fun () => n; } var a = mk(1); var b = mk(2); print a() + b();", "3\n"},
		{"lambda self recursion", "var f = fun (n) { if (n == 0) return 0; return n + self(n - 1); }; print f(4);", "10\n"},
		{"lambda underscore", "var f = fun _ (n) => n < 2 ? 1 : n * _(n - 1); print f(4);", "24\n"},
		{"constants", "const k = 5; print k * 2;", "10\n"},
		{"extra arguments ignored", "fun f(a) { return a; } print f(1, 2, 3);", "1\n"},
		{"function without return", "fun f() { } print f();", "null\n"},
		{"bitwise", "print 6 & 3; print 6 | 3; print 1 << 4; print ~0;", "2\n7\n16\n-1\n"},
		{"equality", "print null == false; print 1 == \"1\"; print [1] != [1];", "true\nfalse\ntrue\n"},
		{"native call", "print $Len([1, 2]) + $Len(\"abc\");", "5\n"},
		{"native concat", "print $Concat([1], [2, 3]);", "[1, 2, 3]\n"},
		{"native tostring", `print $ToString(1.5) + "!";`, "1.5!\n"},
		{"native debug log", `$DebugLog("a"); $DebugLogLine("b");`, "ab\n"},
		{"block scoping", "var x = 1; { var x = 2; print x; } print x;", "2\n1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := run(t, tt.src); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunValue(t *testing.T) {
	s, _, _ := newTestSession()
	v, err := s.Run("var x = 4; x * 2; x + 1;")
	if err != nil {
		t.Fatal(err)
	}
	if !v.Equal(types.NewNum(5)) {
		t.Errorf("value = %s, want 5", v)
	}

	v, err = s.Run("var y = 1;")
	if err != nil {
		t.Fatal(err)
	}
	if !types.IsNull(v) {
		t.Errorf("program without expression statements = %s, want null", v)
	}
}

func TestRuntimeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code types.ErrorCode
	}{
		{"too few arguments", "fun f(a, b) { return a; } f(1);", types.E_ARGS},
		{"invoke null", "var f; f();", types.E_UNCALLABLE},
		{"invoke number", "var f = 3; f(1);", types.E_UNCALLABLE},
		{"subtract strings", `print "a" - "b";`, types.E_TYPE},
		{"index out of range", "var a = [1]; print a[3];", types.E_RANGE},
		{"index a number", "var a = 1; print a[0];", types.E_TYPE},
		{"missing field", "var r = {x: 1}; print r.y;", types.E_FIELD},
		{"field of null", "var r; print r.x;", types.E_TYPE},
		{"non-string dynamic field", "var r = {x: 1}; print r.@1;", types.E_TYPE},
		{"native error", "print $Len(null);", types.E_NATIVE},
		{"error inside function", "fun f() { return null + 1; } f();", types.E_TYPE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rerr := runError(t, tt.src)
			if rerr.Code != tt.code {
				t.Errorf("code = %s (%s), want %s", rerr.Code, rerr.Msg, tt.code)
			}
		})
	}
}

func TestArityAndNullInvocationDiffer(t *testing.T) {
	arity := runError(t, "fun f(a) { } f();")
	null := runError(t, "var g; g();")
	if arity.Code == null.Code {
		t.Fatalf("arity mismatch and null invocation share code %s", arity.Code)
	}
}

func TestErrorLine(t *testing.T) {
	rerr := runError(t, "var a = 1;\nvar b = 2;\nprint a[0];\n")
	if rerr.Line != 3 {
		t.Errorf("line = %d, want 3", rerr.Line)
	}
	if !strings.HasPrefix(rerr.Error(), "[ Runtime Error ] at line [3]") {
		t.Errorf("message = %q", rerr.Error())
	}
}

func TestTickBudget(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(SessionOptions{Strict: true, Output: &out, MaxTicks: 100})
	_, err := s.Run("while (true) { }")
	var rerr *types.RuntimeError
	if !errors.As(err, &rerr) || rerr.Code != types.E_TICKS {
		t.Fatalf("infinite loop error = %v, want E_TICKS", err)
	}

	// every run gets a fresh budget
	if _, err := s.Run("print 1;"); err != nil {
		t.Errorf("budget leaked into the next run: %v", err)
	}
}

func TestCallDepth(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(SessionOptions{Strict: true, Output: &out, MaxDepth: 50})
	_, err := s.Run("fun f(n) { return f(n + 1); } f(0);")
	var rerr *types.RuntimeError
	if !errors.As(err, &rerr) || rerr.Code != types.E_MAXDEPTH {
		t.Fatalf("runaway recursion error = %v, want E_MAXDEPTH", err)
	}
	if _, err := s.Run("fun g(n) { if (n == 0) return 0; return g(n - 1); } print g(40);"); err != nil {
		t.Errorf("depth not released after the failed run: %v", err)
	}
}

func TestIndependentCompiles(t *testing.T) {
	first, err := parser.Compile("var leaked = 1;", parser.Options{Strict: true})
	if err != nil {
		t.Fatal(err)
	}
	ev := NewEvaluatorWithOutput(&bytes.Buffer{})
	if _, err := ev.Run(first); err != nil {
		t.Fatal(err)
	}
	if _, err := parser.Compile("print leaked;", parser.Options{Strict: true}); err == nil {
		t.Fatal("second compile resolved a name declared by the first")
	}
}

func TestLinkedGlobals(t *testing.T) {
	s, out, _ := newTestSession()
	if _, err := s.Run("var count = 1; fun bump() { count = count + 1; }"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Run("bump(); bump(); print count;"); err != nil {
		t.Fatal(err)
	}
	if out.String() != "3\n" {
		t.Errorf("output = %q, want shared cell value 3", out.String())
	}
	if _, ok := s.Globals()["bump"]; !ok {
		t.Error("bump not exported")
	}

	// redeclaring a global in a later unit gives it a new cell
	out.Reset()
	if _, err := s.Run("var count = 10; print count;"); err != nil {
		t.Fatal(err)
	}
	if out.String() != "10\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestNonStrictRunsAfterErrors(t *testing.T) {
	var out, diag bytes.Buffer
	s := NewSession(SessionOptions{Output: &out, Diagnostics: &diag})
	if _, err := s.Run("var = 1; print 2;"); err != nil {
		t.Fatalf("non-strict run failed: %v", err)
	}
	if out.String() != "2\n" {
		t.Errorf("output = %q, want the recovered statement to run", out.String())
	}
	if !strings.Contains(diag.String(), "[ ParserError ]") {
		t.Errorf("diagnostics = %q", diag.String())
	}

	strict, _, _ := newTestSession()
	_, err := strict.Run("var = 1; print 2;")
	var perr *parser.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("strict error = %v, want a ParseError", err)
	}
}

func TestEvalNative(t *testing.T) {
	s, out, warn := newTestSession()
	if _, err := s.Run(`var base = 40; print $Eval("base + 2;");`); err != nil {
		t.Fatal(err)
	}
	if out.String() != "42\n" {
		t.Errorf("output = %q", out.String())
	}

	out.Reset()
	if _, err := s.Run(`print $Eval("var = ;");`); err != nil {
		t.Fatal(err)
	}
	if out.String() != "null\n" || !strings.Contains(warn.String(), "is not a parsable string") {
		t.Errorf("bad source: output %q, warnings %q", out.String(), warn.String())
	}

	out.Reset()
	if _, err := s.Run(`print $Eval("null();");`); err != nil {
		t.Fatal(err)
	}
	if out.String() != "null\n" {
		t.Errorf("runtime failure inside $Eval should give null, got %q", out.String())
	}

	if _, err := s.Run(`$Eval("var inner = 1;"); print inner;`); err == nil {
		t.Error("$Eval exported its declarations")
	}
}

func TestWarningLine(t *testing.T) {
	s, _, warn := newTestSession()
	src := "var a = 1;\nvar b = 2;\n$Warning(\"boom\");\n$Eval(\"var = ;\");"
	if _, err := s.Run(src); err != nil {
		t.Fatal(err)
	}
	got := warn.String()
	if !strings.Contains(got, "[ Runtime Warning ] at line [3] : boom") {
		t.Errorf("warnings = %q, want line 3", got)
	}
	if !strings.Contains(got, "[ Runtime Warning ] at line [4] : In static method [$Eval]") {
		t.Errorf("warnings = %q, want the $Eval warning at line 4", got)
	}
}

func TestJumpEscapes(t *testing.T) {
	// a continue or goto cannot compile across a function boundary, so
	// exercise the runtime guard with a hand-built program
	label := &parser.Label{Name: "nowhere"}
	prog := &parser.Program{Body: &parser.Block{
		Stmts: []parser.Stmt{&parser.GotoStmt{Label: label}},
	}}
	ev := NewEvaluatorWithOutput(&bytes.Buffer{})
	_, err := ev.Run(prog)
	var rerr *types.RuntimeError
	if !errors.As(err, &rerr) || rerr.Code != types.E_JUMP {
		t.Fatalf("escaped jump error = %v, want E_JUMP", err)
	}
}
