package trace

import (
	"bytes"
	"strings"
	"testing"

	"nyalang/types"
)

func TestTracerOutput(t *testing.T) {
	var buf bytes.Buffer
	tr := New(true, nil, &buf)

	tr.Call("fact", []types.Value{types.NewNum(5)}, 1)
	tr.Return("fact", types.NewNum(120))
	tr.Exception("fact", types.NewRuntimeError(types.E_ARGS, "too few"))
	tr.Native("Len", []types.Value{types.NewStr("abc")})

	want := []string{
		"[TRACE] CALL fact args=[5] depth=1",
		"[TRACE] RETURN fact => 120",
		"[TRACE] EXCEPTION fact E_ARGS too few",
		`[TRACE] NATIVE $Len args=["abc"]`,
	}
	got := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(got), len(want), buf.String())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTracerFilters(t *testing.T) {
	var buf bytes.Buffer
	tr := New(true, []string{"fa*", "$Len"}, &buf)

	tr.Call("fact", nil, 1)
	tr.Call("other", nil, 1)
	tr.Native("Len", nil)
	tr.Native("Concat", nil)

	out := buf.String()
	if !strings.Contains(out, "CALL fact") || !strings.Contains(out, "NATIVE $Len") {
		t.Errorf("filtered-in lines missing:\n%s", out)
	}
	if strings.Contains(out, "other") || strings.Contains(out, "Concat") {
		t.Errorf("filtered-out lines present:\n%s", out)
	}
}

func TestTracerDisabled(t *testing.T) {
	var buf bytes.Buffer
	tr := New(false, nil, &buf)
	tr.Call("f", nil, 1)
	tr.Return("f", nil)
	if buf.Len() != 0 {
		t.Errorf("disabled tracer wrote %q", buf.String())
	}
}

func TestGlobalTracer(t *testing.T) {
	var buf bytes.Buffer
	Init(true, nil, &buf)
	defer Init(false, nil, nil)

	if !IsEnabled() {
		t.Fatal("global tracer not enabled")
	}
	Return("g", nil)
	if !strings.Contains(buf.String(), "RETURN g => null") {
		t.Errorf("global Return wrote %q", buf.String())
	}
}
