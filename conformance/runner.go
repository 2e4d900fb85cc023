package conformance

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"nyalang/eval"
	"nyalang/parser"
	"nyalang/types"
)

// TestResult represents the outcome of running a single test
type TestResult struct {
	Test       LoadedTest
	Passed     bool
	Skipped    bool
	SkipReason string
	Error      error
}

// outcome is what running a test produced
type outcome struct {
	value    types.Value
	err      error
	output   string
	warnings string
}

// Runner executes conformance tests. Every test gets its own session,
// so globals never leak between tests.
type Runner struct {
	// Seed fixes the random natives
	Seed int64
}

// NewRunner creates a new test runner
func NewRunner() *Runner {
	return &Runner{Seed: 1}
}

// execute runs the setup blocks and the test code in a fresh session
func (r *Runner) execute(test LoadedTest) (outcome, error) {
	var out, warn bytes.Buffer
	session := eval.NewSession(eval.SessionOptions{
		Strict:      test.Test.IsStrict(),
		Output:      &out,
		Input:       strings.NewReader(test.Test.Input),
		Warnings:    &warn,
		Diagnostics: &warn,
		MaxTicks:    test.Test.MaxTicks,
		MaxDepth:    test.Test.MaxDepth,
	})
	session.Registry().SetSeed(r.Seed)

	for _, block := range []*SetupBlock{test.Suite.Setup, test.Test.Setup} {
		if block == nil || block.Code == "" {
			continue
		}
		if _, err := session.Run(block.Code); err != nil {
			return outcome{}, fmt.Errorf("setup failed: %w", err)
		}
	}
	out.Reset()
	warn.Reset()

	v, err := session.Run(test.Test.Code)
	return outcome{value: v, err: err, output: out.String(), warnings: warn.String()}, nil
}

// Run executes a single test case
func (r *Runner) Run(test LoadedTest) TestResult {
	// Check if test should be skipped
	if skipped, reason := test.Test.IsSkipped(); skipped {
		return TestResult{
			Test:       test,
			Skipped:    true,
			SkipReason: reason,
		}
	}

	res, err := r.execute(test)
	if err != nil {
		return TestResult{Test: test, Error: err}
	}

	// Check expectation
	passed, err := checkExpectation(test.Test.Expect, res)
	return TestResult{
		Test:   test,
		Passed: passed,
		Error:  err,
	}
}

// RunAll executes all loaded tests
func (r *Runner) RunAll(tests []LoadedTest) []TestResult {
	results := make([]TestResult, len(tests))
	for i, test := range tests {
		results[i] = r.Run(test)
	}
	return results
}

// SummaryStats computes statistics from test results
type SummaryStats struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
}

// ComputeStats generates statistics from test results
func ComputeStats(results []TestResult) SummaryStats {
	stats := SummaryStats{Total: len(results)}
	for _, r := range results {
		if r.Skipped {
			stats.Skipped++
		} else if r.Passed {
			stats.Passed++
		} else {
			stats.Failed++
		}
	}
	return stats
}

// FormatStats returns a human-readable summary
func FormatStats(stats SummaryStats) string {
	return fmt.Sprintf("%d passed, %d failed, %d skipped (%d total)",
		stats.Passed, stats.Failed, stats.Skipped, stats.Total)
}

// checkExpectation checks if the outcome matches every expected property
func checkExpectation(expect Expectation, res outcome) (bool, error) {
	if !expect.HasExpectation() {
		return false, fmt.Errorf("no expectation specified")
	}

	if expect.Error != "" {
		if err := checkError(expect.Error, res.err); err != nil {
			return false, err
		}
	} else if res.err != nil {
		return false, fmt.Errorf("unexpected error: %v", res.err)
	}

	if expect.Message != "" {
		if res.err == nil || !strings.Contains(res.err.Error(), expect.Message) {
			return false, fmt.Errorf("expected error message containing %q, got %v", expect.Message, res.err)
		}
	}

	if expect.Output != nil && res.output != *expect.Output {
		return false, fmt.Errorf("expected output %q, got %q", *expect.Output, res.output)
	}

	if expect.Contains != "" && !strings.Contains(res.output, expect.Contains) {
		return false, fmt.Errorf("expected output containing %q, got %q", expect.Contains, res.output)
	}

	if expect.Match != "" {
		re, err := regexp.Compile(expect.Match)
		if err != nil {
			return false, fmt.Errorf("bad match pattern: %w", err)
		}
		if !re.MatchString(res.output) {
			return false, fmt.Errorf("output %q does not match %s", res.output, expect.Match)
		}
	}

	if expect.Warning != "" && !strings.Contains(res.warnings, expect.Warning) {
		return false, fmt.Errorf("expected warning containing %q, got %q", expect.Warning, res.warnings)
	}

	if expect.Type != "" {
		expectedType, ok := types.TypeFromString(expect.Type)
		if !ok {
			return false, fmt.Errorf("unknown type: %s", expect.Type)
		}
		if res.value == nil || res.value.Type() != expectedType {
			return false, fmt.Errorf("expected type %s, got %v", expectedType, res.value)
		}
	}

	if expect.Value != nil {
		expectedVal, err := convertYAMLValue(expect.Value)
		if err != nil {
			return false, fmt.Errorf("failed to convert expected value: %w", err)
		}
		if res.value == nil {
			return false, fmt.Errorf("expected %v, got nil", expectedVal)
		}
		if !sameValue(res.value, expectedVal) {
			return false, fmt.Errorf("expected %v, got %v", expectedVal, res.value)
		}
	}

	return true, nil
}

// checkError matches an error against an expected code name or "parse"
func checkError(name string, err error) error {
	if err == nil {
		return fmt.Errorf("expected error %s, got none", name)
	}

	if strings.EqualFold(name, "parse") {
		var perr *parser.ParseError
		if !errors.As(err, &perr) {
			return fmt.Errorf("expected a parse error, got %v", err)
		}
		return nil
	}

	code, ok := types.ErrorFromString(strings.ToUpper(name))
	if !ok {
		return fmt.Errorf("unknown error code: %s", name)
	}
	var rerr *types.RuntimeError
	if !errors.As(err, &rerr) {
		return fmt.Errorf("expected error %s, got %v", name, err)
	}
	if rerr.Code != code {
		return fmt.Errorf("expected error %s, got %s (%s)", name, rerr.Code, rerr.Msg)
	}
	return nil
}

// sameValue compares values structurally, so expected arrays and records
// match by contents rather than identity
func sameValue(got, want types.Value) bool {
	switch w := want.(type) {
	case types.ArrayValue:
		g, ok := got.(types.ArrayValue)
		if !ok || g.Len() != w.Len() {
			return false
		}
		for i, we := range w.Elements() {
			if !sameValue(g.Elements()[i], we) {
				return false
			}
		}
		return true
	case types.RecordValue:
		g, ok := got.(types.RecordValue)
		if !ok || g.Len() != w.Len() {
			return false
		}
		for _, k := range w.Keys() {
			gv, ok := g.Get(k)
			wv, _ := w.Get(k)
			if !ok || !sameValue(gv, wv) {
				return false
			}
		}
		return true
	default:
		return got != nil && got.Type() == want.Type() && got.Equal(want)
	}
}

// convertYAMLValue converts a YAML value to a dynamic value
func convertYAMLValue(v interface{}) (types.Value, error) {
	switch val := v.(type) {
	case int, int64, float64, string, bool:
		return types.NewValue(val), nil
	case []interface{}:
		elements := make([]types.Value, len(val))
		for i, elem := range val {
			v, err := convertYAMLValue(elem)
			if err != nil {
				return nil, err
			}
			elements[i] = v
		}
		return types.NewArray(elements), nil
	case map[string]interface{}:
		fields := make(map[string]types.Value, len(val))
		for k, v := range val {
			fv, err := convertYAMLValue(v)
			if err != nil {
				return nil, err
			}
			fields[k] = fv
		}
		return types.NewRecordFromMap(fields), nil
	default:
		return nil, fmt.Errorf("unsupported YAML type: %T", v)
	}
}
