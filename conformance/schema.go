package conformance

// TestSuite represents a complete YAML test file
type TestSuite struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Setup       *SetupBlock `yaml:"setup,omitempty"` // runs before every test of the suite
	Tests       []TestCase  `yaml:"tests"`
}

// SetupBlock contains source run before a test, in the same session
type SetupBlock struct {
	Code string `yaml:"code"`
}

// TestCase represents a single test within a suite
type TestCase struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Skip        interface{} `yaml:"skip,omitempty"`   // bool or string
	Strict      *bool       `yaml:"strict,omitempty"` // default true
	Code        string      `yaml:"code"`             // program source
	Input       string      `yaml:"input,omitempty"`  // console input for $DebugRead*
	MaxTicks    int64       `yaml:"max_ticks,omitempty"`
	MaxDepth    int         `yaml:"max_depth,omitempty"`
	Setup       *SetupBlock `yaml:"setup,omitempty"`
	Expect      Expectation `yaml:"expect"`
}

// Expectation defines what result is expected from a test.
// Every field that is set must hold.
type Expectation struct {
	Value    interface{} `yaml:"value,omitempty"`    // value of the last expression statement
	Output   *string     `yaml:"output,omitempty"`   // exact printed output
	Error    string      `yaml:"error,omitempty"`    // E_TYPE, E_ARGS, ... or "parse"
	Message  string      `yaml:"message,omitempty"`  // substring of the error message
	Type     string      `yaml:"type,omitempty"`     // null, bool, number, string, array, record, function
	Match    string      `yaml:"match,omitempty"`    // regex over the printed output
	Contains string      `yaml:"contains,omitempty"` // substring of the printed output
	Warning  string      `yaml:"warning,omitempty"`  // substring of the warning stream
}

// IsStrict reports whether the test compiles in strict mode
func (tc *TestCase) IsStrict() bool {
	return tc.Strict == nil || *tc.Strict
}

// HasExpectation reports whether the test checks anything
func (e Expectation) HasExpectation() bool {
	return e.Value != nil || e.Output != nil || e.Error != "" || e.Message != "" ||
		e.Type != "" || e.Match != "" || e.Contains != "" || e.Warning != ""
}

// IsSkipped returns true if this test should be skipped
func (tc *TestCase) IsSkipped() (bool, string) {
	if tc.Skip == nil {
		return false, ""
	}

	switch v := tc.Skip.(type) {
	case bool:
		if v {
			return true, "skipped"
		}
		return false, ""
	case string:
		return true, v
	default:
		return false, ""
	}
}
