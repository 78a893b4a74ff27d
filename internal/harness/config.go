// Package harness provides test harness infrastructure for validating the
// command-line tools against golden cases under testdata.
package harness

// RunSpec is a single command-line invocation and its expected outcome.
type RunSpec struct {
	// Name is a descriptive name for this run.
	Name string `yaml:"name"`

	// Tool is the registered tool name to invoke.
	Tool string `yaml:"tool"`

	// Args are the command-line arguments, without the program name.
	Args []string `yaml:"args"`

	// JSON requests the machine-readable output.
	JSON bool `yaml:"json,omitempty"`

	// ExitCode is the expected process exit code.
	ExitCode int `yaml:"exit_code"`

	// Stdout is the exact expected standard output. Ignored when nil.
	Stdout *string `yaml:"stdout,omitempty"`

	// Contains lists fragments that must appear in standard output.
	Contains []string `yaml:"contains,omitempty"`

	// Skip disables the run.
	Skip   bool   `yaml:"skip,omitempty"`
	Reason string `yaml:"reason,omitempty"`
}

// TestCase represents a single golden scenario.
type TestCase struct {
	// Dir is the directory containing the case, relative to the testdata root.
	Dir string `yaml:"-"`

	// Description explains what the case covers.
	Description string `yaml:"description"`

	// Runs are executed concurrently and independently.
	Runs []RunSpec `yaml:"runs"`
}
