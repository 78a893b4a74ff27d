package harness

import (
	"bytes"
	"context"
	"fmt"
	goruntime "runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/715d/wordtools/internal/cli"
	"github.com/715d/wordtools/internal/tool"
)

// TestHarness manages test execution.
type TestHarness struct {
	// registry resolves tool names used in case files
	registry *tool.Registry
}

// NewHarness creates a new test harness backed by registry.
func NewHarness(registry *tool.Registry) *TestHarness {
	return &TestHarness{registry: registry}
}

// RunResult is the outcome of a single run.
type RunResult struct {
	Spec     RunSpec
	ExitCode int
	Stdout   string
	Stderr   string
	Skipped  bool
	Success  bool
	Details  []string
}

// TestResult represents the result of running a test case.
type TestResult struct {
	// TestCase is the test case that was run.
	TestCase *TestCase

	// RunResults holds one entry per run, in case file order.
	RunResults []RunResult

	// Success indicates if every run passed.
	Success bool

	// Message provides a summary of the result.
	Message string
}

// Run executes every run of tc concurrently. It fails only when a run names
// an unknown tool; mismatches are reported in the returned result.
func (h *TestHarness) Run(ctx context.Context, tc *TestCase) (*TestResult, error) {
	// Each goroutine writes only its own index.
	results := make([]RunResult, len(tc.Runs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(goruntime.NumCPU())

	for idx, spec := range tc.Runs {
		g.Go(func() error {
			if spec.Skip {
				results[idx] = RunResult{Spec: spec, Skipped: true, Success: true}
				return nil
			}
			t, ok := h.registry.Lookup(spec.Tool)
			if !ok {
				return fmt.Errorf("run %q: unknown tool %q", spec.Name, spec.Tool)
			}
			results[idx] = execute(ctx, t, spec)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	failed := 0
	var msgs []string
	for i, r := range results {
		if !r.Success {
			failed++
			msgs = append(msgs, fmt.Sprintf("[%d %s] %s", i, r.Spec.Name, strings.Join(r.Details, "; ")))
		}
	}

	res := &TestResult{
		TestCase:   tc,
		RunResults: results,
		Success:    failed == 0,
	}
	if res.Success {
		res.Message = fmt.Sprintf("All %d runs passed", len(results))
	} else {
		res.Message = fmt.Sprintf("%d/%d runs failed:\n%s", failed, len(results), strings.Join(msgs, "\n"))
	}
	return res, nil
}

func execute(ctx context.Context, t tool.Tool, spec RunSpec) RunResult {
	var stdout, stderr bytes.Buffer
	code := cli.Run(ctx, t, spec.Args, &stdout, &stderr, cli.Config{JSON: spec.JSON})

	r := RunResult{
		Spec:     spec,
		ExitCode: code,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}
	r.Details = compare(spec, r)
	r.Success = len(r.Details) == 0
	return r
}

// compare returns a description of every expectation r does not meet.
func compare(spec RunSpec, r RunResult) []string {
	var details []string
	if r.ExitCode != spec.ExitCode {
		details = append(details, fmt.Sprintf("exit code: got %d, want %d", r.ExitCode, spec.ExitCode))
	}
	if spec.Stdout != nil && r.Stdout != *spec.Stdout {
		details = append(details, fmt.Sprintf("stdout: got %q, want %q", r.Stdout, *spec.Stdout))
	}
	for _, frag := range spec.Contains {
		if !strings.Contains(r.Stdout, frag) {
			details = append(details, fmt.Sprintf("stdout %q does not contain %q", r.Stdout, frag))
		}
	}
	return details
}
