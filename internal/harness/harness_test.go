package harness

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/715d/wordtools/internal/tool"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// TestAll runs every golden case under testdata.
func TestAll(t *testing.T) {
	_, filename, _, ok := runtime.Caller(0)
	require.True(t, ok, "get current file path")

	harnessDir := filepath.Dir(filename)
	testdataDir := filepath.Join(harnessDir, "..", "..", "testdata")

	testCases := discoverTestCases(t, testdataDir)
	require.NotEmpty(t, testCases, "no test cases found")

	h := NewHarness(tool.Default())
	for _, tc := range testCases {
		t.Run(tc.Dir, func(t *testing.T) {
			t.Parallel()

			result, err := h.Run(t.Context(), tc)
			require.NoError(t, err)

			for _, r := range result.RunResults {
				if r.Skipped {
					t.Logf("skipped %q: %s", r.Spec.Name, r.Spec.Reason)
				}
			}
			if !result.Success {
				t.Errorf("Test failed: %s", result.Message)
			}
		})
	}
}

func TestHarness_UnknownTool(t *testing.T) {
	want := "x"
	tc := &TestCase{Runs: []RunSpec{{Name: "bad", Tool: "nope", Stdout: &want}}}

	_, err := NewHarness(tool.Default()).Run(t.Context(), tc)
	require.ErrorContains(t, err, `unknown tool "nope"`)
}

func TestHarness_ReportsMismatch(t *testing.T) {
	want := "Consonant Count: 1\n"
	tc := &TestCase{Runs: []RunSpec{
		{Name: "wrong", Tool: tool.ConsonantCounter, Args: []string{"bb"}, Stdout: &want},
		{Name: "skipped", Tool: tool.ConsonantCounter, Skip: true},
	}}

	result, err := NewHarness(tool.Default()).Run(t.Context(), tc)
	require.NoError(t, err)
	require.False(t, result.Success)
	require.Len(t, result.RunResults, 2)
	require.Equal(t, "Consonant Count: 2\n", result.RunResults[0].Stdout)
	require.Contains(t, result.Message, "1/2 runs failed")
	require.True(t, result.RunResults[1].Skipped)
}

func TestParseTestCase_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "no runs", content: "description: empty\n", wantErr: "no runs"},
		{name: "missing tool", content: "runs:\n  - args: [a]\n    stdout: \"x\"\n", wantErr: "'tool'"},
		{name: "no expectation", content: "runs:\n  - tool: wordreverser\n    args: [a]\n", wantErr: "no 'stdout' or 'contains'"},
		{name: "unknown key", content: "runs:\n  - tool: wordreverser\n    stdot: \"x\"\n", wantErr: "stdot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "expected.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := ParseTestCase(path)
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func discoverTestCases(t *testing.T, root string) []*TestCase {
	t.Helper()

	// Read all directories in testdata.
	entries, err := os.ReadDir(root)
	require.NoError(t, err)

	var testCases []*TestCase
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		dir := filepath.Join(root, entry.Name())

		// Check if this directory has an expected.yaml.
		if _, err := os.Stat(filepath.Join(dir, "expected.yaml")); err == nil {
			testCases = append(testCases, LoadTestCase(t, dir, root))
		}
	}

	return testCases
}
