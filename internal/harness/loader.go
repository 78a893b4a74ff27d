package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	yaml "gopkg.in/yaml.v3"

	"github.com/stretchr/testify/require"
)

// LoadTestCase loads a test case from a directory with a specified testdata root.
func LoadTestCase(t *testing.T, dir, root string) *TestCase {
	t.Helper()

	tc, err := ParseTestCase(filepath.Join(dir, "expected.yaml"))
	require.NoError(t, err)

	// Use relative path from testdata root if provided.
	if root != "" {
		relPath, err := filepath.Rel(root, dir)
		if err != nil {
			tc.Dir = filepath.Base(dir)
		} else {
			tc.Dir = relPath
		}
		return tc
	}

	tc.Dir = filepath.Base(dir)
	return tc
}

// ParseTestCase reads and decodes a case file. Unknown keys are rejected so
// that typos in golden files do not silently weaken a case.
func ParseTestCase(path string) (*TestCase, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tc := &TestCase{}
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(tc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := validateRuns(tc.Runs); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return tc, nil
}

// validateRuns validates that runs have required fields
func validateRuns(runs []RunSpec) error {
	if len(runs) == 0 {
		return fmt.Errorf("no runs")
	}
	for i, r := range runs {
		if r.Tool == "" {
			return fmt.Errorf("run at index %d has empty or missing 'tool' field", i)
		}
		if r.Stdout == nil && len(r.Contains) == 0 {
			return fmt.Errorf("run at index %d (%s) has no 'stdout' or 'contains' expectation", i, r.Name)
		}
	}
	return nil
}
