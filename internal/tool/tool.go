// Package tool describes the text utilities shipped by this repository and
// keeps them in a registry that the CLI driver and the golden harness share.
package tool

import (
	"errors"
	"fmt"
	"slices"

	"github.com/puzpuzpuz/xsync/v4"
)

// Result is the outcome of running a tool over one input.
type Result struct {
	// Text is the line printed to standard output in text mode.
	Text string
	// Value is the machine-readable result used for JSON output.
	Value any
}

// Func transforms one input text into a Result. It must be pure.
type Func func(text string) Result

// Tool is an immutable description of one command-line utility.
type Tool struct {
	Name  string // binary name, also the registry key
	Short string // one-line summary
	Long  string
	Run   Func
}

// Usage returns the fixed line printed when the argument count is wrong.
func (t Tool) Usage() string {
	return fmt.Sprintf("Usage: %s '<input_text>'", t.Name)
}

var (
	ErrInvalidTool   = errors.New("invalid tool")
	ErrDuplicateTool = errors.New("tool already registered")
)

// Registry maps tool names to tools. It is safe for concurrent use.
type Registry struct {
	tools *xsync.Map[string, Tool]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: xsync.NewMap[string, Tool]()}
}

// Register adds t to the registry.
func (r *Registry) Register(t Tool) error {
	if t.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidTool)
	}
	if t.Run == nil {
		return fmt.Errorf("%w: %s has no run function", ErrInvalidTool, t.Name)
	}
	if _, loaded := r.tools.LoadOrStore(t.Name, t); loaded {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, t.Name)
	}
	return nil
}

// Lookup returns the tool registered under name.
func (r *Registry) Lookup(name string) (Tool, bool) {
	return r.tools.Load(name)
}

// MustLookup is like Lookup but panics when name is not registered.
// It is meant for binaries whose tool is fixed at compile time.
func (r *Registry) MustLookup(name string) Tool {
	t, ok := r.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("tool %q is not registered", name))
	}
	return t
}

// Names returns the registered tool names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.tools.Size())
	r.tools.Range(func(name string, _ Tool) bool {
		names = append(names, name)
		return true
	})
	slices.Sort(names)
	return names
}
