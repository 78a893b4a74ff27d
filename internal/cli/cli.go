// Package cli implements the command-line driver shared by every text utility.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/715d/wordtools/internal/tool"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitUsage = 1
	ExitError = 2
)

// Set via ldflags during build.
var version = "dev"

// Config holds the options of a single invocation. None of them come from
// the command line: every argument is text.
type Config struct {
	JSON   bool         // prints the result as a JSON object
	Logger *slog.Logger // receives debug records; nil discards them
}

// invocation is the state of one command execution.
type invocation struct {
	tool   tool.Tool
	text   string
	cfg    Config
	logger *slog.Logger
}

// NewCommand builds the root command that runs t over text. Output goes to
// the command's configured writers, so callers set them with SetOut and
// SetErr. The command itself takes no arguments.
func NewCommand(t tool.Tool, text string, cfg Config) *cobra.Command {
	inv := &invocation{tool: t, text: text, cfg: cfg}

	return &cobra.Command{
		Use:   t.Name + " <input_text>",
		Short: t.Short,
		Long:  t.Long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return inv.run(cmd.Context(), cmd.OutOrStdout())
		},
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			inv.setupLogging()
			return nil
		},
		DisableFlagParsing: true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		SilenceUsage:       true,
		SilenceErrors:      true,
	}
}

// Run executes t with the given command-line arguments (without the program
// name) and returns the process exit code. Exactly one argument is required
// and it is always the text, whatever it looks like.
func Run(ctx context.Context, t tool.Tool, args []string, stdout, stderr io.Writer, cfg Config) int {
	if len(args) != 1 {
		fmt.Fprintln(stdout, t.Usage())
		return ExitUsage
	}

	// The text never reaches cobra's argument handling, so inputs such as
	// "--help" or "completion" cannot be taken for flags or subcommands.
	cmd := NewCommand(t, args[0], cfg)
	cmd.SetArgs([]string{})
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	code := ExitError
	var cErr *codedError
	if errors.As(err, &cErr) {
		code = cErr.code
	}
	if err.Error() != "" {
		fmt.Fprintln(stderr, err.Error())
	}
	return code
}

func (inv *invocation) run(ctx context.Context, w io.Writer) error {
	start := time.Now()
	inv.logger.DebugContext(ctx, "running tool", "tool", inv.tool.Name, "input_len", len(inv.text))

	res := inv.tool.Run(inv.text)
	inv.logger.DebugContext(ctx, "tool completed", "tool", inv.tool.Name, "dur", time.Since(start))

	if err := inv.writeResult(w, res); err != nil {
		return errWithCode(fmt.Errorf("write result: %w", err), ExitError)
	}
	return nil
}

func (inv *invocation) writeResult(w io.Writer, res tool.Result) error {
	var output string
	var err error

	if inv.cfg.JSON {
		output, err = formatJSONOutput(inv.tool, inv.text, res)
	} else {
		output = res.Text + "\n"
	}

	if err != nil {
		return err
	}

	_, err = io.WriteString(w, output)
	return err
}

type jOutput struct {
	Tool    string `json:"tool"`
	Input   string `json:"input"`
	Result  any    `json:"result"`
	Version string `json:"version"`
}

func formatJSONOutput(t tool.Tool, text string, res tool.Result) (string, error) {
	data, err := json.MarshalIndent(jOutput{
		Tool:    t.Name,
		Input:   text,
		Result:  res.Value,
		Version: version,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling json output: %w", err)
	}
	return string(data) + "\n", nil
}

func (inv *invocation) setupLogging() {
	// Disable logging unless the caller supplied a logger.
	if inv.cfg.Logger == nil {
		inv.logger = slog.New(slog.DiscardHandler)
		return
	}
	inv.logger = inv.cfg.Logger.With("version", version)
}

func errWithCode(err error, code int) error {
	return &codedError{err: err, code: code}
}

type codedError struct {
	err  error
	code int
}

func (e *codedError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return ""
}

func (e *codedError) Unwrap() error { return e.err }
