package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"taskboard/internal/config"
	"taskboard/internal/exitcode"
	"taskboard/internal/session"
	"taskboard/internal/tui"
)

func init() {
	Register(&TuiCmd{})
}

// TuiCmd implements the tui command.
type TuiCmd struct {
	metricsOut string

	// run starts the board; replaced in tests.
	run func(ctx context.Context, sess *session.Session, opts ...tea.ProgramOption) error
}

// NewTuiCmd returns a tui command that starts the board with run.
func NewTuiCmd(run func(ctx context.Context, sess *session.Session, opts ...tea.ProgramOption) error) *TuiCmd {
	return &TuiCmd{run: run}
}

func (c *TuiCmd) Name() string       { return "tui" }
func (c *TuiCmd) Aliases() []string  { return nil }
func (c *TuiCmd) Synopsis() string   { return "Open the interactive terminal board" }
func (c *TuiCmd) Usage() string      { return "taskboard tui [--metrics-out <file>]" }
func (c *TuiCmd) NeedsStorage() bool { return true }

func (c *TuiCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.metricsOut, "metrics-out", "", "")
}

func (c *TuiCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	run := c.run
	if run == nil {
		run = tui.Run
	}
	if err := run(ctx, sess, tea.WithAltScreen(), tea.WithOutput(out)); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if c.metricsOut != "" {
		if err := sess.WriteMetrics(c.metricsOut); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.StorageError
		}
	}
	return exitcode.Success
}
