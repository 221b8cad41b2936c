package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskboard/internal/board"
	"taskboard/internal/config"
	"taskboard/internal/exitcode"
	"taskboard/internal/output"
	"taskboard/internal/session"
	"taskboard/internal/view"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `taskboard` (no args) and `taskboard list [filter]`.
type ListCmd struct {
	filter string
}

// SetFilter sets the filter name (for testing).
func (c *ListCmd) SetFilter(name string) {
	c.filter = name
}

func (c *ListCmd) Name() string       { return "list" }
func (c *ListCmd) Aliases() []string  { return []string{"ls"} }
func (c *ListCmd) Synopsis() string   { return "List tasks" }
func (c *ListCmd) Usage() string      { return "taskboard list [--filter all|active|completed]" }
func (c *ListCmd) NeedsStorage() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.filter, "filter", "", "")
	fs.StringVar(&c.filter, "f", "", "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	name := c.filter
	switch {
	case len(args) > 1:
		fmt.Fprintf(errOut, "error: too many arguments: %v\n", args[1:])
		return exitcode.UserError
	case len(args) == 1 && name != "":
		fmt.Fprintln(errOut, "error: cannot use both --filter and a filter argument")
		return exitcode.UserError
	case len(args) == 1:
		name = args[0]
	}

	f, err := board.ParseFilter(name)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	sess.Board.SetFilter(f)

	v := view.Project(sess.Board.Tasks(), sess.Board.Filter())
	if cfg.Quiet && v.Total == 0 {
		return exitcode.Success
	}
	output.FormatBoard(out, v)
	return exitcode.Success
}
