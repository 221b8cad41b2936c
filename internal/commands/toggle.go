package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskboard/internal/config"
	"taskboard/internal/exitcode"
	"taskboard/internal/session"
)

func init() {
	Register(&ToggleCmd{})
}

// ToggleCmd implements the toggle command.
type ToggleCmd struct{}

func (c *ToggleCmd) Name() string       { return "toggle" }
func (c *ToggleCmd) Aliases() []string  { return []string{"done"} }
func (c *ToggleCmd) Synopsis() string   { return "Flip a task between active and completed" }
func (c *ToggleCmd) Usage() string      { return "taskboard toggle <ref>" }
func (c *ToggleCmd) NeedsStorage() bool { return true }

func (c *ToggleCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ToggleCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	return runOnTask(ctx, cfg, sess, args, out, errOut, sess.Board.ToggleTask)
}

// runOnTask resolves the task reference in args and applies op to its id.
// Shared by toggle and rm.
func runOnTask(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer, op func(context.Context, string) bool) int {
	ref, err := ParseTaskRef(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	task, err := ResolveTask(sess.Board.Tasks(), ref)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if !op(ctx, task.ID) {
		fmt.Fprintf(errOut, "error: task not found: %s\n", task.ID)
		return exitcode.UserError
	}
	sess.Log.WithField("id", task.ID).Debug("task updated")

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
