package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskboard/internal/config"
	"taskboard/internal/exitcode"
	"taskboard/internal/session"
)

func init() {
	Register(&AddCmd{})
	Register(&CreateCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string       { return "add" }
func (c *AddCmd) Aliases() []string  { return nil }
func (c *AddCmd) Synopsis() string   { return "Add a task" }
func (c *AddCmd) Usage() string      { return "taskboard add <text...>" }
func (c *AddCmd) NeedsStorage() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	return runAdd(ctx, cfg, sess, args, out, errOut)
}

// CreateCmd is an alias for AddCmd.
type CreateCmd struct{}

func (c *CreateCmd) Name() string       { return "create" }
func (c *CreateCmd) Aliases() []string  { return nil }
func (c *CreateCmd) Synopsis() string   { return "Add a task (alias for add)" }
func (c *CreateCmd) Usage() string      { return "taskboard create <text...>" }
func (c *CreateCmd) NeedsStorage() bool { return true }

func (c *CreateCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *CreateCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	return runAdd(ctx, cfg, sess, args, out, errOut)
}

// runAdd is the shared implementation for add and create commands.
// The board ignores blank text; on the command line that is reported.
func runAdd(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(errOut, "error: task text required")
		return exitcode.UserError
	}

	task, ok := sess.Board.AddTask(ctx, text)
	if !ok {
		fmt.Fprintln(errOut, "error: task text required")
		return exitcode.UserError
	}
	sess.Log.WithField("id", task.ID).Debug("task added")

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
