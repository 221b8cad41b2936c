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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "taskboard help" }
func (c *HelpCmd) NeedsStorage() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Commands:")
	DefaultRegistry.WriteSummary(out)
	return exitcode.Success
}

const helpText = `Usage:
  taskboard                                      List all tasks
  taskboard list [common flags] [--filter <f>]   List tasks (f: all, active, completed)
  taskboard add [common flags] <text...>
  taskboard create [common flags] <text...>
  taskboard toggle [common flags] <ref>          Also: done
  taskboard rm [common flags] <ref>              Also: delete
  taskboard export [common flags] [--format json|yaml]
  taskboard counter [common flags] [inc|dec|reset]
  taskboard tui [common flags] [--metrics-out <file>]
  taskboard help
  taskboard version

A <ref> is the task number shown by list, or a task id (or a unique
prefix of at least 4 characters).

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
