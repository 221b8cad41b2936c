package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskboard/internal/config"
	"taskboard/internal/exitcode"
	"taskboard/internal/output"
	"taskboard/internal/session"
)

func init() {
	Register(&CounterCmd{})
}

// CounterCmd implements the counter command.
type CounterCmd struct{}

func (c *CounterCmd) Name() string       { return "counter" }
func (c *CounterCmd) Aliases() []string  { return nil }
func (c *CounterCmd) Synopsis() string   { return "Show or change the counter" }
func (c *CounterCmd) Usage() string      { return "taskboard counter [inc|dec|reset]" }
func (c *CounterCmd) NeedsStorage() bool { return true }

func (c *CounterCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *CounterCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	if len(args) > 1 {
		fmt.Fprintf(errOut, "error: too many arguments: %v\n", args[1:])
		return exitcode.UserError
	}

	if len(args) == 1 {
		switch args[0] {
		case "inc", "+":
			sess.Increment(ctx)
		case "dec", "-":
			sess.Decrement(ctx)
		case "reset", "0":
			sess.Reset(ctx)
		default:
			fmt.Fprintf(errOut, "error: unknown counter action: %s\n", args[0])
			return exitcode.UserError
		}
	}

	output.FormatCounter(out, sess.Counter.Value(), sess.Counter.Messages())
	return exitcode.Success
}
