package commands

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"taskboard/internal/board"
	"taskboard/internal/config"
	"taskboard/internal/exitcode"
	"taskboard/internal/session"
)

func init() {
	Register(&ExportCmd{})
}

// ExportCmd implements the export command.
type ExportCmd struct {
	format string
}

func (c *ExportCmd) Name() string       { return "export" }
func (c *ExportCmd) Aliases() []string  { return nil }
func (c *ExportCmd) Synopsis() string   { return "Write all tasks as JSON or YAML" }
func (c *ExportCmd) Usage() string      { return "taskboard export [--format json|yaml]" }
func (c *ExportCmd) NeedsStorage() bool { return true }

func (c *ExportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.format, "format", "json", "")
}

func (c *ExportCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	tasks := sess.Board.Tasks()
	if tasks == nil {
		tasks = []board.Task{}
	}

	var (
		data []byte
		err  error
	)
	switch strings.ToLower(c.format) {
	case "json":
		data, err = json.MarshalIndent(tasks, "", "  ")
		data = append(data, '\n')
	case "yaml", "yml":
		data, err = yaml.Marshal(tasks)
	default:
		fmt.Fprintf(errOut, "error: unknown format: %s\n", c.format)
		return exitcode.UserError
	}
	if err != nil {
		fmt.Fprintf(errOut, "error: encode tasks: %v\n", err)
		return exitcode.UserError
	}

	if _, err := out.Write(data); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	return exitcode.Success
}
