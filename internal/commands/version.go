package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"runtime"

	"taskboard/internal/config"
	"taskboard/internal/exitcode"
	"taskboard/internal/persist"
	"taskboard/internal/session"
	"taskboard/internal/slot"
)

// Version is the application version. Set at build time.
var Version = "0.1.0"

func init() {
	Register(&VersionCmd{})
}

// VersionCmd prints the version and, with --verbose, where the board is kept.
type VersionCmd struct {
	verbose bool
}

func (c *VersionCmd) Name() string       { return "version" }
func (c *VersionCmd) Aliases() []string  { return nil }
func (c *VersionCmd) Synopsis() string   { return "Print version and board storage location" }
func (c *VersionCmd) Usage() string      { return "taskboard version [--verbose]" }
func (c *VersionCmd) NeedsStorage() bool { return false }

func (c *VersionCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.verbose, "verbose", false, "show storage settings")
	fs.BoolVar(&c.verbose, "v", false, "show storage settings")
}

func (c *VersionCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	fmt.Fprintf(out, "taskboard %s\n", Version)
	if !c.verbose {
		return exitcode.Success
	}

	backend := cfg.Storage.Backend
	if backend == "" {
		backend = slot.BackendFile
	}
	key := cfg.Storage.Key
	if key == "" {
		key = persist.DefaultKey
	}
	fmt.Fprintf(out, "  go:       %s\n", runtime.Version())
	fmt.Fprintf(out, "  config:   %s\n", cfg.Dir)
	fmt.Fprintf(out, "  backend:  %s\n", backend)
	if backend != slot.BackendPostgres {
		fmt.Fprintf(out, "  location: %s\n", cfg.StoragePath())
	}
	fmt.Fprintf(out, "  keys:     %s, %s\n", key, persist.CounterKey)
	return exitcode.Success
}
