package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"taskboard/internal/commands"
	"taskboard/internal/config"
	"taskboard/internal/exitcode"
	"taskboard/internal/logging"
	"taskboard/internal/session"
	"taskboard/internal/slot"
)

// SessionFactory opens a session from config.
// Used to inject the storage during dispatch.
type SessionFactory func(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (*session.Session, error)

// OpenSession is the default SessionFactory: it creates the config
// directory and opens the configured slot.
func OpenSession(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (*session.Session, error) {
	if err := cfg.EnsureDir(); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}
	return session.Open(ctx, cfg, log)
}

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  SessionFactory
}

// NewDispatcher creates a new dispatcher with the given registry and session
// factory. A nil factory means OpenSession.
func NewDispatcher(registry *commands.Registry, factory SessionFactory) *Dispatcher {
	if factory == nil {
		factory = OpenSession
	}
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> dispatch to "list" command with no args
	if len(args) == 0 {
		return d.dispatch(ctx, "list", nil, out, errOut)
	}

	cmdName := args[0]

	// If first token starts with -, it's an error (flags require a command)
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	// Look up command
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	// Parse flags
	remaining := args[1:]
	return d.dispatchCommand(ctx, cmd, remaining, out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	// Create flag set with custom error handling
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var configDir string
	var quiet bool
	var debug bool

	fs.StringVar(&configDir, "config", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	// Register command-specific flags
	cmd.RegisterFlags(fs)

	// Parse flags
	if err := fs.Parse(args); err != nil {
		// Handle specific error types
		errStr := err.Error()

		// Check for missing flag value
		if strings.HasPrefix(errStr, "flag needs an argument:") {
			flagName := strings.TrimPrefix(errStr, "flag needs an argument: ")
			fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", flagName)
			return exitcode.UserError
		}

		// Check for unknown flag
		if strings.HasPrefix(errStr, "flag provided but not defined:") {
			flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
			fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
			return exitcode.UserError
		}

		// Generic error handling for bad flag values
		if strings.Contains(errStr, "invalid value") {
			fmt.Fprintf(errOut, "error: %s\n", errStr)
			return exitcode.UserError
		}

		fmt.Fprintf(errOut, "error: %s\n", errStr)
		return exitcode.UserError
	}

	// Check if first positional arg starts with - (should have been parsed as flag).
	// A lone "-" is an argument.
	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && positionalArgs[0] != "-" && strings.HasPrefix(positionalArgs[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return exitcode.UserError
	}

	// Create config
	cfg, err := config.New(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	cfg.Quiet = quiet
	cfg.Debug = debug

	if err := cfg.Load(); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.ConfigError
	}

	log := logging.New(cfg.LogLevel(), cfg.Log.Format, errOut)
	log.WithFields(logrus.Fields{
		"command": cmd.Name(),
		"config":  cfg.Dir,
	}).Debug("dispatch")

	// Open storage
	var sess *session.Session
	if cmd.NeedsStorage() {
		sess, err = d.factory(ctx, cfg, log)
		if err != nil {
			if IsConfigError(err) {
				fmt.Fprintf(errOut, "error: %s\n", err)
				return exitcode.ConfigError
			}
			fmt.Fprintf(errOut, "error: storage error: %s\n", err)
			return exitcode.StorageError
		}
		defer func() {
			if err := sess.Close(); err != nil {
				log.WithError(err).Warn("failed to close storage")
			}
		}()
	}

	// Run command
	return cmd.Run(ctx, cfg, sess, positionalArgs, out, errOut)
}

// IsConfigError reports whether a session failed to open because of a bad
// storage setting rather than an unreachable store.
func IsConfigError(err error) bool {
	var unknown *slot.ErrUnknownBackend
	var badKey *slot.ErrInvalidKey
	return errors.As(err, &unknown) || errors.As(err, &badKey)
}
