// Package main is the entry point for the taskboard desktop window.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/op"
	"gioui.org/unit"

	"taskboard/internal/cli"
	"taskboard/internal/config"
	"taskboard/internal/exitcode"
	"taskboard/internal/gui"
	"taskboard/internal/logging"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	go func() {
		os.Exit(run(ctx, os.Args[1:], os.Stderr))
	}()
	app.Main()
}

func run(ctx context.Context, args []string, errOut io.Writer) int {
	fs := flag.NewFlagSet("taskboard-ui", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var configDir, metricsOut string
	var quiet, debug bool
	fs.StringVar(&configDir, "config", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")
	fs.StringVar(&metricsOut, "metrics-out", "", "")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", fs.Arg(0))
		return exitcode.UserError
	}

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
	sess, err := cli.OpenSession(ctx, cfg, log)
	if cli.IsConfigError(err) {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.ConfigError
	}
	if err != nil {
		fmt.Fprintf(errOut, "error: storage error: %s\n", err)
		return exitcode.StorageError
	}
	defer sess.Close()

	w := new(app.Window)
	w.Option(app.Title("TaskBoard"))
	w.Option(app.Size(unit.Dp(640), unit.Dp(720)))

	go func() {
		<-ctx.Done()
		w.Perform(system.ActionClose)
	}()

	ui := gui.New(ctx, sess, gui.NewTheme())
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			if e.Err != nil {
				fmt.Fprintf(errOut, "error: %s\n", e.Err)
				return exitcode.UserError
			}
			if metricsOut != "" {
				if err := sess.WriteMetrics(metricsOut); err != nil {
					fmt.Fprintf(errOut, "error: %s\n", err)
					return exitcode.StorageError
				}
			}
			return exitcode.Success
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			ui.Frame(gtx)
			e.Frame(gtx.Ops)
		}
	}
}
