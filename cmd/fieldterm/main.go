// Command fieldterm runs the particle field in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/olivierh59500/particle-field-go/internal/backdrop"
	"github.com/olivierh59500/particle-field-go/internal/config"
	"github.com/olivierh59500/particle-field-go/internal/field"
	"github.com/olivierh59500/particle-field-go/internal/termview"
	"github.com/olivierh59500/particle-field-go/internal/theme"
)

func main() {
	cfg := config.New()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logFile, err := config.SetupLogging(cfg.Debug, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "fieldterm: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	seed := cfg.ResolveSeed()
	f := field.New(seed, theme.Particles())

	var bd *backdrop.Backdrop
	if cfg.Backdrop {
		opts := backdrop.DefaultOptions()
		opts.Shimmer = cfg.Shimmer
		bd = backdrop.New(seed, opts)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	view := termview.New(screen, f, bd, cfg.Layer)
	if err := view.Run(ctx, cfg.FrameInterval()); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
