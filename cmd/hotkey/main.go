// Package main is the entry point for the hotkey demo.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/hotkey/internal/app"
	"github.com/dshills/hotkey/internal/config"
	"github.com/dshills/hotkey/internal/logging"
	"github.com/dshills/hotkey/internal/teaui"
	"github.com/dshills/hotkey/internal/terminal"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const (
	uiTcell = "tcell"
	uiTea   = "tea"
)

type options struct {
	configPath string
	document   string
	ui         string
	logLevel   string
	dumpConfig bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.dumpConfig {
		data, err := cfg.Encode()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		os.Stdout.Write(data)
		return 0
	}

	// Logs go to a file or nowhere; stderr belongs to the UI.
	logOut := io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: opening log file: %v\n", err)
			return 1
		}
		defer f.Close()
		logOut = f
	}
	logger := logging.New(logging.Config{
		Level:  cfg.Level(),
		Output: logOut,
		Prefix: "hotkey",
	})
	logging.SetDefault(logger)

	application, err := app.New(app.Options{Config: cfg, Logger: logger})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch opts.ui {
	case uiTea:
		err = teaui.Run(ctx, application, logger)
	default:
		err = runTcell(ctx, application, logger)
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func runTcell(ctx context.Context, a *app.App, logger *logging.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	return terminal.Run(ctx, screen, a, logger)
}

func loadConfig(opts options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		cfg, err = config.Load(opts.configPath)
		if err != nil {
			return config.Config{}, err
		}
	}

	if opts.document != "" {
		cfg.Document = opts.document
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	if cfg.Document == "" {
		return config.Config{}, app.ErrNoDocument
	}
	return cfg, nil
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.document, "document", "", "Path to YAML document (overrides config)")
	flag.StringVar(&opts.document, "d", "", "Path to YAML document (shorthand)")
	flag.StringVar(&opts.ui, "ui", uiTcell, "Frontend to use (tcell, tea)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.dumpConfig, "dump-config", false, "Print the effective configuration and exit")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "hotkey - bind key combinations to elements of a document\n\n")
		fmt.Fprintf(os.Stderr, "Usage: hotkey [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  hotkey -c hotkey.toml             Run with a configuration\n")
		fmt.Fprintf(os.Stderr, "  hotkey -c hotkey.toml -ui tea     Use the Bubble Tea frontend\n")
		fmt.Fprintf(os.Stderr, "  hotkey -d page.yaml -dump-config  Show the effective configuration\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("hotkey %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch opts.ui {
	case uiTcell, uiTea:
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid ui %q (must be tcell or tea)\n", opts.ui)
		os.Exit(1)
	}

	return opts
}
