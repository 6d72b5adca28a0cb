// Package main is the entry point for accelmenu, a terminal menu bar
// driven by keyboard accelerators.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/term"

	"github.com/dshills/accelmenu/internal/app"
	"github.com/dshills/accelmenu/internal/config"
	"github.com/dshills/accelmenu/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	app.Options

	logFile        string
	exportBindings string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if opts.exportBindings != "" {
		if err := exportBindings(opts.ConfigPath, opts.exportBindings); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: stdout is not a terminal")
		return 1
	}

	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to open log file: %v\n", err)
			return 1
		}
		defer f.Close()
		opts.LogOutput = f
	}

	// Create application
	application, err := app.New(opts.Options)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Close()

	// Create terminal backend
	terminal, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := application.SetBackend(terminal); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set backend: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	go func() {
		<-signals
		application.Shutdown()
	}()

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

// exportBindings writes every shortcut of the configuration, menu
// accelerators included, as a JSON keybindings file. "-" is stdout.
func exportBindings(configPath, dest string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	data, err := config.ExportBindingsJSON(cfg.AllBindings())
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if dest != "-" {
		f, err := os.Create(dest)
		if err != nil {
			return fmt.Errorf("creating %s: %w", dest, err)
		}
		defer f.Close()
		w = f
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing bindings: %w", err)
	}
	return nil
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "accelmenu", "config.toml")
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	defaultConfig := defaultConfigPath()

	flag.StringVar(&opts.ConfigPath, "config", defaultConfig, "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", defaultConfig, "Path to configuration file (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the config file")
	flag.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	flag.StringVar(&opts.exportBindings, "export-bindings", "", "Write all shortcuts as JSON to this file (- for stdout) and exit")
	flag.BoolVar(&opts.Watch, "watch", true, "Reload when the configuration file changes")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "accelmenu - terminal menu bar with keyboard accelerators\n\n")
		fmt.Fprintf(os.Stderr, "Usage: accelmenu [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  accelmenu                              Run with the user config\n")
		fmt.Fprintf(os.Stderr, "  accelmenu -c menus.toml -log-file log  Run with a config and debug log\n")
		fmt.Fprintf(os.Stderr, "  accelmenu -export-bindings -           Print shortcuts as JSON\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("accelmenu %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	// Validate log level
	if opts.LogLevel != "" {
		if _, ok := app.ParseLogLevel(opts.LogLevel); !ok {
			fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
			os.Exit(1)
		}
	}

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments %v\n", flag.Args())
		os.Exit(1)
	}

	return opts
}
