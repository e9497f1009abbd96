// Package main provides the sunpos entry point and CLI interface.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/devskill-org/sunpos/tracker"
	"github.com/devskill-org/sunpos/ui"
)

func main() {
	// Command line flags
	var (
		configFile = flag.String("config", "config.json", "Configuration file path")
		envFile    = flag.String("env", ".env", "Environment file with SUNPOS_* overrides")
		once       = flag.Bool("once", false, "Print a single snapshot and exit")
		plain      = flag.Bool("plain", false, "Redraw plain text in a loop instead of the interactive view")
		initConfig = flag.Bool("init", false, "Write a default configuration file and exit")
		help       = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	if *initConfig {
		if err := tracker.DefaultConfig().SaveConfig(*configFile); err != nil {
			fmt.Println("Error writing configuration:", err)
			os.Exit(1)
		}
		fmt.Printf("Default configuration written to %s\n", *configFile)
		return
	}

	config, err := tracker.LoadConfig(*configFile)
	if err != nil {
		fmt.Println("Error loading configuration:", err)
		os.Exit(1)
	}

	if err := tracker.ApplyEnv(config, *envFile); err != nil {
		fmt.Println("Error applying environment overrides:", err)
		os.Exit(1)
	}

	// Logs go to stderr so they do not interleave with the redrawn view
	logger := log.New(os.Stderr, "[SUNPOS] ", log.LstdFlags)

	t := tracker.NewTracker(config, logger)

	switch {
	case *once:
		fmt.Print(tracker.FormatSnapshot(t.Compute()))
	case *plain:
		runPlain(t, logger)
	default:
		p := tea.NewProgram(ui.NewModel(t), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Printf("Error running application: %v\n", err)
			os.Exit(1)
		}
	}
}

func runPlain(t *tracker.Tracker, logger *log.Logger) {
	t.SetRenderer(tracker.NewPlainRenderer(os.Stdout, true))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Printf("Shutdown signal received, stopping tracker...")
		cancel()
	}()

	if err := t.Start(ctx); err != nil && err != context.Canceled {
		logger.Printf("Tracker error: %v", err)
	}
}

func showHelp() {
	fmt.Println("sunpos - Solar position and sunrise/sunset tracker")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  Continuously computes the apparent azimuth and elevation of the Sun and the")
	fmt.Println("  local sunrise and sunset for the configured location, using closed-form")
	fmt.Println("  approximations valid from 1901 to 2099.")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  sunpos [OPTIONS]")
	fmt.Println()
	fmt.Println("OPTIONS:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("ENVIRONMENT:")
	fmt.Printf("  %s, %s, %s,\n", tracker.EnvLatitude, tracker.EnvLongitude, tracker.EnvTimezoneOffset)
	fmt.Printf("  %s, %s\n", tracker.EnvRefreshInterval, tracker.EnvRefraction)
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  # Write a default config.json and edit latitude/longitude")
	fmt.Println("  sunpos -init")
	fmt.Println()
	fmt.Println("  # Interactive view")
	fmt.Println("  sunpos")
	fmt.Println()
	fmt.Println("  # Plain console output, redrawn every refresh interval")
	fmt.Println("  sunpos -plain")
	fmt.Println()
	fmt.Println("  # One snapshot for another location")
	fmt.Println("  SUNPOS_LATITUDE=40.7 SUNPOS_LONGITUDE=-74.0 sunpos -once")
}
