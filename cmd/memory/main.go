package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/tinytelemetry/memory/internal/console"
	"github.com/tinytelemetry/memory/internal/httpserver"
	"github.com/tinytelemetry/memory/internal/model"
	"github.com/tinytelemetry/memory/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Build variables - set by ldflags during build.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	var configPath string
	var showVersion bool
	var plain bool
	var verbose bool
	var seed uint64

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/memory/config.yml)")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.BoolVar(&plain, "plain", false, "play in line mode instead of the full-screen UI")
	flag.BoolVar(&verbose, "verbose", false, "in line mode, log to stderr instead of the log file")
	flag.Uint64Var(&seed, "seed", 0, "fixed shuffle seed (0 = random)")
	flag.Parse()

	if showVersion {
		fmt.Printf("Memory - Pairs Game\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if plain {
		cfg.Plain = true
	}
	if verbose {
		cfg.Verbose = true
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg appConfig) error {
	cleanupLogger := configureRuntimeLogger(cfg.Plain && cfg.Verbose)
	defer cleanupLogger()

	log.Printf("memory: starting version=%s config=%q", version, cfg.ConfigPath)

	var observers []model.Renderer
	if cfg.APIEnabled {
		board := httpserver.NewStatusBoard()
		apiServer := httpserver.NewServer(cfg.APIAddr, board)
		if err := apiServer.Start(); err != nil {
			return fmt.Errorf("starting status API on %s: %w", cfg.APIAddr, err)
		}
		defer apiServer.Stop()
		log.Printf("memory: status API listening on %s", apiServer.Addr())
		observers = append(observers, board)
	}

	if cfg.Plain {
		return runConsole(cfg, observers)
	}
	return runTUI(cfg, observers)
}

func runTUI(cfg appConfig, observers []model.Renderer) error {
	skin, err := tui.LoadSkin(cfg.Skin, cfg.ConfigDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load skin '%s': %v (using default)\n", cfg.Skin, err)
	}

	page := tui.NewBoardPage(tui.Options{
		MismatchDelay: cfg.MismatchDelay,
		TickInterval:  cfg.TickInterval,
		Seed:          cfg.Seed,
		Skin:          skin,
		Observers:     observers,
	})
	app := tui.NewApp(page)
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("full-screen UI requires a real terminal (try -plain)")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

func runConsole(cfg appConfig, observers []model.Renderer) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Println(banner())
	return console.Run(ctx, os.Stdin, os.Stdout, console.Config{
		MismatchDelay: cfg.MismatchDelay,
		TickInterval:  cfg.TickInterval,
		Seed:          cfg.Seed,
		Observers:     observers,
	})
}

func banner() string {
	title := lipgloss.NewStyle().
		Foreground(tui.ColorBlue).
		Bold(true).
		Render("Memory " + version)
	hint := lipgloss.NewStyle().
		Foreground(tui.ColorGray).
		Render("Find all pairs. Type a card number (0-15) to turn it over, help for commands.")
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tui.ColorBlue).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, hint))
}
