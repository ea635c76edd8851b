package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nucleocolectivo/motorcreativo/internal/config"
	"github.com/nucleocolectivo/motorcreativo/internal/orchestrator"
	"github.com/nucleocolectivo/motorcreativo/internal/pools"
	"github.com/nucleocolectivo/motorcreativo/internal/session"
	"github.com/nucleocolectivo/motorcreativo/internal/strategy"
	"github.com/nucleocolectivo/motorcreativo/internal/ui"
)

func main() {
	stateDir := flag.String("state", "", "directory for session state (defaults to $XDG_DATA_HOME/motorcreativo)")
	exportDir := flag.String("export", "", "directory for CSV and report exports (defaults to current directory)")
	poolsFile := flag.String("pools", "", "YAML pool preset to load into the session")
	writeConfig := flag.Bool("write-config", false, "write the default config file and exit")
	flag.Parse()

	if *writeConfig {
		path := config.Path()
		if err := config.WriteDefault(path); err != nil {
			fmt.Fprintf(os.Stderr, "error writing config: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(path)
		return
	}

	if *stateDir == "" {
		*stateDir = defaultStateDir()
	}
	if err := os.MkdirAll(*stateDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "error creating state directory: %v\n", err)
		os.Exit(1)
	}

	if *exportDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		*exportDir = cwd
	}

	// The terminal belongs to the TUI; operator logging goes to a file.
	logFile, err := os.OpenFile(filepath.Join(*stateDir, "motorcreativo.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	slog.SetDefault(slog.New(slog.NewTextHandler(logFile, nil)))

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		os.Exit(1)
	}

	sstore := session.NewStore(*stateDir)
	store := sstore.LoadTeams()
	state := sstore.LoadState()

	if *poolsFile != "" {
		p, err := pools.LoadFile(*poolsFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error loading pools file: %v\n", err)
			os.Exit(1)
		}
		if err := sstore.SavePools(p); err != nil {
			fmt.Fprintf(os.Stderr, "error storing pools: %v\n", err)
			os.Exit(1)
		}
	}

	var gen strategy.Generator
	if cfg.AI.APIKey != "" {
		g, err := strategy.NewGeminiGenerator(context.Background(), cfg.AI.APIKey, cfg.AI.Model)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		gen = g
	} else {
		slog.Info("GEMINI_API_KEY not set, strategy narratives use local fallback")
	}
	enricher := strategy.NewClient(gen,
		strategy.WithTimeout(time.Duration(cfg.AI.TimeoutSeconds)*time.Second))

	orch := orchestrator.New(store, enricher, sstore.LoadPools, sstore)

	styles := ui.NewStyles(cfg.Colors)
	model := ui.NewApp(styles, orch, store, sstore, state, *exportDir, cfg.Timer.Seconds)
	p := tea.NewProgram(model, tea.WithAltScreen())

	orch.SetSender(p)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func defaultStateDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "motorcreativo")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".motorcreativo"
	}
	return filepath.Join(home, ".local", "share", "motorcreativo")
}
