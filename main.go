package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gomultitool/internal/arptable"
	"gomultitool/internal/config"
	"gomultitool/internal/discovery"
	"gomultitool/internal/logging"
	"gomultitool/internal/models"
	"gomultitool/internal/reach"
	"gomultitool/internal/reporting"
	"gomultitool/internal/runner"
	"gomultitool/internal/theme"
	"gomultitool/internal/tui"
)

func main() {
	cfg := config.DefaultConfig()

	flag.StringVar(&cfg.Toolchain, "toolchain", cfg.Toolchain, "Toolchain for the code editor (java, go, shell)")
	flag.StringVar(&cfg.WorkDir, "workdir", cfg.WorkDir, "Base directory for per-run work areas")
	flag.BoolVar(&cfg.KeepWork, "keep-workdir", cfg.KeepWork, "Keep each run's work area on disk")
	flag.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Log file path (empty disables logging)")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable debug logging")
	flag.BoolVar(&cfg.ImportSystemARP, "import-arp", cfg.ImportSystemARP, "Add the system ARP cache to the simulator's table")
	flag.StringVar(&cfg.ReportDir, "report", cfg.ReportDir, "Write an HTML session report to this directory on exit")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}

	closer, err := logging.Init(logging.Config{
		Level: cfg.LogLevel,
		Debug: cfg.Debug,
		File:  cfg.LogFile,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tc, err := runner.ByName(cfg.Toolchain)
	if err != nil {
		log.Fatalf("Failed to select toolchain: %v", err)
	}

	r, err := runner.New(tc, cfg.WorkDir, runner.WithKeepWorkAreas(cfg.KeepWork))
	if err != nil {
		log.Fatalf("Failed to initialize runner: %v", err)
	}

	table, err := arptable.NewDefault()
	if err != nil {
		log.Fatalf("Failed to initialize ARP table: %v", err)
	}

	if cfg.ImportSystemARP {
		importSystemARP(table)
	}

	logging.Info().
		Str("toolchain", tc.Name).
		Str("workdir", cfg.WorkDir).
		Msg("starting")

	started := time.Now()
	checker := reach.NewChecker()

	model := tui.NewModel(ctx, tui.Deps{
		Checker: checker,
		Runner:  r,
		Table:   table,
	}, theme.Dark())

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		logging.Error().Err(err).Msg("TUI exited with error")
		log.Printf("Error running TUI: %v", err)
	}

	if cfg.ReportDir != "" {
		filename, err := reporting.GenerateSessionReport(reporting.Session{
			Started:   started,
			Toolchain: tc.Name,
			Probes:    checker.History().Recent(-1),
			Entries:   table.Entries(),
		}, "html", cfg.ReportDir)
		if err != nil {
			logging.Error().Err(err).Msg("Failed to write session report")
			log.Printf("Failed to write session report: %v", err)
		} else {
			fmt.Printf("Session report saved to %s\n", filename)
		}
	}

	logging.Info().Msg("exiting")
}

func importSystemARP(table *arptable.Table) {
	hosts, err := discovery.ReadSystemCache()
	if err != nil {
		logging.Warn().Err(err).Msg("Skipping system ARP cache")
		return
	}

	entries := make([]models.Entry, 0, len(hosts))
	for _, h := range hosts {
		entries = append(entries, models.Entry{
			Address:      h.IP.String(),
			HardwareAddr: discovery.HardwareString(h.MAC),
		})
	}

	added := table.Merge(entries...)
	logging.Info().Int("found", len(hosts)).Int("added", added).Msg("Imported system ARP cache")
}
