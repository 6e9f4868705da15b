package config

import (
	"fmt"
	"os"

	"gomultitool/internal/runner"
)

// Config holds the command-line settings for the tool.
type Config struct {
	Toolchain string // "java", "go" or "shell"
	WorkDir   string // base directory for per-run work areas
	KeepWork  bool   // leave work areas on disk after each run
	LogFile   string
	LogLevel  string
	Debug     bool

	ImportSystemARP bool   // seed the simulator with the kernel's ARP cache too
	ReportDir       string // write an HTML session report here on exit; empty disables
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Toolchain: "java",
		WorkDir:   os.TempDir(),
		LogFile:   "gomultitool.log",
		LogLevel:  "info",
	}
}

// Validate checks the settings that can be checked without side effects.
func (c Config) Validate() error {
	if _, err := runner.ByName(c.Toolchain); err != nil {
		return err
	}

	if c.WorkDir == "" {
		return ErrEmptyWorkDir
	}

	info, err := os.Stat(c.WorkDir)
	if err != nil {
		return fmt.Errorf("work directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrWorkDirNotDir, c.WorkDir)
	}

	if c.ReportDir != "" {
		info, err := os.Stat(c.ReportDir)
		if err != nil {
			return fmt.Errorf("report directory: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%w: %s", ErrReportDirNotDir, c.ReportDir)
		}
	}

	return nil
}
