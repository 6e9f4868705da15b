package tui

import "gomultitool/internal/models"

type pingDoneMsg struct {
	result models.ProbeResult
	err    error
}

type runDoneMsg struct {
	result models.RunResult
	err    error
}
