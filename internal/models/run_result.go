package models

// RunStage is how far a compile-and-run request progressed.
type RunStage int

const (
	StageCompile RunStage = iota // stopped after a failed compile
	StageRun                     // program was executed
)

// RunResult is the captured output of one compile-and-run request.
type RunResult struct {
	Stage       RunStage
	CompileExit int
	RunExit     int

	Diagnostics []string // compiler stderr, only set on failure
	Stdout      []string
	Stderr      []string
}

// Compiled reports whether the compile step succeeded.
func (r RunResult) Compiled() bool {
	return r.Stage == StageRun
}
