package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"gomultitool/internal/logging"
	"gomultitool/internal/models"
)

const workAreaPrefix = "gomultitool-run-"

// Runner writes editor text to the toolchain's source file, compiles it and
// runs the result. Every call gets its own work area, so calls may overlap.
type Runner struct {
	toolchain Toolchain
	baseDir   string
	executor  Executor
	keep      bool
	logger    zerolog.Logger
}

type Option func(*Runner)

func WithExecutor(e Executor) Option {
	return func(r *Runner) { r.executor = e }
}

// WithKeepWorkAreas leaves work areas on disk after each call.
func WithKeepWorkAreas(keep bool) Option {
	return func(r *Runner) { r.keep = keep }
}

func New(tc Toolchain, baseDir string, opts ...Option) (*Runner, error) {
	if err := tc.validate(); err != nil {
		return nil, err
	}

	if baseDir == "" {
		baseDir = os.TempDir()
	}

	// Run argvs like ./main are resolved against the work area.
	baseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("work directory: %w", err)
	}

	r := &Runner{
		toolchain: tc,
		baseDir:   baseDir,
		executor:  ProcessExecutor{},
		logger:    logging.WithComponent("runner").With().Str("toolchain", tc.Name).Logger(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

func (r *Runner) Toolchain() Toolchain {
	return r.toolchain
}

// CompileAndRun stops after the compile step when the compiler exits
// non-zero. File and process failures come back as a single error.
func (r *Runner) CompileAndRun(ctx context.Context, source string) (models.RunResult, error) {
	dir, err := r.newWorkArea()
	if err != nil {
		return models.RunResult{}, err
	}

	if !r.keep {
		defer func() {
			if err := os.RemoveAll(dir); err != nil {
				r.logger.Warn().Err(err).Str("dir", dir).Msg("failed to remove work area")
			}
		}()
	}

	srcPath := filepath.Join(dir, r.toolchain.SourceFile)
	if err := os.WriteFile(srcPath, []byte(source), 0o644); err != nil {
		r.logger.Warn().Err(err).Str("file", srcPath).Msg("failed to write source")
		return models.RunResult{}, fmt.Errorf("failed to write source file: %w", err)
	}

	var result models.RunResult

	if len(r.toolchain.Compile) > 0 {
		out, err := r.execute(ctx, dir, r.toolchain.Compile)
		if err != nil {
			return result, err
		}

		result.CompileExit = out.ExitCode

		if out.ExitCode != 0 {
			result.Stage = models.StageCompile
			result.Diagnostics = out.Stderr
			r.logger.Info().Int("exit", out.ExitCode).Int("diagnostics", len(out.Stderr)).Msg("compilation failed")
			return result, nil
		}
	}

	out, err := r.execute(ctx, dir, r.toolchain.Run)
	if err != nil {
		return result, err
	}

	result.Stage = models.StageRun
	result.RunExit = out.ExitCode
	result.Stdout = out.Stdout
	result.Stderr = out.Stderr

	r.logger.Info().
		Int("exit", out.ExitCode).
		Int("stdout_lines", len(out.Stdout)).
		Int("stderr_lines", len(out.Stderr)).
		Msg("program finished")

	return result, nil
}

func (r *Runner) execute(ctx context.Context, dir string, argv []string) (Output, error) {
	cmd := Command{Dir: dir, Argv: argv}

	r.logger.Debug().Str("cmd", cmd.String()).Str("dir", dir).Msg("executing")

	out, err := r.executor.Execute(ctx, cmd)
	if err != nil {
		r.logger.Warn().Err(err).Str("cmd", cmd.String()).Msg("process failed")
		return out, err
	}

	return out, nil
}

func (r *Runner) newWorkArea() (string, error) {
	dir := filepath.Join(r.baseDir, workAreaPrefix+uuid.NewString())

	if err := os.Mkdir(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create work area: %w", err)
	}

	return dir, nil
}

// Report renders a run result the way the editor panel shows it.
func Report(res models.RunResult) string {
	var b strings.Builder

	if !res.Compiled() {
		b.WriteString("Compilation failed:\n")
		for _, line := range res.Diagnostics {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		return b.String()
	}

	b.WriteString("Output:\n")
	for _, line := range res.Stdout {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	for _, line := range res.Stderr {
		b.WriteString("Error: ")
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return b.String()
}

func ErrorReport(err error) string {
	return "Error: " + err.Error()
}
