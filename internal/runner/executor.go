package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
)

// Command is one process invocation inside a work area.
type Command struct {
	Dir  string
	Argv []string
}

func (c Command) String() string {
	return strings.Join(c.Argv, " ")
}

// Output is what a finished process left behind. A non-zero exit code is
// not an error.
type Output struct {
	ExitCode int
	Stdout   []string
	Stderr   []string
}

// Executor runs a command to completion and drains both of its streams.
type Executor interface {
	Execute(ctx context.Context, cmd Command) (Output, error)
}

// ProcessExecutor runs commands as child processes.
type ProcessExecutor struct{}

func (ProcessExecutor) Execute(ctx context.Context, c Command) (Output, error) {
	if len(c.Argv) == 0 {
		return Output{}, ErrEmptyCommand
	}

	name := c.Argv[0]
	if strings.HasPrefix(name, "./") {
		name = filepath.Join(c.Dir, name)
	}

	cmd := exec.CommandContext(ctx, name, c.Argv[1:]...)
	cmd.Dir = c.Dir

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return Output{}, fmt.Errorf("failed to get stdout pipe: %w", err)
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return Output{}, fmt.Errorf("failed to get stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return Output{}, fmt.Errorf("failed to start %s: %w", c.Argv[0], err)
	}

	var (
		out                  Output
		wg                   sync.WaitGroup
		stdoutErr, stderrErr error
	)

	// Both pipes are drained at once so neither can fill up and stall the
	// child.
	wg.Add(2)
	go func() {
		defer wg.Done()
		out.Stdout, stdoutErr = readLines(stdout)
	}()
	go func() {
		defer wg.Done()
		out.Stderr, stderrErr = readLines(stderr)
	}()
	wg.Wait()

	waitErr := cmd.Wait()

	var exitErr *exec.ExitError
	switch {
	case errors.As(waitErr, &exitErr):
		out.ExitCode = exitErr.ExitCode()
	case waitErr != nil:
		return out, fmt.Errorf("%s: %w", c.Argv[0], waitErr)
	}

	if err := errors.Join(stdoutErr, stderrErr); err != nil {
		return out, fmt.Errorf("reading output of %s: %w", c.Argv[0], err)
	}

	return out, nil
}

// readLines reads r to EOF and splits it into lines. Lines have no length
// cap, so the pipe is always drained and the child can exit.
func readLines(r io.Reader) ([]string, error) {
	var lines []string

	br := bufio.NewReader(r)

	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}

		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			_, _ = io.Copy(io.Discard, r)
			return lines, err
		}
	}
}
