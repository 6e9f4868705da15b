package runner

import "errors"

var (
	ErrUnknownToolchain = errors.New("unknown toolchain")
	ErrNoRunCommand     = errors.New("toolchain has no run command")
	ErrNoSourceFile     = errors.New("toolchain has no source file name")
	ErrEmptyCommand     = errors.New("empty command")
)
