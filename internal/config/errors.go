package config

import "errors"

var (
	ErrEmptyWorkDir    = errors.New("work directory must not be empty")
	ErrWorkDirNotDir   = errors.New("work directory is not a directory")
	ErrReportDirNotDir = errors.New("report directory is not a directory")
)
