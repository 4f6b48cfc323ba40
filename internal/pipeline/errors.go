// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"errors"
	"fmt"
)

// Step names a pipeline stage that runs an external program.
type Step string

const (
	StepConvert  Step = "convert"
	StepBuild    Step = "build"
	StepGenerate Step = "generate"
)

// UsageError reports a missing or invalid command-line input.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

// SubprocessError reports an external program that exited with a non-zero status.
type SubprocessError struct {
	Step Step
	Code int
}

func (e *SubprocessError) Error() string {
	return fmt.Sprintf("%s step exited with status %d", e.Step, e.Code)
}

// ExitCode maps an error returned by Run to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var subErr *SubprocessError
	if errors.As(err, &subErr) && subErr.Code > 0 {
		return subErr.Code
	}
	return 1
}
