// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package toolchain runs the external programs the report pipeline depends on:
// pandoc for document conversion, cargo for building the generator, and the
// generator binary itself. Each adapter builds a command line and hands it to
// an Invoker, which blocks until the process exits.
package toolchain

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/rs/zerolog"
)

// Invoker runs one external program to completion and reports its exit status.
// A non-nil error means the program could not be started; a program that ran
// and failed returns its exit code with a nil error.
type Invoker interface {
	Invoke(argv []string) (int, error)
}

// stdio groups the streams handed to a child process.
type stdio struct {
	in       io.Reader
	out, err io.Writer
}

// executor abstracts process execution for testing.
type executor interface {
	Run(name string, args []string, s stdio) (int, error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) Run(name string, args []string, s stdio) (int, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = s.in
	cmd.Stdout = s.out
	cmd.Stderr = s.err

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// ExitCode is -1 when the child was killed by a signal.
		if code := exitErr.ExitCode(); code > 0 {
			return code, nil
		}
		return 1, nil
	}
	return 0, err
}

var defaultExec = &osExecutor{}

// ProcessInvoker runs programs as child processes that share the caller's
// standard streams, so tool output reaches the terminal untouched.
type ProcessInvoker struct {
	log     zerolog.Logger
	streams stdio
	exec    executor
}

// NewProcessInvoker returns an Invoker wired to os.Stdin, os.Stdout and os.Stderr.
func NewProcessInvoker(log zerolog.Logger) *ProcessInvoker {
	return &ProcessInvoker{
		log:     log,
		streams: stdio{in: os.Stdin, out: os.Stdout, err: os.Stderr},
		exec:    defaultExec,
	}
}

// Invoke runs argv[0] with the remaining arguments and waits for it to exit.
func (p *ProcessInvoker) Invoke(argv []string) (int, error) {
	if len(argv) == 0 || argv[0] == "" {
		return 0, errors.New("empty command line")
	}

	p.log.Debug().Strs("argv", argv).Msg("starting process")
	code, err := p.exec.Run(argv[0], argv[1:], p.streams)
	if err != nil {
		return 0, fmt.Errorf("running %s: %w", argv[0], err)
	}
	p.log.Debug().Str("program", argv[0]).Int("exit_code", code).Msg("process exited")
	return code, nil
}
