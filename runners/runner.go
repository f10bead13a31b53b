package runners

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// Result is the bounded outcome of one command execution. Stdout and
// Stderr may be truncated, see Truncate.
type Result struct {
	ReturnCode int
	Stdout     string
	Stderr     string
}

// TimeoutError reports a command that did not finish within its
// allotted time. The underlying process has been terminated by the
// time the error is returned.
type TimeoutError struct {
	Command string
	Timeout float64
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("Command '%s' timed out after %v seconds", e.Command, e.Timeout)
}

const (
	// DefaultTimeout is the per-command wall clock limit in seconds.
	DefaultTimeout = 120.0
	// DefaultTruncateAfter bounds captured stdout and stderr.
	DefaultTruncateAfter = 16000
)

type runOptions struct {
	timeout       float64
	truncateAfter *int
}

type RunOption func(*runOptions)

func WithTimeout(seconds float64) RunOption {
	return func(o *runOptions) {
		o.timeout = seconds
	}
}

func WithTruncateAfter(limit int) RunOption {
	return func(o *runOptions) {
		o.truncateAfter = &limit
	}
}

func WithoutTruncation() RunOption {
	return func(o *runOptions) {
		o.truncateAfter = nil
	}
}

func runCommand(ctx context.Context, command string, o runOptions) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(o.timeout*float64(time.Second)))
	defer cancel()

	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", command)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Cancel = func() error {
		// The process may exit on its own between timeout detection and
		// the kill attempt. That race is not an error.
		err := cmd.Process.Kill()
		if errors.Is(err, os.ErrProcessDone) {
			return nil
		}
		return err
	}
	// Background children inherit the output pipes and can hold them
	// open long after the main process exits; without a bound, Run
	// would wait for pipe EOF instead of process exit.
	cmd.WaitDelay = 200 * time.Millisecond

	err := cmd.Run()

	if errors.Is(err, exec.ErrWaitDelay) {
		// The command itself completed; only a leftover child kept the
		// pipes open. The output captured so far stands.
		err = nil
	}

	if ctx.Err() == context.DeadlineExceeded {
		// The command may still have finished on its own before the
		// deadline while a background child stalled the pipe wait. Only
		// a process that never reached its own exit counts as timed out.
		var exitErr *exec.ExitError
		finished := err == nil ||
			errors.As(err, &exitErr) &&
				exitErr.ProcessState != nil &&
				exitErr.ProcessState.Exited()
		if !finished {
			return nil, &TimeoutError{
				Command: command,
				Timeout: o.timeout,
			}
		}
	}

	returnCode := 0
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// the command never ran
			return nil, err
		}
		if exitErr.ProcessState != nil && exitErr.ProcessState.Exited() {
			returnCode = exitErr.ExitCode()
		}
		// A process that left no exit status (e.g. killed by a signal)
		// reports 0. Callers cannot tell "exited 0" from "status
		// unknown"; this conflation is part of the contract.
	}

	return &Result{
		ReturnCode: returnCode,
		Stdout:     Truncate(stdout.String(), o.truncateAfter),
		Stderr:     Truncate(stderr.String(), o.truncateAfter),
	}, nil
}
