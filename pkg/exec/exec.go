// Package exec runs external commands, adding logging and error translation.
package exec

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"syscall"
	"time"
)

type CmdError struct {
	Cause  error
	Args   string
	Stderr string
}

func (ce *CmdError) Error() string {
	res := fmt.Sprintf("`%v` failed: %v", ce.Args, ce.Cause)
	if ce.Stderr != "" {
		res = fmt.Sprintf("%s: %s", res, ce.Stderr)
	}

	return res
}

func (ce *CmdError) Unwrap() error {
	return ce.Cause
}

func newCmdError(args string, cause error, stderr string) *CmdError {
	return &CmdError{Args: args, Cause: cause, Stderr: stderr}
}

type CmdOpts struct {
	// Timeout determines how long to wait for the command to exit.
	Timeout time.Duration
	// CaptureStderr defines whether to capture stderr in addition to stdout.
	CaptureStderr bool
}

var DefaultCmdOpts = CmdOpts{
	Timeout:       time.Duration(0),
	CaptureStderr: false,
}

// randString returns a cryptographically-secure pseudo-random alpha-numeric
// string of a given length.
func randString(n int) (string, error) {
	b := make([]byte, n/2+1) // One extra letter to discard.
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random string: %w", err)
	}

	return hex.EncodeToString(b)[0:n], nil
}

// RunCommand runs the named command and returns its stdout, wrapping any
// non-zero exit in a [CmdError] that includes stderr.
func RunCommand(name string, opts CmdOpts, arg ...string) (string, error) {
	return RunCommandExt(exec.Command(name, arg...), opts)
}

// RunCommandExt runs a prepared [exec.Cmd] and returns its output.
func RunCommandExt(cmd *exec.Cmd, opts CmdOpts) (string, error) {
	execID, err := randString(5)
	if err != nil {
		return "", err
	}

	logCtx := slog.With("execID", execID)

	// Log in a way we can copy-and-paste into a terminal.
	args := strings.Join(cmd.Args, " ")
	logCtx.Info(args, "dir", cmd.Dir)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()

	err = cmd.Start()
	if err != nil {
		return "", fmt.Errorf("failed to start command: %w", err)
	}

	done := make(chan error)
	go func() { done <- cmd.Wait() }()

	timeout := DefaultCmdOpts.Timeout
	if opts.Timeout != time.Duration(0) {
		timeout = opts.Timeout
	}

	var timeoutCh <-chan time.Time
	if timeout != 0 {
		timeoutCh = time.NewTimer(timeout).C
	}

	select {
	case <-timeoutCh:
		_ = cmd.Process.Signal(syscall.SIGKILL)

		output := stdout.String()
		if opts.CaptureStderr {
			output += stderr.String()
		}

		logCtx.Debug(output, "duration", time.Since(start))

		err = newCmdError(args, fmt.Errorf("timeout after %v", timeout), "")
		logCtx.Error(err.Error())

		return strings.TrimSuffix(output, "\n"), err

	case err := <-done:
		if err != nil {
			output := stdout.String()
			if opts.CaptureStderr {
				output += stderr.String()
			}

			logCtx.Debug(output, "duration", time.Since(start))

			cmdErr := newCmdError(args, err, strings.TrimSpace(stderr.String()))
			logCtx.Error(cmdErr.Error())

			return strings.TrimSuffix(output, "\n"), cmdErr
		}
	}

	output := stdout.String()
	if opts.CaptureStderr {
		output += stderr.String()
	}

	logCtx.Debug(output, "duration", time.Since(start))

	return strings.TrimSuffix(output, "\n"), nil
}
