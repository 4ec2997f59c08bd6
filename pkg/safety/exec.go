package safety

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"syscall"
	"time"
)

// DefaultTimeout bounds synchronous execution so a hung child cannot stall
// the UI indefinitely.
const DefaultTimeout = 30 * time.Second

// Result captures the outcome of a synchronous execution.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Success  bool
}

// ErrEmptyCommand is returned when there is nothing to execute.
var ErrEmptyCommand = errors.New("safety: empty command")

// Validate runs the load-time defense layers in order: blacklist, pattern
// scan, then path allow-listing. A SecurityViolation here is fatal to the
// item that carries the command.
func Validate(command string) error {
	program, _ := SplitCommand(command)
	if program == "" {
		return ErrEmptyCommand
	}
	if IsBlacklisted(command) {
		return &SecurityViolation{Command: command, Reason: BlacklistInfo(command)}
	}
	if HasDangerousPatterns(command) {
		return &SecurityViolation{Command: command, Reason: BlacklistInfo(command)}
	}
	if !IsAllowedPath(program) {
		return &SecurityViolation{
			Command: command,
			Reason:  fmt.Sprintf("Command path %q is outside the allowed directories.", program),
		}
	}
	return nil
}

// SecurityViolation marks a command rejected by the safety pipeline. It is
// logged distinctly from ordinary errors so attempted abuse is auditable.
type SecurityViolation struct {
	Command string
	Reason  string
}

func (v *SecurityViolation) Error() string {
	return fmt.Sprintf("safety: %s", v.Reason)
}

// Executor runs validated commands without a shell.
type Executor struct {
	// Timeout bounds synchronous runs; zero means DefaultTimeout.
	Timeout time.Duration
}

// Run executes the command synchronously, capturing output and exit code.
// The command string is re-validated: validation normally happens at
// configuration load, but execution is the last line of defense.
func (e *Executor) Run(ctx context.Context, command string) (Result, error) {
	if err := Validate(command); err != nil {
		return Result{ExitCode: -1}, err
	}
	program, args := SplitCommand(command)

	timeout := e.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, program, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{
		ExitCode: exitCode(cmd, err),
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}
	res.Success = err == nil && res.ExitCode == 0

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Non-zero exit is reported through the result, not the error.
			return res, nil
		}
		return res, fmt.Errorf("safety: run %q: %w", program, err)
	}
	return res, nil
}

// Start executes the command fire-and-forget: the child becomes a session
// leader so it survives the launcher and never zombies it. The child's
// exit status is not observable.
func (e *Executor) Start(command string) error {
	if err := Validate(command); err != nil {
		return err
	}
	program, args := SplitCommand(command)

	cmd := exec.Command(program, args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("safety: start %q: %w", program, err)
	}

	// Reap the immediate child in the background so a fast exit does not
	// leave a zombie while the launcher is still up.
	go func() {
		if err := cmd.Wait(); err != nil {
			slog.Debug("detached command exited", "program", program, "err", err)
		}
	}()
	return nil
}

func exitCode(cmd *exec.Cmd, err error) int {
	if cmd.ProcessState != nil {
		return cmd.ProcessState.ExitCode()
	}
	if err != nil {
		return -1
	}
	return 0
}
