// Package exec runs the external tools the scaffold delegates to (npm, npx,
// git) behind a stub-friendly interface.
package exec

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	osexec "os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/errors"
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/logging"
)

// Command is a single external command invocation
type Command struct {
	Name string
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env holds extra environment variables overlaid on the process environment
	Env map[string]string
}

// String renders the command line for logs and dry-run output
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// CommandRunner runs external commands to completion.
// A nil error means the command exited zero.
type CommandRunner interface {
	Run(ctx context.Context, cmd Command) error
}

// WaitDelay bounds how long Run waits for output pipes after the command
// was signalled. npm and npx leave node grandchildren holding the pipes.
const WaitDelay = 500 * time.Millisecond

// RealRunner runs commands with os/exec, streaming their output to the
// configured writers so the user sees the tools' own messages.
type RealRunner struct {
	Stdout io.Writer
	Stderr io.Writer
	logger zerolog.Logger
}

// NewRealRunner creates a runner writing to the process stdout and stderr
func NewRealRunner() *RealRunner {
	return &RealRunner{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		logger: logging.GetLogger("exec.runner"),
	}
}

// Run executes the command and waits for it.
// Start failures map to ErrCommandStart, non-zero exits to ErrCommandFailed.
func (r *RealRunner) Run(ctx context.Context, cmd Command) error {
	logging.LogCommand(r.logger, cmd.Dir, cmd.Name, cmd.Args)

	c := osexec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.WaitDelay = WaitDelay
	configureProcess(c)
	c.Stdout = r.Stdout
	c.Stderr = r.Stderr
	if len(cmd.Env) > 0 {
		c.Env = c.Environ()
		for k, v := range cmd.Env {
			c.Env = append(c.Env, k+"="+v)
		}
	}

	err := c.Run()
	if err == nil {
		return nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return errors.Wrapf(ctxErr, errors.ErrCommandFailed, "%s interrupted", cmd.Name).
			WithDetail("command", cmd.String())
	}

	var exitErr *osexec.ExitError
	if stderrors.As(err, &exitErr) {
		r.logger.Error().
			Str("command", cmd.String()).
			Int("exitCode", exitErr.ExitCode()).
			Msg("Command exited non-zero")
		return errors.Wrapf(err, errors.ErrCommandFailed, "%s exited with code %d", cmd.Name, exitErr.ExitCode()).
			WithDetail("command", cmd.String()).
			WithDetail("exitCode", exitErr.ExitCode())
	}

	return errors.Wrapf(err, errors.ErrCommandStart, "failed to start %s", cmd.Name).
		WithDetail("command", cmd.String())
}

// ExitCode returns the exit code carried by a runner error, 0 for nil and
// -1 when the command never produced one.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if code, ok := errors.GetErrorDetails(err)["exitCode"].(int); ok {
		return code
	}
	var exitErr *osexec.ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
