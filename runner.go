package cusbc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
)

// Runner executes the vendor hub control tool and returns its trimmed stdout.
// The default implementation shells out; tests substitute a fake via
// WithRunner.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// execRunner is the concrete Runner backed by os/exec
type execRunner struct{}

// Ensure execRunner implements Runner interface at compile time
var _ Runner = execRunner{}

func (execRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.As(err, &exitErr):
			stderr := bytes.TrimSpace(exitErr.Stderr)
			if len(stderr) > 0 {
				return "", fmt.Errorf("%w: %s exited with code %d: %s", ErrProcessFailure, name, exitErr.ExitCode(), stderr)
			}
			return "", fmt.Errorf("%w: %s exited with code %d", ErrProcessFailure, name, exitErr.ExitCode())
		case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
			return "", fmt.Errorf("%w: %s", ErrExecutableNotFound, name)
		case ctx.Err() != nil:
			return "", fmt.Errorf("%w: %s: %v", ErrProcessFailure, name, ctx.Err())
		default:
			return "", fmt.Errorf("%w: %s: %v", ErrProcessFailure, name, err)
		}
	}
	return strings.TrimSpace(string(out)), nil
}

// IsExecutableAvailable checks if the vendor executable can be resolved,
// either as a path or via PATH lookup
func IsExecutableAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
