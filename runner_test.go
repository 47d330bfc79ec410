package cusbc

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestExecRunnerTrimsOutput(t *testing.T) {
	out, err := execRunner{}.Run(context.Background(), "echo", "0001COM3")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if out != "0001COM3" {
		t.Errorf("output = %q, expected trimmed %q", out, "0001COM3")
	}
}

func TestExecRunnerMissingExecutable(t *testing.T) {
	_, err := execRunner{}.Run(context.Background(), "definitely-not-a-real-binary-2f9a")
	if !errors.Is(err, ErrExecutableNotFound) {
		t.Errorf("expected ErrExecutableNotFound, got %v", err)
	}
}

func TestExecRunnerNonZeroExit(t *testing.T) {
	_, err := execRunner{}.Run(context.Background(), "false")
	if !errors.Is(err, ErrProcessFailure) {
		t.Errorf("expected ErrProcessFailure, got %v", err)
	}
	if errors.Is(err, ErrExecutableNotFound) {
		t.Error("non-zero exit must not be reported as a missing executable")
	}
}

func TestExecRunnerContextCancellation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := execRunner{}.Run(ctx, "sleep", "5")
	if !errors.Is(err, ErrProcessFailure) {
		t.Errorf("expected ErrProcessFailure on timeout, got %v", err)
	}
}

func TestIsExecutableAvailable(t *testing.T) {
	if !IsExecutableAvailable("echo") {
		t.Error("echo should be available in PATH")
	}
	if IsExecutableAvailable("definitely-not-a-real-binary-2f9a") {
		t.Error("nonexistent binary reported available")
	}
}
