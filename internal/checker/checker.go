// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package checker runs the native line-oriented checker (flake8 by default)
// over intermediate text and parses its findings.
package checker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/lkeegan/flake8-nb/pkg/types"
)

// DefaultCommand is the checker executable used when none is configured.
const DefaultCommand = "flake8"

// exitViolations is the checker exit code for "ran fine, found problems".
const exitViolations = 1

// Runner lints text with the native checker.
type Runner interface {
	// Name returns the checker executable name.
	Name() string

	// Available reports whether the checker binary exists on PATH.
	Available() bool

	// Check feeds text on stdin, reporting findings under displayName.
	Check(ctx context.Context, displayName, text string) ([]types.Diagnostic, error)
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	// RunPiped runs name with stdin and stdout attached and returns the
	// exit code. err is set only when the command could not run.
	RunPiped(ctx context.Context, name string, args []string, stdin io.Reader, stdout, stderr io.Writer) (int, error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunPiped(ctx context.Context, name string, args []string, stdin io.Reader, stdout, stderr io.Writer) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return -1, err
	}
	return 0, nil
}

// runner implements Runner for one checker binary.
type runner struct {
	bin  string
	args []string
	exec executor
}

var defaultExec = &osExecutor{}

// New returns a Runner for the configured checker command.
func New(cfg types.CheckerConfig) Runner {
	return newRunner(cfg, defaultExec)
}

func newRunner(cfg types.CheckerConfig, exec executor) *runner {
	bin := cfg.Command
	if bin == "" {
		bin = DefaultCommand
	}
	return &runner{bin: bin, args: cfg.Args, exec: exec}
}

func (r *runner) Name() string { return r.bin }

func (r *runner) Available() bool {
	_, err := r.exec.LookPath(r.bin)
	return err == nil
}

func (r *runner) Check(ctx context.Context, displayName, text string) ([]types.Diagnostic, error) {
	args := make([]string, 0, len(r.args)+2)
	args = append(args, r.args...)
	args = append(args, "--stdin-display-name="+displayName, "-")

	var out, errOut bytes.Buffer
	code, err := r.exec.RunPiped(ctx, r.bin, args, strings.NewReader(text), &out, &errOut)
	if err != nil {
		return nil, fmt.Errorf("running %s: %w", r.bin, err)
	}
	if code != 0 && code != exitViolations {
		msg := strings.TrimSpace(errOut.String())
		if msg == "" {
			msg = "no output"
		}
		return nil, fmt.Errorf("%s exited with status %d: %s", r.bin, code, msg)
	}

	return ParseOutput(&out)
}
