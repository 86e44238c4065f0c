// Package executil provides subprocess execution utilities.
package executil

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

const maxStderrLen = 500

// CapStderr truncates stderr output to a displayable length. Large or
// ANSI-polluted stderr would otherwise corrupt logs and error messages.
func CapStderr(b []byte) string {
	if len(b) > maxStderrLen {
		b = b[:maxStderrLen]
	}
	return string(bytes.TrimSpace(b))
}

// Executor runs external commands.
type Executor interface {
	// RunDir executes a command in a specific directory and returns its
	// combined output.
	RunDir(ctx context.Context, dir, cmd string, args ...string) ([]byte, error)
	// RunDirSplit executes a command in a specific directory with stdout
	// and stderr captured separately. A non-zero exit is returned as err;
	// callers that treat stderr itself as fatal inspect the stderr slice.
	RunDirSplit(ctx context.Context, dir, cmd string, args ...string) (stdout, stderr []byte, err error)
}

// RealExecutor calls actual external commands.
type RealExecutor struct{}

// RunDir executes a command in a specific directory and returns its combined output.
func (e *RealExecutor) RunDir(ctx context.Context, dir, cmd string, args ...string) ([]byte, error) {
	c := exec.CommandContext(ctx, cmd, args...)
	c.Dir = dir
	out, err := c.CombinedOutput()
	if err != nil {
		return out, fmt.Errorf("exec %s in %s: %w", cmd, dir, err)
	}
	return out, nil
}

// RunDirSplit executes a command in a specific directory with stdout and
// stderr captured separately.
func (e *RealExecutor) RunDirSplit(ctx context.Context, dir, cmd string, args ...string) ([]byte, []byte, error) {
	c := exec.CommandContext(ctx, cmd, args...)
	c.Dir = dir

	var outBuf, errBuf bytes.Buffer
	c.Stdout = &outBuf
	c.Stderr = &errBuf

	if err := c.Run(); err != nil {
		return outBuf.Bytes(), errBuf.Bytes(), fmt.Errorf("exec %s in %s: %w", cmd, dir, err)
	}
	return outBuf.Bytes(), errBuf.Bytes(), nil
}
