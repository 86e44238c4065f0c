package executil

import (
	"context"
	"sync"
)

// RecordedCommand captures a command that was executed.
type RecordedCommand struct {
	Dir  string
	Cmd  string
	Args []string
}

// RecordingExecutor captures commands for testing.
// Configure Outputs, Stderrs, and Errors maps to control return values.
type RecordingExecutor struct {
	mu       sync.Mutex
	Commands []RecordedCommand

	// Outputs maps command names to their stdout.
	// Key is the command name (e.g., "git").
	Outputs map[string][]byte

	// Stderrs maps command names to stderr returned from RunDirSplit.
	Stderrs map[string][]byte

	// Errors maps command names to their error.
	Errors map[string]error
}

// RunDir records the command with directory and returns configured output/error.
func (e *RecordingExecutor) RunDir(ctx context.Context, dir, cmd string, args ...string) ([]byte, error) {
	out, _, err := e.record(dir, cmd, args...)
	return out, err
}

// RunDirSplit records the command and returns configured stdout/stderr/error.
func (e *RecordingExecutor) RunDirSplit(ctx context.Context, dir, cmd string, args ...string) ([]byte, []byte, error) {
	return e.record(dir, cmd, args...)
}

func (e *RecordingExecutor) record(dir, cmd string, args ...string) ([]byte, []byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.Commands = append(e.Commands, RecordedCommand{
		Dir:  dir,
		Cmd:  cmd,
		Args: args,
	})

	var out, errOut []byte
	var err error

	if e.Outputs != nil {
		out = e.Outputs[cmd]
	}
	if e.Stderrs != nil {
		errOut = e.Stderrs[cmd]
	}
	if e.Errors != nil {
		err = e.Errors[cmd]
	}

	return out, errOut, err
}

// Last returns the most recently recorded command, or nil if none were run.
func (e *RecordingExecutor) Last() *RecordedCommand {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.Commands) == 0 {
		return nil
	}
	return &e.Commands[len(e.Commands)-1]
}

// Reset clears recorded commands.
func (e *RecordingExecutor) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Commands = nil
}
