package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/mrvoxel/mddiff/pkg/executil"
)

// Executor implements Git using the git command-line tool.
type Executor struct {
	gitPath string
	exec    executil.Executor
}

// NewExecutor creates a new git executor with the specified git binary path.
func NewExecutor(gitPath string, exec executil.Executor) *Executor {
	return &Executor{gitPath: gitPath, exec: exec}
}

// Show returns the unified diff introduced by the commit sha.
func (e *Executor) Show(ctx context.Context, dir, sha string, opts DiffOptions) ([]string, error) {
	args := append([]string{"show", sha}, opts.args()...)

	lines, err := e.run(ctx, dir, args)
	if err != nil {
		return nil, fmt.Errorf("git show %s: %w", sha, err)
	}
	return lines, nil
}

// DiffBranch returns the unified diff between branch and the working tree.
func (e *Executor) DiffBranch(ctx context.Context, dir, branch string, opts DiffOptions) ([]string, error) {
	args := append([]string{"diff", branch}, opts.args()...)

	lines, err := e.run(ctx, dir, args)
	if err != nil {
		return nil, fmt.Errorf("git diff %s: %w", branch, err)
	}
	return lines, nil
}

// run executes git and splits stdout into lines. Any stderr output is
// fatal, even on a zero exit status.
func (e *Executor) run(ctx context.Context, dir string, args []string) ([]string, error) {
	stdout, stderr, err := e.exec.RunDirSplit(ctx, dir, e.gitPath, args...)
	if err != nil {
		if msg := executil.CapStderr(stderr); msg != "" {
			return nil, fmt.Errorf("%s: %w", msg, err)
		}
		return nil, err
	}
	if len(stderr) > 0 {
		return nil, fmt.Errorf("git wrote to stderr: %s", executil.CapStderr(stderr))
	}

	return strings.Split(string(stdout), "\n"), nil
}

func (o DiffOptions) args() []string {
	args := []string{fmt.Sprintf("--unified=%d", o.Unified)}
	if o.WordDiff {
		args = append(args, "--word-diff")
	}
	return args
}
