// Package git acquires unified diffs from a repository.
package git

import "context"

// Git defines the diff sources mddiff can read from a repository.
type Git interface {
	// Show returns the unified diff introduced by a single commit.
	Show(ctx context.Context, dir, sha string, opts DiffOptions) ([]string, error)
	// DiffBranch returns the unified diff between a branch and the working tree.
	DiffBranch(ctx context.Context, dir, branch string, opts DiffOptions) ([]string, error)
}

// DiffOptions controls how git formats the diff.
type DiffOptions struct {
	// Unified is the number of context lines (git --unified=<n>).
	Unified int
	// WordDiff requests inline [-...-]/{+...+} markers instead of
	// whole-line changes.
	WordDiff bool
}
