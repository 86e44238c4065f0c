package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/mrvoxel/mddiff/internal/core/annotate"
	"github.com/mrvoxel/mddiff/internal/core/git"
	"github.com/mrvoxel/mddiff/internal/printer"
	"github.com/mrvoxel/mddiff/internal/render"
	"github.com/mrvoxel/mddiff/pkg/executil"
)

// RenderCmd is the root action: acquire a diff from exactly one source,
// annotate it, and render the HTML report (or a terminal preview).
type RenderCmd struct {
	flags *Flags

	outfile  string
	diffPath string
	stdin    bool
	repo     string
	sha      string
	branch   string
	wordDiff bool
	preview  bool
	template string
}

// NewRenderCmd creates the render command.
func NewRenderCmd(flags *Flags) *RenderCmd {
	return &RenderCmd{flags: flags}
}

// Flags returns the render flags, registered on the root command.
func (cmd *RenderCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "outfile",
			Usage:       "output HTML file path",
			Destination: &cmd.outfile,
		},
		&cli.StringFlag{
			Name:        "diff",
			Usage:       "read the diff from a file",
			Destination: &cmd.diffPath,
		},
		&cli.BoolFlag{
			Name:        "stdin",
			Usage:       "read the diff from standard input",
			Destination: &cmd.stdin,
		},
		&cli.StringFlag{
			Name:        "repo",
			Usage:       "path of the repository (use with --sha or --branch)",
			Destination: &cmd.repo,
		},
		&cli.StringFlag{
			Name:        "sha",
			Usage:       "render the diff of a single commit (use with --repo)",
			Destination: &cmd.sha,
		},
		&cli.StringFlag{
			Name:        "branch",
			Usage:       "render the whole diff of a branch (use with --repo)",
			Destination: &cmd.branch,
		},
		&cli.BoolFlag{
			Name:        "word-diff",
			Usage:       "treat the diff as a word-level diff",
			Destination: &cmd.wordDiff,
		},
		&cli.BoolFlag{
			Name:        "preview",
			Usage:       "render to the terminal instead of writing HTML",
			Destination: &cmd.preview,
		},
		&cli.StringFlag{
			Name:        "template",
			Usage:       "path to an HTML template overriding the built-in one",
			Destination: &cmd.template,
		},
	}
}

// Run executes the pipeline.
func (cmd *RenderCmd) Run(ctx context.Context, c *cli.Command) error {
	if err := cmd.validateSource(); err != nil {
		return err
	}

	cfg := cmd.flags.Config

	lines, err := cmd.acquire(ctx)
	if err != nil {
		return err
	}
	log.Debug().Int("lines", len(lines)).Msg("acquired diff")

	markup := annotate.HTMLMarkup(cfg.Highlight.AddColor, cfg.Highlight.RemoveColor)
	annotated, err := annotate.New(markup).Annotate(lines)
	if err != nil {
		return fmt.Errorf("annotate diff: %w", err)
	}

	if cmd.preview {
		return render.Preview(os.Stdout, annotated)
	}

	tmplPath := cmd.template
	if tmplPath == "" {
		tmplPath = cfg.Template
	}
	renderer, err := render.New(render.Options{
		TemplatePath: tmplPath,
		Entities:     cfg.Entities,
	})
	if err != nil {
		return err
	}

	outfile := cmd.outfile
	if outfile == "" {
		outfile = cfg.Outfile
	}
	if err := renderer.WriteFile(outfile, annotated); err != nil {
		return err
	}

	printer.Ctx(ctx).Successf("Wrote %s", outfile)
	return nil
}

// validateSource enforces the exactly-one-source rule before any file or
// process work happens.
func (cmd *RenderCmd) validateSource() error {
	sources := 0
	if cmd.diffPath != "" {
		sources++
	}
	if cmd.stdin {
		sources++
	}
	if cmd.repo != "" {
		sources++
	}
	if sources != 1 {
		return errors.New("must choose between passing a diff file, stdin, or using a repository")
	}

	if cmd.repo != "" {
		if cmd.sha != "" && cmd.branch != "" {
			return errors.New("choose a sha or a branch, not both")
		}
		if cmd.sha == "" && cmd.branch == "" {
			return errors.New("must use --sha or --branch with --repo")
		}
	} else if cmd.sha != "" || cmd.branch != "" {
		return errors.New("--sha and --branch require --repo")
	}

	return nil
}

// acquire returns the diff lines from the selected source.
func (cmd *RenderCmd) acquire(ctx context.Context) ([]string, error) {
	cfg := cmd.flags.Config

	switch {
	case cmd.diffPath != "":
		data, err := os.ReadFile(cmd.diffPath)
		if err != nil {
			return nil, fmt.Errorf("read diff file: %w", err)
		}
		return strings.Split(string(data), "\n"), nil

	case cmd.stdin:
		return nil, errors.New("reading the diff from stdin is not implemented")

	default:
		gitExec := git.NewExecutor(cfg.GitPath, &executil.RealExecutor{})
		opts := git.DiffOptions{Unified: cfg.Unified, WordDiff: cmd.wordDiff}

		if cmd.sha != "" {
			return gitExec.Show(ctx, cmd.repo, cmd.sha, opts)
		}
		return gitExec.DiffBranch(ctx, cmd.repo, cmd.branch, opts)
	}
}
