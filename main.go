package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/mrvoxel/mddiff/internal/commands"
	"github.com/mrvoxel/mddiff/internal/core/config"
	"github.com/mrvoxel/mddiff/internal/printer"
	"github.com/mrvoxel/mddiff/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := printer.WithCtx(context.Background(), printer.New(os.Stderr))

	var logCloser func()

	flags := &commands.Flags{}
	renderCmd := commands.NewRenderCmd(flags)

	app := &cli.Command{
		Name:      "mddiff",
		Usage:     "Create a human-readable HTML report from a git diff",
		UsageText: "mddiff [global options] --diff <path> | --repo <path> (--sha <sha> | --branch <name>)",
		Description: `mddiff converts a unified git diff into an HTML report: file boundaries
become headed sections and added/removed content is color-highlighted.

The diff comes from exactly one source: a diff file (--diff), standard
input (--stdin), or a git repository (--repo with --sha or --branch).`,
		Version: build(),
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("MDDIFF_LOG_LEVEL"),
				Value:       "warn",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to stderr)",
				Sources:     cli.EnvVars("MDDIFF_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("MDDIFF_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
		}, renderCmd.Flags()...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() > 0 {
				return fmt.Errorf("unknown argument %q. Run 'mddiff --help' for usage", c.Args().First())
			}
			return renderCmd.Run(ctx, c)
		},
	}

	exitCode := 0
	if runErr := app.Run(ctx, os.Args); runErr != nil {
		printer.Ctx(ctx).Errorf("%s", runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
