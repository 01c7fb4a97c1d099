package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/urfave/cli/v2"
	slogctx "github.com/veqryn/slog-context"

	"github.com/calumari/gmockgen/internal/generator"
)

// deriveVersion inspects build info for module version or vcs revision.
// preference order: module semantic version -> short commit hash -> "devel".
func deriveVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			return bi.Main.Version
		}
		var revision string
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				revision = s.Value
				break
			}
		}
		if len(revision) >= 12 { // short hash for readability
			return revision[:12]
		}
		if revision != "" {
			return revision
		}
	}
	return "devel"
}

func main() {
	app := &cli.App{
		Name:    "gmockgen",
		Usage:   "generate Google Mock classes from C++ interface headers",
		Version: deriveVersion(),
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "`PATH` of an interface header to mock (repeatable)",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "output `DIR` for generated files, created on demand",
				Value:   ".",
			},
			&cli.StringFlag{
				Name:    "expr",
				Aliases: []string{"e"},
				Usage:   "only mock classes whose qualified path starts with `PREFIX` (e.g. app::io)",
			},
			&cli.StringFlag{
				Name:    "parser-lib",
				Aliases: []string{"l"},
				Usage:   "`PATH` of a tree-sitter C++ grammar shared library to use instead of the bundled one",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "`PATH` of a YAML file overriding naming, macro, template and formatting settings",
			},
			&cli.BoolFlag{
				Name:  "no-format",
				Usage: "skip the clang-format pass over generated files",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log every processed class and written file",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "gmockgen: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	level := slog.LevelWarn
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	ctx := slogctx.NewCtx(c.Context, logger)

	cfg := generator.DefaultConfig()
	if path := c.String("config"); path != "" {
		if err := generator.LoadConfigFile(&cfg, path); err != nil {
			return err
		}
	}
	cfg.Files = c.StringSlice("file")
	cfg.OutDir = c.String("dir")
	cfg.Expr = c.String("expr")
	cfg.ParserLib = c.String("parser-lib")
	if c.Bool("no-format") {
		cfg.NoFormat = true
	}
	cfg.Version = c.App.Version
	cfg.Command = displayCommand(c, cfg)

	return generator.Run(ctx, cfg)
}

// displayCommand builds a canonical invocation line for the generated-file
// banner instead of raw argv, which may carry build cache paths.
func displayCommand(c *cli.Context, cfg generator.Config) string {
	parts := []string{"gmockgen"}
	for _, f := range cfg.Files {
		parts = append(parts, "-f", f)
	}
	if cfg.OutDir != "." {
		parts = append(parts, "-d", cfg.OutDir)
	}
	if cfg.Expr != "" {
		parts = append(parts, "-e", cfg.Expr)
	}
	if path := c.String("config"); path != "" {
		parts = append(parts, "-c", path)
	}
	if cfg.NoFormat {
		parts = append(parts, "--no-format")
	}
	return strings.Join(parts, " ")
}
