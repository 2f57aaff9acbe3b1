package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	tocmarks "github.com/alnah/go-tocmarks"
	"github.com/alnah/go-tocmarks/internal/assets"
	"github.com/alnah/go-tocmarks/internal/config"
	"github.com/alnah/go-tocmarks/internal/fileutil"
	"github.com/alnah/go-tocmarks/internal/hints"
	"github.com/alnah/go-tocmarks/internal/logging"
	"github.com/alnah/go-tocmarks/internal/yamlutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput     = errors.New("no input file specified")
	ErrTooManyArgs = errors.New("expected a single input file")
	ErrReadInput   = errors.New("failed to read input file")
	ErrWriteOutput = errors.New("failed to write bookmark file")
)

// filePermissions is rw-r--r--: owner read+write, others read.
const filePermissions = 0o644

// runMain parses args (program name first), runs the command and returns
// the process exit code. Errors are reported on env.Stderr.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if len(args) > 0 {
		args = args[1:]
	}

	flags, positional, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(env.Stdout)
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "error: %v\n\n", err)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if flags.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "tocmarks %s\n", Version)
		return ExitSuccess
	}

	if err := run(ctx, positional, flags, env); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		if errors.Is(err, ErrNoInput) {
			fmt.Fprintln(env.Stderr)
			printUsage(env.Stderr)
		}
		return exitCodeFor(err)
	}

	return ExitSuccess
}

// run loads the configuration, converts one input file and writes the
// bookmark file.
func run(ctx context.Context, positional []string, flags *cliFlags, env *Environment) error {
	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if flags.printConfig {
		data, err := yamlutil.Encode(cfg)
		if err != nil {
			return err
		}
		_, err = env.Stdout.Write(data)
		return err
	}

	inputPath, err := resolveInputPath(positional)
	if err != nil {
		return err
	}

	logger := logging.New(env.Stderr, logging.Options{
		Level: logging.LevelFor(flags.common.quiet, flags.common.verbose),
		JSON:  flags.common.logJSON,
	})

	svc, err := buildService(cfg, logger)
	if err != nil {
		return err
	}

	markup, err := os.ReadFile(inputPath) // #nosec G304 -- input path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %v%s", ErrReadInput, err, hints.ForInputNotFound())
	}

	start := env.Now()
	doc, err := cfg.DocumentFor(start)
	if err != nil {
		return err
	}

	result, err := svc.Convert(ctx, tocmarks.Input{Markup: string(markup), Document: doc})
	if err != nil {
		return fmt.Errorf("converting %s: %w", inputPath, err)
	}

	reportStats(logger, result.Stats, env.Now().Sub(start))

	if err := fileutil.WriteFileAtomic(cfg.Output.Path, []byte(result.TeX), filePermissions); err != nil {
		return fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Generated LaTeX file with bookmarks at %s\n", cfg.Output.Path)
	}
	return nil
}

// loadConfig returns the defaults, or the named config file over them.
func loadConfig(nameOrPath string) (*config.Config, error) {
	if nameOrPath == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(nameOrPath)
	if err != nil {
		var hint string
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(nameOrPath) {
			hint = hints.ForConfigNotFound(config.SearchPaths(nameOrPath))
		}
		return nil, fmt.Errorf("loading config: %w%s", err, hint)
	}
	return cfg, nil
}

// mergeFlags overrides config values with explicitly set flags.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	// Document flags
	if flags.document.title != "" {
		cfg.Document.Title = flags.document.title
	}
	if flags.document.author != "" {
		cfg.Document.Author = flags.document.author
	}
	if flags.document.source != "" {
		cfg.Document.Source = flags.document.source
	}
	if flags.document.date != "" {
		cfg.Document.Date = flags.document.date
	}

	// Matching and output
	if flags.escapeTitles {
		cfg.Titles.Escape = true
	}
	if flags.output != "" {
		cfg.Output.Path = flags.output
	}
	if flags.assetPath != "" {
		cfg.Assets.BasePath = flags.assetPath
	}
}

// resolveInputPath returns the single positional argument.
func resolveInputPath(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "", ErrNoInput
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("%w: got %d", ErrTooManyArgs, len(args))
	}
}

// buildService wires config, template and logger into a Service.
func buildService(cfg *config.Config, logger tocmarks.Logger) (*tocmarks.Service, error) {
	resolver, err := assets.NewResolver(cfg.Assets.BasePath)
	if err != nil {
		return nil, fmt.Errorf("loading assets: %w", err)
	}

	tmpl, err := resolver.LoadTemplate(assets.BookmarksTemplate)
	if err != nil {
		return nil, fmt.Errorf("loading template: %w", err)
	}

	opts := append(cfg.Options(), tocmarks.WithTemplate(tmpl), tocmarks.WithLogger(logger))
	return tocmarks.New(opts...)
}

// reportStats logs what was kept. A run without chapters usually means the
// patterns do not fit the export.
func reportStats(logger tocmarks.Logger, stats tocmarks.Stats, elapsed time.Duration) {
	if stats.ChaptersFound == 0 {
		logger.Warn("No chapters found in the table of contents" + hints.ForNoChapters())
	}

	if dropped := stats.ChaptersDropped() + stats.SectionsDropped(); dropped > 0 {
		logger.Warn(fmt.Sprintf("Dropped %d record(s) not found in the body", dropped)+hints.ForDroppedRecords(dropped),
			"chapters", stats.ChaptersDropped(), "sections", stats.SectionsDropped())
	}

	logger.Debug("Conversion finished",
		"chapters", stats.ChaptersCorrected,
		"sections", stats.SectionsCorrected,
		"elapsed", elapsed.Round(time.Millisecond))
}
