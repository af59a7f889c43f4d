package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"ngmap/internal/analyzer"
	"ngmap/internal/config"
	"ngmap/internal/errors"
	"ngmap/internal/project"
	"ngmap/internal/render"
	"ngmap/internal/slogutil"
	"ngmap/internal/version"
)

var (
	includeTests       bool
	includeStyles      bool
	includeNodeModules bool
	maxDepth           int
	jsonOutput         bool
	outputFormat       string
	outputPath         string
	noColor            bool
	verbosity          int
	quiet              bool
	concurrency        int
)

var rootCmd = &cobra.Command{
	Use:   "ngmap [path]",
	Short: "ngmap - structural map of an Angular project",
	Long: `ngmap extracts structural facts from an Angular workspace without compiling it:
declared components and services, NgModule composition, import graphs and
routing trees.

Without a subcommand, prints the project structure with a per-type summary.

Examples:
  ngmap
  ngmap ./shop --include-tests
  ngmap components ./shop --detailed
  ngmap dependencies --graph
  ngmap routes --format=yaml -o routes.yaml.gz`,
	Args:          cobra.MaximumNArgs(1),
	Version:       version.Info(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runStructure,
}

func init() {
	rootCmd.SetVersionTemplate("ngmap version {{.Version}}\n")

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&includeTests, "include-tests", "t", false, "Include test files (*.spec.ts)")
	flags.BoolVarP(&includeStyles, "include-styles", "s", false, "Include style files (css, scss, sass, less)")
	flags.BoolVar(&includeNodeModules, "include-node-modules", false, "Descend into node_modules")
	flags.IntVarP(&maxDepth, "max-depth", "m", 10, "Maximum directory depth of the structure tree")
	flags.BoolVarP(&jsonOutput, "json", "j", false, "Shortcut for --format=json")
	flags.StringVar(&outputFormat, "format", "text", "Output format (text, json, yaml, toml)")
	flags.StringVarP(&outputPath, "output", "o", "", "Write the report to a file; .gz and .zst are compressed")
	flags.BoolVar(&noColor, "no-color", false, "Disable colored text output")
	flags.CountVarP(&verbosity, "verbose", "v", "Log progress to stderr (-vv for debug)")
	flags.BoolVarP(&quiet, "quiet", "q", false, "Suppress all logging")
	flags.IntVar(&concurrency, "concurrency", 8, "Files read and analyzed in parallel")

	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}

// session is the state shared by every analysis command of one run.
type session struct {
	root     string
	cfg      *config.Config
	format   render.Format
	info     project.Info
	logger   *slog.Logger
	logClose io.Closer
	analyzer *analyzer.Analyzer
}

// newSession resolves the project root, loads configuration with flags layered
// on top, and builds the logger and analyzer.
func newSession(cmd *cobra.Command, args []string) (*session, error) {
	root, err := projectRoot(args)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfig(root)
	if err != nil {
		return nil, errors.NewError(errors.ConfigInvalid, "failed to load "+config.Path(root), err)
	}
	applyFlags(cmd, cfg)

	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.NewError(errors.ConfigInvalid, "invalid configuration", err)
	}

	level := slogutil.LevelFromString(cfg.Logging.Level)
	if verbosity > 0 || quiet {
		level = slogutil.LevelFromVerbosity(verbosity, quiet)
	}
	logger, logClose, err := slogutil.New(slogutil.Options{
		Format: cfg.Logging.Format,
		Level:  level,
		Output: cmd.ErrOrStderr(),
		File:   cfg.Logging.File,
	})
	if err != nil {
		return nil, errors.NewError(errors.ConfigInvalid, "cannot open log file "+cfg.Logging.File, err)
	}

	info := project.Detect(root)
	if info.Framework != project.FrameworkAngular {
		logger.Warn("No Angular workspace detected, results may be incomplete", "root", root)
	} else {
		logger.Debug("Detected workspace",
			"framework", info.Framework.DisplayName(),
			"manifest", info.Manifest,
			"version", info.Version)
	}

	return &session{
		root:     root,
		cfg:      cfg,
		format:   format,
		info:     info,
		logger:   logger,
		logClose: logClose,
		analyzer: analyzer.New(root, cfg, logger),
	}, nil
}

// applyFlags copies explicitly set flags over the loaded configuration.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed

	if changed("include-tests") {
		cfg.Analysis.IncludeTests = includeTests
	}
	if changed("include-styles") {
		cfg.Analysis.IncludeStyles = includeStyles
	}
	if changed("include-node-modules") {
		cfg.Analysis.IncludeNodeModules = includeNodeModules
	}
	if changed("max-depth") {
		cfg.Analysis.MaxDepth = maxDepth
	}
	if changed("concurrency") {
		cfg.Analysis.Concurrency = concurrency
	}
	if changed("format") {
		cfg.Output.Format = outputFormat
	}
	if jsonOutput {
		cfg.Output.Format = string(render.FormatJSON)
	}
	if noColor {
		cfg.Output.Color = "never"
	}
}

func (s *session) Close() {
	_ = s.logClose.Close()
}

// emit writes one result either as text through draw or as a structured report.
func (s *session) emit(kind string, count int, data any, draw func(*render.Printer)) error {
	w, err := render.OpenOutput(outputPath)
	if err != nil {
		return errors.NewError(errors.OutputFailed, "cannot open "+outputPath, err)
	}

	if s.format == render.FormatText {
		var colorTarget io.Writer = w
		if outputPath == "" || outputPath == "-" {
			colorTarget = os.Stdout
		}
		pr := render.NewPrinter(w, render.ColorEnabled(s.cfg.Output.Color, colorTarget))
		draw(pr)
		err = pr.Err()
	} else {
		err = render.Encode(w, s.format, render.NewReport(kind, s.root, count, data).WithProject(s.info))
	}
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return errors.NewError(errors.OutputFailed, fmt.Sprintf("failed to write %s report", kind), err)
	}

	s.logger.Info("Report written", "kind", kind, "count", count, "format", string(s.format))
	return nil
}

// newContext returns a context cancelled on interrupt.
func newContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// withSession runs fn with a fresh session and interrupt-aware context.
func withSession(fn func(ctx context.Context, s *session) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd, args)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx, cancel := newContext()
		defer cancel()
		return fn(ctx, s)
	}
}

var runStructure = withSession(func(ctx context.Context, s *session) error {
	structure, err := s.analyzer.Structure(ctx)
	if err != nil {
		return err
	}
	_, total := analyzer.Summary(structure)
	return s.emit("structure", total, structure, func(pr *render.Printer) {
		pr.Structure(structure)
	})
})
