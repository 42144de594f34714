package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/colorfulnotion/hashchart/bench"
	"github.com/colorfulnotion/hashchart/chart"
	"github.com/colorfulnotion/hashchart/charterrors"
	"github.com/colorfulnotion/hashchart/common"
	"github.com/colorfulnotion/hashchart/log"
	"github.com/colorfulnotion/hashchart/results"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gonum.org/v1/plot/vg"
)

const (
	defaultInput  = "results/konstitucija.txt"
	defaultOutput = "results/konstitucija.png"
	defaultCorpus = "konstitucija.txt"
)

type renderOptions struct {
	input         string
	output        string
	variant       string
	format        string
	title         string
	legendTitle   string
	width         float64
	height        float64
	skipMalformed bool
}

func addRenderFlags(fs *pflag.FlagSet, o *renderOptions) {
	fs.StringVar(&o.input, "input", defaultInput, "Results file to read")
	fs.StringVar(&o.output, "output", defaultOutput, "Chart file to write (overwritten)")
	fs.StringVar(&o.variant, "variant", "header", "Results layout: header (named series) or headerless (line count, time)")
	fs.StringVar(&o.format, "format", "", "Chart format png|svg|pdf|jpg|html (default: from --output extension)")
	fs.StringVar(&o.title, "title", chart.DefaultTitle, "Chart title")
	fs.StringVar(&o.legendTitle, "legend-title", "", "Legend title (default: algorithm for header files, none for headerless)")
	fs.Float64Var(&o.width, "width", 8, "Chart width in inches")
	fs.Float64Var(&o.height, "height", 6, "Chart height in inches")
	fs.BoolVar(&o.skipMalformed, "skip-malformed", false, "Skip malformed rows instead of failing")
}

func newRootCmd() *cobra.Command {
	var (
		logLevel     string
		debugModules string
		rootRender   renderOptions
	)

	var rootCmd = &cobra.Command{
		Use:   "hashchart",
		Short: "Chart hash benchmark results",
		Long: `hashchart reads a benchmark results file (hash time per input line count)
and renders a line chart with one series per hashing algorithm.
Without a subcommand it behaves like "hashchart render".`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			log.SetDefault(log.NewLogger(log.NewTerminalHandler(cmd.ErrOrStderr(), lvl)))
			log.EnableModules(debugModules)
			log.Debug(log.CLIModule, "Logger ready", "level", log.LevelString(lvl), "modules", debugModules)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, &rootRender)
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	addRenderFlags(rootCmd.Flags(), &rootRender)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: trace|debug|info|warn|error|crit")
	rootCmd.PersistentFlags().StringVar(&debugModules, "debug", "", "Debug modules to enable (results_mod,chart_mod,bench_mod,cli_mod)")

	rootCmd.AddCommand(newRenderCmd(), newBenchCmd(), newDescribeCmd(), newVersionCmd())
	return rootCmd
}

func newRenderCmd() *cobra.Command {
	var o renderOptions
	var renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Render a results file to a chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, &o)
		},
	}
	addRenderFlags(renderCmd.Flags(), &o)
	return renderCmd
}

func runRender(cmd *cobra.Command, o *renderOptions) error {
	variant, err := results.ParseFormat(o.variant)
	if err != nil {
		return err
	}
	cfg := chart.DefaultConfig(variant)
	cfg.Title = o.title
	if cmd.Flags().Changed("legend-title") {
		cfg.LegendTitle = o.legendTitle
	}
	if !(o.width > 0) || !(o.height > 0) {
		return fmt.Errorf("--width %g --height %g: %w", o.width, o.height, charterrors.ErrBadSize)
	}
	cfg.Width = vg.Length(o.width) * vg.Inch
	cfg.Height = vg.Length(o.height) * vg.Inch
	if o.format != "" {
		if cfg.Format, err = chart.ParseOutputFormat(o.format); err != nil {
			return err
		}
	}

	tbl, err := results.Load(o.input, results.ParseOptions{Format: variant, SkipMalformed: o.skipMalformed})
	if err != nil {
		if errors.Is(err, charterrors.ErrMissingInput) {
			fmt.Fprintln(cmd.OutOrStdout(), charterrors.GetErrorDesc(err))
		}
		return err
	}
	log.Debug(log.CLIModule, "Rendering", "input", o.input, "output", o.output, "variant", variant, "skipped", len(tbl.Skipped))
	return chart.Render(tbl, cfg, o.output)
}

func newBenchCmd() *cobra.Command {
	var (
		corpus  string
		output  string
		variant string
		hashers []string
		runs    int
	)
	var benchCmd = &cobra.Command{
		Use:   "bench",
		Short: "Time hashers over growing prefixes of a corpus and write a results file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := results.ParseFormat(variant)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			tbl, err := bench.Run(ctx, bench.Options{Corpus: corpus, Hashers: hashers, Runs: runs, Format: format})
			if err != nil {
				return err
			}
			if err := results.Save(output, tbl, format); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated: %s (%d rows, %d hashers)\n", output, len(tbl.Rows), len(tbl.Series))
			return nil
		},
	}
	benchCmd.Flags().StringVar(&corpus, "corpus", defaultCorpus, "Text whose leading lines are hashed")
	benchCmd.Flags().StringVar(&output, "output", defaultInput, "Results file to write")
	benchCmd.Flags().StringVar(&variant, "variant", "header", "Results layout: header or headerless (needs exactly one hasher)")
	benchCmd.Flags().StringSliceVar(&hashers, "hashers", nil, fmt.Sprintf("Hashers to measure (default all: %v)", bench.Names()))
	benchCmd.Flags().IntVar(&runs, "runs", bench.DefaultRuns, "Passes averaged per line count")
	return benchCmd
}

func newDescribeCmd() *cobra.Command {
	var (
		input         string
		variant       string
		skipMalformed bool
	)
	var describeCmd = &cobra.Command{
		Use:   "describe",
		Short: "Print a tree summary of a results file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := results.ParseFormat(variant)
			if err != nil {
				return err
			}
			tbl, err := results.Load(input, results.ParseOptions{Format: format, SkipMalformed: skipMalformed})
			if err != nil {
				if errors.Is(err, charterrors.ErrMissingInput) {
					fmt.Fprintln(cmd.OutOrStdout(), charterrors.GetErrorDesc(err))
				}
				return err
			}
			color := false
			if f, ok := cmd.OutOrStdout().(*os.File); ok {
				color = isatty.IsTerminal(f.Fd())
			}
			fmt.Fprint(cmd.OutOrStdout(), results.Describe(filepath.Base(input), tbl, color))
			return nil
		},
	}
	describeCmd.Flags().StringVar(&input, "input", defaultInput, "Results file to read")
	describeCmd.Flags().StringVar(&variant, "variant", "header", "Results layout: header or headerless")
	describeCmd.Flags().BoolVar(&skipMalformed, "skip-malformed", true, "List malformed rows instead of failing")
	return describeCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and commit",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hashchart %s (commit %s)\n", common.Version, common.GetCommitHash())
		},
	}
}
