// Command tester-selftest runs the recorder's self-test and
// prints its summary.
package main

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"digital.vasic.tester/internal/selftest"
	"digital.vasic.tester/pkg/env"
	"digital.vasic.tester/pkg/logging"
	"digital.vasic.tester/pkg/metrics"
	"digital.vasic.tester/pkg/report"
	"digital.vasic.tester/pkg/tester"
)

// errAssertionsFailed signals a non-zero exit without printing
// an extra error line.
var errAssertionsFailed = errors.New("meta assertions failed")

type options struct {
	configPath string
	envFile    string
	outputPath string
	plain      bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "tester-selftest",
		Short:         "Run the assertion recorder against itself",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "YAML config file")
	flags.StringVar(&opts.envFile, "env-file", "", ".env file with TESTER_* settings")
	flags.StringVarP(&opts.outputPath, "output", "o", "", "also write the summary to this file")
	flags.BoolVar(&opts.plain, "plain", true, "plain-text summary without <PRE> markup")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every recorded assertion")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	cfg := tester.NewConfig()
	if opts.configPath != "" {
		loaded, err := tester.LoadConfig(opts.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	loader := env.NewLoader()
	if opts.envFile != "" {
		if err := loader.Load(opts.envFile); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Verbose = opts.verbose
	}
	if flags.Changed("output") {
		cfg.OutputPath = opts.outputPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	recorderOpts := []tester.Option{
		tester.WithPlainText(env.DetectPlainTextFrom(loader.Get)),
		tester.WithConfig(cfg),
	}
	if flags.Changed("plain") {
		recorderOpts = append(recorderOpts, tester.WithPlainText(opts.plain))
	}

	var logger logging.Logger = logging.NullLogger{}
	if cfg.Verbose {
		logger = logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), true)
	}
	defer logger.Close()

	newRecorder := func(name string, extra ...tester.Option) *tester.Recorder {
		o := slices.Clone(recorderOpts)
		o = append(o, tester.WithLogger(
			logger.WithFields(logging.StringField("recorder", name)),
		))
		return tester.New(append(o, extra...)...)
	}

	counters := metrics.NewCounters()
	meta := newRecorder("meta")
	subject := newRecorder("subject", tester.WithMetrics(counters))

	selftest.Run(meta, subject)

	logger.Info("self-test finished",
		logging.IntField("subject_total", counters.Total()),
		logging.IntField("meta_failed", meta.CountFailed()),
	)

	if err := report.WriteSummary(cmd.OutOrStdout(), meta); err != nil {
		return err
	}
	if cfg.OutputPath != "" {
		if err := report.SaveSummary(meta, cfg.OutputPath); err != nil {
			return err
		}
	}

	if report.ExitCode(meta) != 0 {
		return errAssertionsFailed
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errAssertionsFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
