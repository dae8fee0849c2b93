package main

import (
	"bytes"
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kytnacode/jrpcdec/bench"
)

func newRunCommand(v *viper.Viper) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Decode the corpus repeatedly with each strategy and print the time of every batch",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return errors.Wrap(v.BindPFlags(cmd.Flags()), "bind flags")
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := bench.LoadConfig(v)
			if err != nil {
				return err
			}

			registry, err := newRegistry()
			if err != nil {
				return err
			}

			strategies, err := registry.Select(cfg.Strategies)
			if err != nil {
				return err
			}

			input, err := loadInput(cfg)
			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"bytes":      len(input),
				"iterations": cfg.Iterations,
				"rounds":     cfg.Rounds,
				"workers":    cfg.Workers,
				"strategies": cfg.Strategies,
			}).Info("starting benchmark")

			reporter := bench.NewTextReporter(cmd.OutOrStdout())
			reporter.Verbose = verbose

			err = bench.NewRunner(cfg, logrus.StandardLogger(), reporter).Run(cmd.Context(), input, strategies)
			if errors.Is(err, context.Canceled) {
				logrus.Info("benchmark interrupted")
				return nil
			}

			return err
		},
	}

	addRunFlags(cmd.Flags())
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also print decodes per second and throughput")

	return cmd
}

// addRunFlags declares a flag for every configuration key, flags override the config file and
// the environment.
func addRunFlags(flags *pflag.FlagSet) {
	flags.String(bench.KeyInput, "", "corpus file, a corpus is generated when empty")
	flags.Int(bench.KeyGenerateFields, bench.DefaultGenerateFields, "unknown members of a generated corpus")
	flags.Int(bench.KeyIterations, bench.DefaultIterations, "decodes per strategy per round")
	flags.Int(bench.KeyRounds, 0, "rounds to run, 0 runs until interrupted")
	flags.Int(bench.KeyWarmup, 0, "untimed decodes per strategy before the first round")
	flags.Int(bench.KeyWorkers, bench.DefaultWorkers, "goroutines sharing the iterations of a batch")
	flags.StringSlice(bench.KeyStrategies, bench.DefaultStrategies, "strategies to run, see the strategies command")
}

// loadInput reads the configured corpus, or generates one.
func loadInput(cfg bench.Config) ([]byte, error) {
	if cfg.Input != "" {
		return bench.LoadCorpus(cfg.Input)
	}

	var buf bytes.Buffer

	if err := bench.GenerateCorpus(&buf, cfg.GenerateFields); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
