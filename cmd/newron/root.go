package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/born-ml/newron/internal/config"
	"github.com/born-ml/newron/internal/model"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "newron",
		Short:         "Train feed-forward neural networks from a YAML description",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newTrainCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "newron %s\n", version)
		},
	}
}

func newTrainCmd() *cobra.Command {
	var (
		cfgPath   string
		overrides config.Overrides
	)

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a model described by a config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg.ApplyOverrides(overrides)
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			return train(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfgPath, "config", "c", "newron.yaml", "Path to YAML config")
	flags.IntVar(&overrides.Epochs, "epochs", 0, "Override the number of epochs")
	flags.IntVar(&overrides.BatchSize, "batch-size", 0, "Override the batch size")
	flags.Uint32Var(&overrides.Seed, "seed", 0, "Override the PRNG seed")
	flags.BoolVarP(&overrides.Verbose, "verbose", "v", false, "Log every epoch")
	return cmd
}

func train(cmd *cobra.Command, cfg *config.Config) error {
	out := cmd.OutOrStdout()

	ds, err := cfg.LoadDataset()
	if err != nil {
		return err
	}
	specs, err := cfg.LayerSpecs()
	if err != nil {
		return err
	}
	loss, err := cfg.BuildLoss()
	if err != nil {
		return err
	}
	optimizer, err := cfg.BuildOptimizer()
	if err != nil {
		return err
	}
	metrics, err := cfg.BuildMetrics()
	if err != nil {
		return err
	}

	m := model.New()
	for _, spec := range specs {
		m.Add(spec)
	}
	m.SetLogger(log.New(out, "", log.LstdFlags))
	m.Compile(model.CompileConfig{
		Loss:      loss,
		Optimizer: optimizer,
		Metrics:   metrics,
		Seed:      cfg.Seed,
	})
	fmt.Fprint(out, m.Summary())

	history := m.Fit(ds, model.FitConfig{
		Epochs:    cfg.Epochs,
		BatchSize: cfg.BatchSize,
		Shuffle:   cfg.Shuffle,
		Verbose:   cfg.Verbose,
	})

	last := len(history.Loss) - 1
	fmt.Fprintf(out, "run=%s epochs=%d final_loss=%.4f", history.RunID, len(history.Loss), history.Loss[last])
	if len(history.TestLoss) > 0 {
		fmt.Fprintf(out, " test_loss=%.4f", history.TestLoss[last])
	}
	for _, metric := range metrics {
		name := metric.String()
		// Metrics are only scored on Test rows.
		if scores := history.Metrics[name]; len(scores) > 0 {
			fmt.Fprintf(out, " %s=%.4f", name, scores[len(scores)-1])
		}
	}
	fmt.Fprintln(out)
	return nil
}
