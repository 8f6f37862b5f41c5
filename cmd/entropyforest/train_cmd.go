package main

import (
	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/entropyforest/pkg/config"
)

func trainCmd(rootConfig *rootCmdConfig) *cobra.Command {
	flags := config.Default()
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a tree, bagging ensemble or random forest and score it",
		Long: `Train a model on a random share of the rows of a data file and report its
accuracy on the remaining rows. Flags override the values of --config.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rootConfig.baseConfig(cmd)
			if err != nil {
				return err
			}
			applyTrainFlags(cmd, &cfg, flags)
			if cfg.Data == "" {
				return errMissingData
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			_, err = newRunner(cmd.OutOrStdout()).run(cfg)
			return err
		},
	}
	f := cmd.Flags()
	f.StringVarP(&flags.Data, "data", "d", "", "path to the data file (required)")
	f.StringVar(&flags.Separator, "separator", flags.Separator, "field separator: comma or space")
	f.Float64Var(&flags.TrainRatio, "ratio", flags.TrainRatio, "percentage of rows used for training")
	f.IntVar(&flags.MaxDepth, "max-depth", flags.MaxDepth, "maximum tree depth (0 for no limit)")
	f.StringVarP(&flags.Mode, "mode", "m", flags.Mode, "model: tree, bagging or forest")
	f.IntVarP(&flags.NEstimators, "estimators", "k", flags.NEstimators, "number of trees (bagging and forest)")
	f.IntVar(&flags.Overlap, "overlap", flags.Overlap, "percentage of shard overlap (bagging and forest)")
	f.Int64Var(&flags.RandomState, "seed", flags.RandomState, "random seed (negative for time-based)")
	f.StringVar(&flags.ExportPrefix, "export", flags.ExportPrefix, "write nodes-<name>.csv and edges-<name>.csv for every tree")
	f.StringVar(&flags.ExportDir, "export-dir", flags.ExportDir, "directory for exported files")
	f.BoolVar(&flags.DOT, "dot", flags.DOT, "also write a Graphviz <name>.dot file per tree (requires --export)")
	f.StringVar(&flags.Plot, "plot", flags.Plot, "write an accuracy bar chart to this file (.png, .svg or .pdf)")
	f.StringVarP(&flags.ModelOut, "output", "o", flags.ModelOut, "save the trained model to this file")
	return cmd
}

// applyTrainFlags copies every flag set on the command line into cfg.
func applyTrainFlags(cmd *cobra.Command, cfg *config.Config, flags config.Config) {
	overrides := []struct {
		name  string
		apply func()
	}{
		{"data", func() { cfg.Data = flags.Data }},
		{"separator", func() { cfg.Separator = flags.Separator }},
		{"ratio", func() { cfg.TrainRatio = flags.TrainRatio }},
		{"max-depth", func() { cfg.MaxDepth = flags.MaxDepth }},
		{"mode", func() { cfg.Mode = flags.Mode }},
		{"estimators", func() { cfg.NEstimators = flags.NEstimators }},
		{"overlap", func() { cfg.Overlap = flags.Overlap }},
		{"seed", func() { cfg.RandomState = flags.RandomState }},
		{"export", func() { cfg.ExportPrefix = flags.ExportPrefix }},
		{"export-dir", func() { cfg.ExportDir = flags.ExportDir }},
		{"dot", func() { cfg.DOT = flags.DOT }},
		{"plot", func() { cfg.Plot = flags.Plot }},
		{"output", func() { cfg.ModelOut = flags.ModelOut }},
	}
	for _, o := range overrides {
		if cmd.Flags().Changed(o.name) {
			o.apply()
		}
	}
}
