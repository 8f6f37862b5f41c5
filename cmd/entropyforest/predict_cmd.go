package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/entropyforest/core/model"
	"github.com/YuminosukeSato/entropyforest/metrics"
	"github.com/YuminosukeSato/entropyforest/pkg/config"
	"github.com/YuminosukeSato/entropyforest/pkg/dataio"
	"github.com/YuminosukeSato/entropyforest/pkg/errors"
	"github.com/YuminosukeSato/entropyforest/sklearn/ensemble"
)

type predictCmdConfig struct {
	*rootCmdConfig
	modelPath string
	data      string
	separator string
}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	pc := &predictCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "predict [feature...]",
		Short: "Classify a feature vector, or score a labelled file, with a saved model",
		Long: `Load a model written by "train --output" and either classify the feature
values given as arguments or report the accuracy on a labelled data file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pc.Validate(args); err != nil {
				return err
			}
			var snap ensemble.Snapshot
			if err := model.LoadModel(&snap, pc.modelPath); err != nil {
				return err
			}
			r := newRunner(cmd.OutOrStdout())

			if pc.data != "" {
				ds, err := dataio.Load(pc.data, pc.separator)
				if err != nil {
					return err
				}
				pred, err := snap.PredictBatch(ds.X)
				if err != nil {
					return err
				}
				acc, err := metrics.AccuracyLabels(pred, ds.Y)
				if err != nil {
					return err
				}
				fmt.Fprintf(r.out, "Accuracy: %s (%d rows)\n", r.green(percent(acc)), ds.Len())
				return nil
			}

			x, err := parseFeatures(args)
			if err != nil {
				return err
			}
			label, err := snap.Predict(x)
			if err != nil {
				return err
			}
			fmt.Fprintf(r.out, "Classification: %s\n", r.green(label))
			return nil
		},
	}
	cmd.Flags().StringVar(&pc.modelPath, "model", "", "path to a saved model (required)")
	cmd.Flags().StringVarP(&pc.data, "data", "d", "", "labelled data file to score instead of classifying arguments")
	cmd.Flags().StringVar(&pc.separator, "separator", config.SeparatorComma, "field separator of --data: comma or space")
	return cmd
}

func (pc *predictCmdConfig) Validate(args []string) error {
	if pc.modelPath == "" {
		return errors.New("required model flag was not set")
	}
	if pc.data == "" && len(args) == 0 {
		return errors.New("give feature values as arguments or a file with --data")
	}
	return nil
}

func parseFeatures(fields []string) ([]float64, error) {
	x := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.NewValidationError("features", "not a number", f)
		}
		x[i] = v
	}
	return x, nil
}
