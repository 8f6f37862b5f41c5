package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/entropyforest/core/dataset"
	"github.com/YuminosukeSato/entropyforest/core/model"
	"github.com/YuminosukeSato/entropyforest/metrics"
	"github.com/YuminosukeSato/entropyforest/pkg/chart"
	"github.com/YuminosukeSato/entropyforest/pkg/config"
	"github.com/YuminosukeSato/entropyforest/pkg/dataio"
	"github.com/YuminosukeSato/entropyforest/pkg/errors"
	"github.com/YuminosukeSato/entropyforest/pkg/log"
	"github.com/YuminosukeSato/entropyforest/sklearn/ensemble"
	"github.com/YuminosukeSato/entropyforest/sklearn/tree"
)

var errMissingData = errors.New("no data file given (set --data or data: in --config)")

// runner executes one training run and prints a human-readable report.
type runner struct {
	out io.Writer

	green  func(a ...interface{}) string
	yellow func(a ...interface{}) string
	cyan   func(a ...interface{}) string
}

func newRunner(out io.Writer) *runner {
	return &runner{
		out:    out,
		green:  color.New(color.FgGreen).SprintFunc(),
		yellow: color.New(color.FgYellow).SprintFunc(),
		cyan:   color.New(color.FgCyan).SprintFunc(),
	}
}

// report is the outcome of a run.
type report struct {
	Snapshot *ensemble.Snapshot
	Accuracy float64
	PerTree  []float64
	Duration time.Duration
	Train    int
	Test     int
}

func (r *runner) run(cfg config.Config) (*report, error) {
	logger := log.GetLoggerWithName("cli")

	ds, err := dataio.Load(cfg.Data, cfg.Separator)
	if err != nil {
		return nil, err
	}

	seed := cfg.RandomState
	if seed < 0 {
		seed = time.Now().UnixNano()
	}
	train, test, err := dataset.TrainTestSplit(ds, cfg.TrainRatio, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}

	start := time.Now()
	snap, err := r.fit(cfg, train, seed)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)
	fmt.Fprintf(r.out, "Training completed in %s\n", r.cyan(elapsed.Round(time.Millisecond)))

	pred, err := snap.PredictBatch(test.X)
	if err != nil {
		return nil, err
	}
	acc, err := metrics.AccuracyLabels(pred, test.Y)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(r.out, "Accuracy: %s (%d test rows)\n", r.green(percent(acc)), test.Len())
	confusion, labels, err := metrics.ConfusionMatrix(pred, test.Y)
	if err != nil {
		return nil, err
	}
	writeConfusion(r.out, confusion, labels)

	rep := &report{Snapshot: snap, Accuracy: acc, Duration: elapsed, Train: train.Len(), Test: test.Len()}
	if len(snap.Roots) > 1 {
		if rep.PerTree, err = perTreeAccuracy(snap.Roots, test); err != nil {
			return nil, err
		}
	}

	logger.Info("Run finished",
		log.ModelNameKey, snap.Mode,
		log.SamplesKey, ds.Len(),
		log.AccuracyKey, acc,
		log.DurationMsKey, elapsed.Milliseconds(),
	)

	if err := r.export(cfg, snap.Roots); err != nil {
		return nil, err
	}
	if cfg.Plot != "" {
		if err := chart.Accuracy(snap.Mode+" accuracy", chart.TreeBars(rep.PerTree, acc), cfg.Plot); err != nil {
			return nil, err
		}
		fmt.Fprintf(r.out, "Chart written to %s\n", cfg.Plot)
	}
	if cfg.ModelOut != "" {
		if err := model.SaveModel(snap, cfg.ModelOut); err != nil {
			return nil, err
		}
		fmt.Fprintf(r.out, "Model saved to %s\n", cfg.ModelOut)
	}
	return rep, nil
}

func (r *runner) fit(cfg config.Config, train dataset.Dataset, seed int64) (*ensemble.Snapshot, error) {
	switch cfg.Mode {
	case config.ModeBagging, config.ModeForest:
		opts := []ensemble.Option{
			ensemble.WithNEstimators(cfg.NEstimators),
			ensemble.WithOverlap(cfg.Overlap),
			ensemble.WithMaxDepth(cfg.MaxDepth),
			ensemble.WithRandomState(seed),
		}
		kind := "trees"
		if cfg.Mode == config.ModeForest {
			kind = "random forests"
		}
		fmt.Fprintf(r.out, "Training %s %s with %s%% overlap...\n", r.yellow(cfg.NEstimators), kind, r.yellow(cfg.Overlap))

		if cfg.Mode == config.ModeBagging {
			clf := ensemble.NewBaggingClassifier(opts...)
			if err := clf.FitDataset(train); err != nil {
				return nil, err
			}
			return clf.Snapshot()
		}
		clf := ensemble.NewRandomForestClassifier(opts...)
		if err := clf.FitDataset(train); err != nil {
			return nil, err
		}
		return clf.Snapshot()

	default:
		fmt.Fprintln(r.out, "Training decision tree...")
		dt := tree.NewDecisionTreeClassifier(tree.WithMaxDepth(cfg.MaxDepth), tree.WithRandomState(seed))
		if err := dt.FitDataset(train); err != nil {
			return nil, err
		}
		return ensemble.TreeSnapshot(dt)
	}
}

// export writes the node/edge CSV pair, and optionally a DOT file, for every tree.
func (r *runner) export(cfg config.Config, roots []tree.Node) error {
	if cfg.ExportPrefix == "" {
		return nil
	}
	for i, root := range roots {
		name := cfg.ExportPrefix
		if len(roots) > 1 {
			name += "-" + strconv.Itoa(i)
		}
		nodes, edges, err := tree.WriteCSV(root, cfg.ExportDir, name)
		if err != nil {
			return err
		}
		fmt.Fprintf(r.out, "Exported %s, %s\n", nodes, edges)

		if !cfg.DOT {
			continue
		}
		dot, err := tree.ToDOT(root)
		if err != nil {
			return err
		}
		path := filepath.Join(cfg.ExportDir, name+".dot")
		if err := writeString(path, dot); err != nil {
			return err
		}
		fmt.Fprintf(r.out, "Exported %s\n", path)
	}
	return nil
}

func perTreeAccuracy(roots []tree.Node, test dataset.Dataset) ([]float64, error) {
	accs := make([]float64, len(roots))
	for i, root := range roots {
		pred, err := tree.ClassifyBatch(root, test.X)
		if err != nil {
			return nil, errors.Wrapf(err, "tree %d", i)
		}
		if accs[i], err = metrics.AccuracyLabels(pred, test.Y); err != nil {
			return nil, err
		}
	}
	return accs, nil
}

// writeConfusion prints the confusion matrix with actual labels as rows.
func writeConfusion(w io.Writer, m *mat.Dense, labels []int) {
	fmt.Fprintln(w, "Confusion matrix (rows actual, columns predicted):")
	fmt.Fprintf(w, "%6s", "")
	for _, l := range labels {
		fmt.Fprintf(w, "%6d", l)
	}
	fmt.Fprintln(w)
	for i, l := range labels {
		fmt.Fprintf(w, "%6d", l)
		for j := range labels {
			fmt.Fprintf(w, "%6.0f", m.At(i, j))
		}
		fmt.Fprintln(w)
	}
}

// percent renders an accuracy ratio as a percentage with two decimals.
func percent(acc float64) string {
	return decimal.NewFromFloat(acc).Mul(decimal.NewFromInt(100)).Round(2).StringFixed(2) + "%"
}

func writeString(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}
