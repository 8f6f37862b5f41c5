// Package chart renders accuracy bar charts with gonum/plot.
package chart

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/entropyforest/pkg/errors"
)

// Bar is one labelled accuracy value in [0, 1].
type Bar struct {
	Label    string
	Accuracy float64
}

// TreeBars labels per-tree accuracies "tree 0", "tree 1", ... and appends the
// combined accuracy as "ensemble".
func TreeBars(perTree []float64, ensemble float64) []Bar {
	bars := make([]Bar, 0, len(perTree)+1)
	for i, acc := range perTree {
		bars = append(bars, Bar{Label: fmt.Sprintf("tree %d", i), Accuracy: acc})
	}
	return append(bars, Bar{Label: "ensemble", Accuracy: ensemble})
}

// Accuracy draws bars as a PNG, SVG or PDF chosen by the extension of filename.
func Accuracy(title string, bars []Bar, filename string) error {
	if len(bars) == 0 {
		return errors.NewValueError("chart.Accuracy", "no bars to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "accuracy"
	p.Y.Min = 0
	p.Y.Max = 1

	values := make(plotter.Values, len(bars))
	names := make([]string, len(bars))
	for i, b := range bars {
		values[i] = b.Accuracy
		names[i] = b.Label
	}

	bc, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return errors.Wrap(err, "building bar chart")
	}
	bc.LineStyle.Width = vg.Length(0)
	bc.Color = plotutil.Color(0)
	p.Add(bc)
	p.NominalX(names...)

	width := vg.Length(len(bars)) * vg.Points(40)
	if width < 4*vg.Inch {
		width = 4 * vg.Inch
	}
	if err := p.Save(width, 4*vg.Inch, filename); err != nil {
		return errors.Wrapf(err, "saving chart to %s", filename)
	}
	return nil
}
