package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/entropyforest/pkg/errors"
)

func TestAccuracyLabels(t *testing.T) {
	tests := []struct {
		name    string
		pred    []int
		actual  []int
		want    float64
		wantErr bool
	}{
		{
			name:   "two of three",
			pred:   []int{1, 1, 0},
			actual: []int{1, 0, 0},
			want:   2.0 / 3.0,
		},
		{
			name:   "perfect",
			pred:   []int{3, 4},
			actual: []int{3, 4},
			want:   1.0,
		},
		{
			name:   "all wrong",
			pred:   []int{0, 0},
			actual: []int{1, 1},
			want:   0.0,
		},
		{
			name:    "length mismatch",
			pred:    []int{1},
			actual:  []int{1, 0},
			wantErr: true,
		},
		{
			name:    "empty",
			pred:    []int{},
			actual:  []int{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AccuracyLabels(tt.pred, tt.actual)
			if (err != nil) != tt.wantErr {
				t.Errorf("AccuracyLabels() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("AccuracyLabels() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAccuracyEmptyIsErrEmptyData(t *testing.T) {
	_, err := AccuracyLabels(nil, nil)
	if !errors.Is(err, errors.ErrEmptyData) {
		t.Errorf("expected ErrEmptyData, got %v", err)
	}
}

func TestAccuracyVectors(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   *mat.VecDense
		yPred   *mat.VecDense
		want    float64
		wantErr bool
	}{
		{
			name:  "two of three",
			yTrue: mat.NewVecDense(3, []float64{1, 0, 0}),
			yPred: mat.NewVecDense(3, []float64{1, 1, 0}),
			want:  2.0 / 3.0,
		},
		{
			name:    "dimension mismatch",
			yTrue:   mat.NewVecDense(3, []float64{1, 0, 0}),
			yPred:   mat.NewVecDense(2, []float64{1, 0}),
			wantErr: true,
		},
		{
			name:    "empty vectors",
			yTrue:   &mat.VecDense{},
			yPred:   &mat.VecDense{},
			wantErr: true,
		},
		{
			name:    "nil vector",
			yTrue:   nil,
			yPred:   mat.NewVecDense(1, []float64{1}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Accuracy(tt.yTrue, tt.yPred)
			if (err != nil) != tt.wantErr {
				t.Errorf("Accuracy() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Accuracy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAccuracyMatrix(t *testing.T) {
	got, err := AccuracyMatrix(
		mat.NewDense(4, 1, []float64{0, 1, 1, 2}),
		mat.NewDense(4, 1, []float64{0, 1, 2, 2}),
	)
	if err != nil {
		t.Fatalf("AccuracyMatrix() error = %v", err)
	}
	if got != 0.75 {
		t.Errorf("AccuracyMatrix() = %v, want 0.75", got)
	}

	if _, err := AccuracyMatrix(mat.NewDense(2, 2, nil), mat.NewDense(2, 2, nil)); err == nil {
		t.Error("multi-column input should be rejected")
	}
}

func TestConfusionMatrix(t *testing.T) {
	m, labels, err := ConfusionMatrix([]int{1, 1, 0, 2}, []int{1, 0, 0, 1})
	if err != nil {
		t.Fatalf("ConfusionMatrix() error = %v", err)
	}
	if len(labels) != 3 || labels[0] != 0 || labels[2] != 2 {
		t.Fatalf("labels = %v, want [0 1 2]", labels)
	}
	want := [][]float64{
		{1, 1, 0}, // actual 0: predicted 0 once, 1 once
		{0, 1, 1}, // actual 1: predicted 1 once, 2 once
		{0, 0, 0},
	}
	for i := range want {
		for j := range want[i] {
			if m.At(i, j) != want[i][j] {
				t.Errorf("m[%d][%d] = %v, want %v", i, j, m.At(i, j), want[i][j])
			}
		}
	}
}
