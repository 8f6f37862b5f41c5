package errors

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestNewModelError(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		kind     string
		err      error
		wantMsg  string
		hasStack bool
	}{
		{
			name:     "with original error",
			op:       "Fit",
			kind:     "invalid input",
			err:      fmt.Errorf("test error"),
			wantMsg:  "entropyforest: Fit: invalid input: test error",
			hasStack: true,
		},
		{
			name:     "without original error",
			op:       "Predict",
			kind:     "not fitted",
			err:      nil,
			wantMsg:  "entropyforest: Predict: not fitted",
			hasStack: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewModelError(tt.op, tt.kind, tt.err)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// スタックトレースの存在確認
			if tt.hasStack {
				formatted := fmt.Sprintf("%+v", err)
				if !strings.Contains(formatted, "errors_test.go") {
					t.Error("Expected stack trace to contain test file name")
				}
			}

			var modelErr *ModelError
			if !As(err, &modelErr) {
				t.Error("Error should be castable to *ModelError")
			}
		})
	}
}

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("Predict", 3, 2, 1)

	want := "entropyforest: Predict: dimension mismatch on axis 1 (features). Expected 3, got 2"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var dimErr *DimensionError
	if !As(err, &dimErr) {
		t.Error("Error should be castable to *DimensionError")
	}
}

func TestNewDataFormatError(t *testing.T) {
	tests := []struct {
		name    string
		field   int
		value   string
		wantMsg string
	}{
		{
			name:    "bad field",
			field:   2,
			value:   "abc",
			wantMsg: `entropyforest: malformed data at line 7, field 2 ("abc"): not a number`,
		},
		{
			name:    "whole row",
			field:   -1,
			wantMsg: "entropyforest: malformed data at line 7: not a number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDataFormatError(7, tt.field, tt.value, "not a number")
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}
			var formatErr *DataFormatError
			if !As(err, &formatErr) {
				t.Fatal("Error should be castable to *DataFormatError")
			}
			if formatErr.Line != 7 {
				t.Errorf("Line = %d, want 7", formatErr.Line)
			}
		})
	}
}

func TestNewInconsistentTreeError(t *testing.T) {
	err := NewInconsistentTreeError(2, 0, 3, "left")
	want := "entropyforest: inconsistent tree: missing left child at depth 2 (feature 0, threshold 3)"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	wrapped := Wrap(err, "classify")
	var treeErr *InconsistentTreeError
	if !As(wrapped, &treeErr) {
		t.Error("wrapped error should still be castable to *InconsistentTreeError")
	}
}

func TestWarn(t *testing.T) {
	var got []error
	SetWarningHandler(func(w error) { got = append(got, w) })
	defer SetWarningHandler(func(w error) {})

	Warn(NewIgnoredParameterWarning("overlap", 20, "a single shard has no other shards to draw from"))
	Warn(NewDiscardedRowsWarning("ensemble.Partition", 3, "rows do not divide evenly into 4 shards"))

	if len(got) != 2 {
		t.Fatalf("expected 2 warnings, got %d", len(got))
	}
	if !strings.Contains(got[0].Error(), "'overlap'=20") {
		t.Errorf("unexpected warning text: %v", got[0])
	}
	if !strings.Contains(got[1].Error(), "3 rows discarded") {
		t.Errorf("unexpected warning text: %v", got[1])
	}
}

func TestWrapAndIs(t *testing.T) {
	wrapped := Wrapf(ErrEmptyData, "scoring %d predictions", 0)
	if !Is(wrapped, ErrEmptyData) {
		t.Error("Is() should find ErrEmptyData through Wrapf")
	}
	if !strings.Contains(wrapped.Error(), "scoring 0 predictions") {
		t.Errorf("unexpected message: %v", wrapped)
	}
}

func TestNumericalGuards(t *testing.T) {
	if got := SafeDivide(1, 0); got != 0 {
		t.Errorf("SafeDivide(1, 0) = %v, want 0", got)
	}
	if got := SafeDivide(1, 4); got != 0.25 {
		t.Errorf("SafeDivide(1, 4) = %v, want 0.25", got)
	}
	if got := EntropyTerm(0); got != 0 {
		t.Errorf("EntropyTerm(0) = %v, want 0", got)
	}
	if got := EntropyTerm(0.5); math.Abs(got+0.5) > 1e-12 {
		t.Errorf("EntropyTerm(0.5) = %v, want -0.5", got)
	}
	if err := CheckScalar("gain", math.NaN(), 0); err == nil {
		t.Error("CheckScalar should reject NaN")
	}
	if err := CheckScalar("threshold", math.Inf(1), 0); err == nil {
		t.Error("CheckScalar should reject Inf")
	}
	if err := CheckScalar("gain", 0.25, 0); err != nil {
		t.Errorf("CheckScalar(0.25) = %v, want nil", err)
	}
}
