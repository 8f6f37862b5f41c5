package metrics

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/entropyforest/pkg/errors"
)

// AccuracyLabels は予測ラベルと正解ラベルが完全一致する割合を計算する
// 空の入力はゼロ除算になるためエラーを返す
func AccuracyLabels(pred, actual []int) (float64, error) {
	n := len(pred)
	if n == 0 {
		return 0, errors.NewModelError("AccuracyLabels", "empty predictions", errors.ErrEmptyData)
	}
	if len(actual) != n {
		return 0, errors.NewDimensionError("AccuracyLabels", n, len(actual), 0)
	}

	correct := 0
	for i := range pred {
		if pred[i] == actual[i] {
			correct++
		}
	}
	return float64(correct) / float64(n), nil
}

// Accuracy はベクトル形式の入力に対して正解率を計算する
func Accuracy(yTrue, yPred *mat.VecDense) (float64, error) {
	if yTrue == nil || yPred == nil || yTrue.IsEmpty() || yPred.IsEmpty() {
		return 0, errors.NewModelError("Accuracy", "empty vector", errors.ErrEmptyData)
	}
	n := yTrue.Len()
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("Accuracy", n, yPred.Len(), 0)
	}

	correct := 0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == yPred.AtVec(i) {
			correct++
		}
	}
	return float64(correct) / float64(n), nil
}

// AccuracyMatrix は n×1 行列形式の入力に対して正解率を計算する
func AccuracyMatrix(yTrue, yPred mat.Matrix) (float64, error) {
	if yTrue == nil || yPred == nil {
		return 0, errors.NewModelError("AccuracyMatrix", "nil matrix", errors.ErrEmptyData)
	}
	rTrue, cTrue := yTrue.Dims()
	rPred, cPred := yPred.Dims()
	if rTrue == 0 || cTrue == 0 {
		return 0, errors.NewModelError("AccuracyMatrix", "empty matrix", errors.ErrEmptyData)
	}
	if rTrue != rPred {
		return 0, errors.NewDimensionError("AccuracyMatrix", rTrue, rPred, 0)
	}
	if cTrue != 1 || cPred != 1 {
		return 0, errors.NewValueError("AccuracyMatrix", "must be a column vector (n×1 matrix)")
	}

	yTrueVec := mat.NewVecDense(rTrue, nil)
	yPredVec := mat.NewVecDense(rPred, nil)
	for i := 0; i < rTrue; i++ {
		yTrueVec.SetVec(i, yTrue.At(i, 0))
		yPredVec.SetVec(i, yPred.At(i, 0))
	}
	return Accuracy(yTrueVec, yPredVec)
}

// ConfusionMatrix は混同行列を計算する
// 行が正解ラベル、列が予測ラベルで、labels は両者に現れるラベルの昇順
func ConfusionMatrix(pred, actual []int) (matrix *mat.Dense, labels []int, err error) {
	if len(pred) == 0 {
		return nil, nil, errors.NewModelError("ConfusionMatrix", "empty predictions", errors.ErrEmptyData)
	}
	if len(actual) != len(pred) {
		return nil, nil, errors.NewDimensionError("ConfusionMatrix", len(pred), len(actual), 0)
	}

	index := make(map[int]int)
	for _, y := range append(append([]int(nil), actual...), pred...) {
		if _, ok := index[y]; !ok {
			index[y] = 0
			labels = append(labels, y)
		}
	}
	sort.Ints(labels)
	for i, y := range labels {
		index[y] = i
	}

	matrix = mat.NewDense(len(labels), len(labels), nil)
	for i := range pred {
		r, c := index[actual[i]], index[pred[i]]
		matrix.Set(r, c, matrix.At(r, c)+1)
	}
	return matrix, labels, nil
}
