// Package errors はプロジェクト全体のエラーハンドリングと警告システムを提供します。
// scikit-learnの警告・例外システムにインスパイアされており、構造化されたエラー情報を提供します。
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	グローバル警告ハンドリング
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// デフォルトのハンドラは標準エラー出力にログを出す
		log.Printf("entropyforest-Warning: %v\n", w)
	}
	// zerologロガー（循環importを避けるため遅延初期化）
	zerologWarnFunc func(warning error)
)

// SetWarningHandler はライブラリ全体の警告ハンドラを設定します。
//
// 例:
//
//	errors.SetWarningHandler(func(w error) {
//	    // 警告を無視する
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc はzerolog警告関数を設定します（循環importを避けるため）。
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn は警告を発生させます。
// zerologが設定されている場合は構造化ログとして出力し、そうでなければ従来のハンドラを使用します。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	警告型
//
// ===========================================================================

// IgnoredParameterWarning はパラメータが指定されたが効果を持たない場合の警告です。
// 例えば、K=1 のバギングで overlap を指定した場合など。
type IgnoredParameterWarning struct {
	Param  string
	Value  interface{}
	Reason string
}

func (w *IgnoredParameterWarning) Error() string {
	return fmt.Sprintf("parameter '%s'=%v has no effect: %s", w.Param, w.Value, w.Reason)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *IgnoredParameterWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("param", w.Param).
		Interface("value", w.Value).
		Str("reason", w.Reason).
		Str("type", "IgnoredParameterWarning")
}

// NewIgnoredParameterWarning は新しいIgnoredParameterWarningを作成します。
func NewIgnoredParameterWarning(param string, value interface{}, reason string) *IgnoredParameterWarning {
	return &IgnoredParameterWarning{Param: param, Value: value, Reason: reason}
}

// DiscardedRowsWarning は分割の都合で学習に使われない行が出た場合の警告です。
type DiscardedRowsWarning struct {
	Op     string
	Rows   int
	Reason string
}

func (w *DiscardedRowsWarning) Error() string {
	return fmt.Sprintf("%s: %d rows discarded: %s", w.Op, w.Rows, w.Reason)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *DiscardedRowsWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("operation", w.Op).
		Int("rows", w.Rows).
		Str("reason", w.Reason).
		Str("type", "DiscardedRowsWarning")
}

// NewDiscardedRowsWarning は新しいDiscardedRowsWarningを作成します。
func NewDiscardedRowsWarning(op string, rows int, reason string) *DiscardedRowsWarning {
	return &DiscardedRowsWarning{Op: op, Rows: rows, Reason: reason}
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// NotFittedError はモデルが未学習の状態で `Predict` や `Score` を呼び出した場合のエラーです。
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("entropyforest: %s: this model is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError は新しいNotFittedErrorを作成し、スタックトレースを付与します。
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// DimensionError は入力データの次元が期待値と異なる場合のエラーです。
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) Error() string {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("entropyforest: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "DimensionError")
}

// NewDimensionError は新しいDimensionErrorを作成し、スタックトレースを付与します。
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValidationError は入力パラメータの検証に失敗した場合のエラーです。
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("entropyforest: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError は新しいValidationErrorを作成し、スタックトレースを付与します。
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// ValueError は引数の値が不適切または不正な場合に発生するエラーです。
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("entropyforest: %s: %s", e.Op, e.Message)
}

// NewValueError は新しいValueErrorを作成し、スタックトレースを付与します。
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ModelError は機械学習モデルに関する一般的なエラーです。
type ModelError struct {
	Op   string
	Kind string
	Err  error
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("entropyforest: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("entropyforest: %s: %s", e.Op, e.Kind)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// NewModelError は新しいModelErrorを作成し、スタックトレースを付与します。
func NewModelError(op, kind string, err error) error {
	modelErr := &ModelError{Op: op, Kind: kind, Err: err}
	return errors.WithStack(modelErr)
}

// DataFormatError はデータファイルの行が期待される形式でない場合のエラーです。
// 列数の不一致や数値として解釈できない値を検出します。読み込みは中断されます。
type DataFormatError struct {
	Line   int    // 1始まりの行番号
	Field  int    // 0始まりの列番号（行全体の問題なら -1）
	Value  string // 問題のある値
	Reason string
}

func (e *DataFormatError) Error() string {
	if e.Field < 0 {
		return fmt.Sprintf("entropyforest: malformed data at line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("entropyforest: malformed data at line %d, field %d (%q): %s", e.Line, e.Field, e.Value, e.Reason)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DataFormatError) MarshalZerologObject(event *zerolog.Event) {
	event.Int("line", e.Line).
		Int("field", e.Field).
		Str("value", e.Value).
		Str("reason", e.Reason).
		Str("type", "DataFormatError")
}

// NewDataFormatError は新しいDataFormatErrorを作成し、スタックトレースを付与します。
func NewDataFormatError(line, field int, value, reason string) error {
	err := &DataFormatError{Line: line, Field: field, Value: value, Reason: reason}
	return errors.WithStack(err)
}

// InconsistentTreeError は分類中に葉へ到達する前に空の子ノードに当たった場合のエラーです。
// 構築側の不変条件違反を示すため、握りつぶしてはいけません。
type InconsistentTreeError struct {
	Depth     int
	Feature   int
	Threshold float64
	Branch    string // "left" or "right"
}

func (e *InconsistentTreeError) Error() string {
	return fmt.Sprintf("entropyforest: inconsistent tree: missing %s child at depth %d (feature %d, threshold %g)",
		e.Branch, e.Depth, e.Feature, e.Threshold)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *InconsistentTreeError) MarshalZerologObject(event *zerolog.Event) {
	event.Int("depth", e.Depth).
		Int("feature", e.Feature).
		Float64("threshold", e.Threshold).
		Str("branch", e.Branch).
		Str("type", "InconsistentTreeError")
}

// NewInconsistentTreeError は新しいInconsistentTreeErrorを作成し、スタックトレースを付与します。
func NewInconsistentTreeError(depth, feature int, threshold float64, branch string) error {
	err := &InconsistentTreeError{Depth: depth, Feature: feature, Threshold: threshold, Branch: branch}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	数値計算のエラー型
//
// ===========================================================================

// NumericalInstabilityError は数値計算が不安定になった場合のエラーです。
// エントロピーや情報利得で NaN や Inf が発生した場合に検出します。
type NumericalInstabilityError struct {
	Operation string    // 発生した操作（例: "entropy", "information_gain"）
	Values    []float64 // 問題のある値
	Iteration int       // 発生した位置（木の深さなど）
}

func (e *NumericalInstabilityError) Error() string {
	valStr := ""
	for i, v := range e.Values {
		if i > 0 {
			valStr += ", "
		}
		if i >= 5 {
			valStr += "..."
			break
		}
		valStr += fmt.Sprintf("%.6g", v)
	}
	return fmt.Sprintf("entropyforest: numerical instability detected in %s at iteration %d. Values: [%s]",
		e.Operation, e.Iteration, valStr)
}

// NewNumericalInstabilityError は新しいNumericalInstabilityErrorを作成します。
func NewNumericalInstabilityError(operation string, values []float64, iteration int) error {
	err := &NumericalInstabilityError{
		Operation: operation,
		Values:    values,
		Iteration: iteration,
	}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrNotImplemented は機能が未実装の場合のエラーです。
	ErrNotImplemented = New("not implemented")

	// ErrEmptyData は空のデータが渡された場合のエラーです。
	ErrEmptyData = New("empty data")
)
