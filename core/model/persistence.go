package model

import (
	"encoding/gob"
	"io"
	"os"

	"github.com/YuminosukeSato/entropyforest/pkg/errors"
)

// SaveModel はモデルをファイルに保存する
//
// 木のノードはインターフェース型なので、具象型は事前に gob.Register されている必要がある
// （sklearn/tree パッケージの init で登録済み）。
//
// 使用例:
//
//	err := model.SaveModel(snapshot, "forest.gob")
func SaveModel(model interface{}, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", filename)
	}
	defer file.Close()

	if err := SaveModelToWriter(model, file); err != nil {
		return err
	}
	return errors.Wrapf(file.Sync(), "failed to flush %s", filename)
}

// LoadModel はファイルからモデルを読み込む
//
// 使用例:
//
//	var snapshot ensemble.Snapshot
//	err := model.LoadModel(&snapshot, "forest.gob")
func LoadModel(model interface{}, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", filename)
	}
	defer file.Close()

	return LoadModelFromReader(model, file)
}

// SaveModelToWriter はモデルをio.Writerに保存する
func SaveModelToWriter(model interface{}, w io.Writer) error {
	if err := gob.NewEncoder(w).Encode(model); err != nil {
		return errors.Wrap(err, "failed to encode model")
	}
	return nil
}

// LoadModelFromReader はio.Readerからモデルを読み込む
func LoadModelFromReader(model interface{}, r io.Reader) error {
	if err := gob.NewDecoder(r).Decode(model); err != nil {
		return errors.Wrap(err, "failed to decode model")
	}
	return nil
}
