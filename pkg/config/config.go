// Package config loads training run settings from YAML.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/YuminosukeSato/entropyforest/pkg/errors"
	"github.com/YuminosukeSato/entropyforest/pkg/log"
)

// Separator values for data files.
const (
	SeparatorSpace = "space"
	SeparatorComma = "comma"
)

// Mode values.
const (
	ModeTree    = "tree"
	ModeBagging = "bagging"
	ModeForest  = "forest"
)

// Config is one training run.
type Config struct {
	Data       string  `yaml:"data"`
	Separator  string  `yaml:"separator"`
	TrainRatio float64 `yaml:"train_ratio"` // 学習に使う行の割合 (%)
	MaxDepth   int     `yaml:"max_depth"`   // 0 は無制限

	Mode        string `yaml:"mode"`
	NEstimators int    `yaml:"n_estimators"`
	Overlap     int    `yaml:"overlap"`
	RandomState int64  `yaml:"random_state"` // 負の値は時刻から生成

	ExportPrefix string `yaml:"export_prefix"`
	ExportDir    string `yaml:"export_dir"`
	DOT          bool   `yaml:"dot"`
	Plot         string `yaml:"plot"`
	ModelOut     string `yaml:"model_out"`

	LogLevel string `yaml:"log_level"`
}

// Default returns the settings used when neither a file nor a flag sets a value.
func Default() Config {
	return Config{
		Separator:   SeparatorComma,
		TrainRatio:  80,
		Mode:        ModeTree,
		NEstimators: 10,
		RandomState: -1,
		ExportDir:   ".",
		LogLevel:    "info",
	}
}

// Load reads a YAML file over Default. Keys missing from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}

// Validate checks every field and returns the first violation.
func (c Config) Validate() error {
	if c.Separator != SeparatorSpace && c.Separator != SeparatorComma {
		return errors.NewValidationError("separator", "must be \"space\" or \"comma\"", c.Separator)
	}
	if c.TrainRatio <= 0 || c.TrainRatio >= 100 {
		return errors.NewValidationError("train_ratio", "must be in (0, 100)", c.TrainRatio)
	}
	if c.MaxDepth < 0 {
		return errors.NewValidationError("max_depth", "must be >= 0", c.MaxDepth)
	}
	switch c.Mode {
	case ModeTree:
	case ModeBagging, ModeForest:
		if c.NEstimators < 1 {
			return errors.NewValidationError("n_estimators", "must be >= 1", c.NEstimators)
		}
		if c.Overlap < 0 || c.Overlap > 100 {
			return errors.NewValidationError("overlap", "must be in [0, 100]", c.Overlap)
		}
	default:
		return errors.NewValidationError("mode", "must be tree, bagging or forest", c.Mode)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
