package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/entropyforest/pkg/errors"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
data: iris.txt
separator: space
mode: forest
n_estimators: 5
overlap: 20
max_depth: 3
dot: true
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "iris.txt", cfg.Data)
	assert.Equal(t, SeparatorSpace, cfg.Separator)
	assert.Equal(t, ModeForest, cfg.Mode)
	assert.Equal(t, 5, cfg.NEstimators)
	assert.Equal(t, 20, cfg.Overlap)
	assert.Equal(t, 3, cfg.MaxDepth)
	assert.True(t, cfg.DOT)
	// untouched keys keep their defaults
	assert.Equal(t, 80.0, cfg.TrainRatio)
	assert.Equal(t, int64(-1), cfg.RandomState)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_depth: [1, 2"), 0o600))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		param  string
	}{
		{"separator", func(c *Config) { c.Separator = "tab" }, "separator"},
		{"ratio zero", func(c *Config) { c.TrainRatio = 0 }, "train_ratio"},
		{"ratio hundred", func(c *Config) { c.TrainRatio = 100 }, "train_ratio"},
		{"depth", func(c *Config) { c.MaxDepth = -2 }, "max_depth"},
		{"mode", func(c *Config) { c.Mode = "boosting" }, "mode"},
		{"estimators", func(c *Config) { c.Mode = ModeBagging; c.NEstimators = 0 }, "n_estimators"},
		{"overlap", func(c *Config) { c.Mode = ModeForest; c.Overlap = 120 }, "overlap"},
		{"log level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			var verr *errors.ValidationError
			require.True(t, errors.As(cfg.Validate(), &verr))
			assert.Equal(t, tt.param, verr.ParamName)
		})
	}

	cfg := Default()
	cfg.NEstimators = 0
	assert.NoError(t, cfg.Validate(), "tree mode ignores ensemble settings")
}
