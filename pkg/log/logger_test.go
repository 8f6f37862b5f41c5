package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mlerrors "github.com/YuminosukeSato/entropyforest/pkg/errors"
)

func TestTestLogger(t *testing.T) {
	testLogger, buffer := NewTestLogger(LevelDebug)

	testLogger.Debug("debug message", "key1", "value1", "number", 42)
	testLogger.Info("info message", OperationKey, OperationFit)
	testLogger.Warn("warning message")
	testLogger.Error("error message", fmt.Errorf("boom"), TreesKey, 3)

	require.NotEmpty(t, buffer.String())
	assert.True(t, testLogger.ContainsMessage("debug message"))
	assert.True(t, testLogger.ContainsMessage("warning message"))
	assert.True(t, testLogger.ContainsField("key1", "value1"))
	assert.True(t, testLogger.ContainsField("number", 42.0)) // JSON numbers decode as float64
	assert.True(t, testLogger.ContainsField(ErrorKey, "boom"))
	assert.True(t, testLogger.ContainsField(TreesKey, 3.0))
}

func TestTestLoggerWithAndLevel(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelInfo)
	ctx := context.Background()

	assert.False(t, testLogger.Enabled(ctx, LevelDebug))
	assert.True(t, testLogger.Enabled(ctx, LevelError))

	child := testLogger.With(ModelNameKey, "BaggingClassifier")
	child.Debug("hidden")
	child.Info("visible", ShardKey, 1)

	assert.False(t, testLogger.ContainsMessage("hidden"))
	assert.True(t, testLogger.ContainsField(ModelNameKey, "BaggingClassifier"))
	assert.Equal(t, 1, testLogger.CountMessages("visible"))

	testLogger.Clear()
	assert.Empty(t, testLogger.buffer.String())
}

func TestZerologProvider(t *testing.T) {
	var buf bytes.Buffer
	p := NewZerologProvider(&buf, LevelInfo)

	logger := p.GetLoggerWithName("tree")
	logger.Debug("not emitted")
	logger.Info("Tree built", DepthKey, 3, NodesKey, 7)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "Tree built", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "tree", entry[ComponentKey])
	assert.Equal(t, 3.0, entry[DepthKey])

	p.SetLevel(LevelDebug)
	p.GetLogger().Debug("now emitted")
	assert.Contains(t, buf.String(), "now emitted")
}

func TestZerologLoggerErrorCarriesStack(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologProvider(&buf, LevelDebug).GetLogger()

	err := mlerrors.NewInconsistentTreeError(1, 0, 2.5, "left")
	logger.Error("Classification failed", err, PredsKey, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Contains(t, entry["error"], "inconsistent tree")
	assert.NotEmpty(t, entry[StacktraceKey])
	detail, ok := entry["error.detail"].(map[string]interface{})
	require.True(t, ok, "structured error detail expected")
	assert.Equal(t, "InconsistentTreeError", detail["type"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetProvider(t *testing.T) {
	p, captured := NewTestLoggerProvider(LevelDebug)
	SetProvider(p)
	defer SetProvider(NewZerologProvider(&bytes.Buffer{}, LevelInfo))

	GetLoggerWithName("ensemble").Info("routed")
	assert.True(t, captured.ContainsField(ComponentKey, "ensemble"))

	mlerrors.Warn(mlerrors.NewIgnoredParameterWarning("overlap", 10, "single shard"))
	assert.True(t, captured.ContainsField(ComponentKey, "warnings"))
}
