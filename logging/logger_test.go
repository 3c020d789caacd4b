/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/suparena/klvregistry/config"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"":        zapcore.InfoLevel,
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "klv.log")
	logger, err := New(config.LogConfig{Level: "debug", Format: "json", Outputs: []string{path}})
	require.NoError(t, err)

	logger.Debug("unknown key", zap.String("ul", "06.0e"))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"unknown key"`)
	assert.Contains(t, string(data), `"ul":"06.0e"`)
}

func TestNewRespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "klv.log")
	logger, err := New(config.LogConfig{Level: "warn", Format: "json", Outputs: []string{path}})
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
	assert.Contains(t, string(data), "kept")
}

func TestNewWithRotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rotated.log")
	logger, err := New(config.LogConfig{
		Format:   "console",
		Outputs:  []string{path},
		Rotation: config.RotationConfig{Enable: true},
	})
	require.NoError(t, err)
	logger.Info("rotating")
	require.NoError(t, logger.Sync())

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(config.LogConfig{Level: "loud"})
	assert.Error(t, err)
}
