package logger

import (
	"path/filepath"
	"testing"

	"afdian_adapter/internal/infrastructure/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LevelAndFormat(t *testing.T) {
	log := New(config.LogConfig{Level: "debug", Format: "text"})
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	_, ok := log.Formatter.(*logrus.TextFormatter)
	assert.True(t, ok)

	log = New(config.LogConfig{Level: "nonsense"})
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	_, ok = log.Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok)
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	log := New(config.LogConfig{Level: "info", File: path, MaxSizeMB: 1})
	log.Info("[afdian] hello")

	require.FileExists(t, path)
}
