package log

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuesf/travel/log/writer"
)

func TestNewConsoleLogger(t *testing.T) {
	logger := New(WithLevel(zerolog.WarnLevel))
	assert.NotNil(t, logger)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
}

func TestNewFileLogger(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewFile(FileConfig{
		Filepath:   dir,
		Filename:   "client",
		RotateMode: writer.RotateModeSize,
	})
	require.NoError(t, err)
	defer logger.Close()

	logger.Info().Str("module", "client").Msg("request issued")

	assert.FileExists(t, filepath.Join(dir, "client.log"))
}

func TestFileConfigDefaults(t *testing.T) {
	var c FileConfig
	c.setDefaults()

	assert.Equal(t, "log", c.Filepath)
	assert.Equal(t, "travel", c.Filename)
	assert.Equal(t, "log", c.FileExt)
	assert.Equal(t, 100, c.LumberjackConfig.MaxSize)
}

func TestGlobalLogger(t *testing.T) {
	prev := G
	defer SetGlobalLogger(prev)

	SetGlobalLogger(New(WithLevel(zerolog.ErrorLevel)))
	assert.Equal(t, zerolog.ErrorLevel, G.GetLevel())
}
