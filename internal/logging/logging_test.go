package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLevels(t *testing.T) {
	closer, err := Init(Config{Level: "warn"})
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, zerolog.WarnLevel, globalLogger.GetLevel())

	closer, err = Init(Config{Level: "warn", Debug: true})
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, zerolog.DebugLevel, globalLogger.GetLevel())
}

func TestInitInvalidLevel(t *testing.T) {
	_, err := Init(Config{Level: "loud"})
	assert.Error(t, err)
}

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tool.log")

	closer, err := Init(Config{File: path})
	require.NoError(t, err)

	l := WithComponent("reach")
	l.Info().Str("host", "example.com").Msg("probe finished")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"reach"`)
	assert.Contains(t, string(data), `"host":"example.com"`)
}

func TestInitLevelFiltersFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tool.log")

	closer, err := Init(Config{File: path, Level: "warn"})
	require.NoError(t, err)

	Info().Msg("dropped")
	Warn().Msg("kept")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
	assert.Contains(t, string(data), `"message":"kept"`)
}
