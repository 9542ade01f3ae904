package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) (*Registry, *bytes.Buffer) {
	t.Helper()
	var console bytes.Buffer
	r, err := NewRegistry(Config{Dir: t.TempDir(), Console: &console})
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r, &console
}

func TestRegistryDefaultLevel(t *testing.T) {
	r, _ := newTestRegistry(t)

	for _, name := range []string{RequestLogger, BooksLogger} {
		level, err := r.Level(name)
		require.NoError(t, err)
		assert.Equal(t, zerolog.InfoLevel, level)
	}
}

func TestRegistryLevelFiltering(t *testing.T) {
	r, console := newTestRegistry(t)
	log := r.Logger(BooksLogger)

	log.Debug().Msg("suppressed at info")
	assert.NotContains(t, console.String(), "suppressed at info")

	log.Info().Msg("visible at info")
	assert.Contains(t, console.String(), "visible at info")

	_, err := r.SetLevel(BooksLogger, "DEBUG")
	require.NoError(t, err)

	log.Debug().Msg("visible at debug")
	assert.Contains(t, console.String(), "visible at debug")
}

func TestRegistrySetLevel(t *testing.T) {
	r, _ := newTestRegistry(t)

	level, err := r.SetLevel(RequestLogger, "error")
	require.NoError(t, err)
	assert.Equal(t, zerolog.ErrorLevel, level)

	level, err = r.Level(RequestLogger)
	require.NoError(t, err)
	assert.Equal(t, zerolog.ErrorLevel, level)

	// The other logger keeps its own level.
	level, err = r.Level(BooksLogger)
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, level)
}

func TestRegistryUnknownLogger(t *testing.T) {
	r, _ := newTestRegistry(t)

	_, err := r.Level("no-such-logger")
	assert.ErrorIs(t, err, ErrUnknownLogger)

	_, err = r.SetLevel("no-such-logger", "INFO")
	assert.ErrorIs(t, err, ErrUnknownLogger)
}

func TestRegistryUnknownLevel(t *testing.T) {
	r, _ := newTestRegistry(t)

	_, err := r.SetLevel(BooksLogger, "LOUD")
	assert.ErrorIs(t, err, ErrUnknownLevel)

	_, err = r.SetLevel(BooksLogger, "")
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"Warn", zerolog.WarnLevel},
		{"WARNING", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"trace", zerolog.TraceLevel},
	}
	for _, tt := range tests {
		level, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, level, tt.in)
	}
}

func TestLevelName(t *testing.T) {
	assert.Equal(t, "INFO", LevelName(zerolog.InfoLevel))
	assert.Equal(t, "DEBUG", LevelName(zerolog.DebugLevel))
	assert.Equal(t, "WARN", LevelName(zerolog.WarnLevel))
}
