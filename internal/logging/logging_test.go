package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"info", zerolog.InfoLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewWritesToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.log")
	log, closeFn, err := New(Options{Level: "info", File: path, Session: "S1"})
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Str("op", "create").Msg("trade saved")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "trade saved", entry["message"])
	assert.Equal(t, "S1", entry["session"])
	assert.Equal(t, "create", entry["op"])
}

func TestNewDiscard(t *testing.T) {
	t.Parallel()

	log, closeFn, err := New(Options{})
	require.NoError(t, err)
	log.Info().Msg("nowhere")
	assert.NoError(t, closeFn())
}

func TestNewBadLevel(t *testing.T) {
	t.Parallel()

	_, _, err := New(Options{Level: "chatty", File: "-"})
	assert.Error(t, err)
}
