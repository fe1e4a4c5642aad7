package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	lgr := Configure(Config{Level: WarnLevel, Output: &buf})
	t.Cleanup(func() { Configure(Config{Level: InfoLevel}) })

	lgr.Info().Msg("dropped")
	Warn().Str("identifier", "S1").Msg("kept")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "S1", entry["identifier"])
	assert.Equal(t, "kept", entry["message"])
}

func TestConfigureUnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "loud", Output: &buf})
	t.Cleanup(func() { Configure(Config{Level: InfoLevel}) })

	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
