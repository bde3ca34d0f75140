package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel("DEBUG"))
	assert.Equal(t, Warn, ParseLevel(" warning "))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Info, ParseLevel("verbose"))
	assert.Equal(t, "error", Error.String())
}

func TestLogger_JSON_WithFieldsAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "patitas", Output: &buf})

	l.Debug("hidden", nil)
	l.With(map[string]any{"request_id": "r-1", "": "skip"}).
		Error("boom", map[string]any{"err": errors.New("db down")})

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "boom", entry["msg"])
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "patitas", entry["app"])
	assert.Equal(t, "r-1", entry["request_id"])
	assert.Equal(t, "db down", entry["err"])
	assert.Contains(t, entry, "ts")
	assert.NotContains(t, entry, "")
}

func TestNop_DoesNotPanic(t *testing.T) {
	l := Nop().With(map[string]any{"a": 1})
	l.Info("x", nil)
	l.Error("y", map[string]any{"b": 2})
}
