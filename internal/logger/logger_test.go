package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	log, closeFn, err := New(Config{Level: "warn"}, &buf)
	require.NoError(t, err)

	log.Info("dropped")
	log.Warn("converted", zap.String("locale", "tr"))
	require.NoError(t, closeFn())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "converted", entry["msg"])
	assert.Equal(t, "tr", entry["locale"])
	assert.Equal(t, "warn", entry["level"])
}

func TestNewDevelopment(t *testing.T) {
	var buf bytes.Buffer
	log, closeFn, err := New(Config{Level: "debug", Development: true}, &buf)
	require.NoError(t, err)
	log.Debug("hello")
	require.NoError(t, closeFn())
	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "hello")
}

func TestNewFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "logs", "decasify.log")
	var buf bytes.Buffer
	log, closeFn, err := New(Config{File: name}, &buf)
	require.NoError(t, err)
	log.Info("to file")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"to file"`)
	assert.Contains(t, buf.String(), "to file")
}

func TestInvalidLevel(t *testing.T) {
	_, _, err := New(Config{Level: "loud"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}
