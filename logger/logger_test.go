package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/alexhholmes/multimap"
)

// decode reads the single JSON line written by a logger.
func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	return line
}

func TestLogrus(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&logrus.JSONFormatter{})

	m := multimap.New[int, int](multimap.WithLogger(NewLogrus(l)))
	m.PutAll(1, 1, 2)
	m.Clear()

	line := decode(t, &buf)
	assert.Equal(t, "multimap cleared", line["msg"])
	assert.Equal(t, "info", line["level"])
	assert.EqualValues(t, 1, line["keys"])
	assert.EqualValues(t, 2, line["values"])
}

func TestLogrusDropsDanglingArg(t *testing.T) {
	t.Parallel()

	fields := argsToFields([]any{"a", 1, 2, "b"})
	assert.Equal(t, logrus.Fields{"a": 1}, fields)
}

func TestZap(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	log := NewZap(zap.New(core))

	log.Info("info", "k", "v")
	log.Warn("warn")
	log.Error("error", "n", 3)

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "info", entries[0].Message)
	assert.Equal(t, map[string]any{"k": "v"}, entries[0].ContextMap())
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
	assert.EqualValues(t, 3, entries[2].ContextMap()["n"])
}

func TestZerolog(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewZerolog(zerolog.New(&buf))

	log.Error("multimap check failed", "error", "bad")

	line := decode(t, &buf)
	assert.Equal(t, "error", line["level"])
	assert.Equal(t, "multimap check failed", line["message"])
	assert.Equal(t, "bad", line["error"])
}
