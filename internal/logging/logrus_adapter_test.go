package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBufferedAdapter returns a JSON-formatted adapter writing into buf so
// tests can decode emitted entries.
func newBufferedAdapter(buf *bytes.Buffer) Logger {
	base := logrus.New()
	base.SetOutput(buf)
	base.SetLevel(logrus.DebugLevel)
	base.SetFormatter(&logrus.JSONFormatter{})
	return NewLogrusAdapterFromLogger(base)
}

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestAdapterEmitsFields(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferedAdapter(&buf)

	log.Info("parsed statement",
		Field{Key: FieldPipeline, Value: "tabular"},
		Field{Key: FieldCount, Value: 3},
	)

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "parsed statement", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "tabular", entry[FieldPipeline])
	assert.Equal(t, float64(3), entry[FieldCount])
}

func TestAdapterWithFieldChaining(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferedAdapter(&buf)

	log.WithField(FieldFile, "statement.csv").
		WithField(FieldRow, 7).
		Warn("skipping row")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "statement.csv", entry[FieldFile])
	assert.Equal(t, float64(7), entry[FieldRow])
	assert.Equal(t, "warning", entry["level"])
}

func TestAdapterWithError(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferedAdapter(&buf)

	log.WithError(errors.New("boom")).Error("write failed")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "error", entry["level"])
}

func TestAdapterChainingDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferedAdapter(&buf)

	_ = log.WithField(FieldFile, "statement.csv")
	log.Info("no fields attached")

	entry := decodeEntry(t, &buf)
	_, present := entry[FieldFile]
	assert.False(t, present)
}

func TestNewLogrusAdapterUnknownLevelFallsBack(t *testing.T) {
	// Constructor must not fail on bad input; it logs and falls back to info.
	log := NewLogrusAdapter("chatty", "text")
	require.NotNil(t, log)

	adapter, ok := log.(*LogrusAdapter)
	require.True(t, ok)
	assert.Equal(t, logrus.InfoLevel, adapter.logger.GetLevel())
}

func TestSetLoggerReplacesDefault(t *testing.T) {
	original := GetLogger()
	defer SetLogger(original)

	var buf bytes.Buffer
	replacement := newBufferedAdapter(&buf)
	SetLogger(replacement)

	GetLogger().Info("routed")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "routed", entry["msg"])
}
