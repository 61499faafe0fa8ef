package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvroute/internal/logging"
)

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(&buf, "warn", zap.String("cmd", "lvroute"))
	require.NoError(t, err)

	log.Info("dropped")
	log.Warn("kept", zap.Int("n", 3))
	require.NoError(t, log.Sync())

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "lvroute", entry["cmd"])
	assert.EqualValues(t, 3, entry["n"])
}

func TestNew_DefaultInfo(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(&buf, "")
	require.NoError(t, err)

	log.Debug("dropped")
	log.Info("kept")
	assert.Contains(t, buf.String(), "kept")
	assert.NotContains(t, buf.String(), "dropped")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := logging.New(&bytes.Buffer{}, "chatty")
	require.Error(t, err)
}
