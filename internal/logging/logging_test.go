package logging

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	loc := time.FixedZone("WIB", 7*3600)

	log := New(&buf, loc, "info")
	log.Info("backup_created", zap.String("backup_id", "b-1"))
	log.Debug("hidden")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "backup_created", entry["msg"])
	assert.Equal(t, "b-1", entry["backup_id"])

	ts, err := time.Parse(time.RFC3339Nano, entry["ts"].(string))
	require.NoError(t, err)
	_, offset := ts.Zone()
	assert.Equal(t, 7*3600, offset)
}

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer

	log := New(&buf, nil, "debug")
	log.Debug("visible")
	assert.Contains(t, buf.String(), "visible")

	buf.Reset()
	log = New(&buf, nil, "not-a-level")
	log.Debug("dropped")
	assert.Empty(t, buf.String())
}
