package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/backoffice/internal/logging"
)

func TestSetup_JSON(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	require.NoError(t, logging.Setup("warn", "json", &buf))

	slog.Info("hidden")
	slog.Warn("upload failed", "file", "po.pdf")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "upload failed", entry["msg"])
	assert.Equal(t, "po.pdf", entry["file"])
}

func TestSetup_Invalid(t *testing.T) {
	assert.Error(t, logging.Setup("loud", "text", &bytes.Buffer{}))
	assert.Error(t, logging.Setup("info", "xml", &bytes.Buffer{}))
}

func TestParseLevel(t *testing.T) {
	lvl, err := logging.ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}
