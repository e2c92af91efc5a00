package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsolatedLoggerRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "worker.log")
	l := NewIsolatedLogger(path)

	l.Info("Checkout", "first", map[string]interface{}{"n": 1})
	l.Warn("Checkout", "second", nil)
	l.Error("Checkout", "third", map[string]interface{}{"error": "boom"})
	require.NoError(t, l.Sync())

	all, err := l.GetLogs("", 10, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "third", all[0].Message)
	assert.Equal(t, "Checkout", all[0].Module)
	assert.NotEmpty(t, all[0].Id)

	warns, err := l.GetLogs("WARN", 10, 0)
	require.NoError(t, err)
	require.Len(t, warns, 1)
	assert.Equal(t, "second", warns[0].Message)

	page, err := l.GetLogs("", 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "second", page[0].Message)

	empty, err := l.GetLogs("", 10, 50)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGetLogsMissingFile(t *testing.T) {
	l := &ZapLogger{filePath: filepath.Join(t.TempDir(), "missing.log")}
	logs, err := l.GetLogs("", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, logs)
}
