package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Asutorufa/flist/pkg/utils/assert"
)

func TestLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	z := NewLogger(buf)

	z.Debug("hidden")
	z.Info("shown", "size", 3)
	assert.False(t, strings.Contains(buf.String(), "hidden"))
	assert.True(t, strings.Contains(buf.String(), "msg=shown size=3"))

	z.SetLevel(LevelDebug)
	assert.True(t, z.Enabled(LevelDebug))
	z.Debug("now visible")
	assert.True(t, strings.Contains(buf.String(), "now visible"))

	z.SetLevel(LevelError)
	assert.False(t, z.Enabled(LevelWarn))
	z.Warn("dropped")
	assert.False(t, strings.Contains(buf.String(), "dropped"))
}

func TestSetOutput(t *testing.T) {
	a, b := &bytes.Buffer{}, &bytes.Buffer{}
	z := NewLogger(a)
	z.SetLevel(LevelWarn)
	z.SetOutput(b)
	z.Error("boom")

	assert.Equal(t, 0, a.Len())
	assert.True(t, strings.Contains(b.String(), "level=ERROR msg=boom"))
}

func TestParseLevel(t *testing.T) {
	for s, want := range map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"":        LevelInfo,
		"warning": LevelWarn,
		"error":   LevelError,
	} {
		got, err := ParseLevel(s)
		assert.NoError(t, err)
		assert.Equal(t, want, got, s)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)

	assert.Equal(t, "warn", LevelWarn.String())
}

func TestSetSwitchesFile(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")
	defer Close()

	Set(Config{Level: LevelInfo, Save: true}, first)
	Info("to first")

	Set(Config{Level: LevelInfo, Save: true}, second)
	Info("to second")

	Set(Config{Level: LevelInfo}, "")
	Info("to stdout only")

	data, err := os.ReadFile(first)
	assert.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "to first"))
	assert.False(t, strings.Contains(string(data), "to second"))

	data, err = os.ReadFile(second)
	assert.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "to second"))
	assert.False(t, strings.Contains(string(data), "to first"))
	assert.False(t, strings.Contains(string(data), "to stdout only"))
}
