package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(LevelWarn, &buf)
	assert.Equal(t, LevelWarn, l.Level())

	l.Debug("debug | n=%v", 1)
	l.Info("info | n=%v", 2)
	assert.Empty(t, buf.String())

	l.Warn("warn | n=%v", 3)
	assert.Contains(t, buf.String(), "[WARN] warn | n=3")
	assert.Contains(t, buf.String(), "logger_test.go")

	buf.Reset()
	l.Error("error | n=%v", 4)
	assert.Contains(t, buf.String(), "[ERROR] error | n=4")
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{" warn ", LevelWarn},
		{"error", LevelError},
		{"0", LevelDebug},
		{"3", LevelError},
	}
	for _, c := range cases {
		got, err := ParseLevel(c.in)
		assert.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}

	for _, in := range []string{"", "verbose", "4", "-1"} {
		_, err := ParseLevel(in)
		assert.Error(t, err, in)
	}
}
