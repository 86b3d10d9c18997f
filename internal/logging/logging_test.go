package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel(t *testing.T) {
	assert.Equal(t, logrus.InfoLevel, Level(false, false))
	assert.Equal(t, logrus.DebugLevel, Level(false, true))
	assert.Equal(t, logrus.ErrorLevel, Level(true, false))
	assert.Equal(t, logrus.ErrorLevel, Level(true, true))
}

func TestNewWritesPlainText(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, logrus.WarnLevel)
	l.Info("hidden")
	l.WithField("backend", "booth").Warn("falling back")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=warning")
	assert.Contains(t, out, `msg="falling back"`)
	assert.Contains(t, out, "backend=booth")
	assert.NotContains(t, out, "time=")
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel(" debug ")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, l)

	_, err = ParseLevel("loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log level")
}
