package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"DEBUG", logrus.DebugLevel},
		{"trace", logrus.TraceLevel},
		{"warn", logrus.WarnLevel},
		{"warning", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"", logrus.InfoLevel},
		{"verbose", logrus.InfoLevel},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, GetLevel(tc.in))
		})
	}
}

func TestSetupWritesToFile(t *testing.T) {
	oldOut, oldLevel, oldFormatter := logrus.StandardLogger().Out, logrus.GetLevel(), logrus.StandardLogger().Formatter
	t.Cleanup(func() {
		logrus.SetOutput(oldOut)
		logrus.SetLevel(oldLevel)
		logrus.SetFormatter(oldFormatter)
	})

	base := filepath.Join(t.TempDir(), "weighttrack")
	Setup(LoggerSetupParams{LogFileName: base, LogLevel: "info", LogFormatJSON: true})
	logrus.WithField("weight", 79.5).Info("recorded")

	b, err := os.ReadFile(base + ".log")
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"recorded"`)
	assert.Contains(t, string(b), `"weight":79.5`)
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
