package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/vaccination-dashboard/internal/pkg/logger"
)

func TestNew(t *testing.T) {
	cases := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel},
		{"nonsense", zapcore.InfoLevel},
	}

	for _, tc := range cases {
		t.Run(tc.level, func(t *testing.T) {
			log, err := logger.New(tc.level)
			require.NoError(t, err)
			assert.True(t, log.Core().Enabled(tc.want))
			assert.False(t, log.Core().Enabled(tc.want-1))
		})
	}
}
