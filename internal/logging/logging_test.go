package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		want      zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"negative is warn", -1, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 7, zerolog.TraceLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Level(tt.verbosity))
			assert.Equal(t, tt.want, Setup(tt.verbosity, &bytes.Buffer{}).GetLevel())
		})
	}
}

func TestSetupQuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup(0, &buf)
	logger.Info().Msg("hidden")
	logger.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := Component(Setup(2, &buf), "core")
	buf.Reset()

	logger.Debug().Str("format", "f16").Msg("skipped")
	out := buf.String()
	assert.Contains(t, out, "component=core")
	assert.Contains(t, out, "format=f16")
	assert.Contains(t, out, "skipped")
}
