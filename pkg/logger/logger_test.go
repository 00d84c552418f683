package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.TraceLevel, parseLevel("trace"))
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	// Vacío o desconocido cae en info
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("verbose"))
}
