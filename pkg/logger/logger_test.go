package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_RespetaElNivelConfigurado(t *testing.T) {
	l := New(Config{Env: "production", Level: "warn"})
	assert.Equal(t, zerolog.WarnLevel, l.Zerolog().GetLevel())
}

func TestNew_NivelDesconocidoCaeAInfo(t *testing.T) {
	l := New(Config{Env: "production", Level: "no-existe"})
	assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel())
}

func TestNew_NivelVacioCaeAInfo(t *testing.T) {
	l := New(Config{Env: "development", Level: ""})
	assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel())
}
