// Package logger configura el logging estructurado del servicio: consola
// legible en desarrollo, JSON por línea en cualquier otro entorno.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger.
type Config struct {
	Env   string // development activa la salida de consola
	Level string // trace, debug, info, warn, error; cualquier otro valor cae a info
}

// Logger envuelve zerolog para inyectarlo por las capas del servicio sin
// acoplarlas al logger global.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger del proceso. También redirige el logger global de
// zerolog para que las librerías que escriben por esa vía compartan stream y
// formato.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()
	log.Logger = zl

	return &Logger{zl: zl}
}

// Trace, Debug, Info, Warn, Error, Fatal delegan en zerolog.
func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With crea un sublogger con campos fijos.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Zerolog expone el logger interno para componentes que reciben
// zerolog.Logger directamente (p. ej. los handlers HTTP).
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
