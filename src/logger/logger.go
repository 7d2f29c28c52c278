// Package logger envuelve zerolog.Logger con los constructores y helpers de
// contexto que usa el API.
package logger

import (
	"context"
	"io"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embebe zerolog.Logger, así que Info, Error, etc. están disponibles directamente.
type Logger struct {
	zerolog.Logger
}

// NewLogger crea un logger JSON en stdout con los campos role, time y func.
// level acepta los nombres de zerolog ("debug", "info", ...); si no se reconoce se usa info.
func NewLogger(role, level string) *Logger {
	return newLogger(os.Stdout, role, level)
}

func newLogger(w io.Writer, role, level string) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop descarta todo; pensado para tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithField devuelve un hijo con un campo extra sin tocar al padre.
func (l *Logger) WithField(key, value string) *Logger {
	return &Logger{l.With().Str(key, value).Logger()}
}

// FromContext devuelve el logger guardado en ctx. Si no hay ninguno zerolog
// devuelve su logger por defecto, nunca nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// FromContextOr devuelve el logger de ctx o fallback si ctx no lleva uno activo.
func FromContextOr(ctx context.Context, fallback *Logger) *Logger {
	if l := log.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return &Logger{*l}
	}
	return fallback
}
