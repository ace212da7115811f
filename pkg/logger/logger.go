package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config salida y nivel del logger de la consola.
type Config struct {
	Env   string    // APP_ENV; "development" imprime texto legible, el resto JSON
	Level string    // LOG_LEVEL
	Out   io.Writer // nil = os.Stdout
}

// Logger es el logger que reciben handlers, gateway y workspaces; cada uno lo nombra con Named.
type Logger struct {
	zl zerolog.Logger
}

// New crea el logger de la consola y lo deja también como logger global de zerolog.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Out != nil {
		w = cfg.Out
	}
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: w}
	}

	zl := zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()

	// fiber y otras librerías que usan zerolog/log escriben por el mismo destino
	log.Logger = zl

	return &Logger{zl: zl}
}

// Nop descarta todo (tests y componentes construidos sin logger).
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Niveles.
func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// Named sublogger con el campo component (gateway, workspace, http...).
func (l *Logger) Named(component string) *Logger {
	return &Logger{zl: l.zl.With().Str("component", component).Logger()}
}

// WithField sublogger con un campo fijo, como request_id o workspace.
func (l *Logger) WithField(key, value string) *Logger {
	return &Logger{zl: l.zl.With().Str(key, value).Logger()}
}

// Zerolog logger interno.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
