package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"etats/internal/config"
)

func init() {
	zerolog.TimestampFieldName = "timestamp"
}

// New builds the application logger. Local runs get a console writer,
// everything else writes JSON lines to stdout.
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	w := io.Writer(os.Stdout)
	switch cfg.Env {
	case config.EnvLocal:
		cw := zerolog.NewConsoleWriter()
		cw.TimeFormat = time.DateTime
		cw.Out = os.Stdout
		w = cw
	case config.EnvDev, config.EnvProd:
	default:
		return zerolog.Nop(), fmt.Errorf("unknown env: %s", cfg.Env)
	}

	l := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("env", cfg.Env).
		Int("pid", os.Getpid()).
		Logger()
	return l, nil
}

// Component returns a child logger tagged with the component name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
