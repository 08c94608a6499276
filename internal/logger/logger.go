package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New monta o logger do serviço: console colorido em desenvolvimento,
// JSON puro em produção.
func New(env string) zerolog.Logger {
	if env == "development" {
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		return zerolog.New(output).With().Timestamp().Logger()
	}

	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}
