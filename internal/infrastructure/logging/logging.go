// Package logging fornece as implementações de ports.Logger (slog e zap).
package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap/zapcore"

	"github.com/rafabene/controle-financeiro-backend/internal/domain/ports"
	"github.com/rafabene/controle-financeiro-backend/internal/infrastructure/config"
)

// New escolhe o backend de log configurado. Com LOG_FILE definido, as
// entradas também vão para um arquivo rotacionado.
func New(cfg config.LoggingConfig) (ports.Logger, error) {
	switch cfg.Backend {
	case "zap":
		writers := []zapcore.WriteSyncer{zapcore.Lock(os.Stdout)}
		if cfg.File != "" {
			file, err := RotatingFile(cfg.File)
			if err != nil {
				return nil, fmt.Errorf("failed to open log file: %w", err)
			}
			writers = append(writers, file)
		}
		return NewZapLogger(cfg.Level, writers...), nil

	case "slog", "":
		var w io.Writer = os.Stdout
		if cfg.File != "" {
			file, err := RotatingFile(cfg.File)
			if err != nil {
				return nil, fmt.Errorf("failed to open log file: %w", err)
			}
			w = io.MultiWriter(os.Stdout, file)
		}
		return NewSlogLogger(cfg.Level, w), nil

	default:
		return nil, fmt.Errorf("unknown log backend %q", cfg.Backend)
	}
}
