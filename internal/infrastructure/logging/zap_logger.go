package logging

import (
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rafabene/controle-financeiro-backend/internal/domain/ports"
)

// ZapLogger implementa ports.Logger sobre um zap.SugaredLogger
type ZapLogger struct {
	logger *zap.SugaredLogger
}

// NewZapLogger cria um logger zap JSON gravando nos writers informados
func NewZapLogger(level string, writers ...zapcore.WriteSyncer) ports.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.NewMultiWriteSyncer(writers...),
		zapLevel(level),
	)

	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))
	return &ZapLogger{logger: logger.Sugar()}
}

// RotatingFile abre um arquivo de log rotacionado diariamente, mantendo sete dias
func RotatingFile(path string) (zapcore.WriteSyncer, error) {
	rotator, err := rotatelogs.New(
		path+".%Y%m%d",
		rotatelogs.WithLinkName(path),
		rotatelogs.WithRotationTime(24*time.Hour),
		rotatelogs.WithMaxAge(7*24*time.Hour),
	)
	if err != nil {
		return nil, err
	}
	return zapcore.AddSync(rotator), nil
}

func zapLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *ZapLogger) Info(msg string, args ...any) {
	l.logger.Infow(msg, args...)
}

func (l *ZapLogger) Error(msg string, args ...any) {
	l.logger.Errorw(msg, args...)
}

func (l *ZapLogger) Debug(msg string, args ...any) {
	l.logger.Debugw(msg, args...)
}

func (l *ZapLogger) Warn(msg string, args ...any) {
	l.logger.Warnw(msg, args...)
}

func (l *ZapLogger) With(args ...any) ports.Logger {
	return &ZapLogger{logger: l.logger.With(args...)}
}

func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}

// NewNopLogger cria um logger que descarta tudo
func NewNopLogger() ports.Logger {
	return &ZapLogger{logger: zap.NewNop().Sugar()}
}
