package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger define a interface para logging estruturado.
// A aplicação (Handler, Service, Repository) deve depender apenas desta interface.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error)
	Fatal(msg string, err error)
	With(fields map[string]interface{}) Logger
	Sync() error
}

// ZapLogger implementa Logger sobre o zap.
type ZapLogger struct {
	z *zap.Logger
}

// NewLogger cria o logger da aplicação. Em desenvolvimento usa o encoder de console
// do zap; nos demais ambientes, JSON com timestamps ISO8601.
func NewLogger(level, environment string) Logger {
	var cfg zap.Config
	if environment == "development" || environment == "local" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	z, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		// Sem logger não há como reportar nada; cai para um core mínimo em stderr.
		z = zap.New(zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.Lock(os.Stderr),
			lvl,
		))
	}

	z = z.With(zap.String("service", "betaware-api"), zap.String("env", environment))
	return &ZapLogger{z: z}
}

// NewNop devolve um Logger que descarta tudo.
func NewNop() Logger {
	return &ZapLogger{z: zap.NewNop()}
}

func toZapFields(fields map[string]interface{}) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	zf := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zf = append(zf, zap.Any(k, v))
	}
	return zf
}

func (l *ZapLogger) Debug(msg string, fields map[string]interface{}) {
	l.z.Debug(msg, toZapFields(fields)...)
}

func (l *ZapLogger) Info(msg string, fields map[string]interface{}) {
	l.z.Info(msg, toZapFields(fields)...)
}

func (l *ZapLogger) Warn(msg string, fields map[string]interface{}) {
	l.z.Warn(msg, toZapFields(fields)...)
}

func (l *ZapLogger) Error(msg string, err error) {
	l.z.Error(msg, zap.Error(err))
}

// Fatal registra e encerra o processo (os.Exit(1)).
func (l *ZapLogger) Fatal(msg string, err error) {
	l.z.Fatal(msg, zap.Error(err))
}

// With devolve um Logger filho com campos fixos (ex.: request_id).
func (l *ZapLogger) With(fields map[string]interface{}) Logger {
	return &ZapLogger{z: l.z.With(toZapFields(fields)...)}
}

func (l *ZapLogger) Sync() error {
	return l.z.Sync()
}
