package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLogPath = "./logs/app.log"

// NewLogger пишет одновременно в stdout и в файл. Путь к файлу
// переопределяется переменной LOG_PATH.
func NewLogger() *zap.Logger {
	logPath := os.Getenv("LOG_PATH")
	if logPath == "" {
		logPath = defaultLogPath
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	cfg := zap.Config{
		Encoding:         "console",
		Level:            zap.NewAtomicLevelAt(zap.DebugLevel),
		OutputPaths:      []string{"stdout", logPath},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    encoderCfg,
	}

	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return log
}
