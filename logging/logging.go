package logging

import (
	"fmt"
	"os"

	"github.com/supakorn-kn/go-book-crud/env"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the application logger. Production writes JSON lines, development
// writes the human readable console format. Stacktraces are only kept for fatal logs.
func New(config env.LogConfig) (*zap.Logger, func() error) {

	encoderConfig := zap.NewProductionEncoderConfig()
	if !config.IsProduction {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	encoderConfig.TimeKey = "ts"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.LevelKey = "lvl"
	encoderConfig.NameKey = "name"
	encoderConfig.MessageKey = "msg"
	encoderConfig.CallerKey = "caller"
	encoderConfig.StacktraceKey = "skt"

	var encoder zapcore.Encoder
	if config.IsProduction {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(&syncWriter{os.Stdout}), config.Level)
	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.FatalLevel))

	flusher := func() error {
		if err := logger.Sync(); err != nil {
			return fmt.Errorf("flush logs: %w", err)
		}
		return nil
	}

	return logger, flusher
}

// syncWriter avoids the `invalid argument` error returned by Sync on stdout.
type syncWriter struct {
	out *os.File
}

func (w *syncWriter) Write(p []byte) (int, error) {
	return w.out.Write(p)
}

func (w *syncWriter) Sync() error {
	return nil
}
