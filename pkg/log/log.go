package log

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds a Logger from the given config.
// Unknown levels fall back to info.
func Init(cfg ZapConfig) Logger {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var encoderCfg zapcore.EncoderConfig
	if cfg.Mode == ModeProduction {
		encoderCfg = zap.NewProductionEncoderConfig()
	} else {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
	}
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && cfg.Encoding != EncodingJSON {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var encoder zapcore.Encoder
	if cfg.Encoding == EncodingJSON {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level)
	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))

	return &zapLogger{sugar: logger.Sugar()}
}

// NewNop returns a Logger that discards all output. Library code uses it
// as the default when the caller does not supply a logger.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func (z *zapLogger) Debug(ctx context.Context, msg string) {
	z.sugar.Debug(msg)
}

func (z *zapLogger) Debugf(ctx context.Context, format string, args ...interface{}) {
	z.sugar.Debugf(format, args...)
}

func (z *zapLogger) Info(ctx context.Context, msg string) {
	z.sugar.Info(msg)
}

func (z *zapLogger) Infof(ctx context.Context, format string, args ...interface{}) {
	z.sugar.Infof(format, args...)
}

func (z *zapLogger) Warn(ctx context.Context, msg string) {
	z.sugar.Warn(msg)
}

func (z *zapLogger) Warnf(ctx context.Context, format string, args ...interface{}) {
	z.sugar.Warnf(format, args...)
}

func (z *zapLogger) Error(ctx context.Context, msg string) {
	z.sugar.Error(msg)
}

func (z *zapLogger) Errorf(ctx context.Context, format string, args ...interface{}) {
	z.sugar.Errorf(format, args...)
}

func (z *zapLogger) Fatal(ctx context.Context, msg string) {
	z.sugar.Fatal(msg)
}

func (z *zapLogger) Fatalf(ctx context.Context, format string, args ...interface{}) {
	z.sugar.Fatalf(format, args...)
}
