package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"nearbychat/config"
)

// Logger wraps a zap sugared logger. The zero value is usable and
// discards everything, so tests can pass Logger{}.
type Logger struct {
	sugar *zap.SugaredLogger
}

func NewLogger(cfg *config.Config) (*Logger, error) {
	var zapCfg zap.Config
	if cfg.LoggerMode.Prod {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	if cfg.LoggerMode.Level != "" {
		level, err := zapcore.ParseLevel(cfg.LoggerMode.Level)
		if err != nil {
			return nil, err
		}
		zapCfg.Level = zap.NewAtomicLevelAt(level)
	}

	z, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	return &Logger{sugar: z.Sugar()}, nil
}

func (l *Logger) base() *zap.SugaredLogger {
	if l == nil || l.sugar == nil {
		return zap.NewNop().Sugar()
	}
	return l.sugar
}

func (l Logger) Debug(msg string, keysAndValues ...any) { l.base().Debugw(msg, keysAndValues...) }
func (l Logger) Info(msg string, keysAndValues ...any)  { l.base().Infow(msg, keysAndValues...) }
func (l Logger) Warn(msg string, keysAndValues ...any)  { l.base().Warnw(msg, keysAndValues...) }
func (l Logger) Error(msg string, keysAndValues ...any) { l.base().Errorw(msg, keysAndValues...) }

func (l Logger) Debugf(template string, args ...any) { l.base().Debugf(template, args...) }
func (l Logger) Infof(template string, args ...any)  { l.base().Infof(template, args...) }
func (l Logger) Errorf(template string, args ...any) { l.base().Errorf(template, args...) }

// Sync flushes buffered log entries.
func (l Logger) Sync() error {
	if l.sugar == nil {
		return nil
	}
	return l.sugar.Sync()
}
