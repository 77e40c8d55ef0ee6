package logger

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const ginKey = "logger"

// New builds the process logger: JSON output in production, a colored
// console encoder otherwise. Unknown levels fall back to info.
func New(env, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build(zap.Fields(
		zap.String("service", "starwars-api"),
		zap.String("environment", env),
	))
}

// Set stores a request-scoped logger on the gin context.
func Set(c *gin.Context, l *zap.Logger) {
	c.Set(ginKey, l)
}

// FromGin returns the request-scoped logger, or the global zap logger when
// none was set.
func FromGin(c *gin.Context) *zap.Logger {
	if l, ok := c.Get(ginKey); ok {
		if zl, ok := l.(*zap.Logger); ok {
			return zl
		}
	}
	return zap.L()
}
