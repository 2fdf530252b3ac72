package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogConfig ...
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Production bool   `mapstructure:"production"`
}

// NewLogger builds the root zap logger
func NewLogger(conf LogConfig) *zap.Logger {
	level := zapcore.InfoLevel
	err := level.Set(conf.Level)
	if err != nil {
		panic(err)
	}

	var zapConf zap.Config
	if conf.Production {
		zapConf = zap.NewProductionConfig()
	} else {
		zapConf = zap.NewDevelopmentConfig()
	}
	zapConf.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapConf.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
