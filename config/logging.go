package config

import (
	"go.uber.org/zap/zapcore"

	"github.com/socialnetwork/go-inflation/log"
)

const defaultLoggingLevel = zapcore.InfoLevel

// LoggerConfig holds the log encoder and the logging level for each module.
type LoggerConfig struct {
	Encoder               log.Encoder `mapstructure:"log-encoder"`
	AppLoggerLevel        string      `mapstructure:"app"`
	ProjectionLoggerLevel string      `mapstructure:"projection"`
}

func defaultLoggingConfig() LoggerConfig {
	return LoggerConfig{
		Encoder:               log.ConsoleEncoder,
		AppLoggerLevel:        defaultLoggingLevel.String(),
		ProjectionLoggerLevel: defaultLoggingLevel.String(),
	}
}
