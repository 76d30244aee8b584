// Package config contains the configuration of the payout tools.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/socialnetwork/go-inflation/metrics"
	"github.com/socialnetwork/go-inflation/projection"
)

const defaultConfigFileName = "./inflation.toml"

// Config defines the top level configuration of the payout tools.
type Config struct {
	Preset     string             `mapstructure:"preset"`
	Logging    LoggerConfig       `mapstructure:"logging"`
	Projection projection.Config  `mapstructure:"projection"`
	Metrics    metrics.PushConfig `mapstructure:"metrics"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Logging:    defaultLoggingConfig(),
		Projection: projection.DefaultConfig(),
		Metrics:    metrics.DefaultPushConfig(),
	}
}

// LoadConfig reads the config file into vip.
// If fileLocation is empty the default file is read when it exists.
func LoadConfig(fileLocation string, vip *viper.Viper) error {
	optional := fileLocation == ""
	if optional {
		fileLocation = defaultConfigFileName
	}
	vip.SetConfigFile(fileLocation)
	if err := vip.ReadInConfig(); err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file %w", err)
	}
	return nil
}

// DecodeHook returns the hooks used to decode the config.
func DecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		AmountDecodeFunc(),
		mapstructure.TextUnmarshallerHookFunc(),
	)
}

// DecoderOptions returns viper options for decoding into Config.
func DecoderOptions() []viper.DecoderConfigOption {
	return []viper.DecoderConfigOption{
		viper.DecodeHook(DecodeHook()),
		WithZeroFields(),
		WithIgnoreUntagged(),
		WithErrorUnused(),
	}
}

func WithZeroFields() viper.DecoderConfigOption {
	return func(cfg *mapstructure.DecoderConfig) {
		cfg.ZeroFields = true
	}
}

func WithIgnoreUntagged() viper.DecoderConfigOption {
	return func(cfg *mapstructure.DecoderConfig) {
		cfg.IgnoreUntaggedFields = true
	}
}

func WithErrorUnused() viper.DecoderConfigOption {
	return func(cfg *mapstructure.DecoderConfig) {
		cfg.ErrorUnused = true
	}
}
