// Package cmd contains the command line interface of the payout tools.
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/socialnetwork/go-inflation/config"
	"github.com/socialnetwork/go-inflation/config/presets"
	"github.com/socialnetwork/go-inflation/log"
)

var (
	// Version is the app's semantic version. Designed to be overwritten by make.
	Version string

	// Branch is the git branch used to build the App. Designed to be overwritten by make.
	Branch string

	// Commit is the git commit used to build the app. Designed to be overwritten by make.
	Commit string
)

// Logger names.
const (
	AppLogger        = "inflation"
	ProjectionLogger = "projection"
)

// App holds the loaded config and loggers of a single command invocation.
type App struct {
	Config        config.Config
	log           *zap.Logger
	projectionLog *zap.Logger
	out           io.Writer
}

func newApp(c *cobra.Command) (*App, error) {
	flags := c.Flags()
	path, err := flags.GetString("config")
	if err != nil {
		return nil, log.ErrBadFlags(err)
	}
	preset, err := flags.GetString("preset")
	if err != nil {
		return nil, log.ErrBadFlags(err)
	}
	app := &App{
		Config: config.DefaultConfig(),
		out:    c.OutOrStdout(),
	}
	if err := loadConfig(&app.Config, preset, path, flags); err != nil {
		return nil, err
	}
	logging := app.Config.Logging
	if app.log, err = newLogger(AppLogger, logging.AppLoggerLevel, logging.Encoder); err != nil {
		return nil, err
	}
	if app.projectionLog, err = newLogger(ProjectionLogger, logging.ProjectionLoggerLevel, logging.Encoder); err != nil {
		return nil, err
	}
	app.log.Debug("loaded config",
		zap.String("preset", app.Config.Preset),
		zap.String("path", path),
	)
	return app, nil
}

// loadConfig loads config and preset (if provided) into the provided config.
// It first loads the preset, then overrides it with values from the config file
// and finally with the flags set on the command line.
func loadConfig(conf *config.Config, preset, path string, flags *pflag.FlagSet) error {
	v := viper.New()
	if err := config.LoadConfig(path, v); err != nil {
		return log.ErrMalformedConfig(err)
	}

	// override default config with preset if provided
	if len(preset) == 0 && v.IsSet("preset") {
		preset = v.GetString("preset")
	}
	if len(preset) > 0 {
		p, err := presets.Get(preset)
		if err != nil {
			return log.ErrBadFlags(err)
		}
		*conf = p
	}

	if err := bindChangedFlags(v, flags); err != nil {
		return log.ErrBadFlags(err)
	}
	if err := v.Unmarshal(conf, config.DecoderOptions()...); err != nil {
		return log.ErrMalformedConfig(fmt.Errorf("unmarshal config: %w", err))
	}
	return nil
}

func newLogger(module, level string, encoder log.Encoder) (*zap.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, log.ErrMalformedConfig(fmt.Errorf("log level of %s: %w", module, err))
	}
	return log.NewWithLevel(module, lvl, encoder), nil
}
