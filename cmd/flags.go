package cmd

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/socialnetwork/go-inflation/config/presets"
)

// configKeys maps flags to the config keys they override.
var configKeys = map[string][]string{
	"log-level":            {"logging.app", "logging.projection"},
	"log-encoder":          {"logging.log-encoder"},
	"projection-log-level": {"logging.projection"},
	"tokens":               {"projection.total-tokens"},
	"issuance":             {"projection.total-issuance"},
	"from":                 {"projection.from"},
	"to":                   {"projection.to"},
	"compound":             {"projection.compound"},
	"push-url":             {"metrics.push-url"},
	"push-job":             {"metrics.push-job"},
}

// bindChangedFlags binds every flag set on the command line to its config key.
// Flags left at their defaults do not override the preset or the config file.
func bindChangedFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.Visit(func(f *pflag.Flag) {
		for _, key := range configKeys[f.Name] {
			if err == nil {
				err = v.BindPFlag(key, f)
			}
		}
	})
	return err
}

func addGlobalFlags(flags *pflag.FlagSet) {
	flags.StringP("config", "c", "", "Load configuration from file")
	flags.StringP("preset", "p", "",
		fmt.Sprintf("preset overwrites default values of the config. options %+s", presets.Options()))
	flags.String("log-level", "", "log level of every module")
	flags.String("projection-log-level", "", "log level of the projection")
	flags.String("log-encoder", "", "log encoder, console or json")
}

func addSupplyFlags(flags *pflag.FlagSet) {
	flags.String("tokens", "", "stake-weighted total of tokens, digits with optional underscores")
	flags.String("issuance", "", "total issuance, digits with optional underscores")
}
