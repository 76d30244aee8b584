// Package presets registers named supply scenarios that replace the default config.
package presets

import (
	"errors"
	"fmt"
	"sort"

	"github.com/socialnetwork/go-inflation/config"
)

// ErrUnknownPreset is returned by Get for a name that was never registered.
var ErrUnknownPreset = errors.New("unknown preset")

var presets = map[string]config.Config{}

func register(name string, conf config.Config) {
	if _, exist := presets[name]; exist {
		panic(fmt.Sprintf("preset with name %s already exists", name))
	}
	conf.Preset = name
	presets[name] = conf
}

// Options returns the names of all registered presets.
func Options() []string {
	rst := make([]string, 0, len(presets))
	for name := range presets {
		rst = append(rst, name)
	}
	sort.Strings(rst)
	return rst
}

// Get returns a copy of the preset config.
func Get(name string) (config.Config, error) {
	conf, exist := presets[name]
	if !exist {
		return config.Config{}, fmt.Errorf("%w %s. select one of %v", ErrUnknownPreset, name, Options())
	}
	if conf.Metrics.Headers != nil {
		headers := make(map[string]string, len(conf.Metrics.Headers))
		for k, v := range conf.Metrics.Headers {
			headers[k] = v
		}
		conf.Metrics.Headers = headers
	}
	return conf, nil
}
