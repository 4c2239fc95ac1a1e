package config

import (
	"os"
	"reflect"
	"strings"

	"github.com/arthur-debert/renumber/pkg/errors"
	"github.com/arthur-debert/renumber/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// Path of the user file; empty means UserConfigPath. An explicit path
	// must exist, the default one may be missing.
	Path string
	// Overrides are dotted keys applied last, e.g. "output.format"
	Overrides map[string]interface{}
}

// Load builds the configuration from all layers
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger(logging.ComponentConfig)

	// 1. Embedded defaults
	k, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	// 2. User file
	path, explicit := opts.Path, opts.Path != ""
	if !explicit {
		path = UserConfigPath()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail(errors.DetailPath, path)
		}
		logger.Debug().Str("path", path).Msg("Loaded user config")
	} else if explicit {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path).
			WithDetail(errors.DetailPath, path)
	}

	// 3. Environment
	err = k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Caller overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	cfg, err := decode(k)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("pattern", cfg.Interactive.Pattern).
		Int("start", cfg.Interactive.Start).
		Str("format", cfg.Output.Format).
		Str("case", cfg.Filesystem.Case).
		Msg("Configuration loaded")
	return cfg, nil
}

// Default returns the configuration made of the embedded defaults alone
func Default() (*Config, error) {
	k, err := loadDefaults()
	if err != nil {
		return nil, err
	}
	return decode(k)
}

func loadDefaults() (*koanf.Koanf, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	return k, nil
}

func decode(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				trimStringHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	cfg.Output.Format = strings.ToLower(cfg.Output.Format)
	cfg.Filesystem.Case = strings.ToLower(cfg.Filesystem.Case)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// trimStringHookFunc strips surrounding whitespace from string values,
// which environment variables often carry
func trimStringHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() == reflect.String && t.Kind() == reflect.String {
			return strings.TrimSpace(data.(string)), nil
		}
		return data, nil
	}
}
