package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/turtacn/protograph/pkg/errors"
)

// envPrefix is the environment variable prefix for all settings.
const envPrefix = "PROTOGRAPH"

// newViper builds a pre-configured Viper instance: YAML file type,
// PROTOGRAPH_ env prefix, automatic env binding, and a key replacer mapping
// "." → "_" so nested keys like "graph.cutoff" resolve to
// "PROTOGRAPH_GRAPH_CUTOFF".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// Unmarshal only sees keys viper knows about; bind every settable key so
	// env-only configuration works without a config file.
	for _, key := range []string{
		"log.level", "log.format", "log.output_paths", "log.error_output_paths",
		"batch.workers", "batch.file_timeout",
		"graph.cutoff", "graph.output_suffix",
		"metrics.enabled", "metrics.addr", "metrics.namespace",
	} {
		_ = v.BindEnv(key)
	}
	return v
}

// Load reads the YAML file at configPath, merges PROTOGRAPH_* environment
// overrides, applies defaults for unset fields, and validates the result.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.New(errors.ErrCodeSerialization, "cannot read config file").
			WithDetail(configPath).
			WithCause(err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from PROTOGRAPH_* environment
// variables, with no config file required.
//
// Naming convention:
//
//	PROTOGRAPH_<SECTION>_<FIELD>   e.g.  PROTOGRAPH_GRAPH_CUTOFF, PROTOGRAPH_BATCH_WORKERS
func LoadFromEnv() (*Config, error) {
	v := newViper()
	return unmarshalAndFinalize(v)
}

// unmarshalAndFinalize unmarshals viper state into a Config, applies
// defaults, and validates.
func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSerialization, "cannot unmarshal configuration")
	}

	ApplyDefaults(cfg)

	// Validate returns coded errors of its own (cutoff, workers).
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// MustLoad wraps Load and panics on error.  Intended for main() where a
// config-load failure is always fatal.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}
