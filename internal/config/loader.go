package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for configuration.
const envPrefix = "YAMLW"

// envKeys maps configuration keys to their environment variables.
var envKeys = map[string]string{
	"output":         "YAMLW_OUTPUT",
	"multiDocument":  "YAMLW_MULTI_DOCUMENT",
	"warnSkipped":    "YAMLW_WARN_SKIPPED",
	"explain":        "YAMLW_EXPLAIN",
	"log.timestamps": "YAMLW_LOG_TIMESTAMPS",
}

// Loader handles loading and merging configuration from a file and the
// environment. Environment variables take precedence over file values.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for key, env := range envKeys {
		_ = v.BindEnv(key, env)
	}
	v.SetDefault("output", DefaultConfig().Output)

	return &Loader{v: v}
}

// Load reads the config file at path, if it exists, and merges the
// environment over it. A missing file is not an error unless required
// is set.
func (l *Loader) Load(path string, required bool) (*Config, error) {
	if path != "" {
		l.v.SetConfigFile(ExpandTilde(path))
		l.v.SetConfigType("yaml")

		if err := l.v.ReadInConfig(); err != nil {
			if !isNotExist(err) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
			if required {
				return nil, fmt.Errorf("config file %s: %w", path, fs.ErrNotExist)
			}
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Source reports where the current value of key comes from, ignoring
// flags: the environment, the config file, or the built-in default.
func (l *Loader) Source(key string) ConfigSource {
	if env, ok := envKeys[key]; ok {
		if _, set := os.LookupEnv(env); set {
			return SourceEnv
		}
	}
	if l.v.InConfig(key) {
		return SourceConfig
	}
	return SourceDefault
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}
