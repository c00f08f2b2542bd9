// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps"`
}

// Config represents the yaml-whisperer configuration.
// Loaded from ~/.yaml-whisperer/config.yaml, overridden by YAMLW_* env vars.
type Config struct {
	// Output is the report format: text, json or yaml.
	// Env: YAMLW_OUTPUT, Default: text
	Output string `mapstructure:"output"`

	// MultiDocument accepts ---separated document streams.
	// Env: YAMLW_MULTI_DOCUMENT, Default: false
	MultiDocument bool `mapstructure:"multiDocument"`

	// WarnSkipped logs a warning for every path argument that yields no files.
	// Env: YAMLW_WARN_SKIPPED, Default: false
	WarnSkipped bool `mapstructure:"warnSkipped"`

	// Explain prints an annotated source excerpt beneath syntax errors.
	// Env: YAMLW_EXPLAIN, Default: false
	Explain bool `mapstructure:"explain"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log"`
}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return &Config{
		Output: "text",
	}
}

// ResolvedValue records the final value of one configuration key and
// where it came from.
type ResolvedValue struct {
	// Key is the configuration key (e.g. "output").
	Key string

	// Value is the resolved value.
	Value any

	// Source is where the value came from.
	Source ConfigSource

	// Shadowed holds lower-precedence values that were overridden.
	Shadowed map[ConfigSource]any
}
