package config

import (
	"fmt"
	"os"
	"strings"

	oerrors "github.com/yamlwhisperer/cli/internal/errors"
	"github.com/yamlwhisperer/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// configEnv names the environment variable that overrides the config path.
const configEnv = "YAMLW_CONFIG"

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPathResult contains the resolved config path and its source.
type ResolveConfigPathResult struct {
	// ConfigPath is the resolved config file path.
	ConfigPath string
	// Source indicates where the config path came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) YAMLW_CONFIG env, (3) ~/.yaml-whisperer/config.yaml.
// When the home directory is unknown the default path is empty.
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolveConfigPathResult, error) {
	result := ResolveConfigPathResult{
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv(configEnv)

	// Without a home directory there is no default config file. The
	// default is optional, so this only matters when nothing else is set.
	var defaultPath string
	if paths, err := DefaultPaths(); err != nil {
		output.Debug("no default config path", "error", err)
	} else {
		defaultPath = paths.ConfigFile
	}

	switch {
	case opts.FlagValue != "":
		result.ConfigPath = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		if defaultPath != "" {
			result.Shadowed[SourceDefault] = defaultPath
		}
	case envValue != "":
		result.ConfigPath = envValue
		result.Source = SourceEnv
		if defaultPath != "" {
			result.Shadowed[SourceDefault] = defaultPath
		}
	default:
		result.ConfigPath = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// FlagOverrides carries command-line values. A nil field means the flag
// was not set explicitly.
type FlagOverrides struct {
	Output        *string
	MultiDocument *bool
	WarnSkipped   *bool
	Explain       *bool
	Timestamps    *bool
}

// ResolveOptions contains the inputs for Resolve.
type ResolveOptions struct {
	// ConfigPath is the already-resolved config path.
	ConfigPath ResolveConfigPathResult

	// Loader is the loader that produced Config, used for source lookup.
	Loader *Loader

	// Config is the loaded file+env configuration.
	Config *Config

	// Flags are the explicitly set command-line values.
	Flags FlagOverrides
}

// ResolvedConfig is the effective configuration for one run.
type ResolvedConfig struct {
	ConfigPath    string
	Output        output.OutputFormat
	MultiDocument bool
	WarnSkipped   bool
	Explain       bool

	// Timestamps is nil when neither flag, env nor config set it.
	Timestamps *bool

	// Values records every resolved key for debug logging.
	Values []ResolvedValue
}

// Resolve applies flag > env > config > default precedence to every key.
func Resolve(opts ResolveOptions) (*ResolvedConfig, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = DefaultConfig()
	}

	source := func(key string) ConfigSource {
		if opts.Loader == nil {
			return SourceDefault
		}
		return opts.Loader.Source(key)
	}

	rc := &ResolvedConfig{
		ConfigPath: opts.ConfigPath.ConfigPath,
		Values: []ResolvedValue{{
			Key:      "config",
			Value:    opts.ConfigPath.ConfigPath,
			Source:   opts.ConfigPath.Source,
			Shadowed: shadowedStrings(opts.ConfigPath.Shadowed),
		}},
	}

	outputValue, v := resolveString("output", opts.Flags.Output, cfg.Output, source("output"))
	rc.Values = append(rc.Values, v)
	rc.Output = output.ParseOutputFormat(outputValue)
	if !rc.Output.IsValid() {
		return nil, &oerrors.DetailError{
			Type:     "configuration invalid",
			Message:  fmt.Sprintf("output format %q is not supported", outputValue),
			Location: locationFor(v.Source, rc.ConfigPath),
			Context:  map[string]string{"Source": string(v.Source)},
			Hint:     "Use one of: " + strings.Join(output.ValidFormats(), ", "),
			Cause:    oerrors.ErrConfig,
		}
	}

	rc.MultiDocument, v = resolveBool("multiDocument", opts.Flags.MultiDocument, cfg.MultiDocument, source("multiDocument"))
	rc.Values = append(rc.Values, v)

	rc.WarnSkipped, v = resolveBool("warnSkipped", opts.Flags.WarnSkipped, cfg.WarnSkipped, source("warnSkipped"))
	rc.Values = append(rc.Values, v)

	rc.Explain, v = resolveBool("explain", opts.Flags.Explain, cfg.Explain, source("explain"))
	rc.Values = append(rc.Values, v)

	switch {
	case opts.Flags.Timestamps != nil:
		rc.Timestamps = opts.Flags.Timestamps
		rc.Values = append(rc.Values, ResolvedValue{Key: "log.timestamps", Value: *rc.Timestamps, Source: SourceFlag})
	case cfg.Log.Timestamps != nil:
		rc.Timestamps = cfg.Log.Timestamps
		rc.Values = append(rc.Values, ResolvedValue{Key: "log.timestamps", Value: *rc.Timestamps, Source: source("log.timestamps")})
	}

	return rc, nil
}

func resolveString(key string, flag *string, loaded string, loadedSource ConfigSource) (string, ResolvedValue) {
	rv := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]any)}
	if flag != nil {
		rv.Value = *flag
		rv.Source = SourceFlag
		if loadedSource != SourceDefault {
			rv.Shadowed[loadedSource] = loaded
		}
		return *flag, rv
	}
	rv.Value = loaded
	rv.Source = loadedSource
	return loaded, rv
}

func resolveBool(key string, flag *bool, loaded bool, loadedSource ConfigSource) (bool, ResolvedValue) {
	rv := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]any)}
	if flag != nil {
		rv.Value = *flag
		rv.Source = SourceFlag
		if loadedSource != SourceDefault {
			rv.Shadowed[loadedSource] = loaded
		}
		return *flag, rv
	}
	rv.Value = loaded
	rv.Source = loadedSource
	return loaded, rv
}

func shadowedStrings(in map[ConfigSource]string) map[ConfigSource]any {
	out := make(map[ConfigSource]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func locationFor(source ConfigSource, configPath string) string {
	if source == SourceConfig {
		return configPath
	}
	return ""
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
