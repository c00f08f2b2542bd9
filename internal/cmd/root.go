// Package cmd provides the yaml-whisperer root command.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/yamlwhisperer/cli/internal/config"
	oerrors "github.com/yamlwhisperer/cli/internal/errors"
	"github.com/yamlwhisperer/cli/internal/output"
	"github.com/yamlwhisperer/cli/internal/report"
	"github.com/yamlwhisperer/cli/internal/runner"
	"github.com/yamlwhisperer/cli/internal/validate"
	"github.com/yamlwhisperer/cli/internal/version"
)

var (
	// Global flags
	configFlag        string
	outputFormatFlag  string
	verboseFlag       bool
	timestampsFlag    bool
	multiDocumentFlag bool
	warnSkippedFlag   bool
	explainFlag       bool
)

// NewRootCmd creates the root command for the yaml-whisperer CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "yaml-whisperer [flags] <path>...",
		Short: "Validate YAML files and directories",
		Long: `yaml-whisperer checks that YAML files parse.

Each argument is a file or a directory. Directories are searched
recursively for *.yaml files, then *.yml files. Every file is loaded
with safe-load rules and reported as valid, a syntax error, or
unreadable.

Exit codes:
  0  every file is valid
  1  no arguments, or at least one file failed
  2  configuration error

Configuration precedence:
  flag > YAMLW_* env > config file (--config, YAMLW_CONFIG,
  ~/.yaml-whisperer/config.yaml) > default`,
		Example: `  yaml-whisperer k8s/*.yaml
  yaml-whisperer k8s/
  yaml-whisperer -o json k8s/ config.yml`,
		Version:       version.GetInfo().String(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: YAMLW_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&outputFormatFlag, "output", "o", "text", "Output format: text, json, yaml (env: YAMLW_OUTPUT)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")
	rootCmd.PersistentFlags().BoolVar(&multiDocumentFlag, "multi-document", false, "Accept ---separated multi-document streams (env: YAMLW_MULTI_DOCUMENT)")
	rootCmd.PersistentFlags().BoolVar(&warnSkippedFlag, "warn-skipped", false, "Warn about arguments that yield no YAML files (env: YAMLW_WARN_SKIPPED)")
	rootCmd.PersistentFlags().BoolVar(&explainFlag, "explain", false, "Show an annotated source excerpt for syntax errors (env: YAMLW_EXPLAIN)")

	return rootCmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		report.Usage(out, cmd.Name())
		return &oerrors.ExitError{Code: oerrors.ExitFailure, Err: oerrors.ErrUsage, Printed: true}
	}

	rc, err := initializeGlobals(cmd)
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitConfigError, Err: err}
	}

	reporter, err := report.New(rc.Output, out)
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitConfigError, Err: err}
	}

	v := validate.New(validate.Options{
		MultiDocument: rc.MultiDocument,
		Explain:       rc.Explain,
		Color:         rc.Explain && isTerminal(out),
	})

	summary, err := runner.New(v, reporter, runner.Options{WarnSkipped: rc.WarnSkipped}).Run(args)
	if err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	output.Debug("run complete",
		"total", summary.Total(),
		"valid", summary.Valid,
		"syntax_errors", summary.SyntaxErrors,
		"read_errors", summary.ReadErrors,
	)

	if !summary.AllValid() {
		return &oerrors.ExitError{
			Code:    oerrors.ExitFailure,
			Err:     oerrors.Wrap(oerrors.ErrInvalid, fmt.Sprintf("%d of %d files failed", summary.Failed(), summary.Total())),
			Printed: true,
		}
	}
	return nil
}

// initializeGlobals sets up logging, then loads and resolves configuration.
func initializeGlobals(cmd *cobra.Command) (*config.ResolvedConfig, error) {
	logCfg := output.LogConfig{
		Verbose: verboseFlag,
		Writer:  cmd.ErrOrStderr(),
	}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	}
	output.SetupLogging(logCfg)

	configPath, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{
		FlagValue: configFlag,
	})
	if err != nil {
		return nil, oerrors.NewConfigError(err.Error(), "", "Set --config or YAMLW_CONFIG")
	}

	// An explicitly named config file must exist; the default one is optional.
	loader := config.NewLoader()
	cfg, err := loader.Load(configPath.ConfigPath, configPath.Source != config.SourceDefault)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, oerrors.NewNotFoundError(
			fmt.Sprintf("config file from %s does not exist", configPath.Source),
			configPath.ConfigPath,
			"Check the --config flag or YAMLW_CONFIG",
		)
	case err != nil:
		return nil, oerrors.NewConfigError(err.Error(), configPath.ConfigPath, "Check that the file is valid YAML")
	}

	resolved, err := config.Resolve(config.ResolveOptions{
		ConfigPath: configPath,
		Loader:     loader,
		Config:     cfg,
		Flags:      flagOverrides(cmd),
	})
	if err != nil {
		return nil, err
	}

	// Timestamps may also come from env or the config file.
	if logCfg.Timestamps == nil && resolved.Timestamps != nil {
		logCfg.Timestamps = resolved.Timestamps
		output.SetupLogging(logCfg)
	}

	config.LogResolvedValues(resolved.Values)

	return resolved, nil
}

// flagOverrides collects the flags the user set explicitly.
func flagOverrides(cmd *cobra.Command) config.FlagOverrides {
	var f config.FlagOverrides
	flags := cmd.Flags()

	if flags.Changed("output") {
		f.Output = &outputFormatFlag
	}
	if flags.Changed("multi-document") {
		f.MultiDocument = output.BoolPtr(multiDocumentFlag)
	}
	if flags.Changed("warn-skipped") {
		f.WarnSkipped = output.BoolPtr(warnSkippedFlag)
	}
	if flags.Changed("explain") {
		f.Explain = output.BoolPtr(explainFlag)
	}
	if flags.Changed("timestamps") {
		f.Timestamps = output.BoolPtr(timestampsFlag)
	}
	return f
}

// isTerminal reports whether w is the process stdout attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && f == os.Stdout && output.IsTTY()
}
