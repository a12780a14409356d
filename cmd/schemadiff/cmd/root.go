package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/speakeasy-api/schemadiff/schema"
)

const (
	colorModeAuto   = "auto"
	colorModeAlways = "always"
	colorModeNever  = "never"
)

var supportedColorModes = []string{
	colorModeAuto,
	colorModeAlways,
	colorModeNever,
}

// Config keys; environment variables are SCHEMADIFF_ followed by the key in
// upper case with "-" and "." replaced by "_".
const (
	keyLogLevel     = "log-level"
	keyColor        = "color"
	keyIndent       = "indent"
	keyDiffOutput   = "diff.output"
	keyMergeOutput  = "merge.output"
	defaultCfgFile  = ".schemadiff.yaml"
	envPrefix       = "SCHEMADIFF"
	defaultIndent   = 2
	defaultLogLevel = ""
)

var longRootCmdDescription = `schemadiff compares and merges JSON Schema (draft-07) documents.

Every subschema reachable through properties, items and oneOf gets a
reference path such as "user/tags/*". diff reports paths that are missing
on one side, declare different types or disagree on their enum values;
merge folds the second schema into the first.
`

// ExitError carries a process exit status without an error message.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

type rootOpts struct {
	cfgFile string
	v       *viper.Viper
}

// NewRootCmd builds the schemadiff command tree with its own configuration.
func NewRootCmd() *cobra.Command {
	opts := &rootOpts{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "schemadiff",
		Short:         "Compare and merge JSON Schema documents",
		Long:          longRootCmdDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.initConfig()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/"+defaultCfgFile+")")
	flags.String(keyLogLevel, defaultLogLevel, "log level: error, warn, info or debug (default: no logging)")
	flags.String(keyColor, colorModeAuto, fmt.Sprintf("color mode, the possible values are %v", supportedColorModes))
	flags.Int(keyIndent, defaultIndent, "spaces per indentation level for JSON output")
	for _, key := range []string{keyLogLevel, keyColor, keyIndent} {
		_ = opts.v.BindPFlag(key, flags.Lookup(key))
	}

	rootCmd.AddCommand(
		newDiffCmd(opts),
		newMergeCmd(opts),
		newFmtCmd(opts),
		newShareCmd(),
		newRefsCmd(opts),
	)
	rootCmd.DisableAutoGenTag = true
	return rootCmd
}

// Execute runs the command line and returns the process exit status.
func Execute() int {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		fmt.Fprintf(rootCmd.ErrOrStderr(), "schemadiff: %v\n", err)
		return 1
	}
	return 0
}

// initConfig reads the config file and environment variables. A missing
// default config file is not an error.
func (o *rootOpts) initConfig() error {
	o.v.SetEnvPrefix(envPrefix)
	o.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	o.v.AutomaticEnv()

	cfgFile := o.cfgFile
	explicit := cfgFile != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		cfgFile = filepath.Join(home, defaultCfgFile)
	}
	o.v.SetConfigFile(cfgFile)

	if err := o.v.ReadInConfig(); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
	}
	return nil
}

func (o *rootOpts) schemaOptions(cmd *cobra.Command) schema.Options {
	return schema.Options{
		LogLevel:  o.v.GetString(keyLogLevel),
		LogWriter: cmd.ErrOrStderr(),
	}
}

func (o *rootOpts) indent() (int, error) {
	n := o.v.GetInt(keyIndent)
	if n < 0 {
		return 0, fmt.Errorf("invalid indent %d", n)
	}
	return n, nil
}

// useColor decides whether output to w is colored.
func (o *rootOpts) useColor(w io.Writer) (bool, error) {
	switch mode := o.v.GetString(keyColor); mode {
	case colorModeAlways:
		return true, nil
	case colorModeNever:
		return false, nil
	case colorModeAuto, "":
		f, ok := w.(*os.File)
		if !ok {
			return false, nil
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
	default:
		return false, fmt.Errorf("invalid color mode %q, the possible values are %v", mode, supportedColorModes)
	}
}
