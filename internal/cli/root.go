// Package cli provides the command-line interface for colours.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/colours/internal/config"
	"github.com/jmylchreest/colours/internal/version"
)

// app carries state shared by every command of one root command tree.
type app struct {
	configPath string
	verbose    bool

	settings config.Settings
	logger   hclog.Logger
}

// NewRootCmd builds the colours command tree.
func NewRootCmd() *cobra.Command {
	a := &app{
		settings: config.Default(),
		logger:   hclog.NewNullLogger(),
	}

	rootCmd := &cobra.Command{
		Use:   "colours",
		Short: "Colour scheme, conversion and distance utility",
		Long: `colours derives related colours from a single input colour, converts
between RGB, HSV, CMYK and CIE L*a*b*, and measures perceptual colour
difference with CIE76, CIE94 or CIE2000.

Colours may be given as #rrggbb, #rgb, rgb(r, g, b) or an SVG colour name.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (.toml or .yaml, default $"+config.EnvConfig+")")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	flags.StringP("format", "f", config.FormatText, "output format (text, json)")
	flags.Bool("preview", true, "show colour swatches when writing to a terminal")
	flags.Int("preview-width", 8, "swatch width in characters (1-64)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newVersionCmd(a),
		newSchemeCmd(a),
		newComplementCmd(a),
		newConvertCmd(a),
		newFromCMYKCmd(a),
		newFromLabCmd(a),
		newDistanceCmd(a),
		newContrastCmd(a),
	)

	return rootCmd
}

// setup resolves settings from file, environment and flags, in increasing
// order of precedence, and creates the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.logger = newLogger(cmd, a.verbose)

	path := a.configPath
	if path == "" {
		path = os.Getenv(config.EnvConfig)
	}

	fileLayer, err := config.Load(path)
	if err != nil {
		return err
	}

	envLayer, err := config.FromEnv(os.Getenv)
	if err != nil {
		return fmt.Errorf("invalid environment: %w", err)
	}

	flagLayer, err := flagsLayer(cmd)
	if err != nil {
		return err
	}

	a.settings, err = config.Merge(config.Default(), fileLayer, envLayer, flagLayer)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a.logger.Debug("resolved settings",
		"config", path,
		"formula", a.settings.Formula,
		"scheme", a.settings.Scheme,
		"format", a.settings.Format,
		"preview", a.settings.Preview,
	)
	return nil
}

// newLogger mirrors the plugin executor's logger: debug output on stderr
// when verbose, discarded otherwise.
func newLogger(cmd *cobra.Command, verbose bool) hclog.Logger {
	if !verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "colours",
			Output: io.Discard,
			Level:  hclog.Off,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "colours",
		Output: cmd.ErrOrStderr(),
		Level:  hclog.Debug,
	})
}

// flagsLayer collects the flags the user actually set on cmd.
func flagsLayer(cmd *cobra.Command) (config.Layer, error) {
	var layer config.Layer
	fs := cmd.Flags()

	for name, target := range map[string]**string{
		"formula": &layer.Formula,
		"scheme":  &layer.Scheme,
		"format":  &layer.Format,
	} {
		if f := fs.Lookup(name); f != nil && f.Changed {
			v := f.Value.String()
			*target = &v
		}
	}

	if fs.Changed("preview") {
		v, err := fs.GetBool("preview")
		if err != nil {
			return layer, err
		}
		layer.Preview = &v
	}
	if fs.Changed("preview-width") {
		v, err := fs.GetInt("preview-width")
		if err != nil {
			return layer, err
		}
		layer.PreviewWidth = &v
	}
	return layer, nil
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.GetInfo()
			if a.settings.Format == config.FormatJSON {
				return writeJSON(cmd.OutOrStdout(), info)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), info.String())
			return err
		},
	}
}
