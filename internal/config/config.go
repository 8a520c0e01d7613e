// Package config resolves command defaults from a config file, the
// environment and command-line flags.
package config

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/colours/internal/colour"
)

// Layer is one source of configuration. Nil fields are unset and leave the
// value from a lower-precedence layer untouched.
type Layer struct {
	Formula      *string `toml:"formula" yaml:"formula"`
	Scheme       *string `toml:"scheme" yaml:"scheme"`
	Format       *string `toml:"format" yaml:"format"`
	Preview      *bool   `toml:"preview" yaml:"preview"`
	PreviewWidth *int    `toml:"preview_width" yaml:"preview_width"`
}

// Settings is the fully resolved configuration.
type Settings struct {
	Formula      colour.Formula
	Scheme       colour.Scheme
	Format       string
	Preview      bool
	PreviewWidth int
}

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Formula:      colour.DefaultFormula,
		Scheme:       colour.SchemeComplementary,
		Format:       FormatText,
		Preview:      true,
		PreviewWidth: 8,
	}
}

// Merge applies layers over base in order, so later layers win.
func Merge(base Settings, layers ...Layer) (Settings, error) {
	out := base
	for _, layer := range layers {
		if layer.Formula != nil {
			f, err := colour.ParseFormula(*layer.Formula)
			if err != nil {
				return out, err
			}
			out.Formula = f
		}
		if layer.Scheme != nil {
			s, err := colour.ParseScheme(*layer.Scheme)
			if err != nil {
				return out, err
			}
			out.Scheme = s
		}
		if layer.Format != nil {
			out.Format = strings.ToLower(strings.TrimSpace(*layer.Format))
		}
		if layer.Preview != nil {
			out.Preview = *layer.Preview
		}
		if layer.PreviewWidth != nil {
			out.PreviewWidth = *layer.PreviewWidth
		}
	}
	return out, out.Validate()
}

// Validate validates the resolved settings.
func (s Settings) Validate() error {
	switch s.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", s.Format)
	}
	if s.PreviewWidth < 1 || s.PreviewWidth > 64 {
		return fmt.Errorf("preview width must be between 1 and 64, got %d", s.PreviewWidth)
	}
	return nil
}
