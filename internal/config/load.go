package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Environment variables read by FromEnv.
const (
	EnvConfig       = "COLOURS_CONFIG"
	EnvFormula      = "COLOURS_FORMULA"
	EnvScheme       = "COLOURS_SCHEME"
	EnvFormat       = "COLOURS_FORMAT"
	EnvPreview      = "COLOURS_PREVIEW"
	EnvPreviewWidth = "COLOURS_PREVIEW_WIDTH"
)

// Load reads a TOML or YAML config file. An empty path yields an empty layer.
func Load(path string) (Layer, error) {
	var layer Layer
	path = strings.TrimSpace(path)
	if path == "" {
		return layer, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return layer, fmt.Errorf("failed to read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&layer); err != nil {
			return layer, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes to io.EOF.
		if err := dec.Decode(&layer); err != nil && !errors.Is(err, io.EOF) {
			return layer, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return layer, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return layer, nil
}

// FromEnv builds a layer from COLOURS_* variables. A nil getenv reads nothing.
func FromEnv(getenv func(string) string) (Layer, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}

	var layer Layer
	var errs []error

	setString := func(target **string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		*target = &raw
	}

	setString(&layer.Formula, EnvFormula)
	setString(&layer.Scheme, EnvScheme)
	setString(&layer.Format, EnvFormat)

	if raw := strings.TrimSpace(getenv(EnvPreview)); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvPreview, err))
		} else {
			layer.Preview = &v
		}
	}

	if raw := strings.TrimSpace(getenv(EnvPreviewWidth)); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvPreviewWidth, err))
		} else {
			layer.PreviewWidth = &v
		}
	}

	return layer, errors.Join(errs...)
}
