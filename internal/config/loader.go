package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/scribe/internal/log"
)

// Format identifies a configuration file syntax.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// DefaultFileName is the config file looked up in the user config dir.
const DefaultFileName = "config.toml"

// Reader reads whole files. document.FileSystem satisfies it.
type Reader interface {
	ReadFile(path string) ([]byte, error)
}

// ReaderFunc adapts a function to Reader.
type ReaderFunc func(path string) ([]byte, error)

// ReadFile calls f(path).
func (f ReaderFunc) ReadFile(path string) ([]byte, error) {
	return f(path)
}

// OSReader reads from the operating system.
func OSReader() Reader {
	return ReaderFunc(os.ReadFile)
}

// DefaultPath returns $XDG_CONFIG_HOME/scribe/config.toml or the platform
// equivalent. It returns "" when no config dir can be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "scribe", DefaultFileName)
}

// FormatFor returns the format implied by the path's extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads the file at path over the defaults.
// A missing file (or an empty path) returns the defaults and no error.
func Load(r Reader, path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := r.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug(log.CatConfig, "config file not found, using defaults", "path", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := Decode(data, format, path, cfg); err != nil {
		return nil, err
	}
	log.Info(log.CatConfig, "config loaded", "path", path, "format", string(format))
	return cfg, nil
}

// Decode parses data onto cfg. Keys absent from data keep their current
// values. source names the input in errors.
func Decode(data []byte, format Format, source string, cfg *Config) error {
	switch format {
	case FormatTOML:
		return decodeTOML(data, source, cfg)
	case FormatYAML:
		return decodeYAML(data, source, cfg)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Encode serializes cfg in the given format.
func Encode(cfg *Config, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(cfg); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// decodeTOML decodes strictly. Unknown keys are logged, not fatal, so an
// older scribe can still read a newer config.
func decodeTOML(data []byte, source string, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	err := dec.Decode(cfg)
	if err == nil {
		return nil
	}

	var strict *toml.StrictMissingError
	if errors.As(err, &strict) {
		for _, e := range strict.Errors {
			log.Warn(log.CatConfig, "unknown config key", "path", source, "key", strings.Join(e.Key(), "."))
		}
		return nil
	}

	perr := &ParseError{Path: source, Message: err.Error(), Err: err}
	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		perr.Line, perr.Column = derr.Position()
	}
	return perr
}

var yamlLine = regexp.MustCompile(`line (\d+)`)

func decodeYAML(data []byte, source string, cfg *Config) error {
	err := yaml.Unmarshal(data, cfg)
	if err == nil {
		return nil
	}

	perr := &ParseError{Path: source, Message: err.Error(), Err: err}
	if m := yamlLine.FindStringSubmatch(err.Error()); m != nil {
		perr.Line, _ = strconv.Atoi(m[1])
	}
	return perr
}
