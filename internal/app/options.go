package app

import (
	"os"

	"github.com/dshills/scribe/internal/config"
)

// Options are the command-line settings. Non-zero fields override the
// configuration file and environment.
type Options struct {
	// ConfigPath is the configuration file; "" means config.DefaultPath().
	ConfigPath string

	// File is the file to edit; "" starts with a scratch buffer.
	File string

	// Theme overrides theme.name.
	Theme string

	// LogFile overrides log.file.
	LogFile string

	// Debug sets the log level to debug and enables dispatch metrics.
	Debug bool

	// Plugins are loaded after plugins.paths.
	Plugins []string

	// NoPlugins disables plugin loading.
	NoPlugins bool

	// NoWatch disables hot reload of the configuration and the file.
	NoWatch bool

	// Env looks up SCRIBE_* variables; nil means os.LookupEnv.
	Env config.LookupFunc
}

// ConfigFile returns the configuration path in use.
func (o Options) ConfigFile() string {
	if o.ConfigPath != "" {
		return o.ConfigPath
	}
	return config.DefaultPath()
}

// LoadConfig reads the configuration file, applies the environment and
// then the options, and validates the result.
func LoadConfig(opts Options) (*config.Config, error) {
	cfg, err := config.Load(config.OSReader(), opts.ConfigFile())
	if err != nil {
		return nil, err
	}

	env := opts.Env
	if env == nil {
		env = os.LookupEnv
	}
	if cfg, err = cfg.ApplyEnv(env); err != nil {
		return nil, err
	}

	opts.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (o Options) apply(cfg *config.Config) {
	if o.Theme != "" {
		cfg.Theme.Name = o.Theme
	}
	if o.LogFile != "" {
		cfg.Log.File = o.LogFile
	}
	if o.Debug {
		cfg.Log.Level = "debug"
	}
	cfg.Plugins.Paths = append(cfg.Plugins.Paths, o.Plugins...)
	if o.NoPlugins {
		cfg.Plugins.Enabled = false
	}
}

// NoEnv is a lookup that finds no variables.
func NoEnv(string) (string, bool) {
	return "", false
}
