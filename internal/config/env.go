package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SCRIBE_"

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// envSetters maps an environment variable (without prefix) to the setting
// it overrides.
var envSetters = map[string]func(c *Config, v string) error{
	"TAB_SIZE": func(c *Config, v string) error {
		return setInt(&c.Editor.TabSize, v)
	},
	"LINE_NUMBERS": func(c *Config, v string) error {
		return setBool(&c.Editor.LineNumbers, v)
	},
	"INVARIANT_CHECKS": func(c *Config, v string) error {
		return setBool(&c.Editor.InvariantChecks, v)
	},
	"FRAME_RATE": func(c *Config, v string) error {
		return setInt(&c.Editor.FrameRate, v)
	},
	"PAGE_LINES": func(c *Config, v string) error {
		return setInt(&c.Editor.PageLines, v)
	},
	"REPEAT_START_DELAY": func(c *Config, v string) error {
		return c.Repeat.StartDelay.UnmarshalText([]byte(v))
	},
	"REPEAT_DELAY": func(c *Config, v string) error {
		return c.Repeat.RepeatDelay.UnmarshalText([]byte(v))
	},
	"THEME": func(c *Config, v string) error {
		c.Theme.Name = v
		return nil
	},
	"PLUGINS": func(c *Config, v string) error {
		return setBool(&c.Plugins.Enabled, v)
	},
	"LOG_FILE": func(c *Config, v string) error {
		c.Log.File = v
		return nil
	},
	"LOG_LEVEL": func(c *Config, v string) error {
		c.Log.Level = v
		return nil
	},
}

// EnvVars returns the supported environment variable names.
func EnvVars() []string {
	names := make([]string, 0, len(envSetters))
	for name := range envSetters {
		names = append(names, EnvPrefix+name)
	}
	slices.Sort(names)
	return names
}

// ApplyEnv returns a copy of c with SCRIBE_* overrides applied.
// Empty values are treated as set.
func (c *Config) ApplyEnv(lookup LookupFunc) (*Config, error) {
	out := c.Clone()
	for _, name := range EnvVars() {
		v, ok := lookup(name)
		if !ok {
			continue
		}
		set := envSetters[strings.TrimPrefix(name, EnvPrefix)]
		if err := set(out, strings.TrimSpace(v)); err != nil {
			return nil, fmt.Errorf("config: %s: %w", name, err)
		}
	}
	return out, nil
}

func setInt(dst *int, v string) error {
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid integer %q", v)
	}
	*dst = n
	return nil
}

func setBool(dst *bool, v string) error {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid boolean %q", v)
	}
	*dst = b
	return nil
}
