package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/scribe/internal/input/keymap"
	"github.com/dshills/scribe/internal/input/repeat"
	"github.com/dshills/scribe/internal/log"
)

// Default values for editor settings.
const (
	DefaultTabSize   = 4
	DefaultFrameRate = 60
	DefaultTheme     = "default"

	// UserKeymapName is the registry name for bindings read from the file.
	UserKeymapName = "user"
)

// Config is the complete scribe configuration.
type Config struct {
	Editor  EditorConfig     `toml:"editor" yaml:"editor"`
	Repeat  RepeatConfig     `toml:"repeat" yaml:"repeat"`
	Theme   ThemeConfig      `toml:"theme" yaml:"theme"`
	Keymap  []keymap.Binding `toml:"keymap" yaml:"keymap"`
	Plugins PluginConfig     `toml:"plugins" yaml:"plugins"`
	Log     LogConfig        `toml:"log" yaml:"log"`
}

// EditorConfig contains buffer and display settings.
type EditorConfig struct {
	// TabSize is the number of columns a tab expands to when drawn.
	TabSize int `toml:"tab_size" yaml:"tab_size"`

	// LineNumbers shows the line-number bar.
	LineNumbers bool `toml:"line_numbers" yaml:"line_numbers"`

	// InvariantChecks verifies the buffer after every mutation.
	InvariantChecks bool `toml:"invariant_checks" yaml:"invariant_checks"`

	// FrameRate is the number of ticks per second.
	FrameRate int `toml:"frame_rate" yaml:"frame_rate"`

	// PageLines overrides the PageUp/PageDown distance. Zero follows the
	// terminal height.
	PageLines int `toml:"page_lines" yaml:"page_lines"`
}

// RepeatConfig contains key-repeat timing.
type RepeatConfig struct {
	StartDelay  Duration `toml:"start_delay" yaml:"start_delay"`
	RepeatDelay Duration `toml:"repeat_delay" yaml:"repeat_delay"`
}

// ThemeConfig selects a theme and overrides individual colors.
type ThemeConfig struct {
	// Name is the built-in theme to start from.
	Name string `toml:"name" yaml:"name"`

	// Colors maps a theme slot (e.g. "background0") to a hex color.
	Colors map[string]string `toml:"colors,omitempty" yaml:"colors,omitempty"`
}

// PluginConfig controls Lua plugins.
type PluginConfig struct {
	Enabled bool     `toml:"enabled" yaml:"enabled"`
	Paths   []string `toml:"paths,omitempty" yaml:"paths,omitempty"`
}

// LogConfig controls the log file.
type LogConfig struct {
	// File is the log path. Empty disables logging.
	File string `toml:"file" yaml:"file"`

	// Level is the minimum level written: debug, info, warn or error.
	Level string `toml:"level" yaml:"level"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	rc := repeat.DefaultConfig()
	return &Config{
		Editor: EditorConfig{
			TabSize:     DefaultTabSize,
			LineNumbers: true,
			FrameRate:   DefaultFrameRate,
		},
		Repeat: RepeatConfig{
			StartDelay:  Duration(rc.StartDelay),
			RepeatDelay: Duration(rc.RepeatDelay),
		},
		Theme: ThemeConfig{
			Name: DefaultTheme,
		},
		Plugins: PluginConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	out := *c
	if c.Keymap != nil {
		out.Keymap = append([]keymap.Binding(nil), c.Keymap...)
	}
	if c.Theme.Colors != nil {
		out.Theme.Colors = make(map[string]string, len(c.Theme.Colors))
		for k, v := range c.Theme.Colors {
			out.Theme.Colors[k] = v
		}
	}
	if c.Plugins.Paths != nil {
		out.Plugins.Paths = append([]string(nil), c.Plugins.Paths...)
	}
	return &out
}

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	if c.Editor.TabSize < 1 || c.Editor.TabSize > 16 {
		return &ValidationError{Field: "editor.tab_size", Message: fmt.Sprintf("must be between 1 and 16, got %d", c.Editor.TabSize)}
	}
	if c.Editor.FrameRate < 1 || c.Editor.FrameRate > 240 {
		return &ValidationError{Field: "editor.frame_rate", Message: fmt.Sprintf("must be between 1 and 240, got %d", c.Editor.FrameRate)}
	}
	if c.Editor.PageLines < 0 {
		return &ValidationError{Field: "editor.page_lines", Message: "must not be negative"}
	}
	if err := c.RepeatTiming().Validate(); err != nil {
		return &ValidationError{Field: "repeat", Message: err.Error()}
	}
	if strings.TrimSpace(c.Theme.Name) == "" {
		return &ValidationError{Field: "theme.name", Message: "must not be empty"}
	}
	for slot, hex := range c.Theme.Colors {
		if _, err := colorful.Hex(hex); err != nil {
			return &ValidationError{Field: "theme.colors." + slot, Message: fmt.Sprintf("invalid color %q", hex)}
		}
	}
	if err := c.UserKeymap().Validate(); err != nil {
		return &ValidationError{Field: "keymap", Message: err.Error()}
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return &ValidationError{Field: "log.level", Message: err.Error()}
	}
	return nil
}

// RepeatTiming returns the scheduler configuration.
func (c *Config) RepeatTiming() repeat.Config {
	return repeat.Config{
		StartDelay:  time.Duration(c.Repeat.StartDelay),
		RepeatDelay: time.Duration(c.Repeat.RepeatDelay),
	}
}

// UserKeymap returns the file bindings as a user-priority keymap.
func (c *Config) UserKeymap() *keymap.Keymap {
	km := keymap.NewKeymap(UserKeymapName).
		WithSource(keymap.SourceUser).
		WithPriority(keymap.PriorityUser)
	for _, b := range c.Keymap {
		km.AddBinding(b)
	}
	return km
}

// LogLevel returns the parsed log level, falling back to info.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.LevelInfo
	}
	return level
}

// FrameInterval returns the time between ticks.
func (c *Config) FrameInterval() time.Duration {
	if c.Editor.FrameRate <= 0 {
		return time.Second / DefaultFrameRate
	}
	return time.Second / time.Duration(c.Editor.FrameRate)
}

// Duration is a time.Duration that reads and writes strings like "400ms".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
// A bare integer is taken as milliseconds.
func (d *Duration) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" {
		return fmt.Errorf("config: empty duration")
	}
	if isDigits(s) {
		s += "ms"
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("config: invalid duration %q: %w", string(text), err)
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// String returns the duration in time.Duration notation.
func (d Duration) String() string {
	return time.Duration(d).String()
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
