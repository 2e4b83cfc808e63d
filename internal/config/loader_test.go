package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dshills/scribe/internal/document"
	"github.com/dshills/scribe/internal/input/keymap"
)

const sampleTOML = `
[editor]
tab_size = 8
line_numbers = false

[repeat]
start_delay = "300ms"
repeat_delay = "30ms"

[theme]
name = "default"

[theme.colors]
background0 = "#000000"

[[keymap]]
keys = "<C-w>"
action = "file.save"

[[keymap]]
keys = "<C-o>"
action = "file.open"
arg = "/notes/todo.txt"

[log]
level = "debug"
`

const sampleYAML = `
editor:
  tab_size: 2
  invariant_checks: true
repeat:
  start_delay: 500ms
theme:
  colors:
    caret: "#ff0000"
keymap:
  - keys: "<C-x>"
    action: editor.quit
  - keys: "<C-o>"
    action: file.saveAs
    arg: backup.txt
plugins:
  enabled: false
  paths:
    - init.lua
`

func memReader(files map[string]string) Reader {
	fsys := document.NewMemFS()
	for path, content := range files {
		fsys.AddFile(path, []byte(content))
	}
	return fsys
}

func TestLoadTOML(t *testing.T) {
	r := memReader(map[string]string{"/cfg/config.toml": sampleTOML})

	cfg, err := Load(r, "/cfg/config.toml")
	require.NoError(t, err)

	require.Equal(t, 8, cfg.Editor.TabSize)
	require.False(t, cfg.Editor.LineNumbers)
	require.Equal(t, DefaultFrameRate, cfg.Editor.FrameRate, "unset keys keep defaults")
	require.Equal(t, 300*time.Millisecond, cfg.RepeatTiming().StartDelay)
	require.Equal(t, 30*time.Millisecond, cfg.RepeatTiming().RepeatDelay)
	require.Equal(t, map[string]string{"background0": "#000000"}, cfg.Theme.Colors)
	require.Equal(t, []keymap.Binding{
		keymap.NewBinding("<C-w>", "file.save"),
		keymap.NewBinding("<C-o>", "file.open").WithArg("/notes/todo.txt"),
	}, cfg.Keymap)
	require.Equal(t, "debug", cfg.Log.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoadYAML(t *testing.T) {
	for _, name := range []string{"/cfg/config.yaml", "/cfg/config.yml"} {
		t.Run(filepath.Ext(name), func(t *testing.T) {
			r := memReader(map[string]string{name: sampleYAML})

			cfg, err := Load(r, name)
			require.NoError(t, err)

			require.Equal(t, 2, cfg.Editor.TabSize)
			require.True(t, cfg.Editor.InvariantChecks)
			require.True(t, cfg.Editor.LineNumbers, "unset keys keep defaults")
			require.Equal(t, 500*time.Millisecond, cfg.RepeatTiming().StartDelay)
			require.Equal(t, 25*time.Millisecond, cfg.RepeatTiming().RepeatDelay)
			require.Equal(t, DefaultTheme, cfg.Theme.Name)
			require.Equal(t, "#ff0000", cfg.Theme.Colors["caret"])
			require.Equal(t, "editor.quit", cfg.Keymap[0].Action)
			require.Equal(t, "backup.txt", cfg.Keymap[1].Arg)
			require.False(t, cfg.Plugins.Enabled)
			require.Equal(t, []string{"init.lua"}, cfg.Plugins.Paths)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(memReader(nil), "/nope/config.toml")
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)

	cfg, err = Load(memReader(nil), "")
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
}

func TestLoadReadError(t *testing.T) {
	boom := errors.New("disk on fire")
	r := ReaderFunc(func(string) ([]byte, error) { return nil, boom })

	_, err := Load(r, "/cfg/config.toml")
	require.ErrorIs(t, err, boom)
}

func TestLoadUnsupportedFormat(t *testing.T) {
	_, err := Load(memReader(map[string]string{"/cfg/config.json": "{}"}), "/cfg/config.json")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadTOMLUnknownKeyIsNotFatal(t *testing.T) {
	r := memReader(map[string]string{"/c.toml": "[editor]\ntab_size = 3\nshiny = true\n"})

	cfg, err := Load(r, "/c.toml")
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Editor.TabSize)
}

func TestLoadTOMLParseError(t *testing.T) {
	r := memReader(map[string]string{"/c.toml": "[editor\ntab_size = 3\n"})

	_, err := Load(r, "/c.toml")
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, "/c.toml", perr.Path)
	require.Positive(t, perr.Line)
	require.Contains(t, perr.Error(), "/c.toml")
}

func TestLoadYAMLParseError(t *testing.T) {
	r := memReader(map[string]string{"/c.yaml": "editor:\n  tab_size: abc\n"})

	_, err := Load(r, "/c.yaml")
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, 2, perr.Line)
	require.NotNil(t, errors.Unwrap(perr))
}

func TestLoadOSReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[editor]\ntab_size = 6\n"), 0o644))

	cfg, err := Load(OSReader(), path)
	require.NoError(t, err)
	require.Equal(t, 6, cfg.Editor.TabSize)
}

func TestEncodeDecode(t *testing.T) {
	want := Defaults()
	want.Editor.TabSize = 3
	want.Repeat.StartDelay = Duration(350 * time.Millisecond)
	want.Theme.Colors = map[string]string{"caret": "#abcdef"}
	want.Keymap = []keymap.Binding{keymap.NewBinding("<C-w>", "file.save").WithDescription("Save")}
	want.Plugins.Paths = []string{"init.lua"}

	for _, format := range []Format{FormatTOML, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Encode(want, format)
			require.NoError(t, err)

			got := Defaults()
			require.NoError(t, Decode(data, format, "<test>", got))
			require.Equal(t, want, got)
		})
	}
}

func TestFormatFor(t *testing.T) {
	tests := map[string]Format{
		"a.toml":  FormatTOML,
		"a.TOML":  FormatTOML,
		"a.yaml":  FormatYAML,
		"a/b.yml": FormatYAML,
	}
	for path, want := range tests {
		got, err := FormatFor(path)
		require.NoError(t, err, path)
		require.Equal(t, want, got, path)
	}

	_, err := FormatFor("config")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}
