package lua

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/scribe/internal/dispatcher"
	"github.com/dshills/scribe/internal/engine/buffer"
	"github.com/dshills/scribe/internal/log"
)

// KeymapName is the keymap layer plugin bindings are added to.
const KeymapName = "plugin"

// Host loads plugins into one shared Lua state and connects them to a
// dispatcher.
type Host struct {
	state *State
	disp  *dispatcher.Dispatcher
	buf   *buffer.Buffer

	// ctx is set while a plugin command runs.
	ctx *dispatcher.Context

	commands []string
	files    []string
}

// Option configures a Host.
type Option func(*hostConfig)

type hostConfig struct {
	buf     *buffer.Buffer
	timeout time.Duration
}

// WithBuffer attaches the buffer the buffer API uses outside commands,
// for example while a plugin file is loading.
func WithBuffer(buf *buffer.Buffer) Option {
	return func(c *hostConfig) {
		c.buf = buf
	}
}

// WithTimeout sets the execution timeout for every call into Lua.
func WithTimeout(d time.Duration) Option {
	return func(c *hostConfig) {
		c.timeout = d
	}
}

// NewHost creates a host that registers plugin commands and bindings on
// disp.
func NewHost(disp *dispatcher.Dispatcher, opts ...Option) *Host {
	cfg := hostConfig{timeout: DefaultExecutionTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}

	h := &Host{
		state: NewState(WithExecutionTimeout(cfg.timeout)),
		disp:  disp,
		buf:   cfg.buf,
	}
	h.install()
	return h
}

// State returns the underlying Lua state.
func (h *Host) State() *State {
	return h.state
}

// LoadFile runs the plugin at path.
func (h *Host) LoadFile(path string) error {
	if err := h.state.DoFile(path); err != nil {
		log.ErrorErr(log.CatPlugin, "plugin failed", err, "path", path)
		return &LoadError{Path: path, Err: err}
	}
	h.files = append(h.files, path)
	log.Info(log.CatPlugin, "plugin loaded", "path", path)
	return nil
}

// LoadString runs a plugin chunk; name identifies it in errors.
func (h *Host) LoadString(name, code string) error {
	if err := h.state.DoString(code); err != nil {
		log.ErrorErr(log.CatPlugin, "plugin failed", err, "name", name)
		return &LoadError{Path: name, Err: err}
	}
	h.files = append(h.files, name)
	return nil
}

// LoadPaths loads every path in order. A directory contributes its *.lua
// files in name order; subdirectories are not searched. Failures do not
// stop later plugins from loading and are joined in the returned error.
func (h *Host) LoadPaths(paths []string) error {
	var errs []error
	for _, path := range paths {
		files, err := pluginFiles(path)
		if err != nil {
			errs = append(errs, &LoadError{Path: path, Err: err})
			continue
		}
		for _, f := range files {
			if err := h.LoadFile(f); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func pluginFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".lua") {
			files = append(files, filepath.Join(path, e.Name()))
		}
	}
	return files, nil
}

// Commands returns the registered plugin command names, sorted.
func (h *Host) Commands() []string {
	names := slices.Clone(h.commands)
	slices.Sort(names)
	return names
}

// Files returns the loaded plugins in load order.
func (h *Host) Files() []string {
	return slices.Clone(h.files)
}

// Close unregisters every plugin command and binding and closes the Lua
// state.
func (h *Host) Close() error {
	for _, name := range h.commands {
		h.disp.Handlers().Unregister(name)
	}
	h.commands = nil
	h.disp.Keymaps().Unregister(KeymapName)
	return h.state.Close()
}

// runCommand calls a plugin command. A string returned by the function
// becomes the status message.
func (h *Host) runCommand(name string, fn *lua.LFunction, ctx *dispatcher.Context) error {
	prev := h.ctx
	h.ctx = ctx
	defer func() { h.ctx = prev }()

	results, err := h.state.CallFunction(fn)
	if err != nil {
		return fmt.Errorf("plugin command %s: %w", name, err)
	}
	if len(results) > 0 {
		if s, ok := results[0].(lua.LString); ok {
			ctx.SetMessage("%s", string(s))
		}
	}
	return nil
}

func (h *Host) buffer(L *lua.LState) *buffer.Buffer {
	if h.ctx != nil && h.ctx.Buffer != nil {
		return h.ctx.Buffer
	}
	if h.buf == nil {
		L.RaiseError("%s", ErrNoBuffer.Error())
	}
	return h.buf
}
