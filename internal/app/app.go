package app

import (
	"errors"
	"path/filepath"
	"sync/atomic"

	"github.com/dshills/scribe/internal/config"
	"github.com/dshills/scribe/internal/dispatcher"
	"github.com/dshills/scribe/internal/document"
	"github.com/dshills/scribe/internal/editor"
	"github.com/dshills/scribe/internal/input/key"
	"github.com/dshills/scribe/internal/input/keymap"
	"github.com/dshills/scribe/internal/log"
	"github.com/dshills/scribe/internal/plugin/lua"
	"github.com/dshills/scribe/internal/renderer"
	"github.com/dshills/scribe/internal/renderer/backend"
	"github.com/dshills/scribe/internal/theme"
)

// Screen is the terminal the application runs on.
type Screen interface {
	backend.Surface

	Init() error
	Shutdown()

	// PollEvent blocks for the next event; ok is false once the screen
	// is shut down.
	PollEvent() (ev backend.Event, ok bool)
}

// Application wires the editor together.
type Application struct {
	opts Options
	cfg  *config.Config

	screen   Screen
	session  *editor.Session
	renderer *renderer.Renderer
	plugins  *lua.Host
	watcher  *config.Watcher

	configPath string // absolute
	docPath    string // absolute

	pending  []key.Event
	running  atomic.Bool
	closeLog func()
}

// New loads the configuration and builds every component. The screen is
// initialized by Run.
func New(opts Options, screen Screen) (*Application, error) {
	if screen == nil {
		return nil, &InitError{Component: "screen", Err: errNoScreen}
	}

	app := &Application{opts: opts, screen: screen}
	if err := app.bootstrap(); err != nil {
		app.Close()
		return nil, err
	}
	return app, nil
}

func (app *Application) bootstrap() error {
	cfg, err := LoadConfig(app.opts)
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	app.cfg = cfg

	if err := app.initLogging(); err != nil {
		return &InitError{Component: "log", Err: err}
	}
	log.Info(log.CatApp, "starting", "config", app.opts.ConfigFile(), "file", app.opts.File)

	th, err := theme.Load(cfg.Theme.Name, cfg.Theme.Colors)
	if err != nil {
		return &InitError{Component: "theme", Err: err}
	}

	disp, err := app.newDispatcher()
	if err != nil {
		return &InitError{Component: "keymap", Err: err}
	}

	app.session = editor.New(
		editor.WithDispatcher(disp),
		editor.WithRepeat(cfg.RepeatTiming()),
		editor.WithInvariantChecks(cfg.Editor.InvariantChecks),
	)
	app.renderer = renderer.New(app.screen, th, rendererOptions(cfg))

	app.loadPlugins()

	if app.opts.File != "" {
		if err := app.session.Open(app.opts.File); err != nil && !errors.Is(err, document.ErrNotFound) {
			return &InitError{Component: "file", Err: err}
		}
	}

	if !app.opts.NoWatch {
		app.startWatcher()
	}
	return nil
}

func (app *Application) initLogging() error {
	if app.cfg.Log.File != "" {
		cleanup, err := log.Init(app.cfg.Log.File)
		if err != nil {
			return err
		}
		app.closeLog = cleanup
	}
	log.SetMinLevel(app.cfg.LogLevel())
	return nil
}

func (app *Application) newDispatcher() (*dispatcher.Dispatcher, error) {
	keymaps := keymap.NewRegistry()
	if err := keymaps.Register(keymap.Default()); err != nil {
		return nil, err
	}
	if err := keymaps.Register(app.cfg.UserKeymap()); err != nil {
		return nil, err
	}

	dcfg := dispatcher.DefaultConfig()
	if app.cfg.Editor.PageLines > 0 {
		dcfg = dcfg.WithPageLines(app.cfg.Editor.PageLines)
	}
	if app.opts.Debug {
		dcfg = dcfg.WithMetrics()
	}
	return dispatcher.New(dcfg, keymaps), nil
}

func rendererOptions(cfg *config.Config) renderer.Options {
	return renderer.DefaultOptions().
		WithLineNumbers(cfg.Editor.LineNumbers).
		WithTabSize(cfg.Editor.TabSize)
}

// loadPlugins starts the plugin host. Plugin failures are logged and
// reported in the status line but do not stop the editor.
func (app *Application) loadPlugins() {
	if !app.cfg.Plugins.Enabled || len(app.cfg.Plugins.Paths) == 0 {
		return
	}

	app.plugins = lua.NewHost(app.session.Dispatcher(), lua.WithBuffer(app.session.Buffer()))
	if err := app.plugins.LoadPaths(app.cfg.Plugins.Paths); err != nil {
		log.ErrorErr(log.CatPlugin, "plugins failed to load", err)
		app.session.SetMessage("plugin error: %v", err)
	}
	log.Info(log.CatPlugin, "plugins loaded", "files", len(app.plugins.Files()), "commands", len(app.plugins.Commands()))
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config {
	return app.cfg
}

// Session returns the editing session.
func (app *Application) Session() *editor.Session {
	return app.session
}

// Renderer returns the renderer.
func (app *Application) Renderer() *renderer.Renderer {
	return app.renderer
}

// Plugins returns the plugin host, or nil when no plugins are loaded.
func (app *Application) Plugins() *lua.Host {
	return app.plugins
}

// Close releases the watcher, the plugins and the log file.
func (app *Application) Close() {
	if app.watcher != nil {
		_ = app.watcher.Close()
		app.watcher = nil
	}
	if app.plugins != nil {
		_ = app.plugins.Close()
		app.plugins = nil
	}
	if app.session != nil {
		app.logMetrics()
	}
	if app.closeLog != nil {
		app.closeLog()
		app.closeLog = nil
	}
}

// metricsTop is how many commands the metrics report lists.
const metricsTop = 5

// logMetrics writes the dispatch summary collected in debug mode.
func (app *Application) logMetrics() {
	m := app.session.Dispatcher().Metrics()
	if m == nil {
		return
	}
	s := m.Summary(metricsTop)
	log.Info(log.CatApp, "dispatch metrics",
		"dispatches", s.Dispatches,
		"errors", s.Errors,
		"panics", s.Panics,
		"avg", s.Average)
	for _, cs := range s.Busiest {
		log.Info(log.CatApp, "busiest command",
			"command", cs.Name, "count", cs.Count, "error_rate", cs.ErrorRate())
	}
	for _, cs := range s.Slowest {
		log.Info(log.CatApp, "slowest command",
			"command", cs.Name, "avg", cs.Average(), "max", cs.Max, "error_rate", cs.ErrorRate())
	}
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
