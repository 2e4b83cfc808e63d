package app

import (
	"github.com/dshills/scribe/internal/config"
	"github.com/dshills/scribe/internal/log"
	"github.com/dshills/scribe/internal/theme"
)

// startWatcher watches the configuration file and the edited file. A
// watcher that cannot start only disables hot reload.
func (app *Application) startWatcher() {
	w, err := config.NewWatcher()
	if err != nil {
		log.Warn(log.CatApp, "file watching disabled", "error", err)
		return
	}
	app.watcher = w

	app.configPath = absPath(app.opts.ConfigFile())
	if err := w.Watch(app.configPath); err != nil {
		log.Debug(log.CatConfig, "not watching config", "path", app.configPath, "error", err)
		app.configPath = ""
	}
	app.watchDocument()
}

func (app *Application) watchDocument() {
	path := app.session.Path()
	if app.watcher == nil || path == "" {
		return
	}
	abs := absPath(path)
	if abs == app.docPath {
		return
	}
	if app.docPath != "" && app.docPath != app.configPath {
		_ = app.watcher.Unwatch(app.docPath)
	}
	if err := app.watcher.Watch(abs); err != nil {
		log.Debug(log.CatFile, "not watching file", "path", abs, "error", err)
		return
	}
	app.docPath = abs
}

func (app *Application) watchEvents() <-chan config.Event {
	if app.watcher == nil {
		return nil
	}
	return app.watcher.Events()
}

func (app *Application) watchErrors() <-chan error {
	if app.watcher == nil {
		return nil
	}
	return app.watcher.Errors()
}

func (app *Application) handleFileEvent(ev config.Event) {
	log.Debug(log.CatApp, "file event", "path", ev.Path, "op", ev.Op.String())
	switch ev.Path {
	case app.configPath:
		app.ReloadConfig()
	case app.docPath:
		app.session.FileChanged()
	}
}

// ReloadConfig re-reads the configuration and applies what can change
// while running: theme, key bindings, repeat timing, tab size, line
// numbers and page size. An invalid file keeps the current settings.
func (app *Application) ReloadConfig() {
	cfg, err := LoadConfig(app.opts)
	if err != nil {
		log.ErrorErr(log.CatConfig, "config reload failed", err)
		app.session.SetMessage("config: %v", err)
		return
	}
	th, err := theme.Load(cfg.Theme.Name, cfg.Theme.Colors)
	if err != nil {
		log.ErrorErr(log.CatConfig, "config reload failed", err)
		app.session.SetMessage("config: %v", err)
		return
	}

	disp := app.session.Dispatcher()
	if err := disp.Keymaps().Register(cfg.UserKeymap()); err != nil {
		log.ErrorErr(log.CatConfig, "config reload failed", err)
		app.session.SetMessage("config: %v", err)
		return
	}

	app.cfg = cfg
	app.renderer.SetTheme(th)
	app.renderer.SetOptions(rendererOptions(cfg))
	app.session.Scheduler().SetConfig(cfg.RepeatTiming())
	app.updatePageLines()
	log.SetMinLevel(cfg.LogLevel())

	app.session.SetMessage("configuration reloaded")
	log.Info(log.CatConfig, "config reloaded", "theme", cfg.Theme.Name)
}
