package editor

import (
	"github.com/dshills/scribe/internal/dispatcher"
	"github.com/dshills/scribe/internal/log"
)

// Fire-once actions handled by the session. Open and SaveAs take the
// path from the binding's argument.
const (
	ActionSave   = dispatcher.ActionSave
	ActionSaveAs = dispatcher.ActionSaveAs
	ActionOpen   = dispatcher.ActionOpen
	ActionReload = dispatcher.ActionReload
	ActionQuit   = dispatcher.ActionQuit
)

func (s *Session) registerHandlers() {
	handlers := map[string]func(*dispatcher.Context) error{
		ActionSave:   s.handleSave,
		ActionSaveAs: s.handleSaveAs,
		ActionOpen:   s.handleOpen,
		ActionReload: s.handleReload,
		ActionQuit:   s.handleQuit,
	}
	for name, fn := range handlers {
		if err := s.disp.Handlers().RegisterFunc(name, fn); err != nil {
			log.ErrorErr(log.CatEditor, "register handler", err, "action", name)
		}
	}
}

func (s *Session) handleSave(ctx *dispatcher.Context) error {
	if err := s.Save(); err != nil {
		return err
	}
	ctx.SetMessage("%s", s.message)
	return nil
}

func (s *Session) handleSaveAs(ctx *dispatcher.Context) error {
	if ctx.Arg() == "" {
		return ErrNoFile
	}
	if err := s.SaveAs(ctx.Arg()); err != nil {
		return err
	}
	ctx.SetMessage("%s", s.message)
	return nil
}

// handleOpen refuses to drop unsaved changes. A missing file is still
// opened as a new, empty buffer and reported through the error.
func (s *Session) handleOpen(ctx *dispatcher.Context) error {
	if ctx.Arg() == "" {
		return ErrNoFile
	}
	if s.Dirty() {
		return ErrModified
	}
	if err := s.Open(ctx.Arg()); err != nil {
		return err
	}
	ctx.SetMessage("%s", s.message)
	return nil
}

func (s *Session) handleReload(ctx *dispatcher.Context) error {
	if err := s.Reload(true); err != nil {
		return err
	}
	ctx.SetMessage("%s", s.message)
	return nil
}

func (s *Session) handleQuit(*dispatcher.Context) error {
	s.Quit()
	log.Info(log.CatEditor, "quit requested")
	return nil
}
