package lua

import (
	"slices"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/scribe/internal/dispatcher"
	"github.com/dshills/scribe/internal/input/keymap"
	"github.com/dshills/scribe/internal/log"
)

// pluginCategory groups plugin bindings in key listings.
const pluginCategory = "Plugin"

// install sets up the global scribe module.
func (h *Host) install() {
	L := h.state.L
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"command": h.luaCommand,
		"bind":    h.luaBind,
		"message": h.luaMessage,
		"log":     h.luaLog,
		"open":    h.luaOpen,
	})
	L.SetField(mod, "buffer", L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"text":           h.bufText,
		"len":            h.bufLen,
		"caret":          h.bufCaret,
		"set_caret":      h.bufSetCaret,
		"row":            h.bufRow,
		"col":            h.bufCol,
		"line_count":     h.bufLineCount,
		"line":           h.bufLine,
		"insert":         h.bufInsert,
		"delete_back":    h.bufDeleteBack,
		"delete_forward": h.bufDeleteForward,
	}))
	L.SetGlobal("scribe", mod)
}

// scribe.command(name, fn)
func (h *Host) luaCommand(L *lua.LState) int {
	name := L.CheckString(1)
	fn := L.CheckFunction(2)

	// A name owned by the editor or another host stays with its owner;
	// Close would otherwise leave it unhandled.
	if h.disp.Handlers().Has(name) && !slices.Contains(h.commands, name) {
		L.RaiseError("%s: %s", ErrCommandTaken.Error(), name)
		return 0
	}

	err := h.disp.Handlers().RegisterFunc(name, func(ctx *dispatcher.Context) error {
		return h.runCommand(name, fn, ctx)
	})
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	if !slices.Contains(h.commands, name) {
		h.commands = append(h.commands, name)
	}
	log.Debug(log.CatPlugin, "command registered", "action", name)
	return 0
}

// scribe.bind(keys, action [, description])
func (h *Host) luaBind(L *lua.LState) int {
	b := keymap.NewBinding(L.CheckString(1), L.CheckString(2)).
		WithDescription(L.OptString(3, "")).
		WithCategory(pluginCategory)

	if err := h.disp.Keymaps().Bind(KeymapName, keymap.SourcePlugin, keymap.PriorityPlugin, b); err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	log.Debug(log.CatPlugin, "key bound", "keys", b.Keys, "action", b.Action)
	return 0
}

// scribe.message(text) sets the status message of the running command.
func (h *Host) luaMessage(L *lua.LState) int {
	msg := L.CheckString(1)
	if h.ctx == nil {
		log.Warn(log.CatPlugin, "message outside a command", "message", msg)
		return 0
	}
	h.ctx.SetMessage("%s", msg)
	return 0
}

// scribe.open(path) opens path through the file.open action. It returns
// true, or nil and the error message.
func (h *Host) luaOpen(L *lua.LState) int {
	path := L.CheckString(1)
	if slices.Contains(h.commands, dispatcher.ActionOpen) {
		L.RaiseError("%s is a plugin command", dispatcher.ActionOpen)
		return 0
	}

	r := h.disp.Apply(dispatcher.FireOnceWith(dispatcher.ActionOpen, path), h.buffer(L))
	if r.IsError() {
		L.Push(lua.LNil)
		L.Push(lua.LString(r.Err.Error()))
		return 2
	}
	if h.ctx != nil && r.Message != "" {
		h.ctx.SetMessage("%s", r.Message)
	}
	L.Push(lua.LTrue)
	return 1
}

// scribe.log(text)
func (h *Host) luaLog(L *lua.LState) int {
	log.Info(log.CatPlugin, L.CheckString(1))
	return 0
}

func (h *Host) bufText(L *lua.LState) int {
	L.Push(lua.LString(h.buffer(L).Text()))
	return 1
}

func (h *Host) bufLen(L *lua.LState) int {
	L.Push(lua.LNumber(h.buffer(L).Len()))
	return 1
}

func (h *Host) bufCaret(L *lua.LState) int {
	L.Push(lua.LNumber(h.buffer(L).Caret()))
	return 1
}

func (h *Host) bufSetCaret(L *lua.LState) int {
	h.buffer(L).SetCaret(L.CheckInt(1))
	return 0
}

func (h *Host) bufRow(L *lua.LState) int {
	L.Push(lua.LNumber(h.buffer(L).Row()))
	return 1
}

func (h *Host) bufCol(L *lua.LState) int {
	L.Push(lua.LNumber(h.buffer(L).Col()))
	return 1
}

func (h *Host) bufLineCount(L *lua.LState) int {
	L.Push(lua.LNumber(h.buffer(L).LineCount()))
	return 1
}

// line(r) returns nil for rows out of range.
func (h *Host) bufLine(L *lua.LState) int {
	buf := h.buffer(L)
	row := L.CheckInt(1)
	if row < 0 || row >= buf.LineCount() {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(buf.LineText(row)))
	return 1
}

func (h *Host) bufInsert(L *lua.LState) int {
	h.buffer(L).InsertText(L.CheckString(1))
	return 0
}

// delete_back(n) returns how many runes were deleted.
func (h *Host) bufDeleteBack(L *lua.LState) int {
	buf := h.buffer(L)
	n := L.OptInt(1, 1)
	deleted := 0
	for deleted < n && buf.DeleteBeforeCaret() {
		deleted++
	}
	L.Push(lua.LNumber(deleted))
	return 1
}

// delete_forward(n) returns how many runes were deleted.
func (h *Host) bufDeleteForward(L *lua.LState) int {
	buf := h.buffer(L)
	n := L.OptInt(1, 1)
	deleted := 0
	for deleted < n && buf.DeleteAtCaret() {
		deleted++
	}
	L.Push(lua.LNumber(deleted))
	return 1
}
