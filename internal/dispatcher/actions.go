package dispatcher

import "sort"

// Built-in action names. Keymaps bind keys to these names; the dispatcher
// applies them directly without a registered handler.
const (
	ActionMoveLeft      = "cursor.moveLeft"
	ActionMoveRight     = "cursor.moveRight"
	ActionMoveUp        = "cursor.moveUp"
	ActionMoveDown      = "cursor.moveDown"
	ActionLineStart     = "cursor.moveLineStart"
	ActionLineEnd       = "cursor.moveLineEnd"
	ActionBufferStart   = "cursor.moveFirstLine"
	ActionBufferEnd     = "cursor.moveLastLine"
	ActionPageUp        = "cursor.pageUp"
	ActionPageDown      = "cursor.pageDown"
	ActionDeleteBack    = "editor.deleteCharBefore"
	ActionDeleteForward = "editor.deleteChar"
	ActionNewline       = "editor.newline"
	ActionTab           = "editor.tab"
)

// Fire-once actions provided by the editor session. They are resolved
// through the handler registry like any plugin command.
const (
	ActionSave   = "file.save"
	ActionSaveAs = "file.saveAs"
	ActionOpen   = "file.open"
	ActionReload = "file.reload"
	ActionQuit   = "editor.quit"
)

var builtins = map[string]Command{
	ActionMoveLeft:      {Kind: KindMoveLeft},
	ActionMoveRight:     {Kind: KindMoveRight},
	ActionMoveUp:        {Kind: KindMoveUp},
	ActionMoveDown:      {Kind: KindMoveDown},
	ActionLineStart:     {Kind: KindLineStart},
	ActionLineEnd:       {Kind: KindLineEnd},
	ActionBufferStart:   {Kind: KindBufferStart},
	ActionBufferEnd:     {Kind: KindBufferEnd},
	ActionPageUp:        {Kind: KindPageUp},
	ActionPageDown:      {Kind: KindPageDown},
	ActionDeleteBack:    {Kind: KindDeleteBack},
	ActionDeleteForward: {Kind: KindDeleteForward},
	ActionNewline:       Insert('\n'),
	ActionTab:           Insert('\t'),
}

// BuiltinCommand returns the command for a built-in action name.
func BuiltinCommand(action string) (Command, bool) {
	cmd, ok := builtins[action]
	return cmd, ok
}

// IsBuiltin reports whether action is a built-in action name.
func IsBuiltin(action string) bool {
	_, ok := builtins[action]
	return ok
}

// BuiltinActions returns all built-in action names, sorted.
func BuiltinActions() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
