// Package lua runs editor plugins written in Lua.
//
// A plugin is a Lua file that talks to the editor through the global
// scribe module:
//
//	scribe.command("upper.word", function()
//	    local b = scribe.buffer
//	    b.insert(string.upper(b.line(b.row())))
//	end)
//	scribe.bind("<C-u>", "upper.word", "Uppercase line")
//
// Commands become fire-once dispatcher actions; bindings land in a keymap
// layer above the user keymap. A command cannot take over a name the
// editor already handles, such as file.save.
//
// scribe.open(path) opens a file through the file.open action and returns
// true, or nil and an error message. Unsaved changes make it fail.
//
// # Buffer API
//
// scribe.buffer exposes the buffer the command runs against. Offsets are
// 0-based rune offsets, the same ones the caret uses. Rows passed to
// line() and returned by row() are 0-based too.
//
//	text()            full text
//	len()             rune count
//	caret()           caret offset
//	set_caret(n)      move the caret, clamped
//	row(), col()      caret row and column
//	line_count()      number of rows
//	line(r)           text of row r without its terminator
//	insert(s)         insert s at the caret
//	delete_back(n)    delete up to n runes before the caret
//	delete_forward(n) delete up to n runes at the caret
//
// # Sandbox
//
// Only the base, table, string and math libraries are opened. dofile,
// loadfile, load and loadstring are removed, require only returns the
// opened libraries, and print writes to the log. Every call runs under a
// timeout.
package lua
