package keymap

// Default returns the built-in bindings.
func Default() *Keymap {
	return &Keymap{
		Name:     "default",
		Source:   SourceDefault,
		Priority: PriorityDefault,
		Bindings: []Binding{
			// Movement
			{Keys: "<Left>", Action: "cursor.moveLeft", Description: "Move left", Category: "Movement"},
			{Keys: "<Right>", Action: "cursor.moveRight", Description: "Move right", Category: "Movement"},
			{Keys: "<Up>", Action: "cursor.moveUp", Description: "Move up", Category: "Movement"},
			{Keys: "<Down>", Action: "cursor.moveDown", Description: "Move down", Category: "Movement"},
			{Keys: "<Home>", Action: "cursor.moveLineStart", Description: "Move to line start", Category: "Movement"},
			{Keys: "<End>", Action: "cursor.moveLineEnd", Description: "Move to line end", Category: "Movement"},
			{Keys: "<C-Home>", Action: "cursor.moveFirstLine", Description: "Go to document start", Category: "Movement"},
			{Keys: "<C-End>", Action: "cursor.moveLastLine", Description: "Go to document end", Category: "Movement"},
			{Keys: "<PageUp>", Action: "cursor.pageUp", Description: "Move one page up", Category: "Movement"},
			{Keys: "<PageDown>", Action: "cursor.pageDown", Description: "Move one page down", Category: "Movement"},

			// Editing
			{Keys: "<BS>", Action: "editor.deleteCharBefore", Description: "Delete char before cursor", Category: "Editing"},
			{Keys: "<Del>", Action: "editor.deleteChar", Description: "Delete char under cursor", Category: "Editing"},
			{Keys: "<CR>", Action: "editor.newline", Description: "Insert line break", Category: "Editing"},
			{Keys: "<Tab>", Action: "editor.tab", Description: "Insert tab", Category: "Editing"},

			// File
			{Keys: "<C-s>", Action: "file.save", Description: "Save file", Category: "File"},
			{Keys: "<C-r>", Action: "file.reload", Description: "Reload file from disk", Category: "File"},

			// Application
			{Keys: "<C-q>", Action: "editor.quit", Description: "Quit", Category: "Application"},
		},
	}
}
