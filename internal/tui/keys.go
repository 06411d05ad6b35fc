package tui

// Key bindings, as reported by tea.KeyMsg.String().
const (
	keyQuit    = "q"
	keyCtrlC   = "ctrl+c"
	keyEnter   = "enter"
	keyEsc     = "esc"
	keySlash   = "/"
	keyRegion  = "f"
	keyRegionB = "F"
	keyAll     = "a"
	keyClose   = "x"
)
