package term

import "github.com/gdamore/tcell/v2"

// Command is a terminal operator intent decoded from a key press.
type Command uint8

const (
	CmdNone Command = iota
	CmdQuit
	CmdUp
	CmdDown
	CmdNextSection
	CmdPrevSection
	CmdIncrement
	CmdDecrement
	CmdReset
	CmdToggle
	CmdAxisX
	CmdAxisY
	CmdAxisZ
	CmdAxisAll
	CmdEditStep
	CmdResetStep
	CmdTogglePanel
	CmdPause
	CmdReload
	CmdRestart
)

// Decode maps a key press outside step editing to a command.
func Decode(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CmdQuit
	case tcell.KeyUp:
		return CmdUp
	case tcell.KeyDown:
		return CmdDown
	case tcell.KeyLeft:
		return CmdDecrement
	case tcell.KeyRight:
		return CmdIncrement
	case tcell.KeyTab, tcell.KeyPgDn:
		return CmdNextSection
	case tcell.KeyBacktab, tcell.KeyPgUp:
		return CmdPrevSection
	case tcell.KeyEnter:
		return CmdToggle
	case tcell.KeyRune:
	default:
		return CmdNone
	}
	switch ev.Rune() {
	case 'q':
		return CmdQuit
	case 'k':
		return CmdUp
	case 'j':
		return CmdDown
	case 'h', '-':
		return CmdDecrement
	case 'l', '+', '=':
		return CmdIncrement
	case 'r':
		return CmdReset
	case ' ', 't':
		return CmdToggle
	case 'x':
		return CmdAxisX
	case 'y':
		return CmdAxisY
	case 'z':
		return CmdAxisZ
	case 'a':
		return CmdAxisAll
	case 's':
		return CmdEditStep
	case 'S':
		return CmdResetStep
	case 'o':
		return CmdTogglePanel
	case 'p':
		return CmdPause
	case 'L':
		return CmdReload
	case 'R':
		return CmdRestart
	}
	return CmdNone
}

// EditKey is the outcome of a key press while the step buffer is focused.
type EditKey uint8

const (
	EditIgnore EditKey = iota
	EditInsert
	EditBackspace
	EditCommit
	EditCancel
)

// DecodeEdit maps a key press during step editing.
func DecodeEdit(ev *tcell.EventKey) (EditKey, rune) {
	switch ev.Key() {
	case tcell.KeyEnter:
		return EditCommit, 0
	case tcell.KeyEscape:
		return EditCancel, 0
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return EditBackspace, 0
	case tcell.KeyRune:
		r := ev.Rune()
		if (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '+' || r == 'e' || r == 'E' {
			return EditInsert, r
		}
	}
	return EditIgnore, 0
}
