// Package input translates terminal events into semantic game intents.
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/chomp/core"
)

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit   // ESC, Ctrl+C
	IntentResize // Terminal resize event

	IntentMove // Arrow keys / hjkl; Dir carries the direction

	IntentPause   // p
	IntentRestart // r (game over screen)
	IntentDebug   // d, toggles the target overlay
	IntentStress  // s, toggles stress mode
)

// Intent is one decoded input action
type Intent struct {
	Type IntentType
	Dir  core.Point
}

// Translate decodes a tcell event into an Intent, IntentNone when the
// event has no binding
func Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return Intent{Type: IntentResize}

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return Intent{Type: IntentQuit}
		case tcell.KeyUp:
			return Intent{Type: IntentMove, Dir: core.Up}
		case tcell.KeyDown:
			return Intent{Type: IntentMove, Dir: core.Down}
		case tcell.KeyLeft:
			return Intent{Type: IntentMove, Dir: core.Left}
		case tcell.KeyRight:
			return Intent{Type: IntentMove, Dir: core.Right}
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'k':
				return Intent{Type: IntentMove, Dir: core.Up}
			case 'j':
				return Intent{Type: IntentMove, Dir: core.Down}
			case 'h':
				return Intent{Type: IntentMove, Dir: core.Left}
			case 'l':
				return Intent{Type: IntentMove, Dir: core.Right}
			case 'p', 'P':
				return Intent{Type: IntentPause}
			case 'r', 'R':
				return Intent{Type: IntentRestart}
			case 'd', 'D':
				return Intent{Type: IntentDebug}
			case 's', 'S':
				return Intent{Type: IntentStress}
			}
		}
	}
	return Intent{Type: IntentNone}
}
