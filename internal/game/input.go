package game

import "github.com/gdamore/tcell/v2"

// Input is one key event in browser form: the DOM keyCode and the event
// type. Terminal transports translate their key events into the same shape.
type Input struct {
	KeyCode int    `json:"keyCode"`
	Type    string `json:"type"`
	Shift   bool   `json:"shiftKey,omitempty"`
}

// Event types.
const (
	KeyDownEvent  = "keydown"
	KeyPressEvent = "keypress"
)

// DOM key codes for keydown events and character codes for keypress.
const (
	KeyEnter    = 13
	KeyEscape   = 27
	KeyLeft     = 37
	KeyUp       = 38
	KeyRight    = 39
	KeyDown     = 40
	KeyD        = 68
	KeyE        = 69
	KeyW        = 87
	KeyComma    = 188
	CharLess    = '<'
	CharGreater = '>'
)

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionConfirm
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionAscend
	ActionDescend
	ActionPickup
	ActionDrop
	ActionEat
	ActionEquip
	ActionQuit
)

// Action maps the input to a game action.
func (in Input) Action() Action {
	switch in.Type {
	case KeyDownEvent:
		switch in.KeyCode {
		case KeyEnter:
			return ActionConfirm
		case KeyEscape:
			return ActionQuit
		case KeyUp:
			return ActionMoveN
		case KeyDown:
			return ActionMoveS
		case KeyRight:
			return ActionMoveE
		case KeyLeft:
			return ActionMoveW
		case KeyComma:
			// Shift+comma arrives again as a '<' keypress.
			if !in.Shift {
				return ActionPickup
			}
		case KeyD:
			return ActionDrop
		case KeyE:
			return ActionEat
		case KeyW:
			return ActionEquip
		}
	case KeyPressEvent:
		switch in.KeyCode {
		case CharLess:
			return ActionAscend
		case CharGreater:
			return ActionDescend
		}
	}
	return ActionNone
}

// actionToDelta converts a movement action to (dx, dy, dz).
func actionToDelta(a Action) (int, int, int) {
	switch a {
	case ActionMoveN:
		return 0, -1, 0
	case ActionMoveS:
		return 0, 1, 0
	case ActionMoveE:
		return 1, 0, 0
	case ActionMoveW:
		return -1, 0, 0
	case ActionAscend:
		return 0, 0, -1
	case ActionDescend:
		return 0, 0, 1
	}
	return 0, 0, 0
}

// KeyInput translates a tcell key event into browser-form input.
func KeyInput(ev *tcell.EventKey) (Input, bool) {
	switch ev.Key() {
	case tcell.KeyEnter:
		return Input{KeyCode: KeyEnter, Type: KeyDownEvent}, true
	case tcell.KeyEscape:
		return Input{KeyCode: KeyEscape, Type: KeyDownEvent}, true
	case tcell.KeyUp:
		return Input{KeyCode: KeyUp, Type: KeyDownEvent}, true
	case tcell.KeyDown:
		return Input{KeyCode: KeyDown, Type: KeyDownEvent}, true
	case tcell.KeyRight:
		return Input{KeyCode: KeyRight, Type: KeyDownEvent}, true
	case tcell.KeyLeft:
		return Input{KeyCode: KeyLeft, Type: KeyDownEvent}, true
	case tcell.KeyRune:
	default:
		return Input{}, false
	}
	switch ev.Rune() {
	case '<':
		return Input{KeyCode: CharLess, Type: KeyPressEvent}, true
	case '>':
		return Input{KeyCode: CharGreater, Type: KeyPressEvent}, true
	case ',':
		return Input{KeyCode: KeyComma, Type: KeyDownEvent}, true
	case 'd', 'D':
		return Input{KeyCode: KeyD, Type: KeyDownEvent}, true
	case 'e', 'E':
		return Input{KeyCode: KeyE, Type: KeyDownEvent}, true
	case 'w', 'W':
		return Input{KeyCode: KeyW, Type: KeyDownEvent}, true
	}
	return Input{}, false
}
