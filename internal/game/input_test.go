package game

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestInputAction(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want Action
	}{
		{"enter", Input{KeyCode: KeyEnter, Type: KeyDownEvent}, ActionConfirm},
		{"escape", Input{KeyCode: KeyEscape, Type: KeyDownEvent}, ActionQuit},
		{"up", Input{KeyCode: KeyUp, Type: KeyDownEvent}, ActionMoveN},
		{"down", Input{KeyCode: KeyDown, Type: KeyDownEvent}, ActionMoveS},
		{"left", Input{KeyCode: KeyLeft, Type: KeyDownEvent}, ActionMoveW},
		{"right", Input{KeyCode: KeyRight, Type: KeyDownEvent}, ActionMoveE},
		{"comma picks up", Input{KeyCode: KeyComma, Type: KeyDownEvent}, ActionPickup},
		{"shift comma is left to keypress", Input{KeyCode: KeyComma, Type: KeyDownEvent, Shift: true}, ActionNone},
		{"drop", Input{KeyCode: KeyD, Type: KeyDownEvent}, ActionDrop},
		{"eat", Input{KeyCode: KeyE, Type: KeyDownEvent}, ActionEat},
		{"equip", Input{KeyCode: KeyW, Type: KeyDownEvent}, ActionEquip},
		{"ascend", Input{KeyCode: CharLess, Type: KeyPressEvent}, ActionAscend},
		{"descend", Input{KeyCode: CharGreater, Type: KeyPressEvent}, ActionDescend},
		{"enter as keypress", Input{KeyCode: KeyEnter, Type: KeyPressEvent}, ActionNone},
		{"unknown type", Input{KeyCode: KeyEnter, Type: "keyup"}, ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Action(); got != tt.want {
				t.Errorf("Action() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestActionToDelta(t *testing.T) {
	tests := []struct {
		a          Action
		dx, dy, dz int
	}{
		{ActionMoveN, 0, -1, 0},
		{ActionMoveS, 0, 1, 0},
		{ActionMoveE, 1, 0, 0},
		{ActionMoveW, -1, 0, 0},
		{ActionAscend, 0, 0, -1},
		{ActionDescend, 0, 0, 1},
		{ActionEat, 0, 0, 0},
	}
	for _, tt := range tests {
		dx, dy, dz := actionToDelta(tt.a)
		if dx != tt.dx || dy != tt.dy || dz != tt.dz {
			t.Errorf("actionToDelta(%d) = (%d,%d,%d)", tt.a, dx, dy, dz)
		}
	}
}

func TestKeyInput(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
		ok   bool
	}{
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), ActionConfirm, true},
		{"arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionMoveW, true},
		{"greater", tcell.NewEventKey(tcell.KeyRune, '>', tcell.ModNone), ActionDescend, true},
		{"less", tcell.NewEventKey(tcell.KeyRune, '<', tcell.ModNone), ActionAscend, true},
		{"comma", tcell.NewEventKey(tcell.KeyRune, ',', tcell.ModNone), ActionPickup, true},
		{"upper e", tcell.NewEventKey(tcell.KeyRune, 'E', tcell.ModNone), ActionEat, true},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), ActionNone, false},
		{"unbound key", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), ActionNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, ok := KeyInput(tt.ev)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if got := in.Action(); got != tt.want {
				t.Errorf("Action() = %d, want %d", got, tt.want)
			}
		})
	}
}
