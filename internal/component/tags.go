package component

import "cavecrawler/internal/mixin"

const CPlayerTurn mixin.ComponentType = 13

// PlayerTurn is the state of the human-controlled actor between turns.
type PlayerTurn struct {
	Acting    bool
	GameEnded bool
	Won       bool
	// Notify is called every time the player is ready for input.
	Notify func()
}

func (*PlayerTurn) Type() mixin.ComponentType { return CPlayerTurn }

// Holder is satisfied by entities and items.
type Holder interface {
	Get(mixin.ComponentType) mixin.Component
}

// Get returns h's component of type t as T, or the zero T.
func Get[T mixin.Component](h Holder, t mixin.ComponentType) T {
	c, _ := h.Get(t).(T)
	return c
}
