package component

import "cavecrawler/internal/mixin"

const (
	CMessages mixin.ComponentType = 4
	CSight    mixin.ComponentType = 5
)

// MessageQueue is an unbounded FIFO of narration lines.
type MessageQueue struct {
	Lines []string
}

func (*MessageQueue) Type() mixin.ComponentType { return CMessages }

type Sight struct {
	Radius int
}

func (*Sight) Type() mixin.ComponentType { return CSight }
