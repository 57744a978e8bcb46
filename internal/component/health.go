package component

import "cavecrawler/internal/mixin"

const CDestructible mixin.ComponentType = 2

// Destructible holds hit points and the base defense value.
type Destructible struct {
	HP, MaxHP int
	Defense   int
}

func (*Destructible) Type() mixin.ComponentType { return CDestructible }

// CCorpseDropper marks entities that may leave a corpse behind.
const CCorpseDropper mixin.ComponentType = 3

type CorpseDropper struct {
	Rate int // 0-100 percent
}

func (*CorpseDropper) Type() mixin.ComponentType { return CCorpseDropper }
