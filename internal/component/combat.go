package component

import "cavecrawler/internal/mixin"

const CAttacker mixin.ComponentType = 1

type Attacker struct {
	Value int
}

func (*Attacker) Type() mixin.ComponentType { return CAttacker }
