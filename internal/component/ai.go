package component

import "cavecrawler/internal/mixin"

const (
	CGrowth mixin.ComponentType = 11
	CTasks  mixin.ComponentType = 12
)

// Growth counts the remaining one-off growth events of an actor: fungus
// spreads, or the giant zombie's extra arm.
type Growth struct {
	Remaining int
}

func (*Growth) Type() mixin.ComponentType { return CGrowth }

// Task names understood by task-driven actors.
const (
	TaskHunt   = "hunt"
	TaskWander = "wander"
)

// Tasks lists behaviours in priority order; the first one able to run wins.
type Tasks struct {
	Names []string
}

func (*Tasks) Type() mixin.ComponentType { return CTasks }
