// Package message delivers narration lines to entities that can read them.
package message

import (
	"fmt"

	"cavecrawler/internal/component"
	"cavecrawler/internal/mixin"
	"cavecrawler/internal/world"
)

// NearbyRadius is how far SendNearby reaches.
const NearbyRadius = 5

// RecipientName is the mixin name that marks an entity as able to receive
// messages.
const RecipientName = "MessageRecipient"

// Recipient is the MessageRecipient mixin.
var Recipient = &mixin.Mixin[*world.Entity]{
	Name: RecipientName,
	Init: func(e *world.Entity, _ mixin.Props) {
		e.Add(&component.MessageQueue{})
	},
}

// Send formats and queues a line for e. Entities without the recipient
// mixin are silently skipped.
func Send(e *world.Entity, format string, args ...any) {
	if e == nil || !e.HasMixin(RecipientName) {
		return
	}
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	Receive(e, msg)
}

// SendText queues msg for e verbatim, with no formatting applied.
func SendText(e *world.Entity, msg string) {
	if e == nil || !e.HasMixin(RecipientName) {
		return
	}
	Receive(e, msg)
}

// SendNearby formats once and queues the line for every recipient within
// NearbyRadius of (cx, cy) on depth cz.
func SendNearby(m *world.Map, cx, cy, cz int, format string, args ...any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	for _, e := range m.EntitiesWithinRadius(cx, cy, cz, NearbyRadius) {
		if e.HasMixin(RecipientName) {
			Receive(e, msg)
		}
	}
}

// Receive appends an already formatted line.
func Receive(e *world.Entity, msg string) {
	if q := component.Get[*component.MessageQueue](e, component.CMessages); q != nil {
		q.Lines = append(q.Lines, msg)
	}
}

// Messages returns the queued lines, oldest first.
func Messages(e *world.Entity) []string {
	if q := component.Get[*component.MessageQueue](e, component.CMessages); q != nil {
		return q.Lines
	}
	return nil
}

// Clear empties e's queue.
func Clear(e *world.Entity) {
	if q := component.Get[*component.MessageQueue](e, component.CMessages); q != nil {
		q.Lines = nil
	}
}
