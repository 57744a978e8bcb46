// Package turn interleaves actors into a single deterministic turn order and
// gates that order behind a lock while a human decides what to do.
package turn

import "container/heap"

// DefaultSpeed is the baseline delay between two turns of an actor.
const DefaultSpeed = 1000

// Actor is anything the scheduler can hand a turn to.
// Speed is the delay until the actor's next turn: smaller values act more often.
type Actor interface {
	Act()
	Speed() int
}

type slot struct {
	actor  Actor
	at     int64
	seq    uint64
	repeat bool
	index  int
}

type slotQueue []*slot

func (q slotQueue) Len() int { return len(q) }

func (q slotQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q slotQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *slotQueue) Push(x any) {
	s := x.(*slot)
	s.index = len(*q)
	*q = append(*q, s)
}

func (q *slotQueue) Pop() any {
	old := *q
	n := len(old)
	s := old[n-1]
	old[n-1] = nil
	s.index = -1
	*q = old[:n-1]
	return s
}

// Scheduler is a speed-weighted repeat queue. Each actor is due Speed() time
// units after its previous turn; ties go to whoever was queued first.
type Scheduler struct {
	queue slotQueue
	slots map[Actor]*slot
	now   int64
	seq   uint64
}

// NewScheduler creates an empty scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{slots: make(map[Actor]*slot)}
}

func delay(a Actor) int64 {
	if s := a.Speed(); s > 0 {
		return int64(s)
	}
	return DefaultSpeed
}

// Add enrolls a. With repeat set, a is re-queued after every turn.
// Adding an actor that is already queued is a no-op.
func (s *Scheduler) Add(a Actor, repeat bool) {
	if _, ok := s.slots[a]; ok {
		return
	}
	s.seq++
	sl := &slot{actor: a, at: s.now + delay(a), seq: s.seq, repeat: repeat}
	s.slots[a] = sl
	heap.Push(&s.queue, sl)
}

// Remove evicts a. Reports whether it was queued.
func (s *Scheduler) Remove(a Actor) bool {
	sl, ok := s.slots[a]
	if !ok {
		return false
	}
	delete(s.slots, a)
	heap.Remove(&s.queue, sl.index)
	return true
}

// Next advances time to the earliest due actor and returns it, or nil when
// nothing is queued.
func (s *Scheduler) Next() Actor {
	if len(s.queue) == 0 {
		return nil
	}
	sl := heap.Pop(&s.queue).(*slot)
	s.now = sl.at
	if sl.repeat {
		s.seq++
		sl.at = s.now + delay(sl.actor)
		sl.seq = s.seq
		heap.Push(&s.queue, sl)
	} else {
		delete(s.slots, sl.actor)
	}
	return sl.actor
}

// Contains reports whether a is queued.
func (s *Scheduler) Contains(a Actor) bool {
	_, ok := s.slots[a]
	return ok
}

// Len returns the number of queued actors.
func (s *Scheduler) Len() int { return len(s.queue) }

// Time returns the scheduler clock.
func (s *Scheduler) Time() int64 { return s.now }

// Clear drops every actor and resets the clock.
func (s *Scheduler) Clear() {
	s.queue = nil
	s.slots = make(map[Actor]*slot)
	s.now = 0
}
