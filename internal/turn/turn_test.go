package turn

import (
	"errors"
	"math"
	"testing"
)

// fakeActor counts its turns and optionally runs a hook inside Act.
type fakeActor struct {
	name  string
	speed int
	acts  int
	onAct func(*fakeActor)
}

func (a *fakeActor) Act() {
	a.acts++
	if a.onAct != nil {
		a.onAct(a)
	}
}

func (a *fakeActor) Speed() int { return a.speed }

func TestSchedulerSpeedWeighting(t *testing.T) {
	cases := []struct {
		name       string
		fast, slow int
		ratio      float64
	}{
		{"baseline vs half speed", 1000, 2000, 2},
		{"quarter delay vs baseline", 250, 1000, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScheduler()
			a := &fakeActor{name: "a", speed: tc.fast}
			b := &fakeActor{name: "b", speed: tc.slow}
			s.Add(a, true)
			s.Add(b, true)
			for i := 0; i < 3000; i++ {
				s.Next().Act()
			}
			got := float64(a.acts) / float64(b.acts)
			if math.Abs(got-tc.ratio) > 0.05*tc.ratio {
				t.Errorf("a/b = %d/%d = %.3f, want ~%.1f", a.acts, b.acts, got, tc.ratio)
			}
		})
	}
}

func TestSchedulerDeterministicTies(t *testing.T) {
	s := NewScheduler()
	a := &fakeActor{name: "a", speed: 1000}
	b := &fakeActor{name: "b", speed: 1000}
	s.Add(a, true)
	s.Add(b, true)
	var order []string
	for i := 0; i < 6; i++ {
		order = append(order, s.Next().(*fakeActor).name)
	}
	want := []string{"a", "b", "a", "b", "a", "b"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestSchedulerRemove(t *testing.T) {
	s := NewScheduler()
	a := &fakeActor{speed: 1000}
	b := &fakeActor{speed: 500}
	s.Add(a, true)
	s.Add(b, true)
	if !s.Remove(b) {
		t.Fatal("Remove should report a queued actor")
	}
	if s.Remove(b) {
		t.Fatal("second Remove should report false")
	}
	for i := 0; i < 5; i++ {
		if s.Next() != Actor(a) {
			t.Fatal("removed actor was scheduled")
		}
	}
	if s.Contains(b) || !s.Contains(a) {
		t.Fatal("Contains disagrees with queue contents")
	}
}

func TestSchedulerNonRepeating(t *testing.T) {
	s := NewScheduler()
	a := &fakeActor{speed: 10}
	s.Add(a, false)
	if s.Next() != Actor(a) {
		t.Fatal("expected a")
	}
	if s.Next() != nil || s.Len() != 0 {
		t.Fatal("non-repeating actor should leave the queue after one turn")
	}
}

func TestSchedulerClockAdvances(t *testing.T) {
	s := NewScheduler()
	s.Add(&fakeActor{speed: 250}, true)
	s.Next()
	s.Next()
	if s.Time() != 500 {
		t.Fatalf("Time = %d, want 500", s.Time())
	}
	s.Clear()
	if s.Time() != 0 || s.Len() != 0 {
		t.Fatal("Clear should reset clock and queue")
	}
}

func TestSchedulerZeroSpeedUsesDefault(t *testing.T) {
	s := NewScheduler()
	s.Add(&fakeActor{speed: 0}, true)
	s.Next()
	if s.Time() != DefaultSpeed {
		t.Fatalf("Time = %d, want %d", s.Time(), DefaultSpeed)
	}
}

func TestEngineStartsStopped(t *testing.T) {
	e := NewEngine(NewScheduler(), nil)
	if e.State() != StateStopped {
		t.Fatalf("state = %s", e.State())
	}
	if err := e.Lock(); !errors.Is(err, ErrNotStarted) {
		t.Fatalf("Lock before Start = %v, want ErrNotStarted", err)
	}
	if err := e.Unlock(); !errors.Is(err, ErrNotStarted) {
		t.Fatalf("Unlock before Start = %v, want ErrNotStarted", err)
	}
}

func TestEngineLockUnlockCycle(t *testing.T) {
	s := NewScheduler()
	e := NewEngine(s, nil)

	monster := &fakeActor{name: "monster", speed: 1000}
	player := &fakeActor{name: "player", speed: 1000}
	player.onAct = func(*fakeActor) {
		if err := e.Lock(); err != nil {
			t.Fatalf("Lock: %v", err)
		}
	}
	s.Add(player, true)
	s.Add(monster, true)

	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if e.State() != StateLocked {
		t.Fatalf("state after player turn = %s, want locked", e.State())
	}
	if player.acts != 1 || monster.acts != 0 {
		t.Fatalf("acts player=%d monster=%d, want 1/0", player.acts, monster.acts)
	}

	for round := 2; round <= 4; round++ {
		if err := e.Unlock(); err != nil {
			t.Fatalf("Unlock: %v", err)
		}
		if e.State() != StateLocked {
			t.Fatalf("round %d: state = %s", round, e.State())
		}
		if player.acts != round || monster.acts != round-1 {
			t.Fatalf("round %d: player=%d monster=%d", round, player.acts, monster.acts)
		}
	}
	if e.Turns() != 7 {
		t.Fatalf("Turns = %d, want 7", e.Turns())
	}
}

func TestEngineNoActorsLocks(t *testing.T) {
	e := NewEngine(NewScheduler(), nil)
	if err := e.Start(); err != nil {
		t.Fatal(err)
	}
	if e.State() != StateLocked {
		t.Fatalf("empty scheduler should leave the engine locked, got %s", e.State())
	}
	if err := e.Start(); err != nil {
		t.Fatal("second Start should be a no-op")
	}
}

func TestEngineRemovedActorStopsActing(t *testing.T) {
	s := NewScheduler()
	e := NewEngine(s, nil)
	victim := &fakeActor{speed: 1000}
	player := &fakeActor{speed: 1000}
	player.onAct = func(*fakeActor) { _ = e.Lock() }
	s.Add(victim, true)
	s.Add(player, true)
	_ = e.Start()
	if victim.acts != 1 {
		t.Fatalf("victim acts = %d", victim.acts)
	}
	s.Remove(victim)
	_ = e.Unlock()
	_ = e.Unlock()
	if victim.acts != 1 {
		t.Fatalf("removed victim acted again: %d", victim.acts)
	}
}

func TestEngineUnlockInsideTurnDoesNotNest(t *testing.T) {
	s := NewScheduler()
	e := NewEngine(s, nil)
	depth, maxDepth := 0, 0
	var a *fakeActor
	a = &fakeActor{speed: 1000, onAct: func(*fakeActor) {
		depth++
		if depth > maxDepth {
			maxDepth = depth
		}
		if a.acts < 3 {
			_ = e.Lock()
			_ = e.Unlock()
		} else {
			_ = e.Lock()
		}
		depth--
	}}
	s.Add(a, true)
	_ = e.Start()
	if maxDepth != 1 {
		t.Fatalf("turns nested to depth %d", maxDepth)
	}
	if a.acts != 3 {
		t.Fatalf("acts = %d, want 3", a.acts)
	}
}
