package turn

import (
	"context"
	"errors"
	"fmt"

	"github.com/looplab/fsm"
	"go.uber.org/zap"
)

// State is the engine's position in its start/lock/unlock cycle.
type State string

const (
	StateStopped  State = "stopped"
	StateUnlocked State = "unlocked"
	StateLocked   State = "locked"
)

const (
	eventStart  = "start"
	eventLock   = "lock"
	eventUnlock = "unlock"
)

// ErrNotStarted is returned by Lock and Unlock before Start.
var ErrNotStarted = errors.New("engine not started")

// Engine drives the scheduler. While unlocked it hands out turns one at a
// time; an actor that needs outside input calls Lock, and whoever supplies
// that input calls Unlock to resume from the next scheduled actor.
type Engine struct {
	scheduler *Scheduler
	machine   *fsm.FSM
	log       *zap.Logger
	running   bool
	turns     uint64
}

// NewEngine creates a stopped engine over s.
func NewEngine(s *Scheduler, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	e := &Engine{scheduler: s, log: log}
	e.machine = fsm.NewFSM(
		string(StateStopped),
		fsm.Events{
			{Name: eventStart, Src: []string{string(StateStopped)}, Dst: string(StateUnlocked)},
			{Name: eventLock, Src: []string{string(StateUnlocked)}, Dst: string(StateLocked)},
			{Name: eventUnlock, Src: []string{string(StateLocked)}, Dst: string(StateUnlocked)},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, ev *fsm.Event) {
				e.log.Debug("engine transition",
					zap.String("event", ev.Event),
					zap.String("from", ev.Src),
					zap.String("to", ev.Dst),
					zap.Uint64("turns", e.turns))
			},
		},
	)
	return e
}

// State returns the current engine state.
func (e *Engine) State() State { return State(e.machine.Current()) }

// Scheduler returns the scheduler the engine pulls turns from.
func (e *Engine) Scheduler() *Scheduler { return e.scheduler }

// Turns returns how many actor turns have been handed out.
func (e *Engine) Turns() uint64 { return e.turns }

// Start leaves the stopped state and runs turns until some actor locks.
// Starting an already started engine is a no-op.
func (e *Engine) Start() error {
	if e.State() != StateStopped {
		return nil
	}
	if err := e.machine.Event(context.Background(), eventStart); err != nil {
		return fmt.Errorf("start engine: %w", err)
	}
	e.run()
	return nil
}

// Lock pauses turn processing. Locking a locked engine is a no-op.
func (e *Engine) Lock() error {
	switch e.State() {
	case StateStopped:
		return ErrNotStarted
	case StateLocked:
		return nil
	}
	if err := e.machine.Event(context.Background(), eventLock); err != nil {
		return fmt.Errorf("lock engine: %w", err)
	}
	return nil
}

// Unlock resumes turn processing. When called from inside a turn the
// running loop simply continues; otherwise the loop is re-entered here.
func (e *Engine) Unlock() error {
	switch e.State() {
	case StateStopped:
		return ErrNotStarted
	case StateUnlocked:
		return nil
	}
	if err := e.machine.Event(context.Background(), eventUnlock); err != nil {
		return fmt.Errorf("unlock engine: %w", err)
	}
	if !e.running {
		e.run()
	}
	return nil
}

func (e *Engine) run() {
	e.running = true
	defer func() { e.running = false }()
	for e.State() == StateUnlocked {
		actor := e.scheduler.Next()
		if actor == nil {
			// Nobody left to act; wait for someone to be added and unlock.
			_ = e.Lock()
			return
		}
		e.turns++
		actor.Act()
	}
}
