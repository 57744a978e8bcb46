package game

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"cavecrawler/assets"
	"cavecrawler/internal/component"
	"cavecrawler/internal/config"
	"cavecrawler/internal/message"
	"cavecrawler/internal/render"
	"cavecrawler/internal/system"
	"cavecrawler/internal/turn"
	"cavecrawler/internal/world"

	"github.com/looplab/fsm"
	"go.uber.org/zap"
)

// Screen is the session's position in its start/play/win/lose cycle.
type Screen string

const (
	ScreenStart Screen = "start"
	ScreenPlay  Screen = "play"
	ScreenWin   Screen = "win"
	ScreenLose  Screen = "lose"
)

const (
	eventBegin   = "begin"
	eventWin     = "win"
	eventLose    = "lose"
	eventRestart = "restart"
)

// ErrNoPlayer is returned when a play action runs without a player.
var ErrNoPlayer = errors.New("session has no player")

// Session is one player's run through the screens. Input and frame reads
// are serialized, so transports may call it from several goroutines.
type Session struct {
	ID string

	mu       sync.Mutex
	game     *Game
	log      *zap.Logger
	screen   *fsm.FSM
	player   *world.Entity
	frame    render.Frame
	notified bool
	area     areaMark
	run      RunLog
	runDir   string
}

// areaMark remembers where the player was last announced.
type areaMark struct {
	m *world.Map
	z int
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithRunLog appends a summary of every finished run to runs.jsonl in dir.
func WithRunLog(dir string) SessionOption {
	return func(s *Session) { s.runDir = dir }
}

// NewSession creates a session on the start screen.
func NewSession(g *Game, id string, log *zap.Logger, opts ...SessionOption) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Session{ID: id, game: g, log: log.With(zap.String("session", id))}
	s.screen = fsm.NewFSM(
		string(ScreenStart),
		fsm.Events{
			{Name: eventBegin, Src: []string{string(ScreenStart)}, Dst: string(ScreenPlay)},
			{Name: eventWin, Src: []string{string(ScreenPlay)}, Dst: string(ScreenWin)},
			{Name: eventLose, Src: []string{string(ScreenPlay)}, Dst: string(ScreenLose)},
			{Name: eventRestart, Src: []string{string(ScreenWin), string(ScreenLose)}, Dst: string(ScreenStart)},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, ev *fsm.Event) {
				s.log.Info("screen changed", zap.String("from", ev.Src), zap.String("to", ev.Dst))
			},
		},
	)
	for _, opt := range opts {
		opt(s)
	}
	s.frame = s.titleFrame()
	return s
}

// Open builds a game context of its own from cfg and a session on it.
func Open(cfg *config.Config, log *zap.Logger, id string, opts ...SessionOption) (*Session, error) {
	g, err := New(cfg, log)
	if err != nil {
		return nil, err
	}
	return NewSession(g, id, log, opts...), nil
}

// Close releases the session's game context.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.Close()
}

// Screen returns the current screen.
func (s *Session) Screen() Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current()
}

func (s *Session) current() Screen { return Screen(s.screen.Current()) }

// Player returns the player entity, or nil outside a run.
func (s *Session) Player() *world.Entity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.player
}

// Frame returns the latest frame.
func (s *Session) Frame() render.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame
}

// HandleInput routes one key event to the current screen and returns the
// frame to show afterwards. A non-nil error means the run cannot go on; the
// session drops to the lose screen.
func (s *Session) HandleInput(in Input) (render.Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notified = false
	var err error
	switch s.current() {
	case ScreenStart:
		if in.Action() == ActionConfirm {
			err = s.begin()
		}
	case ScreenPlay:
		err = s.play(in.Action())
	case ScreenWin, ScreenLose:
		if in.Action() == ActionConfirm {
			s.player = nil
			err = s.transition(eventRestart)
		}
	}
	if err != nil {
		s.log.Error("session failed", zap.Error(err))
		if s.current() == ScreenPlay {
			s.finish(eventLose)
		}
		s.frame = s.titleFrame()
		return s.frame, err
	}
	if s.current() == ScreenPlay {
		if !s.notified {
			s.frame = s.playFrame()
		}
	} else {
		s.frame = s.titleFrame()
	}
	return s.frame, nil
}

func (s *Session) transition(event string) error {
	if err := s.screen.Event(context.Background(), event); err != nil {
		return fmt.Errorf("screen %s: %w", event, err)
	}
	return nil
}

// begin creates the player and the cave and runs turns until the player
// is asked for input.
func (s *Session) begin() error {
	p, err := s.game.NewPlayer()
	if err != nil {
		return err
	}
	if pt := turnState(p); pt != nil {
		pt.Notify = s.onPlayerTurn
	}
	if _, err := s.game.NewCave(p); err != nil {
		return err
	}
	s.player = p
	s.area = areaMark{}
	s.run = RunLog{Session: s.ID, Seed: s.game.Seed}
	if err := s.transition(eventBegin); err != nil {
		return err
	}
	return p.Map().Engine().Start()
}

// play performs a play-screen action. Actions that consume the turn unlock
// the engine so everyone else moves before the player's next turn.
func (s *Session) play(a Action) error {
	p := s.player
	if p == nil || p.Map() == nil {
		return ErrNoPlayer
	}
	pt := turnState(p)
	if pt == nil {
		return fmt.Errorf("%s: %w", p.Name(), ErrNoPlayer)
	}
	if pt.GameEnded {
		if a == ActionConfirm {
			return s.end(pt)
		}
		return nil
	}

	rules := s.game.Rules
	consumed, switched := false, false
	switch a {
	case ActionMoveN, ActionMoveS, ActionMoveE, ActionMoveW, ActionAscend, ActionDescend:
		dx, dy, dz := actionToDelta(a)
		res, err := rules.TryMove(p, p.X()+dx, p.Y()+dy, p.Z()+dz)
		if err != nil {
			return err
		}
		consumed, switched = res.Consumed(), res == system.MoveSwitchMap
	case ActionPickup:
		consumed = rules.PickUp(p) > 0
	case ActionDrop:
		inv := component.Get[*component.Inventory](p, component.CInventory)
		slot := -1
		if inv != nil {
			slot = inv.Last()
		}
		consumed = rules.Drop(p, slot)
	case ActionEat:
		if slot := system.FirstEdible(p); slot >= 0 {
			consumed = rules.Eat(p, slot)
		} else {
			message.Send(p, "You have nothing to eat.")
		}
	case ActionEquip:
		if slot := system.BestEquippable(p); slot >= 0 {
			consumed = rules.Equip(p, slot)
		} else {
			message.Send(p, "You have nothing to equip.")
		}
	default:
		return nil
	}

	if pt.Won {
		return s.end(pt)
	}
	// Falling into the cavern already started its engine and the abandoned
	// map stays locked. A player who died acting has had its final turn.
	if consumed && !switched && !pt.GameEnded {
		if err := p.Map().Engine().Unlock(); err != nil {
			return err
		}
	}
	return nil
}

// end leaves the play screen once the game has a result.
func (s *Session) end(pt *component.PlayerTurn) error {
	if pt.Won {
		return s.finish(eventWin)
	}
	return s.finish(eventLose)
}

func (s *Session) finish(event string) error {
	s.run.Outcome = event
	if s.player != nil {
		if m := s.player.Map(); m != nil && m.Engine().State() != turn.StateStopped {
			_ = m.Engine().Lock()
		}
	}
	if s.runDir != "" {
		if err := saveRunLog(s.runDir, s.run); err != nil {
			s.log.Warn("run log not saved", zap.Error(err))
		}
	}
	return s.transition(event)
}

// onPlayerTurn is the player's Notify hook: it runs inside the player's
// turn, before the message queue is cleared.
func (s *Session) onPlayerTurn() {
	s.announceArea()
	s.run.Turns++
	s.frame = s.playFrame()
	s.notified = true
}

// announceArea shows a lore line whenever the player reaches a new depth
// or map.
func (s *Session) announceArea() {
	p := s.player
	if p == nil || p.Map() == nil {
		return
	}
	here := areaMark{m: p.Map(), z: p.Z()}
	if here == s.area {
		return
	}
	lore := assets.LoreFor(here.z)
	if s.area.m != nil && here.m != s.area.m {
		lore = assets.CavernLore
		s.run.ReachedCavern = true
	}
	s.area = here
	if here.z > s.run.DeepestDepth {
		s.run.DeepestDepth = here.z
	}
	if len(lore) > 0 {
		message.SendText(p, lore[s.game.Rand.Intn(len(lore))])
	}
}

func turnState(p *world.Entity) *component.PlayerTurn {
	return component.Get[*component.PlayerTurn](p, component.CPlayerTurn)
}
