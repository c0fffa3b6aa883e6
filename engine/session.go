package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/portraitquest/levels"
	"github.com/milk9111/portraitquest/logger"
)

// Phase is where a playthrough stands.
type Phase int

const (
	PhasePreGoal Phase = iota
	PhaseShopping
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhasePreGoal:
		return "pregoal"
	case PhaseShopping:
		return "shopping"
	case PhaseEnded:
		return "ended"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// OverlayKind is the panel the presentation should show over the street.
type OverlayKind int

const (
	OverlayNone OverlayKind = iota
	OverlayGoalPicker
	OverlayShop
	OverlayEnding
)

// ShopView is an entered place: its stock and what the keeper says for the
// chosen goal.
type ShopView struct {
	Name     string
	Interior string
	Dialog   string
	Items    []Item
}

// Overlay is the panel currently open and what it shows.
type Overlay struct {
	Kind   OverlayKind
	Shop   *ShopView
	Result *Result
}

// Notice is the transient message line.
type Notice struct {
	Text      string
	Remaining time.Duration
}

// DebugFlags are the door marker and door edit toggles.
type DebugFlags struct {
	Show bool
	Edit bool
}

// Session owns all mutable game state of one player. It is not safe for
// concurrent use; drive it from the game loop.
type Session struct {
	ID uuid.UUID

	world        *World
	scenes       map[string]*levels.Scene
	sceneID      string
	player       Player
	inventory    Inventory
	money        int
	startMoney   int
	fixedMoney   bool
	goal         *Goal
	visitedBonus bool
	phase        Phase
	started      bool
	overlay      Overlay
	overlaySeq   uint64
	notice       Notice
	debug        DebugFlags
	report       []Feasibility

	events       EventQueue
	scheduler    *Scheduler
	cooldown     Cooldown
	interactions int
	now          func() time.Time
	log          *slog.Logger
}

// Option configures a Session in NewSession.
type Option func(*Session)

// WithLogger sets the base logger; the session id is attached to it.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock replaces time.Now for the interact cooldown.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// WithStartingMoney overrides the budget from the shop table.
func WithStartingMoney(amount int) Option {
	return func(s *Session) {
		if amount >= 0 {
			s.startMoney = amount
			s.fixedMoney = true
		}
	}
}

// WithSystems replaces the default tick systems.
func WithSystems(systems ...System) Option {
	return func(s *Session) {
		s.scheduler = NewScheduler(systems...)
	}
}

// NewSession starts a fresh playthrough behind the start gate.
func NewSession(w *World, opts ...Option) *Session {
	s := &Session{
		ID:         uuid.New(),
		world:      w,
		scenes:     w.cloneScenes(),
		startMoney: w.Tuning.StartingMoney,
		now:        time.Now,
		log:        slog.Default(),
		scheduler:  NewScheduler(DefaultSystems()...),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = logger.WithSession(s.log, s.ID.String())
	s.cooldown.Interval = w.Tuning.InteractCooldown
	s.money = s.startMoney
	s.player = Player{
		Pos:    cp.Vector{X: w.Tuning.EdgeMargin},
		Facing: 1,
		Speed:  w.Tuning.Speed,
	}
	spawn := w.Tuning.StartSpawnPX
	if err := s.Spawn(w.Tuning.StartScene, &spawn); err != nil {
		s.log.Error("initial spawn", "error", err)
	}
	return s
}

// Dispatch queues a user interaction for the next tick.
func (s *Session) Dispatch(evt Event) {
	s.events.Push(evt)
}

// Tick advances the game by dt, which is capped at the world's max frame.
// Input is ignored until the session has started.
func (s *Session) Tick(in Input, dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	if limit := s.world.Tuning.MaxFrame; dt > limit {
		dt = limit
	}
	// The key that opens the start gate does not also act on the street.
	if !s.started {
		in = Input{}
	}
	s.scheduler.Update(s, Frame{Input: in, Delta: dt, Now: s.now()})
}

func (s *Session) start() {
	if s.started {
		return
	}
	s.started = true
	report, err := CheckFeasibility(s.world, s.startMoney)
	if err != nil {
		s.log.Warn("feasibility report", "error", err)
	} else {
		s.report = report
		LogFeasibility(s.log, s.startMoney, report)
	}
	s.phase = PhasePreGoal
	s.setOverlay(Overlay{Kind: OverlayGoalPicker})
	s.log.Info("started", "scene", s.sceneID, "money", s.money)
}

// PickGoal fixes the goal for this playthrough.
func (s *Session) PickGoal(id GoalID) error {
	if s.goal != nil {
		s.log.Debug("goal already chosen", "goal", s.goal.ID, "ignored", id)
		return nil
	}
	g, ok := s.world.Goal(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownGoal, id)
	}
	s.goal = &g
	s.phase = PhaseShopping
	if s.overlay.Kind == OverlayGoalPicker {
		s.setOverlay(Overlay{})
	}
	s.notify(s.BudgetNotice())
	s.log.Info("goal chosen", "goal", g.ID)
	return nil
}

// Restart resets the economy per keepMoney and returns to the goal picker.
func (s *Session) Restart(keepMoney bool) {
	s.Reset(keepMoney)
	s.goal = nil
	s.phase = PhasePreGoal
	s.cooldown.Reset()
	s.setOverlay(Overlay{Kind: OverlayGoalPicker})
}

// leave closes an open shop. A player who walked in before picking a goal
// gets the picker back.
func (s *Session) leave() {
	if s.overlay.Kind != OverlayShop {
		return
	}
	if s.goal == nil {
		s.setOverlay(Overlay{Kind: OverlayGoalPicker})
		return
	}
	s.setOverlay(Overlay{})
}

// Dismiss closes the ending and returns to the streets without resetting.
func (s *Session) Dismiss() {
	if s.overlay.Kind != OverlayEnding {
		return
	}
	s.phase = PhaseShopping
	s.setOverlay(Overlay{})
}

// ReloadWorld swaps in freshly loaded tables, keeping progress and door
// edits. Scenes that disappeared send the player back to the start.
func (s *Session) ReloadWorld(w *World) {
	if w == nil {
		return
	}
	s.world = w
	for id, sc := range w.Scenes {
		if _, ok := s.scenes[id]; !ok {
			s.scenes[id] = sc.Clone()
		}
	}
	for id := range s.scenes {
		if _, ok := w.Scenes[id]; !ok {
			delete(s.scenes, id)
		}
	}
	if s.goal != nil {
		if g, ok := w.Goal(s.goal.ID); ok {
			s.goal = &g
		}
	}
	if !s.fixedMoney {
		s.startMoney = w.Tuning.StartingMoney
	}
	s.player.Speed = w.Tuning.Speed
	s.cooldown.Interval = w.Tuning.InteractCooldown
	if _, ok := s.scenes[s.sceneID]; !ok {
		spawn := w.Tuning.StartSpawnPX
		if err := s.Spawn(w.Tuning.StartScene, &spawn); err != nil {
			s.log.Error("reload spawn", "error", err)
		}
	}
	s.log.Info("world reloaded")
}

// guard is the interaction boundary: rejections become notices, anything
// else is logged and reported generically. Panics do not escape.
func (s *Session) guard(op string, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("interaction panic", "op", op, "panic", r)
			s.notify(genericFailureNotice)
		}
	}()
	err := fn()
	if err == nil {
		return
	}
	if text, ok := noticeFor(err); ok {
		s.log.Debug("rejected", "op", op, "reason", err)
		s.notify(text)
		return
	}
	s.log.Error("interaction error", "op", op, "error", err)
	s.notify(genericFailureNotice)
}

func (s *Session) notify(text string) {
	s.notice = Notice{Text: text, Remaining: s.world.Tuning.NoticeDuration}
}

func (s *Session) setOverlay(o Overlay) {
	s.overlay = o
	s.overlaySeq++
}

func (s *Session) World() *World { return s.world }
func (s *Session) Started() bool { return s.started }
func (s *Session) Phase() Phase { return s.phase }
func (s *Session) Player() Player { return s.player }
func (s *Session) VisitedBonus() bool { return s.visitedBonus }
func (s *Session) Overlay() Overlay { return s.overlay }
func (s *Session) OverlaySeq() uint64 { return s.overlaySeq }
func (s *Session) Notice() Notice { return s.notice }
func (s *Session) Debug() DebugFlags { return s.debug }
func (s *Session) Report() []Feasibility { return append([]Feasibility(nil), s.report...) }

// Goal returns the chosen goal, if any.
func (s *Session) Goal() (Goal, bool) {
	if s.goal == nil {
		return Goal{}, false
	}
	return *s.goal, true
}
