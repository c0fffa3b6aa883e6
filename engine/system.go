package engine

import (
	"fmt"
	"time"

	"github.com/milk9111/portraitquest/levels"
)

// Frame is what every system sees for one tick.
type Frame struct {
	Input Input
	Delta time.Duration
	Now   time.Time
}

// System updates a session each tick.
type System interface {
	Update(s *Session, f Frame)
}

type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (sc *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	sc.systems = append(sc.systems, system)
}

func (sc *Scheduler) Update(s *Session, f Frame) {
	for _, system := range sc.systems {
		system.Update(s, f)
	}
}

func (sc *Scheduler) Systems() []System {
	systems := make([]System, 0, len(sc.systems))
	return append(systems, sc.systems...)
}

// DefaultSystems is the tick order of the game.
func DefaultSystems() []System {
	return []System{
		&EventSystem{},
		&MovementSystem{},
		&InteractSystem{},
		&InventoryPeekSystem{},
		&EdgeExitSystem{},
		&NoticeSystem{},
	}
}

// EventSystem applies queued user interactions in order. Before the start
// gate opens only the start event is honoured.
type EventSystem struct{}

func (e *EventSystem) Update(s *Session, f Frame) {
	for _, evt := range s.events.Drain() {
		if !s.started && evt.Type != EventStart {
			s.log.Debug("event before start dropped", "type", evt.Type)
			continue
		}
		s.guard(string(evt.Type), func() error {
			return s.apply(evt)
		})
	}
}

func (s *Session) apply(evt Event) error {
	switch evt.Type {
	case EventStart:
		s.start()
	case EventPickGoal:
		p, ok := evt.Data.(PickGoal)
		if !ok {
			return fmt.Errorf("engine: pick goal payload %T", evt.Data)
		}
		return s.PickGoal(p.Goal)
	case EventPurchase:
		p, ok := evt.Data.(Purchase)
		if !ok {
			return fmt.Errorf("engine: purchase payload %T", evt.Data)
		}
		return s.Purchase(p.ItemID)
	case EventLeave:
		s.leave()
	case EventRestart:
		p, ok := evt.Data.(Restart)
		if !ok {
			return fmt.Errorf("engine: restart payload %T", evt.Data)
		}
		s.Restart(p.KeepMoney)
	case EventDismiss:
		s.Dismiss()
	case EventToggleShow:
		s.debug.Show = !s.debug.Show
	case EventToggleEdit:
		s.debug.Edit = !s.debug.Edit
		if s.debug.Edit {
			s.notify("Door edit: ON")
		} else {
			s.notify("Door edit: OFF")
		}
	case EventEditDoor:
		p, ok := evt.Data.(EditDoor)
		if !ok {
			return fmt.Errorf("engine: edit door payload %T", evt.Data)
		}
		if !s.debug.Edit {
			return nil
		}
		if d, ok := s.EditDoor(p.PX); ok {
			s.notify(fmt.Sprintf("%s: %.1f%%", d.Name, d.PX*100))
		}
	default:
		return fmt.Errorf("engine: unknown event %q", evt.Type)
	}
	return nil
}

// MovementSystem walks the player and keeps them on the canvas.
type MovementSystem struct{}

func (m *MovementSystem) Update(s *Session, f Frame) {
	if !s.started {
		return
	}
	t := s.world.Tuning
	s.player.Step(f.Input, f.Delta, t.EdgeMargin, t.CanvasWidth-t.EdgeMargin)
}

// InteractSystem runs the enter action while the key is held, at most once per
// cooldown interval. It stays quiet while a shop or the ending is open.
type InteractSystem struct{}

func (i *InteractSystem) Update(s *Session, f Frame) {
	if !s.started || !f.Input.Interact {
		return
	}
	if s.overlay.Kind == OverlayShop || s.overlay.Kind == OverlayEnding {
		return
	}
	if !s.cooldown.Ready(f.Now) {
		return
	}
	s.interactions++
	s.guard("interact", s.Interact)
}

// InventoryPeekSystem shows what the player carries.
type InventoryPeekSystem struct{}

func (p *InventoryPeekSystem) Update(s *Session, f Frame) {
	if !s.started || !f.Input.Inventory {
		return
	}
	s.notify("Inventory: " + s.InventorySummary())
}

// EdgeExitSystem leaves the scene when the player keeps pushing into an edge
// that has an exit.
type EdgeExitSystem struct{}

func (e *EdgeExitSystem) Update(s *Session, f Frame) {
	if !s.started {
		return
	}
	if f.Input.Left && s.AtEdge(levels.SideLeft) {
		if ex, ok := ExitOn(s.Scene(), levels.SideLeft); ok {
			s.guard("edge_exit", func() error { return s.Spawn(ex.To, ex.SpawnPX) })
		}
	}
	if f.Input.Right && s.AtEdge(levels.SideRight) {
		if ex, ok := ExitOn(s.Scene(), levels.SideRight); ok {
			s.guard("edge_exit", func() error { return s.Spawn(ex.To, ex.SpawnPX) })
		}
	}
}

// NoticeSystem expires the transient notice.
type NoticeSystem struct{}

func (n *NoticeSystem) Update(s *Session, f Frame) {
	if s.notice.Text == "" {
		return
	}
	s.notice.Remaining -= f.Delta
	if s.notice.Remaining <= 0 {
		s.notice = Notice{}
	}
}
