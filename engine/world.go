package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/milk9111/portraitquest/levels"
	"github.com/milk9111/portraitquest/prefabs"
)

// GoalID names one of the three narrative goals.
type GoalID string

const (
	GoalModel  GoalID = "model"
	GoalSelf   GoalID = "self"
	GoalFamily GoalID = "family"
)

var knownGoals = []GoalID{GoalModel, GoalSelf, GoalFamily}

// ParseGoal validates a goal id.
func ParseGoal(s string) (GoalID, error) {
	id := GoalID(strings.ToLower(strings.TrimSpace(s)))
	for _, g := range knownGoals {
		if g == id {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGoal, s)
}

type Item struct {
	ID    string
	Name  string
	Price int
}

type Shop struct {
	Name   string
	Items  []Item
	Dialog map[GoalID]string
}

type Goal struct {
	ID    GoalID
	Label string
	Wants []string
	Nice  []string
}

// Tuning collects the fixed numbers of the game loop.
type Tuning struct {
	Speed            float64
	CanvasWidth      float64
	CanvasHeight     float64
	EdgeMargin       float64
	MaxFrame         time.Duration
	InteractCooldown time.Duration
	NoticeDuration   time.Duration
	StartScene       string
	StartSpawnPX     float64
	StartingMoney    int
}

// World is the immutable table set a session plays against.
type World struct {
	Scenes map[string]*levels.Scene
	Shops  map[string]Shop
	Goals  []Goal
	Rules  *Rules
	Tuning Tuning

	catalog []Item
	items   map[string]Item
}

// LoadWorld assembles the world from the embedded level files and prefabs.
func LoadWorld() (*World, error) {
	scenes, err := levels.LoadAll()
	if err != nil {
		return nil, err
	}
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	shops, err := prefabs.LoadShopsSpec()
	if err != nil {
		return nil, err
	}
	goals, err := prefabs.LoadGoalsSpec()
	if err != nil {
		return nil, err
	}
	endings, err := prefabs.LoadEndingsSpec()
	if err != nil {
		return nil, err
	}
	return NewWorld(scenes, player, shops, goals, endings)
}

// NewWorld validates the tables and links them together.
func NewWorld(scenes map[string]*levels.Scene, player *prefabs.PlayerSpec, shops *prefabs.ShopsSpec, goals *prefabs.GoalsSpec, endings *prefabs.EndingsSpec) (*World, error) {
	if player == nil || shops == nil || goals == nil || endings == nil {
		return nil, fmt.Errorf("engine: world: missing table")
	}

	w := &World{
		Scenes: scenes,
		Shops:  make(map[string]Shop, len(shops.Shops)),
		items:  make(map[string]Item),
		Tuning: Tuning{
			Speed:            player.Speed,
			CanvasWidth:      player.CanvasWidth,
			CanvasHeight:     player.CanvasHeight,
			EdgeMargin:       player.EdgeMargin,
			MaxFrame:         player.MaxFrame,
			InteractCooldown: player.InteractCooldown,
			NoticeDuration:   player.NoticeDuration,
			StartScene:       player.StartScene,
			StartSpawnPX:     player.StartSpawnPX,
			StartingMoney:    shops.StartingMoney,
		},
	}
	if err := w.Tuning.validate(); err != nil {
		return nil, err
	}

	if _, ok := scenes[w.Tuning.StartScene]; !ok {
		return nil, fmt.Errorf("engine: world: start scene %q: %w", w.Tuning.StartScene, ErrUnknownScene)
	}
	for id, sc := range scenes {
		for _, ex := range sc.Exits {
			if _, ok := scenes[ex.To]; !ok {
				return nil, fmt.Errorf("engine: world: scene %s %s exit to %q: %w", id, ex.Side, ex.To, ErrUnknownScene)
			}
		}
	}

	for _, spec := range shops.Shops {
		if _, dup := w.Shops[spec.Name]; dup {
			return nil, fmt.Errorf("engine: world: duplicate shop %q", spec.Name)
		}
		shop := Shop{Name: spec.Name, Dialog: make(map[GoalID]string, len(spec.Dialog))}
		for _, is := range spec.Items {
			if is.ID == "" || is.Price < 0 {
				return nil, fmt.Errorf("engine: world: shop %q has invalid item %q", spec.Name, is.ID)
			}
			if _, dup := w.items[is.ID]; dup {
				return nil, fmt.Errorf("engine: world: item %q sold twice", is.ID)
			}
			item := Item{ID: is.ID, Name: is.Name, Price: is.Price}
			shop.Items = append(shop.Items, item)
			w.items[item.ID] = item
			w.catalog = append(w.catalog, item)
		}
		for k, line := range spec.Dialog {
			id, err := ParseGoal(k)
			if err != nil {
				return nil, fmt.Errorf("engine: world: shop %q dialog: %w", spec.Name, err)
			}
			shop.Dialog[id] = line
		}
		w.Shops[shop.Name] = shop
	}

	seen := make(map[GoalID]bool, len(knownGoals))
	for _, gs := range goals.Goals {
		id, err := ParseGoal(gs.ID)
		if err != nil {
			return nil, fmt.Errorf("engine: world: %w", err)
		}
		if seen[id] {
			return nil, fmt.Errorf("engine: world: duplicate goal %q", id)
		}
		seen[id] = true
		for _, ref := range append(append([]string(nil), gs.Wants...), gs.Nice...) {
			if _, ok := w.items[ref]; !ok {
				return nil, fmt.Errorf("engine: world: goal %q references unknown item %q", id, ref)
			}
		}
		if len(gs.Wants) == 0 {
			return nil, fmt.Errorf("engine: world: goal %q has no required items", id)
		}
		w.Goals = append(w.Goals, Goal{
			ID:    id,
			Label: gs.Label,
			Wants: append([]string(nil), gs.Wants...),
			Nice:  append([]string(nil), gs.Nice...),
		})
	}
	if len(seen) != len(knownGoals) {
		return nil, fmt.Errorf("engine: world: expected goals %v, got %d", knownGoals, len(seen))
	}

	rules, err := CompileRules(endings.Rules)
	if err != nil {
		return nil, err
	}
	w.Rules = rules

	return w, nil
}

func (t Tuning) validate() error {
	switch {
	case t.CanvasWidth <= 0 || t.CanvasHeight <= 0:
		return fmt.Errorf("engine: world: canvas %vx%v", t.CanvasWidth, t.CanvasHeight)
	case t.EdgeMargin < 0 || t.EdgeMargin*2 >= t.CanvasWidth:
		return fmt.Errorf("engine: world: edge margin %v", t.EdgeMargin)
	case t.Speed <= 0:
		return fmt.Errorf("engine: world: speed %v", t.Speed)
	case t.MaxFrame <= 0:
		return fmt.Errorf("engine: world: max frame %v", t.MaxFrame)
	case t.StartingMoney < 0:
		return fmt.Errorf("engine: world: starting money %d", t.StartingMoney)
	case t.StartSpawnPX < 0 || t.StartSpawnPX > 1:
		return fmt.Errorf("engine: world: start spawn %v", t.StartSpawnPX)
	}
	return nil
}

// Goal looks up a goal by id.
func (w *World) Goal(id GoalID) (Goal, bool) {
	for _, g := range w.Goals {
		if g.ID == id {
			return g, true
		}
	}
	return Goal{}, false
}

func (w *World) Shop(name string) (Shop, bool) {
	s, ok := w.Shops[name]
	return s, ok
}

func (w *World) Item(id string) (Item, bool) {
	it, ok := w.items[id]
	return it, ok
}

// Catalog lists every item on sale in shop order.
func (w *World) Catalog() []Item {
	return append([]Item(nil), w.catalog...)
}

func (w *World) cloneScenes() map[string]*levels.Scene {
	out := make(map[string]*levels.Scene, len(w.Scenes))
	for id, sc := range w.Scenes {
		out[id] = sc.Clone()
	}
	return out
}
