package engine

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/portraitquest/levels"
)

const (
	minDoorPX = 0.02
	maxDoorPX = 0.98
)

// NearestDoor returns the index of the door within tolerance of px that is
// closest to it. Ties keep the earlier door.
func NearestDoor(sc *levels.Scene, px float64) (int, bool) {
	if sc == nil {
		return -1, false
	}
	best, bestDist := -1, math.Inf(1)
	for i, d := range sc.Doors {
		dist := math.Abs(px - d.PX)
		if dist >= d.Tol() {
			continue
		}
		if dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best, best >= 0
}

// ExitOn returns the first exit on the given side.
func ExitOn(sc *levels.Scene, side levels.Side) (levels.Exit, bool) {
	if sc == nil {
		return levels.Exit{}, false
	}
	for _, ex := range sc.Exits {
		if ex.Side == side {
			return ex, true
		}
	}
	return levels.Exit{}, false
}

// Scene returns the active scene.
func (s *Session) Scene() *levels.Scene {
	return s.scenes[s.sceneID]
}

// SceneID is the id of the active scene.
func (s *Session) SceneID() string {
	return s.sceneID
}

// SceneName is the display name of the active scene.
func (s *Session) SceneName() string {
	if sc := s.Scene(); sc != nil {
		return sc.Name
	}
	return ""
}

// PlayerPX is the player position normalized to the canvas width.
func (s *Session) PlayerPX() float64 {
	return s.player.X() / s.world.Tuning.CanvasWidth
}

// NearbyDoor returns the door the player could enter right now.
func (s *Session) NearbyDoor() (levels.Door, bool) {
	sc := s.Scene()
	i, ok := NearestDoor(sc, s.PlayerPX())
	if !ok {
		return levels.Door{}, false
	}
	return sc.Doors[i], true
}

// AtEdge reports whether the player stands on the given canvas edge.
func (s *Session) AtEdge(side levels.Side) bool {
	t := s.world.Tuning
	switch side {
	case levels.SideLeft:
		return s.player.X() <= t.EdgeMargin
	case levels.SideRight:
		return s.player.X() >= t.CanvasWidth-t.EdgeMargin
	}
	return false
}

// Spawn makes sceneID active. A non-nil spawnPX places the player at that
// normalized position in the new scene.
func (s *Session) Spawn(sceneID string, spawnPX *float64) error {
	if _, ok := s.scenes[sceneID]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownScene, sceneID)
	}
	s.sceneID = sceneID
	if spawnPX != nil {
		s.player.Pos.X = s.pxToX(*spawnPX)
	}
	s.log.Debug("spawn", "scene", sceneID, "x", s.player.X())
	return nil
}

func (s *Session) pxToX(px float64) float64 {
	return math.Floor(px * s.world.Tuning.CanvasWidth)
}

// Interact resolves the explicit enter action: a nearby door first, then the
// left edge exit, then the right edge exit.
func (s *Session) Interact() error {
	sc := s.Scene()
	if i, ok := NearestDoor(sc, s.PlayerPX()); ok {
		door := sc.Doors[i]
		s.player.Pos.X = math.Round(s.pxToX(door.PX))
		return s.enterDoor(door)
	}
	if s.AtEdge(levels.SideLeft) {
		if ex, ok := ExitOn(sc, levels.SideLeft); ok {
			return s.Spawn(ex.To, ex.SpawnPX)
		}
	}
	if s.AtEdge(levels.SideRight) {
		if ex, ok := ExitOn(sc, levels.SideRight); ok {
			return s.Spawn(ex.To, ex.SpawnPX)
		}
	}
	return ErrNoDoorNearby
}

func (s *Session) enterDoor(door levels.Door) error {
	switch door.EffectiveKind() {
	case levels.DoorStudio:
		return s.goStudio()
	case levels.DoorBonus:
		s.visitedBonus = true
	}
	s.openPlace(door)
	return nil
}

func (s *Session) openPlace(door levels.Door) {
	view := &ShopView{Name: door.Name, Interior: door.Interior}
	if shop, ok := s.world.Shop(door.Name); ok {
		view.Items = append([]Item(nil), shop.Items...)
		if s.goal != nil {
			view.Dialog = shop.Dialog[s.goal.ID]
		}
	}
	s.setOverlay(Overlay{Kind: OverlayShop, Shop: view})
	s.log.Debug("enter", "place", door.Name)
}

// EditDoor moves the door closest to px in the active scene, ignoring
// tolerance, and returns it.
func (s *Session) EditDoor(px float64) (levels.Door, bool) {
	sc := s.Scene()
	if sc == nil || len(sc.Doors) == 0 {
		return levels.Door{}, false
	}
	best, bestDist := 0, math.Inf(1)
	for i, d := range sc.Doors {
		if dist := math.Abs(px - d.PX); dist < bestDist {
			best, bestDist = i, dist
		}
	}
	sc.Doors[best].PX = cp.Clamp(px, minDoorPX, maxDoorPX)
	return sc.Doors[best], true
}

// ExportScene renders the active scene, including door edits, in the level
// file format.
func (s *Session) ExportScene() ([]byte, error) {
	return levels.Marshal(s.Scene())
}
