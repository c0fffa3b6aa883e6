package engine

import (
	"time"

	"github.com/jakecoffman/cp"
)

// Input is the set of controls sampled for one tick. Left and Right are held
// state; Interact is held state rate-limited by the interact cooldown;
// Inventory is a press.
type Input struct {
	Left      bool
	Right     bool
	Interact  bool
	Inventory bool
}

// Player is the walker on the street. Only Pos.X changes during play.
type Player struct {
	Pos    cp.Vector
	Facing int
	Moving bool
	Speed  float64
}

// X returns the horizontal position in pixels.
func (p Player) X() float64 {
	return p.Pos.X
}

// Step advances the player by one tick of held input and clamps the result to
// [minX, maxX].
func (p *Player) Step(in Input, dt time.Duration, minX, maxX float64) {
	dir := 0.0
	if in.Left {
		dir--
		p.Facing = -1
	}
	if in.Right {
		dir++
		p.Facing = 1
	}
	p.Moving = in.Left || in.Right

	vel := cp.Vector{X: dir * p.Speed}
	p.Pos = p.Pos.Add(vel.Mult(dt.Seconds()))
	p.Pos.X = cp.Clamp(p.Pos.X, minX, maxX)
}
