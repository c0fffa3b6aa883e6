package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/portraitquest/engine"
)

const stickDeadzone = 0.2

// pollInput samples the held walking keys, the enter key and the inventory
// press for one tick.
func pollInput() engine.Input {
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	interact := ebiten.IsKeyPressed(ebiten.KeyE)
	inventory := inpututil.IsKeyJustPressed(ebiten.KeyI)

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			left = left || leftX < 0
			right = right || leftX > 0
		}
		left = left || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		right = right || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
		interact = interact || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		inventory = inventory || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightTop)
	}

	return engine.Input{
		Left:      left,
		Right:     right,
		Interact:  interact,
		Inventory: inventory,
	}
}

// anyStartInput reports a fresh key press, click or gamepad button, which is
// what opens the start gate.
func anyStartInput() bool {
	if len(inpututil.AppendJustPressedKeys(nil)) > 0 {
		return true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		for b := ebiten.StandardGamepadButton(0); b <= ebiten.StandardGamepadButtonMax; b++ {
			if inpututil.IsStandardGamepadButtonJustPressed(id, b) {
				return true
			}
		}
	}
	return false
}

// debugKeys are the presses that are not part of the per-tick input.
type debugKeys struct {
	toggleShow bool
	toggleEdit bool
	copyScene  bool
	leave      bool
	click      bool
	clickX     int
}

func pollDebugKeys() debugKeys {
	k := debugKeys{
		toggleShow: inpututil.IsKeyJustPressed(ebiten.KeyH),
		toggleEdit: inpututil.IsKeyJustPressed(ebiten.KeyF2),
		copyScene:  inpututil.IsKeyJustPressed(ebiten.KeyC),
		leave:      inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		click:      inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
	if k.click {
		k.clickX, _ = ebiten.CursorPosition()
	}
	return k
}
