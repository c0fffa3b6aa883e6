package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/portraitquest/common"
	"github.com/milk9111/portraitquest/levels"
)

var (
	colorWhite    = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorFaint    = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xaa}
	colorBar      = color.NRGBA{R: 0x0b, G: 0x0d, B: 0x14, A: 0xc0}
	colorPlayer   = color.NRGBA{R: 0xff, G: 0x5b, B: 0x7f, A: 0xff}
	colorSlot     = color.NRGBA{R: 0xf0, G: 0xe4, B: 0xa0, A: 0xff}
	colorMarker   = color.NRGBA{R: 0x00, G: 0xff, B: 0x66, A: 0xff}
	colorTolBand  = color.NRGBA{R: 0x00, G: 0xff, B: 0x66, A: 0x30}
	colorEditNote = color.NRGBA{R: 0xff, G: 0xc8, B: 0x40, A: 0xff}
)

const (
	hudHeight   = 28
	noticeFade  = 0.3
	blinkFrames = 66
)

func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, face, op)
}

func drawCentered(dst *ebiten.Image, s string, face text.Face, cx, y float64, c color.Color) {
	w, _ := text.Measure(s, face, 0)
	drawText(dst, s, face, cx-w/2, y, c)
}

// drawFullscreen stretches img over the logical canvas.
func drawFullscreen(dst, img *ebiten.Image) {
	if img == nil {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(common.BaseWidth/float64(b.Dx()), common.BaseHeight/float64(b.Dy()))
	op.Filter = ebiten.FilterNearest
	dst.DrawImage(img, op)
}

func (g *Game) drawStartScreen(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0x0b, G: 0x0d, B: 0x14, A: 0xff})
	drawFullscreen(screen, startScreenImage())

	if g.frames%blinkFrames < blinkFrames/2 {
		w, h := text.Measure("PRESS START", g.face, 0)
		x := common.BaseWidth/2 - w/2
		y := common.BaseHeight * 0.85
		vector.FillRect(screen, float32(x-10), float32(y-6), float32(w+20), float32(h+12), color.NRGBA{A: 0x40}, false)
		drawText(screen, "PRESS START", g.face, x, y, colorWhite)
	}
}

func (g *Game) drawStreet(screen *ebiten.Image) {
	sc := g.session.Scene()
	screen.Fill(color.NRGBA{R: 0x22, G: 0x22, B: 0x2a, A: 0xff})
	drawFullscreen(screen, backgroundImage(sc))
	if sc == nil {
		return
	}

	arrowY := float64(hudHeight + 6)
	for _, ex := range sc.Exits {
		switch ex.Side {
		case levels.SideLeft:
			drawText(screen, "←", g.face, 8, arrowY, colorFaint)
		case levels.SideRight:
			drawText(screen, "→", g.face, common.BaseWidth-24, arrowY, colorFaint)
		}
	}

	if door, ok := g.session.NearbyDoor(); ok {
		x := math.Floor(door.PX*common.BaseWidth) - 12
		drawText(screen, "E: Door", g.smallFace, x, arrowY, colorWhite)
	}

	dbg := g.session.Debug()
	if dbg.Show || dbg.Edit {
		for _, d := range sc.Doors {
			x := float32(d.PX * common.BaseWidth)
			tol := float32(d.Tol() * common.BaseWidth)
			vector.FillRect(screen, x-tol, hudHeight, tol*2, common.BaseHeight-hudHeight, colorTolBand, false)
			vector.StrokeLine(screen, x, hudHeight, x, common.BaseHeight, 1, colorMarker, false)
			label := fmt.Sprintf("%s %.1f%%", d.Name, d.PX*100)
			drawText(screen, label, g.smallFace, float64(x)+4, common.BaseHeight/2, colorMarker)
		}
	}
	if dbg.Edit {
		drawText(screen, "DOOR EDIT: click to move the nearest door, C copies the scene", g.smallFace, 8, common.BaseHeight-20, colorEditNote)
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image) {
	p := g.session.Player()
	x := math.Floor(p.X())
	ground := common.BaseHeight - g.sprite.GroundOffset

	path := g.sprite.Idle
	if p.Moving {
		path = g.sprite.Walk
	}
	var img *ebiten.Image
	if path != "" {
		img = spriteImage(path, p.Moving)
	}
	if img == nil {
		vector.FillRect(screen, float32(x-6), float32(ground-36), 12, 28, colorPlayer, false)
		return
	}

	factor := g.sprite.HeightFactor
	if factor <= 0 {
		factor = 0.22
	}
	b := img.Bounds()
	targetH := math.Round(common.BaseHeight * factor)
	scale := targetH / float64(b.Dy())
	dw := math.Max(1, math.Round(float64(b.Dx())*scale))
	dh := math.Max(1, math.Round(float64(b.Dy())*scale))
	dx := x - math.Floor(dw/2)
	dy := ground - dh

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	if p.Facing < 0 {
		op.GeoM.Scale(-scale, scale)
		op.GeoM.Translate(dx+dw, dy)
	} else {
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(dx, dy)
	}
	screen.DrawImage(img, op)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, common.BaseWidth, hudHeight, colorBar, false)

	goal := "Goal: –"
	if gl, ok := g.session.Goal(); ok {
		goal = "Goal: " + gl.Label
	}
	drawText(screen, g.session.SceneName(), g.smallFace, 10, 8, colorWhite)
	drawText(screen, goal, g.smallFace, 200, 8, colorWhite)

	x := float32(common.BaseWidth - 160)
	for range g.session.Items() {
		x -= 14
	}
	for range g.session.Items() {
		vector.FillRect(screen, x, 9, 10, 10, colorSlot, false)
		x += 14
	}
	drawText(screen, "Money: "+common.FormatMoney(g.session.Money()), g.smallFace, common.BaseWidth-150, 8, colorWhite)
}

func (g *Game) drawNotice(screen *ebiten.Image) {
	n := g.session.Notice()
	if n.Text == "" {
		return
	}
	total := g.session.World().Tuning.NoticeDuration.Seconds()
	alpha := common.FadeAlpha(n.Remaining.Seconds(), noticeFade, total)
	if alpha <= 0 {
		return
	}

	w, h := text.Measure(n.Text, g.face, 0)
	x := common.BaseWidth/2 - w/2
	y := common.BaseHeight - 80.0

	bg := colorBar
	bg.A = uint8(float32(bg.A) * alpha)
	vector.FillRect(screen, float32(x-12), float32(y-8), float32(w+24), float32(h+16), bg, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(colorWhite)
	op.ColorScale.ScaleAlpha(alpha)
	text.Draw(screen, n.Text, g.face, op)
}
