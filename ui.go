package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/portraitquest/common"
	"github.com/milk9111/portraitquest/engine"
	"github.com/muesli/reflow/wordwrap"
)

const panelWrap = 72

// panelKit holds the images and faces every overlay panel shares.
type panelKit struct {
	face      ebtext.Face
	panelImg  *imageui.NineSlice
	btnImg    *widget.ButtonImage
	secondary *widget.ButtonImage
	btnText   *widget.ButtonTextColor
	textColor color.Color
	mutedText color.Color
}

func newPanelKit(face ebtext.Face) *panelKit {
	btn := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x44, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x4a, G: 0x4a, B: 0x66, A: 255})
	btnPressed := imageui.NewNineSliceColor(color.NRGBA{R: 0x22, G: 0x22, B: 0x2e, A: 255})
	sec := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	return &panelKit{
		face:      face,
		panelImg:  imageui.NewNineSliceColor(color.NRGBA{R: 0x0b, G: 0x0d, B: 0x14, A: 230}),
		btnImg:    &widget.ButtonImage{Idle: btn, Hover: btnHover, Pressed: btnPressed},
		secondary: &widget.ButtonImage{Idle: sec, Hover: btnHover, Pressed: btnPressed},
		btnText:   &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		textColor: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		mutedText: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xb0},
	}
}

func (k *panelKit) centered() widget.WidgetOpt {
	return widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})
}

func (k *panelKit) text(s string, c color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(wordwrap.String(s, panelWrap), &k.face, c),
		widget.TextOpts.WidgetOpts(k.centered()),
	)
}

func (k *panelKit) button(label string, img *widget.ButtonImage, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(img),
		widget.ButtonOpts.Text(label, &k.face, k.btnText),
		widget.ButtonOpts.WidgetOpts(
			k.centered(),
			widget.WidgetOpts.MinSize(320, 32),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (k *panelKit) graphic(img *ebiten.Image) *widget.Graphic {
	return widget.NewGraphic(
		widget.GraphicOpts.Image(img),
		widget.GraphicOpts.WidgetOpts(k.centered()),
	)
}

// panel is a vertical card centred in the canvas.
func (k *panelKit) panel(children ...widget.PreferredSizeLocateableWidget) *ebitenui.UI {
	card := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(k.panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	for _, c := range children {
		if c != nil {
			card.AddChild(c)
		}
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(card)
	return &ebitenui.UI{Container: root}
}

// newOverlayUI builds the panel for the session's current overlay, or nil
// when the street is unobstructed.
func newOverlayUI(g *Game) *ebitenui.UI {
	kit := newPanelKit(g.face)
	ov := g.session.Overlay()
	switch ov.Kind {
	case engine.OverlayGoalPicker:
		return goalPickerUI(g, kit)
	case engine.OverlayShop:
		if ov.Shop != nil {
			return shopUI(g, kit, ov.Shop)
		}
	case engine.OverlayEnding:
		if ov.Result != nil {
			return endingUI(g, kit, ov.Result)
		}
	}
	return nil
}

func goalPickerUI(g *Game, kit *panelKit) *ebitenui.UI {
	children := []widget.PreferredSizeLocateableWidget{
		kit.text("Who is the portrait for?", kit.textColor),
	}
	for _, goal := range g.session.World().Goals {
		id := goal.ID
		children = append(children, kit.button(goal.Label, kit.btnImg, func() {
			g.session.Dispatch(engine.PickGoalEvent(id))
		}))
	}
	children = append(children, kit.text("Walk with ←/→ or A/D, enter doors with E, I shows your bag.", kit.mutedText))
	return kit.panel(children...)
}

func shopUI(g *Game, kit *panelKit, shop *engine.ShopView) *ebitenui.UI {
	children := []widget.PreferredSizeLocateableWidget{
		kit.text(shop.Name, kit.textColor),
	}
	if img := interiorImage(shop.Interior); img != nil {
		children = append(children, kit.graphic(img))
	}
	if shop.Dialog != "" {
		children = append(children, kit.text(shop.Dialog, kit.textColor))
	}
	if len(shop.Items) > 0 {
		children = append(children, kit.text("What do you need?", kit.textColor))
		for _, it := range shop.Items {
			id := it.ID
			label := fmt.Sprintf("%s – %s", it.Name, common.FormatMoney(it.Price))
			children = append(children, kit.button(label, kit.btnImg, func() {
				g.session.Dispatch(engine.PurchaseEvent(id))
			}))
		}
	} else {
		children = append(children, kit.text("Nothing to buy here.", kit.mutedText))
	}
	children = append(children,
		kit.button("Leave", kit.secondary, func() {
			g.session.Dispatch(engine.LeaveEvent())
		}),
		kit.text("Money: "+common.FormatMoney(g.session.Money()), kit.mutedText),
	)
	return kit.panel(children...)
}

func endingUI(g *Game, kit *panelKit, res *engine.Result) *ebitenui.UI {
	keepMoney := g.cfg.KeepMoney
	return kit.panel(
		kit.text(string(res.Verdict), kit.textColor),
		kit.graphic(portraitImage(string(res.Portrait))),
		kit.text(res.Note, kit.textColor),
		kit.text(fmt.Sprintf("Goal: %s • You brought: %s", res.Goal.Label, res.Brought()), kit.mutedText),
		kit.button("Restart (try another path)", kit.btnImg, func() {
			g.session.Dispatch(engine.RestartEvent(keepMoney))
		}),
		kit.button("Back to streets", kit.secondary, func() {
			g.session.Dispatch(engine.DismissEvent())
		}),
	)
}
