package main

import (
	"bytes"
	"log"
	"log/slog"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/portraitquest/common"
	"github.com/milk9111/portraitquest/config"
	"github.com/milk9111/portraitquest/engine"
	"github.com/milk9111/portraitquest/prefabs"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

type Game struct {
	frames int
	last   time.Time

	cfg     *config.Config
	log     *slog.Logger
	session *engine.Session
	sprite  prefabs.SpriteSpec
	watcher *prefabs.Watcher
	clip    *sceneClipboard

	ui      *ebitenui.UI
	uiSeq   uint64
	uiMoney int

	face      text.Face
	smallFace text.Face
}

func NewGame(world *engine.World, cfg *config.Config, logger *slog.Logger) *Game {
	opts := []engine.Option{engine.WithLogger(logger)}
	if cfg.Money >= 0 {
		opts = append(opts, engine.WithStartingMoney(cfg.Money))
	}

	g := &Game{
		cfg:       cfg,
		log:       logger,
		session:   engine.NewSession(world, opts...),
		clip:      newSceneClipboard(logger),
		face:      loadFace(18),
		smallFace: text.NewGoXFace(basicfont.Face7x13),
	}

	if spec, err := prefabs.LoadPlayerSpec(); err == nil {
		g.sprite = spec.Sprite
	} else {
		logger.Warn("player sprite spec", "error", err)
	}

	if cfg.Watch {
		w, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			logger.Warn("prefab watcher disabled", "error", err)
		} else {
			g.watcher = w
		}
	}
	return g
}

func loadFace(size float64) text.Face {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("font: %v", err)
	}
	return &text.GoTextFace{Source: s, Size: size}
}

func (g *Game) Update() error {
	g.frames++

	now := time.Now()
	var dt time.Duration
	if !g.last.IsZero() {
		dt = now.Sub(g.last)
	}
	g.last = now

	g.reloadPrefabs()

	if g.ui != nil {
		g.ui.Update()
	}

	if !g.session.Started() {
		if anyStartInput() {
			g.session.Dispatch(engine.StartEvent())
			if g.cfg.Debug {
				g.session.Dispatch(engine.ToggleShowEvent())
			}
		}
	} else {
		g.handleKeys(pollDebugKeys())
	}

	g.session.Tick(pollInput(), dt)
	g.syncUI()
	return nil
}

func (g *Game) handleKeys(k debugKeys) {
	overlay := g.session.Overlay().Kind

	if k.toggleShow {
		g.session.Dispatch(engine.ToggleShowEvent())
	}
	if k.toggleEdit {
		g.session.Dispatch(engine.ToggleEditEvent())
	}
	if k.leave && overlay == engine.OverlayShop {
		g.session.Dispatch(engine.LeaveEvent())
	}
	if !g.session.Debug().Edit || overlay != engine.OverlayNone {
		return
	}
	if k.click {
		g.session.Dispatch(engine.EditDoorEvent(float64(k.clickX) / common.BaseWidth))
	}
	if k.copyScene {
		g.copyScene()
	}
}

func (g *Game) copyScene() {
	data, err := g.session.ExportScene()
	if err != nil {
		g.log.Error("export scene", "scene", g.session.SceneID(), "error", err)
		return
	}
	if g.clip.Copy(data) {
		g.log.Info("scene copied to clipboard", "scene", g.session.SceneID())
	}
}

// reloadPrefabs swaps in new tables when a watched prefab changes. A table
// that fails validation keeps the running world.
func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	changed, err := g.watcher.Poll()
	if err != nil {
		g.log.Warn("prefab watcher", "error", err)
	}
	if len(changed) == 0 {
		return
	}
	g.log.Debug("prefabs changed", "files", changed)
	world, err := engine.LoadWorld()
	if err != nil {
		g.log.Error("prefab reload", "error", err)
		return
	}
	g.session.ReloadWorld(world)
	if spec, err := prefabs.LoadPlayerSpec(); err == nil {
		g.sprite = spec.Sprite
	}
	g.uiSeq = 0
}

// syncUI rebuilds the panel whenever the session switched overlays or the
// balance shown in a shop changed.
func (g *Game) syncUI() {
	seq, money := g.session.OverlaySeq(), g.session.Money()
	if seq == g.uiSeq && money == g.uiMoney {
		return
	}
	g.uiSeq, g.uiMoney = seq, money
	g.ui = newOverlayUI(g)
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.session.Started() {
		g.drawStartScreen(screen)
		return
	}

	g.drawStreet(screen)
	g.drawPlayer(screen)
	g.drawHUD(screen)
	if g.ui != nil {
		g.ui.Draw(screen)
	}
	g.drawNotice(screen)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher != nil {
		g.watcher.Close()
	}
}
