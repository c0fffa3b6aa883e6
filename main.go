package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/portraitquest/config"
	"github.com/milk9111/portraitquest/engine"
	"github.com/milk9111/portraitquest/logger"
)

func main() {
	cfg, err := config.Load("portraitquest")
	if err != nil {
		log.Fatal(err)
	}

	out := os.Stderr
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}
	lg := logger.SetupTo(out, cfg)

	world, err := engine.LoadWorld()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.Report {
		budget := world.Tuning.StartingMoney
		if cfg.Money >= 0 {
			budget = cfg.Money
		}
		report, err := engine.CheckFeasibility(world, budget)
		if err != nil {
			log.Fatal(err)
		}
		for _, line := range engine.FormatFeasibility(budget, report) {
			fmt.Println(line)
		}
		return
	}

	if cfg.BaseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(world.Tuning.CanvasWidth), int(world.Tuning.CanvasHeight))
	ebiten.SetWindowTitle("Pixel-Portrait Quest")

	game := NewGame(world, cfg, lg)
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
