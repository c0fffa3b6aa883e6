// Command termquest plays Pixel-Portrait Quest in a terminal.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/milk9111/portraitquest/config"
	"github.com/milk9111/portraitquest/engine"
	"github.com/milk9111/portraitquest/logger"
)

func main() {
	cfg, err := config.Load("termquest")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// The alt screen owns stdout and stderr; logs go to a file or nowhere.
	var out io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("termquest: open log file: %v", err)
		}
		defer f.Close()
		out = f
	}
	slogger := logger.SetupTo(out, cfg)

	world, err := engine.LoadWorld()
	if err != nil {
		log.Fatalf("termquest: %v", err)
	}

	opts := []engine.Option{engine.WithLogger(slogger)}
	if cfg.Money >= 0 {
		opts = append(opts, engine.WithStartingMoney(cfg.Money))
	}
	session := engine.NewSession(world, opts...)

	p := tea.NewProgram(newModel(session, cfg.KeepMoney), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
