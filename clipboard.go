package main

import (
	"log/slog"

	"golang.design/x/clipboard"
)

// sceneClipboard copies edited scene JSON to the system clipboard. It stays
// disabled when the platform clipboard cannot be opened.
type sceneClipboard struct {
	ready bool
	log   *slog.Logger
}

func newSceneClipboard(log *slog.Logger) *sceneClipboard {
	c := &sceneClipboard{log: log}
	if err := clipboard.Init(); err != nil {
		log.Warn("clipboard unavailable", "error", err)
		return c
	}
	c.ready = true
	return c
}

func (c *sceneClipboard) Copy(data []byte) bool {
	if !c.ready || len(data) == 0 {
		return false
	}
	clipboard.Write(clipboard.FmtText, data)
	return true
}
