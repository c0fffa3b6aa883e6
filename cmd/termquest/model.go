package main

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/milk9111/portraitquest/engine"
)

const (
	frame = 33 * time.Millisecond
	// Terminals report presses, not releases; a walking key counts as held
	// for this long after its last press or repeat.
	holdFor = 180 * time.Millisecond
)

type tickMsg time.Time

type model struct {
	session   *engine.Session
	keepMoney bool
	keys      keyMap
	help      help.Model
	width     int

	leftUntil  time.Time
	rightUntil time.Time
	interact   bool
	inventory  bool
	last       time.Time
	now        func() time.Time

	copyText func(string) error
	status   string
}

func newModel(session *engine.Session, keepMoney bool) model {
	return model{
		session:   session,
		keepMoney: keepMoney,
		keys:      newKeyMap(),
		help:      help.New(),
		width:     80,
		now:       time.Now,
		copyText:  clipboard.WriteAll,
	}
}

func tick() tea.Cmd {
	return tea.Tick(frame, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.step(time.Time(msg))
		return m, tick()

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if !m.session.Started() {
			m.session.Dispatch(engine.StartEvent())
			return m, nil
		}
		m.handleKey(msg)
	}
	return m, nil
}

// step runs one session tick with the keys collected since the last one.
func (m *model) step(now time.Time) {
	var dt time.Duration
	if !m.last.IsZero() {
		dt = now.Sub(m.last)
	}
	m.last = now

	in := engine.Input{
		Left:      now.Before(m.leftUntil),
		Right:     now.Before(m.rightUntil),
		Interact:  m.interact,
		Inventory: m.inventory,
	}
	m.interact, m.inventory = false, false
	m.session.Tick(in, dt)
}

func (m *model) handleKey(msg tea.KeyMsg) {
	ov := m.session.Overlay()

	switch {
	case key.Matches(msg, m.keys.Choose):
		m.choose(ov, int(msg.Runes[0]-'1'))
		return
	case key.Matches(msg, m.keys.Leave):
		if ov.Kind == engine.OverlayShop {
			m.session.Dispatch(engine.LeaveEvent())
		}
		return
	}

	if ov.Kind == engine.OverlayEnding {
		switch {
		case key.Matches(msg, m.keys.Restart):
			m.session.Dispatch(engine.RestartEvent(m.keepMoney))
		case key.Matches(msg, m.keys.Back):
			m.session.Dispatch(engine.DismissEvent())
		case key.Matches(msg, m.keys.Copy):
			m.copySummary(ov.Result)
		}
		return
	}

	now := m.now()
	switch {
	case key.Matches(msg, m.keys.Left):
		m.leftUntil = now.Add(holdFor)
		m.rightUntil = time.Time{}
	case key.Matches(msg, m.keys.Right):
		m.rightUntil = now.Add(holdFor)
		m.leftUntil = time.Time{}
	case key.Matches(msg, m.keys.Enter):
		m.interact = true
	case key.Matches(msg, m.keys.Inventory):
		m.inventory = true
	case key.Matches(msg, m.keys.Markers):
		m.session.Dispatch(engine.ToggleShowEvent())
	}
}

func (m *model) choose(ov engine.Overlay, i int) {
	switch ov.Kind {
	case engine.OverlayGoalPicker:
		goals := m.session.World().Goals
		if i >= 0 && i < len(goals) {
			m.session.Dispatch(engine.PickGoalEvent(goals[i].ID))
		}
	case engine.OverlayShop:
		if ov.Shop != nil && i >= 0 && i < len(ov.Shop.Items) {
			m.session.Dispatch(engine.PurchaseEvent(ov.Shop.Items[i].ID))
		}
	}
}

func (m *model) copySummary(res *engine.Result) {
	if res == nil {
		return
	}
	if err := m.copyText(summary(res)); err != nil {
		m.status = "Clipboard unavailable."
		return
	}
	m.status = "Summary copied."
}

func summary(res *engine.Result) string {
	return fmt.Sprintf("Pixel-Portrait Quest: %s (%s). You brought: %s. %s",
		res.Verdict, res.Goal.Label, res.Brought(), res.Note)
}
