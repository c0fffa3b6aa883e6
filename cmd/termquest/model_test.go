package main

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/milk9111/portraitquest/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T) model {
	t.Helper()
	w, err := engine.LoadWorld()
	require.NoError(t, err)
	s := engine.NewSession(w, engine.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	m := newModel(s, true)
	m.now = func() time.Time { return t0 }
	m.copyText = func(string) error { return nil }
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(model)
	require.True(t, ok)
	return out
}

// press delivers a key and runs the tick that applies it.
func press(t *testing.T, m model, msg tea.KeyMsg, at time.Time) model {
	t.Helper()
	m = send(t, m, msg)
	return send(t, m, tickMsg(at))
}

func startedModel(t *testing.T) model {
	t.Helper()
	m := press(t, newTestModel(t), runes("x"), t0)
	require.True(t, m.session.Started())
	return m
}

func TestAnyKeyStarts(t *testing.T) {
	m := newTestModel(t)
	assert.Contains(t, m.View(), "Press any key")

	m = press(t, m, runes("x"), t0)

	assert.True(t, m.session.Started())
	assert.Equal(t, engine.OverlayGoalPicker, m.session.Overlay().Kind)
	assert.Contains(t, m.View(), "Self-Love")
}

func TestQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		t.Run(msg.String(), func(t *testing.T) {
			_, cmd := newTestModel(t).Update(msg)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestPickGoalByNumber(t *testing.T) {
	tests := []struct {
		key  string
		want engine.GoalID
	}{
		{"1", engine.GoalModel},
		{"2", engine.GoalSelf},
		{"3", engine.GoalFamily},
	}
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			m := press(t, startedModel(t), runes(tc.key), t0)

			g, ok := m.session.Goal()
			require.True(t, ok)
			assert.Equal(t, tc.want, g.ID)
			assert.Equal(t, engine.OverlayNone, m.session.Overlay().Kind)
		})
	}

	t.Run("out_of_range", func(t *testing.T) {
		m := press(t, startedModel(t), runes("7"), t0)
		_, ok := m.session.Goal()
		assert.False(t, ok)
	})
}

func TestWalkingHoldsBriefly(t *testing.T) {
	m := press(t, startedModel(t), runes("1"), t0)
	x0 := m.session.Player().X()

	m = send(t, m, runes("d"))
	m = send(t, m, tickMsg(t0.Add(33*time.Millisecond)))
	moved := m.session.Player().X()
	assert.Greater(t, moved, x0)

	// Past the hold window without a repeat the walker stops.
	m = send(t, m, tickMsg(t0.Add(holdFor+time.Millisecond)))
	m = send(t, m, tickMsg(t0.Add(holdFor+34*time.Millisecond)))
	stopped := m.session.Player().X()
	m = send(t, m, tickMsg(t0.Add(holdFor+67*time.Millisecond)))
	assert.Equal(t, stopped, m.session.Player().X())
	assert.False(t, m.session.Player().Moving)
}

func TestShopFlow(t *testing.T) {
	m := press(t, startedModel(t), runes("2"), t0)
	px := 0.188
	require.NoError(t, m.session.Spawn("street1", &px))

	m = press(t, m, runes("e"), t0)
	ov := m.session.Overlay()
	require.Equal(t, engine.OverlayShop, ov.Kind)
	assert.Equal(t, "Bookstore", ov.Shop.Name)
	assert.Contains(t, m.View(), "Photo Album")

	m = press(t, m, runes("1"), t0)
	assert.True(t, m.session.Owns("album"))
	assert.Equal(t, 20, m.session.Money())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc}, t0)
	assert.Equal(t, engine.OverlayNone, m.session.Overlay().Kind)
}

func TestInventoryKey(t *testing.T) {
	m := press(t, startedModel(t), runes("1"), t0)
	m = press(t, m, runes("i"), t0)
	assert.Equal(t, "Inventory: empty", m.session.Notice().Text)
}

func TestCopySummary(t *testing.T) {
	res := &engine.Result{
		Goal:    engine.Goal{Label: "Self-Love"},
		Verdict: "Perfect Shot",
		Note:    "Nailed it.",
	}

	t.Run("copied", func(t *testing.T) {
		m := newTestModel(t)
		var got string
		m.copyText = func(s string) error { got = s; return nil }

		m.copySummary(res)

		assert.Equal(t, "Pixel-Portrait Quest: Perfect Shot (Self-Love). You brought: nothing. Nailed it.", got)
		assert.Equal(t, "Summary copied.", m.status)
	})

	t.Run("clipboard_error", func(t *testing.T) {
		m := newTestModel(t)
		m.copyText = func(string) error { return errors.New("no xsel") }

		m.copySummary(res)

		assert.Equal(t, "Clipboard unavailable.", m.status)
	})
}

func TestColumn(t *testing.T) {
	assert.Equal(t, 0, column(-0.5))
	assert.Equal(t, 0, column(0))
	assert.Equal(t, streetCols-1, column(1))
	assert.Equal(t, streetCols-1, column(2))
}
