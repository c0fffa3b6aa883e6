package engine

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func loadTestWorld(t *testing.T) *World {
	t.Helper()
	w, err := LoadWorld()
	require.NoError(t, err)
	return w
}

func newTestSession(t *testing.T, opts ...Option) (*Session, *testClock) {
	t.Helper()
	clock := &testClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	all := append([]Option{WithLogger(discardLogger()), WithClock(clock.Now)}, opts...)
	return NewSession(loadTestWorld(t), all...), clock
}

func startedSession(t *testing.T, opts ...Option) (*Session, *testClock) {
	t.Helper()
	s, clock := newTestSession(t, opts...)
	s.Dispatch(StartEvent())
	s.Tick(Input{}, 0)
	require.True(t, s.Started())
	return s, clock
}

func shoppingSession(t *testing.T, goal GoalID) (*Session, *testClock) {
	t.Helper()
	s, clock := startedSession(t)
	s.Dispatch(PickGoalEvent(goal))
	s.Tick(Input{}, 0)
	require.Equal(t, PhaseShopping, s.Phase())
	return s, clock
}

// placeAt teleports the player to x pixels in sceneID.
func placeAt(t *testing.T, s *Session, sceneID string, x float64) {
	t.Helper()
	require.NoError(t, s.Spawn(sceneID, nil))
	s.player.Pos.X = x
}

func TestNewSessionSpawnsAtStart(t *testing.T) {
	s, _ := newTestSession(t)

	assert.Equal(t, "street1", s.SceneID())
	assert.Equal(t, "Main Street 1", s.SceneName())
	assert.InDelta(t, 57, s.Player().X(), 1e-9)
	assert.Equal(t, 30, s.Money())
	assert.Empty(t, s.Items())
	assert.False(t, s.Started())
	assert.Equal(t, OverlayNone, s.Overlay().Kind)
	assert.NotEqual(t, [16]byte{}, [16]byte(s.ID))
}

func TestStartGate(t *testing.T) {
	s, _ := newTestSession(t)

	s.Dispatch(PickGoalEvent(GoalModel))
	s.Tick(Input{Right: true, Interact: true, Inventory: true}, 30*time.Millisecond)
	assert.False(t, s.Started())
	assert.InDelta(t, 57, s.Player().X(), 1e-9, "no movement before start")
	_, chosen := s.Goal()
	assert.False(t, chosen, "events before start are dropped")
	assert.Empty(t, s.Notice().Text)
	assert.Zero(t, s.interactions)

	s.Dispatch(StartEvent())
	s.Tick(Input{}, 0)
	require.True(t, s.Started())
	assert.Equal(t, OverlayGoalPicker, s.Overlay().Kind)
	assert.Equal(t, PhasePreGoal, s.Phase())
	require.Len(t, s.Report(), 3)

	seq := s.OverlaySeq()
	s.Dispatch(StartEvent())
	s.Tick(Input{}, 0)
	assert.Equal(t, seq, s.OverlaySeq(), "second start is a no-op")
}

func TestStartingKeyDoesNotAct(t *testing.T) {
	s, _ := newTestSession(t)
	before := s.Player().X()

	s.Dispatch(StartEvent())
	s.Tick(Input{Right: true, Interact: true, Inventory: true}, 33*time.Millisecond)

	require.True(t, s.Started())
	assert.InDelta(t, before, s.Player().X(), 1e-9)
	assert.False(t, s.Player().Moving)
	assert.Zero(t, s.interactions)
	assert.Empty(t, s.Notice().Text)

	s.Tick(Input{Right: true}, 33*time.Millisecond)
	assert.Greater(t, s.Player().X(), before, "input counts from the next tick on")
}

func TestTickCapsDelta(t *testing.T) {
	s, _ := startedSession(t)
	before := s.Player().X()

	s.Tick(Input{Right: true}, 10*time.Second)

	moved := s.Player().X() - before
	assert.InDelta(t, 95*0.033, moved, 1e-6)
	assert.True(t, s.Player().Moving)
	assert.Equal(t, 1, s.Player().Facing)
}

func TestPickGoal(t *testing.T) {
	t.Run("sets_goal_and_budget_notice", func(t *testing.T) {
		s, _ := shoppingSession(t, GoalFamily)
		g, ok := s.Goal()
		require.True(t, ok)
		assert.Equal(t, GoalFamily, g.ID)
		assert.Equal(t, OverlayNone, s.Overlay().Kind)
		assert.Equal(t, "Budget: €30. Choose wisely.", s.Notice().Text)
	})

	t.Run("second_pick_ignored", func(t *testing.T) {
		s, _ := shoppingSession(t, GoalFamily)
		require.NoError(t, s.PickGoal(GoalModel))
		g, _ := s.Goal()
		assert.Equal(t, GoalFamily, g.ID)
	})

	t.Run("unknown_goal", func(t *testing.T) {
		s, _ := startedSession(t)
		err := s.PickGoal("pirate")
		require.ErrorIs(t, err, ErrUnknownGoal)

		s.Dispatch(PickGoalEvent("pirate"))
		s.Tick(Input{}, 0)
		assert.Equal(t, genericFailureNotice, s.Notice().Text)
		_, ok := s.Goal()
		assert.False(t, ok)
	})
}

func TestRestart(t *testing.T) {
	tests := []struct {
		name      string
		keepMoney bool
		wantMoney int
	}{
		{name: "keep_money", keepMoney: true, wantMoney: 16},
		{name: "reset_money", keepMoney: false, wantMoney: 30},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := shoppingSession(t, GoalModel)
			s.openPlace(doorNamed(t, s, "street1", "Clothing"))
			require.NoError(t, s.Purchase("outfit"))
			s.visitedBonus = true
			placeAt(t, s, "street2", 500)

			s.Dispatch(RestartEvent(tc.keepMoney))
			s.Tick(Input{}, 0)

			assert.Equal(t, tc.wantMoney, s.Money())
			assert.Empty(t, s.Items())
			assert.False(t, s.VisitedBonus())
			_, chosen := s.Goal()
			assert.False(t, chosen)
			assert.Equal(t, PhasePreGoal, s.Phase())
			assert.Equal(t, OverlayGoalPicker, s.Overlay().Kind)
			assert.Equal(t, "street1", s.SceneID())
			assert.InDelta(t, 57, s.Player().X(), 1e-9)
		})
	}
}

func TestGuard(t *testing.T) {
	t.Run("panic_recovered", func(t *testing.T) {
		s, _ := startedSession(t)
		assert.NotPanics(t, func() {
			s.guard("boom", func() error { panic("kaboom") })
		})
		assert.Equal(t, genericFailureNotice, s.Notice().Text)
	})

	t.Run("rejection_becomes_notice", func(t *testing.T) {
		s, _ := startedSession(t)
		s.guard("interact", func() error { return ErrGoalNotChosen })
		assert.Equal(t, "Pick your goal first.", s.Notice().Text)
	})

	t.Run("fault_is_generic", func(t *testing.T) {
		s, _ := startedSession(t)
		s.guard("spawn", func() error { return s.Spawn("moon", nil) })
		assert.Equal(t, genericFailureNotice, s.Notice().Text)
		assert.Equal(t, "street1", s.SceneID())
	})
}

func TestNoticeExpires(t *testing.T) {
	s, _ := startedSession(t)
	s.Tick(Input{Inventory: true}, 0)
	require.Equal(t, "Inventory: empty", s.Notice().Text)

	s.Tick(Input{}, 30*time.Millisecond)
	assert.Equal(t, 1570*time.Millisecond, s.Notice().Remaining)

	for range 60 {
		s.Tick(Input{}, 33*time.Millisecond)
	}
	assert.Empty(t, s.Notice().Text)
}

func TestDebugToggles(t *testing.T) {
	s, _ := startedSession(t)

	s.Dispatch(ToggleShowEvent())
	s.Dispatch(ToggleEditEvent())
	s.Tick(Input{}, 0)

	assert.True(t, s.Debug().Show)
	assert.True(t, s.Debug().Edit)
	assert.Equal(t, "Door edit: ON", s.Notice().Text)

	s.Dispatch(ToggleEditEvent())
	s.Tick(Input{}, 0)
	assert.False(t, s.Debug().Edit)
	assert.Equal(t, "Door edit: OFF", s.Notice().Text)
}

func TestReloadWorldKeepsProgress(t *testing.T) {
	s, _ := shoppingSession(t, GoalSelf)
	s.openPlace(doorNamed(t, s, "street2", "Drugstore"))
	require.NoError(t, s.Purchase("flower"))
	_, ok := s.EditDoor(0.5)
	require.True(t, ok)

	s.ReloadWorld(loadTestWorld(t))

	assert.Equal(t, 25, s.Money())
	assert.True(t, s.Owns("flower"))
	g, _ := s.Goal()
	assert.Equal(t, GoalSelf, g.ID)
	assert.InDelta(t, 0.5, s.Scene().Doors[1].PX, 1e-9)
}

func TestReloadWorldStartingMoney(t *testing.T) {
	reloaded := func(t *testing.T) *World {
		w := loadTestWorld(t)
		w.Tuning.StartingMoney = 45
		return w
	}

	t.Run("table_value_follows_reload", func(t *testing.T) {
		s, _ := shoppingSession(t, GoalSelf)
		s.ReloadWorld(reloaded(t))
		assert.Equal(t, 30, s.Money(), "balance is progress and survives the reload")

		s.Restart(false)
		assert.Equal(t, 45, s.Money())
	})

	t.Run("override_wins", func(t *testing.T) {
		s, _ := startedSession(t, WithStartingMoney(50))
		s.ReloadWorld(reloaded(t))

		s.Restart(false)
		assert.Equal(t, 50, s.Money())
	})
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "pregoal", PhasePreGoal.String())
	assert.Equal(t, "shopping", PhaseShopping.String())
	assert.Equal(t, "ended", PhaseEnded.String())
	assert.Equal(t, "phase(7)", Phase(7).String())
}
