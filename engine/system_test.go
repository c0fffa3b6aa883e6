package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSystem struct {
	name string
	log  *[]string
}

func (r *recordingSystem) Update(_ *Session, _ Frame) {
	*r.log = append(*r.log, r.name)
}

func TestSchedulerOrder(t *testing.T) {
	var calls []string
	sched := NewScheduler(&recordingSystem{name: "a", log: &calls})
	sched.Add(&recordingSystem{name: "b", log: &calls})
	sched.Add(nil)

	sched.Update(nil, Frame{})

	assert.Equal(t, []string{"a", "b"}, calls)
	assert.Len(t, sched.Systems(), 2)
}

func TestWithSystems(t *testing.T) {
	var calls []string
	s, _ := newTestSession(t, WithSystems(&recordingSystem{name: "only", log: &calls}))
	s.Tick(Input{}, time.Millisecond)
	s.Tick(Input{}, time.Millisecond)
	assert.Equal(t, []string{"only", "only"}, calls)
}

func TestEventQueue(t *testing.T) {
	var q EventQueue
	assert.Nil(t, q.Drain())

	q.Push(StartEvent())
	q.Push(PurchaseEvent("album"))
	assert.Equal(t, 2, q.Len())

	got := q.Drain()
	assert.Equal(t, []Event{
		{Type: EventStart},
		{Type: EventPurchase, Data: Purchase{ItemID: "album"}},
	}, got)
	assert.Zero(t, q.Len())
}

func TestCooldown(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := Cooldown{Interval: 220 * time.Millisecond}

	assert.True(t, c.Ready(base))
	assert.False(t, c.Ready(base.Add(220*time.Millisecond)))
	assert.True(t, c.Ready(base.Add(221*time.Millisecond)))

	c.Reset()
	assert.True(t, c.Ready(base.Add(222*time.Millisecond)))
}

func TestUnknownEventIsReported(t *testing.T) {
	s, _ := startedSession(t)
	s.Dispatch(Event{Type: "teleport"})
	s.Tick(Input{}, 0)
	assert.Equal(t, genericFailureNotice, s.Notice().Text)
}

func TestMalformedPayloadIsReported(t *testing.T) {
	tests := []struct {
		name string
		evt  Event
	}{
		{"pick_goal", Event{Type: EventPickGoal, Data: "self"}},
		{"purchase", Event{Type: EventPurchase, Data: 3}},
		{"restart", Event{Type: EventRestart, Data: true}},
		{"edit_door", Event{Type: EventEditDoor}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := shoppingSession(t, GoalFamily)
			s.openPlace(doorNamed(t, s, "street1", "Bookstore"))
			require.NoError(t, s.Purchase("album"))
			s.setOverlay(Overlay{})

			s.Dispatch(tc.evt)
			s.Tick(Input{}, 0)

			assert.Equal(t, genericFailureNotice, s.Notice().Text)
			assert.Equal(t, 20, s.Money())
			assert.True(t, s.Owns("album"))
			g, ok := s.Goal()
			require.True(t, ok)
			assert.Equal(t, GoalFamily, g.ID)
		})
	}
}
