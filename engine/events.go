package engine

// EventType names a user interaction the presentation layer forwards to the
// session.
type EventType string

const (
	EventStart      EventType = "start"
	EventPickGoal   EventType = "pick_goal"
	EventPurchase   EventType = "purchase"
	EventLeave      EventType = "leave"
	EventRestart    EventType = "restart"
	EventDismiss    EventType = "dismiss"
	EventToggleShow EventType = "toggle_show"
	EventToggleEdit EventType = "toggle_edit"
	EventEditDoor   EventType = "edit_door"
)

// Event is a queued interaction. Data holds the payload for the types that
// need one.
type Event struct {
	Type EventType
	Data any
}

type PickGoal struct {
	Goal GoalID
}

type Purchase struct {
	ItemID string
}

type Restart struct {
	KeepMoney bool
}

type EditDoor struct {
	PX float64
}

func StartEvent() Event { return Event{Type: EventStart} }
func PickGoalEvent(id GoalID) Event { return Event{Type: EventPickGoal, Data: PickGoal{Goal: id}} }
func PurchaseEvent(itemID string) Event { return Event{Type: EventPurchase, Data: Purchase{ItemID: itemID}} }
func LeaveEvent() Event { return Event{Type: EventLeave} }
func RestartEvent(keepMoney bool) Event { return Event{Type: EventRestart, Data: Restart{KeepMoney: keepMoney}} }
func DismissEvent() Event { return Event{Type: EventDismiss} }
func ToggleShowEvent() Event { return Event{Type: EventToggleShow} }
func ToggleEditEvent() Event { return Event{Type: EventToggleEdit} }
func EditDoorEvent(px float64) Event { return Event{Type: EventEditDoor, Data: EditDoor{PX: px}} }

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
