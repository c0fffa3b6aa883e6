package engine

import "errors"

// User-input rejections. They leave the session unchanged and surface as a
// notice; see noticeFor.
var (
	ErrInsufficientFunds = errors.New("engine: insufficient funds")
	ErrDuplicateItem     = errors.New("engine: item already owned")
	ErrNoDoorNearby      = errors.New("engine: no door nearby")
	ErrGoalNotChosen     = errors.New("engine: goal not chosen")
	ErrNotForSale        = errors.New("engine: item not for sale here")
)

// Faults in data or caller usage.
var (
	ErrUnknownScene = errors.New("engine: unknown scene")
	ErrUnknownGoal  = errors.New("engine: unknown goal")
	ErrNoRuleMatch  = errors.New("engine: no verdict rule matched")
)

const genericFailureNotice = "Oops – interaction error. Check console."

var rejectionNotices = []struct {
	err  error
	text string
}{
	{ErrInsufficientFunds, "Too expensive."},
	{ErrDuplicateItem, "Already in inventory."},
	{ErrNoDoorNearby, "No door nearby."},
	{ErrGoalNotChosen, "Pick your goal first."},
	{ErrNotForSale, "Nothing like that here."},
}

// noticeFor maps a rejection to the text shown to the player.
func noticeFor(err error) (string, bool) {
	for _, r := range rejectionNotices {
		if errors.Is(err, r.err) {
			return r.text, true
		}
	}
	return "", false
}
