package engine

import (
	"fmt"
	"strings"

	"github.com/milk9111/portraitquest/common"
)

// Inventory is the ordered set of owned items keyed by id.
type Inventory struct {
	items []Item
}

// Has reports whether an item with id is owned.
func (inv *Inventory) Has(id string) bool {
	for _, it := range inv.items {
		if it.ID == id {
			return true
		}
	}
	return false
}

// Add appends item unless an item with the same id is already owned.
func (inv *Inventory) Add(item Item) error {
	if inv.Has(item.ID) {
		return fmt.Errorf("%w: %s", ErrDuplicateItem, item.ID)
	}
	inv.items = append(inv.items, item)
	return nil
}

// Items returns a copy of the owned items in purchase order.
func (inv *Inventory) Items() []Item {
	return append([]Item(nil), inv.items...)
}

// Len is the number of owned items.
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Names lists the display names of the owned items.
func (inv *Inventory) Names() []string {
	out := make([]string, len(inv.items))
	for i, it := range inv.items {
		out[i] = it.Name
	}
	return out
}

// Summary joins the item names, or returns empty when nothing is owned.
func (inv *Inventory) Summary(empty string) string {
	if len(inv.items) == 0 {
		return empty
	}
	return strings.Join(inv.Names(), ", ")
}

// Clear empties the inventory.
func (inv *Inventory) Clear() {
	inv.items = nil
}

// Money returns the current balance.
func (s *Session) Money() int {
	return s.money
}

// Items returns a copy of the owned items.
func (s *Session) Items() []Item {
	return s.inventory.Items()
}

// Owns reports whether an item id is in the inventory.
func (s *Session) Owns(id string) bool {
	return s.inventory.Has(id)
}

// InventorySummary lists owned item names, or "empty".
func (s *Session) InventorySummary() string {
	return s.inventory.Summary("empty")
}

// Purchase buys an item offered by the shop that is currently open.
func (s *Session) Purchase(itemID string) error {
	if s.overlay.Kind != OverlayShop || s.overlay.Shop == nil {
		return fmt.Errorf("%w: %s", ErrNotForSale, itemID)
	}
	for _, it := range s.overlay.Shop.Items {
		if it.ID == itemID {
			return s.buy(it)
		}
	}
	return fmt.Errorf("%w: %s", ErrNotForSale, itemID)
}

func (s *Session) buy(item Item) error {
	if s.money < item.Price {
		return fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientFunds, item.ID, item.Price, s.money)
	}
	if err := s.inventory.Add(item); err != nil {
		return err
	}
	s.money -= item.Price
	s.log.Info("purchase", "item", item.ID, "price", item.Price, "money", s.money)
	s.notify(item.Name + " bought.")
	return nil
}

// Reset clears the inventory and the bonus flag and returns the player to the
// start of the streets. Money goes back to the starting value unless
// keepMoney is set.
func (s *Session) Reset(keepMoney bool) {
	s.inventory.Clear()
	if !keepMoney {
		s.money = s.startMoney
	}
	s.visitedBonus = false
	spawn := s.world.Tuning.StartSpawnPX
	if err := s.Spawn(s.world.Tuning.StartScene, &spawn); err != nil {
		s.log.Error("reset spawn", "error", err)
	}
	s.log.Info("reset", "keep_money", keepMoney, "money", s.money)
}

// BudgetNotice is the line shown after a goal is picked.
func (s *Session) BudgetNotice() string {
	return "Budget: " + common.FormatMoney(s.money) + ". Choose wisely."
}
