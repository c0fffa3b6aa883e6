package engine

import (
	"fmt"
	"log/slog"
)

// maxCatalogForReport bounds the subset search below.
const maxCatalogForReport = 20

// Feasibility says whether a goal's Perfect ending can be bought.
type Feasibility struct {
	Goal            Goal
	PurchasePerfect bool
	Cheapest        []Item
	EasterEgg       bool
}

// CheckFeasibility tries every affordable combination of items on sale
// against the verdict rules, without the bonus visit, and separately checks
// whether arriving empty-handed after the bonus visit is Perfect.
func CheckFeasibility(w *World, budget int) ([]Feasibility, error) {
	catalog := w.Catalog()
	if len(catalog) > maxCatalogForReport {
		return nil, fmt.Errorf("engine: feasibility: %d items is too many to enumerate", len(catalog))
	}

	out := make([]Feasibility, 0, len(w.Goals))
	for _, goal := range w.Goals {
		f := Feasibility{Goal: goal}

		egg, err := Score(w.Rules, goal, nil, true)
		if err != nil {
			return nil, err
		}
		f.EasterEgg = egg.Verdict == VerdictPerfect

		bestCost := -1
		for mask := 0; mask < 1<<len(catalog); mask++ {
			var picked []Item
			cost := 0
			for i, it := range catalog {
				if mask&(1<<i) != 0 {
					picked = append(picked, it)
					cost += it.Price
				}
			}
			if cost > budget {
				continue
			}
			if bestCost >= 0 && cost >= bestCost {
				continue
			}
			res, err := Score(w.Rules, goal, picked, false)
			if err != nil {
				return nil, err
			}
			if res.Verdict != VerdictPerfect {
				continue
			}
			f.PurchasePerfect = true
			f.Cheapest = picked
			bestCost = cost
		}
		out = append(out, f)
	}
	return out, nil
}

// LogFeasibility writes the report as one structured line per goal.
func LogFeasibility(log *slog.Logger, budget int, report []Feasibility) {
	log.Info("perfect feasibility", "budget", budget)
	for _, f := range report {
		names := make([]string, len(f.Cheapest))
		for i, it := range f.Cheapest {
			names[i] = it.ID
		}
		log.Info("perfect feasibility",
			"goal", f.Goal.Label,
			"purchase_perfect", f.PurchasePerfect,
			"cheapest", names,
			"easter_egg", f.EasterEgg,
		)
	}
}

// FormatFeasibility renders the report for a terminal.
func FormatFeasibility(budget int, report []Feasibility) []string {
	lines := []string{fmt.Sprintf("Perfect feasibility (budget %d)", budget)}
	for _, f := range report {
		lines = append(lines, fmt.Sprintf("%s: purchase-based Perfect = %t | Easter Egg = %t",
			f.Goal.Label, f.PurchasePerfect, f.EasterEgg))
	}
	return lines
}
