package engine

import "strings"

// Result is the outcome shown on the ending screen.
type Result struct {
	Goal          Goal
	Verdict       Verdict
	Portrait      Portrait
	Note          string
	Rule          string
	Items         []Item
	ScoreRequired int
	ScoreNice     int
	Total         int
	AllRequired   bool
}

// Brought lists the item names the player arrived with, or "nothing".
func (r Result) Brought() string {
	if len(r.Items) == 0 {
		return "nothing"
	}
	names := make([]string, len(r.Items))
	for i, it := range r.Items {
		names[i] = it.Name
	}
	return strings.Join(names, ", ")
}

// FactsFor derives the rule inputs for a goal and a set of owned items.
func FactsFor(goal Goal, items []Item, visitedBonus bool) Facts {
	owned := make(map[string]bool, len(items))
	for _, it := range items {
		owned[it.ID] = true
	}
	f := Facts{
		Goal:         goal.ID,
		OwnedCount:   len(items),
		VisitedBonus: visitedBonus,
		WantsCount:   len(goal.Wants),
	}
	for _, id := range goal.Wants {
		if owned[id] {
			f.ScoreRequired++
		}
	}
	for _, id := range goal.Nice {
		if owned[id] {
			f.ScoreNice++
		}
	}
	f.AllRequired = f.ScoreRequired == f.WantsCount
	f.Total = f.ScoreRequired*2 + f.ScoreNice
	return f
}

// Score evaluates the verdict rules for a goal and inventory.
func Score(rules *Rules, goal Goal, items []Item, visitedBonus bool) (Result, error) {
	f := FactsFor(goal, items, visitedBonus)
	rule, err := rules.Evaluate(f)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Goal:          goal,
		Verdict:       rule.Verdict,
		Portrait:      rule.Portrait,
		Note:          rule.Note,
		Rule:          rule.Name,
		Items:         append([]Item(nil), items...),
		ScoreRequired: f.ScoreRequired,
		ScoreNice:     f.ScoreNice,
		Total:         f.Total,
		AllRequired:   f.AllRequired,
	}, nil
}

func (s *Session) goStudio() error {
	if s.goal == nil {
		return ErrGoalNotChosen
	}
	res, err := Score(s.world.Rules, *s.goal, s.inventory.Items(), s.visitedBonus)
	if err != nil {
		return err
	}
	s.phase = PhaseEnded
	s.setOverlay(Overlay{Kind: OverlayEnding, Result: &res})
	s.log.Info("ending",
		"goal", res.Goal.ID,
		"verdict", res.Verdict,
		"rule", res.Rule,
		"total", res.Total,
		"brought", res.Brought(),
	)
	return nil
}
