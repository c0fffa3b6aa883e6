package engine

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/milk9111/portraitquest/prefabs"
)

type Verdict string

const (
	VerdictPerfect Verdict = "Perfect Shot"
	VerdictGood    Verdict = "Good Take"
	VerdictOkay    Verdict = "Okayish"
	VerdictFail    Verdict = "Fail"
)

// Portrait is the asset key of the ending picture.
type Portrait string

const (
	PortraitPerfect Portrait = "perfect"
	PortraitGood    Portrait = "good"
	PortraitOkay    Portrait = "okay"
	PortraitFail    Portrait = "fail"
)

// Facts are the values a rule expression can read.
type Facts struct {
	Goal          GoalID
	OwnedCount    int
	VisitedBonus  bool
	ScoreRequired int
	ScoreNice     int
	WantsCount    int
	AllRequired   bool
	Total         int
}

const resultVar = "__result"

// Rule is one entry of the ordered verdict list.
type Rule struct {
	Name     string
	When     string
	Verdict  Verdict
	Portrait Portrait
	Note     string

	compiled *tengo.Compiled
}

// Rules evaluates verdict rules in order; the first match wins.
type Rules struct {
	rules []*Rule
}

// CompileRules validates and compiles every rule expression up front so a bad
// table fails at load instead of at the finale.
func CompileRules(specs []prefabs.RuleSpec) (*Rules, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("engine: rules: empty rule list")
	}
	if strings.TrimSpace(specs[len(specs)-1].When) != "true" {
		return nil, fmt.Errorf("engine: rules: last rule %q must be unconditional", specs[len(specs)-1].Name)
	}

	out := &Rules{rules: make([]*Rule, 0, len(specs))}
	names := make(map[string]bool, len(specs))
	for _, spec := range specs {
		if spec.Name == "" || names[spec.Name] {
			return nil, fmt.Errorf("engine: rules: missing or duplicate rule name %q", spec.Name)
		}
		names[spec.Name] = true

		verdict := Verdict(spec.Verdict)
		switch verdict {
		case VerdictPerfect, VerdictGood, VerdictOkay, VerdictFail:
		default:
			return nil, fmt.Errorf("engine: rules: %s: unknown verdict %q", spec.Name, spec.Verdict)
		}
		portrait := Portrait(spec.Portrait)
		switch portrait {
		case PortraitPerfect, PortraitGood, PortraitOkay, PortraitFail:
		default:
			return nil, fmt.Errorf("engine: rules: %s: unknown portrait %q", spec.Name, spec.Portrait)
		}

		compiled, err := compileCondition(spec.When)
		if err != nil {
			return nil, fmt.Errorf("engine: rules: %s: %w", spec.Name, err)
		}
		out.rules = append(out.rules, &Rule{
			Name:     spec.Name,
			When:     spec.When,
			Verdict:  verdict,
			Portrait: portrait,
			Note:     spec.Note,
			compiled: compiled,
		})
	}
	return out, nil
}

func compileCondition(when string) (*tengo.Compiled, error) {
	when = strings.TrimSpace(when)
	if when == "" {
		return nil, fmt.Errorf("empty condition")
	}

	script := tengo.NewScript([]byte(resultVar + " = (" + when + ")"))
	for name, zero := range factVars(Facts{}) {
		if err := script.Add(name, zero); err != nil {
			return nil, err
		}
	}
	if err := script.Add(resultVar, false); err != nil {
		return nil, err
	}
	return script.Compile()
}

func factVars(f Facts) map[string]any {
	return map[string]any{
		"goal":           string(f.Goal),
		"owned_count":    f.OwnedCount,
		"visited_bonus":  f.VisitedBonus,
		"score_required": f.ScoreRequired,
		"score_nice":     f.ScoreNice,
		"wants_count":    f.WantsCount,
		"all_required":   f.AllRequired,
		"total":          f.Total,
	}
}

// Evaluate returns the first rule whose condition holds for f.
func (r *Rules) Evaluate(f Facts) (Rule, error) {
	if r == nil {
		return Rule{}, ErrNoRuleMatch
	}
	vars := factVars(f)
	for _, rule := range r.rules {
		for name, v := range vars {
			if err := rule.compiled.Set(name, v); err != nil {
				return Rule{}, fmt.Errorf("engine: rules: %s: set %s: %w", rule.Name, name, err)
			}
		}
		if err := rule.compiled.Run(); err != nil {
			return Rule{}, fmt.Errorf("engine: rules: %s: %w", rule.Name, err)
		}
		if rule.compiled.Get(resultVar).Bool() {
			return *rule, nil
		}
	}
	return Rule{}, ErrNoRuleMatch
}

// Names lists the rules in evaluation order.
func (r *Rules) Names() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.rules))
	for i, rule := range r.rules {
		out[i] = rule.Name
	}
	return out
}
