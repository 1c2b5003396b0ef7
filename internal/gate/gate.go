// Package gate turns an evaluation verdict into a deployment-level outcome:
// eligible, ineligible, or flagged for manual review. Deployments can
// override the default mapping with a boolean condition over the verdict
// facts (e.g. `satisfied || graduate`), evaluated with expr.
package gate

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
)

type Outcome string

const (
	OutcomeEligible     Outcome = "eligible"
	OutcomeManualReview Outcome = "manual_review"
	OutcomeIneligible   Outcome = "ineligible"
)

// Facts is the flat variable set a condition may reference.
type Facts struct {
	Satisfied        bool
	Unverifiable     bool
	Year             int
	Graduate         bool
	CreditsRemaining int
	EnglishLevel     int
}

func (f Facts) vars() map[string]any {
	return map[string]any{
		"satisfied":         f.Satisfied,
		"unverifiable":      f.Unverifiable,
		"year":              f.Year,
		"graduate":          f.Graduate,
		"credits_remaining": f.CreditsRemaining,
		"english_level":     f.EnglishLevel,
	}
}

type Gate struct {
	cond string
}

// New validates the condition once at construction. An empty condition keeps
// the default mapping: unverifiable -> manual review, otherwise eligible iff
// satisfied.
func New(cond string) (*Gate, error) {
	cond = strings.TrimSpace(cond)
	if err := Validate(cond); err != nil {
		return nil, fmt.Errorf("invalid gate condition: %w", err)
	}
	return &Gate{cond: cond}, nil
}

func (g *Gate) Decide(facts Facts) (Outcome, error) {
	if g == nil || g.cond == "" {
		if facts.Unverifiable {
			return OutcomeManualReview, nil
		}
		if facts.Satisfied {
			return OutcomeEligible, nil
		}
		return OutcomeIneligible, nil
	}

	out, err := expr.Eval(g.cond, facts.vars())
	if err != nil {
		return "", fmt.Errorf("gate condition failed: %w", err)
	}

	b, ok := out.(bool)
	if !ok {
		return "", fmt.Errorf("gate condition must evaluate to bool (got %T)", out)
	}

	if b {
		return OutcomeEligible, nil
	}
	if facts.Unverifiable {
		return OutcomeManualReview, nil
	}
	return OutcomeIneligible, nil
}
