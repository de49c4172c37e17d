// Package whatif generates "what if?" scenarios: small perturbations of a
// purchase (more uses, a synthetic sale, a lower price) re-scored through the
// engine so the user can see which lever moves the verdict.
package whatif

import (
	"fmt"
	"math"
	"strconv"

	"github.com/girlmathhq/girlmath/internal/engine"
)

// Scenario is one perturbed evaluation.
type Scenario struct {
	Description string               `json:"description"`
	Input       engine.PurchaseInput `json:"input"`
	Score       int                  `json:"score"`
	Verdict     engine.Verdict       `json:"verdict"`
	Stamp       string               `json:"stamp"`
}

const maxScenarios = 3

// Scenarios builds up to three perturbed evaluations of in. The engine is a
// pure function, so each scenario is an independent Evaluate call.
func Scenarios(eng *engine.Engine, in engine.PurchaseInput) []Scenario {
	var out []Scenario
	price, _ := strconv.ParseFloat(in.Price, 64)
	if math.IsNaN(price) || price < 0 {
		price = 0
	}

	// More uses: triple small counts, taper the multiplier as counts grow.
	if uses, ok := engine.NormalizeUses(in.Uses); ok {
		var newUses int
		switch {
		case uses < 10:
			newUses = uses * 3
		case uses < 50:
			newUses = int(math.Round(float64(uses) * 2.5))
		default:
			newUses = uses * 2
		}
		out = append(out, build(eng, in,
			fmt.Sprintf("What if you use it %d times?", newUses),
			func(p *engine.PurchaseInput) { p.Uses = strconv.Itoa(newUses) },
		))
	} else if in.Category != "" {
		suggested := eng.Rules().DefaultUses[engine.ParseCategory(in.Category)]
		if suggested <= 0 {
			suggested = 30
		}
		out = append(out, build(eng, in,
			fmt.Sprintf("What if you use it %d times?", suggested*2),
			func(p *engine.PurchaseInput) { p.Uses = strconv.Itoa(suggested * 2) },
		))
	}

	// A synthetic sale, unless the item already has a real one.
	origPrice, _ := strconv.ParseFloat(in.OriginalPrice, 64)
	if price > 30 && origPrice <= price {
		salePrice := math.Round(price * 1.5)
		out = append(out, build(eng, in,
			fmt.Sprintf("What if it was on sale from $%.0f?", salePrice),
			func(p *engine.PurchaseInput) { p.OriginalPrice = strconv.FormatFloat(salePrice, 'f', -1, 64) },
		))
	}

	// A cheaper price, only when we'd otherwise come up short.
	if len(out) < 2 && price > 50 {
		reduced := math.Round(price * 0.7)
		out = append(out, build(eng, in,
			fmt.Sprintf("What if it cost $%.0f instead?", reduced),
			func(p *engine.PurchaseInput) { p.Price = strconv.FormatFloat(reduced, 'f', -1, 64) },
		))
	}

	if len(out) > maxScenarios {
		out = out[:maxScenarios]
	}
	return out
}

func build(eng *engine.Engine, in engine.PurchaseInput, desc string, mutate func(*engine.PurchaseInput)) Scenario {
	mutate(&in)
	m := eng.Evaluate(in)
	return Scenario{
		Description: desc,
		Input:       in,
		Score:       m.Score,
		Verdict:     m.Verdict,
		Stamp:       m.Stamp,
	}
}
