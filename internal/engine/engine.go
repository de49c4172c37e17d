// Package engine implements the deterministic Girl Math purchase-scoring
// engine: input normalization, the four-factor transparent scoring model,
// tier-protected category bonuses, and verdict selection.
//
// Evaluate is a pure function of its input and the engine's immutable
// Ruleset. It performs no I/O, holds no state, and is total over its input
// domain: malformed values degrade to documented defaults, never errors.
package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Engine scores purchases against an immutable Ruleset.
type Engine struct {
	rules *Ruleset
}

// New returns an engine backed by the given ruleset, or the default ruleset
// when rules is nil.
func New(rules *Ruleset) *Engine {
	if rules == nil {
		rules = DefaultRuleset()
	}
	return &Engine{rules: rules}
}

// Rules exposes the engine's ruleset for display purposes (vibe labels,
// category defaults on the form).
func (e *Engine) Rules() *Ruleset { return e.rules }

// NormalizeUses parses a raw usage count. Values that fail to parse or round
// below 1 yield ok=false, meaning "no usable count". Valid counts are rounded
// and capped at MaxUses.
func NormalizeUses(raw string) (int, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || v <= 0 {
		return 0, false
	}
	if v >= MaxUses {
		return MaxUses, true
	}
	n := int(math.Round(v))
	if n < 1 {
		return 0, false
	}
	return n, true
}

func capUses(n int) int {
	if n > MaxUses {
		return MaxUses
	}
	return n
}

// parseMoney parses a non-negative dollar amount, defaulting to 0 on any
// failure or negative value.
func parseMoney(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// Evaluate computes the full Metrics for a purchase. It never fails: every
// malformed or missing field falls back to a default, and nil pointer fields
// mean "not computable from the given inputs".
func (e *Engine) Evaluate(in PurchaseInput) Metrics {
	r := e.rules

	m := Metrics{
		Price:         parseMoney(in.Price),
		Category:      ParseCategory(in.Category),
		Mode:          ParseMode(in.Mode),
		OriginalPrice: parseMoney(in.OriginalPrice),
	}

	// Effective uses. The MaxUses cap applies to both user-entered counts and
	// category defaults.
	userUses, userOK := NormalizeUses(in.Uses)
	m.UsesProvided = userOK
	m.UsesEstimated = !userOK

	normalizedOK := false
	var normalized int
	if userOK {
		normalized, normalizedOK = userUses, true
	} else if def := r.DefaultUses[m.Category]; def > 0 {
		normalized, normalizedOK = capUses(def), true
	}
	if normalizedOK {
		m.Uses = normalized
	} else {
		m.Uses = 1
	}

	// Cost per use is only defined for an explicitly supplied count. A
	// category default must never be presented as a measured cost-per-use.
	if m.UsesProvided && normalizedOK {
		cpu := m.Price / float64(normalized)
		m.CostPerUse = &cpu
	}

	// Cost per day, skincare only.
	if m.Category == CategorySkincare {
		cpd := m.Price / SkincareSupplyDays
		m.CostPerDay = &cpd
	}

	// Savings: an explicit discount percentage wins over a higher original
	// price; with neither, no savings.
	if dp := parseMoney(in.DiscountPercent); dp > 0 {
		m.DiscountPercent = dp
		m.Savings = m.Price * dp / 100
	} else if m.OriginalPrice > m.Price {
		m.Savings = m.OriginalPrice - m.Price
		m.DiscountPercent = m.Savings / m.OriginalPrice * 100
	}

	m.AdjustedPrice = m.Price

	// Budget baseline: needs both an income bracket and a non-skipped vibe
	// percentage, otherwise budget fields stay nil and the budget factor
	// scores its neutral default.
	m.Income = ParseIncome(in.Income)
	// The percentage truncates like the uses field on the form: "12.5" means 12.
	if !in.SkipVibe {
		if v, err := strconv.ParseFloat(strings.TrimSpace(in.BudgetPercent), 64); err == nil &&
			!math.IsNaN(v) && math.Abs(v) < 1e6 {
			bp := int(v)
			m.BudgetPercent = &bp
		}
	}
	if m.Income != "" && m.BudgetPercent != nil {
		midpoint := r.IncomeMidpoints[m.Income]
		budget := midpoint * float64(*m.BudgetPercent) / 100
		m.Budget = &budget

		pct := 0.0
		if budget > 0 {
			pct = m.Price / budget * 100
		}
		m.BudgetPercentOfVibe = &pct
	}

	// Four-factor transparent scoring. Each factor reads only the metrics,
	// never another factor's score.
	m.Breakdown = Breakdown{
		PriceThreshold: scorePriceThreshold(m.Price),
		CostPerUse:     scoreCostPerUse(m),
		BudgetImpact:   scoreBudgetImpact(r, m),
		DiscountSale:   scoreDiscountSale(m.DiscountPercent),
	}

	m.BaseScore = m.Breakdown.PriceThreshold.Points +
		m.Breakdown.CostPerUse.Points +
		m.Breakdown.BudgetImpact.Points +
		m.Breakdown.DiscountSale.Points

	m.Score = e.applyCategoryBonus(&m)

	m.VerdictInfo = r.tierFor(m.Score)
	m.Verdict = m.VerdictInfo.Verdict
	m.Stamp = m.VerdictInfo.Stamp
	m.Confidence = m.Score
	m.Justification = r.Justification(m.Category, m.Verdict)

	return m
}

// scorePriceThreshold awards up to 12 points tiered by absolute price.
func scorePriceThreshold(price float64) FactorScore {
	f := FactorScore{Max: 12}
	switch {
	case price < 25:
		f.Points = 12
		f.Rationale = "Under $25 is very reasonable."
	case price < 75:
		f.Points = 10
		f.Rationale = "Moderate price range."
	case price < 150:
		f.Points = 8
		f.Rationale = "Higher price, but still manageable."
	case price < 300:
		f.Points = 6
		f.Rationale = "Premium purchase, but we'll work with it."
	default:
		f.Points = 4
		f.Rationale = "Expensive, but not impossible to justify."
	}
	return f
}

// scoreCostPerUse awards up to 35 points, but only when the user explicitly
// supplied a usage count. A purchase with no usage data cannot earn
// cost-efficiency points.
func scoreCostPerUse(m Metrics) FactorScore {
	f := FactorScore{Max: 35}
	if !m.UsesProvided || m.CostPerUse == nil {
		f.Rationale = "Cost per use cannot be calculated without usage information."
		return f
	}

	switch cpu := *m.CostPerUse; {
	case cpu < 1:
		f.Points = 35
		f.Rationale = "Excellent cost-per-use - under $1 per use!"
	case cpu < 3:
		f.Points = 30
		f.Rationale = "Great cost-per-use ratio."
	case cpu < 5:
		f.Points = 25
		f.Rationale = "Good cost-per-use ratio."
	case cpu < 10:
		f.Points = 20
		f.Rationale = "Decent cost-per-use ratio."
	case cpu < 20:
		f.Points = 15
		f.Rationale = "Moderate cost-per-use."
	default:
		f.Points = 10
		f.Rationale = "Higher cost-per-use, but still some credit."
	}
	return f
}

// scoreBudgetImpact awards up to 25 points against the personal baseline.
// Higher incomes dampen the perceived impact via the income multiplier. With
// no baseline it scores a neutral 12 rather than penalizing missing data.
func scoreBudgetImpact(r *Ruleset, m Metrics) FactorScore {
	f := FactorScore{Max: 25}
	if m.Budget == nil || *m.Budget <= 0 || m.Income == "" {
		f.Points = NeutralBudgetPoints
		f.Rationale = "Budget impact not calculated (baseline not provided)."
		return f
	}

	mult := r.IncomeMultipliers[m.Income]
	if mult == 0 {
		mult = 1.0
	}
	ratio := (m.Price / *m.Budget) / mult

	switch {
	case ratio <= 0.05:
		f.Points = 25
		f.Rationale = "Tiny impact on your monthly budget - basically free!"
	case ratio <= 0.15:
		f.Points = 20
		f.Rationale = "Small impact on your monthly budget."
	case ratio <= 0.3:
		f.Points = 15
		f.Rationale = "Moderate impact on your budget."
	case ratio <= 0.6:
		f.Points = 10
		f.Rationale = "Significant chunk of your monthly budget."
	case ratio <= 1:
		f.Points = 5
		f.Rationale = "Almost your entire monthly budget!"
	default:
		f.Rationale = "Exceeds your monthly discretionary budget."
	}
	return f
}

// scoreDiscountSale awards up to 15 points tiered by discount percentage.
func scoreDiscountSale(discountPercent float64) FactorScore {
	f := FactorScore{Max: 15}
	switch {
	case discountPercent >= 50:
		f.Points = 15
		f.Rationale = "50%+ off - you're basically making money!"
	case discountPercent >= 30:
		f.Points = 12
		f.Rationale = "Great sale - 30-50% off."
	case discountPercent >= 10:
		f.Points = 8
		f.Rationale = "Good discount - 10-30% off."
	case discountPercent >= 1:
		f.Points = 4
		f.Rationale = "Small discount, but every bit helps."
	default:
		f.Rationale = "No discount, but that's okay."
	}
	return f
}

// applyCategoryBonus adds the category bonus under tier protection: the bonus
// may promote the verdict by at most one tier. A jump further than that is
// clamped to the top of the tier one above the base tier, so a $2,000
// skincare buy with terrible cost-per-use can't leap from denied straight to
// approved on the bonus alone. Fills in m.CategoryBonus and the bonus
// breakdown entry, and returns the final score.
func (e *Engine) applyCategoryBonus(m *Metrics) int {
	r := e.rules
	bonus := r.CategoryBonuses[m.Category]

	baseTier := r.tierIndex(m.BaseScore)
	final := m.BaseScore + bonus
	if final > 100 {
		final = 100
	}

	if r.tierIndex(final) > baseTier+1 {
		// Tiers are ordered approved-first; the cap is the Max of the tier
		// exactly one level above the base tier.
		capTier := r.Tiers[len(r.Tiers)-1-(baseTier+1)]
		final = capTier.Max
	}

	m.CategoryBonus = final - m.BaseScore
	m.Breakdown.CategoryBonus = BonusScore{Points: m.CategoryBonus}
	if m.CategoryBonus > 0 {
		name, ok := r.BonusNames[m.Category]
		if !ok {
			name = string(m.Category)
		}
		m.Breakdown.CategoryBonus.Rationale = fmt.Sprintf("%s category bonus.", name)
	} else {
		m.Breakdown.CategoryBonus.Rationale = "No category bonus."
	}

	return final
}
