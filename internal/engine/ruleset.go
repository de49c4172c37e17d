package engine

// Ruleset holds every lookup table the engine scores against. It is built once
// (DefaultRuleset) and passed by reference; the engine never mutates it, so a
// single Ruleset is safe to share across concurrent Evaluate calls.
type Ruleset struct {
	// DefaultUses is the assumed usage count per category when the user
	// supplies none. Skincare assumes near-daily use over six months.
	DefaultUses map[Category]int

	// IncomeMidpoints maps each bracket to a monthly-income midpoint in USD.
	IncomeMidpoints map[Income]float64

	// IncomeMultipliers dampen perceived budget impact as income rises.
	IncomeMultipliers map[Income]float64

	// CategoryBonuses are additive score bonuses, bounded by tier protection.
	CategoryBonuses map[Category]int

	// Tiers partition [0,100] into verdicts, ordered from approved down.
	Tiers []VerdictTier

	// Justifications is the verdict x category objective one-liner table.
	Justifications map[Verdict]map[Category]string

	// BonusNames are the display names used in the bonus rationale line.
	BonusNames map[Category]string

	// VibeLabels name the discretionary budget percentages on the form.
	VibeLabels map[int]string
}

// MaxUses caps the effective usage count regardless of source. 120 stands for
// "used essentially daily for four months" and keeps absurd usage claims from
// inflating the score without bound.
const MaxUses = 120

// BaseScoreMax is the sum of the four factor maxima (12+35+25+15).
const BaseScoreMax = 87

// NeutralBudgetPoints is awarded when no budget baseline is provided: the
// exact midpoint of the 0-25 range, neither penalizing nor rewarding missing
// data.
const NeutralBudgetPoints = 12

// SkincareSupplyDays is the assumed supply cycle behind cost-per-day.
const SkincareSupplyDays = 30

// DefaultRuleset returns the standard rule tables.
func DefaultRuleset() *Ruleset {
	return &Ruleset{
		DefaultUses: map[Category]int{
			CategorySkincare:     180,
			CategoryClothes:      30,
			CategoryTravel:       1,
			CategoryFood:         1,
			CategorySubscription: 30,
			CategoryGift:         1,
			CategoryJewellery:    60,
			CategoryOther:        1,
		},
		IncomeMidpoints: map[Income]float64{
			IncomeUnder30:  2000,
			Income30to60:   3750,
			Income60to100:  6500,
			Income100to200: 12500,
			IncomeOver200:  20000,
		},
		IncomeMultipliers: map[Income]float64{
			IncomeUnder30:  0.8,
			Income30to60:   1.0,
			Income60to100:  1.2,
			Income100to200: 1.5,
			IncomeOver200:  2.0,
		},
		CategoryBonuses: map[Category]int{
			CategorySkincare:     15,
			CategoryClothes:      12,
			CategoryTravel:       10,
			CategorySubscription: 8,
			CategoryJewellery:    8,
			CategoryFood:         0,
			CategoryGift:         0,
			CategoryOther:        0,
		},
		Tiers: []VerdictTier{
			{Verdict: VerdictApproved, Min: 70, Max: 100, Stamp: "APPROVED ✨", Message: "Basically free! This is certified Girl Math."},
			{Verdict: VerdictJustified, Min: 50, Max: 69, Stamp: "JUSTIFIED 👍", Message: "The math is mathing. We'll allow it."},
			{Verdict: VerdictQuestionable, Min: 30, Max: 49, Stamp: "QUESTIONABLE 🤔", Message: "Questionable, but we see the vision."},
			{Verdict: VerdictDenied, Min: 0, Max: 29, Stamp: "DENIED 🚫", Message: "Let's sleep on it."},
		},
		Justifications: map[Verdict]map[Category]string{
			VerdictApproved: {
				CategorySkincare:     "An investment in your future self.",
				CategoryClothes:      "Quality pieces pay for themselves over time.",
				CategoryFood:         "Daily habits add up, but so does the joy.",
				CategoryTravel:       "Memories last longer than things.",
				CategorySubscription: "Recurring value justifies recurring costs.",
				CategoryGift:         "A calculated decision that brings joy.",
				CategoryJewellery:    "Rewear all year (weekly average).",
				CategoryOther:        "A smart, calculated decision.",
			},
			VerdictJustified: {
				CategorySkincare:     "Self-care is important, and you got a good deal.",
				CategoryClothes:      "A reasonable purchase for your wardrobe.",
				CategoryFood:         "You deserve good food, and the price works.",
				CategoryTravel:       "Experiences are worth investing in.",
				CategorySubscription: "The value seems worth the cost.",
				CategoryGift:         "A thoughtful choice for someone special.",
				CategoryJewellery:    "Rewear all year (weekly average).",
				CategoryOther:        "The math checks out on this one.",
			},
			VerdictQuestionable: {
				CategorySkincare:     "On the pricier side, but self-care matters.",
				CategoryClothes:      "It's a stretch, but you might make it work.",
				CategoryFood:         "A bit expensive, but sometimes you need the treat.",
				CategoryTravel:       "It's pricey, but experiences can be priceless.",
				CategorySubscription: "Costly, but might pay off if you use it.",
				CategoryGift:         "A generous choice - maybe a bit too generous?",
				CategoryJewellery:    "High cost for sparkle, but maybe for a special occasion?",
				CategoryOther:        "The math is... questionable, but not impossible.",
			},
			VerdictDenied: {
				CategorySkincare:     "This price doesn't add up for what you're getting.",
				CategoryClothes:      "Hard to justify at this cost-per-wear ratio.",
				CategoryFood:         "Too expensive for what it is - consider alternatives.",
				CategoryTravel:       "The numbers don't support this purchase right now.",
				CategorySubscription: "The monthly cost outweighs the value you'll get.",
				CategoryGift:         "As much as you want to give, this one's too much.",
				CategoryJewellery:    "The cost-per-sparkle doesn't math out today.",
				CategoryOther:        "The math doesn't work out on this purchase.",
			},
		},
		BonusNames: map[Category]string{
			CategorySkincare:     "Skincare/Wellness",
			CategoryClothes:      "Clothing",
			CategoryTravel:       "Experiences/Travel",
			CategorySubscription: "Electronics / Productivity",
			CategoryJewellery:    "Jewellery",
		},
		VibeLabels: map[int]string{
			5:  "Very disciplined",
			10: "Balanced",
			15: "Soft life",
			20: "Main character",
			25: "Lavish",
		},
	}
}

// VibeLabel names a discretionary budget percentage, defaulting to "Balanced"
// for values off the 5-point steps.
func (r *Ruleset) VibeLabel(percent int) string {
	if label, ok := r.VibeLabels[percent]; ok {
		return label
	}
	return "Balanced"
}

// Justification returns the objective one-liner for a category and verdict,
// falling back to the category "other" row, then to a generic line.
func (r *Ruleset) Justification(category Category, verdict Verdict) string {
	rows, ok := r.Justifications[verdict]
	if !ok {
		rows = r.Justifications[VerdictApproved]
	}
	if line, ok := rows[category]; ok {
		return line
	}
	if line, ok := rows[CategoryOther]; ok {
		return line
	}
	return "A calculated decision."
}

// tierFor returns the tier whose band contains score.
func (r *Ruleset) tierFor(score int) VerdictTier {
	for _, t := range r.Tiers {
		if score >= t.Min {
			return t
		}
	}
	return r.Tiers[len(r.Tiers)-1]
}

// tierIndex maps a score to a tier level: 0 denied, 1 questionable,
// 2 justified, 3 approved.
func (r *Ruleset) tierIndex(score int) int {
	for i, t := range r.Tiers {
		if score >= t.Min {
			return len(r.Tiers) - 1 - i
		}
	}
	return 0
}
