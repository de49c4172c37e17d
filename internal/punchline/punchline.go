// Package punchline generates short, screenshot-friendly justification
// punchlines (<=120 chars) from evaluated purchase metrics. Tone comes from
// the metrics' mode; the verdict itself is untouched.
package punchline

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/girlmathhq/girlmath/internal/engine"
)

// rule produces a punchline for the given metrics, or ok=false when the
// line's precondition (a sale, a known cost-per-use) doesn't hold.
type rule func(m engine.Metrics) (string, bool)

func always(s string) rule {
	return func(engine.Metrics) (string, bool) { return s, true }
}

func rules(mode engine.Mode, category engine.Category) []rule {
	byCat, ok := ruleTable[mode]
	if !ok {
		byCat = ruleTable[engine.ModeSoftlife]
	}
	if rs, ok := byCat[category]; ok {
		return rs
	}
	if rs, ok := byCat[engine.CategoryOther]; ok {
		return rs
	}
	return ruleTable[engine.ModeSoftlife][engine.CategoryOther]
}

// Generate picks one applicable punchline for the metrics using rng for
// variety. A fixed-seed rng makes the choice deterministic.
func Generate(m engine.Metrics, rng *rand.Rand) string {
	candidates := applicable(m)
	if len(candidates) == 0 {
		return "The math is mathing ✨"
	}
	return candidates[rng.Intn(len(candidates))]
}

// Alternates returns up to n distinct applicable punchlines in shuffled order.
func Alternates(m engine.Metrics, rng *rand.Rand, n int) []string {
	candidates := applicable(m)
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if n > 0 && len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates
}

func applicable(m engine.Metrics) []string {
	var out []string
	for _, r := range rules(m.Mode, m.Category) {
		if line, ok := r(m); ok {
			out = append(out, line)
		}
	}
	return out
}

func cpu(m engine.Metrics) (float64, bool) {
	if m.CostPerUse == nil {
		return 0, false
	}
	return *m.CostPerUse, true
}

var ruleTable = map[engine.Mode]map[engine.Category][]rule{
	engine.ModeSoftlife: {
		engine.CategoryClothes: {
			func(m engine.Metrics) (string, bool) {
				if v, ok := cpu(m); ok && v < 3 {
					return fmt.Sprintf("$%.2f per wear? That's self-care, not spending.", v), true
				}
				return "", false
			},
			func(m engine.Metrics) (string, bool) {
				if m.Savings > 0 {
					return fmt.Sprintf("You saved $%.0f. That's money you earned, not spent.", m.Savings), true
				}
				return "", false
			},
			always("Quality pieces are investments in yourself. You deserve joy."),
		},
		engine.CategorySkincare: {
			func(m engine.Metrics) (string, bool) {
				if m.CostPerDay != nil {
					return fmt.Sprintf("$%.2f/day for glowing skin? That's self-care, not spending.", *m.CostPerDay), true
				}
				return "", false
			},
			func(m engine.Metrics) (string, bool) {
				if m.Savings > 0 {
					return "Self-care isn't luxury, it's necessity. And you got it on sale! ✨", true
				}
				return "You can't put a price on good skin.", true
			},
		},
		engine.CategoryTravel: {
			always("Memories are priceless. This trip is an investment in your happiness."),
			func(m engine.Metrics) (string, bool) {
				if m.Price > 500 {
					return "Experiences > things. You're building your story.", true
				}
				return "A change of scenery is essential for mental health.", true
			},
		},
		engine.CategoryFood: {
			always("Nourishing your body is always worth it. You deserve good food. 💅"),
			always("Food is fuel and joy. This purchase supports both."),
		},
		engine.CategorySubscription: {
			always("Investing in yourself and growth is never a waste."),
			always("This subscription pays for itself in productivity gains."),
		},
		engine.CategoryGift: {
			always("Giving joy to others brings joy to you. That's pure ROI."),
			always("Thoughtful gifts strengthen relationships — priceless."),
		},
		engine.CategoryJewellery: {
			always("Diamonds (and gold) are forever. This isn't a purchase, it's an heirloom."),
			func(m engine.Metrics) (string, bool) {
				if v, ok := cpu(m); ok && v < 1 {
					return fmt.Sprintf("Wear it daily and it's basically $%.2f/day sparkle.", v), true
				}
				return "Quality jewellery never goes out of style.", true
			},
		},
		engine.CategoryOther: {
			always("You work hard. You deserve to treat yourself."),
			always("Life's too short to not buy things that make you happy."),
		},
	},
	engine.ModeBestie: {
		engine.CategoryClothes: {
			func(m engine.Metrics) (string, bool) {
				if v, ok := cpu(m); ok && v < 3 {
					return fmt.Sprintf("$%.2f/wear? I've wasted more on iced coffee and regret.", v), true
				}
				return "You paid HOW much? Your wallet's crying. 😂", true
			},
			func(m engine.Metrics) (string, bool) {
				if m.Price > 100 {
					return "You said you were 'saving money' last week. So... what happened?", true
				}
				return "At least it's under $100 this time.", true
			},
		},
		engine.CategorySkincare: {
			func(m engine.Metrics) (string, bool) {
				if m.CostPerDay != nil {
					return fmt.Sprintf("$%.2f/day? I've wasted more on iced coffee and regret.", *m.CostPerDay), true
				}
				return "", false
			},
			func(m engine.Metrics) (string, bool) {
				if m.Price > 50 {
					return "Another serum? Your bathroom shelf called — it's tired.", true
				}
				return "At least your skin will thank you (unlike your bank account).", true
			},
		},
		engine.CategoryTravel: {
			always("Another vacation? Your credit card is crying but your Instagram is thriving."),
			func(m engine.Metrics) (string, bool) {
				if m.Price > 1000 {
					return "You could've bought a car. But photos > logic, I guess? ✈️", true
				}
				return "At least this one's relatively reasonable (for you).", true
			},
		},
		engine.CategoryFood: {
			always("You ordered delivery again? Remember when you said you'd 'cook more'? Yeah, me neither."),
			func(m engine.Metrics) (string, bool) {
				if m.Price > 30 {
					return "$30 for lunch? You're living your best life and your wallet's worst nightmare.", true
				}
				return "Fine, food is a need. Approved with side-eye.", true
			},
		},
		engine.CategorySubscription: {
			always("Another subscription? You have like 12. How many streaming services does one person need?"),
			always("You'll use this for a week and forget it exists. But hey, at least you tried."),
		},
		engine.CategoryGift: {
			always("Buying gifts for others when you 'can't afford' groceries? Classic you. But sweet, so approved."),
			always("You're too generous for your own good. But that's why I love you. 💕"),
		},
		engine.CategoryJewellery: {
			always("Another shiny thing? You're like a magpie with a credit card. 🕊️"),
			func(m engine.Metrics) (string, bool) {
				if m.Price > 200 {
					return "This better be real gold for that price. Is it? Thought so.", true
				}
				return "At least it's not another fast fashion ring that turns your finger green.", true
			},
		},
		engine.CategoryOther: {
			always("Girl... what even is this? But I support your chaos."),
			func(m engine.Metrics) (string, bool) {
				if m.Price > 50 {
					return "You said 'one more purchase and I'm done' three purchases ago. But go off.", true
				}
				return "At least it's not another fast fashion haul.", true
			},
		},
	},
	engine.ModeMBA: {
		engine.CategoryClothes: {
			func(m engine.Metrics) (string, bool) {
				if v, ok := cpu(m); ok {
					return fmt.Sprintf("$%.2f/wear. Annualized glow ROI exceeds emotional depreciation.", v), true
				}
				return "", false
			},
			func(m engine.Metrics) (string, bool) {
				if v, ok := cpu(m); ok {
					return fmt.Sprintf("Cost-per-wear: $%.2f. ROI positive if worn >%.0fx. Calculated risk: LOW.", v, math.Ceil(m.Price/5)), true
				}
				return "", false
			},
			always("CAPEX on professional presentation. Wardrobe depreciation schedule: favorable."),
		},
		engine.CategorySkincare: {
			func(m engine.Metrics) (string, bool) {
				if m.CostPerDay != nil {
					return fmt.Sprintf("$%.2f/day. Annualized glow ROI exceeds emotional depreciation.", *m.CostPerDay), true
				}
				return "", false
			},
			func(m engine.Metrics) (string, bool) {
				if m.CostPerDay != nil {
					return fmt.Sprintf("Annualized cost: $%.0f/yr. NPV positive vs. dermatologist visits.", *m.CostPerDay*365), true
				}
				return "Compound value: skin health investment = future procedure savings. Strong IRR.", true
			},
		},
		engine.CategoryTravel: {
			func(m engine.Metrics) (string, bool) {
				return fmt.Sprintf("Content ROI: $%.0f / 50 photos = $%.2f per engagement asset.", m.Price, m.Price/50), true
			},
			func(m engine.Metrics) (string, bool) {
				return fmt.Sprintf("Experience arbitrage: $%.0f premium justified by network expansion + mental health ROI.", m.Price), true
			},
		},
		engine.CategoryFood: {
			func(m engine.Metrics) (string, bool) {
				return fmt.Sprintf("Nutritional ROI: $%.0f / caloric efficiency = cost-per-calorie optimization achieved.", m.Price), true
			},
			func(m engine.Metrics) (string, bool) {
				return fmt.Sprintf("Opportunity cost: Restaurant $%.0f vs. home-cooked $%.0f. Convenience premium justified.", m.Price, m.Price*0.3), true
			},
		},
		engine.CategorySubscription: {
			func(m engine.Metrics) (string, bool) {
				return fmt.Sprintf("MRR: $%.2f/mo < productivity gain value. Positive cash flow.", m.Price/12), true
			},
			func(m engine.Metrics) (string, bool) {
				return fmt.Sprintf("SaaS LTV: $%.0f if retained 3yr. Churn risk: LOW if ROI visible.", m.Price*3), true
			},
		},
		engine.CategoryGift: {
			func(m engine.Metrics) (string, bool) {
				return fmt.Sprintf("Relationship capital ROI: $%.0f = immeasurable but positive NPV.", m.Price), true
			},
			func(m engine.Metrics) (string, bool) {
				return fmt.Sprintf("Gift economy analysis: $%.0f / recipient happiness quotient = strong emotional dividend.", m.Price), true
			},
		},
		engine.CategoryJewellery: {
			func(m engine.Metrics) (string, bool) {
				return fmt.Sprintf("Hard asset allocation: $%.0f in precious metals/stones. Store of value achieved.", m.Price), true
			},
			always("Amortization schedule: Infinite utility life. Cost-per-use approaches zero over holding period."),
		},
		engine.CategoryOther: {
			func(m engine.Metrics) (string, bool) {
				return fmt.Sprintf("Tangible asset: $%.0f = %.1fx multiple on baseline utility.", m.Price, m.Price/100), true
			},
			func(m engine.Metrics) (string, bool) {
				return fmt.Sprintf("CAPEX: $%.0f one-time vs. recurring. Amortized value acceptable if usage > 20x.", m.Price), true
			},
		},
	},
}
