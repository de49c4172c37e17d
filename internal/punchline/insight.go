package punchline

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/girlmathhq/girlmath/internal/engine"
)

// insightTemplate is a percentile-comparison line with a plausible-feeling
// random percentage range. "Higher than" comparisons skew high so the user
// feels good; "Only X%" rarity lines skew low.
type insightTemplate struct {
	format   func(m engine.Metrics, n int) string
	low, high int
}

var insightTemplates = []insightTemplate{
	{
		format: func(m engine.Metrics, n int) string {
			return fmt.Sprintf("Your Girl Math score is higher than %d%% of other %s purchases.", n, categoryDisplay(m.Category))
		},
		low: 60, high: 95,
	},
	{
		format: func(m engine.Metrics, n int) string {
			return fmt.Sprintf("You're more financially responsible than %d%% of users in '%s' mode.", n, modeDisplay(m.Mode))
		},
		low: 55, high: 85,
	},
	{
		format: func(m engine.Metrics, n int) string {
			return fmt.Sprintf("Only %d%% of purchases over $%.0f get a '%s' verdict or higher.", n, math.Round(m.Price), m.Stamp)
		},
		low: 5, high: 30,
	},
	{
		format: func(m engine.Metrics, n int) string {
			return fmt.Sprintf("This purchase scored higher than %d%% of all Girl Math calculations today.", n)
		},
		low: 60, high: 95,
	},
	{
		format: func(m engine.Metrics, n int) string {
			return fmt.Sprintf("Only %d%% of users justify purchases this well in the %s category.", n, categoryDisplay(m.Category))
		},
		low: 5, high: 30,
	},
	{
		format: func(m engine.Metrics, n int) string {
			return fmt.Sprintf("Your cost-per-use calculation beats %d%% of similar purchases.", n)
		},
		low: 60, high: 95,
	},
	{
		format: func(m engine.Metrics, n int) string {
			return fmt.Sprintf("This verdict is rarer than %d%% of all Girl Math results.", n)
		},
		low: 40, high: 80,
	},
	{
		format: func(m engine.Metrics, n int) string {
			return fmt.Sprintf("%d%% of people would pay more for this item — you got a deal!", n)
		},
		low: 70, high: 99,
	},
}

// Insight returns one community-comparison line for the metrics.
func Insight(m engine.Metrics, rng *rand.Rand) string {
	t := insightTemplates[rng.Intn(len(insightTemplates))]
	n := t.low + rng.Intn(t.high-t.low+1)
	return t.format(m, n)
}

func categoryDisplay(c engine.Category) string {
	switch c {
	case engine.CategoryClothes:
		return "Clothing"
	case engine.CategoryJewellery:
		return "Jewellery"
	default:
		return string(c)
	}
}

func modeDisplay(m engine.Mode) string {
	switch m {
	case engine.ModeSoftlife:
		return "Soft Life"
	case engine.ModeBestie:
		return "Bestie Roast"
	case engine.ModeMBA:
		return "Delulu MBA"
	default:
		return string(m)
	}
}
