package punchline

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/girlmathhq/girlmath/internal/engine"
)

func evalInput(t *testing.T, in engine.PurchaseInput) engine.Metrics {
	t.Helper()
	return engine.New(nil).Evaluate(in)
}

func TestGenerate_AllModeCategoryPairs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, mode := range engine.Modes {
		for _, cat := range engine.Categories {
			m := evalInput(t, engine.PurchaseInput{
				Price: "80", Category: string(cat), Mode: string(mode),
			})
			line := Generate(m, rng)
			if line == "" {
				t.Errorf("%s/%s: empty punchline", mode, cat)
			}
		}
	}
}

func TestGenerate_NoCostPerUsePanic(t *testing.T) {
	// MBA clothes lines interpolate cost-per-wear; with no usage data they
	// must be skipped, never crash, and something else must be returned.
	rng := rand.New(rand.NewSource(7))
	m := evalInput(t, engine.PurchaseInput{Price: "200", Category: "clothes", Mode: "mba"})
	if m.CostPerUse != nil {
		t.Fatal("precondition: CostPerUse should be nil")
	}

	line := Generate(m, rng)
	if line == "" {
		t.Fatal("empty punchline")
	}
	if strings.Contains(line, "/wear") {
		t.Errorf("cost-per-wear line %q emitted without usage data", line)
	}
}

func TestGenerate_DeterministicWithFixedSeed(t *testing.T) {
	m := evalInput(t, engine.PurchaseInput{Price: "45", Category: "food", Mode: "bestie"})

	a := Generate(m, rand.New(rand.NewSource(42)))
	b := Generate(m, rand.New(rand.NewSource(42)))
	if a != b {
		t.Errorf("same seed produced %q and %q", a, b)
	}
}

func TestAlternates(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	m := evalInput(t, engine.PurchaseInput{
		Price: "30", Category: "clothes", Mode: "softlife",
		Uses: "30", OriginalPrice: "60",
	})

	lines := Alternates(m, rng, 3)
	if len(lines) == 0 {
		t.Fatal("no alternates")
	}
	if len(lines) > 3 {
		t.Fatalf("got %d alternates, want <= 3", len(lines))
	}
	seen := map[string]bool{}
	for _, l := range lines {
		if seen[l] {
			t.Errorf("duplicate alternate %q", l)
		}
		seen[l] = true
	}
}

func TestInsight_RangesRespected(t *testing.T) {
	m := evalInput(t, engine.PurchaseInput{Price: "100", Category: "skincare", Mode: "softlife"})

	for seed := int64(0); seed < 50; seed++ {
		line := Insight(m, rand.New(rand.NewSource(seed)))
		if line == "" {
			t.Fatal("empty insight")
		}
		if !strings.Contains(line, "%") {
			t.Errorf("insight %q has no percentage", line)
		}
	}
}
