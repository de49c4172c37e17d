package whatif

import (
	"strings"
	"testing"

	"github.com/girlmathhq/girlmath/internal/engine"
)

func TestScenarios_WithUses(t *testing.T) {
	eng := engine.New(nil)
	in := engine.PurchaseInput{Price: "100", Category: "clothes", Uses: "20"}

	scenarios := Scenarios(eng, in)
	if len(scenarios) == 0 {
		t.Fatal("no scenarios")
	}
	if len(scenarios) > 3 {
		t.Fatalf("got %d scenarios, want <= 3", len(scenarios))
	}

	// 20 uses falls in the 2.5x band.
	if scenarios[0].Input.Uses != "50" {
		t.Errorf("first scenario uses = %q, want 50", scenarios[0].Input.Uses)
	}
	if !strings.Contains(scenarios[0].Description, "50 times") {
		t.Errorf("description %q missing new use count", scenarios[0].Description)
	}

	// More uses can only improve or hold the score.
	base := eng.Evaluate(in)
	if scenarios[0].Score < base.Score {
		t.Errorf("more uses lowered score: %d -> %d", base.Score, scenarios[0].Score)
	}
}

func TestScenarios_UseMultiplierBands(t *testing.T) {
	eng := engine.New(nil)
	tests := []struct {
		uses string
		want string
	}{
		{"4", "12"},   // 3x under 10
		{"20", "50"},  // 2.5x under 50
		{"60", "120"}, // 2x otherwise
	}
	for _, tt := range tests {
		s := Scenarios(eng, engine.PurchaseInput{Price: "40", Category: "other", Uses: tt.uses})
		if len(s) == 0 {
			t.Fatalf("uses %s: no scenarios", tt.uses)
		}
		if s[0].Input.Uses != tt.want {
			t.Errorf("uses %s -> %s, want %s", tt.uses, s[0].Input.Uses, tt.want)
		}
	}
}

func TestScenarios_SuggestsUsesFromCategoryDefault(t *testing.T) {
	eng := engine.New(nil)
	s := Scenarios(eng, engine.PurchaseInput{Price: "100", Category: "jewellery"})
	if len(s) == 0 {
		t.Fatal("no scenarios")
	}
	// Jewellery default is 60; the suggestion doubles it.
	if s[0].Input.Uses != "120" {
		t.Errorf("suggested uses = %q, want 120", s[0].Input.Uses)
	}
}

func TestScenarios_SyntheticSaleSkippedWhenAlreadyOnSale(t *testing.T) {
	eng := engine.New(nil)
	s := Scenarios(eng, engine.PurchaseInput{
		Price: "100", Category: "clothes", Uses: "10", OriginalPrice: "150",
	})
	for _, sc := range s {
		if strings.Contains(sc.Description, "on sale from") {
			t.Errorf("synthetic sale generated despite real sale: %q", sc.Description)
		}
	}
}

func TestScenarios_PriceReductionFillsIn(t *testing.T) {
	eng := engine.New(nil)
	// No uses, no category, price > 50 but <= ... price 100 with no category:
	// no uses scenario, sale scenario applies (price > 30), and the reduction
	// fills the second slot.
	s := Scenarios(eng, engine.PurchaseInput{Price: "100"})
	if len(s) < 2 {
		t.Fatalf("got %d scenarios, want >= 2", len(s))
	}

	var foundReduced bool
	for _, sc := range s {
		if sc.Input.Price == "70" {
			foundReduced = true
		}
	}
	if !foundReduced {
		t.Error("no reduced-price scenario for $100 purchase")
	}
}

func TestScenarios_CheapItemNoScenarios(t *testing.T) {
	eng := engine.New(nil)
	// $10, no uses, no category: nothing to perturb.
	s := Scenarios(eng, engine.PurchaseInput{Price: "10"})
	if len(s) != 0 {
		t.Errorf("got %d scenarios for bare $10 input, want 0", len(s))
	}
}
