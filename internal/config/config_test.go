package config

import (
	"testing"

	"github.com/girlmathhq/girlmath/internal/engine"
)

func TestRulesetAppliesOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bonuses.Overrides = map[string]int{
		"skincare":  5,
		"notacat":   99, // ignored
		"jewellery": -3, // clamped to 0
	}

	rules := Ruleset(cfg)
	if rules.CategoryBonuses[engine.CategorySkincare] != 5 {
		t.Errorf("skincare bonus = %d, want 5", rules.CategoryBonuses[engine.CategorySkincare])
	}
	if rules.CategoryBonuses[engine.CategoryJewellery] != 0 {
		t.Errorf("jewellery bonus = %d, want 0 (clamped)", rules.CategoryBonuses[engine.CategoryJewellery])
	}
	// "notacat" folds to other, but the name mismatch means it must not apply.
	if rules.CategoryBonuses[engine.CategoryOther] != 0 {
		t.Errorf("other bonus = %d, unknown override leaked", rules.CategoryBonuses[engine.CategoryOther])
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.General.DefaultMode != "softlife" {
		t.Errorf("default mode = %q", cfg.General.DefaultMode)
	}
	if !cfg.General.LogHistory {
		t.Error("history logging disabled by default")
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("default theme = %q", cfg.Appearance.Theme)
	}
}
