package store

import (
	"path/filepath"
	"testing"

	"github.com/girlmathhq/girlmath/internal/engine"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func evaluate(t *testing.T, in engine.PurchaseInput) engine.Metrics {
	t.Helper()
	return engine.New(nil).Evaluate(in)
}

func TestSaveAndLoadEvaluation(t *testing.T) {
	s := openTestStore(t)

	m := evaluate(t, engine.PurchaseInput{
		Price:    "45",
		Category: "skincare",
		Uses:     "90",
		SkipVibe: true,
	})
	if err := s.SaveEvaluation("vitamin c serum", m); err != nil {
		t.Fatalf("SaveEvaluation: %v", err)
	}

	entries, err := s.RecentEvaluations(10)
	if err != nil {
		t.Fatalf("RecentEvaluations: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}

	e := entries[0]
	if e.Item != "vitamin c serum" {
		t.Errorf("item = %q", e.Item)
	}
	if e.Price != 45 {
		t.Errorf("price = %g", e.Price)
	}
	if e.Category != engine.CategorySkincare {
		t.Errorf("category = %q", e.Category)
	}
	if e.Score != m.Score {
		t.Errorf("score = %d, want %d", e.Score, m.Score)
	}
	if e.Verdict != m.Verdict {
		t.Errorf("verdict = %q, want %q", e.Verdict, m.Verdict)
	}
	if e.Uses != 90 {
		t.Errorf("uses = %d, want 90", e.Uses)
	}
	if e.UsesEstimated {
		t.Error("uses marked estimated for supplied uses")
	}
	if e.EvaluatedAt.IsZero() {
		t.Error("evaluated_at not recorded")
	}
}

func TestRecentEvaluationsOrderAndLimit(t *testing.T) {
	s := openTestStore(t)

	prices := []string{"10", "20", "30", "40"}
	for _, p := range prices {
		m := evaluate(t, engine.PurchaseInput{Price: p, Category: "other", SkipVibe: true})
		if err := s.SaveEvaluation("", m); err != nil {
			t.Fatalf("SaveEvaluation: %v", err)
		}
	}

	entries, err := s.RecentEvaluations(2)
	if err != nil {
		t.Fatalf("RecentEvaluations: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	// Newest first.
	if entries[0].Price != 40 || entries[1].Price != 30 {
		t.Errorf("order = %g, %g; want 40, 30", entries[0].Price, entries[1].Price)
	}

	count, err := s.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 4 {
		t.Errorf("count = %d, want 4", count)
	}
}

func TestNullableFieldsRoundTrip(t *testing.T) {
	s := openTestStore(t)

	// No uses, no discount, no budget: all nullable columns stay null.
	m := evaluate(t, engine.PurchaseInput{Price: "500", Category: "jewellery", SkipVibe: true})
	if err := s.SaveEvaluation("ring", m); err != nil {
		t.Fatalf("SaveEvaluation: %v", err)
	}

	entries, err := s.RecentEvaluations(1)
	if err != nil {
		t.Fatalf("RecentEvaluations: %v", err)
	}
	e := entries[0]
	if !e.UsesEstimated {
		t.Error("jewellery without uses should be estimated")
	}
	if e.OriginalPrice != nil || e.DiscountPercent != nil || e.BudgetPercent != nil {
		t.Errorf("nullable fields leaked: orig=%v discount=%v budget=%v",
			e.OriginalPrice, e.DiscountPercent, e.BudgetPercent)
	}
}

func TestClear(t *testing.T) {
	s := openTestStore(t)

	m := evaluate(t, engine.PurchaseInput{Price: "15", Category: "food", SkipVibe: true})
	if err := s.SaveEvaluation("", m); err != nil {
		t.Fatalf("SaveEvaluation: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	count, err := s.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Errorf("count after clear = %d", count)
	}
}
