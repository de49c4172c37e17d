package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/girlmathhq/girlmath/internal/config"
	"github.com/girlmathhq/girlmath/internal/engine"
)

func newTestApp() App {
	cfg := config.DefaultConfig()
	cfg.Baseline.SkipVibe = true
	a := NewApp(engine.New(nil), cfg)
	// Tests exercise the calculator, not the first-run wizard.
	a.needSetup = false
	return a
}

func typeKeys(t *testing.T, m tea.Model, keys string) tea.Model {
	t.Helper()
	for _, r := range keys {
		var msg tea.Msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		m, _ = m.Update(msg)
	}
	return m
}

func TestTypingPriceRecomputes(t *testing.T) {
	var m tea.Model = newTestApp()
	m = typeKeys(t, m, "45")

	a := m.(App)
	if a.metrics.Price != 45 {
		t.Errorf("price = %g, want 45", a.metrics.Price)
	}
	if a.metrics.Stamp == "" {
		t.Error("no stamp after recompute")
	}
}

func TestCategoryCycling(t *testing.T) {
	var m tea.Model = newTestApp()

	// Move focus from price to category, then cycle right once.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})

	a := m.(App)
	want := engine.Categories[1]
	if a.metrics.Category != want {
		t.Errorf("category = %q, want %q", a.metrics.Category, want)
	}
}

func TestPartialInputNeverPanics(t *testing.T) {
	var m tea.Model = newTestApp()

	// A live form passes through invalid intermediate states.
	for _, keys := range []string{".", "-", "1e", "99999999"} {
		m = typeKeys(t, m, keys)
		if v := m.View(); v == "" {
			t.Fatalf("empty view after typing %q", keys)
		}
	}
}

func TestQuitKeys(t *testing.T) {
	var m tea.Model = newTestApp()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c did not quit")
	}
}
