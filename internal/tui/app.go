// Package tui provides the interactive Bubble Tea purchase calculator.
package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/girlmathhq/girlmath/internal/cli"
	"github.com/girlmathhq/girlmath/internal/config"
	"github.com/girlmathhq/girlmath/internal/engine"
	"github.com/girlmathhq/girlmath/internal/punchline"
	"github.com/girlmathhq/girlmath/internal/tui/theme"
	"github.com/girlmathhq/girlmath/internal/whatif"
)

// Focusable fields in tab order.
const (
	fieldPrice = iota
	fieldCategory
	fieldUses
	fieldOriginalPrice
	fieldDiscount
	fieldIncome
	fieldBudgetPercent
	fieldSkipVibe
	fieldMode
	fieldCount
)

const minTerminalWidth = 70

// incomeOptions includes the "not provided" choice at index 0.
var incomeOptions = []struct {
	label string
	value string
}{
	{"prefer not to say", ""},
	{"under $30k", "under30"},
	{"$30k - $60k", "30to60"},
	{"$60k - $100k", "60to100"},
	{"$100k - $200k", "100to200"},
	{"over $200k", "over200"},
}

// App is the root Bubble Tea model: a live calculator that re-scores the
// purchase on every keystroke.
type App struct {
	eng *engine.Engine
	rng *rand.Rand

	// Form state
	priceIn    textinput.Model
	usesIn     textinput.Model
	origIn     textinput.Model
	discountIn textinput.Model
	budgetIn   textinput.Model
	category   int // index into engine.Categories
	mode       int // index into engine.Modes
	income     int // index into incomeOptions
	skipVibe   bool
	focus      int

	// Computed on every input change
	metrics   engine.Metrics
	line      string
	lineKey   string
	scenarios []whatif.Scenario

	// First-run setup (huh form)
	needSetup  bool
	setupForm  *huh.Form
	setupMode  string
	setupTheme string

	width  int
	height int
}

// NewApp creates a new calculator model using the given engine.
func NewApp(eng *engine.Engine, cfg config.Config) App {
	if eng == nil {
		eng = engine.New(nil)
	}

	newInput := func(placeholder string, width int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 12
		ti.Width = width
		return ti
	}

	a := App{
		eng:        eng,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		priceIn:    newInput("0.00", 12),
		usesIn:     newInput("auto", 12),
		origIn:     newInput("none", 12),
		discountIn: newInput("none", 12),
		budgetIn:   newInput("none", 12),
		needSetup:  !config.Exists(),
	}

	a.priceIn.Focus()

	// Seed the form from the configured baseline.
	for i, m := range engine.Modes {
		if string(m) == cfg.General.DefaultMode {
			a.mode = i
		}
	}
	for i, opt := range incomeOptions {
		if opt.value == cfg.Baseline.Income && opt.value != "" {
			a.income = i
		}
	}
	if cfg.Baseline.BudgetPercent > 0 {
		a.budgetIn.SetValue(fmt.Sprintf("%d", cfg.Baseline.BudgetPercent))
	}
	a.skipVibe = cfg.Baseline.SkipVibe

	if a.needSetup {
		a.setupMode = string(engine.ModeSoftlife)
		a.setupTheme = theme.FlexokiDark.Name
		a.setupForm = newSetupForm(&a.setupMode, &a.setupTheme)
	}

	a.recompute()
	return a
}

func newSetupForm(mode, themeName *string) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default vibe").
				Options(
					huh.NewOption("Soft Life", string(engine.ModeSoftlife)),
					huh.NewOption("Bestie Roast", string(engine.ModeBestie)),
					huh.NewOption("Delulu MBA", string(engine.ModeMBA)),
				).
				Value(mode),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(themeName),
		),
	)
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.needSetup {
		return a.setupForm.Init()
	}
	return textinput.Blink
}

// input assembles the raw purchase input from the current form state.
func (a App) input() engine.PurchaseInput {
	return engine.PurchaseInput{
		Price:           a.priceIn.Value(),
		Category:        string(engine.Categories[a.category]),
		Mode:            string(engine.Modes[a.mode]),
		Uses:            a.usesIn.Value(),
		OriginalPrice:   a.origIn.Value(),
		DiscountPercent: a.discountIn.Value(),
		Income:          incomeOptions[a.income].value,
		BudgetPercent:   a.budgetIn.Value(),
		SkipVibe:        a.skipVibe,
	}
}

func (a *App) recompute() {
	in := a.input()
	a.metrics = a.eng.Evaluate(in)
	a.scenarios = whatif.Scenarios(a.eng, in)

	// Keep the punchline stable while typing numbers; re-roll only when the
	// joke context actually changes.
	key := fmt.Sprintf("%s|%s|%s", a.metrics.Category, a.metrics.Mode, a.metrics.Verdict)
	if key != a.lineKey {
		a.lineKey = key
		a.line = punchline.Generate(a.metrics, a.rng)
	}
}

func (a *App) reroll() {
	a.line = punchline.Generate(a.metrics, a.rng)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wm, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = wm.Width
		a.height = wm.Height
		return a, nil
	}

	if a.needSetup {
		return a.updateSetup(msg)
	}

	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "ctrl+c", "esc":
			return a, tea.Quit
		case "tab", "down", "enter":
			a.setFocus((a.focus + 1) % fieldCount)
			return a, nil
		case "shift+tab", "up":
			a.setFocus((a.focus + fieldCount - 1) % fieldCount)
			return a, nil
		case "ctrl+r":
			a.reroll()
			return a, nil
		case "left", "right":
			if a.cycle(km.String() == "right") {
				a.recompute()
				return a, nil
			}
		case " ":
			if a.focus == fieldSkipVibe {
				a.skipVibe = !a.skipVibe
				a.recompute()
				return a, nil
			}
		}
	}

	cmd := a.updateFocusedInput(msg)
	a.recompute()
	return a, cmd
}

func (a *App) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "ctrl+c" {
		return *a, tea.Quit
	}

	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		cfg := config.DefaultConfig()
		cfg.General.DefaultMode = a.setupMode
		cfg.Appearance.Theme = a.setupTheme
		_ = config.Save(cfg)
		theme.SetActive(a.setupTheme)

		for i, m := range engine.Modes {
			if string(m) == a.setupMode {
				a.mode = i
			}
		}
		a.needSetup = false
		a.recompute()
		return *a, textinput.Blink
	}

	return *a, cmd
}

// cycle advances the focused selector. Returns false when the focused field
// is not a selector so arrow keys can fall through to the text inputs.
func (a *App) cycle(forward bool) bool {
	step := func(i, n int) int {
		if forward {
			return (i + 1) % n
		}
		return (i + n - 1) % n
	}

	switch a.focus {
	case fieldCategory:
		a.category = step(a.category, len(engine.Categories))
	case fieldMode:
		a.mode = step(a.mode, len(engine.Modes))
	case fieldIncome:
		a.income = step(a.income, len(incomeOptions))
	case fieldSkipVibe:
		a.skipVibe = !a.skipVibe
	default:
		return false
	}
	return true
}

func (a *App) setFocus(f int) {
	a.focus = f
	for i := 0; i < fieldCount; i++ {
		if ti := a.focusedTextInput(i); ti != nil {
			ti.Blur()
		}
	}
	if ti := a.focusedTextInput(a.focus); ti != nil {
		ti.Focus()
	}
}

func (a *App) focusedTextInput(f int) *textinput.Model {
	switch f {
	case fieldPrice:
		return &a.priceIn
	case fieldUses:
		return &a.usesIn
	case fieldOriginalPrice:
		return &a.origIn
	case fieldDiscount:
		return &a.discountIn
	case fieldBudgetPercent:
		return &a.budgetIn
	}
	return nil
}

func (a *App) updateFocusedInput(msg tea.Msg) tea.Cmd {
	ti := a.focusedTextInput(a.focus)
	if ti == nil {
		return nil
	}
	var cmd tea.Cmd
	*ti, cmd = ti.Update(msg)
	return cmd
}

// View implements tea.Model.
func (a App) View() string {
	if a.needSetup {
		return a.setupForm.View()
	}
	if a.width > 0 && a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols, need %d).\n", a.width, minTerminalWidth)
	}

	t := theme.Active
	form := a.renderForm(t)
	result := a.renderResult(t)

	body := lipgloss.JoinHorizontal(lipgloss.Top, form, " ", result)

	hint := lipgloss.NewStyle().Foreground(t.TextDim).Render(
		"  tab/↑↓ move · ←→ cycle · ctrl+r re-roll · esc quit")

	return "\n" + body + "\n" + hint + "\n"
}

func (a App) renderForm(t theme.Theme) string {
	label := lipgloss.NewStyle().Foreground(t.TextMuted)
	focused := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary)

	row := func(f int, name, body string) string {
		marker := "  "
		style := label
		if f == a.focus {
			marker = "> "
			style = focused
		}
		return fmt.Sprintf("%s%s %s", style.Render(marker+name), strings.Repeat(" ", max(0, 10-len(name))), value.Render(body))
	}

	toggle := "no"
	if a.skipVibe {
		toggle = "yes"
	}

	budget := a.budgetIn.View() + "%"
	if a.metrics.BudgetPercent != nil {
		budget += " " + label.Render("("+a.eng.Rules().VibeLabel(*a.metrics.BudgetPercent)+")")
	}

	lines := []string{
		row(fieldPrice, "price", "$"+a.priceIn.View()),
		row(fieldCategory, "category", cli.CategoryLabel(engine.Categories[a.category])),
		row(fieldUses, "uses", a.usesIn.View()),
		row(fieldOriginalPrice, "was", "$"+a.origIn.View()),
		row(fieldDiscount, "discount", a.discountIn.View()+"%"),
		row(fieldIncome, "income", incomeOptions[a.income].label),
		row(fieldBudgetPercent, "fun budget", budget),
		row(fieldSkipVibe, "skip vibe", toggle),
		row(fieldMode, "vibe", cli.ModeLabel(engine.Modes[a.mode])),
	}

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderFor(t, true)).
		Padding(1, 2).
		Width(34)

	title := lipgloss.NewStyle().Foreground(t.Magenta).Bold(true).Render("Girl Math ✨")
	return panel.Render(title + "\n\n" + strings.Join(lines, "\n"))
}

func (a App) renderResult(t theme.Theme) string {
	m := a.metrics

	verdictStyle := lipgloss.NewStyle().Bold(true).Foreground(verdictColor(t, m.Verdict))
	label := lipgloss.NewStyle().Foreground(t.TextMuted)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dim := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(verdictStyle.Render(m.Stamp))
	b.WriteString("\n")
	b.WriteString(renderBar(m.Score, m.Verdict, 28, t))
	b.WriteString("\n\n")

	factor := func(name string, f engine.FactorScore) {
		b.WriteString(fmt.Sprintf("%s %s\n",
			label.Render(fmt.Sprintf("%-14s", name)),
			value.Render(cli.FormatPoints(f))))
	}
	factor("price", m.Breakdown.PriceThreshold)
	factor("cost per use", m.Breakdown.CostPerUse)
	factor("budget", m.Breakdown.BudgetImpact)
	factor("sale", m.Breakdown.DiscountSale)
	b.WriteString(fmt.Sprintf("%s %s\n",
		label.Render(fmt.Sprintf("%-14s", "bonus")),
		value.Render(fmt.Sprintf("+%d", m.CategoryBonus))))

	b.WriteString("\n")
	b.WriteString(label.Render("cost/use ") + value.Render(cli.FormatMoneyPtr(m.CostPerUse)))
	if m.CostPerDay != nil {
		b.WriteString(label.Render("  cost/day ") + value.Render(cli.FormatMoneyPtr(m.CostPerDay)))
	}
	b.WriteString("\n\n")

	b.WriteString(value.Render(m.Justification))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(t.Magenta).Italic(true).Render(a.line))

	if len(a.scenarios) > 0 {
		b.WriteString("\n\n")
		b.WriteString(label.Render("to improve the math:"))
		b.WriteString("\n")
		for _, sc := range a.scenarios {
			b.WriteString(dim.Render(fmt.Sprintf("  · %s → %d/100", sc.Description, sc.Score)))
			b.WriteString("\n")
		}
	}

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderFor(t, false)).
		Padding(1, 2).
		Width(46)

	return panel.Render(strings.TrimRight(b.String(), "\n"))
}

func renderBar(score int, v engine.Verdict, width int, t theme.Theme) string {
	filled := score * width / 100
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	barStyle := lipgloss.NewStyle().Foreground(verdictColor(t, v))
	dim := lipgloss.NewStyle().Foreground(t.TextDim)
	return barStyle.Render(strings.Repeat("█", filled)) +
		dim.Render(strings.Repeat("░", width-filled)) +
		" " + barStyle.Render(cli.FormatScore(score))
}

func verdictColor(t theme.Theme, v engine.Verdict) lipgloss.Color {
	switch v {
	case engine.VerdictApproved:
		return t.Green
	case engine.VerdictJustified:
		return t.Accent
	case engine.VerdictQuestionable:
		return t.Yellow
	default:
		return t.Red
	}
}

func borderFor(t theme.Theme, focused bool) lipgloss.Color {
	if focused {
		return t.BorderFocus
	}
	return t.Border
}
