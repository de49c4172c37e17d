// Package cmd implements the girlmath CLI commands.
package cmd

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/girlmathhq/girlmath/internal/cli"
	"github.com/girlmathhq/girlmath/internal/config"
	"github.com/girlmathhq/girlmath/internal/engine"
	"github.com/girlmathhq/girlmath/internal/punchline"
	"github.com/girlmathhq/girlmath/internal/store"
	"github.com/girlmathhq/girlmath/internal/whatif"
)

var (
	flagPrice         string
	flagCategory      string
	flagMode          string
	flagUses          string
	flagOriginalPrice string
	flagDiscount      string
	flagIncome        string
	flagBudgetPercent string
	flagSkipVibe      bool
	flagItem          string
	flagJSON          bool
	flagQuiet         bool
	flagNoLog         bool
)

var rootCmd = &cobra.Command{
	Use:   "girlmath",
	Short: "Purchase justification calculator",
	Long:  "Score a purchase 0-100 with a transparent breakdown, a verdict, and the girl math to back it up.",
	RunE:  runScore,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagPrice, "price", "p", "", "Purchase price in dollars")
	pf.StringVarP(&flagCategory, "category", "c", "", "Category (clothes, skincare, travel, food, subscription, gift, jewellery, other)")
	pf.StringVarP(&flagMode, "mode", "m", "", "Tone (softlife, bestie, mba)")
	pf.StringVarP(&flagUses, "uses", "u", "", "Expected number of uses")
	pf.StringVar(&flagOriginalPrice, "original-price", "", "Pre-sale price, if on sale")
	pf.StringVar(&flagDiscount, "discount", "", "Discount percent, if on sale")
	pf.StringVar(&flagIncome, "income", "", "Annual income bracket (under30, 30to60, 60to100, 100to200, over200)")
	pf.StringVar(&flagBudgetPercent, "budget-percent", "", "Fun-money percent of monthly income")
	pf.BoolVar(&flagSkipVibe, "skip-vibe", false, "Skip the budget vibe check")
	pf.StringVar(&flagItem, "item", "", "Item label, for the history log")
	pf.BoolVar(&flagJSON, "json", false, "Output JSON instead of the rendered verdict")
	pf.BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	pf.BoolVar(&flagNoLog, "no-log", false, "Do not record this evaluation in history")
}

// purchaseInput assembles the input from flags, falling back to the
// configured baseline for income, budget, and mode.
func purchaseInput(cfg config.Config) engine.PurchaseInput {
	in := engine.PurchaseInput{
		Price:           flagPrice,
		Category:        flagCategory,
		Mode:            flagMode,
		Uses:            flagUses,
		OriginalPrice:   flagOriginalPrice,
		DiscountPercent: flagDiscount,
		Income:          flagIncome,
		BudgetPercent:   flagBudgetPercent,
		SkipVibe:        flagSkipVibe,
	}

	if in.Mode == "" {
		in.Mode = cfg.General.DefaultMode
	}
	if in.Income == "" {
		in.Income = cfg.Baseline.Income
	}
	if in.BudgetPercent == "" && cfg.Baseline.BudgetPercent > 0 {
		in.BudgetPercent = strconv.Itoa(cfg.Baseline.BudgetPercent)
	}
	if cfg.Baseline.SkipVibe {
		in.SkipVibe = true
	}

	return in
}

// loadConfig loads config, warning instead of failing on a corrupt file.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Config unreadable, using defaults: %v\n", err)
	}
	return cfg
}

// logEvaluation records the result in the history database. Best effort:
// a broken database never blocks the verdict.
func logEvaluation(cfg config.Config, m engine.Metrics) {
	if flagNoLog || !cfg.General.LogHistory {
		return
	}
	db, err := store.Open(config.HistoryPath())
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  History unavailable: %v\n", err)
		}
		return
	}
	defer db.Close()
	if err := db.SaveEvaluation(flagItem, m); err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  History write failed: %v\n", err)
	}
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// scoreResult is the JSON output shape for the root command.
type scoreResult struct {
	Metrics   engine.Metrics    `json:"metrics"`
	Punchline string            `json:"punchline"`
	Insight   string            `json:"insight"`
	Scenarios []whatif.Scenario `json:"scenarios"`
}

func runScore(cmd *cobra.Command, _ []string) error {
	if flagPrice == "" {
		return cmd.Help()
	}

	cfg := loadConfig()
	eng := engine.New(config.Ruleset(cfg))
	in := purchaseInput(cfg)
	m := eng.Evaluate(in)

	rng := newRand()
	line := punchline.Generate(m, rng)
	insight := punchline.Insight(m, rng)
	scenarios := whatif.Scenarios(eng, in)

	logEvaluation(cfg, m)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(scoreResult{Metrics: m, Punchline: line, Insight: insight, Scenarios: scenarios})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("GIRL MATH ✨"))
	fmt.Println()

	fmt.Printf("  %s\n", cli.VerdictStyle(m.Verdict).Render(m.Stamp))
	fmt.Printf("  %s\n\n", cli.RenderScoreBar(m.Score, m.Verdict, 40))

	rows := [][]string{
		{"Price", cli.FormatPoints(m.Breakdown.PriceThreshold), m.Breakdown.PriceThreshold.Rationale},
		{"Cost per use", cli.FormatPoints(m.Breakdown.CostPerUse), m.Breakdown.CostPerUse.Rationale},
		{"Budget impact", cli.FormatPoints(m.Breakdown.BudgetImpact), m.Breakdown.BudgetImpact.Rationale},
		{"Sale", cli.FormatPoints(m.Breakdown.DiscountSale), m.Breakdown.DiscountSale.Rationale},
		{"---"},
		{"Category bonus", fmt.Sprintf("+%d", m.CategoryBonus), m.Breakdown.CategoryBonus.Rationale},
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Factor", "Points", "Why"},
		Rows:    rows,
	}))
	fmt.Println()

	pairs := [][2]string{
		{"Category", cli.CategoryLabel(m.Category)},
		{"Cost per use", cli.FormatMoneyPtr(m.CostPerUse)},
	}
	if m.CostPerDay != nil {
		pairs = append(pairs, [2]string{"Cost per day", cli.FormatMoneyPtr(m.CostPerDay)})
	}
	if m.Savings > 0 {
		pairs = append(pairs, [2]string{"Savings", cli.FormatSavings(m.Savings, m.DiscountPercent)})
	}
	if m.BudgetPercent != nil {
		pairs = append(pairs, [2]string{"Budget vibe", eng.Rules().VibeLabel(*m.BudgetPercent)})
	}
	pairs = append(pairs, [2]string{"Confidence", fmt.Sprintf("%d%%", m.Confidence)})
	fmt.Print(cli.RenderKeyValues(pairs))
	fmt.Println()

	fmt.Printf("  %s\n", m.Justification)
	fmt.Printf("  %s\n", line)
	fmt.Printf("\n  %s\n", insight)

	if len(scenarios) > 0 {
		fmt.Println("\n  To improve the math:")
		for _, sc := range scenarios {
			fmt.Printf("    · %s → %s\n", sc.Description, cli.FormatScore(sc.Score))
		}
	}
	fmt.Println()

	return nil
}
