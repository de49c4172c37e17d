package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/girlmathhq/girlmath/internal/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to girlmath!")
	fmt.Println()

	// 1. Default tone
	fmt.Println("  1. Default vibe for verdicts")
	fmt.Println("     (1) Soft Life [default]")
	fmt.Println("     (2) Bestie Roast")
	fmt.Println("     (3) Delulu MBA")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "2":
		cfg.General.DefaultMode = "bestie"
	case "3":
		cfg.General.DefaultMode = "mba"
	default:
		cfg.General.DefaultMode = "softlife"
	}
	fmt.Println()

	// 2. Income bracket
	fmt.Println("  2. Annual income bracket (for the budget vibe check)")
	fmt.Println("     (1) under $30k")
	fmt.Println("     (2) $30k - $60k")
	fmt.Println("     (3) $60k - $100k")
	fmt.Println("     (4) $100k - $200k")
	fmt.Println("     (5) over $200k")
	fmt.Println("     Leave blank to skip.")
	fmt.Print("     > ")
	choice, _ = reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "1":
		cfg.Baseline.Income = "under30"
	case "2":
		cfg.Baseline.Income = "30to60"
	case "3":
		cfg.Baseline.Income = "60to100"
	case "4":
		cfg.Baseline.Income = "100to200"
	case "5":
		cfg.Baseline.Income = "over200"
	default:
		cfg.Baseline.Income = ""
	}
	fmt.Println()

	// 3. Fun budget
	if cfg.Baseline.Income != "" {
		fmt.Println("  3. Fun-money percent of monthly income (e.g. 15)")
		fmt.Println("     Leave blank to skip.")
		fmt.Print("     > ")
		choice, _ = reader.ReadString('\n')
		if pct, err := strconv.Atoi(strings.TrimSpace(choice)); err == nil && pct > 0 && pct <= 100 {
			cfg.Baseline.BudgetPercent = pct
		} else {
			cfg.Baseline.BudgetPercent = 0
		}
		fmt.Println()
	}

	// 4. Theme
	fmt.Println("  4. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Terminal (ANSI 16)")
	fmt.Print("     > ")
	choice, _ = reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `girlmath setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
