package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/girlmathhq/girlmath/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default vibe: %s\n", cfg.General.DefaultMode)
	fmt.Printf("    Log history:  %v\n", cfg.General.LogHistory)
	fmt.Println()

	fmt.Println("  [Baseline]")
	if cfg.Baseline.Income != "" {
		fmt.Printf("    Income bracket: %s\n", cfg.Baseline.Income)
	} else {
		fmt.Println("    Income bracket: not set")
	}
	if cfg.Baseline.BudgetPercent > 0 {
		fmt.Printf("    Fun budget:     %d%%\n", cfg.Baseline.BudgetPercent)
	} else {
		fmt.Println("    Fun budget:     not set")
	}
	fmt.Printf("    Skip vibe:      %v\n", cfg.Baseline.SkipVibe)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	if len(cfg.Bonuses.Overrides) > 0 {
		fmt.Println("  [Bonuses]")
		names := make([]string, 0, len(cfg.Bonuses.Overrides))
		for name := range cfg.Bonuses.Overrides {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("    %-13s %d\n", name+":", cfg.Bonuses.Overrides[name])
		}
		fmt.Println()
	}

	fmt.Printf("  History db: %s\n", config.HistoryPath())
	fmt.Println()
	fmt.Println("  Run `girlmath setup` to reconfigure.")
	return nil
}
