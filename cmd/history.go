package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/girlmathhq/girlmath/internal/cli"
	"github.com/girlmathhq/girlmath/internal/config"
	"github.com/girlmathhq/girlmath/internal/store"
)

var flagLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past evaluations",
	RunE:  runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all past evaluations",
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.Flags().IntVarP(&flagLimit, "limit", "l", 20, "Maximum entries to show")
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	db, err := store.Open(config.HistoryPath())
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer db.Close()

	entries, err := db.RecentEvaluations(flagLimit)
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("\n  No evaluations yet. Score something first!")
		fmt.Println()
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		item := e.Item
		if item == "" {
			item = cli.NotAvailable
		}
		rows = append(rows, []string{
			e.EvaluatedAt.Local().Format("Jan 02 15:04"),
			item,
			cli.FormatMoney(e.Price),
			string(e.Category),
			cli.FormatScore(e.Score),
			e.Stamp,
		})
	}
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"When", "Item", "Price", "Category", "Score", "Verdict"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}

func runHistoryClear(_ *cobra.Command, _ []string) error {
	db, err := store.Open(config.HistoryPath())
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer db.Close()

	if err := db.Clear(); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	fmt.Println("  History cleared.")
	return nil
}
