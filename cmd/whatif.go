package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/girlmathhq/girlmath/internal/cli"
	"github.com/girlmathhq/girlmath/internal/config"
	"github.com/girlmathhq/girlmath/internal/engine"
	"github.com/girlmathhq/girlmath/internal/whatif"
)

var whatifCmd = &cobra.Command{
	Use:   "whatif",
	Short: "Show scenarios that improve the score",
	RunE:  runWhatif,
}

func init() {
	rootCmd.AddCommand(whatifCmd)
}

func runWhatif(cmd *cobra.Command, _ []string) error {
	if flagPrice == "" {
		return cmd.Help()
	}

	cfg := loadConfig()
	eng := engine.New(config.Ruleset(cfg))
	in := purchaseInput(cfg)
	m := eng.Evaluate(in)
	scenarios := whatif.Scenarios(eng, in)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(scenarios)
	}

	fmt.Println()
	fmt.Printf("  Current: %s %s\n\n",
		cli.FormatScore(m.Score),
		cli.VerdictStyle(m.Verdict).Render(m.Stamp))

	if len(scenarios) == 0 {
		fmt.Println("  The math already maths. No scenario moves the needle.")
		fmt.Println()
		return nil
	}

	rows := make([][]string, 0, len(scenarios))
	for _, sc := range scenarios {
		rows = append(rows, []string{sc.Description, cli.FormatScore(sc.Score), sc.Stamp})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Scenario", "Score", "Verdict"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}
