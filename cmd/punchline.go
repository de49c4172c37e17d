package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/girlmathhq/girlmath/internal/config"
	"github.com/girlmathhq/girlmath/internal/engine"
	"github.com/girlmathhq/girlmath/internal/punchline"
)

var flagAlternates int

var punchlineCmd = &cobra.Command{
	Use:   "punchline",
	Short: "Just the girl math one-liner",
	RunE:  runPunchline,
}

func init() {
	punchlineCmd.Flags().IntVar(&flagAlternates, "alternates", 0, "Also print up to N alternate lines")
	rootCmd.AddCommand(punchlineCmd)
}

func runPunchline(cmd *cobra.Command, _ []string) error {
	if flagPrice == "" {
		return cmd.Help()
	}

	cfg := loadConfig()
	eng := engine.New(config.Ruleset(cfg))
	m := eng.Evaluate(purchaseInput(cfg))

	rng := newRand()
	line := punchline.Generate(m, rng)
	alternates := punchline.Alternates(m, rng, flagAlternates)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Punchline  string   `json:"punchline"`
			Alternates []string `json:"alternates,omitempty"`
		}{line, alternates})
	}

	fmt.Println(line)
	for _, alt := range alternates {
		fmt.Println(alt)
	}
	return nil
}
