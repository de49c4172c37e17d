package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/girlmathhq/girlmath/internal/cli"
	"github.com/girlmathhq/girlmath/internal/shop"
)

var (
	flagBrand    string
	flagPriceLow float64
	flagPriceHi  float64
)

var offersCmd = &cobra.Command{
	Use:   "offers <item name>",
	Short: "Browse mock retailer offers for an item",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runOffers,
}

func init() {
	offersCmd.Flags().StringVar(&flagBrand, "brand", "", "Brand name")
	offersCmd.Flags().Float64Var(&flagPriceLow, "low", 0, "Low end of the price estimate")
	offersCmd.Flags().Float64Var(&flagPriceHi, "high", 0, "High end of the price estimate")
	rootCmd.AddCommand(offersCmd)
}

func runOffers(_ *cobra.Command, args []string) error {
	item := shop.Item{
		Name:      strings.Join(args, " "),
		Brand:     flagBrand,
		PriceLow:  flagPriceLow,
		PriceHigh: flagPriceHi,
	}
	offers := shop.MockOffers(item)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(offers)
	}

	fmt.Println()
	fmt.Printf("  %s\n\n", item.EstimateLabel())

	rows := make([][]string, 0, len(offers))
	for _, o := range offers {
		rows = append(rows, []string{
			o.RetailerName,
			fmt.Sprintf("$%d", o.Price),
			fmt.Sprintf("%.1f (%s)", o.Rating, cli.FormatNumber(int64(o.RatingCount))),
			o.ShippingLabel,
			o.Condition,
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Retailer", "Price", "Rating", "Shipping", "Condition"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}
