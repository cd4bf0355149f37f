// Package cmd - price command
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"streamdeals/core/money"
)

var (
	priceProfiles int
	priceMonths   int
	priceJSON     bool
)

// priceCmd represents the price command
var priceCmd = &cobra.Command{
	Use:   "price <platform>",
	Short: "Price a platform card selection",
	Long: `Compute the discounted price for a platform at a given selection.

Examples:
  streamdeals price Netflix
  streamdeals price Netflix --profiles 2 --months 3
  streamdeals price "ChatGPT Go" --months 6 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runPrice,
}

func init() {
	priceCmd.Flags().IntVarP(&priceProfiles, "profiles", "p", 1, "number of profiles/accounts (1-3)")
	priceCmd.Flags().IntVarP(&priceMonths, "months", "m", 1, "billing duration in months")
	priceCmd.Flags().BoolVar(&priceJSON, "json", false, "print the quote as JSON")
}

func runPrice(cmd *cobra.Command, args []string) error {
	store, err := openStore(context.Background())
	if err != nil {
		return err
	}

	quote, err := store.CardQuote(args[0], priceProfiles, priceMonths)
	if err != nil {
		return err
	}

	if priceJSON {
		return json.NewEncoder(os.Stdout).Encode(quote)
	}

	fmt.Printf("%s - %s\n", quote.Platform, quote.Badge)
	fmt.Printf("  Total:    %s", money.Format(quote.Total))
	if quote.Discount > 0 {
		fmt.Printf("  (descuento %s)", money.Format(quote.Discount))
	}
	fmt.Println()
	fmt.Printf("  Por unidad: %s/%s\n", money.Format(quote.PerUnit), quote.PerUnitLabel)
	fmt.Printf("  Checkout: %s\n", quote.Link)
	return nil
}
