// Package cmd - combo command
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"streamdeals/core/money"
	"streamdeals/core/pricing"
)

var (
	comboPreset string
	comboJSON   bool
)

// comboCmd represents the combo command
var comboCmd = &cobra.Command{
	Use:   "combo [platform]...",
	Short: "Price a multi-platform combo",
	Long: `Assemble a combo and compute its bundle-discounted price.

Examples:
  streamdeals combo Netflix "HBO Max"
  streamdeals combo Netflix "Disney+ Premium" "Prime Video"
  streamdeals combo --preset ultimate`,
	RunE: runCombo,
}

func init() {
	comboCmd.Flags().StringVar(&comboPreset, "preset", "", "apply a named preset ("+strings.Join(pricing.PresetNames(), ", ")+")")
	comboCmd.Flags().BoolVar(&comboJSON, "json", false, "print the quote as JSON")
}

func runCombo(cmd *cobra.Command, args []string) error {
	if comboPreset == "" && len(args) == 0 {
		return fmt.Errorf("provide platform names or --preset")
	}

	store, err := openStore(context.Background())
	if err != nil {
		return err
	}

	combo := store.NewCombo()
	if comboPreset != "" {
		if _, err := combo.ApplyPreset(comboPreset); err != nil {
			return err
		}
	} else {
		for _, name := range args {
			if _, err := combo.Toggle(name); err != nil {
				fmt.Fprintf(os.Stderr, "skipping %s: %v\n", name, err)
			}
		}
	}

	quote := combo.Quote()

	if comboJSON {
		return json.NewEncoder(os.Stdout).Encode(quote)
	}

	fmt.Printf("Combo: %s\n", strings.Join(quote.Selected, ", "))
	fmt.Printf("  Total:  %s\n", money.Format(quote.FinalPrice))
	fmt.Printf("  %s\n", quote.SavingsText)
	if quote.MatchedPreset != "" {
		fmt.Printf("  Preset: %s\n", quote.MatchedPreset)
	}
	if quote.CheckoutReady {
		fmt.Printf("  Checkout: %s\n", quote.Link)
	} else {
		fmt.Printf("  %s\n", pricing.NudgeText)
	}
	return nil
}
