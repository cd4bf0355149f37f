// Package cmd - catalog command
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"streamdeals/core/money"
)

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List platforms with availability and prices",
	RunE:  runCatalog,
}

func runCatalog(cmd *cobra.Command, args []string) error {
	store, err := openStore(context.Background())
	if err != nil {
		return err
	}

	source := "fallback"
	if store.Live() {
		source = "live"
	}
	fmt.Printf("Platforms (%s prices):\n", source)

	for _, entry := range store.Gate().Entries() {
		state := ""
		if !entry.Enabled {
			state = "  [no disponible]"
		}
		pricing := money.Format(entry.MonthlyRate()) + "/mes"
		if entry.Tiered() {
			pricing += " (tarifa por duración)"
		}
		fmt.Printf("  %-22s %-10s %s  hasta %d meses%s\n",
			entry.DisplayName, entry.Unit.Word(), pricing, entry.MaxMonths, state)
	}
	return nil
}
