// Package cmd provides the CLI commands for streamdeals.
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"streamdeals/adapters/hclcatalog"
	"streamdeals/core/dataload"
	"streamdeals/core/pricing"
	"streamdeals/core/storefront"
	"streamdeals/internal/config"
	"streamdeals/internal/logging"
)

var (
	cfgFile     string
	catalogFile string
	offline     bool
	verbose     bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "streamdeals",
	Short: "Price streaming subscriptions and combos",
	Long: `streamdeals is the pricing engine behind the storefront widget.

It computes per-card and combo prices with the storefront's discount rules
and produces the checkout deep links customers use to complete a purchase.

Examples:
  streamdeals price Netflix --profiles 2 --months 3
  streamdeals combo Netflix "HBO Max" "Disney+ Premium"
  streamdeals combo --preset ultimate
  streamdeals catalog`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is built-in defaults)")
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "HCL catalog override file")
	rootCmd.PersistentFlags().BoolVar(&offline, "offline", false, "skip the remote fetch and use fallback prices")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(priceCmd)
	rootCmd.AddCommand(comboCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// openStore performs the single data load and applies catalog overrides
func openStore(ctx context.Context) (*storefront.Store, error) {
	cfg := config.Get()

	var loader *dataload.Loader
	if offline || cfg.Data.Offline {
		loader = dataload.NewOfflineLoader()
	} else {
		loader = dataload.NewLoader(cfg.Data.ConfigURL, cfg.Data.PricesURL,
			time.Duration(cfg.Data.TimeoutSeconds)*time.Second)
	}

	snap := loader.Load(ctx)

	overridePath := catalogFile
	if overridePath == "" {
		overridePath = cfg.CatalogOverridePath
	}
	if overridePath != "" {
		overrides, err := hclcatalog.Load(overridePath)
		if err != nil {
			return nil, err
		}
		if err := overrides.Apply(snap.Gate.Catalog()); err != nil {
			return nil, err
		}
	}

	links := pricing.LinkBuilder{Number: cfg.Checkout.WhatsAppNumber}
	return storefront.New(snap, links), nil
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("streamdeals version 1.0.0")
	},
}

// configCmd manages configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default configuration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return config.Default().Save(args[0])
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		fmt.Printf("server address:   %s\n", cfg.Server.Address)
		fmt.Printf("config resource:  %s\n", cfg.Data.ConfigURL)
		fmt.Printf("prices resource:  %s\n", cfg.Data.PricesURL)
		fmt.Printf("checkout number:  %s\n", cfg.Checkout.WhatsAppNumber)
		if cfg.CatalogOverridePath != "" {
			fmt.Printf("catalog override: %s\n", cfg.CatalogOverridePath)
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
