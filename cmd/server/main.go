// Package main - Entry point for the streamdeals pricing server
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"streamdeals/adapters/hclcatalog"
	"streamdeals/api"
	"streamdeals/core/dataload"
	"streamdeals/core/pricing"
	"streamdeals/core/storefront"
	"streamdeals/internal/config"
	"streamdeals/internal/logging"
)

const version = "1.0.0"

func main() {
	cfgPath := flag.String("config", "", "path to config file")
	addr := flag.String("addr", "", "server address (overrides config)")
	offline := flag.Bool("offline", false, "skip the remote fetch and use fallback prices")
	flag.Parse()

	cfg := config.Get()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		config.Set(loaded)
		cfg = loaded
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		log.Fatalf("initializing logging: %v", err)
	}

	listenAddr := cfg.Server.Address
	if *addr != "" {
		listenAddr = *addr
	}

	store, err := openStore(cfg, *offline || cfg.Data.Offline)
	if err != nil {
		log.Fatalf("assembling store: %v", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", api.NewServer(store, version)))
	mux.Handle("/", http.FileServer(http.Dir(cfg.Server.UIPath)))

	fmt.Printf("streamdeals pricing server v%s\n", version)
	fmt.Printf("   API: http://localhost%s/api\n", listenAddr)
	fmt.Printf("   UI:  http://localhost%s\n", listenAddr)

	if err := http.ListenAndServe(listenAddr, mux); err != nil {
		log.Fatal(err)
	}
}

// openStore performs the single data load and applies catalog overrides
func openStore(cfg *config.Config, offline bool) (*storefront.Store, error) {
	var loader *dataload.Loader
	if offline {
		loader = dataload.NewOfflineLoader()
	} else {
		loader = dataload.NewLoader(cfg.Data.ConfigURL, cfg.Data.PricesURL,
			time.Duration(cfg.Data.TimeoutSeconds)*time.Second)
	}

	snap := loader.Load(context.Background())

	if cfg.CatalogOverridePath != "" {
		overrides, err := hclcatalog.Load(cfg.CatalogOverridePath)
		if err != nil {
			// Overrides failing must not take the storefront down; the
			// unmerged snapshot stays in effect.
			fmt.Fprintf(os.Stderr, "catalog overrides ignored: %v\n", err)
		} else if err := overrides.Apply(snap.Gate.Catalog()); err != nil {
			fmt.Fprintf(os.Stderr, "catalog overrides ignored: %v\n", err)
		}
	}

	links := pricing.LinkBuilder{Number: cfg.Checkout.WhatsAppNumber}
	return storefront.New(snap, links), nil
}
