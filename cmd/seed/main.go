package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mkovtun/aifolio/internal/storage"
)

type seedFile struct {
	Assets []seedAsset `yaml:"assets"`
}

type seedAsset struct {
	Symbol string  `yaml:"symbol"`
	Name   string  `yaml:"name"`
	Type   string  `yaml:"type"`
	Price  float64 `yaml:"price"`
}

func main() {
	seedPath := flag.String("assets", "assets.yaml", "path to asset seed file")
	dbPath := flag.String("db", "data/aifolio.db", "path to SQLite database")
	dryRun := flag.Bool("dry-run", false, "show assets without writing")
	flag.Parse()

	data, err := os.ReadFile(*seedPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read seed file error: %v\n", err)
		os.Exit(1)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		fmt.Fprintf(os.Stderr, "parse seed file error: %v\n", err)
		os.Exit(1)
	}

	if len(seed.Assets) == 0 {
		fmt.Println("No assets in seed file.")
		return
	}

	fmt.Printf("Found %d asset(s):\n\n", len(seed.Assets))
	for _, a := range seed.Assets {
		fmt.Printf("  %s: %s (%s) at %.2f\n", a.Symbol, a.Name, a.Type, a.Price)
	}
	fmt.Println()

	if *dryRun {
		fmt.Println("Dry run — nothing written.")
		return
	}

	db, err := storage.NewDatabase(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "database init error: %v\n", err)
		os.Exit(1)
	}
	repo := storage.NewRepository(db)

	var saved, failed int
	for _, a := range seed.Assets {
		asset := &storage.Asset{
			Symbol:       a.Symbol,
			Name:         a.Name,
			Type:         a.Type,
			CurrentPrice: a.Price,
		}
		if existing, err := repo.GetAssetBySymbol(a.Symbol); err == nil {
			asset.ID = existing.ID
			asset.CreatedAt = existing.CreatedAt
		}
		if err := repo.SaveAsset(asset); err != nil {
			fmt.Fprintf(os.Stderr, "  save %s failed: %v\n", a.Symbol, err)
			failed++
			continue
		}
		saved++
	}

	fmt.Printf("Done: %d saved, %d failed.\n", saved, failed)
}
