package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"steam-gamedata/internal/config"
	"steam-gamedata/internal/pipeline"
	"steam-gamedata/internal/scraper"
	"steam-gamedata/internal/steamapi"
)

func main() {
	game := flag.String("game", pipeline.Wildcard, "exact game name, or 'all' for the full catalog")
	timeout := flag.Duration("timeout", 25*time.Second, "overall deadline for the run")
	pretty := flag.Bool("pretty", false, "indent the JSON output")
	flag.Parse()

	cfg := config.Load()

	client := scraper.NewClient(cfg.FetchTimeout, 5*time.Second, 5*1024*1024)
	harvester := scraper.NewHarvester(client, cfg.Categories())
	details := steamapi.NewClient(cfg.APIBaseURL, cfg.FetchTimeout)
	pipe := pipeline.New(harvester, details)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result, err := pipe.Run(ctx, *game)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	var out any = result.Catalog
	if result.Game != nil {
		out = result.Game
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(out); err != nil {
		fmt.Fprintln(os.Stderr, "encode output:", err)
		os.Exit(1)
	}
}
