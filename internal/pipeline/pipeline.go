// Package pipeline sequences one catalog request end to end: harvest the
// listings, then either return the catalog whole or resolve the requested
// name, fetch its detail record, and normalize it. Each stage takes its
// predecessor's output and returns its own; any stage failure short-circuits
// the rest.
package pipeline

import (
	"context"
	"log/slog"

	"steam-gamedata/internal/gamedata"
	"steam-gamedata/internal/models"
	"steam-gamedata/internal/scraper"
	"steam-gamedata/internal/steamapi"
)

// Wildcard is the target value that asks for the full catalog instead of a
// single game.
const Wildcard = "all"

type Pipeline struct {
	harvester *scraper.Harvester
	details   *steamapi.Client
}

func New(harvester *scraper.Harvester, details *steamapi.Client) *Pipeline {
	return &Pipeline{harvester: harvester, details: details}
}

// Result holds exactly one of the two response shapes: the full catalog for
// a wildcard request, or a single normalized game.
type Result struct {
	Catalog models.Catalog
	Game    *models.GameData
}

// Run executes the pipeline for one target. The catalog is always built
// first: it doubles as the name-to-appID index for single-game requests.
func (p *Pipeline) Run(ctx context.Context, targetGame string) (Result, error) {
	catalog, err := p.harvester.Harvest(ctx)
	if err != nil {
		return Result{}, err
	}

	if targetGame == Wildcard {
		slog.DebugContext(ctx, "returning full catalog")
		return Result{Catalog: catalog}, nil
	}

	appID, err := p.harvester.ResolveAppID(ctx, catalog, targetGame)
	if err != nil {
		return Result{}, err
	}

	details, err := p.details.AppDetails(ctx, appID)
	if err != nil {
		return Result{}, err
	}

	game, err := gamedata.Normalize(details)
	if err != nil {
		return Result{}, err
	}
	return Result{Game: &game}, nil
}
