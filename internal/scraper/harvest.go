package scraper

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"steam-gamedata/internal/errs"
	"steam-gamedata/internal/models"
)

// Category pairs a tag with the listing URL that produces its entries.
type Category struct {
	Tag string
	URL string
}

// Harvester builds a full catalog by fetching every configured category
// listing concurrently. Category order is fixed at construction and is the
// order the resolver scans in.
type Harvester struct {
	client     *Client
	categories []Category
}

func NewHarvester(client *Client, categories []Category) *Harvester {
	return &Harvester{client: client, categories: categories}
}

// Categories returns the configured categories in scan order.
func (h *Harvester) Categories() []Category { return h.categories }

// Harvest fetches all category listings concurrently and assembles the
// catalog. All fetches must succeed; the first failure cancels the rest and
// no partial catalog is ever returned. Each goroutine writes to its own
// pre-assigned slot, so the join needs no lock.
func (h *Harvester) Harvest(ctx context.Context) (models.Catalog, error) {
	start := time.Now()
	slog.DebugContext(ctx, "harvesting listings", "categories", len(h.categories))

	results := make([][]models.CatalogEntry, len(h.categories))
	g, ctx := errgroup.WithContext(ctx)
	for i, cat := range h.categories {
		i, cat := i, cat
		g.Go(func() error {
			body, contentType, err := h.client.FetchPage(ctx, cat.URL)
			if err != nil {
				return &errs.UpstreamFetch{URL: cat.URL, Category: cat.Tag, Err: err}
			}
			defer body.Close()

			entries, err := ExtractEntries(body, contentType)
			if err != nil {
				return &errs.MalformedResponse{URL: cat.URL, Reason: "unparseable listing page", Err: err}
			}
			slog.DebugContext(ctx, "category harvested", "tag", cat.Tag, "entries", len(entries))
			results[i] = entries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	catalog := make(models.Catalog, len(h.categories))
	for i, cat := range h.categories {
		entries := results[i]
		if entries == nil {
			entries = []models.CatalogEntry{}
		}
		catalog[cat.Tag] = entries
	}
	slog.DebugContext(ctx, "harvest complete", "elapsed", time.Since(start))
	return catalog, nil
}
