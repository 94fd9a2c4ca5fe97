package scraper

import (
	"context"
	"log/slog"

	"steam-gamedata/internal/errs"
	"steam-gamedata/internal/models"
)

// ResolveAppID finds the appID for an exact game name. Categories are
// scanned in configured order, entries in page order, first match wins, so
// a game present in several categories always resolves to the same ID.
// Matching is case- and whitespace-sensitive; no normalization.
func (h *Harvester) ResolveAppID(ctx context.Context, catalog models.Catalog, targetGame string) (string, error) {
	for _, cat := range h.categories {
		for _, entry := range catalog[cat.Tag] {
			if entry.GameName == targetGame {
				slog.DebugContext(ctx, "resolved appID", "game", targetGame, "appID", entry.AppID, "category", cat.Tag)
				return entry.AppID, nil
			}
		}
	}
	return "", &errs.GameNotFound{Name: targetGame}
}
