package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"steam-gamedata/internal/errs"
	"steam-gamedata/internal/models"
)

func listingFixture(games ...[2]string) string {
	page := "<html><body>"
	for _, g := range games {
		page += fmt.Sprintf(`<a href="https://store.steampowered.com/app/%s/x/">
<div class="col"><div class="search_name"> <span class="title">%s</span></div></div>
</a>`, g[1], g[0])
	}
	return page + "</body></html>"
}

func newTestHarvester(t *testing.T, pages map[string]string, fail map[string]bool) (*Harvester, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tag := r.URL.Query().Get("cat")
		if fail[tag] {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(pages[tag]))
	}))
	t.Cleanup(ts.Close)

	client := NewClient(5*time.Second, 2*time.Second, 1024*1024)
	categories := []Category{
		{Tag: "all", URL: ts.URL + "/search/?cat=all"},
		{Tag: "strategy", URL: ts.URL + "/search/?cat=strategy"},
		{Tag: "rpg", URL: ts.URL + "/search/?cat=rpg"},
	}
	return NewHarvester(client, categories), ts
}

func TestHarvestAllCategories(t *testing.T) {
	pages := map[string]string{
		"all":      listingFixture([2]string{"Foo", "123"}, [2]string{"Bar", "456"}),
		"strategy": listingFixture([2]string{"Foo", "123"}),
		"rpg":      listingFixture(),
	}
	h, _ := newTestHarvester(t, pages, nil)

	catalog, err := h.Harvest(context.Background())
	require.NoError(t, err)
	require.Len(t, catalog, 3)
	require.Len(t, catalog["all"], 2)
	require.Len(t, catalog["strategy"], 1)
	require.Empty(t, catalog["rpg"])
	require.NotNil(t, catalog["rpg"], "empty category must still be present")

	require.Equal(t, models.CatalogEntry{
		GameName: "Foo",
		AppID:    "123",
		Link:     "https://store.steampowered.com/app/123/x/",
	}, catalog["all"][0])
}

func TestHarvestFailsWhole(t *testing.T) {
	pages := map[string]string{
		"all":      listingFixture([2]string{"Foo", "123"}),
		"strategy": listingFixture([2]string{"Foo", "123"}),
		"rpg":      listingFixture(),
	}
	h, _ := newTestHarvester(t, pages, map[string]bool{"strategy": true})

	catalog, err := h.Harvest(context.Background())
	require.Error(t, err)
	require.Nil(t, catalog, "no partial catalog on failure")

	var fetchErr *errs.UpstreamFetch
	require.ErrorAs(t, err, &fetchErr)
	require.Equal(t, "strategy", fetchErr.Category)
}

func TestResolveAppIDOrderStable(t *testing.T) {
	pages := map[string]string{
		"all":      listingFixture([2]string{"Foo", "111"}),
		"strategy": listingFixture([2]string{"Foo", "222"}),
		"rpg":      listingFixture([2]string{"Foo", "333"}),
	}
	h, _ := newTestHarvester(t, pages, nil)

	catalog, err := h.Harvest(context.Background())
	require.NoError(t, err)

	// first configured category wins, every time
	for i := 0; i < 20; i++ {
		appID, err := h.ResolveAppID(context.Background(), catalog, "Foo")
		require.NoError(t, err)
		require.Equal(t, "111", appID)
	}
}

func TestResolveAppIDExactMatch(t *testing.T) {
	pages := map[string]string{
		"all":      listingFixture([2]string{"Foo Bar", "123"}),
		"strategy": listingFixture(),
		"rpg":      listingFixture(),
	}
	h, _ := newTestHarvester(t, pages, nil)
	catalog, err := h.Harvest(context.Background())
	require.NoError(t, err)

	for _, miss := range []string{"foo bar", "Foo  Bar", "Foo Bar ", "Baz"} {
		_, err := h.ResolveAppID(context.Background(), catalog, miss)
		var notFound *errs.GameNotFound
		require.ErrorAs(t, err, &notFound, "target %q should not match", miss)
		require.Equal(t, miss, notFound.Name)
	}

	appID, err := h.ResolveAppID(context.Background(), catalog, "Foo Bar")
	require.NoError(t, err)
	require.Equal(t, "123", appID)
}
