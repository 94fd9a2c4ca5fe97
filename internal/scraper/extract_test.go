package scraper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const listingHTML = `<!doctype html><html><body>
<div id="search_resultsRows">
<a href="https://store.steampowered.com/app/12210/Grand_Theft_Auto_IV/">
  <div class="col">
    <div class="search_name ellipsis"> <span class="title">Grand Theft Auto IV</span></div>
  </div>
</a>
<a href="https://store.steampowered.com/app/730/CounterStrike_2/">
  <div class="col">
    <div class="search_name ellipsis"> <span class="title">Counter-Strike 2</span></div>
  </div>
</a>
</div>
</body></html>`

func TestExtractEntries(t *testing.T) {
	entries, err := ExtractEntries(strings.NewReader(listingHTML), "text/html; charset=utf-8")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	require.Equal(t, "Grand Theft Auto IV", entries[0].GameName)
	require.Equal(t, "12210", entries[0].AppID)
	require.Equal(t, "https://store.steampowered.com/app/12210/Grand_Theft_Auto_IV/", entries[0].Link)

	require.Equal(t, "Counter-Strike 2", entries[1].GameName)
	require.Equal(t, "730", entries[1].AppID)
}

func TestExtractSkipsMalformedRows(t *testing.T) {
	// one good row, one with no link on the grandparent, one whose link has
	// no app segment, one with an empty name node
	html := `<html><body>
<a href="https://store.steampowered.com/app/440/Team_Fortress_2/">
  <div class="col"><div class="search_name"> <span class="title">Team Fortress 2</span></div></div>
</a>
<div class="nolink">
  <div class="col"><div class="search_name"> <span class="title">Linkless</span></div></div>
</div>
<a href="https://store.steampowered.com/bundle/123/Some_Bundle/">
  <div class="col"><div class="search_name"> <span class="title">Bundled</span></div></div>
</a>
<a href="https://store.steampowered.com/app/570/Dota_2/">
  <div class="col"><div class="search_name"> <span class="title"></span></div></div>
</a>
</body></html>`

	entries, err := ExtractEntries(strings.NewReader(html), "text/html")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "Team Fortress 2", entries[0].GameName)
	require.Equal(t, "440", entries[0].AppID)
}

func TestExtractEmptyPage(t *testing.T) {
	entries, err := ExtractEntries(strings.NewReader("<html><body><p>no results</p></body></html>"), "text/html")
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestAppIDFromLink(t *testing.T) {
	require.Equal(t, "12210", appIDFromLink("https://store.steampowered.com/app/12210/Grand_Theft_Auto_IV/"))
	require.Equal(t, "730", appIDFromLink("https://store.steampowered.com/app/730/"))
	require.Equal(t, "99", appIDFromLink("/app/99/trailing"))
	require.Equal(t, "", appIDFromLink("https://store.steampowered.com/bundle/123/"))
}
