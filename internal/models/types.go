package models

import (
	"bytes"
	"encoding/json"
)

// CatalogEntry is one row scraped from a storefront search-results page.
// All three fields are mandatory; extraction discards rows missing any.
type CatalogEntry struct {
	GameName string `json:"gameName"`
	AppID    string `json:"appID"`
	Link     string `json:"link"`
}

// Catalog maps a category tag ("all", "strategy", "rpg") to its entries in
// page order. Built once per request, read-only afterward. Category iteration
// order is carried separately since maps don't iterate deterministically; see
// scraper.Harvester.
type Catalog map[string][]CatalogEntry

// Genre is one element of the appdetails genre list.
type Genre struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// Metacritic is the optional review-score block of an appdetails payload.
type Metacritic struct {
	Score int    `json:"score"`
	URL   string `json:"url"`
}

// PriceOverview is the optional price block. Final stays a json.Number so a
// malformed amount degrades to the price sentinel during normalization
// instead of failing the whole decode.
type PriceOverview struct {
	Currency        string      `json:"currency"`
	Final           json.Number `json:"final"`
	DiscountPercent int         `json:"discount_percent"`
}

// Platforms is the platform support flag block.
type Platforms struct {
	Windows bool `json:"windows"`
	Mac     bool `json:"mac"`
	Linux   bool `json:"linux"`
}

// Screenshot is one element of the appdetails screenshot list.
type Screenshot struct {
	ID            int    `json:"id"`
	PathThumbnail string `json:"path_thumbnail"`
	PathFull      string `json:"path_full"`
}

// Requirements holds minimum/recommended requirement text. The live API
// serves `[]` instead of an object when a title has none, so decoding
// tolerates both.
type Requirements struct {
	Minimum     string `json:"minimum"`
	Recommended string `json:"recommended"`
}

func (r *Requirements) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		*r = Requirements{}
		return nil
	}
	type plain Requirements
	return json.Unmarshal(data, (*plain)(r))
}

// AppDetails is the `data` object of one appdetails envelope. Every field
// except Name may be absent; optional blocks are pointers so presence is
// explicit.
type AppDetails struct {
	Name             string         `json:"name"`
	ShortDescription string         `json:"short_description"`
	Genres           []Genre        `json:"genres"`
	Metacritic       *Metacritic    `json:"metacritic"`
	PriceOverview    *PriceOverview `json:"price_overview"`
	PCRequirements   Requirements   `json:"pc_requirements"`
	Platforms        Platforms      `json:"platforms"`
	Screenshots      []Screenshot   `json:"screenshots"`
}

// GameData is the client-facing projection of an AppDetails payload. Score
// is either a numeric review score or the "No score available." sentinel,
// matching the wire shape clients already consume.
type GameData struct {
	Name    string   `json:"name"`
	Genres  []string `json:"genres"`
	Score   any      `json:"score"`
	Desc    string   `json:"desc"`
	Price   string   `json:"price"`
	PCReqs  string   `json:"pcreqs"`
	Mac     bool     `json:"mac"`
	ImgURLs []string `json:"imgURLs"`
}
