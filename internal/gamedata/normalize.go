// Package gamedata projects raw appdetails records into the client-facing
// game object.
//
// Substitution policy for absent fields: genres -> empty list, metacritic ->
// the NoScore sentinel, price -> the NoPrice sentinel; description, pc
// requirements and platform flags pass through as their zero values. Only a
// missing name fails the whole record, since a record without a name is not
// identifiable at all.
package gamedata

import (
	"fmt"
	"strconv"

	"steam-gamedata/internal/errs"
	"steam-gamedata/internal/models"
)

const (
	NoScore = "No score available."
	NoPrice = "Could not determine price."
)

// Normalize builds the client-facing projection of one detail record.
func Normalize(details *models.AppDetails) (models.GameData, error) {
	if details.Name == "" {
		return models.GameData{}, &errs.MalformedResponse{Reason: "detail record has no name"}
	}

	genres := make([]string, 0, len(details.Genres))
	for _, g := range details.Genres {
		genres = append(genres, g.Description)
	}

	var score any = NoScore
	if details.Metacritic != nil {
		score = details.Metacritic.Score
	}

	imgs := make([]string, 0, len(details.Screenshots))
	for _, s := range details.Screenshots {
		imgs = append(imgs, s.PathThumbnail)
	}

	return models.GameData{
		Name:    details.Name,
		Genres:  genres,
		Score:   score,
		Desc:    details.ShortDescription,
		Price:   formatPriceOverview(details.PriceOverview),
		PCReqs:  details.PCRequirements.Minimum,
		Mac:     details.Platforms.Mac,
		ImgURLs: imgs,
	}, nil
}

func formatPriceOverview(po *models.PriceOverview) string {
	if po == nil {
		return NoPrice
	}
	return FormatPrice(po.Final.String(), po.Currency, po.DiscountPercent)
}

// FormatPrice renders a minor-unit amount ("999") as a display price
// ("$9.99"). Non-USD currencies get the code appended, an active discount
// gets a sale annotation, and anything that isn't a whole number degrades to
// the NoPrice sentinel.
func FormatPrice(amount, currency string, discount int) string {
	if _, err := strconv.ParseInt(amount, 10, 64); err != nil {
		return NoPrice
	}
	var str string
	if len(amount) > 2 {
		str = amount[:len(amount)-2] + "." + amount[len(amount)-2:]
	} else {
		str = "." + amount
	}
	str = "$" + str
	if currency != "USD" {
		str = fmt.Sprintf("%s (%s)", str, currency)
	}
	if discount > 0 {
		str = fmt.Sprintf("%s -- on sale at %d%% off!", str, discount)
	}
	return str
}
