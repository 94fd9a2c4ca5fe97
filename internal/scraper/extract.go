// Package scraper harvests the storefront's top-seller listings.
//
// Extraction depends on a fixed result-page shape, and that dependency is
// this package's explicit contract with the upstream page:
//
//   - every result row carries a node with the "search_name" class,
//   - the game name is the first text node inside that node's second child,
//   - the detail link is the href of that node's grandparent,
//   - the appID is the path segment following "app/" in the detail link.
//
// A layout change upstream breaks exactly this file and must be fixed here,
// not papered over elsewhere. Rows that don't match the shape are skipped
// whole; no partial entries are emitted.
package scraper

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"steam-gamedata/internal/models"
)

// ExtractEntries parses one listing page and returns its catalog entries in
// document order.
func ExtractEntries(r io.Reader, contentType string) ([]models.CatalogEntry, error) {
	buf := new(bytes.Buffer)
	_, _ = io.Copy(buf, r)
	data := buf.Bytes()

	enc, _, _ := charset.DetermineEncoding(data, contentType)
	utf8data, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		// fallback: if already utf-8, continue
		if !utf8.Valid(data) {
			return nil, err
		}
		utf8data = data
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(utf8data))
	if err != nil {
		return nil, err
	}

	var entries []models.CatalogEntry
	doc.Find(".search_name").Each(func(i int, s *goquery.Selection) {
		name := nameFromNode(s.Get(0))
		link, _ := s.Parent().Parent().Attr("href")
		appID := appIDFromLink(link)
		if name == "" || link == "" || appID == "" {
			return
		}
		entries = append(entries, models.CatalogEntry{
			GameName: name,
			AppID:    appID,
			Link:     link,
		})
	})
	return entries, nil
}

// nameFromNode reads the first text node inside the matched node's second
// child. Text nodes count as children here, same as in the page contract.
func nameFromNode(n *html.Node) string {
	if n == nil || n.FirstChild == nil {
		return ""
	}
	second := n.FirstChild.NextSibling
	if second == nil || second.FirstChild == nil {
		return ""
	}
	if second.FirstChild.Type != html.TextNode {
		return ""
	}
	return second.FirstChild.Data
}

// appIDFromLink pulls the path segment after "app/" out of a detail link,
// e.g. ".../app/12210/Grand_Theft_Auto_IV/" -> "12210".
func appIDFromLink(link string) string {
	idx := strings.Index(link, "app/")
	if idx < 0 {
		return ""
	}
	rest := link[idx+len("app/"):]
	if end := strings.IndexByte(rest, '/'); end >= 0 {
		rest = rest[:end]
	}
	return rest
}
