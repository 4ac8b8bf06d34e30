// Package extract turns rendered listing-page markup into structured
// records. It is purely a read of DOM state: no navigation, no waiting.
package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/listhound/listhound/models"
)

// Extractor parses rendered markup into listings using a Schema.
type Extractor struct {
	schema Schema
}

// NewExtractor creates an Extractor over the given page schema.
func NewExtractor(schema Schema) *Extractor {
	return &Extractor{schema: schema}
}

// ExtractPage parses html and returns one listing per property card, in
// document order. Every card yields exactly one record: a card with no
// extractable fields still produces an all-absent listing, preserving
// the 1:1 correspondence between DOM cards and output records. Links
// are resolved absolute against baseURL.
func (e *Extractor) ExtractPage(html, baseURL string) []models.Listing {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	base, baseErr := url.Parse(baseURL)

	cards := e.schema.FindCards(doc)
	listings := make([]models.Listing, 0, len(cards))
	for _, card := range cards {
		l := models.Listing{
			Price:   e.field(card, FieldPrice),
			Address: e.field(card, FieldAddress),
			Beds:    e.field(card, FieldBeds),
			Baths:   e.field(card, FieldBaths),
		}

		if href, ok := e.schema.ExtractField(card, FieldLink); ok {
			abs := href
			if baseErr == nil && base != nil {
				if resolved, err := base.Parse(href); err == nil {
					abs = resolved.String()
				}
			}
			l.Link = &abs
		}

		listings = append(listings, l)
	}
	return listings
}

// field reads one optional text field from a card, nil when absent.
func (e *Extractor) field(card *goquery.Selection, kind FieldKind) *string {
	v, ok := e.schema.ExtractField(card, kind)
	if !ok {
		return nil
	}
	return &v
}

// trimmed collapses the whitespace noise goquery text extraction keeps
// from the source markup.
func trimmed(s string) string {
	return strings.TrimSpace(s)
}
