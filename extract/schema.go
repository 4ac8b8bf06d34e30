package extract

import "github.com/PuerkitoBio/goquery"

// FieldKind names one extractable listing field.
type FieldKind string

const (
	FieldPrice   FieldKind = "price"
	FieldAddress FieldKind = "address"
	FieldLink    FieldKind = "link"
	FieldBeds    FieldKind = "beds"
	FieldBaths   FieldKind = "baths"
)

// Schema isolates the target site's markup knowledge. All selector
// literals live in one Schema implementation, so a site redesign means
// swapping one component rather than chasing selectors across packages.
type Schema interface {
	// FindCards returns every property-card container in document order.
	FindCards(doc *goquery.Document) []*goquery.Selection

	// ExtractField reads one field from a card. The second return is
	// false when the card simply lacks that field; that is a legitimate
	// terminal state, not an error.
	ExtractField(card *goquery.Selection, field FieldKind) (string, bool)
}

// CardSchema is the markup-v1 schema for the target listing site. Cards
// are recognised by a class-name substring, price and address by tagged
// child elements, and beds/baths by position in the card's details list.
type CardSchema struct{}

func (CardSchema) FindCards(doc *goquery.Document) []*goquery.Selection {
	var cards []*goquery.Selection
	doc.Find(cardSelector).Each(func(_ int, sel *goquery.Selection) {
		// Some markup versions prefix child classes with the card class
		// (property-card-price and the like); only the outermost
		// container is one card.
		if sel.ParentsFiltered(cardSelector).Length() > 0 {
			return
		}
		cards = append(cards, sel)
	})
	return cards
}

const cardSelector = `[class*="property-card"]`

func (CardSchema) ExtractField(card *goquery.Selection, field FieldKind) (string, bool) {
	switch field {
	case FieldPrice:
		return textOf(card.Find(`[class*="price"]`))
	case FieldAddress:
		return textOf(card.Find(`[class*="address"]`))
	case FieldLink:
		href, exists := card.Find("a[href]").First().Attr("href")
		if !exists || href == "" {
			return "", false
		}
		return href, true
	case FieldBeds:
		return textOf(card.Find(`[class*="details"] li`).Eq(0))
	case FieldBaths:
		return textOf(card.Find(`[class*="details"] li`).Eq(1))
	default:
		return "", false
	}
}

// textOf returns the trimmed text of the selection's first node, and
// whether a non-empty value was present.
func textOf(sel *goquery.Selection) (string, bool) {
	if sel.Length() == 0 {
		return "", false
	}
	text := trimmed(sel.First().Text())
	if text == "" {
		return "", false
	}
	return text, true
}
