package models

// Listing is one property record extracted from a single result card.
//
// No field is guaranteed present: each is independently optional and a
// nil pointer serializes to JSON null. A listing carries no identity
// beyond its field values and is immutable once extracted.
type Listing struct {
	Price   *string `json:"price"`
	Address *string `json:"address"`
	Link    *string `json:"link"`
	Beds    *string `json:"beds"`
	Baths   *string `json:"baths"`
}
