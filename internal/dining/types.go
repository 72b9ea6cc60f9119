package dining

// RestaurantSummary is one entry of the restaurant collection. Summaries are
// immutable once fetched; the whole collection is replaced on each successful
// fetch, never patched in place.
type RestaurantSummary struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	ShortDescription string  `json:"shortDescription"`
	Rating           float64 `json:"rating"`
}

// OpeningHours holds the display strings for weekday and weekend hours.
type OpeningHours struct {
	Weekday string `json:"weekday"`
	Weekend string `json:"weekend"`
}

// RestaurantDetail is the full record for a single restaurant. At most one
// instance is held at a time, matching the current selection.
type RestaurantDetail struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	ShortDescription string       `json:"shortDescription"`
	Cuisine          string       `json:"cuisine"`
	Rating           float64      `json:"rating"`
	Address          string       `json:"address"`
	OpeningHours     OpeningHours `json:"openingHours"`
	ReviewScore      float64      `json:"reviewScore"`
	ContactEmail     string       `json:"contactEmail"`
}

// BookingDraft is the mutable table-booking form state. Date is YYYY-MM-DD,
// Time is HH:MM, both in the restaurant's local time.
type BookingDraft struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Guests int    `json:"guests"`
}

// Empty reports whether the draft has no user input at all.
func (d BookingDraft) Empty() bool {
	return d == BookingDraft{}
}
