package fixture

import "github.com/example/table-booker/internal/dining"

func (s *Server) seed() {
	add := func(id, name, desc, cuisine string, rating float64, address, weekday, weekend string, review float64, email string) {
		d := detailPayload{
			ID:               id,
			Name:             name,
			ShortDescription: desc,
			Cuisine:          cuisine,
			Rating:           rating,
		}
		d.Details.Address = address
		d.Details.OpeningHours = dining.OpeningHours{Weekday: weekday, Weekend: weekend}
		d.Details.ReviewScore = review
		d.Details.ContactEmail = email
		s.details[id] = d
		s.order = append(s.order, id)
	}

	add("1", "Restaurant A", "Modern European tasting menus", "European", 4.5,
		"12 Harbour Lane", "11:00-22:00", "10:00-23:00", 9.1, "hello@restaurant-a.example")
	add("2", "Restaurant B", "Wood-fired pizza and small plates", "Italian", 4.0,
		"3 Market Square", "12:00-22:30", "12:00-23:30", 8.4, "book@restaurant-b.example")
	add("3", "Cafe C", "All-day brunch and filter coffee", "Cafe", 3.0,
		"87 Mill Street", "08:00-17:00", "09:00-16:00", 7.2, "team@cafe-c.example")
}
