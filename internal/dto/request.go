package dto

import (
	"fmt"

	"github.com/umeshpagere/cepl-kumbh-mela/internal/models"
)

type SearchTrainsRequest struct {
	FromStation string `json:"fromStation"`
	ToStation   string `json:"toStation"`
	Date        string `json:"date"`
}

type StationLookupRequest struct {
	StationName string `json:"stationName"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type TransportSelection struct {
	ID        string  `json:"id"`
	Mode      string  `json:"mode"`
	Name      string  `json:"name"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Departure string  `json:"departure"`
	Arrival   string  `json:"arrival"`
	Duration  string  `json:"duration"`
	Price     float64 `json:"price"`
}

type AccommodationSelection struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Distance string  `json:"distance"`
	Rating   string  `json:"rating"`
	Price    float64 `json:"price"`
}

// TripPlanRequest carries the wizard's selections. Any subset may be set;
// an entirely empty plan is rejected by the service.
type TripPlanRequest struct {
	Departure     *TransportSelection     `json:"departure,omitempty"`
	Accommodation *AccommodationSelection `json:"accommodation,omitempty"`
	Return        *TransportSelection     `json:"return,omitempty"`
}

func (s *TransportSelection) toItem(direction string) models.BookingItem {
	name := s.Name
	if name == "" {
		name = fmt.Sprintf("%s to %s", s.From, s.To)
	}
	return models.BookingItem{
		ID:       s.ID,
		Type:     models.TypeTransport,
		Category: fmt.Sprintf("%s_%s", direction, s.Mode),
		Name:     name,
		Price:    s.Price,
		Quantity: 1,
		Details: models.BookingDetails{Transport: &models.TransportDetails{
			Mode:      s.Mode,
			From:      s.From,
			To:        s.To,
			Departure: s.Departure,
			Arrival:   s.Arrival,
			Duration:  s.Duration,
		}},
	}
}

func (s *AccommodationSelection) toItem() models.BookingItem {
	category := s.Category
	if category == "" {
		category = "hotel"
	}
	return models.BookingItem{
		ID:       s.ID,
		Type:     models.TypeAccommodation,
		Category: category,
		Name:     s.Name,
		Price:    s.Price,
		Quantity: 1,
		Details: models.BookingDetails{Accommodation: &models.AccommodationDetails{
			Location: s.Location,
			Distance: s.Distance,
			Rating:   s.Rating,
		}},
	}
}

// Items expands the plan into cart entries in wizard order: departure,
// accommodation, return.
func (r TripPlanRequest) Items() []models.BookingItem {
	var items []models.BookingItem
	if r.Departure != nil {
		items = append(items, r.Departure.toItem("departure"))
	}
	if r.Accommodation != nil {
		items = append(items, r.Accommodation.toItem())
	}
	if r.Return != nil {
		items = append(items, r.Return.toItem("return"))
	}
	return items
}

type AartiReminderRequest struct {
	Name         string `json:"name"`
	Location     string `json:"location"`
	Time         string `json:"time"`
	Duration     string `json:"duration"`
	Significance string `json:"significance"`
}
