package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type BookingType string

const (
	TypeTransport     BookingType = "transport"
	TypeAccommodation BookingType = "accommodation"
	TypeAarti         BookingType = "aarti"
)

func (t BookingType) Valid() bool {
	switch t {
	case TypeTransport, TypeAccommodation, TypeAarti:
		return true
	}
	return false
}

type TransportDetails struct {
	Mode      string `json:"mode,omitempty"`
	From      string `json:"from"`
	To        string `json:"to"`
	Departure string `json:"departure,omitempty"`
	Arrival   string `json:"arrival,omitempty"`
	Duration  string `json:"duration,omitempty"`
}

type AccommodationDetails struct {
	Location string `json:"location"`
	Distance string `json:"distance"`
	Rating   string `json:"rating,omitempty"`
}

type AartiDetails struct {
	Location     string `json:"location"`
	Time         string `json:"time"`
	Duration     string `json:"duration,omitempty"`
	Significance string `json:"significance,omitempty"`
}

// BookingDetails is a tagged union resolved by the owning item's Type.
// Exactly one variant is set; the cart never inspects it, only display
// formatting does.
type BookingDetails struct {
	Transport     *TransportDetails
	Accommodation *AccommodationDetails
	Aarti         *AartiDetails
}

// BookingItem is one line in a pilgrim's cart. Identity is the (ID, Type)
// pair: an ID alone is not unique across offering types.
type BookingItem struct {
	ID       string
	Type     BookingType
	Category string
	Name     string
	Price    float64
	Details  BookingDetails
	Quantity int
	AddedAt  time.Time
}

// SameKey reports whether the item is addressed by the given identity pair.
func (b BookingItem) SameKey(id string, typ BookingType) bool {
	return b.ID == id && b.Type == typ
}

func (b BookingItem) Subtotal() float64 {
	return b.Price * float64(b.Quantity)
}

// TotalAmount sums price times quantity over all items.
func TotalAmount(items []BookingItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}

// TotalCount sums quantities, so a quantity-3 entry counts as 3.
func TotalCount(items []BookingItem) int {
	var count int
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

// DisplayDetails renders the one-line summary shown under a cart entry.
func (b BookingItem) DisplayDetails() string {
	switch b.Type {
	case TypeTransport:
		if d := b.Details.Transport; d != nil {
			return fmt.Sprintf("%s → %s • %s", d.From, d.To, d.Departure)
		}
	case TypeAccommodation:
		if d := b.Details.Accommodation; d != nil {
			return fmt.Sprintf("%s • %s from Ramkund", d.Location, d.Distance)
		}
	case TypeAarti:
		if d := b.Details.Aarti; d != nil {
			return fmt.Sprintf("%s • %s", d.Location, d.Time)
		}
	}
	return "Booking details"
}

type bookingItemJSON struct {
	ID       string          `json:"id"`
	Type     BookingType     `json:"type"`
	Category string          `json:"category"`
	Name     string          `json:"name"`
	Price    float64         `json:"price"`
	Details  json.RawMessage `json:"details"`
	Quantity int             `json:"quantity"`
	AddedAt  time.Time       `json:"addedAt"`
}

func (b BookingItem) MarshalJSON() ([]byte, error) {
	var details any
	switch b.Type {
	case TypeTransport:
		if b.Details.Transport != nil {
			details = b.Details.Transport
		}
	case TypeAccommodation:
		if b.Details.Accommodation != nil {
			details = b.Details.Accommodation
		}
	case TypeAarti:
		if b.Details.Aarti != nil {
			details = b.Details.Aarti
		}
	}
	if details == nil {
		details = struct{}{}
	}

	raw, err := json.Marshal(details)
	if err != nil {
		return nil, err
	}

	return json.Marshal(bookingItemJSON{
		ID:       b.ID,
		Type:     b.Type,
		Category: b.Category,
		Name:     b.Name,
		Price:    b.Price,
		Details:  raw,
		Quantity: b.Quantity,
		AddedAt:  b.AddedAt,
	})
}

func (b *BookingItem) UnmarshalJSON(data []byte) error {
	var aux bookingItemJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if !aux.Type.Valid() {
		return fmt.Errorf("unknown booking type %q", aux.Type)
	}

	item := BookingItem{
		ID:       aux.ID,
		Type:     aux.Type,
		Category: aux.Category,
		Name:     aux.Name,
		Price:    aux.Price,
		Quantity: aux.Quantity,
		AddedAt:  aux.AddedAt,
	}

	if len(aux.Details) > 0 && string(aux.Details) != "null" {
		switch aux.Type {
		case TypeTransport:
			var d TransportDetails
			if err := json.Unmarshal(aux.Details, &d); err != nil {
				return fmt.Errorf("transport details: %w", err)
			}
			item.Details.Transport = &d
		case TypeAccommodation:
			var d AccommodationDetails
			if err := json.Unmarshal(aux.Details, &d); err != nil {
				return fmt.Errorf("accommodation details: %w", err)
			}
			item.Details.Accommodation = &d
		case TypeAarti:
			var d AartiDetails
			if err := json.Unmarshal(aux.Details, &d); err != nil {
				return fmt.Errorf("aarti details: %w", err)
			}
			item.Details.Aarti = &d
		}
	}

	*b = item
	return nil
}
