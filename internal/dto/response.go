package dto

import (
	"time"

	"github.com/umeshpagere/cepl-kumbh-mela/internal/models"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// TrainResult is the wire projection of a timetable row. Station codes and
// running days stay internal.
type TrainResult struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	From         string  `json:"from"`
	To           string  `json:"to"`
	Departure    string  `json:"departure"`
	Arrival      string  `json:"arrival"`
	Duration     string  `json:"duration"`
	Price        float64 `json:"price"`
	Availability string  `json:"availability"`
	Class        string  `json:"class"`
}

type TrainSearchResponse struct {
	Trains []TrainResult `json:"trains"`
}

type StationLookupResponse struct {
	Stations []models.Station `json:"stations"`
}

func ToTrainResult(t models.Train) TrainResult {
	return TrainResult{
		ID:           t.Number,
		Name:         t.Name,
		From:         t.From,
		To:           t.To,
		Departure:    t.Departure,
		Arrival:      t.Arrival,
		Duration:     t.Duration,
		Price:        t.Price,
		Availability: t.Availability,
		Class:        t.Class,
	}
}

func ToTrainSearchResponse(trains []models.Train) TrainSearchResponse {
	results := make([]TrainResult, len(trains))
	for i, t := range trains {
		results[i] = ToTrainResult(t)
	}
	return TrainSearchResponse{Trains: results}
}

func ToStationLookupResponse(stations []models.Station) StationLookupResponse {
	if stations == nil {
		stations = []models.Station{}
	}
	return StationLookupResponse{Stations: stations}
}

type CartItemResponse struct {
	Item     models.BookingItem `json:"item"`
	Summary  string             `json:"summary"`
	Subtotal float64            `json:"subtotal"`
}

type CartResponse struct {
	Items       []CartItemResponse `json:"items"`
	TotalAmount float64            `json:"total_amount"`
	TotalCount  int                `json:"total_count"`
}

func ToCartResponse(items []models.BookingItem) CartResponse {
	lines := make([]CartItemResponse, len(items))
	for i, item := range items {
		lines[i] = CartItemResponse{
			Item:     item,
			Summary:  item.DisplayDetails(),
			Subtotal: item.Subtotal(),
		}
	}
	return CartResponse{
		Items:       lines,
		TotalAmount: models.TotalAmount(items),
		TotalCount:  models.TotalCount(items),
	}
}

type OrderResponse struct {
	OrderID    string             `json:"order_id"`
	BookingRef string             `json:"booking_ref"`
	Amount     float64            `json:"amount"`
	ItemCount  int                `json:"item_count"`
	Status     models.OrderStatus `json:"status"`
	PaymentRef string             `json:"payment_ref"`
	CreatedAt  time.Time          `json:"created_at"`
}

func ToOrderResponse(o *models.Order) OrderResponse {
	return OrderResponse{
		OrderID:    o.ID,
		BookingRef: o.BookingRef,
		Amount:     o.Amount,
		ItemCount:  o.ItemCount,
		Status:     o.Status,
		PaymentRef: o.PaymentRef,
		CreatedAt:  o.CreatedAt,
	}
}

type ReminderResponse struct {
	URL string `json:"url"`
}
