package models

import "time"

type OrderStatus string

const (
	OrderPaid OrderStatus = "paid"
)

// Order is the snapshot written when a cart is checked out. Items keep the
// cart contents as they were charged, independent of later cart state.
type Order struct {
	ID         string        `gorm:"primaryKey;size:40" json:"id"`
	BookingRef string        `gorm:"size:16;index" json:"booking_ref"`
	CartID     string        `gorm:"size:64;index" json:"cart_id"`
	Amount     float64       `gorm:"not null" json:"amount"`
	ItemCount  int           `gorm:"not null" json:"item_count"`
	Status     OrderStatus   `gorm:"type:varchar(20);not null" json:"status"`
	PaymentRef string        `gorm:"size:64" json:"payment_ref"`
	Items      []BookingItem `gorm:"serializer:json" json:"items"`
	CreatedAt  time.Time     `json:"created_at"`
}
