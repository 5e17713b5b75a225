package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/umeshpagere/cepl-kumbh-mela/internal/models"
	"github.com/umeshpagere/cepl-kumbh-mela/internal/payment"
	"github.com/umeshpagere/cepl-kumbh-mela/internal/repository"
	"github.com/umeshpagere/cepl-kumbh-mela/pkg/rabbitmq"
)

var (
	ErrInvalidItemType = errors.New("unknown booking type")
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrNegativePrice   = errors.New("price must not be negative")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrEmptyTripPlan   = errors.New("trip plan has no selections")
)

type CartService interface {
	Items(ctx context.Context, cartID string) []models.BookingItem
	Add(ctx context.Context, cartID string, item models.BookingItem) error
	Remove(ctx context.Context, cartID, id string, typ models.BookingType) error
	UpdateQuantity(ctx context.Context, cartID, id string, typ models.BookingType, quantity int) error
	Clear(ctx context.Context, cartID string) error
	TotalAmount(ctx context.Context, cartID string) float64
	TotalCount(ctx context.Context, cartID string) int
	PlanTrip(ctx context.Context, cartID string, items []models.BookingItem) error
	Checkout(ctx context.Context, cartID string) (*models.Order, error)
}

type cartService struct {
	// serializes the read-modify-write on a cart blob within this process;
	// there is no cross-process transaction, last write wins
	mu sync.Mutex

	carts     repository.CartRepository
	orders    repository.OrderRepository
	gateway   payment.Gateway
	publisher *rabbitmq.Publisher
}

func NewCartService(carts repository.CartRepository, orders repository.OrderRepository, gateway payment.Gateway, publisher *rabbitmq.Publisher) CartService {
	return &cartService{
		carts:     carts,
		orders:    orders,
		gateway:   gateway,
		publisher: publisher,
	}
}

// load degrades any storage failure to an empty cart.
func (s *cartService) load(ctx context.Context, cartID string) []models.BookingItem {
	items, err := s.carts.Load(ctx, cartID)
	if err != nil {
		log.Printf("[CartService] read failed for cart %s, treating as empty: %v", cartID, err)
		return nil
	}
	return items
}

// save drops storage failures after logging them. The user re-triggers the
// action; nothing retries automatically.
func (s *cartService) save(ctx context.Context, cartID string, items []models.BookingItem) {
	if err := s.carts.Save(ctx, cartID, items); err != nil {
		log.Printf("[CartService] write failed for cart %s, dropping update: %v", cartID, err)
	}
}

func (s *cartService) Items(ctx context.Context, cartID string) []models.BookingItem {
	return s.load(ctx, cartID)
}

// Add appends the item stamped with the current time, or, when an entry with
// the same (id, type) already exists, merges by summing quantities.
func (s *cartService) Add(ctx context.Context, cartID string, item models.BookingItem) error {
	if !item.Type.Valid() {
		return ErrInvalidItemType
	}
	if item.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if item.Price < 0 {
		return ErrNegativePrice
	}

	s.mu.Lock()
	items := s.load(ctx, cartID)

	merged := false
	for i := range items {
		if items[i].SameKey(item.ID, item.Type) {
			items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		item.AddedAt = time.Now().UTC()
		items = append(items, item)
	}

	s.save(ctx, cartID, items)
	s.mu.Unlock()

	s.notify("cart.item_added", cartID, addedMessage(item.Type), item.Name)
	return nil
}

func (s *cartService) Remove(ctx context.Context, cartID, id string, typ models.BookingType) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(ctx, cartID)
	kept := items[:0]
	for _, item := range items {
		if !item.SameKey(id, typ) {
			kept = append(kept, item)
		}
	}
	s.save(ctx, cartID, kept)
	return nil
}

// UpdateQuantity sets the quantity outright. Zero or less removes the entry;
// an absent key is a no-op.
func (s *cartService) UpdateQuantity(ctx context.Context, cartID, id string, typ models.BookingType, quantity int) error {
	if quantity <= 0 {
		return s.Remove(ctx, cartID, id, typ)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(ctx, cartID)
	for i := range items {
		if items[i].SameKey(id, typ) {
			items[i].Quantity = quantity
			s.save(ctx, cartID, items)
			return nil
		}
	}
	return nil
}

func (s *cartService) Clear(ctx context.Context, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.carts.Delete(ctx, cartID); err != nil {
		log.Printf("[CartService] clear failed for cart %s, dropping update: %v", cartID, err)
	}
	return nil
}

func (s *cartService) TotalAmount(ctx context.Context, cartID string) float64 {
	return models.TotalAmount(s.load(ctx, cartID))
}

func (s *cartService) TotalCount(ctx context.Context, cartID string) int {
	return models.TotalCount(s.load(ctx, cartID))
}

// PlanTrip commits a wizard plan as sequential adds. Each add is a complete
// top-level operation; store calls are never nested inside one another.
func (s *cartService) PlanTrip(ctx context.Context, cartID string, items []models.BookingItem) error {
	if len(items) == 0 {
		return ErrEmptyTripPlan
	}
	for _, item := range items {
		if err := s.Add(ctx, cartID, item); err != nil {
			return fmt.Errorf("add %s %q: %w", item.Type, item.Name, err)
		}
	}
	return nil
}

// Checkout charges the cart total and, only after the charge and the order
// record both succeed, clears the cart. A failed charge leaves the cart
// exactly as it was.
func (s *cartService) Checkout(ctx context.Context, cartID string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(ctx, cartID)
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	amount := models.TotalAmount(items)
	paymentRef, err := s.gateway.Charge(ctx, amount, "Trip Booking Payment")
	if err != nil {
		return nil, fmt.Errorf("charge cart %s: %w", cartID, err)
	}

	order := &models.Order{
		ID:         uuid.NewString(),
		BookingRef: fmt.Sprintf("KUMBH%08d", time.Now().UnixMilli()%100000000),
		CartID:     cartID,
		Amount:     amount,
		ItemCount:  models.TotalCount(items),
		Status:     models.OrderPaid,
		PaymentRef: paymentRef,
		Items:      items,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("record order for cart %s: %w", cartID, err)
	}

	if err := s.carts.Delete(ctx, cartID); err != nil {
		log.Printf("[CartService] clear after checkout failed for cart %s: %v", cartID, err)
	}

	s.notify("cart.checked_out", cartID, "Payment Successful!", order.BookingRef)
	return order, nil
}

type cartNotification struct {
	CartID  string `json:"cart_id"`
	Message string `json:"message"`
	Subject string `json:"subject,omitempty"`
}

// notify is fire-and-forget: a missing broker or a failed publish only costs
// the toast, never the operation.
func (s *cartService) notify(routingKey, cartID, message, subject string) {
	if s.publisher == nil {
		return
	}
	_ = s.publisher.Publish(routingKey, cartNotification{
		CartID:  cartID,
		Message: message,
		Subject: subject,
	})
}

func addedMessage(typ models.BookingType) string {
	if typ == models.TypeAarti {
		return "Aarti Booked!"
	}
	return "Added to Cart!"
}
