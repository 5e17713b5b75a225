package payment

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidAmount = errors.New("charge amount must be positive")

// Gateway charges a total and returns the provider's payment reference.
type Gateway interface {
	Charge(ctx context.Context, amount float64, note string) (string, error)
}

// simulatedGateway stands in for the hosted checkout widget. Every valid
// charge succeeds and yields a fresh payment reference.
type simulatedGateway struct{}

func NewSimulatedGateway() Gateway {
	return simulatedGateway{}
}

func (simulatedGateway) Charge(ctx context.Context, amount float64, note string) (string, error) {
	if amount <= 0 {
		return "", ErrInvalidAmount
	}
	return "pay_" + uuid.NewString(), nil
}
