package payment

import (
	"context"
	"math/rand/v2"
	"time"

	"auction-backend/utils"
)

// PaymentGateway charges the winning bidder for an item. Implementations
// report whether the charge succeeded; a nil error with success=false
// means the gateway declined the payment.
type PaymentGateway interface {
	Charge(ctx context.Context, itemID string, amount float64) (bool, error)
}

// SimulatedGateway imitates a remote payment provider: every call waits
// through a network delay and then succeeds with a fixed probability.
type SimulatedGateway struct {
	delay       time.Duration
	successRate float64
}

// NewSimulatedGateway returns the gateway with production defaults:
// ~750ms delay, ~85% success rate.
func NewSimulatedGateway() *SimulatedGateway {
	return &SimulatedGateway{
		delay:       750 * time.Millisecond,
		successRate: 0.85,
	}
}

// Charge blocks for the configured delay and draws the outcome. A
// cancelled context counts as an interrupted wait and fails the charge.
func (g *SimulatedGateway) Charge(ctx context.Context, itemID string, amount float64) (bool, error) {
	utils.Info("simulating payment gateway interaction", map[string]any{
		"item_id": itemID,
		"amount":  amount,
	})

	select {
	case <-time.After(g.delay):
	case <-ctx.Done():
		return false, nil // interrupted wait is a failed payment
	}

	return rand.Float64() < g.successRate, nil
}
