package membership

import (
	"context"
	"errors"
	"time"
)

// ErrPaymentDeclined is returned by a gateway when the charge is refused.
var ErrPaymentDeclined = errors.New("payment declined")

// SimulatedGateway stands in for a real payment processor. It waits for a
// configured latency (cancelable through ctx) and approves every charge with
// a positive amount.
type SimulatedGateway struct {
	Latency time.Duration
}

func NewSimulatedGateway(latency time.Duration) *SimulatedGateway {
	return &SimulatedGateway{Latency: latency}
}

func (g *SimulatedGateway) Charge(ctx context.Context, userID string, amount float64, description string) error {
	if amount <= 0 {
		return ErrPaymentDeclined
	}
	if g.Latency > 0 {
		select {
		case <-time.After(g.Latency):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
