package services

import (
	"context"
	"time"

	"github.com/DELMUS1M/SPARKLY-STORE/models"
)

// PaymentSimulator is the external payment collaborator. Every call succeeds
// after an artificial delay; there is no real network traffic and no failure
// branch.
type PaymentSimulator interface {
	// SendPush simulates pushing a payment request to the given phone.
	SendPush(ctx context.Context, phone string) error
	// ConfirmPush simulates the customer entering their PIN.
	ConfirmPush(ctx context.Context) error
	// Charge simulates a single-phase payment with the given method.
	Charge(ctx context.Context, method models.PaymentMethod) error
}

// DelaySimulator implements PaymentSimulator with fixed latencies.
type DelaySimulator struct {
	PushDelay    time.Duration
	ConfirmDelay time.Duration
	ChargeDelay  time.Duration
}

func NewDelaySimulator(push, confirm, charge time.Duration) *DelaySimulator {
	return &DelaySimulator{
		PushDelay:    push,
		ConfirmDelay: confirm,
		ChargeDelay:  charge,
	}
}

func (s *DelaySimulator) SendPush(ctx context.Context, phone string) error {
	return wait(ctx, s.PushDelay)
}

func (s *DelaySimulator) ConfirmPush(ctx context.Context) error {
	return wait(ctx, s.ConfirmDelay)
}

func (s *DelaySimulator) Charge(ctx context.Context, method models.PaymentMethod) error {
	return wait(ctx, s.ChargeDelay)
}

func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
