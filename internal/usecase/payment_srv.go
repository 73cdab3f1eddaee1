package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"cinemabook/internal/data/entity"
	"cinemabook/pkg/utils"

	"go.uber.org/zap"
)

// PaymentService charges the grand total during checkout. The shipped
// implementation is a simulator: it waits a configured gateway delay and
// declines a configured fraction of payments.
type PaymentService interface {
	Process(ctx context.Context, amount int, method string) error
}

type simulatedPayment struct {
	delay       time.Duration
	failureRate float64

	mu  sync.Mutex
	rng *rand.Rand

	log *zap.Logger
}

func NewPaymentService(config *utils.Config, log *zap.Logger) PaymentService {
	return &simulatedPayment{
		delay:       time.Duration(config.Payment.DelayMs) * time.Millisecond,
		failureRate: config.Payment.FailureRate,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		log:         log.With(zap.String("service", "payment")),
	}
}

func (s *simulatedPayment) Process(ctx context.Context, amount int, method string) error {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	s.mu.Lock()
	declined := s.rng.Float64() < s.failureRate
	s.mu.Unlock()

	if declined {
		s.log.Warn("Payment declined",
			zap.Int("amount", amount),
			zap.String("method", method),
		)
		return fmt.Errorf("%w: %s payment of %d", entity.ErrPaymentDeclined, method, amount)
	}

	s.log.Info("Payment processed",
		zap.Int("amount", amount),
		zap.String("method", method),
	)
	return nil
}
