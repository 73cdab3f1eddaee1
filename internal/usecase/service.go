package usecase

import (
	"cinemabook/internal/data/repository"
	"cinemabook/internal/ticket"
	"cinemabook/pkg/metrics"
	"cinemabook/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Catalog CatalogService
	Session SessionService
	Payment PaymentService
	Booking BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, m *metrics.Metrics, log *zap.Logger) *Service {
	sessions := NewSessionService(repo, config, m, log)
	payment := NewPaymentService(config, log)
	tickets := ticket.NewGenerator(config.Ticket.QRSecret)

	return &Service{
		Catalog: NewCatalogService(repo, log),
		Session: sessions,
		Payment: payment,
		Booking: NewBookingService(repo, sessions, payment, tickets, config, m, log),
	}
}
