package usecase

import (
	"context"
	"fmt"
	"time"

	"cinemabook/internal/data/entity"
	"cinemabook/internal/data/repository"
	"cinemabook/internal/dto/request"
	"cinemabook/internal/dto/response"
	"cinemabook/internal/ticket"
	"cinemabook/pkg/metrics"
	"cinemabook/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	// Checkout finalizes a session into a confirmed, persisted booking.
	Checkout(ctx context.Context, sessionID string, req *request.CheckoutRequest) (*response.BookingResponse, error)
	GetBookings(ctx context.Context) ([]response.BookingResponse, error)
	GetDashboard(ctx context.Context) (*response.DashboardResponse, error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)

	// Ticket renders the booking's QR ticket as PNG bytes.
	Ticket(ctx context.Context, bookingID string) ([]byte, error)
}

type bookingService struct {
	repo     *repository.Repository
	sessions SessionService
	payment  PaymentService
	tickets  *ticket.Generator
	config   *utils.Config
	m        *metrics.Metrics
	log      *zap.Logger
}

func NewBookingService(
	repo *repository.Repository,
	sessions SessionService,
	payment PaymentService,
	tickets *ticket.Generator,
	config *utils.Config,
	m *metrics.Metrics,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		repo:     repo,
		sessions: sessions,
		payment:  payment,
		tickets:  tickets,
		config:   config,
		m:        m,
		log:      log.With(zap.String("service", "booking")),
	}
}

// Checkout runs completeness check, live seat re-verification, payment and
// persistence, in that order. Any failure before the final step leaves the
// session and its selection untouched so the client can retry.
func (s *bookingService) Checkout(ctx context.Context, sessionID string, req *request.CheckoutRequest) (*response.BookingResponse, error) {
	session, err := s.sessions.Session(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !session.Complete() {
		s.m.BookingsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: session %s", entity.ErrIncompleteBooking, sessionID)
	}

	selected := session.Selection.Seats()
	seatIDs := make([]string, len(selected))
	for i, seat := range selected {
		seatIDs[i] = seat.ID

		// Re-check against the live map; another checkout may have taken
		// the seat after it was selected.
		live, err := s.repo.Catalog.Seat(ctx, session.Theater.ID, session.Screen.ID, seat.ID)
		if err != nil {
			s.m.BookingsTotal.WithLabelValues("error").Inc()
			return nil, err
		}
		if live.Status == entity.SeatStatusBooked {
			s.m.BookingsTotal.WithLabelValues("error").Inc()
			return nil, fmt.Errorf("%w: %s", entity.ErrSeatUnavailable, seat.ID)
		}
	}

	grandTotal := session.Selection.GrandTotal(s.config.Pricing.ConvenienceFee)

	if err := s.payment.Process(ctx, grandTotal, req.PaymentMethod); err != nil {
		s.m.BookingsTotal.WithLabelValues("payment_declined").Inc()
		return nil, err
	}

	booking := &entity.Booking{
		ID:          s.uniqueBookingID(ctx),
		MovieID:     session.Movie.ID,
		MovieTitle:  session.Movie.Title,
		TheaterID:   session.Theater.ID,
		TheaterName: session.Theater.Name,
		ScreenID:    session.Screen.ID,
		Showtime:    session.Showtime,
		Date:        session.Date,
		Seats:       snapshotSeats(selected),
		TotalAmount: grandTotal,
		BookingDate: time.Now(),
		Status:      entity.BookingStatusConfirmed,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.m.BookingsTotal.WithLabelValues("store_failed").Inc()
		return nil, fmt.Errorf("%w: %v", entity.ErrPersistenceFailed, err)
	}

	// The record is durable from here on. Marking seats can only fail if a
	// parallel checkout won the same seat between re-check and now; log it,
	// the stored booking stays authoritative.
	if err := s.repo.Catalog.MarkSeatsBooked(ctx, session.Theater.ID, session.Screen.ID, seatIDs); err != nil {
		s.log.Warn("Failed to mark seats booked after checkout",
			zap.Error(err),
			zap.String("booking_id", booking.ID),
		)
	}

	s.sessions.FinishSession(ctx, sessionID)
	s.m.BookingsTotal.WithLabelValues("confirmed").Inc()

	s.log.Info("Booking confirmed",
		zap.String("booking_id", booking.ID),
		zap.String("movie_id", booking.MovieID),
		zap.Strings("seat_ids", seatIDs),
		zap.Int("total_amount", booking.TotalAmount),
	)

	resp := response.NewBookingResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetBookings(ctx context.Context) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return response.NewBookingListResponse(bookings), nil
}

func (s *bookingService) GetDashboard(ctx context.Context) (*response.DashboardResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	dashboard := &response.DashboardResponse{
		Upcoming: []response.BookingResponse{},
		Past:     []response.BookingResponse{},
	}
	for _, booking := range bookings {
		if booking.IsUpcoming(now) {
			dashboard.Upcoming = append(dashboard.Upcoming, response.NewBookingResponse(booking))
		} else {
			dashboard.Past = append(dashboard.Past, response.NewBookingResponse(booking))
		}
	}
	return dashboard, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	resp := response.NewBookingResponse(booking)
	return &resp, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := booking.Cancel(); err != nil {
		return nil, err
	}

	if err := s.repo.Booking.UpdateStatus(ctx, bookingID, entity.BookingStatusCancelled); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrPersistenceFailed, err)
	}

	s.log.Info("Booking cancelled", zap.String("booking_id", bookingID))

	resp := response.NewBookingResponse(booking)
	return &resp, nil
}

func (s *bookingService) Ticket(ctx context.Context, bookingID string) ([]byte, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return s.tickets.Generate(booking)
}

func (s *bookingService) findBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: %s", entity.ErrBookingNotFound, bookingID)
	}
	return booking, nil
}

// uniqueBookingID regenerates on the (rare) collision of the timestamped id.
func (s *bookingService) uniqueBookingID(ctx context.Context) string {
	for {
		id := utils.GenerateBookingID()
		existing, err := s.repo.Booking.FindByID(ctx, id)
		if err != nil || existing == nil {
			return id
		}
	}
}

// snapshotSeats freezes the selection into the stored booking; seats in a
// confirmed booking are booked seats.
func snapshotSeats(selected []entity.Seat) entity.SeatList {
	seats := make(entity.SeatList, len(selected))
	for i, seat := range selected {
		seat.Status = entity.SeatStatusBooked
		seats[i] = seat
	}
	return seats
}
