package usecase

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"cinemabook/internal/data/catalog"
	"cinemabook/internal/data/entity"
	"cinemabook/internal/data/repository"
	"cinemabook/internal/dto/request"
	"cinemabook/pkg/metrics"
	"cinemabook/pkg/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "github.com/uptrace/bun/driver/sqliteshim"
	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		Pricing: utils.PricingConfig{
			PremiumPrice:   300,
			RegularPrice:   200,
			ConvenienceFee: 20,
		},
		Payment: utils.PaymentConfig{
			DelayMs:     0,
			FailureRate: 0,
		},
		Ticket: utils.TicketConfig{
			QRSecret: "test-secret",
		},
	}
}

// newTestRepo builds a repository over an in-memory store and an
// all-available static catalog, except that occupied pre-books A1 on every
// screen when set.
func newTestRepo(t *testing.T, occupied func(row, col int) bool) *repository.Repository {
	t.Helper()

	sqldb, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db := bun.NewDB(sqldb, sqlitedialect.New())
	require.NoError(t, repository.EnsureSchema(context.Background(), db))
	t.Cleanup(func() { db.Close() })

	pricing := entity.SeatPricing{Premium: 300, Regular: 200}
	theaters, err := catalog.Theaters(func(rows, seatsPerRow int) (entity.SeatMap, error) {
		return entity.GenerateSeatMap(rows, seatsPerRow, pricing, occupied)
	})
	require.NoError(t, err)

	return repository.NewRepository(db, catalog.Movies(), theaters, zap.NewNop())
}

func newTestMetrics() *metrics.Metrics {
	return metrics.NewWithRegistry(prometheus.NewRegistry())
}

func newNopLogger() *zap.Logger {
	return zap.NewNop()
}

func newTestService(t *testing.T) (*Service, *repository.Repository) {
	t.Helper()

	repo := newTestRepo(t, nil)
	return NewService(repo, testConfig(), newTestMetrics(), newNopLogger()), repo
}

func startTestSession(t *testing.T, svc *Service) string {
	t.Helper()

	resp, err := svc.Session.StartSession(context.Background(), &request.StartSessionRequest{
		MovieID:   "1",
		TheaterID: "1",
		ScreenID:  "screen1",
		Showtime:  "5:00 PM",
		Date:      "2099-12-31",
	})
	require.NoError(t, err)
	return resp.SessionID
}

// failingBookingRepo simulates a broken store during checkout.
type failingBookingRepo struct{}

func (failingBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	return errors.New("store is down")
}

func (failingBookingRepo) FindByID(ctx context.Context, id string) (*entity.Booking, error) {
	return nil, nil
}

func (failingBookingRepo) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	return nil, errors.New("store is down")
}

func (failingBookingRepo) UpdateStatus(ctx context.Context, id string, status entity.BookingStatus) error {
	return errors.New("store is down")
}

func (failingBookingRepo) CountAll(ctx context.Context) (int64, error) {
	return 0, errors.New("store is down")
}
