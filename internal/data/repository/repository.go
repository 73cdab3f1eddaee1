package repository

import (
	"context"
	"fmt"

	"cinemabook/internal/data/entity"

	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

type Repository struct {
	Catalog CatalogRepository
	Booking BookingRepository
}

func NewRepository(db *bun.DB, movies []*entity.Movie, theaters []*entity.Theater, log *zap.Logger) *Repository {
	return &Repository{
		Catalog: NewMemoryCatalog(movies, theaters, log),
		Booking: NewBookingRepository(db, log),
	}
}

// EnsureSchema creates the bookings table if it does not exist yet. The
// store is a single table, so there is no migration tooling around it.
func EnsureSchema(ctx context.Context, db *bun.DB) error {
	if _, err := db.NewCreateTable().
		Model((*entity.Booking)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("create bookings table: %w", err)
	}
	return nil
}
