package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cinemabook/internal/data/entity"

	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// BookingRepository is the durable store for booking records. Records are
// appended on checkout and read back whole; only the status column is ever
// updated afterwards.
type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id string) (*entity.Booking, error)
	FindAll(ctx context.Context) ([]*entity.Booking, error)
	UpdateStatus(ctx context.Context, id string, status entity.BookingStatus) error
	CountAll(ctx context.Context) (int64, error)
}

type bookingRepository struct {
	db  *bun.DB
	log *zap.Logger
}

func NewBookingRepository(db *bun.DB, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	if _, err := r.db.NewInsert().
		Model(booking).
		Exec(ctx); err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID, err)
	}
	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id string) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.db.NewSelect().
		Model(&booking).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id, err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	err := r.db.NewSelect().
		Model(&bookings).
		Order("booking_date DESC").
		Scan(ctx)
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id string, status entity.BookingStatus) error {
	res, err := r.db.NewUpdate().
		Model((*entity.Booking)(nil)).
		Set("status = ?", status).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status: %w", id, err)
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return fmt.Errorf("%w: %s", entity.ErrBookingNotFound, id)
	}
	return nil
}

func (r *bookingRepository) CountAll(ctx context.Context) (int64, error) {
	count, err := r.db.NewSelect().
		Model((*entity.Booking)(nil)).
		Count(ctx)
	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return int64(count), nil
}
