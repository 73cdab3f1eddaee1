package repository

import (
	"context"
	"testing"

	"cinemabook/internal/data/catalog"
	"cinemabook/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupCatalog(t *testing.T) CatalogRepository {
	t.Helper()

	theaters, err := catalog.Theaters(func(rows, seatsPerRow int) (entity.SeatMap, error) {
		return entity.GenerateSeatMap(rows, seatsPerRow, entity.SeatPricing{Premium: 300, Regular: 200}, nil)
	})
	require.NoError(t, err)

	return NewMemoryCatalog(catalog.Movies(), theaters, zap.NewNop())
}

func TestMemoryCatalogLookups(t *testing.T) {
	repo := setupCatalog(t)
	ctx := context.Background()

	movies, err := repo.Movies(ctx)
	require.NoError(t, err)
	assert.Len(t, movies, 6)

	movie, err := repo.MovieByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Avengers: Endgame", movie.Title)

	_, err = repo.MovieByID(ctx, "999")
	assert.ErrorIs(t, err, entity.ErrMovieNotFound)

	theaters, err := repo.Theaters(ctx)
	require.NoError(t, err)
	assert.Len(t, theaters, 3)

	_, err = repo.TheaterByID(ctx, "999")
	assert.ErrorIs(t, err, entity.ErrTheaterNotFound)

	_, err = repo.Screen(ctx, "1", "no-such-screen")
	assert.ErrorIs(t, err, entity.ErrScreenNotFound)
}

func TestMemoryCatalogScreenSnapshot(t *testing.T) {
	repo := setupCatalog(t)
	ctx := context.Background()

	screen, err := repo.Screen(ctx, "1", "screen1")
	require.NoError(t, err)
	assert.Equal(t, 120, screen.TotalSeats)

	// The snapshot is detached from the live map
	require.NoError(t, repo.MarkSeatsBooked(ctx, "1", "screen1", []string{"A1"}))
	seat, ok := screen.SeatMap.FindSeat("A1")
	require.True(t, ok)
	assert.Equal(t, entity.SeatStatusAvailable, seat.Status)

	live, err := repo.Seat(ctx, "1", "screen1", "A1")
	require.NoError(t, err)
	assert.Equal(t, entity.SeatStatusBooked, live.Status)
}

func TestMemoryCatalogMarkSeatsBooked(t *testing.T) {
	repo := setupCatalog(t)
	ctx := context.Background()

	require.NoError(t, repo.MarkSeatsBooked(ctx, "1", "screen1", []string{"A1", "B2"}))

	err := repo.MarkSeatsBooked(ctx, "1", "screen1", []string{"A1"})
	assert.ErrorIs(t, err, entity.ErrSeatUnavailable)

	err = repo.MarkSeatsBooked(ctx, "1", "screen1", []string{"Z99"})
	assert.ErrorIs(t, err, entity.ErrSeatNotFound)
}
