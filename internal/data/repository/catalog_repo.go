package repository

import (
	"context"
	"fmt"
	"sync"

	"cinemabook/internal/data/entity"

	"go.uber.org/zap"
)

// CatalogRepository serves the read-only movie/theater catalog and owns the
// live per-screen seat availability. Movie and theater metadata never
// change; only seat status inside a screen's map does, and every access to
// it goes through this repository's lock.
type CatalogRepository interface {
	Movies(ctx context.Context) ([]*entity.Movie, error)
	MovieByID(ctx context.Context, movieID string) (*entity.Movie, error)
	Theaters(ctx context.Context) ([]*entity.Theater, error)
	TheaterByID(ctx context.Context, theaterID string) (*entity.Theater, error)

	// Screen returns the screen with a snapshot copy of its seat map.
	Screen(ctx context.Context, theaterID, screenID string) (*entity.Screen, error)

	// Seat returns the current state of one seat.
	Seat(ctx context.Context, theaterID, screenID, seatID string) (entity.Seat, error)

	// MarkSeatsBooked transitions seats to booked; fails if any seat is
	// missing or already booked.
	MarkSeatsBooked(ctx context.Context, theaterID, screenID string, seatIDs []string) error
}

type memoryCatalog struct {
	mu       sync.RWMutex
	movies   []*entity.Movie
	theaters []*entity.Theater
	log      *zap.Logger
}

func NewMemoryCatalog(movies []*entity.Movie, theaters []*entity.Theater, log *zap.Logger) CatalogRepository {
	return &memoryCatalog{
		movies:   movies,
		theaters: theaters,
		log:      log.With(zap.String("repository", "catalog")),
	}
}

func (r *memoryCatalog) Movies(ctx context.Context) ([]*entity.Movie, error) {
	movies := make([]*entity.Movie, len(r.movies))
	copy(movies, r.movies)
	return movies, nil
}

func (r *memoryCatalog) MovieByID(ctx context.Context, movieID string) (*entity.Movie, error) {
	for _, movie := range r.movies {
		if movie.ID == movieID {
			return movie, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", entity.ErrMovieNotFound, movieID)
}

func (r *memoryCatalog) Theaters(ctx context.Context) ([]*entity.Theater, error) {
	theaters := make([]*entity.Theater, len(r.theaters))
	copy(theaters, r.theaters)
	return theaters, nil
}

func (r *memoryCatalog) TheaterByID(ctx context.Context, theaterID string) (*entity.Theater, error) {
	for _, theater := range r.theaters {
		if theater.ID == theaterID {
			return theater, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", entity.ErrTheaterNotFound, theaterID)
}

func (r *memoryCatalog) Screen(ctx context.Context, theaterID, screenID string) (*entity.Screen, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	screen, err := r.screenLocked(theaterID, screenID)
	if err != nil {
		return nil, err
	}

	snapshot := *screen
	snapshot.SeatMap = screen.SeatMap.Clone()
	return &snapshot, nil
}

func (r *memoryCatalog) Seat(ctx context.Context, theaterID, screenID, seatID string) (entity.Seat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	screen, err := r.screenLocked(theaterID, screenID)
	if err != nil {
		return entity.Seat{}, err
	}

	seat, ok := screen.SeatMap.FindSeat(seatID)
	if !ok {
		return entity.Seat{}, fmt.Errorf("%w: %s", entity.ErrSeatNotFound, seatID)
	}
	return seat, nil
}

func (r *memoryCatalog) MarkSeatsBooked(ctx context.Context, theaterID, screenID string, seatIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	screen, err := r.screenLocked(theaterID, screenID)
	if err != nil {
		return err
	}

	if err := screen.SeatMap.MarkBooked(seatIDs); err != nil {
		r.log.Warn("Failed to mark seats booked",
			zap.Error(err),
			zap.String("theater_id", theaterID),
			zap.String("screen_id", screenID),
			zap.Strings("seat_ids", seatIDs),
		)
		return err
	}

	return nil
}

// screenLocked must be called with r.mu held.
func (r *memoryCatalog) screenLocked(theaterID, screenID string) (*entity.Screen, error) {
	for _, theater := range r.theaters {
		if theater.ID != theaterID {
			continue
		}
		if screen := theater.ScreenByID(screenID); screen != nil {
			return screen, nil
		}
		return nil, fmt.Errorf("%w: %s", entity.ErrScreenNotFound, screenID)
	}
	return nil, fmt.Errorf("%w: %s", entity.ErrTheaterNotFound, theaterID)
}
