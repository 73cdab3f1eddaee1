package usecase

import (
	"context"
	"strings"

	"cinemabook/internal/data/entity"
	"cinemabook/internal/data/repository"
	"cinemabook/internal/dto/response"

	"go.uber.org/zap"
)

type CatalogService interface {
	// GetMovies lists movies, optionally filtered by status ("playing",
	// "upcoming") and a free-text query over title, genre, cast and director.
	GetMovies(ctx context.Context, status, query string) ([]response.MovieResponse, error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error)
	GetTheaters(ctx context.Context) ([]response.TheaterResponse, error)
	GetTheaterByID(ctx context.Context, theaterID string) (*response.TheaterResponse, error)
	GetSeatMap(ctx context.Context, theaterID, screenID string) (*response.SeatMapResponse, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) GetMovies(ctx context.Context, status, query string) ([]response.MovieResponse, error) {
	movies, err := s.repo.Catalog.Movies(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*entity.Movie, 0, len(movies))
	for _, movie := range movies {
		if status != "" && string(movie.Status) != status {
			continue
		}
		if query != "" && !matchesQuery(movie, query) {
			continue
		}
		filtered = append(filtered, movie)
	}

	return response.NewMovieListResponse(filtered), nil
}

func (s *catalogService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	movie, err := s.repo.Catalog.MovieByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	resp := response.NewMovieResponse(movie)
	return &resp, nil
}

func (s *catalogService) GetTheaters(ctx context.Context) ([]response.TheaterResponse, error) {
	theaters, err := s.repo.Catalog.Theaters(ctx)
	if err != nil {
		return nil, err
	}
	return response.NewTheaterListResponse(theaters), nil
}

func (s *catalogService) GetTheaterByID(ctx context.Context, theaterID string) (*response.TheaterResponse, error) {
	theater, err := s.repo.Catalog.TheaterByID(ctx, theaterID)
	if err != nil {
		return nil, err
	}
	resp := response.NewTheaterResponse(theater)
	return &resp, nil
}

func (s *catalogService) GetSeatMap(ctx context.Context, theaterID, screenID string) (*response.SeatMapResponse, error) {
	screen, err := s.repo.Catalog.Screen(ctx, theaterID, screenID)
	if err != nil {
		return nil, err
	}
	resp := response.NewSeatMapResponse(theaterID, screen)
	return &resp, nil
}

// matchesQuery does a case-insensitive substring search across the movie's
// title, genre, cast and director.
func matchesQuery(movie *entity.Movie, query string) bool {
	q := strings.ToLower(query)

	if strings.Contains(strings.ToLower(movie.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(movie.Genre), q) {
		return true
	}
	if strings.Contains(strings.ToLower(movie.Director), q) {
		return true
	}
	for _, actor := range movie.Cast {
		if strings.Contains(strings.ToLower(actor), q) {
			return true
		}
	}
	return false
}
