package response

import (
	"cinemabook/internal/data/entity"
)

type MovieResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Genre       string   `json:"genre"`
	Duration    int      `json:"duration"`
	Rating      float64  `json:"rating"`
	PosterURL   string   `json:"poster_url"`
	Description string   `json:"description"`
	ReleaseDate string   `json:"release_date"`
	Language    string   `json:"language"`
	Certificate string   `json:"certificate"`
	Cast        []string `json:"cast"`
	Director    string   `json:"director"`
	Status      string   `json:"status"`
}

func NewMovieResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Genre:       movie.Genre,
		Duration:    movie.Duration,
		Rating:      movie.Rating,
		PosterURL:   movie.PosterURL,
		Description: movie.Description,
		ReleaseDate: movie.ReleaseDate,
		Language:    movie.Language,
		Certificate: movie.Certificate,
		Cast:        movie.Cast,
		Director:    movie.Director,
		Status:      string(movie.Status),
	}
}

func NewMovieListResponse(movies []*entity.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i, movie := range movies {
		out[i] = NewMovieResponse(movie)
	}
	return out
}
