package wire

import (
	"cinemabook/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	// GET /api/movies - List movies, with ?status= and ?q= filters
	r.Get("/api/movies", catalogHandler.GetMovies)

	// GET /api/movies/{movieID} - Movie details
	r.Get("/api/movies/{movieID}", catalogHandler.GetMovieByID)

	// GET /api/theaters - List theaters with screens and showtimes
	r.Get("/api/theaters", catalogHandler.GetTheaters)

	// GET /api/theaters/{theaterID} - Theater details
	r.Get("/api/theaters/{theaterID}", catalogHandler.GetTheaterByID)

	// GET /api/theaters/{theaterID}/screens/{screenID}/seats - Live seat map
	r.Get("/api/theaters/{theaterID}/screens/{screenID}/seats", catalogHandler.GetSeatMap)
}
