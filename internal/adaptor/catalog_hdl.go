package adaptor

import (
	"net/http"

	"cinemabook/internal/usecase"
	"cinemabook/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// GetMovies handles GET /api/movies?status=playing&q=batman
func (h *CatalogHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	movies, err := h.service.GetMovies(r.Context(), query.Get("status"), query.Get("q"))
	if err != nil {
		handleServiceError(w, h.log, err, "get movies")
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

// GetMovieByID handles GET /api/movies/{movieID}
func (h *CatalogHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "movieID")

	movie, err := h.service.GetMovieByID(r.Context(), movieID)
	if err != nil {
		handleServiceError(w, h.log, err, "get movie by id")
		return
	}

	utils.ResponseSuccess(w, "success", movie)
}

// GetTheaters handles GET /api/theaters
func (h *CatalogHandler) GetTheaters(w http.ResponseWriter, r *http.Request) {
	theaters, err := h.service.GetTheaters(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get theaters")
		return
	}

	utils.ResponseSuccess(w, "success", theaters)
}

// GetTheaterByID handles GET /api/theaters/{theaterID}
func (h *CatalogHandler) GetTheaterByID(w http.ResponseWriter, r *http.Request) {
	theaterID := chi.URLParam(r, "theaterID")

	theater, err := h.service.GetTheaterByID(r.Context(), theaterID)
	if err != nil {
		handleServiceError(w, h.log, err, "get theater by id")
		return
	}

	utils.ResponseSuccess(w, "success", theater)
}

// GetSeatMap handles GET /api/theaters/{theaterID}/screens/{screenID}/seats
func (h *CatalogHandler) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	theaterID := chi.URLParam(r, "theaterID")
	screenID := chi.URLParam(r, "screenID")

	seatMap, err := h.service.GetSeatMap(r.Context(), theaterID, screenID)
	if err != nil {
		handleServiceError(w, h.log, err, "get seat map")
		return
	}

	utils.ResponseSuccess(w, "success", seatMap)
}
