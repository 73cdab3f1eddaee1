package adaptor

import (
	"errors"
	"net/http"

	"cinemabook/internal/data/entity"
	"cinemabook/internal/usecase"
	"cinemabook/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Catalog *CatalogHandler
	Session *SessionHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Catalog: NewCatalogHandler(service.Catalog, log),
		Session: NewSessionHandler(service.Session, log),
		Booking: NewBookingHandler(service.Booking, log),
	}
}

// handleServiceError maps the domain error taxonomy onto HTTP responses.
// Everything unmatched is a 500 with a generic message.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, entity.ErrMovieNotFound),
		errors.Is(err, entity.ErrTheaterNotFound),
		errors.Is(err, entity.ErrScreenNotFound),
		errors.Is(err, entity.ErrSeatNotFound),
		errors.Is(err, entity.ErrSessionNotFound),
		errors.Is(err, entity.ErrBookingNotFound):
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, entity.ErrSeatUnavailable),
		errors.Is(err, entity.ErrSelectionLimitExceeded),
		errors.Is(err, entity.ErrMovieNotBookable),
		errors.Is(err, entity.ErrShowtimeNotOffered),
		errors.Is(err, entity.ErrIncompleteBooking),
		errors.Is(err, entity.ErrBookingAlreadyCancelled):
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, entity.ErrPaymentDeclined):
		// 402 would fit but clients handle it poorly; keep it a 400.
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, entity.ErrPersistenceFailed):
		utils.ResponseServiceUnavailable(w, "Booking store unavailable, please retry")

	default:
		log.Error("Unhandled service error",
			zap.Error(err),
			zap.String("operation", operation),
		)
		utils.ResponseInternalError(w, "Internal server error")
	}
}
