package adaptor

import (
	"encoding/json"
	"net/http"

	"cinemabook/internal/dto/request"
	"cinemabook/internal/usecase"
	"cinemabook/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SessionHandler struct {
	service usecase.SessionService
	log     *zap.Logger
}

func NewSessionHandler(service usecase.SessionService, log *zap.Logger) *SessionHandler {
	return &SessionHandler{
		service: service,
		log:     log.With(zap.String("handler", "session")),
	}
}

// StartSession handles POST /api/sessions
func (h *SessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req request.StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	session, err := h.service.StartSession(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "start session")
		return
	}

	utils.ResponseCreated(w, "success", session)
}

// GetSession handles GET /api/sessions/{sessionID}
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	session, err := h.service.GetSession(r.Context(), sessionID)
	if err != nil {
		handleServiceError(w, h.log, err, "get session")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// ToggleSeat handles POST /api/sessions/{sessionID}/seats
func (h *SessionHandler) ToggleSeat(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var req request.ToggleSeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	session, err := h.service.ToggleSeat(r.Context(), sessionID, req.SeatID)
	if err != nil {
		handleServiceError(w, h.log, err, "toggle seat")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// ClearSelection handles DELETE /api/sessions/{sessionID}/seats
func (h *SessionHandler) ClearSelection(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	session, err := h.service.ClearSelection(r.Context(), sessionID)
	if err != nil {
		handleServiceError(w, h.log, err, "clear selection")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// AbandonSession handles DELETE /api/sessions/{sessionID}
func (h *SessionHandler) AbandonSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	if err := h.service.AbandonSession(r.Context(), sessionID); err != nil {
		handleServiceError(w, h.log, err, "abandon session")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
