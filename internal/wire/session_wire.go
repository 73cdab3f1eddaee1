package wire

import (
	"cinemabook/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSession(r chi.Router, sessionHandler *adaptor.SessionHandler) {
	r.Route("/api/sessions", func(r chi.Router) {
		// POST /api/sessions - Start a booking session
		r.Post("/", sessionHandler.StartSession)

		// GET /api/sessions/{sessionID} - Session state with running totals
		r.Get("/{sessionID}", sessionHandler.GetSession)

		// DELETE /api/sessions/{sessionID} - Abandon the session
		r.Delete("/{sessionID}", sessionHandler.AbandonSession)

		// POST /api/sessions/{sessionID}/seats - Toggle a seat
		r.Post("/{sessionID}/seats", sessionHandler.ToggleSeat)

		// DELETE /api/sessions/{sessionID}/seats - Clear the selection
		r.Delete("/{sessionID}/seats", sessionHandler.ClearSelection)
	})
}
