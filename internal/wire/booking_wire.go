package wire

import (
	"cinemabook/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// POST /api/sessions/{sessionID}/checkout - Pay and confirm the booking
	r.Post("/api/sessions/{sessionID}/checkout", bookingHandler.Checkout)

	r.Route("/api/bookings", func(r chi.Router) {
		// GET /api/bookings - All bookings, newest first
		r.Get("/", bookingHandler.GetBookings)

		// GET /api/bookings/dashboard - Upcoming/past split
		r.Get("/dashboard", bookingHandler.GetDashboard)

		// GET /api/bookings/{bookingID} - Booking details
		r.Get("/{bookingID}", bookingHandler.GetBookingByID)

		// PUT /api/bookings/{bookingID}/cancel - Cancel a confirmed booking
		r.Put("/{bookingID}/cancel", bookingHandler.CancelBooking)

		// GET /api/bookings/{bookingID}/ticket - QR ticket PNG
		r.Get("/{bookingID}/ticket", bookingHandler.GetTicket)
	})
}
