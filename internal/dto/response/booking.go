package response

import (
	"time"

	"cinemabook/internal/data/entity"
)

type BookingResponse struct {
	ID          string        `json:"id"`
	MovieID     string        `json:"movie_id"`
	MovieTitle  string        `json:"movie_title"`
	TheaterID   string        `json:"theater_id"`
	TheaterName string        `json:"theater_name"`
	ScreenID    string        `json:"screen_id"`
	Showtime    string        `json:"showtime"`
	Date        string        `json:"date"`
	Seats       []entity.Seat `json:"seats"`
	TotalAmount int           `json:"total_amount"`
	BookingDate time.Time     `json:"booking_date"`
	Status      string        `json:"status"`
}

func NewBookingResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:          booking.ID,
		MovieID:     booking.MovieID,
		MovieTitle:  booking.MovieTitle,
		TheaterID:   booking.TheaterID,
		TheaterName: booking.TheaterName,
		ScreenID:    booking.ScreenID,
		Showtime:    booking.Showtime,
		Date:        booking.Date,
		Seats:       booking.Seats,
		TotalAmount: booking.TotalAmount,
		BookingDate: booking.BookingDate,
		Status:      string(booking.Status),
	}
}

func NewBookingListResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		out[i] = NewBookingResponse(booking)
	}
	return out
}

// DashboardResponse splits a user's bookings into the two dashboard tabs.
type DashboardResponse struct {
	Upcoming []BookingResponse `json:"upcoming"`
	Past     []BookingResponse `json:"past"`
}
