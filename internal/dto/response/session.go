package response

import (
	"cinemabook/internal/data/entity"
)

type SessionResponse struct {
	SessionID   string         `json:"session_id"`
	MovieID     string         `json:"movie_id"`
	MovieTitle  string         `json:"movie_title"`
	TheaterID   string         `json:"theater_id"`
	TheaterName string         `json:"theater_name"`
	ScreenID    string         `json:"screen_id"`
	Showtime    string         `json:"showtime"`
	Date        string         `json:"date"`
	Seats       []entity.Seat  `json:"seats"`
	SeatCount   int            `json:"seat_count"`
	Totals      TotalsResponse `json:"totals"`
}

// TotalsResponse is the running price breakdown of a selection.
type TotalsResponse struct {
	TotalAmount    int `json:"total_amount"`
	ConvenienceFee int `json:"convenience_fee"`
	GrandTotal     int `json:"grand_total"`
}

func NewSessionResponse(session *entity.BookingSession, feePerSeat int) SessionResponse {
	return SessionResponse{
		SessionID:   session.ID,
		MovieID:     session.Movie.ID,
		MovieTitle:  session.Movie.Title,
		TheaterID:   session.Theater.ID,
		TheaterName: session.Theater.Name,
		ScreenID:    session.Screen.ID,
		Showtime:    session.Showtime,
		Date:        session.Date,
		Seats:       session.Selection.Seats(),
		SeatCount:   session.Selection.Count(),
		Totals: TotalsResponse{
			TotalAmount:    session.Selection.TotalAmount(),
			ConvenienceFee: session.Selection.ConvenienceFee(feePerSeat),
			GrandTotal:     session.Selection.GrandTotal(feePerSeat),
		},
	}
}
