package request

// StartSessionRequest opens a booking session for one show. ScreenID is
// optional; when empty the theater's first screen is used.
type StartSessionRequest struct {
	MovieID   string `json:"movie_id" validate:"required"`
	TheaterID string `json:"theater_id" validate:"required"`
	ScreenID  string `json:"screen_id"`
	Showtime  string `json:"showtime" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
}

type ToggleSeatRequest struct {
	SeatID string `json:"seat_id" validate:"required"`
}
