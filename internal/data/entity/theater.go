package entity

// Screen is one auditorium of a theater. Layout is immutable after
// creation; only seat availability inside the map changes.
type Screen struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	TotalSeats int     `json:"total_seats"`
	SeatMap    SeatMap `json:"seat_map"`
}

// Theater is a static catalog entity with its screens and showtimes.
type Theater struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Distance  string    `json:"distance"`
	Showtimes []string  `json:"showtimes"`
	Screens   []*Screen `json:"screens"`
}

// ScreenByID returns the screen with the given ID, or nil.
func (t *Theater) ScreenByID(screenID string) *Screen {
	for _, screen := range t.Screens {
		if screen.ID == screenID {
			return screen
		}
	}
	return nil
}

// OffersShowtime reports whether the theater lists the given showtime label.
func (t *Theater) OffersShowtime(showtime string) bool {
	for _, s := range t.Showtimes {
		if s == showtime {
			return true
		}
	}
	return false
}
