package entity

type MovieStatus string

const (
	MovieStatusPlaying  MovieStatus = "playing"
	MovieStatusUpcoming MovieStatus = "upcoming"
)

// Movie is a static catalog entity; the booking flow never mutates it.
type Movie struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Genre       string      `json:"genre"`
	Duration    int         `json:"duration"`
	Rating      float64     `json:"rating"`
	PosterURL   string      `json:"poster_url"`
	Description string      `json:"description"`
	ReleaseDate string      `json:"release_date"`
	Language    string      `json:"language"`
	Certificate string      `json:"certificate"`
	Cast        []string    `json:"cast"`
	Director    string      `json:"director"`
	Status      MovieStatus `json:"status"`
}

// Bookable reports whether new bookings may target this movie. Upcoming
// titles are browsable but cannot be booked.
func (m *Movie) Bookable() bool {
	return m.Status == MovieStatusPlaying
}
