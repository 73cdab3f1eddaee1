package entity

import "time"

// BookingSession is the explicit context object for one in-progress booking
// flow: the chosen movie/theater/screen/showtime/date plus the live seat
// selection. Sessions are owned by the session service and passed by
// reference; nothing here is process-global, so concurrent flows do not
// interfere.
type BookingSession struct {
	ID        string
	Movie     *Movie
	Theater   *Theater
	Screen    *Screen
	Showtime  string
	Date      string // DateLayout
	Selection Selection
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Complete reports whether the session carries everything checkout needs:
// a fully specified context and at least one selected seat.
func (s *BookingSession) Complete() bool {
	return s.Movie != nil &&
		s.Theater != nil &&
		s.Screen != nil &&
		s.Showtime != "" &&
		s.Date != "" &&
		s.Selection.Count() > 0
}
