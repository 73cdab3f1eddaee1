package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// DateLayout is the wire format for show dates.
const DateLayout = "2006-01-02"

// Booking is the immutable persisted record of a paid-for selection. All
// movie/theater fields are denormalized snapshots so later catalog changes
// never alter a stored booking; only Status may transition after creation.
type Booking struct {
	bun.BaseModel `bun:"table:bookings"`

	ID          string        `bun:"id,pk" json:"id"`
	MovieID     string        `bun:"movie_id,notnull" json:"movie_id"`
	MovieTitle  string        `bun:"movie_title,notnull" json:"movie_title"`
	TheaterID   string        `bun:"theater_id,notnull" json:"theater_id"`
	TheaterName string        `bun:"theater_name,notnull" json:"theater_name"`
	ScreenID    string        `bun:"screen_id,notnull" json:"screen_id"`
	Showtime    string        `bun:"showtime,notnull" json:"showtime"`
	Date        string        `bun:"show_date,notnull" json:"date"`
	Seats       SeatList      `bun:"seats,type:text" json:"seats"`
	TotalAmount int           `bun:"total_amount,notnull" json:"total_amount"`
	BookingDate time.Time     `bun:"booking_date,notnull" json:"booking_date"`
	Status      BookingStatus `bun:"status,notnull" json:"status"`
}

// ShowDate parses the booking's show date.
func (b *Booking) ShowDate() (time.Time, error) {
	return time.Parse(DateLayout, b.Date)
}

// IsUpcoming reports whether the booking shows on the dashboard's upcoming
// tab: show date today or later, and still confirmed.
func (b *Booking) IsUpcoming(now time.Time) bool {
	if b.Status != BookingStatusConfirmed {
		return false
	}
	showDate, err := b.ShowDate()
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !showDate.Before(today)
}

// IsPast is the dashboard's history tab: show date gone by, or cancelled.
// Together with IsUpcoming this is a display classification, not a state
// machine.
func (b *Booking) IsPast(now time.Time) bool {
	return !b.IsUpcoming(now)
}

// Cancel transitions confirmed -> cancelled. Seats are not released; there
// is no cancellation-driven seat release in this system.
func (b *Booking) Cancel() error {
	if b.Status == BookingStatusCancelled {
		return fmt.Errorf("%w: %s", ErrBookingAlreadyCancelled, b.ID)
	}
	b.Status = BookingStatusCancelled
	return nil
}

// SeatList is the booking's seat snapshot, stored as a JSON column so the
// record stays a single self-contained row.
type SeatList []Seat

var _ driver.Valuer = (SeatList)(nil)

func (s SeatList) Value() (driver.Value, error) {
	if s == nil {
		s = SeatList{}
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal seat list: %w", err)
	}
	return string(data), nil
}

func (s *SeatList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s = nil
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported seat list source type %T", src)
	}
}
