package entity

import "fmt"

// MaxSeatsPerSelection caps how many seats one booking may hold.
const MaxSeatsPerSelection = 10

// Selection is the working set of seats for one in-progress booking.
// It keeps insertion order, rejects duplicates and never grows past
// MaxSeatsPerSelection.
type Selection struct {
	seats []Seat
}

// Toggle flips membership of the seat in the selection. A seat already in
// the selection is removed no matter what its map availability says. Adding
// fails if the seat is booked or the selection is full. The seat's type and
// price are never touched, only its selection membership.
func (s *Selection) Toggle(seat Seat) (added bool, err error) {
	for i, sel := range s.seats {
		if sel.ID == seat.ID {
			s.seats = append(s.seats[:i], s.seats[i+1:]...)
			return false, nil
		}
	}

	if seat.Status == SeatStatusBooked {
		return false, fmt.Errorf("%w: %s", ErrSeatUnavailable, seat.ID)
	}
	if len(s.seats) >= MaxSeatsPerSelection {
		return false, fmt.Errorf("%w: maximum %d seats", ErrSelectionLimitExceeded, MaxSeatsPerSelection)
	}

	seat.Status = SeatStatusSelected
	s.seats = append(s.seats, seat)
	return true, nil
}

// Contains reports whether the seat ID is in the selection.
func (s *Selection) Contains(seatID string) bool {
	for _, seat := range s.seats {
		if seat.ID == seatID {
			return true
		}
	}
	return false
}

// Seats returns a copy of the selected seats in insertion order.
func (s *Selection) Seats() []Seat {
	seats := make([]Seat, len(s.seats))
	copy(seats, s.seats)
	return seats
}

func (s *Selection) Count() int {
	return len(s.seats)
}

// TotalAmount is the sum of the selected seats' unit prices.
func (s *Selection) TotalAmount() int {
	total := 0
	for _, seat := range s.seats {
		total += seat.Price
	}
	return total
}

// ConvenienceFee scales with seat count, not price tier, and is always
// computed from the current selection size.
func (s *Selection) ConvenienceFee(feePerSeat int) int {
	return len(s.seats) * feePerSeat
}

func (s *Selection) GrandTotal(feePerSeat int) int {
	return s.TotalAmount() + s.ConvenienceFee(feePerSeat)
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.seats = nil
}
