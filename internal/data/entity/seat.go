package entity

import (
	"fmt"
)

type SeatType string

const (
	SeatTypeRegular SeatType = "regular"
	SeatTypePremium SeatType = "premium"
)

type SeatStatus string

const (
	SeatStatusAvailable SeatStatus = "available"
	SeatStatusBooked    SeatStatus = "booked"
	SeatStatusSelected  SeatStatus = "selected"
)

// Seat is one seat in a screen. The ID (row letter + number, e.g. "A1")
// is unique within a screen. Type and Price are fixed at map generation.
type Seat struct {
	ID     string     `json:"id"`
	Row    string     `json:"row"`
	Number int        `json:"number"`
	Type   SeatType   `json:"type"`
	Status SeatStatus `json:"status"`
	Price  int        `json:"price"`
}

// SeatPricing holds the per-class unit prices used at map generation.
type SeatPricing struct {
	Premium int
	Regular int
}

// First 3 rows of every screen are the premium tier.
const premiumRowCount = 3

const rowLabels = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// SeatMap is the 2-D seat grid of one screen, rows x seats-per-row.
type SeatMap [][]Seat

// GenerateSeatMap builds a rows x seatsPerRow grid. Rows are labeled A, B, C, ...
// from the screen outward. The occupied function supplies the initial
// availability of each position, so generation is deterministic given its
// inputs; pass nil for an all-available map.
func GenerateSeatMap(rows, seatsPerRow int, pricing SeatPricing, occupied func(row, col int) bool) (SeatMap, error) {
	if rows < 1 || seatsPerRow < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidLayout, rows, seatsPerRow)
	}
	if rows > len(rowLabels) {
		return nil, fmt.Errorf("%w: %d rows exceeds row labels", ErrInvalidLayout, rows)
	}

	seatMap := make(SeatMap, rows)
	for row := 0; row < rows; row++ {
		label := string(rowLabels[row])

		seatType := SeatTypeRegular
		price := pricing.Regular
		if row < premiumRowCount {
			seatType = SeatTypePremium
			price = pricing.Premium
		}

		seatRow := make([]Seat, seatsPerRow)
		for col := 0; col < seatsPerRow; col++ {
			status := SeatStatusAvailable
			if occupied != nil && occupied(row, col) {
				status = SeatStatusBooked
			}

			seatRow[col] = Seat{
				ID:     fmt.Sprintf("%s%d", label, col+1),
				Row:    label,
				Number: col + 1,
				Type:   seatType,
				Status: status,
				Price:  price,
			}
		}
		seatMap[row] = seatRow
	}

	return seatMap, nil
}

// FindSeat returns a copy of the seat with the given ID.
func (m SeatMap) FindSeat(id string) (Seat, bool) {
	for _, row := range m {
		for _, seat := range row {
			if seat.ID == id {
				return seat, true
			}
		}
	}
	return Seat{}, false
}

// MarkBooked transitions the given seats to booked. It fails on the first
// seat that is missing or already booked, leaving earlier seats marked.
func (m SeatMap) MarkBooked(seatIDs []string) error {
	for _, id := range seatIDs {
		found := false
		for ri, row := range m {
			for ci, seat := range row {
				if seat.ID != id {
					continue
				}
				if seat.Status == SeatStatusBooked {
					return fmt.Errorf("%w: %s", ErrSeatUnavailable, id)
				}
				m[ri][ci].Status = SeatStatusBooked
				found = true
			}
		}
		if !found {
			return fmt.Errorf("%w: %s", ErrSeatNotFound, id)
		}
	}
	return nil
}

// AvailableCount returns the number of seats not yet booked.
func (m SeatMap) AvailableCount() int {
	count := 0
	for _, row := range m {
		for _, seat := range row {
			if seat.Status != SeatStatusBooked {
				count++
			}
		}
	}
	return count
}

// TotalSeats returns the number of seats across all rows.
func (m SeatMap) TotalSeats() int {
	count := 0
	for _, row := range m {
		count += len(row)
	}
	return count
}

// Clone returns a deep copy so callers can read the grid without holding
// the catalog lock.
func (m SeatMap) Clone() SeatMap {
	clone := make(SeatMap, len(m))
	for i, row := range m {
		clone[i] = make([]Seat, len(row))
		copy(clone[i], row)
	}
	return clone
}
