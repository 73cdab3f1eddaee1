package entity

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPricing = SeatPricing{Premium: 300, Regular: 200}

func TestGenerateSeatMap(t *testing.T) {
	seatMap, err := GenerateSeatMap(8, 15, testPricing, nil)
	require.NoError(t, err)

	require.Len(t, seatMap, 8)
	for _, row := range seatMap {
		assert.Len(t, row, 15)
	}

	// First 3 rows are premium, the rest regular
	for ri, row := range seatMap {
		for _, seat := range row {
			if ri < 3 {
				assert.Equal(t, SeatTypePremium, seat.Type)
				assert.Equal(t, 300, seat.Price)
			} else {
				assert.Equal(t, SeatTypeRegular, seat.Type)
				assert.Equal(t, 200, seat.Price)
			}
		}
	}

	// Row letters and seat numbers
	assert.Equal(t, "A1", seatMap[0][0].ID)
	assert.Equal(t, "A15", seatMap[0][14].ID)
	assert.Equal(t, "H1", seatMap[7][0].ID)
	assert.Equal(t, "C7", seatMap[2][6].ID)
	assert.Equal(t, "C", seatMap[2][6].Row)
	assert.Equal(t, 7, seatMap[2][6].Number)
}

func TestGenerateSeatMapInvalidLayout(t *testing.T) {
	tests := []struct {
		rows, seatsPerRow int
	}{
		{0, 10},
		{10, 0},
		{-1, 10},
		{27, 10},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dx%d", tt.rows, tt.seatsPerRow), func(t *testing.T) {
			_, err := GenerateSeatMap(tt.rows, tt.seatsPerRow, testPricing, nil)
			assert.ErrorIs(t, err, ErrInvalidLayout)
		})
	}
}

func TestGenerateSeatMapOccupied(t *testing.T) {
	occupied := func(row, col int) bool {
		return row == 0 && col < 2
	}

	seatMap, err := GenerateSeatMap(3, 4, testPricing, occupied)
	require.NoError(t, err)

	assert.Equal(t, SeatStatusBooked, seatMap[0][0].Status)
	assert.Equal(t, SeatStatusBooked, seatMap[0][1].Status)
	assert.Equal(t, SeatStatusAvailable, seatMap[0][2].Status)
	assert.Equal(t, 10, seatMap.AvailableCount())
	assert.Equal(t, 12, seatMap.TotalSeats())
}

func TestGenerateSeatMapDeterministic(t *testing.T) {
	occupied := func(row, col int) bool {
		return (row+col)%3 == 0
	}

	first, err := GenerateSeatMap(5, 6, testPricing, occupied)
	require.NoError(t, err)
	second, err := GenerateSeatMap(5, 6, testPricing, occupied)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSeatMapFindSeat(t *testing.T) {
	seatMap, err := GenerateSeatMap(4, 5, testPricing, nil)
	require.NoError(t, err)

	seat, ok := seatMap.FindSeat("B3")
	require.True(t, ok)
	assert.Equal(t, "B3", seat.ID)
	assert.Equal(t, SeatTypePremium, seat.Type)

	_, ok = seatMap.FindSeat("Z9")
	assert.False(t, ok)
}

func TestSeatMapMarkBooked(t *testing.T) {
	seatMap, err := GenerateSeatMap(4, 5, testPricing, nil)
	require.NoError(t, err)

	require.NoError(t, seatMap.MarkBooked([]string{"A1", "D5"}))
	assert.Equal(t, SeatStatusBooked, seatMap[0][0].Status)
	assert.Equal(t, SeatStatusBooked, seatMap[3][4].Status)

	// Booking an already booked seat fails
	err = seatMap.MarkBooked([]string{"A1"})
	assert.ErrorIs(t, err, ErrSeatUnavailable)

	// Unknown seat fails
	err = seatMap.MarkBooked([]string{"Z1"})
	assert.ErrorIs(t, err, ErrSeatNotFound)
}

func TestSeatMapClone(t *testing.T) {
	seatMap, err := GenerateSeatMap(2, 2, testPricing, nil)
	require.NoError(t, err)

	clone := seatMap.Clone()
	require.NoError(t, seatMap.MarkBooked([]string{"A1"}))

	assert.Equal(t, SeatStatusBooked, seatMap[0][0].Status)
	assert.Equal(t, SeatStatusAvailable, clone[0][0].Status)
}
