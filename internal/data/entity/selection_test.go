package entity

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func premiumSeat(id string) Seat {
	return Seat{ID: id, Type: SeatTypePremium, Status: SeatStatusAvailable, Price: 300}
}

func regularSeat(id string) Seat {
	return Seat{ID: id, Type: SeatTypeRegular, Status: SeatStatusAvailable, Price: 200}
}

func TestSelectionToggle(t *testing.T) {
	var sel Selection

	added, err := sel.Toggle(premiumSeat("A1"))
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, sel.Contains("A1"))
	assert.Equal(t, 1, sel.Count())

	// Toggling again removes it
	added, err = sel.Toggle(premiumSeat("A1"))
	require.NoError(t, err)
	assert.False(t, added)
	assert.False(t, sel.Contains("A1"))
	assert.Equal(t, 0, sel.Count())
}

func TestSelectionToggleBookedSeat(t *testing.T) {
	var sel Selection

	seat := regularSeat("D4")
	seat.Status = SeatStatusBooked

	_, err := sel.Toggle(seat)
	assert.ErrorIs(t, err, ErrSeatUnavailable)
	assert.Equal(t, 0, sel.Count())
}

func TestSelectionToggleRemovesRegardlessOfAvailability(t *testing.T) {
	var sel Selection

	_, err := sel.Toggle(regularSeat("D4"))
	require.NoError(t, err)

	// The same seat arriving as booked is still removed, not re-validated
	seat := regularSeat("D4")
	seat.Status = SeatStatusBooked
	added, err := sel.Toggle(seat)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, 0, sel.Count())
}

func TestSelectionLimit(t *testing.T) {
	var sel Selection

	for i := 1; i <= MaxSeatsPerSelection; i++ {
		_, err := sel.Toggle(regularSeat(fmt.Sprintf("D%d", i)))
		require.NoError(t, err)
	}
	assert.Equal(t, MaxSeatsPerSelection, sel.Count())

	_, err := sel.Toggle(regularSeat("E1"))
	assert.ErrorIs(t, err, ErrSelectionLimitExceeded)
	assert.Equal(t, MaxSeatsPerSelection, sel.Count())

	// Removal still works at the cap, and frees a slot
	_, err = sel.Toggle(regularSeat("D1"))
	require.NoError(t, err)

	added, err := sel.Toggle(regularSeat("E1"))
	require.NoError(t, err)
	assert.True(t, added)
}

func TestSelectionTotals(t *testing.T) {
	var sel Selection

	for _, seat := range []Seat{premiumSeat("A1"), premiumSeat("A2"), regularSeat("D4")} {
		_, err := sel.Toggle(seat)
		require.NoError(t, err)
	}

	const feePerSeat = 20
	assert.Equal(t, 800, sel.TotalAmount())
	assert.Equal(t, 60, sel.ConvenienceFee(feePerSeat))
	assert.Equal(t, 860, sel.GrandTotal(feePerSeat))

	// Removing a seat updates every total
	_, err := sel.Toggle(premiumSeat("A2"))
	require.NoError(t, err)
	assert.Equal(t, 500, sel.TotalAmount())
	assert.Equal(t, 40, sel.ConvenienceFee(feePerSeat))
	assert.Equal(t, 540, sel.GrandTotal(feePerSeat))
}

func TestSelectionEmptyTotals(t *testing.T) {
	var sel Selection

	assert.Equal(t, 0, sel.TotalAmount())
	assert.Equal(t, 0, sel.ConvenienceFee(20))
	assert.Equal(t, 0, sel.GrandTotal(20))
}

func TestSelectionClear(t *testing.T) {
	var sel Selection

	_, err := sel.Toggle(premiumSeat("A1"))
	require.NoError(t, err)
	_, err = sel.Toggle(regularSeat("D1"))
	require.NoError(t, err)

	sel.Clear()
	assert.Equal(t, 0, sel.Count())
	assert.Equal(t, 0, sel.TotalAmount())
	assert.Empty(t, sel.Seats())
}

func TestSelectionSeatsIsCopy(t *testing.T) {
	var sel Selection

	_, err := sel.Toggle(premiumSeat("A1"))
	require.NoError(t, err)

	seats := sel.Seats()
	seats[0].Status = SeatStatusBooked

	assert.Equal(t, SeatStatusSelected, sel.Seats()[0].Status)
}

func TestSelectionMarksSeatsSelected(t *testing.T) {
	var sel Selection

	_, err := sel.Toggle(premiumSeat("A1"))
	require.NoError(t, err)

	assert.Equal(t, SeatStatusSelected, sel.Seats()[0].Status)
}
