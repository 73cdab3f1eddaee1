package ticket

import (
	"bytes"
	"testing"
	"time"

	"cinemabook/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestGenerate(t *testing.T) {
	gen := NewGenerator("test-secret")

	booking := &entity.Booking{
		ID:          "BK-20260901-101500-0042",
		MovieID:     "1",
		MovieTitle:  "Avengers: Endgame",
		TheaterID:   "1",
		TheaterName: "PVR Cinemas Phoenix",
		ScreenID:    "screen1",
		Showtime:    "5:00 PM",
		Date:        "2026-09-10",
		Seats:       entity.SeatList{{ID: "A1", Row: "A", Number: 1, Type: entity.SeatTypePremium, Status: entity.SeatStatusBooked, Price: 300}},
		TotalAmount: 320,
		BookingDate: time.Now(),
		Status:      entity.BookingStatusConfirmed,
	}

	png, err := gen.Generate(booking)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestGenerateEncrypts(t *testing.T) {
	gen := NewGenerator("test-secret")
	booking := &entity.Booking{ID: "BK-20260901-101500-0042"}

	first, err := gen.Generate(booking)
	require.NoError(t, err)
	second, err := gen.Generate(booking)
	require.NoError(t, err)

	// A fresh IV per ticket means identical bookings never produce the
	// same image.
	assert.NotEqual(t, first, second)
}
