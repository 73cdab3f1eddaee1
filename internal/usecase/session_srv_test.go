package usecase

import (
	"context"
	"fmt"
	"testing"

	"cinemabook/internal/data/entity"
	"cinemabook/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartSession(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Session.StartSession(context.Background(), &request.StartSessionRequest{
		MovieID:   "1",
		TheaterID: "1",
		ScreenID:  "screen1",
		Showtime:  "5:00 PM",
		Date:      "2099-12-31",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, "Avengers: Endgame", resp.MovieTitle)
	assert.Equal(t, "PVR Cinemas Phoenix", resp.TheaterName)
	assert.Equal(t, "screen1", resp.ScreenID)
	assert.Equal(t, 0, resp.SeatCount)
	assert.Equal(t, 0, resp.Totals.GrandTotal)
}

func TestStartSessionDefaultsToFirstScreen(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Session.StartSession(context.Background(), &request.StartSessionRequest{
		MovieID:   "1",
		TheaterID: "2",
		Showtime:  "6:00 PM",
		Date:      "2099-12-31",
	})
	require.NoError(t, err)
	assert.Equal(t, "screen3", resp.ScreenID)
}

func TestStartSessionRejectsUpcomingMovie(t *testing.T) {
	svc, _ := newTestService(t)

	// Movie 4 is an upcoming title
	_, err := svc.Session.StartSession(context.Background(), &request.StartSessionRequest{
		MovieID:   "4",
		TheaterID: "1",
		Showtime:  "5:00 PM",
		Date:      "2099-12-31",
	})
	assert.ErrorIs(t, err, entity.ErrMovieNotBookable)
}

func TestStartSessionRejectsUnknownShowtime(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Session.StartSession(context.Background(), &request.StartSessionRequest{
		MovieID:   "1",
		TheaterID: "1",
		Showtime:  "3:33 AM",
		Date:      "2099-12-31",
	})
	assert.ErrorIs(t, err, entity.ErrShowtimeNotOffered)
}

func TestStartSessionUnknownCatalogIDs(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Session.StartSession(ctx, &request.StartSessionRequest{
		MovieID: "999", TheaterID: "1", Showtime: "5:00 PM", Date: "2099-12-31",
	})
	assert.ErrorIs(t, err, entity.ErrMovieNotFound)

	_, err = svc.Session.StartSession(ctx, &request.StartSessionRequest{
		MovieID: "1", TheaterID: "999", Showtime: "5:00 PM", Date: "2099-12-31",
	})
	assert.ErrorIs(t, err, entity.ErrTheaterNotFound)
}

func TestToggleSeat(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	sessionID := startTestSession(t, svc)

	resp, err := svc.Session.ToggleSeat(ctx, sessionID, "A1")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.SeatCount)
	assert.Equal(t, 300, resp.Totals.TotalAmount)
	assert.Equal(t, 20, resp.Totals.ConvenienceFee)
	assert.Equal(t, 320, resp.Totals.GrandTotal)

	// Mixed tiers
	resp, err = svc.Session.ToggleSeat(ctx, sessionID, "D4")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.SeatCount)
	assert.Equal(t, 500, resp.Totals.TotalAmount)
	assert.Equal(t, 540, resp.Totals.GrandTotal)

	// Toggle off
	resp, err = svc.Session.ToggleSeat(ctx, sessionID, "A1")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.SeatCount)
	assert.Equal(t, 200, resp.Totals.TotalAmount)
	assert.Equal(t, 220, resp.Totals.GrandTotal)
}

func TestToggleSeatBooked(t *testing.T) {
	repo := newTestRepo(t, func(row, col int) bool {
		return row == 0 && col == 0 // A1 pre-booked everywhere
	})
	svc := NewService(repo, testConfig(), newTestMetrics(), newNopLogger())
	sessionID := startTestSession(t, svc)

	_, err := svc.Session.ToggleSeat(context.Background(), sessionID, "A1")
	assert.ErrorIs(t, err, entity.ErrSeatUnavailable)
}

func TestToggleSeatUnknown(t *testing.T) {
	svc, _ := newTestService(t)
	sessionID := startTestSession(t, svc)

	_, err := svc.Session.ToggleSeat(context.Background(), sessionID, "Z99")
	assert.ErrorIs(t, err, entity.ErrSeatNotFound)
}

func TestToggleSeatLimit(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	sessionID := startTestSession(t, svc)

	for i := 1; i <= entity.MaxSeatsPerSelection; i++ {
		_, err := svc.Session.ToggleSeat(ctx, sessionID, fmt.Sprintf("D%d", i))
		require.NoError(t, err)
	}

	_, err := svc.Session.ToggleSeat(ctx, sessionID, "E1")
	assert.ErrorIs(t, err, entity.ErrSelectionLimitExceeded)
}

func TestClearSelection(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	sessionID := startTestSession(t, svc)

	_, err := svc.Session.ToggleSeat(ctx, sessionID, "A1")
	require.NoError(t, err)

	resp, err := svc.Session.ClearSelection(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.SeatCount)
	assert.Equal(t, 0, resp.Totals.GrandTotal)
}

func TestAbandonSession(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	sessionID := startTestSession(t, svc)

	require.NoError(t, svc.Session.AbandonSession(ctx, sessionID))

	_, err := svc.Session.GetSession(ctx, sessionID)
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)

	err = svc.Session.AbandonSession(ctx, sessionID)
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)
}

func TestGetSessionUnknown(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Session.GetSession(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)
}

func TestConcurrentSessionsAreIsolated(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first := startTestSession(t, svc)
	second := startTestSession(t, svc)

	_, err := svc.Session.ToggleSeat(ctx, first, "A1")
	require.NoError(t, err)

	resp, err := svc.Session.GetSession(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.SeatCount)
}
