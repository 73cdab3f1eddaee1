package response

import (
	"cinemabook/internal/data/entity"
)

type SeatMapResponse struct {
	TheaterID   string         `json:"theater_id"`
	ScreenID    string         `json:"screen_id"`
	ScreenName  string         `json:"screen_name"`
	ScreenType  string         `json:"screen_type"`
	Rows        int            `json:"rows"`
	SeatsPerRow int            `json:"seats_per_row"`
	Available   int            `json:"available"`
	Seats       entity.SeatMap `json:"seats"`
}

func NewSeatMapResponse(theaterID string, screen *entity.Screen) SeatMapResponse {
	rows := len(screen.SeatMap)
	seatsPerRow := 0
	if rows > 0 {
		seatsPerRow = len(screen.SeatMap[0])
	}
	return SeatMapResponse{
		TheaterID:   theaterID,
		ScreenID:    screen.ID,
		ScreenName:  screen.Name,
		ScreenType:  screen.Type,
		Rows:        rows,
		SeatsPerRow: seatsPerRow,
		Available:   screen.SeatMap.AvailableCount(),
		Seats:       screen.SeatMap,
	}
}
