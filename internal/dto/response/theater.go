package response

import (
	"cinemabook/internal/data/entity"
)

type ScreenResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	TotalSeats int    `json:"total_seats"`
}

type TheaterResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Location  string           `json:"location"`
	Distance  string           `json:"distance"`
	Showtimes []string         `json:"showtimes"`
	Screens   []ScreenResponse `json:"screens"`
}

func NewTheaterResponse(theater *entity.Theater) TheaterResponse {
	screens := make([]ScreenResponse, len(theater.Screens))
	for i, screen := range theater.Screens {
		screens[i] = ScreenResponse{
			ID:         screen.ID,
			Name:       screen.Name,
			Type:       screen.Type,
			TotalSeats: screen.TotalSeats,
		}
	}
	return TheaterResponse{
		ID:        theater.ID,
		Name:      theater.Name,
		Location:  theater.Location,
		Distance:  theater.Distance,
		Showtimes: theater.Showtimes,
		Screens:   screens,
	}
}

func NewTheaterListResponse(theaters []*entity.Theater) []TheaterResponse {
	out := make([]TheaterResponse, len(theaters))
	for i, theater := range theaters {
		out[i] = NewTheaterResponse(theater)
	}
	return out
}
