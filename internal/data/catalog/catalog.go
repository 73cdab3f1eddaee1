// Package catalog holds the static movie/theater data set. It is loaded
// once at wiring time and treated as a read-only external source by the
// booking core.
package catalog

import (
	"fmt"

	"cinemabook/internal/data/entity"
)

// SeatMapper produces the seat map for one screen layout. The wiring
// injects the pricing and initial-availability policy here so the catalog
// itself stays deterministic.
type SeatMapper func(rows, seatsPerRow int) (entity.SeatMap, error)

// Movies returns the static movie list.
func Movies() []*entity.Movie {
	return []*entity.Movie{
		{
			ID:          "1",
			Title:       "Avengers: Endgame",
			Genre:       "Action, Adventure, Sci-Fi",
			Duration:    181,
			Rating:      8.4,
			Description: "After the devastating events of Infinity War, the universe is in ruins. With the help of remaining allies, the Avengers assemble once more to reverse Thanos' actions and restore balance to the universe.",
			ReleaseDate: "2025-05-15",
			Language:    "English",
			Certificate: "PG-13",
			Cast:        []string{"Robert Downey Jr.", "Chris Evans", "Mark Ruffalo", "Chris Hemsworth"},
			Director:    "Anthony Russo, Joe Russo",
			Status:      entity.MovieStatusPlaying,
		},
		{
			ID:          "2",
			Title:       "The Batman",
			Genre:       "Action, Crime, Drama",
			Duration:    176,
			Rating:      7.8,
			Description: "When a killer targets Gotham's elite with a series of sadistic machinations, a trail of cryptic clues sends the World's Greatest Detective on an investigation into the underworld.",
			ReleaseDate: "2025-03-22",
			Language:    "English",
			Certificate: "PG-13",
			Cast:        []string{"Robert Pattinson", "Zoë Kravitz", "Paul Dano", "Jeffrey Wright"},
			Director:    "Matt Reeves",
			Status:      entity.MovieStatusPlaying,
		},
		{
			ID:          "3",
			Title:       "Top Gun: Maverick",
			Genre:       "Action, Drama",
			Duration:    131,
			Rating:      8.3,
			Description: "After thirty years, Maverick is still pushing the envelope as a top naval aviator, but must confront ghosts of his past when he leads an elite group of graduates on a mission.",
			ReleaseDate: "2025-04-10",
			Language:    "English",
			Certificate: "PG-13",
			Cast:        []string{"Tom Cruise", "Miles Teller", "Jennifer Connelly", "Jon Hamm"},
			Director:    "Joseph Kosinski",
			Status:      entity.MovieStatusPlaying,
		},
		{
			ID:          "4",
			Title:       "Doctor Strange: Multiverse",
			Genre:       "Action, Adventure, Fantasy",
			Duration:    126,
			Rating:      6.9,
			Description: "Doctor Strange teams up with a mysterious young woman who can travel across multiverses, to battle other-universe versions of himself.",
			ReleaseDate: "2025-06-20",
			Language:    "English",
			Certificate: "PG-13",
			Cast:        []string{"Benedict Cumberbatch", "Elizabeth Olsen", "Chiwetel Ejiofor", "Benedict Wong"},
			Director:    "Sam Raimi",
			Status:      entity.MovieStatusUpcoming,
		},
		{
			ID:          "5",
			Title:       "Black Panther: Forever",
			Genre:       "Action, Adventure, Drama",
			Duration:    161,
			Rating:      6.7,
			Description: "The people of Wakanda fight to protect their home from intervening world powers as they mourn the death of King T'Challa.",
			ReleaseDate: "2025-07-15",
			Language:    "English",
			Certificate: "PG-13",
			Cast:        []string{"Letitia Wright", "Angela Bassett", "Tenoch Huerta", "Danai Gurira"},
			Director:    "Ryan Coogler",
			Status:      entity.MovieStatusUpcoming,
		},
		{
			ID:          "6",
			Title:       "Spider-Man: New Universe",
			Genre:       "Action, Adventure, Sci-Fi",
			Duration:    148,
			Rating:      7.5,
			Description: "Peter Parker navigates his complicated dual life as the web-slinging superhero Spider-Man in this new adventure across the multiverse.",
			ReleaseDate: "2025-08-30",
			Language:    "English",
			Certificate: "PG-13",
			Cast:        []string{"Tom Holland", "Zendaya", "Benedict Cumberbatch", "Jacob Batalon"},
			Director:    "Jon Watts",
			Status:      entity.MovieStatusUpcoming,
		},
	}
}

type screenSpec struct {
	id, name, screenType string
	rows, seatsPerRow    int
}

type theaterSpec struct {
	id, name, location, distance string
	showtimes                    []string
	screens                      []screenSpec
}

var theaterSpecs = []theaterSpec{
	{
		id:        "1",
		name:      "PVR Cinemas Phoenix",
		location:  "Phoenix Mall, Lower Parel",
		distance:  "2.5 km",
		showtimes: []string{"10:30 AM", "1:45 PM", "5:00 PM", "8:15 PM", "11:30 PM"},
		screens: []screenSpec{
			{id: "screen1", name: "Audi 1", screenType: "IMAX", rows: 8, seatsPerRow: 15},
			{id: "screen2", name: "Audi 2", screenType: "4DX", rows: 7, seatsPerRow: 14},
		},
	},
	{
		id:        "2",
		name:      "INOX Megaplex",
		location:  "R City Mall, Ghatkopar",
		distance:  "5.2 km",
		showtimes: []string{"11:00 AM", "2:30 PM", "6:00 PM", "9:30 PM"},
		screens: []screenSpec{
			{id: "screen3", name: "Screen 1", screenType: "Dolby Atmos", rows: 10, seatsPerRow: 18},
			{id: "screen4", name: "Screen 2", screenType: "Regular", rows: 9, seatsPerRow: 16},
		},
	},
	{
		id:        "3",
		name:      "Carnival Cinemas",
		location:  "Viviana Mall, Thane",
		distance:  "8.7 km",
		showtimes: []string{"10:00 AM", "1:15 PM", "4:30 PM", "7:45 PM", "11:00 PM"},
		screens: []screenSpec{
			{id: "screen5", name: "Gold Class", screenType: "Premium", rows: 5, seatsPerRow: 12},
		},
	},
}

// Theaters builds the static theater list, generating each screen's seat
// map through the supplied mapper.
func Theaters(mapSeats SeatMapper) ([]*entity.Theater, error) {
	theaters := make([]*entity.Theater, 0, len(theaterSpecs))
	for _, spec := range theaterSpecs {
		theater := &entity.Theater{
			ID:        spec.id,
			Name:      spec.name,
			Location:  spec.location,
			Distance:  spec.distance,
			Showtimes: spec.showtimes,
		}

		for _, sc := range spec.screens {
			seatMap, err := mapSeats(sc.rows, sc.seatsPerRow)
			if err != nil {
				return nil, fmt.Errorf("seat map for screen %s: %w", sc.id, err)
			}
			theater.Screens = append(theater.Screens, &entity.Screen{
				ID:         sc.id,
				Name:       sc.name,
				Type:       sc.screenType,
				TotalSeats: seatMap.TotalSeats(),
				SeatMap:    seatMap,
			})
		}

		theaters = append(theaters, theater)
	}
	return theaters, nil
}
