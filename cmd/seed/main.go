// Command seed writes a starter movie catalogue into the snapshot file.
// Movies and shows are only ever created here; the HTTP API mutates
// seat counts but never adds catalogue entries.  Existing users are
// preserved; the catalogue is replaced wholesale.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/iliyamo/movie-ticket-booking/internal/database"
	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

func main() {
	_ = godotenv.Load()

	path := flag.String("data", "data.json", "path to the snapshot file")
	flag.Parse()

	store, err := database.Open(*path)
	if err != nil {
		log.Fatalf("open snapshot store: %v", err)
	}

	err = store.Update(context.Background(), func(snap *model.Snapshot) error {
		snap.Movies = catalogue()
		return nil
	})
	if err != nil {
		log.Fatalf("seed catalogue: %v", err)
	}
	log.Printf("seeded %s", *path)
}

func catalogue() []model.Movie {
	return []model.Movie{
		{
			ID: 1, Title: "Inception", Genre: "Sci-Fi", Duration: 148,
			Shows: []model.Show{
				{ID: 1, Time: "2026-09-01T18:00:00Z", PricePerSeat: 12.5, AvailableSeats: 100},
				{ID: 2, Time: "2026-09-01T21:30:00Z", PricePerSeat: 15, AvailableSeats: 100},
			},
		},
		{
			ID: 2, Title: "The Grand Budapest Hotel", Genre: "Comedy", Duration: 99,
			Shows: []model.Show{
				{ID: 1, Time: "2026-09-02T17:00:00Z", PricePerSeat: 10, AvailableSeats: 80},
			},
		},
		{
			ID: 3, Title: "Spirited Away", Genre: "Animation", Duration: 125,
			Shows: []model.Show{
				{ID: 1, Time: "2026-09-02T15:00:00Z", PricePerSeat: 9.5, AvailableSeats: 120},
				{ID: 2, Time: "2026-09-03T15:00:00Z", PricePerSeat: 9.5, AvailableSeats: 120},
			},
		},
	}
}
