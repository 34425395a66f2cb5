package repository

import (
	"context"

	"github.com/iliyamo/movie-ticket-booking/internal/database"
	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// MovieRepo reads the movie catalogue from the snapshot store.  Movies
// are seeded out of band (see cmd/seed); the API never creates them, so
// this repository is read-only.
type MovieRepo struct{ Store *database.Store }

func NewMovieRepo(s *database.Store) *MovieRepo { return &MovieRepo{Store: s} }

// ListAll returns the full catalogue in persisted order.
func (r *MovieRepo) ListAll(ctx context.Context) ([]model.Movie, error) {
	var movies []model.Movie
	err := r.Store.View(ctx, func(snap *model.Snapshot) error {
		movies = append([]model.Movie(nil), snap.Movies...)
		return nil
	})
	return movies, err
}

// GetByID fetches a single movie with its shows.
func (r *MovieRepo) GetByID(ctx context.Context, id uint64) (model.Movie, error) {
	var m model.Movie
	err := r.Store.View(ctx, func(snap *model.Snapshot) error {
		movie := snap.MovieByID(id)
		if movie == nil {
			return ErrMovieNotFound
		}
		m = *movie
		return nil
	})
	return m, err
}

// ListShows returns the shows of a movie in persisted order.
func (r *MovieRepo) ListShows(ctx context.Context, movieID uint64) ([]model.Show, error) {
	var shows []model.Show
	err := r.Store.View(ctx, func(snap *model.Snapshot) error {
		movie := snap.MovieByID(movieID)
		if movie == nil {
			return ErrMovieNotFound
		}
		shows = append([]model.Show(nil), movie.Shows...)
		return nil
	})
	return shows, err
}
