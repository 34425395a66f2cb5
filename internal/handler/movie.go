// This file defines the public catalogue handlers.  Browsing movies and
// their shows requires no authentication; responses expose the movie
// records as persisted, including live seat availability.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/repository"
)

// MovieHandler serves the read-only movie catalogue.
type MovieHandler struct {
	Movies *repository.MovieRepo
}

func NewMovieHandler(m *repository.MovieRepo) *MovieHandler {
	if m == nil {
		panic("nil repository passed to NewMovieHandler")
	}
	return &MovieHandler{Movies: m}
}

// GetMovies handles GET /movies and returns the whole catalogue.
func (h *MovieHandler) GetMovies(c echo.Context) error {
	movies, err := h.Movies.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Some error occurred"})
	}
	return c.JSON(http.StatusOK, movies)
}

// GetMovie handles GET /movies/:movieId and returns one movie with its
// shows, or 404 when the movie does not exist.
func (h *MovieHandler) GetMovie(c echo.Context) error {
	movieID, err := strconv.ParseUint(c.Param("movieId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid movie id"})
	}
	movie, err := h.Movies.GetByID(c.Request().Context(), movieID)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Some error occurred"})
	}
	return c.JSON(http.StatusOK, movie)
}

// GetShows handles GET /movies/:movieId/shows and returns the movie's
// show list.
func (h *MovieHandler) GetShows(c echo.Context) error {
	movieID, err := strconv.ParseUint(c.Param("movieId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid movie id"})
	}
	shows, err := h.Movies.ListShows(c.Request().Context(), movieID)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Some error occurred"})
	}
	return c.JSON(http.StatusOK, shows)
}
