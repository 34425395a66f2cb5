package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/queue"
	"github.com/iliyamo/movie-ticket-booking/internal/repository"
	queue_publisher "github.com/iliyamo/movie-ticket-booking/internal/service"
)

// BookingHandler implements the booking endpoints on top of the
// booking ledger.  Each mutating endpoint persists the snapshot before
// responding and then publishes a lifecycle event to the broker;
// publish failures are ignored because the booking already committed.
type BookingHandler struct {
	Bookings *repository.BookingRepo
}

func NewBookingHandler(b *repository.BookingRepo) *BookingHandler {
	if b == nil {
		panic("nil repository passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: b}
}

type createBookingReq struct {
	MovieID uint64 `json:"movieId"`
	ShowID  uint64 `json:"showId"`
	Seats   int64  `json:"seats"`
}

type updateBookingReq struct {
	Seats int64 `json:"seats"`
}

// bookingError translates ledger sentinel errors into HTTP responses.
// Unknown errors become a generic 500 so storage failures never leak
// file paths to clients.
func bookingError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrMovieNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Movie not found"})
	case errors.Is(err, repository.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"message": "User not found"})
	case errors.Is(err, repository.ErrShowNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Show not found"})
	case errors.Is(err, repository.ErrBookingNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Booking not found"})
	case errors.Is(err, repository.ErrNoBookings):
		return c.JSON(http.StatusNotFound, echo.Map{"message": "User has no bookings"})
	case errors.Is(err, repository.ErrInsufficientSeats):
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Not enough seats available"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Some error occurred"})
}

func pathUserID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	return id, err == nil
}

// publish sends a booking event in the background with its own timeout;
// the HTTP request does not wait for the broker.
func publish(ev queue.BookingEvent) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = queue_publisher.PublishBookingEvent(ctx, ev)
	}()
}

// CreateBooking handles POST /bookings/:userId.  The body carries the
// movie, show and seat count; the response is the confirmation payload
// with the generated booking code and computed total.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	userID, ok := pathUserID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid user id"})
	}
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if req.Seats <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "seats must be a positive number"})
	}

	conf, err := h.Bookings.Create(c.Request().Context(), userID, req.MovieID, req.ShowID, req.Seats)
	if err != nil {
		return bookingError(c, err)
	}

	publish(queue.BookingEvent{
		Type:        queue.EventBookingConfirmed,
		BookingID:   conf.BookingID,
		UserID:      userID,
		MovieID:     req.MovieID,
		ShowID:      req.ShowID,
		MovieTitle:  conf.MovieTitle,
		ShowTime:    conf.ShowTime,
		Seats:       conf.Seats,
		TotalAmount: conf.TotalAmount,
		OccurredAt:  time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, echo.Map{
		"message":     "Booking successful",
		"bookingId":   conf.BookingID,
		"movieTitle":  conf.MovieTitle,
		"showTime":    conf.ShowTime,
		"seats":       conf.Seats,
		"totalAmount": conf.TotalAmount,
	})
}

// ListBookings handles GET /bookings/:userId.  A user without bookings
// gets a 404, not an empty list; clients distinguish "never booked"
// from "no such user" by the message only.
func (h *BookingHandler) ListBookings(c echo.Context) error {
	userID, ok := pathUserID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid user id"})
	}
	bookings, err := h.Bookings.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusOK, bookings)
}

// GetBooking handles GET /bookings/:userId/:bookingId.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	userID, ok := pathUserID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid user id"})
	}
	booking, err := h.Bookings.GetByID(c.Request().Context(), userID, c.Param("bookingId"))
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusOK, booking)
}

// UpdateBooking handles PUT /bookings/:userId/:bookingId.  Only the
// seat count can change; the ledger recomputes the total and refreshes
// the booking timestamp.
func (h *BookingHandler) UpdateBooking(c echo.Context) error {
	userID, ok := pathUserID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid user id"})
	}
	var req updateBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if req.Seats <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "seats must be a positive number"})
	}

	booking, err := h.Bookings.Update(c.Request().Context(), userID, c.Param("bookingId"), req.Seats)
	if err != nil {
		return bookingError(c, err)
	}

	publish(queue.BookingEvent{
		Type:        queue.EventBookingUpdated,
		BookingID:   booking.ID,
		UserID:      userID,
		MovieID:     booking.MovieID,
		ShowID:      booking.ShowID,
		Seats:       booking.Seats,
		TotalAmount: booking.TotalAmount,
		OccurredAt:  time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, echo.Map{
		"message":     "Booking updated successfully",
		"bookingId":   booking.ID,
		"seats":       booking.Seats,
		"totalAmount": booking.TotalAmount,
	})
}

// CancelBooking handles DELETE /bookings/:userId/:bookingId.  The
// booking record survives with status CANCELLED; its seats return to
// the show's availability.
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	userID, ok := pathUserID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid user id"})
	}
	booking, err := h.Bookings.Cancel(c.Request().Context(), userID, c.Param("bookingId"))
	if err != nil {
		return bookingError(c, err)
	}

	publish(queue.BookingEvent{
		Type:        queue.EventBookingCancelled,
		BookingID:   booking.ID,
		UserID:      userID,
		MovieID:     booking.MovieID,
		ShowID:      booking.ShowID,
		Seats:       booking.Seats,
		TotalAmount: booking.TotalAmount,
		OccurredAt:  time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, echo.Map{"message": "Booking cancelled successfully"})
}

// GetSummary handles GET /summary/:userId.  Unlike the listing route it
// succeeds for users without bookings and returns zeroed aggregates.
func (h *BookingHandler) GetSummary(c echo.Context) error {
	userID, ok := pathUserID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid user id"})
	}
	summary, err := h.Bookings.Summarize(c.Request().Context(), userID)
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}
