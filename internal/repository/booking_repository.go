package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/iliyamo/movie-ticket-booking/internal/database"
	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/utils"
)

// BookingRepo is the booking ledger.  Every operation loads the full
// snapshot, applies seat-inventory and booking-list changes together
// and persists the result before returning, so a failed operation never
// leaves a partial change behind.  Serialization against concurrent
// requests is provided by the store.
type BookingRepo struct{ Store *database.Store }

func NewBookingRepo(s *database.Store) *BookingRepo { return &BookingRepo{Store: s} }

// Confirmation is returned by Create and carries the fields the booking
// confirmation payload needs beyond the booking itself.
type Confirmation struct {
	BookingID   string
	MovieTitle  string
	ShowTime    string
	Seats       int64
	TotalAmount float64
}

// Create books seats on a show for a user.  It verifies movie, user and
// show existence (in that order, reported as distinct errors), checks
// availability, decrements the show's seat count and appends a
// CONFIRMED booking with a fresh timestamp to the user's list.
func (r *BookingRepo) Create(ctx context.Context, userID, movieID, showID uint64, seats int64) (Confirmation, error) {
	if seats <= 0 {
		return Confirmation{}, fmt.Errorf("seats must be positive, got %d", seats)
	}
	var conf Confirmation
	err := r.Store.Update(ctx, func(snap *model.Snapshot) error {
		movie := snap.MovieByID(movieID)
		if movie == nil {
			return ErrMovieNotFound
		}
		user := snap.UserByID(userID)
		if user == nil {
			return ErrUserNotFound
		}
		show := movie.ShowByID(showID)
		if show == nil {
			return ErrShowNotFound
		}
		if show.AvailableSeats < seats {
			return ErrInsufficientSeats
		}

		code, err := newBookingCode(snap)
		if err != nil {
			return err
		}
		total := float64(seats) * show.PricePerSeat

		show.AvailableSeats -= seats
		user.Bookings = append(user.Bookings, model.Booking{
			ID:          code,
			MovieID:     movie.ID,
			ShowID:      show.ID,
			Seats:       seats,
			TotalAmount: total,
			Status:      model.StatusConfirmed,
			BookingDate: time.Now().UTC(),
		})

		conf = Confirmation{
			BookingID:   code,
			MovieTitle:  movie.Title,
			ShowTime:    show.Time,
			Seats:       seats,
			TotalAmount: total,
		}
		return nil
	})
	return conf, err
}

// Update changes the seat count of an existing booking.  Growing the
// booking requires enough free seats for the difference; shrinking it
// credits the difference back.  The total is recomputed at the show's
// current price, the status is reset to CONFIRMED and the timestamp is
// refreshed.  Updating a CANCELLED booking is not rejected: it
// re-confirms the booking and still applies only the seat difference,
// even though the cancelled seats were already credited back.  That
// matches the historical behavior callers rely on; see DESIGN.md.
func (r *BookingRepo) Update(ctx context.Context, userID uint64, bookingID string, seats int64) (model.Booking, error) {
	if seats <= 0 {
		return model.Booking{}, fmt.Errorf("seats must be positive, got %d", seats)
	}
	var updated model.Booking
	err := r.Store.Update(ctx, func(snap *model.Snapshot) error {
		user := snap.UserByID(userID)
		if user == nil {
			return ErrUserNotFound
		}
		if len(user.Bookings) == 0 {
			return ErrNoBookings
		}
		booking := user.BookingByID(bookingID)
		if booking == nil {
			return ErrBookingNotFound
		}
		movie := snap.MovieByID(booking.MovieID)
		if movie == nil {
			return ErrMovieNotFound
		}
		show := movie.ShowByID(booking.ShowID)
		if show == nil {
			return ErrShowNotFound
		}

		delta := seats - booking.Seats
		if delta > 0 && show.AvailableSeats < delta {
			return ErrInsufficientSeats
		}

		show.AvailableSeats -= delta
		booking.Seats = seats
		booking.TotalAmount = float64(seats) * show.PricePerSeat
		booking.Status = model.StatusConfirmed
		booking.BookingDate = time.Now().UTC()

		updated = *booking
		return nil
	})
	return updated, err
}

// Cancel marks a booking CANCELLED, credits its seats back to the show
// and refreshes the timestamp.  Cancelling an already cancelled booking
// is not rejected and credits the seats a second time; the operation is
// deliberately not idempotent.  See DESIGN.md.
func (r *BookingRepo) Cancel(ctx context.Context, userID uint64, bookingID string) (model.Booking, error) {
	var cancelled model.Booking
	err := r.Store.Update(ctx, func(snap *model.Snapshot) error {
		user := snap.UserByID(userID)
		if user == nil {
			return ErrUserNotFound
		}
		if len(user.Bookings) == 0 {
			return ErrNoBookings
		}
		booking := user.BookingByID(bookingID)
		if booking == nil {
			return ErrBookingNotFound
		}
		movie := snap.MovieByID(booking.MovieID)
		if movie == nil {
			return ErrMovieNotFound
		}
		show := movie.ShowByID(booking.ShowID)
		if show == nil {
			return ErrShowNotFound
		}

		show.AvailableSeats += booking.Seats
		booking.Status = model.StatusCancelled
		booking.BookingDate = time.Now().UTC()

		cancelled = *booking
		return nil
	})
	return cancelled, err
}

// ListByUser returns the user's bookings, oldest first.  A user with an
// empty booking history yields ErrNoBookings rather than an empty list.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.Store.View(ctx, func(snap *model.Snapshot) error {
		user := snap.UserByID(userID)
		if user == nil {
			return ErrUserNotFound
		}
		if len(user.Bookings) == 0 {
			return ErrNoBookings
		}
		bookings = append([]model.Booking(nil), user.Bookings...)
		return nil
	})
	return bookings, err
}

// GetByID returns a single booking of the user.
func (r *BookingRepo) GetByID(ctx context.Context, userID uint64, bookingID string) (model.Booking, error) {
	var b model.Booking
	err := r.Store.View(ctx, func(snap *model.Snapshot) error {
		user := snap.UserByID(userID)
		if user == nil {
			return ErrUserNotFound
		}
		if len(user.Bookings) == 0 {
			return ErrNoBookings
		}
		booking := user.BookingByID(bookingID)
		if booking == nil {
			return ErrBookingNotFound
		}
		b = *booking
		return nil
	})
	return b, err
}

// Summarize aggregates the user's booking activity.  Unlike ListByUser
// it succeeds for a user without bookings and returns zeroed totals.
// Amount and seat totals count CONFIRMED bookings only.
func (r *BookingRepo) Summarize(ctx context.Context, userID uint64) (model.Summary, error) {
	var sum model.Summary
	err := r.Store.View(ctx, func(snap *model.Snapshot) error {
		user := snap.UserByID(userID)
		if user == nil {
			return ErrUserNotFound
		}
		sum = model.Summary{UserID: user.ID}
		if user.Username != "" {
			name := user.Username
			sum.Username = &name
		}
		for _, b := range user.Bookings {
			sum.TotalBookings++
			switch b.Status {
			case model.StatusConfirmed:
				sum.ConfirmedBookings++
				sum.TotalAmountSpent += b.TotalAmount
				sum.TotalSeatsBooked += b.Seats
			case model.StatusCancelled:
				sum.CancelledBookings++
			}
		}
		return nil
	})
	return sum, err
}

// newBookingCode draws random codes until one is unused across every
// booking in the snapshot.  Codes are short, so collisions are possible
// and the check is required; a bound on attempts guards against a
// pathologically full code space.
func newBookingCode(snap *model.Snapshot) (string, error) {
	for attempt := 0; attempt < 32; attempt++ {
		code, err := utils.NewBookingCode()
		if err != nil {
			return "", err
		}
		if !bookingCodeTaken(snap, code) {
			return code, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique booking code")
}

func bookingCodeTaken(snap *model.Snapshot, code string) bool {
	for i := range snap.Users {
		for j := range snap.Users[i].Bookings {
			if snap.Users[i].Bookings[j].ID == code {
				return true
			}
		}
	}
	return false
}
