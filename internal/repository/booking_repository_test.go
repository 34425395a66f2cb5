package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/movie-ticket-booking/internal/database"
	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// newTestStore creates a store in a temp directory seeded with one user
// and the Inception catalogue entry: show 1 has 10 seats at 12.5.
func newTestStore(t *testing.T) *database.Store {
	t.Helper()
	store, err := database.Open(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)

	err = store.Update(context.Background(), func(snap *model.Snapshot) error {
		snap.Users = []model.User{
			{ID: 1, Username: "alice", Email: "alice@example.com", Bookings: []model.Booking{}},
			{ID: 2, Email: "bob@example.com", Bookings: []model.Booking{}},
		}
		snap.Movies = []model.Movie{
			{
				ID: 1, Title: "Inception", Genre: "Sci-Fi", Duration: 148,
				Shows: []model.Show{
					{ID: 1, Time: "2026-09-01T18:00:00Z", PricePerSeat: 12.5, AvailableSeats: 10},
					{ID: 2, Time: "2026-09-01T21:30:00Z", PricePerSeat: 15, AvailableSeats: 5},
				},
			},
		}
		return nil
	})
	require.NoError(t, err)
	return store
}

func availableSeats(t *testing.T, store *database.Store, movieID, showID uint64) int64 {
	t.Helper()
	var seats int64
	err := store.View(context.Background(), func(snap *model.Snapshot) error {
		seats = snap.MovieByID(movieID).ShowByID(showID).AvailableSeats
		return nil
	})
	require.NoError(t, err)
	return seats
}

func TestCreateBookingDecrementsSeatsAndComputesTotal(t *testing.T) {
	store := newTestStore(t)
	repo := NewBookingRepo(store)
	ctx := context.Background()

	conf, err := repo.Create(ctx, 1, 1, 1, 4)
	require.NoError(t, err)

	assert.Len(t, conf.BookingID, 6)
	assert.Equal(t, "Inception", conf.MovieTitle)
	assert.Equal(t, "2026-09-01T18:00:00Z", conf.ShowTime)
	assert.Equal(t, int64(4), conf.Seats)
	assert.Equal(t, 50.0, conf.TotalAmount)
	assert.Equal(t, int64(6), availableSeats(t, store, 1, 1))

	booking, err := repo.GetByID(ctx, 1, conf.BookingID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, booking.Status)
	assert.Equal(t, uint64(1), booking.MovieID)
	assert.Equal(t, uint64(1), booking.ShowID)
}

func TestCreateBookingInsufficientSeatsLeavesShowUnchanged(t *testing.T) {
	store := newTestStore(t)
	repo := NewBookingRepo(store)
	ctx := context.Background()

	_, err := repo.Create(ctx, 1, 1, 1, 4)
	require.NoError(t, err)
	require.Equal(t, int64(6), availableSeats(t, store, 1, 1))

	_, err = repo.Create(ctx, 1, 1, 1, 7)
	assert.ErrorIs(t, err, ErrInsufficientSeats)
	assert.Equal(t, int64(6), availableSeats(t, store, 1, 1), "failed create must not touch the seat count")

	// Booking exactly the remaining seats is allowed.
	_, err = repo.Create(ctx, 1, 1, 1, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(0), availableSeats(t, store, 1, 1))
}

func TestCreateBookingNotFoundVariants(t *testing.T) {
	store := newTestStore(t)
	repo := NewBookingRepo(store)
	ctx := context.Background()

	_, err := repo.Create(ctx, 1, 99, 1, 1)
	assert.ErrorIs(t, err, ErrMovieNotFound)

	_, err = repo.Create(ctx, 99, 1, 1, 1)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.Create(ctx, 1, 1, 99, 1)
	assert.ErrorIs(t, err, ErrShowNotFound)
}

func TestCancelBookingCreditsSeatsAndRefreshesTimestamp(t *testing.T) {
	store := newTestStore(t)
	repo := NewBookingRepo(store)
	ctx := context.Background()

	conf, err := repo.Create(ctx, 1, 1, 1, 3)
	require.NoError(t, err)
	created, err := repo.GetByID(ctx, 1, conf.BookingID)
	require.NoError(t, err)

	cancelled, err := repo.Cancel(ctx, 1, conf.BookingID)
	require.NoError(t, err)

	assert.Equal(t, model.StatusCancelled, cancelled.Status)
	assert.False(t, cancelled.BookingDate.Before(created.BookingDate))
	assert.Equal(t, int64(10), availableSeats(t, store, 1, 1))

	got, err := repo.GetByID(ctx, 1, conf.BookingID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, got.Status)
}

func TestCancelBookingTwiceDoubleCreditsSeats(t *testing.T) {
	// Cancellation is deliberately not idempotent: a second cancel
	// credits the seats again and availability can exceed the original
	// capacity.  This asserts the historical behavior, not a fix.
	store := newTestStore(t)
	repo := NewBookingRepo(store)
	ctx := context.Background()

	conf, err := repo.Create(ctx, 1, 1, 1, 3)
	require.NoError(t, err)
	require.Equal(t, int64(7), availableSeats(t, store, 1, 1))

	_, err = repo.Cancel(ctx, 1, conf.BookingID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), availableSeats(t, store, 1, 1))

	_, err = repo.Cancel(ctx, 1, conf.BookingID)
	require.NoError(t, err)
	assert.Equal(t, int64(13), availableSeats(t, store, 1, 1))
}

func TestUpdateBookingGrowAndShrink(t *testing.T) {
	store := newTestStore(t)
	repo := NewBookingRepo(store)
	ctx := context.Background()

	conf, err := repo.Create(ctx, 1, 1, 1, 4)
	require.NoError(t, err)

	grown, err := repo.Update(ctx, 1, conf.BookingID, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(6), grown.Seats)
	assert.Equal(t, 75.0, grown.TotalAmount)
	assert.Equal(t, int64(4), availableSeats(t, store, 1, 1))

	shrunk, err := repo.Update(ctx, 1, conf.BookingID, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), shrunk.Seats)
	assert.Equal(t, 25.0, shrunk.TotalAmount)
	assert.Equal(t, int64(8), availableSeats(t, store, 1, 1))
}

func TestUpdateBookingInsufficientSeatsLeavesEverythingUnchanged(t *testing.T) {
	store := newTestStore(t)
	repo := NewBookingRepo(store)
	ctx := context.Background()

	conf, err := repo.Create(ctx, 1, 1, 1, 4)
	require.NoError(t, err)
	before, err := repo.GetByID(ctx, 1, conf.BookingID)
	require.NoError(t, err)

	// 6 seats remain; growing by 7 must fail.
	_, err = repo.Update(ctx, 1, conf.BookingID, 11)
	assert.ErrorIs(t, err, ErrInsufficientSeats)

	after, err := repo.GetByID(ctx, 1, conf.BookingID)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, int64(6), availableSeats(t, store, 1, 1))
}

func TestUpdateCancelledBookingReconfirmsAndAppliesDelta(t *testing.T) {
	// Updating a cancelled booking is not rejected: it re-confirms the
	// booking and applies only the seat delta, even though the
	// cancelled seats were already credited back.  Reproduced behavior.
	store := newTestStore(t)
	repo := NewBookingRepo(store)
	ctx := context.Background()

	conf, err := repo.Create(ctx, 1, 1, 1, 4)
	require.NoError(t, err)
	_, err = repo.Cancel(ctx, 1, conf.BookingID)
	require.NoError(t, err)
	require.Equal(t, int64(10), availableSeats(t, store, 1, 1))

	updated, err := repo.Update(ctx, 1, conf.BookingID, 5)
	require.NoError(t, err)

	assert.Equal(t, model.StatusConfirmed, updated.Status)
	assert.Equal(t, int64(5), updated.Seats)
	// Only the delta (5-4=1) is charged against availability.
	assert.Equal(t, int64(9), availableSeats(t, store, 1, 1))
}

func TestListBookingsRequiresAtLeastOneBooking(t *testing.T) {
	store := newTestStore(t)
	repo := NewBookingRepo(store)
	ctx := context.Background()

	_, err := repo.ListByUser(ctx, 99)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.ListByUser(ctx, 1)
	assert.ErrorIs(t, err, ErrNoBookings)

	conf, err := repo.Create(ctx, 1, 1, 1, 2)
	require.NoError(t, err)

	bookings, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, conf.BookingID, bookings[0].ID)
}

func TestGetBookingNotFound(t *testing.T) {
	store := newTestStore(t)
	repo := NewBookingRepo(store)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 1, "ABC123")
	assert.ErrorIs(t, err, ErrNoBookings)

	_, err = repo.Create(ctx, 1, 1, 1, 1)
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, 1, "ABC123")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestSummarizeAggregatesConfirmedOnly(t *testing.T) {
	store := newTestStore(t)
	repo := NewBookingRepo(store)
	ctx := context.Background()

	// Confirmed: 2 seats at 12.5 -> 25. Cancelled: 3 seats.
	kept, err := repo.Create(ctx, 1, 1, 1, 2)
	require.NoError(t, err)
	dropped, err := repo.Create(ctx, 1, 1, 1, 3)
	require.NoError(t, err)
	_, err = repo.Cancel(ctx, 1, dropped.BookingID)
	require.NoError(t, err)

	sum, err := repo.Summarize(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, uint64(1), sum.UserID)
	require.NotNil(t, sum.Username)
	assert.Equal(t, "alice", *sum.Username)
	assert.Equal(t, 2, sum.TotalBookings)
	assert.Equal(t, 1, sum.ConfirmedBookings)
	assert.Equal(t, 1, sum.CancelledBookings)
	assert.Equal(t, kept.TotalAmount, sum.TotalAmountSpent)
	assert.Equal(t, int64(2), sum.TotalSeatsBooked)
}

func TestSummarizeZeroBookingsSucceedsWhereListDoesNot(t *testing.T) {
	store := newTestStore(t)
	repo := NewBookingRepo(store)
	ctx := context.Background()

	_, err := repo.ListByUser(ctx, 2)
	assert.ErrorIs(t, err, ErrNoBookings)

	sum, err := repo.Summarize(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), sum.UserID)
	assert.Nil(t, sum.Username, "unset username serializes as null")
	assert.Zero(t, sum.TotalBookings)
	assert.Zero(t, sum.TotalAmountSpent)
	assert.Zero(t, sum.TotalSeatsBooked)

	_, err = repo.Summarize(ctx, 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestBookingCodesAreUniqueAndWellFormed(t *testing.T) {
	store := newTestStore(t)
	repo := NewBookingRepo(store)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 8; i++ {
		conf, err := repo.Create(ctx, 1, 1, 2, 1)
		require.NoError(t, err)
		assert.Regexp(t, `^[A-Z0-9]{6}$`, conf.BookingID)
		assert.False(t, seen[conf.BookingID])
		seen[conf.BookingID] = true
		// Return the seat so the show never runs dry.
		_, err = repo.Cancel(ctx, 1, conf.BookingID)
		require.NoError(t, err)
	}
}

func TestBookingDateIsRecentUTC(t *testing.T) {
	store := newTestStore(t)
	repo := NewBookingRepo(store)
	ctx := context.Background()

	before := time.Now().UTC().Add(-time.Second)
	conf, err := repo.Create(ctx, 1, 1, 1, 1)
	require.NoError(t, err)

	booking, err := repo.GetByID(ctx, 1, conf.BookingID)
	require.NoError(t, err)
	assert.True(t, booking.BookingDate.After(before))
	assert.True(t, booking.BookingDate.Before(time.Now().UTC().Add(time.Second)))
}
