package model

import "time"

// Booking status values.  A booking starts CONFIRMED and moves to
// CANCELLED via cancellation; an update moves it back to CONFIRMED.
// There is no terminal state.
const (
	StatusConfirmed = "CONFIRMED"
	StatusCancelled = "CANCELLED"
)

// Booking records a user's seat purchase for one show.  Bookings are
// mutated in place by update and cancel and are never deleted.  The
// movie and show are referenced by identifier only; existence is checked
// at request time, there is no further foreign-key enforcement.
//
// Fields:
//
//	ID          – 6-character uppercase alphanumeric booking code.
//	MovieID     – movie the booking refers to.
//	ShowID      – show within that movie.
//	Seats       – number of seats booked.
//	TotalAmount – seats * pricePerSeat at booking/update time.
//	Status      – CONFIRMED or CANCELLED.
//	BookingDate – timestamp of the last mutation, UTC.
type Booking struct {
	ID          string    `json:"bookingId"`   // bookings[].bookingId
	MovieID     uint64    `json:"movieId"`     // bookings[].movieId
	ShowID      uint64    `json:"showId"`      // bookings[].showId
	Seats       int64     `json:"seats"`       // bookings[].seats
	TotalAmount float64   `json:"totalAmount"` // bookings[].totalAmount
	Status      string    `json:"status"`      // bookings[].status
	BookingDate time.Time `json:"bookingDate"` // bookings[].bookingDate
}

// Summary aggregates a user's booking activity.  Spending and seat
// totals cover CONFIRMED bookings only; the counts cover everything.
// A user without bookings gets a zero-valued summary, not an error.
type Summary struct {
	UserID            uint64  `json:"userId"`
	Username          *string `json:"userName"`
	TotalBookings     int     `json:"totalBookings"`
	TotalAmountSpent  float64 `json:"totalAmountSpent"`
	ConfirmedBookings int     `json:"confirmedBookings"`
	CancelledBookings int     `json:"cancelledBookings"`
	TotalSeatsBooked  int64   `json:"totalSeatsBooked"`
}

// Snapshot is the full persisted state of the service: every user with
// their bookings plus the movie catalogue with live seat counts.  The
// store reads and writes it as a whole; there are no partial updates.
type Snapshot struct {
	Users  []User  `json:"users"`
	Movies []Movie `json:"movies"`
}

// UserByID returns a pointer into the snapshot's user slice, or nil.
func (s *Snapshot) UserByID(id uint64) *User {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return &s.Users[i]
		}
	}
	return nil
}

// MovieByID returns a pointer into the snapshot's movie slice, or nil.
func (s *Snapshot) MovieByID(id uint64) *Movie {
	for i := range s.Movies {
		if s.Movies[i].ID == id {
			return &s.Movies[i]
		}
	}
	return nil
}

// ShowByID returns a pointer to the movie's show with the given
// identifier, or nil when the movie has no such show.
func (m *Movie) ShowByID(id uint64) *Show {
	for i := range m.Shows {
		if m.Shows[i].ID == id {
			return &m.Shows[i]
		}
	}
	return nil
}
