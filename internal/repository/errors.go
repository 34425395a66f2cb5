// Package repository implements data access on top of the snapshot
// store.  This file defines sentinel errors shared by the repositories.
// Handlers compare against these values with errors.Is to choose the
// HTTP status: the *NotFound errors map to 404, ErrInsufficientSeats
// and ErrNoBookings map to 400/404 per route, anything else is a 500.
package repository

import "errors"

// ErrUserNotFound is returned when no user exists for the given ID.
var ErrUserNotFound = errors.New("user not found")

// ErrMovieNotFound is returned when no movie exists for the given ID.
var ErrMovieNotFound = errors.New("movie not found")

// ErrShowNotFound is returned when the movie has no show with the
// given ID.
var ErrShowNotFound = errors.New("show not found")

// ErrBookingNotFound is returned when the user has no booking with the
// given booking code.
var ErrBookingNotFound = errors.New("booking not found")

// ErrNoBookings is returned by listing when the user exists but has
// never booked anything.  Listing treats an empty booking history as a
// not-found condition; the summary endpoint deliberately does not.
var ErrNoBookings = errors.New("user has no bookings")

// ErrInsufficientSeats is returned when a create or a growing update
// asks for more seats than the show has available.
var ErrInsufficientSeats = errors.New("not enough seats available")
