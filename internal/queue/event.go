// Package queue defines message payloads exchanged over the message broker.
package queue

// Event type values published on the booking.events queue.
const (
	EventBookingConfirmed = "booking.confirmed"
	EventBookingUpdated   = "booking.updated"
	EventBookingCancelled = "booking.cancelled"
)

// BookingEvent is published whenever a booking is created, updated or
// cancelled.  It carries enough information for downstream consumers to
// log or notify without re-reading the snapshot file.
type BookingEvent struct {
	Type        string  `json:"type"`
	BookingID   string  `json:"booking_id"`
	UserID      uint64  `json:"user_id"`
	MovieID     uint64  `json:"movie_id"`
	ShowID      uint64  `json:"show_id"`
	MovieTitle  string  `json:"movie_title,omitempty"`
	ShowTime    string  `json:"show_time,omitempty"`
	Seats       int64   `json:"seats"`
	TotalAmount float64 `json:"total_amount"`
	OccurredAt  string  `json:"occurred_at"`
}
