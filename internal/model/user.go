package model

// User is an application user as stored in the snapshot file.  The
// identifier is assigned from the highest persisted ID at signup so it
// survives process restarts.  PasswordHash holds a bcrypt digest; the
// source system stored the password in clear text, which this port does
// not reproduce.  The hash is never included in API responses — handlers
// define their own response types.
//
// Fields:
//
//	ID           – sequential user identifier.
//	Username     – optional display name (empty when not provided).
//	Email        – contact email supplied at signup.
//	PasswordHash – bcrypt hash of the signup password (optional).
//	Bookings     – ordered list of the user's bookings, oldest first.
type User struct {
	ID           uint64    `json:"id"`                 // users[].id
	Username     string    `json:"username,omitempty"` // users[].username
	Email        string    `json:"email"`              // users[].email
	PasswordHash string    `json:"password,omitempty"` // users[].password (bcrypt digest)
	Bookings     []Booking `json:"bookings"`           // users[].bookings
}

// BookingByID returns a pointer to the user's booking with the given
// identifier, or nil when no such booking exists.  The pointer aliases
// the slice element so callers may mutate the booking in place.
func (u *User) BookingByID(bookingID string) *Booking {
	for i := range u.Bookings {
		if u.Bookings[i].ID == bookingID {
			return &u.Bookings[i]
		}
	}
	return nil
}
