package utils

import "crypto/rand"

// bookingCodeAlphabet holds the characters booking codes are drawn
// from.  Uppercase letters and digits keep the codes easy to read back
// over the phone.
const bookingCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// bookingCodeLen is the fixed length of a booking code.
const bookingCodeLen = 6

// NewBookingCode returns a random 6-character code such as "K3QZ7A".
// Uniqueness is not guaranteed here; callers must verify the code
// against existing bookings before using it.
func NewBookingCode() (string, error) {
	buf := make([]byte, bookingCodeLen)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = bookingCodeAlphabet[int(b)%len(bookingCodeAlphabet)]
	}
	return string(buf), nil
}
