package model

// Movie represents a film in the catalogue together with its scheduled
// shows.  Movies are created at data-seed time and are only mutated
// indirectly, through seat-count changes on their shows.
//
// Fields:
//
//	ID       – catalogue identifier.
//	Title    – movie title.
//	Genre    – genre label (e.g. "Sci-Fi").
//	Duration – running time in minutes.
//	Shows    – ordered list of scheduled shows for this movie.
type Movie struct {
	ID       uint64 `json:"id"`       // movies[].id
	Title    string `json:"title"`    // movies[].title
	Genre    string `json:"genre"`    // movies[].genre
	Duration uint32 `json:"duration"` // movies[].duration (minutes)
	Shows    []Show `json:"shows"`    // movies[].shows
}

// Show is a single screening of a movie.  The show identifier is unique
// within its movie only.  AvailableSeats is the live seat inventory the
// booking ledger decrements and credits; the original capacity is not
// stored separately, so availability is only guaranteed to stay >= 0.
//
// Fields:
//
//	ID             – show identifier, unique within the parent movie.
//	Time           – screening start time as supplied at seed time.
//	PricePerSeat   – price of one seat.
//	AvailableSeats – seats still open for booking.
type Show struct {
	ID             uint64  `json:"showId"`         // shows[].showId
	Time           string  `json:"time"`           // shows[].time
	PricePerSeat   float64 `json:"pricePerSeat"`   // shows[].pricePerSeat
	AvailableSeats int64   `json:"availableSeats"` // shows[].availableSeats
}
