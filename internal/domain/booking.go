package domain

// Booking ties an assigned room number to guest contact info and stay dates.
// CheckIn/CheckOut are opaque strings, stored and returned verbatim.
type Booking struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Contact    string `json:"contact"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
	RoomNumber int    `json:"roomNumber"`
}

type CreateBookingInput struct {
	Name     string
	Email    string
	Contact  string
	CheckIn  string
	CheckOut string
}

// ModifyBookingInput patches stay dates on an existing booking. An empty
// CheckIn/CheckOut means "leave unchanged", not "clear the field".
type ModifyBookingInput struct {
	Email      string
	RoomNumber int
	CheckIn    string
	CheckOut   string
}

type Occupancy struct {
	AvailableRooms int
	ActiveBookings int
}
