package dto

import "encoding/json"

type BookRoomRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Contact  string `json:"contact"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

// RoomNumber is json.Number so both 101 and "101" coerce; the handler owns
// the single parse step to int.
type CancelBookingRequest struct {
	Email      string      `json:"email"`
	RoomNumber json.Number `json:"roomNumber"`
}

type ModifyBookingRequest struct {
	Email      string      `json:"email"`
	RoomNumber json.Number `json:"roomNumber"`
	CheckIn    string      `json:"checkIn"`
	CheckOut   string      `json:"checkOut"`
}
