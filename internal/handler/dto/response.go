package dto

import "github.com/priyankawadle/Booking-Room-API/internal/domain"

type BookingDetails struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Contact    string `json:"contact"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
	RoomNumber int    `json:"roomNumber"`
}

type BookRoomResponse struct {
	Message        string         `json:"message"`
	BookingDetails BookingDetails `json:"bookingDetails"`
}

type BookingDetailsResponse struct {
	Message        string         `json:"message"`
	BookingDetails BookingDetails `json:"bookingDetails"`
}

type GuestListResponse struct {
	Message string           `json:"message"`
	Guests  []BookingDetails `json:"guests"`
}

type CancelBookingResponse struct {
	Message          string         `json:"message"`
	CancelledBooking BookingDetails `json:"cancelledBooking"`
}

type ModifyBookingResponse struct {
	Message        string         `json:"message"`
	UpdatedBooking BookingDetails `json:"updatedBooking"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToBookingDetails(b *domain.Booking) BookingDetails {
	return BookingDetails{
		Name:       b.Name,
		Email:      b.Email,
		Contact:    b.Contact,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		RoomNumber: b.RoomNumber,
	}
}
