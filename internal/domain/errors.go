package domain

import "errors"

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrNoRoomsAvailable = errors.New("no rooms available")
)

var (
	ErrValidation = errors.New("validation error")
)
