package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/priyankawadle/Booking-Room-API/internal/domain"
	"github.com/priyankawadle/Booking-Room-API/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	Book(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	FindByEmail(ctx context.Context, email string) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	Cancel(ctx context.Context, email string, roomNumber int) (*domain.Booking, error)
	Modify(ctx context.Context, input domain.ModifyBookingInput) (*domain.Booking, error)
}

type Handler struct {
	bookingService BookingSvc
}

func NewHandler(bookingService BookingSvc) *Handler {
	return &Handler{bookingService: bookingService}
}

// BookRoom handles POST /api/bookings.
func (h *Handler) BookRoom(c *ginext.Context) {
	var req dto.BookRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Missing required booking details."})
		return
	}

	booking, err := h.bookingService.Book(c.Request.Context(), domain.CreateBookingInput{
		Name:     req.Name,
		Email:    req.Email,
		Contact:  req.Contact,
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.BookRoomResponse{
		Message:        "Room booked successfully!",
		BookingDetails: dto.ToBookingDetails(booking),
	})
}

// ViewBookingDetails handles GET /api/bookings/details?email=.
func (h *Handler) ViewBookingDetails(c *ginext.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Email is required to fetch details."})
		return
	}

	booking, err := h.bookingService.FindByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			c.Set("error", err.Error())
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "No booking found for this email."})
			return
		}
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BookingDetailsResponse{
		Message:        "Booking found.",
		BookingDetails: dto.ToBookingDetails(booking),
	})
}

// ViewAllGuests handles GET /api/bookings/guests.
func (h *Handler) ViewAllGuests(c *ginext.Context) {
	bookings, err := h.bookingService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	guests := make([]dto.BookingDetails, 0, len(bookings))
	for _, b := range bookings {
		guests = append(guests, dto.ToBookingDetails(b))
	}

	c.JSON(http.StatusOK, dto.GuestListResponse{
		Message: "List of all guests (bookings).",
		Guests:  guests,
	})
}

// CancelBooking handles DELETE /api/bookings/cancel.
func (h *Handler) CancelBooking(c *ginext.Context) {
	var req dto.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Email and room number are required."})
		return
	}

	roomNumber, err := parseRoomNumber(req.RoomNumber)
	if err != nil {
		h.handleError(c, err)
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), req.Email, roomNumber)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CancelBookingResponse{
		Message:          "Booking cancelled successfully.",
		CancelledBooking: dto.ToBookingDetails(booking),
	})
}

// ModifyBooking handles PUT /api/bookings/modify. Each of checkIn/checkOut
// is optional; providing neither returns the booking unchanged.
func (h *Handler) ModifyBooking(c *ginext.Context) {
	var req dto.ModifyBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Email and room number are required."})
		return
	}

	roomNumber, err := parseRoomNumber(req.RoomNumber)
	if err != nil {
		h.handleError(c, err)
		return
	}

	booking, err := h.bookingService.Modify(c.Request.Context(), domain.ModifyBookingInput{
		Email:      req.Email,
		RoomNumber: roomNumber,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ModifyBookingResponse{
		Message:        "Booking updated successfully.",
		UpdatedBooking: dto.ToBookingDetails(booking),
	})
}

// parseRoomNumber is the single coercion step from the wire value to int.
// An absent or non-numeric value fails as a validation error.
func parseRoomNumber(n json.Number) (int, error) {
	if n.String() == "" {
		return 0, fmt.Errorf("%w: email and room number are required", domain.ErrValidation)
	}

	v, err := strconv.Atoi(n.String())
	if err != nil {
		return 0, fmt.Errorf("%w: room number must be numeric", domain.ErrValidation)
	}

	return v, nil
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Booking not found."})

	case errors.Is(err, domain.ErrNoRoomsAvailable):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "No rooms available at the moment."})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Server error"})
	}
}
