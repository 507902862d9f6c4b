package service

import (
	"context"
	"fmt"

	"github.com/priyankawadle/Booking-Room-API/internal/domain"
	"github.com/priyankawadle/Booking-Room-API/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	repo   ports.BookingRepo
	logger logger.Logger
}

func NewBookingService(repo ports.BookingRepo, logger logger.Logger) *BookingService {
	return &BookingService{
		repo:   repo,
		logger: logger,
	}
}

// Book validates the guest details and assigns a room from the pool.
// Validation failures happen before the pool is touched.
func (s *BookingService) Book(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if input.Name == "" || input.Email == "" || input.Contact == "" ||
		input.CheckIn == "" || input.CheckOut == "" {
		return nil, fmt.Errorf("%w: missing required booking details", domain.ErrValidation)
	}

	booking, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("room booked",
		logger.String("email", booking.Email),
		logger.Int("room", booking.RoomNumber),
	)

	return booking, nil
}

// FindByEmail returns the earliest booking with an exact email match.
func (s *BookingService) FindByEmail(ctx context.Context, email string) (*domain.Booking, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}

	return s.repo.GetByEmail(ctx, email)
}

func (s *BookingService) List(ctx context.Context) ([]*domain.Booking, error) {
	return s.repo.List(ctx)
}

// Cancel removes the matching booking and returns its room to the pool.
func (s *BookingService) Cancel(ctx context.Context, email string, roomNumber int) (*domain.Booking, error) {
	if email == "" || roomNumber == 0 {
		return nil, fmt.Errorf("%w: email and room number are required", domain.ErrValidation)
	}

	booking, err := s.repo.Delete(ctx, email, roomNumber)
	if err != nil {
		return nil, fmt.Errorf("delete booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("email", booking.Email),
		logger.Int("room", booking.RoomNumber),
	)

	return booking, nil
}

// Modify patches the stay dates of the matching booking. Providing neither
// date returns the booking unchanged.
func (s *BookingService) Modify(ctx context.Context, input domain.ModifyBookingInput) (*domain.Booking, error) {
	if input.Email == "" || input.RoomNumber == 0 {
		return nil, fmt.Errorf("%w: email and room number are required", domain.ErrValidation)
	}

	booking, err := s.repo.Update(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	s.logger.Info("booking updated",
		logger.String("email", booking.Email),
		logger.Int("room", booking.RoomNumber),
	)

	return booking, nil
}

func (s *BookingService) Occupancy(ctx context.Context) (domain.Occupancy, error) {
	return s.repo.Occupancy(ctx)
}
