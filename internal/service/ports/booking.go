package ports

import (
	"context"

	"github.com/priyankawadle/Booking-Room-API/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	GetByEmail(ctx context.Context, email string) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	Delete(ctx context.Context, email string, roomNumber int) (*domain.Booking, error)
	Update(ctx context.Context, input domain.ModifyBookingInput) (*domain.Booking, error)
	Occupancy(ctx context.Context) (domain.Occupancy, error)
}
