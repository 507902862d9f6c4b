package repository

import (
	"context"
	"sync"

	"github.com/priyankawadle/Booking-Room-API/internal/domain"
)

// BookingRepository holds the room pool and the active bookings in memory.
// Every operation runs under a single mutex scope so that a room number is
// never in the pool and in an active booking at the same time.
type BookingRepository struct {
	mu       sync.Mutex
	pool     []int
	bookings []*domain.Booking
}

// NewBookingRepo seeds the pool with the given room numbers, in order.
func NewBookingRepo(rooms []int) *BookingRepository {
	pool := make([]int, len(rooms))
	copy(pool, rooms)
	return &BookingRepository{pool: pool}
}

// Create assigns the room that has been available the longest and appends
// the new booking to the collection.
func (r *BookingRepository) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.pool) == 0 {
		return nil, domain.ErrNoRoomsAvailable
	}

	room := r.pool[0]
	r.pool = r.pool[1:]

	b := &domain.Booking{
		Name:       input.Name,
		Email:      input.Email,
		Contact:    input.Contact,
		CheckIn:    input.CheckIn,
		CheckOut:   input.CheckOut,
		RoomNumber: room,
	}
	r.bookings = append(r.bookings, b)

	return b, nil
}

// GetByEmail returns the earliest-inserted booking with an exact email
// match. Duplicate emails are allowed; first match wins.
func (r *BookingRepository) GetByEmail(ctx context.Context, email string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.bookings {
		if b.Email == email {
			return b, nil
		}
	}

	return nil, domain.ErrBookingNotFound
}

// List returns all bookings in insertion order.
func (r *BookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := make([]*domain.Booking, len(r.bookings))
	copy(res, r.bookings)

	return res, nil
}

// Delete removes the earliest booking matching email and room number and
// appends its room to the tail of the pool.
func (r *BookingRepository) Delete(ctx context.Context, email string, roomNumber int) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.bookings {
		if b.Email == email && b.RoomNumber == roomNumber {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			r.pool = append(r.pool, b.RoomNumber)
			return b, nil
		}
	}

	return nil, domain.ErrBookingNotFound
}

// Update patches stay dates on the earliest booking matching email and room
// number, in place. An empty date leaves the stored value unchanged.
func (r *BookingRepository) Update(ctx context.Context, input domain.ModifyBookingInput) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.bookings {
		if b.Email == input.Email && b.RoomNumber == input.RoomNumber {
			if input.CheckIn != "" {
				b.CheckIn = input.CheckIn
			}
			if input.CheckOut != "" {
				b.CheckOut = input.CheckOut
			}
			return b, nil
		}
	}

	return nil, domain.ErrBookingNotFound
}

func (r *BookingRepository) Occupancy(ctx context.Context) (domain.Occupancy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return domain.Occupancy{
		AvailableRooms: len(r.pool),
		ActiveBookings: len(r.bookings),
	}, nil
}
