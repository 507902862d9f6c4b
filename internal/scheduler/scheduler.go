package scheduler

import (
	"context"
	"time"

	"github.com/priyankawadle/Booking-Room-API/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type occupancyReader interface {
	Occupancy(ctx context.Context) (domain.Occupancy, error)
}

// Scheduler periodically logs how many rooms are available and how many
// bookings are active. Stay dates are opaque strings, so there is nothing
// to expire; this is observability only.
type Scheduler struct {
	bookingService occupancyReader
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService occupancyReader,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	occ, err := s.bookingService.Occupancy(ctx)
	if err != nil {
		s.logger.Error("failed to read occupancy",
			logger.String("error", err.Error()),
		)
		return
	}

	s.logger.Info("occupancy",
		logger.Int("available_rooms", occ.AvailableRooms),
		logger.Int("active_bookings", occ.ActiveBookings),
	)
}
