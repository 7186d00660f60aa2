package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-cui-validator/internal/logger"
	"github.com/MKhiriev/go-cui-validator/models"
)

type uptimeService struct {
	// startTime is set once at construction and only read afterwards.
	startTime time.Time
	now       func() time.Time

	logger *logger.Logger
}

func NewUptimeService(startTime time.Time, logger *logger.Logger) (UptimeService, error) {
	if startTime.IsZero() {
		return nil, ErrStartTimeIsNotSet
	}

	return &uptimeService{
		startTime: startTime,
		now:       time.Now,
		logger:    logger,
	}, nil
}

// GetUptime returns whole seconds since start. A clock that moved backwards
// reports zero.
func (s *uptimeService) GetUptime(ctx context.Context) models.Uptime {
	elapsed := s.now().Sub(s.startTime)
	if elapsed < 0 {
		logger.FromContext(ctx).Warn().
			Time("start_time", s.startTime).
			Dur("elapsed", elapsed).
			Msg("clock is behind process start time")
		elapsed = 0
	}

	return models.Uptime{
		Status:  models.StatusOnline,
		Seconds: uint64(elapsed / time.Second),
	}
}
