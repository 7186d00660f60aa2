package http

import (
	"github.com/MKhiriev/go-cui-validator/internal/logger"
	"github.com/MKhiriev/go-cui-validator/internal/service"
	"github.com/MKhiriev/go-cui-validator/internal/utils"
	"golang.org/x/time/rate"
)

// idGenerator produces trace IDs for requests that arrive without one.
type idGenerator interface {
	Generate() string
}

type Handler struct {
	services *service.Services

	traceIDs idGenerator
	limiter  *rate.Limiter
	logger   *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

// WithRateLimit limits the validation endpoints to perSecond requests with
// the given burst, shared by all clients. A non-positive perSecond leaves
// them unlimited.
func (h *Handler) WithRateLimit(perSecond float64, burst int) *Handler {
	h.limiter = newLimiter(perSecond, burst)
	if h.limiter != nil {
		h.logger.Info().
			Float64("rate_limit", perSecond).
			Int("rate_burst", h.limiter.Burst()).
			Msg("rate limiting enabled")
	}
	return h
}
