package handler

import (
	"github.com/MKhiriev/go-cui-validator/internal/config"
	"github.com/MKhiriev/go-cui-validator/internal/handler/http"
	"github.com/MKhiriev/go-cui-validator/internal/logger"
	"github.com/MKhiriev/go-cui-validator/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger).WithRateLimit(cfg.RateLimit, cfg.RateBurst),
	}, nil
}
