package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-cui-validator/internal/config"
	"github.com/MKhiriev/go-cui-validator/internal/logger"
	"github.com/MKhiriev/go-cui-validator/internal/validators"
	"github.com/MKhiriev/go-cui-validator/models"
)

type Services struct {
	CUIService     CUIService
	AppInfoService AppInfoService
	UptimeService  UptimeService
}

func NewServices(cfg config.App, buildInfo models.AppBuildInfo, startTime time.Time, logger *logger.Logger) (*Services, error) {
	logger.Info().Msg("creating new services...")

	appInfoService, err := NewAppInfoService(cfg, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	uptimeService, err := NewUptimeService(startTime, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating uptime service: %w", err)
	}

	cuiService := NewCUILoggingService().Wrap(
		NewCUIService(validators.NewCUIValidator(), logger),
	)

	return &Services{
		CUIService:     cuiService,
		AppInfoService: appInfoService,
		UptimeService:  uptimeService,
	}, nil
}
