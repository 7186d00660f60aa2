package service

import (
	"context"

	"github.com/MKhiriev/go-cui-validator/internal/config"
	"github.com/MKhiriev/go-cui-validator/internal/logger"
	"github.com/MKhiriev/go-cui-validator/models"
)

type appInfoService struct {
	about      models.About
	appVersion string
}

// NewAppInfoService builds the metadata service. The configured version wins
// over the linker-injected build version.
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Name == "" {
		return nil, ErrAppNameIsNotSpecified
	}

	version, source := cfg.Version, "config"
	if version == "" {
		version, source = buildInfo.BuildVersion(), "build"
		if !buildInfo.HasVersion() {
			source = "none"
			logger.Warn().Msg("no application version configured or injected at build time")
		}
	}

	logger.Debug().
		Str("version", version).
		Str("version_source", source).
		Msg("application version resolved")

	return &appInfoService{
		about: models.About{
			Name:        cfg.Name,
			Description: cfg.Description,
			Author:      cfg.Author,
		},
		appVersion: version,
	}, nil
}

func (s *appInfoService) GetAbout(ctx context.Context) models.About {
	return s.about
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
