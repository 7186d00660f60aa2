package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-cui-validator/models"
)

// CUIService checks Romanian company identification numbers.
type CUIService interface {
	// ValidateCUI reports whether candidate is a valid CUI. It never fails:
	// malformed input is simply not valid.
	ValidateCUI(ctx context.Context, candidate string) bool
}

// AppInfoService exposes static metadata about the running API.
type AppInfoService interface {
	GetAbout(ctx context.Context) models.About
	GetAppVersion(ctx context.Context) string
}

// UptimeService reports how long the process has been running.
type UptimeService interface {
	GetUptime(ctx context.Context) models.Uptime
}

// CUIServiceWrapper defines middleware composition for CUIService.
// Implementations wrap an existing CUIService to add behavior such as
// logging.
type CUIServiceWrapper interface {
	Wrap(CUIService) CUIService // returns a decorated CUIService applying additional behavior
}
