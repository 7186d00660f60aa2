package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-cui-validator/internal/logger"
)

// maxLoggedCandidateLength caps how much of a candidate ends up in the logs.
const maxLoggedCandidateLength = 32

type CUILoggingService struct {
	inner CUIService
}

func NewCUILoggingService() CUIServiceWrapper {
	return &CUILoggingService{}
}

func (l *CUILoggingService) Wrap(inner CUIService) CUIService {
	l.inner = inner
	return l
}

func (l *CUILoggingService) ValidateCUI(ctx context.Context, candidate string) bool {
	log := logger.FromContext(ctx)
	start := time.Now()

	valid := l.inner.ValidateCUI(ctx, candidate)

	log.Debug().
		Str("cui", truncate(candidate, maxLoggedCandidateLength)).
		Int("length", len(candidate)).
		Bool("valid", valid).
		Dur("duration", time.Since(start)).
		Msg("CUI validated")

	return valid
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
