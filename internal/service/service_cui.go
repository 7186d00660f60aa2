package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-cui-validator/internal/logger"
	"github.com/MKhiriev/go-cui-validator/internal/validators"
)

type cuiService struct {
	validator validators.Validator

	logger *logger.Logger
}

func NewCUIService(validator validators.Validator, logger *logger.Logger) CUIService {
	return &cuiService{
		validator: validator,
		logger:    logger,
	}
}

// ValidateCUI reports whether candidate is a valid CUI. Errors other than
// a plain rejection are logged and also count as invalid.
func (s *cuiService) ValidateCUI(ctx context.Context, candidate string) bool {
	err := s.validator.Validate(ctx, candidate)
	if err == nil {
		return true
	}

	if !errors.Is(err, validators.ErrInvalidCUI) {
		s.logger.Error().Err(err).Msg("unexpected error validating CUI")
	}
	return false
}
