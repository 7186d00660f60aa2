package http

import (
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-cui-validator/internal/logger"
	"github.com/MKhiriev/go-cui-validator/internal/utils"
	"github.com/MKhiriev/go-cui-validator/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) validateCUI(w http.ResponseWriter, r *http.Request) {
	cui := chi.URLParam(r, "cui")
	// chi matches against the raw path when it carries escapes
	if unescaped, err := url.PathUnescape(cui); err == nil {
		cui = unescaped
	}

	valid := h.services.CUIService.ValidateCUI(r.Context(), cui)

	status := http.StatusOK
	if !valid {
		status = http.StatusBadRequest
	}

	if _, err := utils.WriteJSON(w, models.NewValidationResponse(valid), status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing validation response")
	}
}
