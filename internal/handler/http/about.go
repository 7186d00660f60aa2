package http

import (
	"net/http"

	"github.com/MKhiriev/go-cui-validator/internal/logger"
	"github.com/MKhiriev/go-cui-validator/internal/utils"
)

func (h *Handler) about(w http.ResponseWriter, r *http.Request) {
	about := h.services.AppInfoService.GetAbout(r.Context())

	if _, err := utils.WriteJSON(w, about, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing about response")
	}
}
