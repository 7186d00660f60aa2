package http

import (
	"net/http"

	"github.com/MKhiriev/go-cui-validator/internal/logger"
	"github.com/MKhiriev/go-cui-validator/internal/utils"
)

func (h *Handler) uptime(w http.ResponseWriter, r *http.Request) {
	uptime := h.services.UptimeService.GetUptime(r.Context())

	if _, err := utils.WriteJSON(w, uptime, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing uptime response")
	}
}
