package http

import (
	"math"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-cui-validator/internal/logger"
	"github.com/MKhiriev/go-cui-validator/internal/utils"
	"github.com/MKhiriev/go-cui-validator/models"
	"golang.org/x/time/rate"
)

// newLimiter returns nil when perSecond is not a positive finite number.
// A zero burst defaults to perSecond rounded up.
func newLimiter(perSecond float64, burst int) *rate.Limiter {
	if !(perSecond > 0) || math.IsInf(perSecond, 1) {
		return nil
	}
	if burst <= 0 {
		burst = int(math.Ceil(perSecond))
	}

	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

// withRateLimit answers 429 once limiter runs out of tokens.
func withRateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(limiter.Limit())))
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limiter.Burst()))
			w.Header().Set("X-RateLimit-Remaining", "0")

			resp := models.ErrorResponse{Status: models.StatusError, Message: models.MessageRateLimited}
			if _, err := utils.WriteJSON(w, resp, http.StatusTooManyRequests); err != nil {
				logger.FromRequest(r).Err(err).Msg("error writing rate limit response")
			}
		})
	}
}

// retryAfterSeconds is the whole number of seconds until one token is back,
// never less than one.
func retryAfterSeconds(limit rate.Limit) int {
	if limit <= 0 {
		return 1
	}

	// the epsilon absorbs float error from rate.Every, e.g. 1/(1/3600)
	seconds := int(math.Ceil(1/float64(limit) - 1e-9))
	if seconds < 1 {
		return 1
	}
	return seconds
}
