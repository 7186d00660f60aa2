package models

// Validation result statuses returned by the /validate endpoint.
const (
	StatusValid   = "valid"
	StatusInvalid = "invalid"
)

// Messages paired with StatusValid and StatusInvalid.
const (
	MessageValidCUI   = "CUI is valid"
	MessageInvalidCUI = "Invalid CUI"
)

// StatusOnline is the only status the /uptime endpoint reports.
const StatusOnline = "online"

// StatusError and MessageRateLimited describe a request rejected before it
// reached an endpoint.
const (
	StatusError        = "error"
	MessageRateLimited = "Rate limit exceeded"
)

// ValidationResponse is the JSON envelope returned for a CUI validation.
// Malformed candidates and checksum mismatches share the same invalid body.
type ValidationResponse struct {
	// Status is either StatusValid or StatusInvalid.
	Status string `json:"status"`

	// Message is a human-readable description of Status.
	Message string `json:"message"`
}

// NewValidationResponse returns the fixed envelope for the given outcome.
func NewValidationResponse(valid bool) ValidationResponse {
	if valid {
		return ValidationResponse{Status: StatusValid, Message: MessageValidCUI}
	}
	return ValidationResponse{Status: StatusInvalid, Message: MessageInvalidCUI}
}

// Uptime reports that the service is running and for how long.
type Uptime struct {
	// Status is always StatusOnline.
	Status string `json:"status"`

	// Seconds is the number of whole seconds elapsed since process start.
	Seconds uint64 `json:"uptime_seconds"`
}

// ErrorResponse is returned for requests refused by the server itself,
// such as those over the rate limit.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// About is the fixed metadata object describing the API.
type About struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Author      string `json:"author"`
}
