package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")

	// ErrUnexpectedResponse is returned when a response has an expected status
	// but a body that does not match the API contract.
	ErrUnexpectedResponse = errors.New("unexpected response")

	// ErrServerOffline is returned by Probe when the server answers but does
	// not report itself online.
	ErrServerOffline = errors.New("server is not online")
)
