// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the CUI validator API.
//
// The primary abstraction is [ServerAdapter], which hides the transport from
// callers such as the container healthcheck. The package ships an HTTP
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404). An invalid CUI is a regular answer, not an error.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-cui-validator/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with a running CUI validator.
type ServerAdapter interface {
	// Validate asks the server whether cui is valid. The server's verdict is
	// returned as the bool; err is only set for transport failures or
	// unexpected responses.
	Validate(ctx context.Context, cui string) (bool, error)

	// About fetches the API metadata object.
	About(ctx context.Context) (models.About, error)

	// Uptime fetches the server status and uptime.
	Uptime(ctx context.Context) (models.Uptime, error)

	// Version fetches the version string the server reports.
	Version(ctx context.Context) (string, error)
}
