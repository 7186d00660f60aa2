// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-cui-validator/internal/config"
	handler "github.com/MKhiriev/go-cui-validator/internal/handler/http"
	"github.com/MKhiriev/go-cui-validator/internal/logger"
	"github.com/MKhiriev/go-cui-validator/internal/service"
	"github.com/MKhiriev/go-cui-validator/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newValidatorServer starts the real API on a test server.
func newValidatorServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := config.App{
		Name:        config.DefaultAppName,
		Description: config.DefaultAppDescription,
		Author:      config.DefaultAppAuthor,
		Version:     "1.2.3",
	}
	services, err := service.NewServices(cfg, models.NewAppBuildInfo("", "", ""), time.Now(), logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(handler.NewHandler(services, logger.Nop()).Init())
	t.Cleanup(srv.Close)
	return srv
}

func newTestAdapter(t *testing.T, serverURL string) ServerAdapter {
	t.Helper()
	return NewHTTPServerAdapter(HTTPClientConfig{BaseURL: serverURL, Timeout: 2 * time.Second})
}

// ── Validate ────────────────────────────────────────────────────────────────

func TestValidate_AgainstServer(t *testing.T) {
	a := newTestAdapter(t, newValidatorServer(t).URL)

	tests := []struct {
		cui  string
		want bool
	}{
		{cui: "33034700", want: true},
		{cui: "2000", want: true},
		{cui: "123456", want: false},
		{cui: "12a4", want: false},
		{cui: "", want: false},
		{cui: "3303 700", want: false},
		{cui: "12345678901", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.cui, func(t *testing.T) {
			got, err := a.Validate(context.Background(), tt.cui)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Validate(context.Background(), "33034700")

	assert.False(t, got)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

func TestValidate_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Validate(context.Background(), "33034700")

	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestValidate_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"maybe","message":"?"}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Validate(context.Background(), "33034700")

	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestValidate_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).Validate(context.Background(), "33034700")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate request")
}

// ── About / Uptime / Version ────────────────────────────────────────────────

func TestAbout_AgainstServer(t *testing.T) {
	a := newTestAdapter(t, newValidatorServer(t).URL)

	about, err := a.About(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.About{
		Name:        config.DefaultAppName,
		Description: config.DefaultAppDescription,
		Author:      config.DefaultAppAuthor,
	}, about)
}

func TestUptime_AgainstServer(t *testing.T) {
	a := newTestAdapter(t, newValidatorServer(t).URL)

	uptime, err := a.Uptime(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.StatusOnline, uptime.Status)
}

func TestVersion_AgainstServer(t *testing.T) {
	a := newTestAdapter(t, newValidatorServer(t).URL)

	version, err := a.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", version)
}

func TestEndpoints_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	a := newTestAdapter(t, srv.URL)

	_, err := a.About(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = a.Uptime(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = a.Version(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Probe ───────────────────────────────────────────────────────────────────

func TestProbe_Online(t *testing.T) {
	a := newTestAdapter(t, newValidatorServer(t).URL)

	uptime, err := Probe(context.Background(), a)

	require.NoError(t, err)
	assert.Equal(t, models.StatusOnline, uptime.Status)
}

func TestProbe_NotOnline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"starting","uptime_seconds":0}`))
	}))
	defer srv.Close()

	_, err := Probe(context.Background(), newTestAdapter(t, srv.URL))

	assert.ErrorIs(t, err, ErrServerOffline)
}

// ── helpers ─────────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_Defaults(t *testing.T) {
	a := NewHTTPServerAdapter(HTTPClientConfig{}).(*httpServerAdapter)

	assert.Equal(t, defaultTimeout, a.client.GetClient().Timeout)
}

func TestBaseURLFromAddress(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{addr: "0.0.0.0:8000", want: "http://127.0.0.1:8000"},
		{addr: ":8000", want: "http://127.0.0.1:8000"},
		{addr: "localhost:8080", want: "http://localhost:8080"},
		{addr: "10.0.0.5:9000", want: "http://10.0.0.5:9000"},
		{addr: "[::]:8000", want: "http://127.0.0.1:8000"},
		{addr: "no-port", want: "http://no-port"},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			assert.Equal(t, tt.want, BaseURLFromAddress(tt.addr))
		})
	}
}

func TestMapHTTPError_Default(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}
