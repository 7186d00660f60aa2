package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-cui-validator/models"
	"github.com/go-resty/resty/v2"
)

const (
	defaultBaseURL = "http://localhost:8000"
	defaultTimeout = 5 * time.Second
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client
}

func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

// BaseURLFromAddress turns a listen address such as "0.0.0.0:8000" or ":8000"
// into a URL a local client can dial.
func BaseURLFromAddress(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr
	}

	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}

	return "http://" + net.JoinHostPort(host, port)
}

func (h *httpServerAdapter) Validate(ctx context.Context, cui string) (bool, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("cui", cui).
		Get("/validate/{cui}")
	if err != nil {
		return false, fmt.Errorf("validate request: %w", err)
	}

	// 400 carries the "invalid" verdict, so only other statuses are errors
	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusBadRequest {
		return false, mapHTTPError(resp)
	}

	var verdict models.ValidationResponse
	if err = json.Unmarshal(resp.Body(), &verdict); err != nil {
		return false, fmt.Errorf("%w: decoding validation response: %w", ErrUnexpectedResponse, err)
	}

	switch verdict.Status {
	case models.StatusValid:
		return true, nil
	case models.StatusInvalid:
		return false, nil
	default:
		return false, fmt.Errorf("%w: validation status %q", ErrUnexpectedResponse, verdict.Status)
	}
}

func (h *httpServerAdapter) About(ctx context.Context) (models.About, error) {
	var about models.About

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&about).
		Get("/about")
	if err != nil {
		return models.About{}, fmt.Errorf("about request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.About{}, err
	}

	return about, nil
}

func (h *httpServerAdapter) Uptime(ctx context.Context) (models.Uptime, error) {
	var uptime models.Uptime

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&uptime).
		Get("/uptime")
	if err != nil {
		return models.Uptime{}, fmt.Errorf("uptime request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Uptime{}, err
	}

	return uptime, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

// Probe reports whether the server behind adapter is up and online.
func Probe(ctx context.Context, adapter ServerAdapter) (models.Uptime, error) {
	uptime, err := adapter.Uptime(ctx)
	if err != nil {
		return models.Uptime{}, err
	}

	if uptime.Status != models.StatusOnline {
		return uptime, fmt.Errorf("%w: status %q", ErrServerOffline, uptime.Status)
	}

	return uptime, nil
}
