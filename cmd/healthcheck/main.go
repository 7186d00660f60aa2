// Command healthcheck probes a running CUI validator and exits non-zero when
// it is unreachable or not online. It reads the same configuration as the
// server, so it can be used as a container HEALTHCHECK without arguments.
package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-cui-validator/internal/adapter"
	"github.com/MKhiriev/go-cui-validator/internal/config"
	"github.com/MKhiriev/go-cui-validator/internal/logger"
)

func main() {
	log := logger.NewLogger("cui-validator-healthcheck")

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	client := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: adapter.BaseURLFromAddress(cfg.Server.HTTPAddress),
		Timeout: cfg.Server.RequestTimeout,
	})

	os.Exit(run(context.Background(), client, log))
}

func run(ctx context.Context, client adapter.ServerAdapter, log *logger.Logger) int {
	uptime, err := adapter.Probe(ctx, client)
	if err != nil {
		log.Error().Err(err).Msg("healthcheck failed")
		return 1
	}

	log.Info().Uint64("uptime_seconds", uptime.Seconds).Msg("server is online")
	return 0
}
