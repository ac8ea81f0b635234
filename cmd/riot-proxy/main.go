// Command riot-proxy exposes the Riot client over HTTP for local analytics
// tooling: a health check, the observability status snapshot, Prometheus
// metrics, and a composite player profile endpoint.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/riftwatch/riot-client/pkg/client"
	"github.com/riftwatch/riot-client/pkg/logging"
	"github.com/riftwatch/riot-client/pkg/staticdata"
)

type config struct {
	APIKey   string `env:"RIOT_API_KEY,required"`
	Platform string `env:"RIOT_PLATFORM" envDefault:"euw1"`
	Region   string `env:"RIOT_REGION" envDefault:"europe"`
	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Pretty   bool   `env:"LOG_PRETTY" envDefault:"false"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.Setup(logging.Config{
		Level:  logging.LogLevel(cfg.LogLevel),
		Pretty: cfg.Pretty,
		Output: os.Stderr,
	})
	logger = logger.With().Str("component", "riot-proxy").Logger()

	riot, err := client.New(client.DefaultConfig(client.Credential{
		APIKey:   cfg.APIKey,
		Platform: cfg.Platform,
		Region:   cfg.Region,
	}))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create Riot client")
	}

	resolver := staticdata.NewResolver(riot.Cache(), "")
	riot.AttachStaticData(resolver)

	// Preload the reference dataset so id lookups work from the first
	// request. Non-fatal: the proxy can serve raw data without it.
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	if err := resolver.LoadAll(ctx); err != nil {
		logger.Warn().Err(err).Msg("Reference dataset preload failed")
	}
	cancel()

	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)
	mux.HandleFunc("/status", statusHandler(riot))
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/profile/", profileHandler(riot, logger))

	addr := ":" + cfg.Port
	logger.Info().
		Str("addr", addr).
		Str("platform", cfg.Platform).
		Str("region", cfg.Region).
		Msg("Starting riot-proxy")

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal().Err(err).Msg("Server failed")
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "OK")
}

func statusHandler(riot *client.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(riot.Status()); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// profileHandler serves GET /profile/{gameName}/{tagLine}.
func profileHandler(riot *client.Client, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/profile/"), "/")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			http.Error(w, "usage: /profile/{gameName}/{tagLine}", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		profile, err := riot.GetPlayerProfile(ctx, parts[0], parts[1])
		if err != nil {
			logger.Warn().Err(err).Str("game_name", parts[0]).Msg("Profile lookup failed")
			http.Error(w, fmt.Sprintf("profile lookup failed: %v", err), http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(profile); err != nil {
			logger.Warn().Err(err).Msg("Failed to write response")
		}
	}
}
