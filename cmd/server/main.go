// Command server starts the Lumina fraud dataset generation API.
//
// Usage:
//
//	go run ./cmd/server [flags]
//
// Flags:
//
//	-port       HTTP port to listen on (default: 8080)
//	-users      number of users in the population pool (default: 1000)
//	-merchants  number of merchants in the population pool (default: 500)
//	-seed       random seed; 0 picks one from the current time
//	-sink-url   downstream pipeline URL to POST finished datasets to (optional)
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"lumina/fraud-datagen/internal/api"
	"lumina/fraud-datagen/internal/identity"
	"lumina/fraud-datagen/internal/population"
	"lumina/fraud-datagen/internal/publish"
	"lumina/fraud-datagen/internal/store"
	"lumina/fraud-datagen/internal/synth"
)

func main() {
	port := flag.Int("port", 8080, "HTTP port")
	numUsers := flag.Int("users", 1000, "users in the population pool")
	numMerchants := flag.Int("merchants", 500, "merchants in the population pool")
	seed := flag.Int64("seed", 0, "random seed (0 = derive from current time)")
	sinkURL := flag.String("sink-url", "", "downstream pipeline URL for finished datasets")
	flag.Parse()

	// PaaS platforms inject PORT as an env var; it wins over the flag.
	if envPort := os.Getenv("PORT"); envPort != "" {
		if p, err := strconv.Atoi(envPort); err == nil {
			*port = p
		}
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	// ── Build the population ──────────────────────────────────────────────────
	rng := rand.New(rand.NewSource(*seed))
	ids := identity.NewFaker(*seed)

	pools, err := population.Build(rng, ids, *numUsers, *numMerchants)
	if err != nil {
		slog.Error("population build failed", "error", err)
		os.Exit(1)
	}
	slog.Info("population ready",
		"users", len(pools.Users),
		"merchants", len(pools.Merchants),
		"seed", *seed,
	)

	// ── Wire dependencies ─────────────────────────────────────────────────────
	gen := synth.New(pools, rng, ids)
	s := store.New()
	publisher := publish.New(*sinkURL)
	handler := api.NewHandler(gen, pools, s, publisher, *seed)
	router := api.NewRouter(handler)

	// ── Start HTTP server ─────────────────────────────────────────────────────
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server listening", "port", *port, "sink_url", *sinkURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	slog.Info("server stopped")
}
