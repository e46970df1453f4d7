package main

import (
	"net/http"
	"os"
	"time"

	"animal-chip-registry/internal/platform/logger"
	"animal-chip-registry/internal/router"
)

// @title Animal Chip Registry API
// @version 1.0
// @description Registry of chipped animals and their movement history between location points.
// @BasePath /
func main() {
	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	log := logger.NewFromEnv()

	// no verifier = dev mode auth
	r := router.NewRouter(router.Options{AuthVerifier: nil, Logger: log})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
