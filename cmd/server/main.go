package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/trivia-quest/backend/internal/config"
	"github.com/trivia-quest/backend/internal/docstore"
	"github.com/trivia-quest/backend/internal/generator"
	"github.com/trivia-quest/backend/internal/logger"
	"github.com/trivia-quest/backend/internal/middleware"
	"github.com/trivia-quest/backend/internal/questions"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// Initialize document store
	store, err := docstore.Open(ctx, cfg.Store, log)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Store.Backend).Msg("Failed to open document store")
	}
	defer store.Close()

	// Initialize generator
	gen, err := generator.NewGenerator(ctx, cfg.Generator, log)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Generator.Backend).Msg("Failed to initialize generator")
	}

	// Initialize handlers
	questionHandler := questions.NewHandler(questions.NewService(store, gen, log), log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(cfg, log, questionHandler),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		// Generation calls can be slow.
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info().Str("signal", sig.String()).Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}

func newRouter(cfg *config.Config, log zerolog.Logger, questionHandler *questions.Handler) http.Handler {
	r := mux.NewRouter()

	questionHandler.RegisterRoutes(r)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	})

	// Wrapped outside the router so unmatched routes are logged too.
	return c.Handler(middleware.RequestID(middleware.Logging(log)(r)))
}
