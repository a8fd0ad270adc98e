package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/arieldiaz/bitacora/blog/application"
	"github.com/arieldiaz/bitacora/blog/domain"
	"github.com/arieldiaz/bitacora/blog/persistence"
	"github.com/arieldiaz/bitacora/internal/config"
	"github.com/arieldiaz/bitacora/internal/markdown"
	"github.com/arieldiaz/bitacora/internal/middleware"
	"github.com/arieldiaz/bitacora/internal/rest"
	"github.com/arieldiaz/bitacora/shared/db/sqlite"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	var store domain.PostStore
	switch cfg.Backend {
	case config.BackendSQLite:
		// Connect ensures the schema; the process must not serve
		// traffic if this fails.
		database := sqlite.NewSQLiteDB(cfg.DBPath)
		if err := database.Connect(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize database")
		}
		defer database.Close()

		store = persistence.NewSQLiteStore(database.DB())
		log.Info().Str("path", cfg.DBPath).Msg("Using sqlite backend")
	default:
		store = persistence.NewFileStore(cfg.ContentDir)
		log.Info().Str("dir", cfg.ContentDir).Msg("Using file backend")
	}

	postService := application.NewPostService(store, markdown.NewRenderer())

	engine := gin.New()
	engine.Use(middleware.LoggingMiddleware())
	engine.Use(gin.CustomRecovery(middleware.HandlePanics()))
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	rest.NewAPI(engine, postService)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: engine,
	}

	go func() {
		log.Info().Int("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to shutdown server")
	}

	log.Info().Msg("Server stopped")
}
