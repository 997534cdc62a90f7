package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/sknikt/club-site-backend/config"
	"github.com/sknikt/club-site-backend/database"
	"github.com/sknikt/club-site-backend/services"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(c config.Config, database database.Database, attachments *services.AttachmentManager) (Server, error) {
	address := fmt.Sprintf("0.0.0.0:%s", c.Port) // Bind to 0.0.0.0 for external access

	startupTime := time.Now()

	router := NewRouter(c, database, attachments)

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  time.Duration(c.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(c.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  time.Duration(c.IdleTimeoutSeconds) * time.Second,
	}

	return Server{server, startupTime}, nil
}

// NewRouter wires middleware, handlers and routes into a chi mux.
func NewRouter(c config.Config, database database.Database, attachments *services.AttachmentManager) *chi.Mux {
	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)

	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   c.AcceptedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-API-Key"},
		AllowCredentials: true,
	}))

	handlers := initializeHandlers(database, attachments)
	authMiddleware := newAuthMiddleware(c.AdminAPIKey)

	setupRoutes(chiRouter, handlers, authMiddleware)

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
