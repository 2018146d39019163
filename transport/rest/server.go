package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rocketscienceinc/gladiatur-starter/internal/config"
)

type Server struct {
	logger     *slog.Logger
	httpServer *http.Server
}

func New(logger *slog.Logger, conf *config.Config, webhook webhookUseCase) *Server {
	router := NewRouter(logger, NewPingHandler(), NewHandlers(logger, webhook))

	return &Server{
		logger: logger.With("component", "http"),
		httpServer: &http.Server{
			Addr:         conf.Addr(),
			Handler:      router,
			ReadTimeout:  conf.ReadTimeout,
			WriteTimeout: conf.WriteTimeout,
			IdleTimeout:  conf.IdleTimeout,
		},
	}
}

// NewRouter - registers the four webhook routes the game server calls plus the ledger read routes.
func NewRouter(logger *slog.Logger, ping PingHandler, webhook Handlers) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(requestLogger(logger))
	router.Use(middleware.Recoverer)

	router.Head("/ping", ping.PingHandler)
	router.Post("/start", webhook.StartHandler)
	router.Put("/turn", webhook.TurnHandler)
	router.Delete("/end", webhook.EndHandler)

	router.Get("/games/{id}", webhook.GameHandler)
	router.Get("/stats", webhook.StatsHandler)

	return router
}

// Start - blocks until the server stops. A graceful shutdown is not an error.
func (that *Server) Start() error {
	that.logger.Info("starting gladiatur server", "addr", "http://"+that.httpServer.Addr)

	if err := that.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) Shutdown(ctx context.Context) error {
	if err := that.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	log := logger.With("component", "http")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				log.Debug("request handled",
					"request_id", middleware.GetReqID(r.Context()),
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"duration", time.Since(start),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
