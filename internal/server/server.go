package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"task-export/internal/api"
	"task-export/internal/config"
	"task-export/internal/logging"
)

const shutdownTimeout = 10 * time.Second

// Server exposes the BusinessAPI over HTTP
type Server struct {
	businessAPI api.BusinessAPI
	config      config.ServerConfig
	router      *mux.Router
}

// New creates a server and registers its routes
func New(businessAPI api.BusinessAPI, cfg config.ServerConfig) *Server {
	s := &Server{
		businessAPI: businessAPI,
		config:      cfg,
		router:      mux.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(loggingMiddleware)

	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/colors", s.handleColors).Methods(http.MethodGet)
	s.router.HandleFunc("/projects/{project_id}/tasks/export", s.handleExport).Methods(http.MethodGet)
	s.router.HandleFunc("/tasks/{task_id}/notifications/assignee-change", s.handleAssigneeNotification).Methods(http.MethodGet)
}

// Handler returns the router wrapped with panic recovery, CORS and gzip
// compression for clients that accept it
func (s *Server) Handler() http.Handler {
	origins := s.config.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	cors := handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"X-Requested-With", "Content-Type", RequestIDHeader}),
		handlers.ExposedHeaders([]string{"Content-Disposition", RequestIDHeader}),
	)
	recovery := handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))

	return recovery(cors(handlers.CompressHandler(s.router)))
}

// ListenAndServe serves on the configured address until ctx is cancelled,
// then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.config.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Infof("listening on %s", s.config.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logging.Infof("shutting down")
	return srv.Shutdown(shutdownCtx)
}
