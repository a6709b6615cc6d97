package web

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"book-lookup/internal/handler"
)

// Server exposes the lookup handler over plain HTTP for development
// against DynamoDB Local. In production the handler runs behind the
// Lambda entrypoint instead.
type Server struct {
	lookup *handler.Lookup
	logger *zap.Logger
	router *mux.Router
	server *http.Server
}

func NewServer(lookup *handler.Lookup, logger *zap.Logger) *Server {
	s := &Server{
		lookup: lookup,
		logger: logger,
		router: mux.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.HandleFunc("/books/{id}", s.handleGetBook).Methods("GET")
}

// Start launches the HTTP server
func (s *Server) Start(port string) error {
	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	s.logger.Info("Dev server listening", zap.String("addr", port))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleGetBook(w http.ResponseWriter, r *http.Request) {
	// Honor an upstream correlation id if the caller sent one.
	requestID := r.Header.Get("X-Request-Id")
	if requestID == "" {
		requestID = uuid.NewString()
	}

	resp := s.lookup.Handle(r.Context(), handler.Request{
		PathParameters: mux.Vars(r),
		RequestID:      requestID,
	})

	for name, value := range resp.Headers {
		w.Header().Set(name, value)
	}
	w.Header().Set("X-Request-Id", requestID)
	w.WriteHeader(resp.StatusCode)
	if _, err := w.Write([]byte(resp.Body)); err != nil {
		s.logger.Error("Failed to write response", zap.Error(err))
	}
}
