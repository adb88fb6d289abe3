package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mensahub/backend/internal/recommend"
)

// Server wraps the HTTP server and the resources it must release on
// shutdown.
type Server struct {
	http        *http.Server
	recommender *recommend.Client
}

// New creates a new server instance around the configured router.
func New(addr string, router *gin.Engine, recommender *recommend.Client) *Server {
	return &Server{
		http: &http.Server{
			Addr:    addr,
			Handler: router,
		},
		recommender: recommender,
	}
}

// Start starts the server and blocks until it stops.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server and releases the recommendation
// channel. Every exit path of main runs through here, and it is safe to call
// more than once.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.http.Shutdown(ctx)
	if cerr := s.recommender.Shutdown(ctx); cerr != nil && err == nil {
		err = cerr
	}
	return err
}
