package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/trichocare/backend/internal/api"
	"github.com/trichocare/backend/internal/middleware"
)

// Server wraps the HTTP server around the gin route tree.
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// NewServer builds the router with CORS applied and every API route
// registered.
func NewServer(deps api.Deps, allowedOrigins []string) *Server {
	router := gin.Default()
	router.Use(middleware.CORS(allowedOrigins))
	api.RegisterRoutes(router, deps)

	return &Server{router: router}
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully.
func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}

	go func() {
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.http.Shutdown(ctx)
}

// Stop gracefully stops the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
