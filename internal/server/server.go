package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/robklaiss/foteam/internal/configs"
	"github.com/robklaiss/foteam/internal/logger"
	"go.uber.org/zap"
)

type Server struct {
	httpServer *http.Server
	logger     logger.PhotoLoggerInterface
}

func NewServer(config configs.ServerConfig, handler http.Handler, log logger.PhotoLoggerInterface) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:           ":" + config.Port,
			Handler:        handler,
			MaxHeaderBytes: config.MaxHeaderBytes,
			ReadTimeout:    config.ReadTimeout,
			WriteTimeout:   config.WriteTimeout,
		},
		logger: log,
	}
}

// Run blocks until the server stops. A graceful shutdown is not reported as an error.
func (s *Server) Run() error {
	s.logger.Info("Starting HTTP-server", zap.String("addr", s.httpServer.Addr))
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		s.logger.Warn("Graceful shutdown timed out, forcefully closing the server", zap.Error(err))
		s.httpServer.Close()
		return err
	}
	s.logger.Info("HTTP-server gracefully stopped")
	return nil
}
