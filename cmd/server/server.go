package main

import (
	"time"

	"github.com/JaimeStill/pdf-tools/internal/api"
	"github.com/JaimeStill/pdf-tools/internal/config"
	"github.com/JaimeStill/pdf-tools/internal/infrastructure"
	"github.com/JaimeStill/pdf-tools/internal/server"
)

// Server coordinates the lifecycle of all subsystems.
type Server struct {
	infra *infrastructure.Infrastructure
	http  server.System
}

// NewServer creates and initializes the service with all subsystems.
func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	handler, err := api.New(cfg, infra, newEngine(&cfg.OCR, infra))
	if err != nil {
		return nil, err
	}

	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"ocr_renderer", cfg.OCR.Renderer,
		"ocr_languages", cfg.OCR.Languages,
	)

	return &Server{
		infra: infra,
		http:  server.New(&cfg.Server, handler, infra.Logger),
	}, nil
}

// Start begins all subsystems. Readiness is reported once every
// startup hook has finished.
func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")

	if err := s.infra.Start(); err != nil {
		return err
	}

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready")
	}()

	return nil
}

// Shutdown gracefully stops all subsystems within timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}
