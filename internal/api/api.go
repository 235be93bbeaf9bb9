// Package api assembles the PDF endpoints, health probes, OpenAPI document
// and reference page into a single HTTP handler.
package api

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/pdf-tools/internal/config"
	"github.com/JaimeStill/pdf-tools/internal/infrastructure"
	"github.com/JaimeStill/pdf-tools/pkg/middleware"
	"github.com/JaimeStill/pdf-tools/pkg/openapi"
	"github.com/JaimeStill/pdf-tools/pkg/routes"
	"github.com/JaimeStill/pdf-tools/web/scalar"
)

// New builds the API handler. Every route is served under
// cfg.API.BasePath and wrapped with request logging and CORS.
func New(cfg *config.Config, infra *infrastructure.Infrastructure, engine Engine) (http.Handler, error) {
	runtime := NewRuntime(infra)
	domain := NewDomain(runtime, engine, &cfg.OCR)

	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.Domain)

	mux := http.NewServeMux()
	registerRoutes(mux, spec, runtime, domain, cfg)

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, fmt.Errorf("render openapi document: %w", err)
	}

	specPath := cfg.API.BasePath + "/openapi.json"
	mux.HandleFunc("GET "+specPath, openapi.ServeSpec(specBytes))

	docs, err := scalar.Routes(cfg.API.OpenAPI.Title, specPath)
	if err != nil {
		return nil, fmt.Errorf("render docs page: %w", err)
	}
	routes.Register(mux, cfg.API.BasePath, nil, docs)

	mw := middleware.New()
	mw.Use(middleware.Logger(runtime.Logger))
	mw.Use(middleware.CORS(&cfg.API.CORS))

	return mw.Apply(mux), nil
}
