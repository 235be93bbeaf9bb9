package api

import (
	"net/http"

	"github.com/JaimeStill/pdf-tools/internal/config"
	"github.com/JaimeStill/pdf-tools/internal/documents"
	"github.com/JaimeStill/pdf-tools/pkg/handlers"
	"github.com/JaimeStill/pdf-tools/pkg/lifecycle"
	"github.com/JaimeStill/pdf-tools/pkg/openapi"
	"github.com/JaimeStill/pdf-tools/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	spec *openapi.Spec,
	runtime *Runtime,
	domain *Domain,
	cfg *config.Config,
) {
	documentsHandler := documents.NewHandler(
		domain.Documents,
		runtime.Logger,
		cfg.Storage.MaxUploadSizeBytes(),
	)

	routes.Register(
		mux,
		cfg.API.BasePath,
		spec,
		documentsHandler.Routes(),
		probeRoutes(runtime.Lifecycle),
	)
}

func probeRoutes(ready lifecycle.ReadinessChecker) routes.Group {
	return routes.Group{
		Tags:        []string{"Infrastructure"},
		Description: "Liveness and readiness probes",
		Routes: []routes.Route{
			{
				Method:  "GET",
				Pattern: "/healthz",
				Handler: handleHealthCheck,
				OpenAPI: &openapi.Operation{
					Summary: "Health check",
					Responses: map[int]*openapi.Response{
						200: {Description: "Service is running"},
					},
				},
			},
			{
				Method:  "GET",
				Pattern: "/readyz",
				Handler: func(w http.ResponseWriter, r *http.Request) {
					handleReadinessCheck(w, ready)
				},
				OpenAPI: &openapi.Operation{
					Summary: "Readiness check",
					Responses: map[int]*openapi.Response{
						200: {Description: "Service is ready"},
						503: {Description: "Service is starting or shutting down"},
					},
				},
			},
		},
	}
}

func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleReadinessCheck(w http.ResponseWriter, ready lifecycle.ReadinessChecker) {
	if !ready.Ready() {
		handlers.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
		return
	}
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
