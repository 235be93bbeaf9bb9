package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS returns middleware applying cfg. It passes requests through
// untouched when CORS is disabled or no origins are configured.
func CORS(cfg *CORSConfig) func(http.Handler) http.Handler {
	if !cfg.IsEnabled() || len(cfg.Origins) == 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Origins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		ExposedHeaders:   cfg.ExposedHeaders,
		AllowCredentials: cfg.CredentialsAllowed(),
		MaxAge:           cfg.MaxAge,
	})

	return c.Handler
}
