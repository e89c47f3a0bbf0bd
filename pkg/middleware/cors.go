package middleware

import (
	"net/http"

	"cinetrack/pkg/utils"

	"github.com/go-chi/cors"
)

func CORS(config utils.CORSConfig) func(http.Handler) http.Handler {
	origins := config.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"},
		AllowCredentials: !containsWildcard(origins),
		MaxAge:           300,
	})
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
