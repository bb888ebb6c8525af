package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/backoffice/internal/http/dashboard"
)

type Options struct {
	AllowedOrigins []string
	Timeout        time.Duration
}

func New(dashboardV1 *dashboard.Handler, opts Options) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	if opts.Timeout > 0 {
		router.Use(middleware.Maybe(middleware.Timeout(opts.Timeout), bounded))
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/dashboard", dashboardV1.Routes)
	})

	return router
}

// bounded reports whether r runs under the request timeout. Upload batches
// run to completion and are bounded per file by the backend client instead.
func bounded(r *http.Request) bool {
	return !(r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/uploads"))
}
