package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Routes wires the full HTTP surface: the JSON API, the rendered views,
// static assets and the operational endpoints.
func (h *Handler) Routes(allowedOrigins []string, static http.FileSystem) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(h.requestLogger)

	r.Get("/healthz", h.Health)
	r.Get("/readyz", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(cors.Handler(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
		api.Get("/leaderboard", h.GetLeaderboard)
		api.Get("/leaderboard/{gamemode}", h.GetLeaderboard)
		api.Get("/tierboard/{gamemode}", h.GetTierBoard)
		api.Get("/players/{uuid}", h.GetProfile)
		api.Get("/search", h.SearchPlayer)
		api.Get("/announcements", h.GetAnnouncements)
	})

	r.Get("/", h.Home)
	r.Get("/rankings", h.Home)
	r.Get("/rankings/{gamemode}", h.RankingsPage)
	r.Get("/players/{uuid}", h.ProfilePage)
	r.Get("/posts", h.PostsPage)
	r.Get("/discord", h.DiscordPage)

	if static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(static)))
	}

	return r
}

func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.Infow("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
		)
	})
}
