package api

import (
	"net/http"

	"github.com/dom/league-profile-gateway/internal/api/handlers"
	"github.com/dom/league-profile-gateway/internal/api/middleware"
	"github.com/dom/league-profile-gateway/internal/config"
	"github.com/dom/league-profile-gateway/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"
)

func NewRouter(services *service.Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestLogger(&chiMiddleware.DefaultLogFormatter{
		Logger:  log.StandardLogger(),
		NoColor: cfg.IsProduction(),
	}))
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	playerHandler := handlers.NewPlayerHandler(services.Player)
	matchHandler := handlers.NewMatchHandler(services.Player)
	championHandler := handlers.NewChampionHandler(services.Catalog)
	rotationHandler := handlers.NewRotationHandler(services.Rotation)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/players", func(r chi.Router) {
			r.Get("/identify/{gameName}/{tagLine}", playerHandler.Identify)
			r.Get("/{puuid}/summary", playerHandler.Summary)
			r.Get("/{puuid}/mastery", playerHandler.Mastery)
			r.Get("/{puuid}/matches", playerHandler.Matches)
			r.Get("/{puuid}/live", playerHandler.Live)
		})

		r.Get("/matches/{matchId}", matchHandler.Get)

		// Static segments win over {id} in chi regardless of order
		r.Route("/champions", func(r chi.Router) {
			r.Get("/", championHandler.GetAll)
			r.Get("/rotation", rotationHandler.Get)
			r.Get("/{id}", championHandler.Get)
		})
	})

	return r
}
