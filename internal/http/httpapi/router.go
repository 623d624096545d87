package httpapi

import (
	stdhttp "net/http"
	"time"

	"server/internal/http/handlers"
	"server/internal/infra"
	mw "server/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(app *handlers.App, cfg *infra.Config, log infra.Logger) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP, middleware.Recoverer)
	r.Use(mw.RequestID)
	r.Use(mw.Logger(log))
	r.Use(mw.CORS(cfg.CORSOrigins))
	r.Use(mw.RateLimit(cfg.RateLimitPerMin, time.Minute))
	r.Use(mw.Locale(cfg.DefaultLocale))

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/volunteers", func(r chi.Router) {
		r.Post("/", app.VolunteersCreate)
		r.Put("/interests", app.InterestsUpdate)
		r.Put("/profile", app.ProfileUpdate)
	})

	r.Post("/v1/auth/signup-link", app.SignupLink)
	r.Get("/v1/interests/{group}", app.InterestsList)

	return r
}
