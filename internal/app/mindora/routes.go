// Package mindora собирает HTTP-приложение: хранилище, кеш, сервисы и маршруты.
package mindora

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"github.com/mindora/mindora/internal/config"
	"github.com/mindora/mindora/internal/http/handlers/auth/login"
	"github.com/mindora/mindora/internal/http/handlers/auth/logout"
	"github.com/mindora/mindora/internal/http/handlers/auth/me"
	"github.com/mindora/mindora/internal/http/handlers/auth/register"
	"github.com/mindora/mindora/internal/http/handlers/health"
	"github.com/mindora/mindora/internal/http/handlers/journal/journalcreate"
	"github.com/mindora/mindora/internal/http/handlers/journal/journallist"
	"github.com/mindora/mindora/internal/http/handlers/journal/journalremove"
	"github.com/mindora/mindora/internal/http/handlers/journal/journalupdate"
	"github.com/mindora/mindora/internal/http/handlers/mood/moodcreate"
	"github.com/mindora/mindora/internal/http/handlers/mood/moodlist"
	"github.com/mindora/mindora/internal/http/handlers/mood/moodremove"
	"github.com/mindora/mindora/internal/http/handlers/mood/moodstats"
	"github.com/mindora/mindora/internal/http/handlers/mood/moodupdate"
	"github.com/mindora/mindora/internal/http/handlers/support/supportcategories"
	"github.com/mindora/mindora/internal/http/handlers/support/supportlist"
	"github.com/mindora/mindora/internal/http/middlewarectx"

	// Регистрация swagger-спецификации.
	_ "github.com/mindora/mindora/docs"
)

// AuthService регистрация, вход и выход.
type AuthService interface {
	register.Service
	login.Service
	logout.Service
}

// MoodService операции над записями настроения.
type MoodService interface {
	moodcreate.Service
	moodlist.Service
	moodupdate.Service
	moodremove.Service
	moodstats.Service
}

// JournalService операции над дневником.
type JournalService interface {
	journalcreate.Service
	journallist.Service
	journalupdate.Service
	journalremove.Service
}

// SupportService каталог статей.
type SupportService interface {
	supportlist.Service
	supportcategories.Service
}

// Services зависимости обработчиков.
type Services struct {
	Auth     AuthService
	Sessions middlewarectx.SessionResolver
	Moods    MoodService
	Journal  JournalService
	Support  SupportService
	Health   health.Pinger
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config, svc Services) {
	cookie := middlewarectx.SessionCookie{Name: cfg.CookieName, Secure: cfg.Secure}
	limiter := rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst)

	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middlewarectx.MetricsMiddleware,
		middlewarectx.CORS(cfg.AllowedOrigins),
	)

	loadSession := middlewarectx.SessionLoader(logger, svc.Sessions, cookie)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(loadSession)
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.RateLimitMiddleware(logger, limiter))
				r.Post("/register", register.New(logger, svc.Auth, cookie).ServeHTTP)
				r.Post("/login", login.New(logger, svc.Auth, cookie).ServeHTTP)
			})
			r.Post("/logout", logout.New(logger, svc.Auth, cookie).ServeHTTP)
			r.Get("/me", me.New().ServeHTTP)
		})

		// Открытый каталог, сессия не читается
		r.Get("/support", supportlist.New(logger, svc.Support).ServeHTTP)
		r.Get("/support/categories", supportcategories.New(logger, svc.Support).ServeHTTP)

		// Группа, требующая сессию
		r.Group(func(r chi.Router) {
			r.Use(loadSession, middlewarectx.RequireAuth(logger))

			r.Get("/moods", moodlist.New(logger, svc.Moods).ServeHTTP)
			r.Post("/moods", moodcreate.New(logger, svc.Moods).ServeHTTP)
			r.Get("/moods/stats", moodstats.New(logger, svc.Moods).ServeHTTP)
			r.Put("/moods/{id}", moodupdate.New(logger, svc.Moods).ServeHTTP)
			r.Delete("/moods/{id}", moodremove.New(logger, svc.Moods).ServeHTTP)

			r.Get("/journal", journallist.New(logger, svc.Journal).ServeHTTP)
			r.Post("/journal", journalcreate.New(logger, svc.Journal).ServeHTTP)
			r.Put("/journal/{id}", journalupdate.New(logger, svc.Journal).ServeHTTP)
			r.Delete("/journal/{id}", journalremove.New(logger, svc.Journal).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger, svc.Health).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
