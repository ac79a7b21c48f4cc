package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/mcoutinho/finbot-backend/internal/handlers"
	"github.com/mcoutinho/finbot-backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	lm := middleware.NewLoggerMiddleware(deps.Log)
	r.Use(chimiddleware.RequestID)
	r.Use(lm.LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)

	hh := handlers.NewHealthHandlers(deps)
	th := handlers.NewTransactionHandlers(deps)
	wh := handlers.NewWebhookHandlers(deps)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", hh.Health)
		r.Mount("/transactions", th.TransactionRoutes())
		r.Mount("/whatsapp-webhook", wh.WebhookRoutes())
	})
	return r
}
