package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/studiodesk/studiodesk/internal/http/card"
	"github.com/studiodesk/studiodesk/internal/http/importcsv"
	"github.com/studiodesk/studiodesk/internal/http/ledger"
)

func New(
	allowedOrigins []string,
	ledgerV1 *ledger.Handler,
	cardV1 *card.Handler,
	importV1 *importcsv.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// Card slugs are resolved by browser frontends on other origins.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/ledger", func(r chi.Router) {
		r.Post("/import", importV1.ImportSheet)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			ledgerV1.Routes(r)
		})
	})

	router.Route("/cards", func(r chi.Router) {
		cardV1.Routes(r)
	})

	return router
}
