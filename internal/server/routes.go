package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"house_price/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		// html
		r.Get("/", handler(s.getIndex))
		r.Post("/predict", handler(s.postPredict))
		r.Handle("/static/*", staticHandler())

		r.Route("/v1", func(r chi.Router) {
			r.Get("/locations", handler(s.getV1Locations))
			r.Post("/predict", handler(s.postV1Predict))
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
