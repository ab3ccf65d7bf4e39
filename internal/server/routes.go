package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"tg_dealshell/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			// запуск по подписи initData, дальше по X-Session-Token из ответа запуска
			r.Route("/sessions", func(r chi.Router) {
				r.Post("/", handler(s.postV1Sessions))
				r.Get("/{id}", handler(s.getV1Session))
				r.Post("/{id}/events", handler(s.postV1SessionEvent))
			})
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
