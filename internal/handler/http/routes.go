package http

import (
	"net/http"

	"github.com/MKhiriev/reco-chat/internal/app"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.health)

		r.Post("/recommend/stream", h.recommendStream)
		r.Post("/recommend", h.recommend)
		r.Post("/chat", h.chat)

		r.Get("/history/", h.listHistory)
		r.Post("/history/", h.saveHistory)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, app.MsgNotFound, http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
	})

	return router
}
