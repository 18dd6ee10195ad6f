package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const messagesPath = "/api/messages"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.With(h.withHashCheck).Post(messagesPath, h.messages)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
