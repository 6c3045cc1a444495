package server

import (
	"fmt"
	"net/http"

	"belco/shopware-widget/internal/app/server/handlers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Server struct {
	port     string
	router   *chi.Mux
	handlers *handlers.Handlers
}

func NewServer(port string, h *handlers.Handlers) *Server {
	srv := &Server{
		port:     port,
		router:   chi.NewRouter(),
		handlers: h,
	}

	srv.registerRoutes()
	return srv
}

func (s *Server) registerRoutes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/storefront/footer", s.handlers.GetFooter)
	s.router.Get("/healthz", s.handlers.Health)
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run() error {
	return http.ListenAndServe(fmt.Sprintf(":%s", s.port), s.router)
}
