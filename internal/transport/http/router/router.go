package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HealthHandler interface {
	Healthz(w http.ResponseWriter, r *http.Request)
}

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type UsersHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
}

type Deps struct {
	Health HealthHandler
	Auth   AuthHandler
	Users  UsersHandler

	RequestIDMW func(http.Handler) http.Handler
	SessionMW   func(http.Handler) http.Handler
	MetricsMW   func(http.Handler) http.Handler
}

func New(deps Deps) (http.Handler, error) {
	if deps.Health == nil {
		return nil, fmt.Errorf("nil Health handler")
	}
	if deps.Auth == nil {
		return nil, fmt.Errorf("nil Auth handler")
	}
	if deps.Users == nil {
		return nil, fmt.Errorf("nil Users handler")
	}
	if deps.SessionMW == nil {
		return nil, fmt.Errorf("nil Session middleware")
	}

	r := chi.NewRouter()
	if deps.RequestIDMW != nil {
		r.Use(deps.RequestIDMW)
	}
	if deps.MetricsMW != nil {
		r.Use(deps.MetricsMW)
	}

	r.Get("/healthz", deps.Health.Healthz)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/directory/v1", func(r chi.Router) {
		r.Use(deps.SessionMW)

		r.Post("/login", deps.Auth.Login)

		r.Get("/users", deps.Users.List)
		r.Post("/users", deps.Users.Create)
		r.Get("/users/{id}", deps.Users.Get)
		r.Get("/profile", deps.Users.Profile)
	})

	return r, nil
}
