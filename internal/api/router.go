package api

import (
	"net/http"

	"github.com/rs/zerolog"

	"transit-mixer-scheduler/internal/api/handlers"
	"transit-mixer-scheduler/internal/domain"
	"transit-mixer-scheduler/internal/ports"
	"transit-mixer-scheduler/internal/services"
)

type RouterDeps struct {
	Planner  *services.Planner
	Profiles ports.SiteProfileRepository
	Defaults domain.Parameters
	Logger   zerolog.Logger
	// Metrics serves /metrics when non-nil.
	Metrics http.Handler
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	siteHandler := &handlers.SiteHandler{Repo: deps.Profiles}
	scheduleHandler := &handlers.ScheduleHandler{
		Planner:  deps.Planner,
		Defaults: deps.Defaults,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/sites", siteHandler.List)
	mux.HandleFunc("/schedules", scheduleHandler.Create)
	mux.HandleFunc("/schedules/export", scheduleHandler.Export)
	if deps.Metrics != nil {
		mux.Handle("/metrics", deps.Metrics)
	}

	return loggingMiddleware(deps.Logger, mux)
}
