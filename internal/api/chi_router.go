// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/analoguememory/internal/middleware"
)

// Router wires handlers and middleware into a Chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a Router. A nil mw uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: mw}
}

// notFound keeps unknown routes inside the JSON envelope.
func notFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Route not found", nil)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusMethodNotAllowed, ErrCodeBadRequest, "Method not allowed", nil)
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Handle("/metrics", promhttp.Handler())

	h := router.handler

	// Health probes skip rate limiting so orchestrators can poll freely.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(middleware.PrometheusMetrics)
		r.Get("/", h.Health)
		r.Get("/live", h.HealthLive)
		r.Get("/ready", h.HealthReady)
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Use(middleware.PrometheusMetrics)
		r.With(router.chiMiddleware.RateLimitAuth()).Post("/login", h.Login)
		r.With(router.chiMiddleware.RateLimitAuth()).Post("/register", h.Register)
		r.Post("/logout", h.Logout)
		r.Get("/me", h.Me)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)

		r.Get("/categories", h.Categories)

		r.Route("/items", func(r chi.Router) {
			r.Get("/", h.Items)
			r.Get("/random", h.RandomItems)
			r.Get("/{id}", h.Item)
			r.Get("/{id}/similar", h.SimilarItems)
			r.Get("/{id}/share", h.ShareItem)
		})

		r.Route("/collection", func(r chi.Router) {
			r.Get("/", h.Collection)
			r.Post("/{id}", h.AddToCollection)
			r.Delete("/{id}", h.RemoveFromCollection)
			r.Put("/{id}/notes", h.UpdateNotes)
		})

		r.Get("/theme", h.Theme)
		r.Put("/theme", h.SetTheme)
	})

	return r
}
