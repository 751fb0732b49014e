package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/kajapeguyangan12-ux/gesa-sub002/docs" //nolint:revive,nolintlint
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.Log, mw.Recover, mw.Cors, mw.WithIP)

	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Get("/health", h.Health)
			r.Get("/swagger/*", httpSwagger.WrapHandler)

			r.Post("/setup", h.Setup)
			r.Post("/auth/login", h.Login)
			r.Post("/auth/logout", h.Logout)

			r.Get("/proxy", h.ProxyFile)
			r.Options("/proxy", h.ProxyFilePreflight)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.Auth)

			r.Get("/auth/me", h.Me)
			r.Get("/survey-types", h.SurveyTypes)

			r.Get("/surveys", h.ListSurveys)
			r.Post("/surveys", h.CreateSurvey)
			r.Get("/surveys/markers", h.SurveyMarkers)
			r.Get("/surveys/{id}", h.SurveyByID)
			r.Patch("/surveys/{id}", h.UpdateSurvey)
			r.Delete("/surveys/{id}", h.DeleteSurvey)
			r.Put("/surveys/{id}/status", h.SetSurveyStatus)
			r.Get("/surveys/{id}/marker", h.SurveyMarker)
		})
	})

	return router
}
