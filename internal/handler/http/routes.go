package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization: door devices and operator login
	router.Group(func(r chi.Router) {
		r.Post("/api/access/facial", h.authenticateFacial)
		r.Post("/api/access/pin", h.authenticatePIN)
		r.Post("/api/auth/login", h.login)
	})

	// operator routes behind bearer-token authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/access/records", h.listAccessRecords)
		r.Get("/api/access/records/{recordID}", h.getAccessRecord)

		r.Post("/api/employees", h.createEmployee)
		r.Get("/api/employees", h.listEmployees)
		r.Get("/api/employees/{employeeID}", h.getEmployee)
		r.Delete("/api/employees/{employeeID}", h.deleteEmployee)
		r.Post("/api/employees/{employeeID}/biometric", h.registerBiometric)

		r.Get("/api/areas", h.listAreas)
		r.Get("/api/areas/{areaID}", h.getArea)
	})

	return router
}
