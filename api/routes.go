package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func setupOpsRoutes(r chi.Router, handlers *routeHandlers) {
	r.Get("/healthz", handlers.healthHandler.health())
	r.Handle("/metrics", promhttp.Handler())
}

// setupAPIRoutes mounts every /api route behind its access gate
func setupAPIRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, bookingLimit func(http.Handler) http.Handler) {
	r.Use(ColoredHTTPLoggingMiddleware)

	// Public routes
	r.Post("/auth/register", handlers.authHandler.register())
	r.Post("/auth/login", handlers.authHandler.login())
	r.Get("/projects/portfolio", handlers.projectHandler.getPortfolio())
	r.Get("/projects/share/{shareLink}", handlers.projectHandler.getSharedProject())
	r.With(bookingLimit).Post("/bookings", handlers.bookingHandler.createBooking())

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)

		r.Get("/auth/me", handlers.authHandler.me())
		r.Post("/auth/change-password", handlers.authHandler.changePassword())

		r.Post("/messages", handlers.messageHandler.sendMessage())
		r.Get("/messages/{projectID}", handlers.messageHandler.getProjectMessages())
		r.Get("/files/{projectID}", handlers.fileHandler.getProjectFiles())
		r.Get("/srs/{projectID}", handlers.srsHandler.getProjectSRS())

		// Admin routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.requireAdmin)

			r.Post("/clients", handlers.clientHandler.createClient())
			r.Get("/clients", handlers.clientHandler.getAllClients())
			r.Get("/clients/{clientID}", handlers.clientHandler.getClient())
			r.Put("/clients/{clientID}", handlers.clientHandler.updateClient())
			r.Delete("/clients/{clientID}", handlers.clientHandler.deleteClient())

			r.Post("/projects", handlers.projectHandler.createProject())
			r.Get("/projects", handlers.projectHandler.getAllProjects())
			r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
			r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

			r.Post("/upload", handlers.fileHandler.uploadFile())
			r.Delete("/files/{fileID}", handlers.fileHandler.deleteFile())

			r.Post("/srs", handlers.srsHandler.uploadSRS())
			r.Put("/srs/{srsID}/status", handlers.srsHandler.updateSRSStatus())
			r.Delete("/srs/{srsID}", handlers.srsHandler.deleteSRS())

			r.Get("/bookings", handlers.bookingHandler.getAllBookings())
			r.Put("/bookings/{bookingID}/status", handlers.bookingHandler.updateBookingStatus())

			r.Get("/dashboard/stats", handlers.dashboardHandler.getStats())
		})
	})
}
