package api

import (
	"github.com/projectveo/backend/database"
	"github.com/projectveo/backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, deps routerDeps) *routeHandlers {
	validate := services.NewValidator()
	uploads := services.NewUploads(database, deps.blobSink)
	sharing := services.NewShareResolver(database)

	return &routeHandlers{
		authHandler:      newAuthHandler(deps.accounts),
		clientHandler:    newClientHandler(database.ClientRepo(), validate),
		projectHandler:   newProjectHandler(database.ProjectRepo(), sharing, validate),
		messageHandler:   newMessageHandler(database.MessageRepo(), database.ProjectRepo(), validate),
		fileHandler:      newFileHandler(database.FileRepo(), uploads, deps.maxUploadBytes),
		srsHandler:       newSRSHandler(database.SRSDocumentRepo(), uploads, deps.maxUploadBytes),
		bookingHandler:   newBookingHandler(database.BookingRepo(), services.NewBookings(database.BookingRepo(), deps.notifier), validate),
		dashboardHandler: newDashboardHandler(services.NewDashboardAggregator(database)),
		healthHandler:    newHealthHandler(database, deps.startupTime),
	}
}
