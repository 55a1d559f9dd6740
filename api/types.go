package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler      authHandler
	clientHandler    clientHandler
	projectHandler   projectHandler
	messageHandler   messageHandler
	fileHandler      fileHandler
	srsHandler       srsHandler
	bookingHandler   bookingHandler
	dashboardHandler dashboardHandler
	healthHandler    healthHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"not found: project not found"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"email"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}
