package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"crowdaid-backend/internal/auth"
	"crowdaid-backend/internal/database/models"
	"crowdaid-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EmergencyHandler handles HTTP requests for emergencies
type EmergencyHandler struct {
	service service.EmergencyServiceInterface
}

// NewEmergencyHandler creates a new emergency handler
func NewEmergencyHandler(service service.EmergencyServiceInterface) *EmergencyHandler {
	return &EmergencyHandler{service: service}
}

// CreateEmergency handles POST /api/v1/emergencies
// @Summary Report an emergency
// @Description Report a new emergency. Authentication is optional; anonymous reports create a reporter account from the optional contact details. Every verified volunteer is alerted in the background.
// @Tags emergencies
// @Accept json
// @Produce json
// @Param emergency body service.CreateEmergencyRequest true "Emergency data"
// @Success 201 {object} models.Emergency "Successfully reported emergency"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 429 {object} map[string]interface{} "Rate limit exceeded"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /emergencies [post]
func (h *EmergencyHandler) CreateEmergency(c *gin.Context) {
	var req service.CreateEmergencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	// nil on the public path
	principal, _ := auth.GetPrincipal(c)

	emergency, err := h.service.CreateEmergency(principal, &req)
	if err != nil {
		respondError(c, err, "Failed to create emergency")
		return
	}

	c.JSON(http.StatusCreated, emergency)
}

// ListEmergencies handles GET /api/v1/emergencies
// @Summary List emergencies
// @Description List emergencies newest first. scope=mine (default) returns the caller's reports; scope=all requires ADMIN.
// @Tags emergencies
// @Accept json
// @Produce json
// @Param scope query string false "mine or all" Enums(mine, all)
// @Param status query string false "Filter by status" Enums(PENDING, ASSIGNED, IN_PROGRESS, RESOLVED, CANCELLED)
// @Param type query string false "Filter by emergency type"
// @Success 200 {array} models.Emergency "Successfully retrieved emergencies"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "Administrator role required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /emergencies [get]
func (h *EmergencyHandler) ListEmergencies(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	req := &service.ListEmergenciesRequest{
		Scope:  service.ListScope(strings.ToLower(strings.TrimSpace(c.Query("scope")))),
		Status: models.EmergencyStatus(strings.ToUpper(strings.TrimSpace(c.Query("status")))),
		Type:   models.EmergencyType(strings.TrimSpace(c.Query("type"))),
	}

	emergencies, err := h.service.ListEmergencies(principal, req)
	if err != nil {
		respondError(c, err, "Failed to list emergencies")
		return
	}

	c.JSON(http.StatusOK, emergencies)
}

// GetEmergency handles GET /api/v1/emergencies/:id
// @Summary Get emergency by ID
// @Description Get one emergency with its reporter and responses. Visible to its reporter, volunteers and administrators.
// @Tags emergencies
// @Accept json
// @Produce json
// @Param id path string true "Emergency ID (UUID)"
// @Success 200 {object} models.Emergency "Successfully retrieved emergency"
// @Failure 400 {object} ErrorResponse "Invalid emergency ID"
// @Failure 403 {object} ErrorResponse "Not authorized to view this emergency"
// @Failure 404 {object} ErrorResponse "Emergency not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /emergencies/{id} [get]
func (h *EmergencyHandler) GetEmergency(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "emergency")
	if !ok {
		return
	}

	emergency, err := h.service.GetEmergency(principal, id)
	if err != nil {
		respondError(c, err, "Failed to get emergency")
		return
	}

	c.JSON(http.StatusOK, emergency)
}

// UpdateEmergency handles PUT /api/v1/emergencies/:id
// @Summary Update an emergency
// @Description Edit an emergency. Only its reporter may edit; status changes must follow the lifecycle and cannot resolve.
// @Tags emergencies
// @Accept json
// @Produce json
// @Param id path string true "Emergency ID (UUID)"
// @Param emergency body service.UpdateEmergencyRequest true "Fields to change"
// @Success 200 {object} models.Emergency "Successfully updated emergency"
// @Failure 400 {object} ErrorResponse "Invalid request body or status transition"
// @Failure 403 {object} ErrorResponse "Not the reporter or emergency closed"
// @Failure 404 {object} ErrorResponse "Emergency not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /emergencies/{id} [put]
func (h *EmergencyHandler) UpdateEmergency(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "emergency")
	if !ok {
		return
	}

	var req service.UpdateEmergencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	emergency, err := h.service.UpdateEmergency(principal, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update emergency")
		return
	}

	c.JSON(http.StatusOK, emergency)
}

// RespondToEmergency handles POST /api/v1/emergencies/:id/respond
// @Summary Respond to an emergency
// @Description Offer help. The first responder of a pending emergency is assigned to it; the reporter is notified of every response.
// @Tags emergencies
// @Accept json
// @Produce json
// @Param id path string true "Emergency ID (UUID)"
// @Param response body service.RespondRequest false "Optional message"
// @Success 201 {object} models.EmergencyResponse "Response recorded"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Emergency already resolved or cancelled"
// @Failure 404 {object} ErrorResponse "Emergency not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /emergencies/{id}/respond [post]
func (h *EmergencyHandler) RespondToEmergency(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "emergency")
	if !ok {
		return
	}

	// the body is optional
	var req service.RespondRequest
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
			return
		}
	}

	response, err := h.service.RespondToEmergency(principal, id, &req)
	if err != nil {
		respondError(c, err, "Failed to respond to emergency")
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ResolveEmergency handles PUT /api/v1/emergencies/:id/resolve
// @Summary Resolve an emergency
// @Description Mark an emergency resolved. Allowed for its reporter and the assigned volunteer.
// @Tags emergencies
// @Accept json
// @Produce json
// @Param id path string true "Emergency ID (UUID)"
// @Success 200 {object} models.Emergency "Successfully resolved emergency"
// @Failure 400 {object} ErrorResponse "Invalid emergency ID"
// @Failure 403 {object} ErrorResponse "Not authorized or already closed"
// @Failure 404 {object} ErrorResponse "Emergency not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /emergencies/{id}/resolve [put]
func (h *EmergencyHandler) ResolveEmergency(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "emergency")
	if !ok {
		return
	}

	emergency, err := h.service.ResolveEmergency(principal, id)
	if err != nil {
		respondError(c, err, "Failed to resolve emergency")
		return
	}

	c.JSON(http.StatusOK, emergency)
}

// GetStats handles GET /api/v1/emergencies/stats
// @Summary Emergency statistics
// @Description Counts per status, active emergencies and verified volunteers. Administrators only.
// @Tags emergencies
// @Accept json
// @Produce json
// @Success 200 {object} service.EmergencyStats "Successfully retrieved statistics"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "Administrator role required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /emergencies/stats [get]
func (h *EmergencyHandler) GetStats(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	stats, err := h.service.GetStats(principal)
	if err != nil {
		respondError(c, err, "Failed to get statistics")
		return
	}

	c.JSON(http.StatusOK, stats)
}
