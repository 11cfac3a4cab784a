package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/homevista/homevista_backend/internal/apperrors"
	"github.com/homevista/homevista_backend/internal/core/domain"
	portssvc "github.com/homevista/homevista_backend/internal/core/ports/services"
	"github.com/homevista/homevista_backend/internal/dto"
	"github.com/homevista/homevista_backend/internal/middleware"
)

// maintenanceHandler handles HTTP requests for maintenance requests.
type maintenanceHandler struct {
	maintenanceService portssvc.MaintenanceSvcFacade
}

func newMaintenanceHandler(ms portssvc.MaintenanceSvcFacade) *maintenanceHandler {
	return &maintenanceHandler{
		maintenanceService: ms,
	}
}

// registerMaintenanceRoutes registers maintenance request routes. Tenants file
// and read requests; working them through the lifecycle is admin only.
func registerMaintenanceRoutes(rg *gin.RouterGroup, adminRg *gin.RouterGroup, maintenanceService portssvc.MaintenanceSvcFacade) {
	h := newMaintenanceHandler(maintenanceService)

	requests := rg.Group("/maintenance-requests")
	{
		requests.POST("", h.createRequest)
		requests.GET("/:id", h.getRequest)
	}

	adminRequests := adminRg.Group("/maintenance-requests")
	{
		adminRequests.GET("", h.listRequests)
		adminRequests.PATCH("/:id/status", h.updateRequestStatus)
		adminRequests.DELETE("/:id", h.deleteRequest)
	}
}

// createRequest godoc
// @Summary File a maintenance request
// @Description Files a new maintenance request for a property in the SUBMITTED state
// @Tags maintenance
// @Accept json
// @Produce json
// @Param request body dto.CreateMaintenanceRequest true "Maintenance request details"
// @Success 201 {object} dto.MaintenanceResponse
// @Failure 400 {object} ErrorResponse "Invalid input or unknown property"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /maintenance-requests [post]
func (h *maintenanceHandler) createRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	request, err := h.maintenanceService.CreateRequest(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create maintenance request in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create maintenance request"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToMaintenanceResponse(request))
}

// getRequest godoc
// @Summary Get a maintenance request by ID
// @Description Retrieves details for a specific maintenance request
// @Tags maintenance
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} dto.MaintenanceResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /maintenance-requests/{id} [get]
func (h *maintenanceHandler) getRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	requestID := c.Param("id")

	request, err := h.maintenanceService.GetRequestByID(c.Request.Context(), requestID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Maintenance request not found"})
			return
		}
		logger.Error("Failed to get maintenance request from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve maintenance request"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMaintenanceResponse(request))
}

// listRequests godoc
// @Summary List maintenance requests
// @Description Retrieves a paginated list of maintenance requests (admin only)
// @Tags maintenance
// @Produce json
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListMaintenanceResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/maintenance-requests [get]
func (h *maintenanceHandler) listRequests(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListMaintenanceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	requests, err := h.maintenanceService.ListRequests(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list maintenance requests from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list maintenance requests"})
		return
	}

	c.JSON(http.StatusOK, dto.ListMaintenanceResponse{Requests: dto.ToListMaintenanceResponse(requests)})
}

// updateRequestStatus godoc
// @Summary Update a maintenance request's status
// @Description Moves a maintenance request through its workflow (admin only). Resolved requests cannot change state.
// @Tags maintenance
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param status body dto.UpdateMaintenanceStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Request already resolved"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/maintenance-requests/{id}/status [patch]
func (h *maintenanceHandler) updateRequestStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	requestID := c.Param("id")

	var req dto.UpdateMaintenanceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	err := h.maintenanceService.UpdateRequestStatus(c.Request.Context(), requestID, domain.MaintenanceStatus(req.Status), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Maintenance request not found"})
			return
		}
		logger.Error("Failed to update maintenance request status", slog.String("error", err.Error()), slog.String("request_id", requestID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update maintenance request status"})
		return
	}

	c.Status(http.StatusNoContent)
}

// deleteRequest godoc
// @Summary Delete a maintenance request
// @Description Permanently removes a maintenance request (admin only)
// @Tags maintenance
// @Produce json
// @Param id path string true "Request ID to delete"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/maintenance-requests/{id} [delete]
func (h *maintenanceHandler) deleteRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	requestID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.maintenanceService.DeleteRequest(c.Request.Context(), requestID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Maintenance request not found"})
			return
		}
		logger.Error("Failed to delete maintenance request in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete maintenance request"})
		return
	}

	c.Status(http.StatusNoContent)
}
