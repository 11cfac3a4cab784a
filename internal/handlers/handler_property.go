package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/homevista/homevista_backend/internal/apperrors"
	portssvc "github.com/homevista/homevista_backend/internal/core/ports/services"
	"github.com/homevista/homevista_backend/internal/dto"
	"github.com/homevista/homevista_backend/internal/middleware"
)

// propertyHandler handles HTTP requests related to property listings.
type propertyHandler struct {
	propertyService portssvc.PropertySvcFacade
}

func newPropertyHandler(ps portssvc.PropertySvcFacade) *propertyHandler {
	return &propertyHandler{
		propertyService: ps,
	}
}

// registerPropertyRoutes registers property routes. Browsing listings is
// public; creating and mutating them is restricted to admins.
func registerPropertyRoutes(publicRg *gin.RouterGroup, adminRg *gin.RouterGroup, propertyService portssvc.PropertySvcFacade) {
	h := newPropertyHandler(propertyService)

	properties := publicRg.Group("/properties")
	{
		properties.GET("", h.listProperties)
		properties.GET("/:id", h.getProperty)
	}

	adminProperties := adminRg.Group("/properties")
	{
		adminProperties.POST("", h.createProperty)
		adminProperties.PUT("/:id", h.updateProperty)
		adminProperties.DELETE("/:id", h.deleteProperty)
	}
}

// createProperty godoc
// @Summary Create a property listing
// @Description Creates a new property listing (admin only)
// @Tags properties
// @Accept json
// @Produce json
// @Param property body dto.CreatePropertyRequest true "Property details"
// @Success 201 {object} dto.PropertyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/properties [post]
func (h *propertyHandler) createProperty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger.Info("Received request to create property", slog.String("title", req.Title), slog.String("creator_user_id", creatorUserID))

	property, err := h.propertyService.CreateProperty(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create property in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create property"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToPropertyResponse(property))
}

// getProperty godoc
// @Summary Get a property by ID
// @Description Retrieves details for a specific property listing
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} dto.PropertyResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /properties/{id} [get]
func (h *propertyHandler) getProperty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("id")

	property, err := h.propertyService.GetPropertyByID(c.Request.Context(), propertyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Property not found"})
			return
		}
		logger.Error("Failed to get property from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve property"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPropertyResponse(property))
}

// listProperties godoc
// @Summary List property listings
// @Description Retrieves a paginated list of active properties, optionally filtered by city, type and price range
// @Tags properties
// @Produce json
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Param city query string false "Filter by city"
// @Param propertyType query string false "Filter by property type" Enums(HOUSE, APARTMENT, COMMERCIAL, LAND)
// @Param listingType query string false "Filter by listing type" Enums(SALE, RENT)
// @Param minPrice query string false "Minimum price"
// @Param maxPrice query string false "Maximum price"
// @Param nextToken query string false "Opaque cursor from a previous page"
// @Success 200 {object} dto.ListPropertiesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /properties [get]
func (h *propertyHandler) listProperties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListPropertiesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.propertyService.ListProperties(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to list properties from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list properties"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// updateProperty godoc
// @Summary Update a property
// @Description Applies partial updates to a property listing (admin only)
// @Tags properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID to update"
// @Param property body dto.UpdatePropertyRequest true "Property details to update"
// @Success 200 {object} dto.PropertyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/properties/{id} [put]
func (h *propertyHandler) updateProperty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("id")

	var req dto.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	property, err := h.propertyService.UpdateProperty(c.Request.Context(), propertyID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Property not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to update property in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update property"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPropertyResponse(property))
}

// deleteProperty godoc
// @Summary Deactivate a property
// @Description Soft deletes a property listing so it no longer appears in searches (admin only)
// @Tags properties
// @Produce json
// @Param id path string true "Property ID to deactivate"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/properties/{id} [delete]
func (h *propertyHandler) deleteProperty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("id")

	deleterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.propertyService.DeactivateProperty(c.Request.Context(), propertyID, deleterUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Property not found"})
			return
		}
		logger.Error("Failed to deactivate property in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to deactivate property"})
		return
	}

	c.Status(http.StatusNoContent)
}
