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

// feedbackHandler handles HTTP requests for site feedback.
type feedbackHandler struct {
	feedbackService portssvc.FeedbackSvcFacade
}

func newFeedbackHandler(fs portssvc.FeedbackSvcFacade) *feedbackHandler {
	return &feedbackHandler{
		feedbackService: fs,
	}
}

// registerFeedbackRoutes registers feedback routes. Reading the collected
// feedback is admin only.
func registerFeedbackRoutes(rg *gin.RouterGroup, adminRg *gin.RouterGroup, feedbackService portssvc.FeedbackSvcFacade) {
	h := newFeedbackHandler(feedbackService)

	rg.POST("/feedback", h.createFeedback)
	adminRg.GET("/feedback", h.listFeedback)
	adminRg.DELETE("/feedback/:id", h.deleteFeedback)
}

// createFeedback godoc
// @Summary Submit feedback
// @Description Records a feedback entry with a 1-5 rating
// @Tags feedback
// @Accept json
// @Produce json
// @Param feedback body dto.CreateFeedbackRequest true "Feedback details"
// @Success 201 {object} dto.FeedbackResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /feedback [post]
func (h *feedbackHandler) createFeedback(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entry, err := h.feedbackService.CreateFeedback(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create feedback in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to submit feedback"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToFeedbackResponse(entry))
}

// listFeedback godoc
// @Summary List feedback entries
// @Description Retrieves a paginated list of feedback entries (admin only)
// @Tags feedback
// @Produce json
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListFeedbackResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/feedback [get]
func (h *feedbackHandler) listFeedback(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListFeedbackParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	entries, err := h.feedbackService.ListFeedback(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list feedback from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list feedback"})
		return
	}

	c.JSON(http.StatusOK, dto.ListFeedbackResponse{Feedback: dto.ToListFeedbackResponse(entries)})
}

// deleteFeedback godoc
// @Summary Delete a feedback entry
// @Description Permanently removes a feedback entry (admin only)
// @Tags feedback
// @Param id path string true "Feedback ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/feedback/{id} [delete]
func (h *feedbackHandler) deleteFeedback(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	feedbackID := c.Param("id")

	if err := h.feedbackService.DeleteFeedback(c.Request.Context(), feedbackID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Feedback not found"})
			return
		}
		logger.Error("Failed to delete feedback in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete feedback"})
		return
	}

	c.Status(http.StatusNoContent)
}
