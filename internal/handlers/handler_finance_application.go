package handlers

import (
	"context"
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

// financeApplicationHandler handles HTTP requests for finance applications.
type financeApplicationHandler struct {
	financeService portssvc.FinanceApplicationSvcFacade
}

func newFinanceApplicationHandler(fs portssvc.FinanceApplicationSvcFacade) *financeApplicationHandler {
	return &financeApplicationHandler{
		financeService: fs,
	}
}

// registerFinanceApplicationRoutes registers finance application routes.
// Applicants submit and read applications; decisions and deletion are admin only.
func registerFinanceApplicationRoutes(rg *gin.RouterGroup, adminRg *gin.RouterGroup, financeService portssvc.FinanceApplicationSvcFacade) {
	h := newFinanceApplicationHandler(financeService)

	apps := rg.Group("/finance-applications")
	{
		apps.POST("", h.createApplication)
		apps.POST("/quote", h.quoteLoan)
		apps.GET("/:id", h.getApplication)
		apps.GET("/:id/schedule", h.getAmortizationSchedule)
	}

	adminApps := adminRg.Group("/finance-applications")
	{
		adminApps.GET("", h.listApplications)
		adminApps.POST("/:id/approve", h.approveApplication)
		adminApps.POST("/:id/reject", h.rejectApplication)
		adminApps.DELETE("/:id", h.deleteApplication)
	}
}

// createApplication godoc
// @Summary Submit a finance application
// @Description Submits a loan application. Payment, interest, cost and LTV figures are recomputed server-side from the raw inputs; any client-supplied figures are ignored.
// @Tags finance-applications
// @Accept json
// @Produce json
// @Param application body dto.CreateFinanceApplicationRequest true "Application details"
// @Success 201 {object} dto.FinanceApplicationResponse
// @Failure 400 {object} ErrorResponse "Invalid input, rate/term outside policy, or unknown property"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /finance-applications [post]
func (h *financeApplicationHandler) createApplication(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateFinanceApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateApplication", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	applicantUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("applicant_user_id", applicantUserID), slog.String("property_id", req.PropertyID))
	logger.Info("Received request to create finance application",
		slog.Float64("loan_amount", req.LoanAmount),
		slog.Float64("interest_rate", req.InterestRate),
		slog.Int("loan_term", req.LoanTerm))

	app, err := h.financeService.CreateApplication(c.Request.Context(), req, applicantUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating finance application", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create finance application in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create finance application"})
		return
	}

	logger.Info("Finance application created", slog.String("application_id", app.ApplicationID))
	c.JSON(http.StatusCreated, dto.ToFinanceApplicationResponse(app))
}

// quoteLoan godoc
// @Summary Quote a loan from calculator inputs
// @Description Derives down payment, loan amount, periodic payment, total interest, total cost and LTV from the complete calculator state. Nothing is persisted.
// @Tags finance-applications
// @Accept json
// @Produce json
// @Param quote body dto.LoanQuoteRequest true "Calculator form state"
// @Success 200 {object} dto.LoanQuoteResponse
// @Failure 400 {object} ErrorResponse "Invalid input or rate/term outside policy"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /finance-applications/quote [post]
func (h *financeApplicationHandler) quoteLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoanQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	quote, err := h.financeService.QuoteLoan(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to quote loan", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to quote loan"})
		return
	}

	c.JSON(http.StatusOK, quote)
}

// getApplication godoc
// @Summary Get a finance application by ID
// @Description Retrieves a finance application including its server-computed figures
// @Tags finance-applications
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} dto.FinanceApplicationResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /finance-applications/{id} [get]
func (h *financeApplicationHandler) getApplication(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	applicationID := c.Param("id")

	app, err := h.financeService.GetApplicationByID(c.Request.Context(), applicationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Finance application not found"})
			return
		}
		logger.Error("Failed to get finance application from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve finance application"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFinanceApplicationResponse(app))
}

// getAmortizationSchedule godoc
// @Summary Get the amortization schedule for an application
// @Description Computes the full period-by-period payment schedule from the application's stored loan terms. The schedule is derived on demand and never persisted.
// @Tags finance-applications
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} dto.AmortizationScheduleResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /finance-applications/{id}/schedule [get]
func (h *financeApplicationHandler) getAmortizationSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	applicationID := c.Param("id")

	entries, err := h.financeService.GetAmortizationSchedule(c.Request.Context(), applicationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Finance application not found"})
			return
		}
		logger.Error("Failed to compute amortization schedule", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute amortization schedule"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAmortizationScheduleResponse(applicationID, entries))
}

// listApplications godoc
// @Summary List finance applications
// @Description Retrieves a paginated list of finance applications, optionally filtered by status (admin only)
// @Tags finance-applications
// @Produce json
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Param status query string false "Filter by status" Enums(PENDING, APPROVED, REJECTED)
// @Success 200 {object} dto.ListFinanceApplicationsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/finance-applications [get]
func (h *financeApplicationHandler) listApplications(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListFinanceApplicationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	apps, err := h.financeService.ListApplications(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list finance applications from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list finance applications"})
		return
	}

	c.JSON(http.StatusOK, dto.ListFinanceApplicationsResponse{Applications: dto.ToListFinanceApplicationResponse(apps)})
}

// approveApplication godoc
// @Summary Approve a finance application
// @Description Transitions a pending application to approved (admin only). Applications already decided are rejected with a conflict.
// @Tags finance-applications
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} dto.FinanceApplicationResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Application already decided"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/finance-applications/{id}/approve [post]
func (h *financeApplicationHandler) approveApplication(c *gin.Context) {
	h.decide(c, h.financeService.ApproveApplication)
}

// rejectApplication godoc
// @Summary Reject a finance application
// @Description Transitions a pending application to rejected (admin only). Applications already decided are rejected with a conflict.
// @Tags finance-applications
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} dto.FinanceApplicationResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Application already decided"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/finance-applications/{id}/reject [post]
func (h *financeApplicationHandler) rejectApplication(c *gin.Context) {
	h.decide(c, h.financeService.RejectApplication)
}

// decide runs one of the approve/reject transitions and maps its errors.
// Concurrent decisions race on the pending state; the loser's conditional
// update affects no rows and surfaces here as a conflict.
func (h *financeApplicationHandler) decide(c *gin.Context, transition func(ctx context.Context, applicationID string, userID string) (*domain.FinanceApplication, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	applicationID := c.Param("id")

	deciderUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("application_id", applicationID), slog.String("decider_user_id", deciderUserID))

	app, err := transition(c.Request.Context(), applicationID, deciderUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Finance application already decided", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Finance application not found"})
			return
		}
		logger.Error("Failed to decide finance application", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update finance application"})
		return
	}

	logger.Info("Finance application decided", slog.String("status", string(app.Status)))
	c.JSON(http.StatusOK, dto.ToFinanceApplicationResponse(app))
}

// deleteApplication godoc
// @Summary Delete a finance application
// @Description Permanently removes a finance application (admin only)
// @Tags finance-applications
// @Produce json
// @Param id path string true "Application ID to delete"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/finance-applications/{id} [delete]
func (h *financeApplicationHandler) deleteApplication(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	applicationID := c.Param("id")

	deleterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.financeService.DeleteApplication(c.Request.Context(), applicationID, deleterUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Finance application not found"})
			return
		}
		logger.Error("Failed to delete finance application in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete finance application"})
		return
	}

	c.Status(http.StatusNoContent)
}
