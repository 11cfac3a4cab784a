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

// ticketHandler handles HTTP requests for support tickets.
type ticketHandler struct {
	ticketService portssvc.TicketSvcFacade
}

func newTicketHandler(ts portssvc.TicketSvcFacade) *ticketHandler {
	return &ticketHandler{
		ticketService: ts,
	}
}

// registerTicketRoutes registers ticket routes. Working a ticket through its
// lifecycle and deleting it are admin operations.
func registerTicketRoutes(rg *gin.RouterGroup, adminRg *gin.RouterGroup, ticketService portssvc.TicketSvcFacade) {
	h := newTicketHandler(ticketService)

	tickets := rg.Group("/tickets")
	{
		tickets.POST("", h.createTicket)
		tickets.GET("/:id", h.getTicket)
	}

	adminTickets := adminRg.Group("/tickets")
	{
		adminTickets.GET("", h.listTickets)
		adminTickets.PATCH("/:id/status", h.updateTicketStatus)
		adminTickets.DELETE("/:id", h.deleteTicket)
	}
}

// createTicket godoc
// @Summary Open a support ticket
// @Description Opens a new support ticket in the OPEN state
// @Tags tickets
// @Accept json
// @Produce json
// @Param ticket body dto.CreateTicketRequest true "Ticket details"
// @Success 201 {object} dto.TicketResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /tickets [post]
func (h *ticketHandler) createTicket(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	ticket, err := h.ticketService.CreateTicket(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create ticket in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create ticket"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToTicketResponse(ticket))
}

// getTicket godoc
// @Summary Get a ticket by ID
// @Description Retrieves details for a specific support ticket
// @Tags tickets
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} dto.TicketResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /tickets/{id} [get]
func (h *ticketHandler) getTicket(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ticketID := c.Param("id")

	ticket, err := h.ticketService.GetTicketByID(c.Request.Context(), ticketID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Ticket not found"})
			return
		}
		logger.Error("Failed to get ticket from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve ticket"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketResponse(ticket))
}

// listTickets godoc
// @Summary List tickets
// @Description Retrieves a paginated list of support tickets (admin only)
// @Tags tickets
// @Produce json
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListTicketsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/tickets [get]
func (h *ticketHandler) listTickets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTicketsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	tickets, err := h.ticketService.ListTickets(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list tickets from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list tickets"})
		return
	}

	c.JSON(http.StatusOK, dto.ListTicketsResponse{Tickets: dto.ToListTicketResponse(tickets)})
}

// updateTicketStatus godoc
// @Summary Update a ticket's status
// @Description Moves a support ticket through its workflow (admin only). Closed tickets cannot change state.
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID"
// @Param status body dto.UpdateTicketStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Ticket already closed"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/tickets/{id}/status [patch]
func (h *ticketHandler) updateTicketStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ticketID := c.Param("id")

	var req dto.UpdateTicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	err := h.ticketService.UpdateTicketStatus(c.Request.Context(), ticketID, domain.TicketStatus(req.Status), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Ticket not found"})
			return
		}
		logger.Error("Failed to update ticket status", slog.String("error", err.Error()), slog.String("ticket_id", ticketID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update ticket status"})
		return
	}

	c.Status(http.StatusNoContent)
}

// deleteTicket godoc
// @Summary Delete a ticket
// @Description Permanently removes a support ticket (admin only)
// @Tags tickets
// @Produce json
// @Param id path string true "Ticket ID to delete"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/tickets/{id} [delete]
func (h *ticketHandler) deleteTicket(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ticketID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.ticketService.DeleteTicket(c.Request.Context(), ticketID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Ticket not found"})
			return
		}
		logger.Error("Failed to delete ticket in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete ticket"})
		return
	}

	c.Status(http.StatusNoContent)
}
