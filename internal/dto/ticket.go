package dto

import (
	"time"

	"github.com/homevista/homevista_backend/internal/core/domain"
)

// CreateTicketRequest defines the data needed to open a support ticket.
type CreateTicketRequest struct {
	Subject   string `json:"subject" binding:"required"`
	Message   string `json:"message" binding:"required"`
	UserEmail string `json:"userEmail" binding:"required,email"`
	Priority  string `json:"priority" binding:"required,oneof=LOW MEDIUM HIGH"`
}

// UpdateTicketStatusRequest changes a ticket's workflow status.
type UpdateTicketStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=OPEN IN_PROGRESS RESOLVED CLOSED"`
}

// TicketResponse defines the data returned for a ticket.
type TicketResponse struct {
	TicketID      string    `json:"ticketID"`
	Subject       string    `json:"subject"`
	Message       string    `json:"message"`
	UserEmail     string    `json:"userEmail"`
	Priority      string    `json:"priority"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToTicketResponse converts a domain.Ticket to TicketResponse DTO
func ToTicketResponse(t *domain.Ticket) TicketResponse {
	return TicketResponse{
		TicketID:      t.TicketID,
		Subject:       t.Subject,
		Message:       t.Message,
		UserEmail:     t.UserEmail,
		Priority:      string(t.Priority),
		Status:        string(t.Status),
		CreatedAt:     t.CreatedAt,
		LastUpdatedAt: t.LastUpdatedAt,
	}
}

// ToListTicketResponse converts a slice of domain.Ticket to response DTOs
func ToListTicketResponse(tickets []domain.Ticket) []TicketResponse {
	res := make([]TicketResponse, len(tickets))
	for i := range tickets {
		res[i] = ToTicketResponse(&tickets[i])
	}
	return res
}

// ListTicketsParams defines query parameters for listing tickets.
type ListTicketsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListTicketsResponse wraps the list of tickets.
type ListTicketsResponse struct {
	Tickets []TicketResponse `json:"tickets"`
}
