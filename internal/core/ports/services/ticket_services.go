package services

import (
	"context"

	"github.com/homevista/homevista_backend/internal/core/domain"
	"github.com/homevista/homevista_backend/internal/dto"
)

// TicketReaderSvc defines read operations on support tickets
type TicketReaderSvc interface {
	// GetTicketByID retrieves a ticket by ID.
	GetTicketByID(ctx context.Context, ticketID string) (*domain.Ticket, error)

	// ListTickets retrieves a paginated list of tickets.
	ListTickets(ctx context.Context, limit int, offset int) ([]domain.Ticket, error)
}

// TicketWriterSvc defines write operations on support tickets
type TicketWriterSvc interface {
	// CreateTicket opens a new support ticket.
	CreateTicket(ctx context.Context, req dto.CreateTicketRequest, userID string) (*domain.Ticket, error)

	// UpdateTicketStatus moves a ticket through its lifecycle.
	UpdateTicketStatus(ctx context.Context, ticketID string, status domain.TicketStatus, userID string) error

	// DeleteTicket removes a ticket.
	DeleteTicket(ctx context.Context, ticketID string, userID string) error
}

// TicketSvcFacade combines all ticket service interfaces
type TicketSvcFacade interface {
	TicketReaderSvc
	TicketWriterSvc
}
