package repositories

import (
	"context"
	"time"

	"github.com/homevista/homevista_backend/internal/core/domain"
)

// TicketReader defines read operations for support tickets
type TicketReader interface {
	// FindTicketByID retrieves a specific ticket by its unique identifier.
	FindTicketByID(ctx context.Context, ticketID string) (*domain.Ticket, error)

	// ListTickets retrieves a paginated list of tickets, newest first.
	ListTickets(ctx context.Context, limit int, offset int) ([]domain.Ticket, error)
}

// TicketWriter defines write operations for support tickets
type TicketWriter interface {
	// SaveTicket persists a new ticket.
	SaveTicket(ctx context.Context, ticket domain.Ticket) error

	// UpdateTicketStatus changes a ticket's workflow status.
	UpdateTicketStatus(ctx context.Context, ticketID string, status domain.TicketStatus, userID string, now time.Time) error

	// DeleteTicket permanently removes a ticket.
	DeleteTicket(ctx context.Context, ticketID string) error
}

// TicketRepositoryFacade combines all ticket-related repository interfaces
type TicketRepositoryFacade interface {
	TicketReader
	TicketWriter
}
