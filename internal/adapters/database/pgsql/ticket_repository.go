package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/homevista/homevista_backend/internal/apperrors"
	"github.com/homevista/homevista_backend/internal/core/domain"
	portsrepo "github.com/homevista/homevista_backend/internal/core/ports/repositories"
	"github.com/homevista/homevista_backend/internal/models"
)

type PgxTicketRepository struct {
	pool *pgxpool.Pool
}

// newPgxTicketRepository creates a new repository for support ticket data.
func newPgxTicketRepository(pool *pgxpool.Pool) portsrepo.TicketRepositoryFacade {
	return &PgxTicketRepository{pool: pool}
}

// Ensure PgxTicketRepository implements portsrepo.TicketRepositoryFacade
var _ portsrepo.TicketRepositoryFacade = (*PgxTicketRepository)(nil)

func toDomainTicket(m models.Ticket) domain.Ticket {
	return domain.Ticket{
		TicketID:  m.TicketID,
		Subject:   m.Subject,
		Message:   m.Message,
		UserEmail: m.UserEmail,
		Priority:  domain.TicketPriority(m.Priority),
		Status:    domain.TicketStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const ticketColumns = `ticket_id, subject, message, user_email, priority, status, created_at, created_by, last_updated_at, last_updated_by`

func scanTicket(row pgx.Row) (*models.Ticket, error) {
	var m models.Ticket
	err := row.Scan(
		&m.TicketID,
		&m.Subject,
		&m.Message,
		&m.UserEmail,
		&m.Priority,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxTicketRepository) SaveTicket(ctx context.Context, ticket domain.Ticket) error {
	query := `
		INSERT INTO tickets (` + ticketColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		ticket.TicketID,
		ticket.Subject,
		ticket.Message,
		ticket.UserEmail,
		string(ticket.Priority),
		string(ticket.Status),
		ticket.CreatedAt,
		ticket.CreatedBy,
		ticket.LastUpdatedAt,
		ticket.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save ticket %s: %w", ticket.TicketID, err)
	}
	return nil
}

func (r *PgxTicketRepository) FindTicketByID(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE ticket_id = $1;`

	m, err := scanTicket(r.pool.QueryRow(ctx, query, ticketID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ticket by ID %s: %w", ticketID, err)
	}

	ticket := toDomainTicket(*m)
	return &ticket, nil
}

func (r *PgxTicketRepository) ListTickets(ctx context.Context, limit int, offset int) ([]domain.Ticket, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + ticketColumns + `
		FROM tickets
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query tickets: %w", err)
	}
	defer rows.Close()

	tickets := []domain.Ticket{}
	for rows.Next() {
		m, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket row: %w", err)
		}
		tickets = append(tickets, toDomainTicket(*m))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating ticket rows: %w", rows.Err())
	}
	return tickets, nil
}

func (r *PgxTicketRepository) UpdateTicketStatus(ctx context.Context, ticketID string, status domain.TicketStatus, userID string, now time.Time) error {
	query := `
		UPDATE tickets
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE ticket_id = $4;
	`
	cmdTag, err := r.pool.Exec(ctx, query, string(status), now, userID, ticketID)
	if err != nil {
		return fmt.Errorf("failed to update ticket %s status: %w", ticketID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTicketRepository) DeleteTicket(ctx context.Context, ticketID string) error {
	query := `DELETE FROM tickets WHERE ticket_id = $1;`

	cmdTag, err := r.pool.Exec(ctx, query, ticketID)
	if err != nil {
		return fmt.Errorf("failed to delete ticket %s: %w", ticketID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
