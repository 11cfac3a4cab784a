package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/homevista/homevista_backend/internal/apperrors"
	"github.com/homevista/homevista_backend/internal/core/domain"
	portsrepo "github.com/homevista/homevista_backend/internal/core/ports/repositories"
	portssvc "github.com/homevista/homevista_backend/internal/core/ports/services"
	"github.com/homevista/homevista_backend/internal/dto"
)

// ticketService implements the TicketSvcFacade interface
type ticketService struct {
	BaseService
	ticketRepo portsrepo.TicketRepositoryFacade
}

// NewTicketService creates a new support ticket service
func NewTicketService(repo portsrepo.TicketRepositoryFacade) portssvc.TicketSvcFacade {
	return &ticketService{ticketRepo: repo}
}

// Ensure ticketService implements the TicketSvcFacade interface
var _ portssvc.TicketSvcFacade = (*ticketService)(nil)

func (s *ticketService) CreateTicket(ctx context.Context, req dto.CreateTicketRequest, userID string) (*domain.Ticket, error) {
	now := time.Now()

	ticket := domain.Ticket{
		TicketID:  uuid.NewString(),
		Subject:   req.Subject,
		Message:   req.Message,
		UserEmail: req.UserEmail,
		Priority:  domain.TicketPriority(req.Priority),
		Status:    domain.TicketOpen,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.ticketRepo.SaveTicket(ctx, ticket); err != nil {
		s.LogError(ctx, err, "Failed to save ticket",
			slog.String("ticket_id", ticket.TicketID))
		return nil, err
	}

	s.LogInfo(ctx, "Ticket created",
		slog.String("ticket_id", ticket.TicketID),
		slog.String("priority", string(ticket.Priority)))
	return &ticket, nil
}

func (s *ticketService) GetTicketByID(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	ticket, err := s.ticketRepo.FindTicketByID(ctx, ticketID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find ticket",
				slog.String("ticket_id", ticketID))
		}
		return nil, err
	}
	return ticket, nil
}

func (s *ticketService) ListTickets(ctx context.Context, limit int, offset int) ([]domain.Ticket, error) {
	tickets, err := s.ticketRepo.ListTickets(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tickets",
			slog.Int("limit", limit),
			slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	if tickets == nil {
		return []domain.Ticket{}, nil
	}
	return tickets, nil
}

func (s *ticketService) UpdateTicketStatus(ctx context.Context, ticketID string, status domain.TicketStatus, userID string) error {
	ticket, err := s.GetTicketByID(ctx, ticketID)
	if err != nil {
		return err
	}

	if ticket.Status == domain.TicketClosed {
		err := fmt.Errorf("%w: ticket %s is closed", apperrors.ErrValidation, ticketID)
		s.LogError(ctx, err, "Rejected status update on closed ticket",
			slog.String("ticket_id", ticketID),
			slog.String("requested_status", string(status)))
		return err
	}

	now := time.Now()
	if err := s.ticketRepo.UpdateTicketStatus(ctx, ticketID, status, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to update ticket status",
			slog.String("ticket_id", ticketID),
			slog.String("requested_status", string(status)))
		return err
	}

	s.LogInfo(ctx, "Ticket status updated",
		slog.String("ticket_id", ticketID),
		slog.String("status", string(status)))
	return nil
}

func (s *ticketService) DeleteTicket(ctx context.Context, ticketID string, userID string) error {
	if _, err := s.GetTicketByID(ctx, ticketID); err != nil {
		return err
	}

	if err := s.ticketRepo.DeleteTicket(ctx, ticketID); err != nil {
		s.LogError(ctx, err, "Failed to delete ticket",
			slog.String("ticket_id", ticketID))
		return err
	}

	s.LogInfo(ctx, "Ticket deleted",
		slog.String("ticket_id", ticketID),
		slog.String("deleted_by", userID))
	return nil
}
