package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/homevista/homevista_backend/internal/apperrors"
	"github.com/homevista/homevista_backend/internal/core/domain"
	portsrepo "github.com/homevista/homevista_backend/internal/core/ports/repositories"
	portssvc "github.com/homevista/homevista_backend/internal/core/ports/services"
	"github.com/homevista/homevista_backend/internal/dto"
)

// bookingService implements the BookingSvcFacade interface
type bookingService struct {
	BaseService
	bookingRepo    portsrepo.BookingRepositoryFacade
	propertyRepo   portsrepo.PropertyReader
	meetingBaseURL string
}

// BookingServiceOption is a functional option for configuring the booking service
type BookingServiceOption func(*bookingService)

// WithBookingPropertyReader adds a property repository used to verify that
// bookings reference existing properties.
func WithBookingPropertyReader(repo portsrepo.PropertyReader) BookingServiceOption {
	return func(s *bookingService) {
		s.propertyRepo = repo
	}
}

// NewBookingService creates a new booking service with the provided options
func NewBookingService(repo portsrepo.BookingRepositoryFacade, meetingBaseURL string, options ...BookingServiceOption) portssvc.BookingSvcFacade {
	svc := &bookingService{
		bookingRepo:    repo,
		meetingBaseURL: strings.TrimRight(meetingBaseURL, "/"),
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure bookingService implements the BookingSvcFacade interface
var _ portssvc.BookingSvcFacade = (*bookingService)(nil)

// CreateBooking schedules a viewing appointment. The meeting link is generated
// here from a fresh UUID so callers can never pick their own meeting rooms.
func (s *bookingService) CreateBooking(ctx context.Context, req dto.CreateBookingRequest, userID string) (*domain.Booking, error) {
	if !req.ScheduledAt.After(time.Now()) {
		return nil, fmt.Errorf("%w: scheduled time must be in the future", apperrors.ErrValidation)
	}

	if s.propertyRepo != nil {
		if _, err := s.propertyRepo.FindPropertyByID(ctx, req.PropertyID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: property %s does not exist", apperrors.ErrValidation, req.PropertyID)
			}
			s.LogError(ctx, err, "Failed to resolve property for booking",
				slog.String("property_id", req.PropertyID))
			return nil, err
		}
	}

	now := time.Now()

	booking := domain.Booking{
		BookingID:   uuid.NewString(),
		PropertyID:  req.PropertyID,
		UserName:    req.UserName,
		UserEmail:   req.UserEmail,
		UserPhone:   req.UserPhone,
		ScheduledAt: req.ScheduledAt,
		MeetingLink: fmt.Sprintf("%s/%s", s.meetingBaseURL, uuid.NewString()),
		Notes:       req.Notes,
		Status:      domain.BookingScheduled,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.bookingRepo.SaveBooking(ctx, booking); err != nil {
		s.LogError(ctx, err, "Failed to save booking",
			slog.String("booking_id", booking.BookingID),
			slog.String("property_id", booking.PropertyID))
		return nil, err
	}

	s.LogInfo(ctx, "Booking created",
		slog.String("booking_id", booking.BookingID),
		slog.String("property_id", booking.PropertyID))
	return &booking, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.FindBookingByID(ctx, bookingID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find booking",
				slog.String("booking_id", bookingID))
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, limit int, offset int) ([]domain.Booking, error) {
	bookings, err := s.bookingRepo.ListBookings(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bookings",
			slog.Int("limit", limit),
			slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	if bookings == nil {
		return []domain.Booking{}, nil
	}
	return bookings, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID string, userID string) error {
	return s.transitionBooking(ctx, bookingID, domain.BookingCancelled, userID)
}

func (s *bookingService) CompleteBooking(ctx context.Context, bookingID string, userID string) error {
	return s.transitionBooking(ctx, bookingID, domain.BookingCompleted, userID)
}

// transitionBooking moves a scheduled booking to a final status. Only
// scheduled bookings can move; completed and cancelled ones stay put.
func (s *bookingService) transitionBooking(ctx context.Context, bookingID string, to domain.BookingStatus, userID string) error {
	booking, err := s.GetBookingByID(ctx, bookingID)
	if err != nil {
		return err
	}

	if booking.Status != domain.BookingScheduled {
		err := fmt.Errorf("%w: booking %s is already %s", apperrors.ErrValidation, bookingID, booking.Status)
		s.LogError(ctx, err, "Rejected status transition on settled booking",
			slog.String("booking_id", bookingID),
			slog.String("current_status", string(booking.Status)),
			slog.String("requested_status", string(to)))
		return err
	}

	now := time.Now()
	if err := s.bookingRepo.UpdateBookingStatus(ctx, bookingID, to, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to update booking status",
			slog.String("booking_id", bookingID),
			slog.String("requested_status", string(to)))
		return err
	}

	s.LogInfo(ctx, "Booking status updated",
		slog.String("booking_id", bookingID),
		slog.String("status", string(to)))
	return nil
}
