package services

import (
	"context"

	"github.com/homevista/homevista_backend/internal/core/domain"
	"github.com/homevista/homevista_backend/internal/dto"
)

// BookingReaderSvc defines read operations on bookings
type BookingReaderSvc interface {
	// GetBookingByID retrieves a booking by ID.
	GetBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error)

	// ListBookings retrieves a paginated list of bookings.
	ListBookings(ctx context.Context, limit int, offset int) ([]domain.Booking, error)
}

// BookingWriterSvc defines write operations on bookings
type BookingWriterSvc interface {
	// CreateBooking schedules a viewing and generates its meeting link.
	CreateBooking(ctx context.Context, req dto.CreateBookingRequest, userID string) (*domain.Booking, error)

	// CancelBooking marks a scheduled booking cancelled.
	CancelBooking(ctx context.Context, bookingID string, userID string) error

	// CompleteBooking marks a scheduled booking completed.
	CompleteBooking(ctx context.Context, bookingID string, userID string) error
}

// BookingSvcFacade combines all booking service interfaces
type BookingSvcFacade interface {
	BookingReaderSvc
	BookingWriterSvc
}
