package repositories

import (
	"context"
	"time"

	"github.com/homevista/homevista_backend/internal/core/domain"
)

// BookingReader defines read operations for booking data
type BookingReader interface {
	// FindBookingByID retrieves a specific booking by its unique identifier.
	FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error)

	// ListBookings retrieves a paginated list of bookings, newest first.
	ListBookings(ctx context.Context, limit int, offset int) ([]domain.Booking, error)
}

// BookingWriter defines write operations for booking data
type BookingWriter interface {
	// SaveBooking persists a new booking.
	SaveBooking(ctx context.Context, booking domain.Booking) error

	// UpdateBookingStatus changes a booking's status.
	UpdateBookingStatus(ctx context.Context, bookingID string, status domain.BookingStatus, userID string, now time.Time) error
}

// BookingRepositoryFacade combines all booking-related repository interfaces
type BookingRepositoryFacade interface {
	BookingReader
	BookingWriter
}
