package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/homevista/homevista_backend/internal/apperrors"
	"github.com/homevista/homevista_backend/internal/core/domain"
	portsrepo "github.com/homevista/homevista_backend/internal/core/ports/repositories"
	"github.com/homevista/homevista_backend/internal/models"
)

type PgxBookingRepository struct {
	pool *pgxpool.Pool
}

// newPgxBookingRepository creates a new repository for booking data.
func newPgxBookingRepository(pool *pgxpool.Pool) portsrepo.BookingRepositoryFacade {
	return &PgxBookingRepository{pool: pool}
}

// Ensure PgxBookingRepository implements portsrepo.BookingRepositoryFacade
var _ portsrepo.BookingRepositoryFacade = (*PgxBookingRepository)(nil)

func toModelBooking(d domain.Booking) models.Booking {
	return models.Booking{
		BookingID:   d.BookingID,
		PropertyID:  d.PropertyID,
		UserName:    d.UserName,
		UserEmail:   d.UserEmail,
		UserPhone:   d.UserPhone,
		ScheduledAt: d.ScheduledAt,
		MeetingLink: d.MeetingLink,
		Notes:       d.Notes,
		Status:      string(d.Status),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainBooking(m models.Booking) domain.Booking {
	return domain.Booking{
		BookingID:   m.BookingID,
		PropertyID:  m.PropertyID,
		UserName:    m.UserName,
		UserEmail:   m.UserEmail,
		UserPhone:   m.UserPhone,
		ScheduledAt: m.ScheduledAt,
		MeetingLink: m.MeetingLink,
		Notes:       m.Notes,
		Status:      domain.BookingStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const bookingColumns = `booking_id, property_id, user_name, user_email, user_phone, scheduled_at, meeting_link, notes, status, created_at, created_by, last_updated_at, last_updated_by`

func scanBooking(row pgx.Row) (*models.Booking, error) {
	var m models.Booking
	err := row.Scan(
		&m.BookingID,
		&m.PropertyID,
		&m.UserName,
		&m.UserEmail,
		&m.UserPhone,
		&m.ScheduledAt,
		&m.MeetingLink,
		&m.Notes,
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

func (r *PgxBookingRepository) SaveBooking(ctx context.Context, booking domain.Booking) error {
	m := toModelBooking(booking)

	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.pool.Exec(ctx, query,
		m.BookingID,
		m.PropertyID,
		m.UserName,
		m.UserEmail,
		m.UserPhone,
		m.ScheduledAt,
		m.MeetingLink,
		m.Notes,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: booking %s already exists", apperrors.ErrDuplicate, m.BookingID)
		}
		return fmt.Errorf("failed to save booking %s: %w", m.BookingID, err)
	}
	return nil
}

func (r *PgxBookingRepository) FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_id = $1;`

	m, err := scanBooking(r.pool.QueryRow(ctx, query, bookingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find booking by ID %s: %w", bookingID, err)
	}

	booking := toDomainBooking(*m)
	return &booking, nil
}

func (r *PgxBookingRepository) ListBookings(ctx context.Context, limit int, offset int) ([]domain.Booking, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY scheduled_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	bookings := []domain.Booking{}
	for rows.Next() {
		m, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking row: %w", err)
		}
		bookings = append(bookings, toDomainBooking(*m))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating booking rows: %w", rows.Err())
	}
	return bookings, nil
}

func (r *PgxBookingRepository) UpdateBookingStatus(ctx context.Context, bookingID string, status domain.BookingStatus, userID string, now time.Time) error {
	query := `
		UPDATE bookings
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE booking_id = $4;
	`
	cmdTag, err := r.pool.Exec(ctx, query, string(status), now, userID, bookingID)
	if err != nil {
		return fmt.Errorf("failed to update booking %s status: %w", bookingID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
