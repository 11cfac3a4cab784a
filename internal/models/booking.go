package models

import "time"

// Booking is the database representation of a viewing appointment.
type Booking struct {
	BookingID   string    `db:"booking_id"`
	PropertyID  string    `db:"property_id"`
	UserName    string    `db:"user_name"`
	UserEmail   string    `db:"user_email"`
	UserPhone   string    `db:"user_phone"`
	ScheduledAt time.Time `db:"scheduled_at"`
	MeetingLink string    `db:"meeting_link"`
	Notes       string    `db:"notes"`
	Status      string    `db:"status"`
	AuditFields
}
