package domain

import "time"

// BookingStatus indicates the state of a viewing appointment.
type BookingStatus string

const (
	BookingScheduled BookingStatus = "SCHEDULED"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// Booking represents a scheduled property viewing appointment.
// MeetingLink is generated server-side when the booking is created.
type Booking struct {
	BookingID   string        `json:"bookingID"` // Primary Key (e.g., UUID)
	PropertyID  string        `json:"propertyID"`
	UserName    string        `json:"userName"`
	UserEmail   string        `json:"userEmail"`
	UserPhone   string        `json:"userPhone"`
	ScheduledAt time.Time     `json:"scheduledAt"`
	MeetingLink string        `json:"meetingLink"`
	Notes       string        `json:"notes"` // Nullable
	Status      BookingStatus `json:"status"`
	AuditFields
}
