package dto

import (
	"time"

	"github.com/homevista/homevista_backend/internal/core/domain"
)

// CreateBookingRequest defines the data needed to book a property viewing.
type CreateBookingRequest struct {
	PropertyID  string    `json:"propertyId" binding:"required"`
	UserName    string    `json:"userName" binding:"required"`
	UserEmail   string    `json:"userEmail" binding:"required,email"`
	UserPhone   string    `json:"userPhone" binding:"required,phone"`
	ScheduledAt time.Time `json:"scheduledAt" binding:"required"`
	Notes       string    `json:"notes"`
}

// BookingResponse defines the data returned for a booking.
type BookingResponse struct {
	BookingID     string    `json:"bookingID"`
	PropertyID    string    `json:"propertyID"`
	UserName      string    `json:"userName"`
	UserEmail     string    `json:"userEmail"`
	UserPhone     string    `json:"userPhone"`
	ScheduledAt   time.Time `json:"scheduledAt"`
	MeetingLink   string    `json:"meetingLink"`
	Notes         string    `json:"notes"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToBookingResponse converts a domain.Booking to BookingResponse DTO
func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		BookingID:     b.BookingID,
		PropertyID:    b.PropertyID,
		UserName:      b.UserName,
		UserEmail:     b.UserEmail,
		UserPhone:     b.UserPhone,
		ScheduledAt:   b.ScheduledAt,
		MeetingLink:   b.MeetingLink,
		Notes:         b.Notes,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
		LastUpdatedAt: b.LastUpdatedAt,
	}
}

// ToListBookingResponse converts a slice of domain.Booking to response DTOs
func ToListBookingResponse(bookings []domain.Booking) []BookingResponse {
	res := make([]BookingResponse, len(bookings))
	for i := range bookings {
		res[i] = ToBookingResponse(&bookings[i])
	}
	return res
}

// ListBookingsParams defines query parameters for listing bookings.
type ListBookingsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListBookingsResponse wraps the list of bookings.
type ListBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}
