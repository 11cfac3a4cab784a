package dto

import (
	"time"

	"github.com/homevista/homevista_backend/internal/core/domain"
)

// CreateMaintenanceRequest defines the data a tenant submits for a maintenance issue.
type CreateMaintenanceRequest struct {
	PropertyID  string `json:"propertyId" binding:"required"`
	TenantName  string `json:"tenantName" binding:"required"`
	TenantEmail string `json:"tenantEmail" binding:"required,email"`
	TenantPhone string `json:"tenantPhone" binding:"required,phone"`
	Category    string `json:"category" binding:"required,oneof=PLUMBING ELECTRICAL HVAC APPLIANCE STRUCTURAL OTHER"`
	Description string `json:"description" binding:"required"`
}

// UpdateMaintenanceStatusRequest changes a maintenance request's workflow status.
type UpdateMaintenanceStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=SUBMITTED IN_PROGRESS RESOLVED"`
}

// MaintenanceResponse defines the data returned for a maintenance request.
type MaintenanceResponse struct {
	RequestID     string    `json:"requestID"`
	PropertyID    string    `json:"propertyID"`
	TenantName    string    `json:"tenantName"`
	TenantEmail   string    `json:"tenantEmail"`
	TenantPhone   string    `json:"tenantPhone"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToMaintenanceResponse converts a domain.MaintenanceRequest to its response DTO
func ToMaintenanceResponse(m *domain.MaintenanceRequest) MaintenanceResponse {
	return MaintenanceResponse{
		RequestID:     m.RequestID,
		PropertyID:    m.PropertyID,
		TenantName:    m.TenantName,
		TenantEmail:   m.TenantEmail,
		TenantPhone:   m.TenantPhone,
		Category:      string(m.Category),
		Description:   m.Description,
		Status:        string(m.Status),
		CreatedAt:     m.CreatedAt,
		LastUpdatedAt: m.LastUpdatedAt,
	}
}

// ToListMaintenanceResponse converts a slice of requests to response DTOs
func ToListMaintenanceResponse(requests []domain.MaintenanceRequest) []MaintenanceResponse {
	res := make([]MaintenanceResponse, len(requests))
	for i := range requests {
		res[i] = ToMaintenanceResponse(&requests[i])
	}
	return res
}

// ListMaintenanceParams defines query parameters for listing maintenance requests.
type ListMaintenanceParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListMaintenanceResponse wraps the list of maintenance requests.
type ListMaintenanceResponse struct {
	Requests []MaintenanceResponse `json:"requests"`
}
