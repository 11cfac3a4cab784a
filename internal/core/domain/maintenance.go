package domain

// MaintenanceCategory classifies a tenant maintenance request.
type MaintenanceCategory string

const (
	Plumbing   MaintenanceCategory = "PLUMBING"
	Electrical MaintenanceCategory = "ELECTRICAL"
	HVAC       MaintenanceCategory = "HVAC"
	Appliance  MaintenanceCategory = "APPLIANCE"
	Structural MaintenanceCategory = "STRUCTURAL"
	Other      MaintenanceCategory = "OTHER"
)

// MaintenanceStatus tracks a maintenance request through its workflow.
type MaintenanceStatus string

const (
	MaintenanceSubmitted  MaintenanceStatus = "SUBMITTED"
	MaintenanceInProgress MaintenanceStatus = "IN_PROGRESS"
	MaintenanceResolved   MaintenanceStatus = "RESOLVED"
)

// MaintenanceRequest represents a tenant's maintenance request for a property.
type MaintenanceRequest struct {
	RequestID   string              `json:"requestID"` // Primary Key (e.g., UUID)
	PropertyID  string              `json:"propertyID"`
	TenantName  string              `json:"tenantName"`
	TenantEmail string              `json:"tenantEmail"`
	TenantPhone string              `json:"tenantPhone"`
	Category    MaintenanceCategory `json:"category"`
	Description string              `json:"description"`
	Status      MaintenanceStatus   `json:"status"`
	AuditFields
}
