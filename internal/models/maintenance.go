package models

// MaintenanceRequest is the database representation of a maintenance request.
type MaintenanceRequest struct {
	RequestID   string `db:"request_id"`
	PropertyID  string `db:"property_id"`
	TenantName  string `db:"tenant_name"`
	TenantEmail string `db:"tenant_email"`
	TenantPhone string `db:"tenant_phone"`
	Category    string `db:"category"`
	Description string `db:"description"`
	Status      string `db:"status"`
	AuditFields
}
