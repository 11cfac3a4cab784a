package domain

// TicketPriority is the urgency of a support ticket.
type TicketPriority string

const (
	PriorityLow    TicketPriority = "LOW"
	PriorityMedium TicketPriority = "MEDIUM"
	PriorityHigh   TicketPriority = "HIGH"
)

// TicketStatus tracks a support ticket through its workflow.
type TicketStatus string

const (
	TicketOpen       TicketStatus = "OPEN"
	TicketInProgress TicketStatus = "IN_PROGRESS"
	TicketResolved   TicketStatus = "RESOLVED"
	TicketClosed     TicketStatus = "CLOSED"
)

// Ticket represents a customer support ticket.
type Ticket struct {
	TicketID  string         `json:"ticketID"` // Primary Key (e.g., UUID)
	Subject   string         `json:"subject"`
	Message   string         `json:"message"`
	UserEmail string         `json:"userEmail"`
	Priority  TicketPriority `json:"priority"`
	Status    TicketStatus   `json:"status"`
	AuditFields
}
