package models

// Ticket is the database representation of a support ticket.
type Ticket struct {
	TicketID  string `db:"ticket_id"`
	Subject   string `db:"subject"`
	Message   string `db:"message"`
	UserEmail string `db:"user_email"`
	Priority  string `db:"priority"`
	Status    string `db:"status"`
	AuditFields
}
