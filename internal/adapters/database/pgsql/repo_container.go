package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/homevista/homevista_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository against the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(dbPool),
		PropertyRepo:    newPgxPropertyRepository(dbPool),
		FinanceAppRepo:  newPgxFinanceApplicationRepository(dbPool),
		BookingRepo:     newPgxBookingRepository(dbPool),
		TicketRepo:      newPgxTicketRepository(dbPool),
		MaintenanceRepo: newPgxMaintenanceRepository(dbPool),
		FeedbackRepo:    newPgxFeedbackRepository(dbPool),
		CartRepo:        newPgxCartRepository(dbPool),
	}
}
