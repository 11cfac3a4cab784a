package services

import (
	portsrepo "github.com/homevista/homevista_backend/internal/core/ports/repositories"
	portssvc "github.com/homevista/homevista_backend/internal/core/ports/services"
	"github.com/homevista/homevista_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The property cache is optional; pass nil to run without one.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, propertyCache portsrepo.PropertyCache) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)

	propertyOpts := []PropertyServiceOption{}
	if propertyCache != nil {
		propertyOpts = append(propertyOpts, WithPropertyCache(propertyCache))
	}
	container.Property = NewPropertyService(repos.PropertyRepo, propertyOpts...)

	container.FinanceApp = NewFinanceApplicationService(
		repos.FinanceAppRepo,
		WithPropertyReader(repos.PropertyRepo),
	)

	container.Booking = NewBookingService(
		repos.BookingRepo,
		cfg.MeetingBaseURL,
		WithBookingPropertyReader(repos.PropertyRepo),
	)

	container.Ticket = NewTicketService(repos.TicketRepo)
	container.Maintenance = NewMaintenanceService(
		repos.MaintenanceRepo,
		WithMaintenancePropertyReader(repos.PropertyRepo),
	)
	container.Feedback = NewFeedbackService(repos.FeedbackRepo)
	container.Cart = NewCartService(repos.CartRepo, repos.PropertyRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.UserSvcFacade               = (*userService)(nil)
	_ portssvc.PropertySvcFacade           = (*propertyService)(nil)
	_ portssvc.FinanceApplicationSvcFacade = (*financeApplicationService)(nil)
	_ portssvc.BookingSvcFacade            = (*bookingService)(nil)
	_ portssvc.TicketSvcFacade             = (*ticketService)(nil)
	_ portssvc.MaintenanceSvcFacade        = (*maintenanceService)(nil)
	_ portssvc.FeedbackSvcFacade           = (*feedbackService)(nil)
	_ portssvc.CartSvcFacade               = (*cartService)(nil)
)
