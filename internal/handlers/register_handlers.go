package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/homevista/homevista_backend/cmd/docs"
	portssvc "github.com/homevista/homevista_backend/internal/core/ports/services"
	"github.com/homevista/homevista_backend/internal/dto"
	"github.com/homevista/homevista_backend/internal/middleware"
	"github.com/homevista/homevista_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	if err := dto.RegisterValidators(); err != nil {
		panic(err)
	}

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services.User)

	// Setup API v1 routes, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (disabled in production)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 groups and delegates to specific entity route registrations.
// Three tiers: public (browsing listings), authenticated, and admin.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	public := r.Group("/api/v1")

	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	admin := r.Group("/api/v1/admin",
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.AdminRequired(services.User),
	)

	registerUserRoutes(v1, admin, services.User)
	registerPropertyRoutes(public, admin, services.Property)
	registerFinanceApplicationRoutes(v1, admin, services.FinanceApp)
	registerBookingRoutes(v1, services.Booking)
	registerTicketRoutes(v1, admin, services.Ticket)
	registerMaintenanceRoutes(v1, admin, services.Maintenance)
	registerFeedbackRoutes(v1, admin, services.Feedback)
	registerCartRoutes(v1, services.Cart)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
