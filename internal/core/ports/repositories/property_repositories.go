package repositories

import (
	"context"
	"time"

	"github.com/homevista/homevista_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PropertyFilter narrows a property listing query. Nil fields are ignored.
// CreatedBefore is the cursor for keyset pagination over created_at DESC.
type PropertyFilter struct {
	City          *string
	PropertyType  *domain.PropertyType
	ListingType   *domain.ListingType
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
	CreatedBefore *time.Time
}

// PropertyReader defines read operations for property data
type PropertyReader interface {
	// FindPropertyByID retrieves a specific property by its unique identifier.
	FindPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error)

	// ListProperties retrieves a paginated, filtered list of active properties.
	ListProperties(ctx context.Context, filter PropertyFilter, limit int, offset int) ([]domain.Property, error)
}

// PropertyWriter defines write operations for property data
type PropertyWriter interface {
	// SaveProperty persists a new property.
	SaveProperty(ctx context.Context, property domain.Property) error

	// UpdateProperty updates an existing property's details.
	UpdateProperty(ctx context.Context, property domain.Property) error

	// DeactivateProperty marks a property as inactive.
	DeactivateProperty(ctx context.Context, propertyID string, userID string, now time.Time) error
}

// PropertyRepositoryFacade combines all property-related repository interfaces
type PropertyRepositoryFacade interface {
	PropertyReader
	PropertyWriter
}
