package services

import (
	"context"

	"github.com/homevista/homevista_backend/internal/core/domain"
	"github.com/homevista/homevista_backend/internal/dto"
)

// PropertyReaderSvc defines read operations on properties
type PropertyReaderSvc interface {
	// GetPropertyByID retrieves a property by ID.
	GetPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error)

	// ListProperties retrieves a paginated, filtered list of properties with
	// an opaque cursor for the next page.
	ListProperties(ctx context.Context, params dto.ListPropertiesParams) (*dto.ListPropertiesResponse, error)
}

// PropertyWriterSvc defines write operations on properties
type PropertyWriterSvc interface {
	// CreateProperty creates a new property listing.
	CreateProperty(ctx context.Context, req dto.CreatePropertyRequest, userID string) (*domain.Property, error)

	// UpdateProperty applies partial updates to a property.
	UpdateProperty(ctx context.Context, propertyID string, req dto.UpdatePropertyRequest, userID string) (*domain.Property, error)

	// DeactivateProperty soft deletes a property listing.
	DeactivateProperty(ctx context.Context, propertyID string, userID string) error
}

// PropertySvcFacade combines all property service interfaces
type PropertySvcFacade interface {
	PropertyReaderSvc
	PropertyWriterSvc
}
