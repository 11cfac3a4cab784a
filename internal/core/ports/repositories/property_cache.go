package repositories

import (
	"context"

	"github.com/homevista/homevista_backend/internal/core/domain"
)

// PropertyCache is a read-through cache over single-property lookups.
// A miss returns (nil, nil); cache failures are returned as errors and
// callers are expected to fall back to the repository.
type PropertyCache interface {
	// GetProperty retrieves a cached property, or nil on a miss.
	GetProperty(ctx context.Context, propertyID string) (*domain.Property, error)

	// SetProperty stores a property under the configured TTL.
	SetProperty(ctx context.Context, property domain.Property) error

	// InvalidateProperty drops a property from the cache.
	InvalidateProperty(ctx context.Context, propertyID string) error
}
