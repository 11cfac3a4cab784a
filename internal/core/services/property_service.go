package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/homevista/homevista_backend/internal/apperrors"
	"github.com/homevista/homevista_backend/internal/core/domain"
	portsrepo "github.com/homevista/homevista_backend/internal/core/ports/repositories"
	portssvc "github.com/homevista/homevista_backend/internal/core/ports/services"
	"github.com/homevista/homevista_backend/internal/dto"
	"github.com/homevista/homevista_backend/internal/utils/pagination"
)

// propertyService implements the PropertySvcFacade interface
type propertyService struct {
	BaseService
	propertyRepo portsrepo.PropertyRepositoryFacade
	cache        portsrepo.PropertyCache
}

// PropertyServiceOption is a functional option for configuring the property service
type PropertyServiceOption func(*propertyService)

// WithPropertyCache adds a read-through cache for single-property lookups
func WithPropertyCache(cache portsrepo.PropertyCache) PropertyServiceOption {
	return func(s *propertyService) {
		s.cache = cache
	}
}

// NewPropertyService creates a new property service with the provided options
func NewPropertyService(repo portsrepo.PropertyRepositoryFacade, options ...PropertyServiceOption) portssvc.PropertySvcFacade {
	svc := &propertyService{
		propertyRepo: repo,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure propertyService implements the PropertySvcFacade interface
var _ portssvc.PropertySvcFacade = (*propertyService)(nil)

func (s *propertyService) CreateProperty(ctx context.Context, req dto.CreatePropertyRequest, userID string) (*domain.Property, error) {
	if req.Price.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: price must be positive", apperrors.ErrValidation)
	}

	now := time.Now()

	property := domain.Property{
		PropertyID:   uuid.NewString(),
		Title:        req.Title,
		Description:  req.Description,
		PropertyType: domain.PropertyType(req.PropertyType),
		ListingType:  domain.ListingType(req.ListingType),
		Price:        req.Price,
		City:         req.City,
		State:        req.State,
		Address:      req.Address,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		AreaSqft:     req.AreaSqft,
		Amenities:    req.Amenities,
		ImageURL:     req.ImageURL,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.propertyRepo.SaveProperty(ctx, property); err != nil {
		s.LogError(ctx, err, "Failed to save property",
			slog.String("property_id", property.PropertyID))
		return nil, err
	}

	s.LogInfo(ctx, "Property created",
		slog.String("property_id", property.PropertyID),
		slog.String("city", property.City))
	return &property, nil
}

func (s *propertyService) GetPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error) {
	if s.cache != nil {
		cached, err := s.cache.GetProperty(ctx, propertyID)
		if err != nil {
			// Cache trouble is not fatal, the repository is authoritative
			s.LogDebug(ctx, "Property cache read failed",
				slog.String("property_id", propertyID),
				slog.String("error", err.Error()))
		} else if cached != nil {
			return cached, nil
		}
	}

	property, err := s.propertyRepo.FindPropertyByID(ctx, propertyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find property by ID",
				slog.String("property_id", propertyID))
		}
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetProperty(ctx, *property); err != nil {
			s.LogDebug(ctx, "Property cache write failed",
				slog.String("property_id", propertyID),
				slog.String("error", err.Error()))
		}
	}

	return property, nil
}

func (s *propertyService) ListProperties(ctx context.Context, params dto.ListPropertiesParams) (*dto.ListPropertiesResponse, error) {
	filter, err := buildPropertyFilter(params)
	if err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := params.Offset
	if filter.CreatedBefore != nil {
		// Keyset cursor supersedes offset paging.
		offset = 0
	}

	// Fetch one extra row to decide whether another page exists.
	properties, err := s.propertyRepo.ListProperties(ctx, filter, limit+1, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list properties",
			slog.Int("limit", limit))
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	resp := &dto.ListPropertiesResponse{}
	if len(properties) > limit {
		properties = properties[:limit]
		token := pagination.EncodeDateBasedToken(properties[len(properties)-1].CreatedAt)
		resp.NextToken = &token
	}
	resp.Properties = dto.ToListPropertyResponse(properties)

	return resp, nil
}

func (s *propertyService) UpdateProperty(ctx context.Context, propertyID string, req dto.UpdatePropertyRequest, userID string) (*domain.Property, error) {
	property, err := s.propertyRepo.FindPropertyByID(ctx, propertyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find property for update",
				slog.String("property_id", propertyID))
		}
		return nil, err
	}

	updated := false
	if req.Title != nil {
		property.Title = *req.Title
		updated = true
	}
	if req.Description != nil {
		property.Description = *req.Description
		updated = true
	}
	if req.Price != nil {
		if req.Price.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: price must be positive", apperrors.ErrValidation)
		}
		property.Price = *req.Price
		updated = true
	}
	if req.Amenities != nil {
		property.Amenities = *req.Amenities
		updated = true
	}
	if req.ImageURL != nil {
		property.ImageURL = *req.ImageURL
		updated = true
	}
	if req.IsActive != nil {
		property.IsActive = *req.IsActive
		updated = true
	}
	if !updated {
		s.LogDebug(ctx, "No fields provided for property update",
			slog.String("property_id", propertyID))
		return property, nil
	}

	now := time.Now()
	property.LastUpdatedAt = now
	property.LastUpdatedBy = userID

	if err := s.propertyRepo.UpdateProperty(ctx, *property); err != nil {
		s.LogError(ctx, err, "Failed to update property",
			slog.String("property_id", propertyID))
		return nil, err
	}

	s.invalidateCache(ctx, propertyID)

	s.LogInfo(ctx, "Property updated",
		slog.String("property_id", propertyID))
	return property, nil
}

func (s *propertyService) DeactivateProperty(ctx context.Context, propertyID string, userID string) error {
	if _, err := s.propertyRepo.FindPropertyByID(ctx, propertyID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find property for deactivation",
				slog.String("property_id", propertyID))
		}
		return err
	}

	now := time.Now()
	if err := s.propertyRepo.DeactivateProperty(ctx, propertyID, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to deactivate property",
			slog.String("property_id", propertyID))
		return err
	}

	s.invalidateCache(ctx, propertyID)

	s.LogInfo(ctx, "Property deactivated",
		slog.String("property_id", propertyID))
	return nil
}

func (s *propertyService) invalidateCache(ctx context.Context, propertyID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateProperty(ctx, propertyID); err != nil {
		s.LogDebug(ctx, "Property cache invalidation failed",
			slog.String("property_id", propertyID),
			slog.String("error", err.Error()))
	}
}

// buildPropertyFilter converts the list query params into a repository filter,
// parsing the price bounds.
func buildPropertyFilter(params dto.ListPropertiesParams) (portsrepo.PropertyFilter, error) {
	filter := portsrepo.PropertyFilter{
		City: params.City,
	}

	if params.PropertyType != nil {
		pt := domain.PropertyType(*params.PropertyType)
		filter.PropertyType = &pt
	}
	if params.ListingType != nil {
		lt := domain.ListingType(*params.ListingType)
		filter.ListingType = &lt
	}
	if params.MinPrice != nil {
		min, err := decimal.NewFromString(*params.MinPrice)
		if err != nil {
			return portsrepo.PropertyFilter{}, fmt.Errorf("%w: invalid minPrice: %v", apperrors.ErrValidation, err)
		}
		filter.MinPrice = &min
	}
	if params.MaxPrice != nil {
		max, err := decimal.NewFromString(*params.MaxPrice)
		if err != nil {
			return portsrepo.PropertyFilter{}, fmt.Errorf("%w: invalid maxPrice: %v", apperrors.ErrValidation, err)
		}
		filter.MaxPrice = &max
	}
	if params.NextToken != nil && *params.NextToken != "" {
		cursor, err := pagination.DecodeDateBasedToken(*params.NextToken)
		if err != nil {
			return portsrepo.PropertyFilter{}, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, err)
		}
		filter.CreatedBefore = &cursor
	}

	return filter, nil
}
