package dto

import (
	"time"

	"github.com/homevista/homevista_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePropertyRequest defines the data needed to create a new property listing.
type CreatePropertyRequest struct {
	Title        string          `json:"title" binding:"required"`
	Description  string          `json:"description"`
	PropertyType string          `json:"propertyType" binding:"required,oneof=HOUSE APARTMENT COMMERCIAL LAND"`
	ListingType  string          `json:"listingType" binding:"required,oneof=SALE RENT"`
	Price        decimal.Decimal `json:"price" binding:"required"`
	City         string          `json:"city" binding:"required"`
	State        string          `json:"state"`
	Address      string          `json:"address"`
	Bedrooms     int             `json:"bedrooms" binding:"gte=0"`
	Bathrooms    int             `json:"bathrooms" binding:"gte=0"`
	AreaSqft     int             `json:"areaSqft" binding:"gte=0"`
	Amenities    string          `json:"amenities"`
	ImageURL     string          `json:"imageURL"`
}

// UpdatePropertyRequest defines the data allowed for updating a property.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdatePropertyRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Amenities   *string          `json:"amenities"`
	ImageURL    *string          `json:"imageURL"`
	IsActive    *bool            `json:"isActive"`
}

// PropertyResponse defines the data returned for a property.
type PropertyResponse struct {
	PropertyID    string          `json:"propertyID"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	PropertyType  string          `json:"propertyType"`
	ListingType   string          `json:"listingType"`
	Price         decimal.Decimal `json:"price"`
	City          string          `json:"city"`
	State         string          `json:"state"`
	Address       string          `json:"address"`
	Bedrooms      int             `json:"bedrooms"`
	Bathrooms     int             `json:"bathrooms"`
	AreaSqft      int             `json:"areaSqft"`
	Amenities     string          `json:"amenities"`
	ImageURL      string          `json:"imageURL"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToPropertyResponse converts a domain.Property to PropertyResponse DTO
func ToPropertyResponse(p *domain.Property) PropertyResponse {
	return PropertyResponse{
		PropertyID:    p.PropertyID,
		Title:         p.Title,
		Description:   p.Description,
		PropertyType:  string(p.PropertyType),
		ListingType:   string(p.ListingType),
		Price:         p.Price,
		City:          p.City,
		State:         p.State,
		Address:       p.Address,
		Bedrooms:      p.Bedrooms,
		Bathrooms:     p.Bathrooms,
		AreaSqft:      p.AreaSqft,
		Amenities:     p.Amenities,
		ImageURL:      p.ImageURL,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

// ToListPropertyResponse converts a slice of domain.Property to response DTOs
func ToListPropertyResponse(properties []domain.Property) []PropertyResponse {
	res := make([]PropertyResponse, len(properties))
	for i := range properties {
		res[i] = ToPropertyResponse(&properties[i])
	}
	return res
}

// ListPropertiesParams defines query parameters for listing properties.
// NextToken is an opaque cursor from a previous page and takes precedence
// over Offset when both are supplied.
type ListPropertiesParams struct {
	Limit        int     `form:"limit,default=20"`
	Offset       int     `form:"offset,default=0"`
	City         *string `form:"city"`
	PropertyType *string `form:"propertyType" binding:"omitempty,oneof=HOUSE APARTMENT COMMERCIAL LAND"`
	ListingType  *string `form:"listingType" binding:"omitempty,oneof=SALE RENT"`
	MinPrice     *string `form:"minPrice"`
	MaxPrice     *string `form:"maxPrice"`
	NextToken    *string `form:"nextToken"`
}

// ListPropertiesResponse wraps the list of properties. NextToken is set when
// another page is available.
type ListPropertiesResponse struct {
	Properties []PropertyResponse `json:"properties"`
	NextToken  *string            `json:"nextToken,omitempty"`
}
