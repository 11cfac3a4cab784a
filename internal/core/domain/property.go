package domain

import (
	"github.com/shopspring/decimal"
)

// PropertyType classifies the physical kind of a property.
type PropertyType string

const (
	House      PropertyType = "HOUSE"
	Apartment  PropertyType = "APARTMENT"
	Commercial PropertyType = "COMMERCIAL"
	Land       PropertyType = "LAND"
)

// ListingType indicates whether a property is offered for sale or for rent.
type ListingType string

const (
	ForSale ListingType = "SALE"
	ForRent ListingType = "RENT"
)

// Property represents a listed property within the core domain.
// This is the primary representation used by services.
type Property struct {
	PropertyID   string          `json:"propertyID"` // Primary Key (e.g., UUID)
	Title        string          `json:"title"`
	Description  string          `json:"description"` // Nullable user description
	PropertyType PropertyType    `json:"propertyType"`
	ListingType  ListingType     `json:"listingType"`
	Price        decimal.Decimal `json:"price"`
	City         string          `json:"city"`
	State        string          `json:"state"`
	Address      string          `json:"address"`
	Bedrooms     int             `json:"bedrooms"`
	Bathrooms    int             `json:"bathrooms"`
	AreaSqft     int             `json:"areaSqft"`
	Amenities    string          `json:"amenities"`
	ImageURL     string          `json:"imageURL"`
	IsActive     bool            `json:"isActive"` // Soft delete flag
	AuditFields
}
