package models

import (
	"github.com/shopspring/decimal"
)

// PropertyType mirrors domain.PropertyType for DB storage.
type PropertyType string

// ListingType mirrors domain.ListingType for DB storage.
type ListingType string

// Property is the database representation of a property listing.
type Property struct {
	PropertyID   string          `db:"property_id"`
	Title        string          `db:"title"`
	Description  string          `db:"description"`
	PropertyType PropertyType    `db:"property_type"`
	ListingType  ListingType     `db:"listing_type"`
	Price        decimal.Decimal `db:"price"`
	City         string          `db:"city"`
	State        string          `db:"state"`
	Address      string          `db:"address"`
	Bedrooms     int             `db:"bedrooms"`
	Bathrooms    int             `db:"bathrooms"`
	AreaSqft     int             `db:"area_sqft"`
	Amenities    string          `db:"amenities"`
	ImageURL     string          `db:"image_url"`
	IsActive     bool            `db:"is_active"`
	AuditFields
}
