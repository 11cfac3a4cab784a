package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/homevista/homevista_backend/internal/apperrors"
	"github.com/homevista/homevista_backend/internal/core/domain"
	portsrepo "github.com/homevista/homevista_backend/internal/core/ports/repositories"
	"github.com/homevista/homevista_backend/internal/models"
)

type PgxPropertyRepository struct {
	pool *pgxpool.Pool
}

// newPgxPropertyRepository creates a new repository for property data.
func newPgxPropertyRepository(pool *pgxpool.Pool) portsrepo.PropertyRepositoryFacade {
	return &PgxPropertyRepository{pool: pool}
}

// Ensure PgxPropertyRepository implements portsrepo.PropertyRepositoryFacade
var _ portsrepo.PropertyRepositoryFacade = (*PgxPropertyRepository)(nil)

func toModelProperty(d domain.Property) models.Property {
	return models.Property{
		PropertyID:   d.PropertyID,
		Title:        d.Title,
		Description:  d.Description,
		PropertyType: models.PropertyType(d.PropertyType),
		ListingType:  models.ListingType(d.ListingType),
		Price:        d.Price,
		City:         d.City,
		State:        d.State,
		Address:      d.Address,
		Bedrooms:     d.Bedrooms,
		Bathrooms:    d.Bathrooms,
		AreaSqft:     d.AreaSqft,
		Amenities:    d.Amenities,
		ImageURL:     d.ImageURL,
		IsActive:     d.IsActive,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainProperty(m models.Property) domain.Property {
	return domain.Property{
		PropertyID:   m.PropertyID,
		Title:        m.Title,
		Description:  m.Description,
		PropertyType: domain.PropertyType(m.PropertyType),
		ListingType:  domain.ListingType(m.ListingType),
		Price:        m.Price,
		City:         m.City,
		State:        m.State,
		Address:      m.Address,
		Bedrooms:     m.Bedrooms,
		Bathrooms:    m.Bathrooms,
		AreaSqft:     m.AreaSqft,
		Amenities:    m.Amenities,
		ImageURL:     m.ImageURL,
		IsActive:     m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const propertyColumns = `property_id, title, description, property_type, listing_type, price, city, state, address, bedrooms, bathrooms, area_sqft, amenities, image_url, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanProperty(row pgx.Row) (*models.Property, error) {
	var m models.Property
	err := row.Scan(
		&m.PropertyID,
		&m.Title,
		&m.Description,
		&m.PropertyType,
		&m.ListingType,
		&m.Price,
		&m.City,
		&m.State,
		&m.Address,
		&m.Bedrooms,
		&m.Bathrooms,
		&m.AreaSqft,
		&m.Amenities,
		&m.ImageURL,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxPropertyRepository) SaveProperty(ctx context.Context, property domain.Property) error {
	m := toModelProperty(property)

	query := `
		INSERT INTO properties (` + propertyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err := r.pool.Exec(ctx, query,
		m.PropertyID,
		m.Title,
		m.Description,
		m.PropertyType,
		m.ListingType,
		m.Price,
		m.City,
		m.State,
		m.Address,
		m.Bedrooms,
		m.Bathrooms,
		m.AreaSqft,
		m.Amenities,
		m.ImageURL,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: property %s already exists", apperrors.ErrDuplicate, m.PropertyID)
		}
		return fmt.Errorf("failed to save property %s: %w", m.PropertyID, err)
	}
	return nil
}

func (r *PgxPropertyRepository) FindPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE property_id = $1;`

	m, err := scanProperty(r.pool.QueryRow(ctx, query, propertyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find property by ID %s: %w", propertyID, err)
	}

	property := toDomainProperty(*m)
	return &property, nil
}

// ListProperties returns active listings matching the filter, newest first.
// Filter clauses are appended with positional args so nil fields cost nothing.
func (r *PgxPropertyRepository) ListProperties(ctx context.Context, filter portsrepo.PropertyFilter, limit int, offset int) ([]domain.Property, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + propertyColumns + ` FROM properties WHERE is_active = TRUE`
	args := []any{}
	argPos := 1

	if filter.City != nil {
		query += fmt.Sprintf(" AND city = $%d", argPos)
		args = append(args, *filter.City)
		argPos++
	}
	if filter.PropertyType != nil {
		query += fmt.Sprintf(" AND property_type = $%d", argPos)
		args = append(args, string(*filter.PropertyType))
		argPos++
	}
	if filter.ListingType != nil {
		query += fmt.Sprintf(" AND listing_type = $%d", argPos)
		args = append(args, string(*filter.ListingType))
		argPos++
	}
	if filter.MinPrice != nil {
		query += fmt.Sprintf(" AND price >= $%d", argPos)
		args = append(args, *filter.MinPrice)
		argPos++
	}
	if filter.MaxPrice != nil {
		query += fmt.Sprintf(" AND price <= $%d", argPos)
		args = append(args, *filter.MaxPrice)
		argPos++
	}
	if filter.CreatedBefore != nil {
		query += fmt.Sprintf(" AND created_at < $%d", argPos)
		args = append(args, *filter.CreatedBefore)
		argPos++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d;", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	properties := []domain.Property{}
	for rows.Next() {
		m, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property row: %w", err)
		}
		properties = append(properties, toDomainProperty(*m))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating property rows: %w", rows.Err())
	}
	return properties, nil
}

func (r *PgxPropertyRepository) UpdateProperty(ctx context.Context, property domain.Property) error {
	query := `
		UPDATE properties
		SET title = $1, description = $2, price = $3, amenities = $4, image_url = $5, is_active = $6, last_updated_at = $7, last_updated_by = $8
		WHERE property_id = $9;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		property.Title,
		property.Description,
		property.Price,
		property.Amenities,
		property.ImageURL,
		property.IsActive,
		property.LastUpdatedAt,
		property.LastUpdatedBy,
		property.PropertyID,
	)
	if err != nil {
		return fmt.Errorf("failed to update property %s: %w", property.PropertyID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPropertyRepository) DeactivateProperty(ctx context.Context, propertyID string, userID string, now time.Time) error {
	query := `
		UPDATE properties
		SET is_active = FALSE, last_updated_at = $1, last_updated_by = $2
		WHERE property_id = $3 AND is_active = TRUE;
	`
	cmdTag, err := r.pool.Exec(ctx, query, now, userID, propertyID)
	if err != nil {
		return fmt.Errorf("failed to deactivate property %s: %w", propertyID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
