package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/homevista/homevista_backend/internal/apperrors"
	"github.com/homevista/homevista_backend/internal/core/domain"
	portsrepo "github.com/homevista/homevista_backend/internal/core/ports/repositories"
	"github.com/homevista/homevista_backend/internal/models"
)

type PgxMaintenanceRepository struct {
	pool *pgxpool.Pool
}

// newPgxMaintenanceRepository creates a new repository for maintenance request data.
func newPgxMaintenanceRepository(pool *pgxpool.Pool) portsrepo.MaintenanceRepositoryFacade {
	return &PgxMaintenanceRepository{pool: pool}
}

// Ensure PgxMaintenanceRepository implements portsrepo.MaintenanceRepositoryFacade
var _ portsrepo.MaintenanceRepositoryFacade = (*PgxMaintenanceRepository)(nil)

func toDomainMaintenanceRequest(m models.MaintenanceRequest) domain.MaintenanceRequest {
	return domain.MaintenanceRequest{
		RequestID:   m.RequestID,
		PropertyID:  m.PropertyID,
		TenantName:  m.TenantName,
		TenantEmail: m.TenantEmail,
		TenantPhone: m.TenantPhone,
		Category:    domain.MaintenanceCategory(m.Category),
		Description: m.Description,
		Status:      domain.MaintenanceStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const maintenanceColumns = `request_id, property_id, tenant_name, tenant_email, tenant_phone, category, description, status, created_at, created_by, last_updated_at, last_updated_by`

func scanMaintenanceRequest(row pgx.Row) (*models.MaintenanceRequest, error) {
	var m models.MaintenanceRequest
	err := row.Scan(
		&m.RequestID,
		&m.PropertyID,
		&m.TenantName,
		&m.TenantEmail,
		&m.TenantPhone,
		&m.Category,
		&m.Description,
		&m.Status,
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

func (r *PgxMaintenanceRepository) SaveRequest(ctx context.Context, request domain.MaintenanceRequest) error {
	query := `
		INSERT INTO maintenance_requests (` + maintenanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.pool.Exec(ctx, query,
		request.RequestID,
		request.PropertyID,
		request.TenantName,
		request.TenantEmail,
		request.TenantPhone,
		string(request.Category),
		request.Description,
		string(request.Status),
		request.CreatedAt,
		request.CreatedBy,
		request.LastUpdatedAt,
		request.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save maintenance request %s: %w", request.RequestID, err)
	}
	return nil
}

func (r *PgxMaintenanceRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.MaintenanceRequest, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_requests WHERE request_id = $1;`

	m, err := scanMaintenanceRequest(r.pool.QueryRow(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find maintenance request by ID %s: %w", requestID, err)
	}

	request := toDomainMaintenanceRequest(*m)
	return &request, nil
}

func (r *PgxMaintenanceRepository) ListRequests(ctx context.Context, limit int, offset int) ([]domain.MaintenanceRequest, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + maintenanceColumns + `
		FROM maintenance_requests
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query maintenance requests: %w", err)
	}
	defer rows.Close()

	requests := []domain.MaintenanceRequest{}
	for rows.Next() {
		m, err := scanMaintenanceRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan maintenance request row: %w", err)
		}
		requests = append(requests, toDomainMaintenanceRequest(*m))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating maintenance request rows: %w", rows.Err())
	}
	return requests, nil
}

func (r *PgxMaintenanceRepository) UpdateRequestStatus(ctx context.Context, requestID string, status domain.MaintenanceStatus, userID string, now time.Time) error {
	query := `
		UPDATE maintenance_requests
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE request_id = $4;
	`
	cmdTag, err := r.pool.Exec(ctx, query, string(status), now, userID, requestID)
	if err != nil {
		return fmt.Errorf("failed to update maintenance request %s status: %w", requestID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxMaintenanceRepository) DeleteRequest(ctx context.Context, requestID string) error {
	query := `DELETE FROM maintenance_requests WHERE request_id = $1;`

	cmdTag, err := r.pool.Exec(ctx, query, requestID)
	if err != nil {
		return fmt.Errorf("failed to delete maintenance request %s: %w", requestID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
