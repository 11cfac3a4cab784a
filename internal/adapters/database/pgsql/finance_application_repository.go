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

type PgxFinanceApplicationRepository struct {
	pool *pgxpool.Pool
}

// newPgxFinanceApplicationRepository creates a new repository for finance application data.
func newPgxFinanceApplicationRepository(pool *pgxpool.Pool) portsrepo.FinanceApplicationRepositoryFacade {
	return &PgxFinanceApplicationRepository{pool: pool}
}

// Ensure PgxFinanceApplicationRepository implements portsrepo.FinanceApplicationRepositoryFacade
var _ portsrepo.FinanceApplicationRepositoryFacade = (*PgxFinanceApplicationRepository)(nil)

func toModelFinanceApplication(d domain.FinanceApplication) models.FinanceApplication {
	return models.FinanceApplication{
		ApplicationID:    d.ApplicationID,
		PropertyID:       d.PropertyID,
		UserName:         d.UserName,
		UserEmail:        d.UserEmail,
		UserPhone:        d.UserPhone,
		SelectedBank:     d.SelectedBank,
		LoanAmount:       d.LoanAmount,
		DownPayment:      d.DownPayment,
		InterestRate:     d.InterestRate,
		LoanTerm:         d.LoanTerm,
		LoanType:         string(d.LoanType),
		PaymentFrequency: string(d.PaymentFrequency),
		PropertyTaxes:    d.PropertyTaxes,
		HomeInsurance:    d.HomeInsurance,
		ValuationFees:    d.ValuationFees,
		LegalFees:        d.LegalFees,
		MonthlyPayment:   d.MonthlyPayment,
		TotalInterest:    d.TotalInterest,
		TotalCost:        d.TotalCost,
		LTV:              d.LTV,
		Status:           string(d.Status),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainFinanceApplication(m models.FinanceApplication) domain.FinanceApplication {
	return domain.FinanceApplication{
		ApplicationID:    m.ApplicationID,
		PropertyID:       m.PropertyID,
		UserName:         m.UserName,
		UserEmail:        m.UserEmail,
		UserPhone:        m.UserPhone,
		SelectedBank:     m.SelectedBank,
		LoanAmount:       m.LoanAmount,
		DownPayment:      m.DownPayment,
		InterestRate:     m.InterestRate,
		LoanTerm:         m.LoanTerm,
		LoanType:         domain.LoanType(m.LoanType),
		PaymentFrequency: domain.PaymentFrequency(m.PaymentFrequency),
		PropertyTaxes:    m.PropertyTaxes,
		HomeInsurance:    m.HomeInsurance,
		ValuationFees:    m.ValuationFees,
		LegalFees:        m.LegalFees,
		MonthlyPayment:   m.MonthlyPayment,
		TotalInterest:    m.TotalInterest,
		TotalCost:        m.TotalCost,
		LTV:              m.LTV,
		Status:           domain.ApplicationStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const financeApplicationColumns = `application_id, property_id, user_name, user_email, user_phone, selected_bank, loan_amount, down_payment, interest_rate, loan_term, loan_type, payment_frequency, property_taxes, home_insurance, valuation_fees, legal_fees, monthly_payment, total_interest, total_cost, ltv, status, created_at, created_by, last_updated_at, last_updated_by`

func scanFinanceApplication(row pgx.Row) (*models.FinanceApplication, error) {
	var m models.FinanceApplication
	err := row.Scan(
		&m.ApplicationID,
		&m.PropertyID,
		&m.UserName,
		&m.UserEmail,
		&m.UserPhone,
		&m.SelectedBank,
		&m.LoanAmount,
		&m.DownPayment,
		&m.InterestRate,
		&m.LoanTerm,
		&m.LoanType,
		&m.PaymentFrequency,
		&m.PropertyTaxes,
		&m.HomeInsurance,
		&m.ValuationFees,
		&m.LegalFees,
		&m.MonthlyPayment,
		&m.TotalInterest,
		&m.TotalCost,
		&m.LTV,
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

func (r *PgxFinanceApplicationRepository) SaveApplication(ctx context.Context, app domain.FinanceApplication) error {
	m := toModelFinanceApplication(app)

	query := `
		INSERT INTO finance_applications (` + financeApplicationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25);
	`
	_, err := r.pool.Exec(ctx, query,
		m.ApplicationID,
		m.PropertyID,
		m.UserName,
		m.UserEmail,
		m.UserPhone,
		m.SelectedBank,
		m.LoanAmount,
		m.DownPayment,
		m.InterestRate,
		m.LoanTerm,
		m.LoanType,
		m.PaymentFrequency,
		m.PropertyTaxes,
		m.HomeInsurance,
		m.ValuationFees,
		m.LegalFees,
		m.MonthlyPayment,
		m.TotalInterest,
		m.TotalCost,
		m.LTV,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: application %s already exists", apperrors.ErrDuplicate, m.ApplicationID)
		}
		return fmt.Errorf("failed to save finance application %s: %w", m.ApplicationID, err)
	}
	return nil
}

func (r *PgxFinanceApplicationRepository) FindApplicationByID(ctx context.Context, applicationID string) (*domain.FinanceApplication, error) {
	query := `SELECT ` + financeApplicationColumns + ` FROM finance_applications WHERE application_id = $1;`

	m, err := scanFinanceApplication(r.pool.QueryRow(ctx, query, applicationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find finance application by ID %s: %w", applicationID, err)
	}

	app := toDomainFinanceApplication(*m)
	return &app, nil
}

func (r *PgxFinanceApplicationRepository) ListApplications(ctx context.Context, status *domain.ApplicationStatus, limit int, offset int) ([]domain.FinanceApplication, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + financeApplicationColumns + ` FROM finance_applications`
	args := []any{}
	argPos := 1

	if status != nil {
		query += fmt.Sprintf(" WHERE status = $%d", argPos)
		args = append(args, string(*status))
		argPos++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d;", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query finance applications: %w", err)
	}
	defer rows.Close()

	apps := []domain.FinanceApplication{}
	for rows.Next() {
		m, err := scanFinanceApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan finance application row: %w", err)
		}
		apps = append(apps, toDomainFinanceApplication(*m))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating finance application rows: %w", rows.Err())
	}
	return apps, nil
}

// UpdateApplicationStatus applies a compare-and-set on the status column. The
// WHERE clause includes the expected current status; a decision that lost the
// race affects zero rows and surfaces as ErrNotFound, which callers resolve
// by re-reading the row.
func (r *PgxFinanceApplicationRepository) UpdateApplicationStatus(ctx context.Context, applicationID string, from, to domain.ApplicationStatus, userID string, now time.Time) error {
	query := `
		UPDATE finance_applications
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE application_id = $4 AND status = $5;
	`
	cmdTag, err := r.pool.Exec(ctx, query, string(to), now, userID, applicationID, string(from))
	if err != nil {
		return fmt.Errorf("failed to update finance application %s status: %w", applicationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxFinanceApplicationRepository) DeleteApplication(ctx context.Context, applicationID string) error {
	query := `DELETE FROM finance_applications WHERE application_id = $1;`

	cmdTag, err := r.pool.Exec(ctx, query, applicationID)
	if err != nil {
		return fmt.Errorf("failed to delete finance application %s: %w", applicationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
