package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/homevista/homevista_backend/internal/apperrors"
	"github.com/homevista/homevista_backend/internal/core/domain"
	portsrepo "github.com/homevista/homevista_backend/internal/core/ports/repositories"
	"github.com/homevista/homevista_backend/internal/models"
)

type PgxCartRepository struct {
	BaseRepository
}

// newPgxCartRepository creates a new repository for cart and order data.
func newPgxCartRepository(pool *pgxpool.Pool) portsrepo.CartRepositoryFacade {
	return &PgxCartRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxCartRepository implements portsrepo.CartRepositoryFacade
var _ portsrepo.CartRepositoryFacade = (*PgxCartRepository)(nil)

func toDomainCartItem(m models.CartItem) domain.CartItem {
	return domain.CartItem{
		CartItemID: m.CartItemID,
		UserID:     m.UserID,
		PropertyID: m.PropertyID,
		Quantity:   m.Quantity,
		UnitPrice:  m.UnitPrice,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const cartItemColumns = `cart_item_id, user_id, property_id, quantity, unit_price, created_at, created_by, last_updated_at, last_updated_by`

func scanCartItem(row pgx.Row) (*models.CartItem, error) {
	var m models.CartItem
	err := row.Scan(
		&m.CartItemID,
		&m.UserID,
		&m.PropertyID,
		&m.Quantity,
		&m.UnitPrice,
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

func (r *PgxCartRepository) SaveCartItem(ctx context.Context, item domain.CartItem) error {
	query := `
		INSERT INTO cart_items (` + cartItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		item.CartItemID,
		item.UserID,
		item.PropertyID,
		item.Quantity,
		item.UnitPrice,
		item.CreatedAt,
		item.CreatedBy,
		item.LastUpdatedAt,
		item.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: property already in cart", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save cart item %s: %w", item.CartItemID, err)
	}
	return nil
}

func (r *PgxCartRepository) FindCartItems(ctx context.Context, userID string) ([]domain.CartItem, error) {
	query := `
		SELECT ` + cartItemColumns + `
		FROM cart_items
		WHERE user_id = $1
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cart items: %w", err)
	}
	defer rows.Close()

	items := []domain.CartItem{}
	for rows.Next() {
		m, err := scanCartItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart item row: %w", err)
		}
		items = append(items, toDomainCartItem(*m))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating cart item rows: %w", rows.Err())
	}
	return items, nil
}

func (r *PgxCartRepository) FindCartItemByProperty(ctx context.Context, userID string, propertyID string) (*domain.CartItem, error) {
	query := `SELECT ` + cartItemColumns + ` FROM cart_items WHERE user_id = $1 AND property_id = $2;`

	m, err := scanCartItem(r.Pool.QueryRow(ctx, query, userID, propertyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cart item by property: %w", err)
	}

	item := toDomainCartItem(*m)
	return &item, nil
}

func (r *PgxCartRepository) UpdateCartItem(ctx context.Context, item domain.CartItem) error {
	query := `
		UPDATE cart_items
		SET quantity = $1, last_updated_at = $2, last_updated_by = $3
		WHERE cart_item_id = $4 AND user_id = $5;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		item.Quantity,
		item.LastUpdatedAt,
		item.LastUpdatedBy,
		item.CartItemID,
		item.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update cart item %s: %w", item.CartItemID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCartRepository) DeleteCartItem(ctx context.Context, userID string, cartItemID string) error {
	query := `DELETE FROM cart_items WHERE cart_item_id = $1 AND user_id = $2;`

	cmdTag, err := r.Pool.Exec(ctx, query, cartItemID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete cart item %s: %w", cartItemID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCartRepository) ClearCart(ctx context.Context, userID string) error {
	query := `DELETE FROM cart_items WHERE user_id = $1;`

	if _, err := r.Pool.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// SaveOrder persists the order header and its lines and empties the source
// cart in one transaction.
func (r *PgxCartRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	orderQuery := `
		INSERT INTO orders (order_id, user_id, total, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, orderQuery,
		order.OrderID,
		order.UserID,
		order.Total,
		string(order.Status),
		order.CreatedAt,
		order.CreatedBy,
		order.LastUpdatedAt,
		order.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save order %s: %w", order.OrderID, err)
	}

	lineQuery := `
		INSERT INTO order_lines (order_line_id, order_id, property_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5);
	`
	batch := &pgx.Batch{}
	for _, line := range order.Lines {
		batch.Queue(lineQuery, line.OrderLineID, line.OrderID, line.PropertyID, line.Quantity, line.UnitPrice)
	}
	batch.Queue(`DELETE FROM cart_items WHERE user_id = $1;`, order.UserID)

	br := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to execute order batch statement %d: %w", i, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close order batch: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return err
	}
	return nil
}

func (r *PgxCartRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	orderQuery := `
		SELECT order_id, user_id, total, status, created_at, created_by, last_updated_at, last_updated_by
		FROM orders
		WHERE order_id = $1;
	`
	var m models.Order
	err := r.Pool.QueryRow(ctx, orderQuery, orderID).Scan(
		&m.OrderID,
		&m.UserID,
		&m.Total,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find order by ID %s: %w", orderID, err)
	}

	lines, err := r.findOrderLines(ctx, orderID)
	if err != nil {
		return nil, err
	}

	order := domain.Order{
		OrderID: m.OrderID,
		UserID:  m.UserID,
		Lines:   lines,
		Total:   m.Total,
		Status:  domain.OrderStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	return &order, nil
}

func (r *PgxCartRepository) findOrderLines(ctx context.Context, orderID string) ([]domain.OrderLine, error) {
	query := `
		SELECT order_line_id, order_id, property_id, quantity, unit_price
		FROM order_lines
		WHERE order_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query order lines: %w", err)
	}
	defer rows.Close()

	lines := []domain.OrderLine{}
	for rows.Next() {
		var m models.OrderLine
		if err := rows.Scan(&m.OrderLineID, &m.OrderID, &m.PropertyID, &m.Quantity, &m.UnitPrice); err != nil {
			return nil, fmt.Errorf("failed to scan order line row: %w", err)
		}
		lines = append(lines, domain.OrderLine{
			OrderLineID: m.OrderLineID,
			OrderID:     m.OrderID,
			PropertyID:  m.PropertyID,
			Quantity:    m.Quantity,
			UnitPrice:   m.UnitPrice,
		})
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating order line rows: %w", rows.Err())
	}
	return lines, nil
}

func (r *PgxCartRepository) ListOrdersByUser(ctx context.Context, userID string, limit int, offset int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT order_id, user_id, total, status, created_at, created_by, last_updated_at, last_updated_by
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var m models.Order
		err := rows.Scan(
			&m.OrderID,
			&m.UserID,
			&m.Total,
			&m.Status,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		orders = append(orders, domain.Order{
			OrderID: m.OrderID,
			UserID:  m.UserID,
			Total:   m.Total,
			Status:  domain.OrderStatus(m.Status),
			AuditFields: domain.AuditFields{
				CreatedAt:     m.CreatedAt,
				CreatedBy:     m.CreatedBy,
				LastUpdatedAt: m.LastUpdatedAt,
				LastUpdatedBy: m.LastUpdatedBy,
			},
		})
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating order rows: %w", rows.Err())
	}

	// Attach lines per order
	for i := range orders {
		lines, err := r.findOrderLines(ctx, orders[i].OrderID)
		if err != nil {
			return nil, err
		}
		orders[i].Lines = lines
	}
	return orders, nil
}
