package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ecommerce-backend/internal/entity"
)

// ErrOutOfStock is returned when the guarded stock decrement matches no row,
// meaning the product was sold out (or soft-deleted) by the time the
// transaction ran.
var ErrOutOfStock = errors.New("product out of stock")

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db}
}

const orderColumns = `id, customer_id, product_id, status, created_at`

func (r *OrderRepository) GetByID(ctx context.Context, id int) (*entity.Order, error) {
	order := &entity.Order{}
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = ?`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&order.ID, &order.CustomerID,
		&order.ProductID, &order.Status, &order.CreatedAt)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// GetByIDForProvider returns the order only when the ordered product belongs
// to the given provider.
func (r *OrderRepository) GetByIDForProvider(ctx context.Context, id, providerID int) (*entity.Order, error) {
	order := &entity.Order{}
	query := `SELECT o.id, o.customer_id, o.product_id, o.status, o.created_at
		FROM orders o JOIN products p ON o.product_id = p.id
		WHERE o.id = ? AND p.provider_id = ?`
	err := r.db.QueryRowContext(ctx, query, id, providerID).Scan(&order.ID, &order.CustomerID,
		&order.ProductID, &order.Status, &order.CreatedAt)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *OrderRepository) List(ctx context.Context) ([]*entity.Order, error) {
	return r.queryOrders(ctx, `SELECT `+orderColumns+` FROM orders`)
}

// ListByProvider joins orders against products owned by the provider.
func (r *OrderRepository) ListByProvider(ctx context.Context, providerID int) ([]*entity.Order, error) {
	query := `SELECT o.id, o.customer_id, o.product_id, o.status, o.created_at
		FROM orders o JOIN products p ON o.product_id = p.id
		WHERE p.provider_id = ?`
	return r.queryOrders(ctx, query, providerID)
}

func (r *OrderRepository) queryOrders(ctx context.Context, query string, args ...interface{}) ([]*entity.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		order := entity.Order{}
		err := rows.Scan(&order.ID, &order.CustomerID, &order.ProductID, &order.Status, &order.CreatedAt)
		if err != nil {
			return nil, err
		}
		orders = append(orders, &order)
	}
	return orders, rows.Err()
}

// CreateWithStockDecrement decrements the product's stock and inserts the
// order in one transaction. The decrement is guarded so the quantity can
// never go negative, whatever interleaving concurrent requests produce.
func (r *OrderRepository) CreateWithStockDecrement(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	decrement := `UPDATE products SET quantity = quantity - 1 WHERE id = ? AND quantity > 0 AND is_deleted = FALSE`
	res, err := tx.ExecContext(ctx, decrement, order.ProductID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if affected == 0 {
		tx.Rollback()
		return nil, ErrOutOfStock
	}

	if order.Status == "" {
		order.Status = entity.StatusPending
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}

	insert := `INSERT INTO orders (customer_id, product_id, status, created_at) VALUES (?, ?, ?, ?)`
	ins, err := tx.ExecContext(ctx, insert, order.CustomerID, order.ProductID, order.Status, order.CreatedAt)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	id, err := ins.LastInsertId()
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	order.ID = int(id)
	return order, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id int, status entity.OrderStatus, createdAt time.Time) error {
	query := `UPDATE orders SET status = ?, created_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, status, createdAt, id)
	return err
}

// DeleteRestoringStock removes the order and gives the stock unit back to the
// product (unless it was soft-deleted), in one transaction.
func (r *OrderRepository) DeleteRestoringStock(ctx context.Context, id, productID int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	restore := `UPDATE products SET quantity = quantity + 1 WHERE id = ? AND is_deleted = FALSE`
	if _, err := tx.ExecContext(ctx, restore, productID); err != nil {
		tx.Rollback()
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, id); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
