package repository

import (
	"context"
	"database/sql"

	"ecommerce-backend/internal/entity"
)

type WishlistRepository struct {
	db *sql.DB
}

func NewWishlistRepository(db *sql.DB) *WishlistRepository {
	return &WishlistRepository{db}
}

// ListByUser returns the user's wishlist rows joined with product details.
func (r *WishlistRepository) ListByUser(ctx context.Context, userID int) ([]*entity.WishlistEntry, error) {
	query := `SELECT p.id, p.name, p.price, p.description
		FROM wishlists w JOIN products p ON w.product_id = p.id
		WHERE w.user_id = ?`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*entity.WishlistEntry
	for rows.Next() {
		entry := entity.WishlistEntry{}
		err := rows.Scan(&entry.ProductID, &entry.ProductName, &entry.Price, &entry.Description)
		if err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}
	return entries, rows.Err()
}

func (r *WishlistRepository) Exists(ctx context.Context, userID, productID int) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM wishlists WHERE user_id = ? AND product_id = ?`
	err := r.db.QueryRowContext(ctx, query, userID, productID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *WishlistRepository) Create(ctx context.Context, item *entity.WishlistItem) (*entity.WishlistItem, error) {
	query := `INSERT INTO wishlists (user_id, product_id) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, query, item.UserID, item.ProductID)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	item.ID = int(id)
	return item, nil
}

func (r *WishlistRepository) Delete(ctx context.Context, userID, productID int) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM wishlists WHERE user_id = ? AND product_id = ?`, userID, productID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
