package repository

import (
	"context"
	"database/sql"

	"ecommerce-backend/internal/entity"
)

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db}
}

const productColumns = `id, name, description, price, quantity, provider_id, is_deleted`

// GetActiveByID returns a product that has not been soft-deleted.
func (r *ProductRepository) GetActiveByID(ctx context.Context, id int) (*entity.Product, error) {
	product := &entity.Product{}
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ? AND is_deleted = FALSE`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&product.ID, &product.Name,
		&product.Description, &product.Price, &product.Quantity, &product.ProviderID, &product.IsDeleted)
	if err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID returns a product regardless of its soft-delete flag.
func (r *ProductRepository) GetByID(ctx context.Context, id int) (*entity.Product, error) {
	product := &entity.Product{}
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ?`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&product.ID, &product.Name,
		&product.Description, &product.Price, &product.Quantity, &product.ProviderID, &product.IsDeleted)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	query := `INSERT INTO products (name, description, price, quantity, provider_id) VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, product.Name, product.Description,
		product.Price, product.Quantity, product.ProviderID)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	product.ID = int(id)
	return product, nil
}

// GetActiveByIDForProvider scopes the lookup to the owning provider.
func (r *ProductRepository) GetActiveByIDForProvider(ctx context.Context, id, providerID int) (*entity.Product, error) {
	product := &entity.Product{}
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ? AND provider_id = ? AND is_deleted = FALSE`
	err := r.db.QueryRowContext(ctx, query, id, providerID).Scan(&product.ID, &product.Name,
		&product.Description, &product.Price, &product.Quantity, &product.ProviderID, &product.IsDeleted)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *ProductRepository) ListByProvider(ctx context.Context, providerID int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE provider_id = ? AND is_deleted = FALSE`
	rows, err := r.db.QueryContext(ctx, query, providerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		product := entity.Product{}
		err := rows.Scan(&product.ID, &product.Name, &product.Description,
			&product.Price, &product.Quantity, &product.ProviderID, &product.IsDeleted)
		if err != nil {
			return nil, err
		}
		products = append(products, &product)
	}
	return products, rows.Err()
}

func (r *ProductRepository) Update(ctx context.Context, product *entity.Product) error {
	query := `UPDATE products SET name = ?, description = ?, price = ?, quantity = ? WHERE id = ? AND is_deleted = FALSE`
	_, err := r.db.ExecContext(ctx, query, product.Name, product.Description,
		product.Price, product.Quantity, product.ID)
	return err
}

// SoftDelete flags the provider's product as deleted without removing the row.
func (r *ProductRepository) SoftDelete(ctx context.Context, id, providerID int) (bool, error) {
	query := `UPDATE products SET is_deleted = TRUE WHERE id = ? AND provider_id = ? AND is_deleted = FALSE`
	res, err := r.db.ExecContext(ctx, query, id, providerID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
