package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-redis/redis/v8"

	"ecommerce-backend/internal/entity"
)

type ProductRepository interface {
	GetActiveByID(ctx context.Context, id int) (*entity.Product, error)
	GetActiveByIDForProvider(ctx context.Context, id, providerID int) (*entity.Product, error)
	ListByProvider(ctx context.Context, providerID int) ([]*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	SoftDelete(ctx context.Context, id, providerID int) (bool, error)
}

type ProductService struct {
	repo ProductRepository
	rdb  *redis.Client
}

func NewProductService(repo ProductRepository, rdb *redis.Client) *ProductService {
	return &ProductService{repo: repo, rdb: rdb}
}

func productCacheKey(productID int) string {
	return fmt.Sprintf("product:%d", productID)
}

func cacheDisabled() bool {
	return os.Getenv("ENV") == "test"
}

type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Quantity    int
}

func (s *ProductService) AddProduct(ctx context.Context, providerID int, in ProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Quantity:    in.Quantity,
		ProviderID:  providerID,
	}
	created, err := s.repo.Create(ctx, product)
	if err != nil {
		logger.Error().Err(err).Int("provider_id", providerID).Msg("Error creating product")
		return nil, err
	}
	return created, nil
}

// GetActiveProduct is a read-through cached lookup of a non-deleted product.
func (s *ProductService) GetActiveProduct(ctx context.Context, productID int) (*entity.Product, error) {
	if !cacheDisabled() && s.rdb != nil {
		cached, err := s.rdb.Get(ctx, productCacheKey(productID)).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			logger.Error().Err(err).Int("product_id", productID).Msg("Error reading product cache")
		}
		if cached != "" {
			product := entity.Product{}
			if err := json.Unmarshal([]byte(cached), &product); err == nil {
				return &product, nil
			}
		}
	}

	product, err := s.repo.GetActiveByID(ctx, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	s.cacheProduct(ctx, product)
	return product, nil
}

func (s *ProductService) cacheProduct(ctx context.Context, product *entity.Product) {
	if cacheDisabled() || s.rdb == nil {
		return
	}
	data, err := json.Marshal(product)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, productCacheKey(product.ID), data, 0).Err(); err != nil {
		logger.Error().Err(err).Int("product_id", product.ID).Msg("Error setting product in cache")
	}
}

// InvalidateCache drops the cached copy after any stock or field mutation.
func (s *ProductService) InvalidateCache(ctx context.Context, productID int) {
	if cacheDisabled() || s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, productCacheKey(productID)).Err(); err != nil {
		logger.Error().Err(err).Int("product_id", productID).Msg("Error deleting product from cache")
	}
}

func (s *ProductService) ListByProvider(ctx context.Context, providerID int) ([]*entity.Product, error) {
	return s.repo.ListByProvider(ctx, providerID)
}

type ProductUpdate struct {
	Name        string
	Description string
	Price       *float64
	Quantity    *int
}

// UpdateProduct applies the provided fields to the provider's own non-deleted
// product. Price and quantity are pointers so zero values stay expressible.
func (s *ProductService) UpdateProduct(ctx context.Context, providerID, productID int, in ProductUpdate) (*entity.Product, error) {
	product, err := s.repo.GetActiveByIDForProvider(ctx, productID, providerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if in.Name != "" {
		product.Name = in.Name
	}
	if in.Description != "" {
		product.Description = in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Quantity != nil {
		product.Quantity = *in.Quantity
	}

	if err := s.repo.Update(ctx, product); err != nil {
		logger.Error().Err(err).Int("product_id", productID).Msg("Error updating product")
		return nil, err
	}

	s.InvalidateCache(ctx, productID)
	return product, nil
}

func (s *ProductService) SoftDeleteProduct(ctx context.Context, providerID, productID int) error {
	deleted, err := s.repo.SoftDelete(ctx, productID, providerID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProductNotFound
	}
	s.InvalidateCache(ctx, productID)
	return nil
}
