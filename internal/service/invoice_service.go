package service

import (
	"context"
	"database/sql"
	"errors"

	"ecommerce-backend/internal/entity"
	"ecommerce-backend/internal/invoice"
)

// ProductLoader fetches a product regardless of its soft-delete flag; the
// invoice must still render for orders of since-deleted products.
type ProductLoader interface {
	GetByID(ctx context.Context, id int) (*entity.Product, error)
}

type OrderLoader interface {
	GetByID(ctx context.Context, id int) (*entity.Order, error)
}

type InvoiceService struct {
	orders    OrderLoader
	products  ProductLoader
	generator *invoice.Generator
}

func NewInvoiceService(orders OrderLoader, products ProductLoader, generator *invoice.Generator) *InvoiceService {
	return &InvoiceService{orders: orders, products: products, generator: generator}
}

// GenerateForOrder loads the order and its product and renders the PDF,
// returning the file path. Idempotent by overwrite.
func (s *InvoiceService) GenerateForOrder(ctx context.Context, orderID int) (string, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrOrderNotFound
		}
		return "", err
	}

	product, err := s.products.GetByID(ctx, order.ProductID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrProductNotFound
		}
		return "", err
	}

	date := "Not Available"
	if !order.CreatedAt.IsZero() {
		date = order.CreatedAt.Format("2006-01-02")
	}

	path, err := s.generator.Render(invoice.Invoice{
		OrderID:     order.ID,
		CustomerID:  order.CustomerID,
		ProviderID:  product.ProviderID,
		ProductName: product.Name,
		Description: product.Description,
		Price:       product.Price,
		Status:      string(order.Status),
		Date:        date,
	})
	if err != nil {
		logger.Error().Err(err).Int("order_id", orderID).Msg("Error rendering invoice")
		return "", err
	}
	return path, nil
}
