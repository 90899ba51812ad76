package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"ecommerce-backend/internal/entity"
	"ecommerce-backend/internal/repository"
)

type OrderRepository interface {
	GetByID(ctx context.Context, id int) (*entity.Order, error)
	GetByIDForProvider(ctx context.Context, id, providerID int) (*entity.Order, error)
	List(ctx context.Context) ([]*entity.Order, error)
	ListByProvider(ctx context.Context, providerID int) ([]*entity.Order, error)
	CreateWithStockDecrement(ctx context.Context, order *entity.Order) (*entity.Order, error)
	UpdateStatus(ctx context.Context, id int, status entity.OrderStatus, createdAt time.Time) error
	DeleteRestoringStock(ctx context.Context, id, productID int) error
}

// InvoiceRenderer produces the PDF for an order and returns its path.
type InvoiceRenderer interface {
	GenerateForOrder(ctx context.Context, orderID int) (string, error)
}

const (
	EventOrderCreated       = "order-created"
	EventOrderStatusUpdated = "order-status-updated"
	EventOrderDeleted       = "order-deleted"
)

// OrderEvent is the message published to kafka after each committed order
// mutation.
type OrderEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	OrderID    int       `json:"order_id"`
	CustomerID int       `json:"customer_id"`
	ProductID  int       `json:"product_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

type OrderService struct {
	orderRepo   OrderRepository
	products    *ProductService
	invoices    InvoiceRenderer
	kafkaWriter *kafka.Writer
}

func NewOrderService(orderRepo OrderRepository, products *ProductService, invoices InvoiceRenderer, kafkaWriter *kafka.Writer) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		products:    products,
		invoices:    invoices,
		kafkaWriter: kafkaWriter,
	}
}

func (s *OrderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	return s.orderRepo.List(ctx)
}

func (s *OrderService) GetOrder(ctx context.Context, id int) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// CreateOrder validates availability, then decrements stock and inserts the
// order in one transaction. The guarded decrement re-checks quantity inside
// the transaction, so two requests racing on the last unit cannot both win.
func (s *OrderService) CreateOrder(ctx context.Context, customerID, productID int, status entity.OrderStatus) (*entity.Order, error) {
	product, err := s.products.GetActiveProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Quantity <= 0 {
		return nil, ErrOutOfStock
	}

	order := &entity.Order{
		CustomerID: customerID,
		ProductID:  productID,
		Status:     status,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.orderRepo.CreateWithStockDecrement(ctx, order)
	if err != nil {
		if errors.Is(err, repository.ErrOutOfStock) {
			return nil, ErrOutOfStock
		}
		logger.Error().Err(err).Int("product_id", productID).Msg("Error creating order")
		return nil, err
	}

	s.products.InvalidateCache(ctx, productID)

	if err := s.publishOrderEvent(ctx, created, EventOrderCreated); err != nil {
		logger.Error().Err(err).Int("order_id", created.ID).Msg("Error publishing order event")
	}
	return created, nil
}

// PlaceOrder is the customer flow: create the order, then synchronously
// render its invoice. Invoice failure does not undo the committed order.
func (s *OrderService) PlaceOrder(ctx context.Context, customerID, productID int) (*entity.Order, string, error) {
	order, err := s.CreateOrder(ctx, customerID, productID, entity.StatusPending)
	if err != nil {
		return nil, "", err
	}

	invoicePath := "Invoice generation failed."
	if s.invoices != nil {
		path, err := s.invoices.GenerateForOrder(ctx, order.ID)
		if err != nil {
			logger.Error().Err(err).Int("order_id", order.ID).Msg("Error generating invoice")
		} else {
			invoicePath = path
		}
	}
	return order, invoicePath, nil
}

// AdminUpdateStatus replaces the status with any non-empty value; the admin
// dashboard does not restrict it to the enum.
func (s *OrderService) AdminUpdateStatus(ctx context.Context, id int, status string) (*entity.Order, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	order.Status = entity.OrderStatus(status)
	if err := s.orderRepo.UpdateStatus(ctx, id, order.Status, order.CreatedAt); err != nil {
		logger.Error().Err(err).Int("order_id", id).Msg("Error updating order")
		return nil, err
	}

	if err := s.publishOrderEvent(ctx, order, EventOrderStatusUpdated); err != nil {
		logger.Error().Err(err).Int("order_id", id).Msg("Error publishing order event")
	}
	return order, nil
}

// ProviderUpdateStatus restricts the value to the status enum and the order
// to the provider's own products. A missing created_at is backfilled.
func (s *OrderService) ProviderUpdateStatus(ctx context.Context, providerID, orderID int, status entity.OrderStatus) (*entity.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	order, err := s.orderRepo.GetByIDForProvider(ctx, orderID, providerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	order.Status = status
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, order.Status, order.CreatedAt); err != nil {
		logger.Error().Err(err).Int("order_id", orderID).Msg("Error updating order status")
		return nil, err
	}

	if err := s.publishOrderEvent(ctx, order, EventOrderStatusUpdated); err != nil {
		logger.Error().Err(err).Int("order_id", orderID).Msg("Error publishing order event")
	}
	return order, nil
}

// DeleteOrder removes the order and restores one unit of product stock.
func (s *OrderService) DeleteOrder(ctx context.Context, id int) error {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return err
	}

	if err := s.orderRepo.DeleteRestoringStock(ctx, id, order.ProductID); err != nil {
		logger.Error().Err(err).Int("order_id", id).Msg("Error deleting order")
		return err
	}

	s.products.InvalidateCache(ctx, order.ProductID)

	if err := s.publishOrderEvent(ctx, order, EventOrderDeleted); err != nil {
		logger.Error().Err(err).Int("order_id", id).Msg("Error publishing order event")
	}
	return nil
}

func (s *OrderService) ListByProvider(ctx context.Context, providerID int) ([]*entity.Order, error) {
	return s.orderRepo.ListByProvider(ctx, providerID)
}

// GetOwnedOrder returns the order only when it belongs to the customer.
func (s *OrderService) GetOwnedOrder(ctx context.Context, orderID, customerID int) (*entity.Order, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) publishOrderEvent(ctx context.Context, order *entity.Order, eventType string) error {
	if os.Getenv("ENV") == "test" || s.kafkaWriter == nil {
		return nil
	}

	event := OrderEvent{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		ProductID:  order.ProductID,
		Status:     string(order.Status),
		OccurredAt: time.Now().UTC(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("%s-%d", eventType, order.ID)),
		Value: value,
	}
	return s.kafkaWriter.WriteMessages(ctx, msg)
}
