package repository

import (
	"context"
	"database/sql"
	"time"

	"ecommerce-backend/internal/entity"
)

type NotificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) *NotificationRepository {
	return &NotificationRepository{db}
}

func (r *NotificationRepository) ListByProvider(ctx context.Context, providerID int) ([]*entity.Notification, error) {
	query := `SELECT id, provider_id, message, created_at FROM notifications WHERE provider_id = ?`
	rows, err := r.db.QueryContext(ctx, query, providerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []*entity.Notification
	for rows.Next() {
		n := entity.Notification{}
		err := rows.Scan(&n.ID, &n.ProviderID, &n.Message, &n.CreatedAt)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, &n)
	}
	return notifications, rows.Err()
}

func (r *NotificationRepository) Create(ctx context.Context, n *entity.Notification) (*entity.Notification, error) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO notifications (provider_id, message, created_at) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, n.ProviderID, n.Message, n.CreatedAt)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	n.ID = int(id)
	return n, nil
}
