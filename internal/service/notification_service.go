package service

import (
	"context"

	"ecommerce-backend/internal/entity"
)

type NotificationRepository interface {
	ListByProvider(ctx context.Context, providerID int) ([]*entity.Notification, error)
	Create(ctx context.Context, n *entity.Notification) (*entity.Notification, error)
}

type NotificationService struct {
	repo NotificationRepository
}

func NewNotificationService(repo NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) ListByProvider(ctx context.Context, providerID int) ([]*entity.Notification, error) {
	return s.repo.ListByProvider(ctx, providerID)
}

func (s *NotificationService) Create(ctx context.Context, providerID int, message string) (*entity.Notification, error) {
	n := &entity.Notification{ProviderID: providerID, Message: message}
	created, err := s.repo.Create(ctx, n)
	if err != nil {
		logger.Error().Err(err).Int("provider_id", providerID).Msg("Error creating notification")
		return nil, err
	}
	return created, nil
}
