package service

import (
	"context"

	"ecommerce-backend/internal/entity"
)

type WishlistRepository interface {
	ListByUser(ctx context.Context, userID int) ([]*entity.WishlistEntry, error)
	Exists(ctx context.Context, userID, productID int) (bool, error)
	Create(ctx context.Context, item *entity.WishlistItem) (*entity.WishlistItem, error)
	Delete(ctx context.Context, userID, productID int) (bool, error)
}

type WishlistService struct {
	repo     WishlistRepository
	products *ProductService
}

func NewWishlistService(repo WishlistRepository, products *ProductService) *WishlistService {
	return &WishlistService{repo: repo, products: products}
}

func (s *WishlistService) List(ctx context.Context, userID int) ([]*entity.WishlistEntry, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Add rejects unknown products and duplicate pairs. The duplicate guard is a
// pre-check, not a schema constraint, so two identical concurrent requests
// can still both insert; see DESIGN.md.
func (s *WishlistService) Add(ctx context.Context, userID, productID int) error {
	if _, err := s.products.GetActiveProduct(ctx, productID); err != nil {
		return err
	}

	exists, err := s.repo.Exists(ctx, userID, productID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyInWishlist
	}

	_, err = s.repo.Create(ctx, &entity.WishlistItem{UserID: userID, ProductID: productID})
	if err != nil {
		logger.Error().Err(err).Int("user_id", userID).Int("product_id", productID).Msg("Error adding wishlist item")
	}
	return err
}

func (s *WishlistService) Remove(ctx context.Context, userID, productID int) error {
	removed, err := s.repo.Delete(ctx, userID, productID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotInWishlist
	}
	return nil
}
