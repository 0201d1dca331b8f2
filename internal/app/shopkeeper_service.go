package app

import (
	"context"

	"github.com/shrutigoyal04/V-Market/internal/domain"
)

// ShopkeeperService exposes public shop profiles for browsing and as
// transfer counterparties.
type ShopkeeperService struct {
	repo ShopkeeperRepository
}

func NewShopkeeperService(repo ShopkeeperRepository) *ShopkeeperService {
	return &ShopkeeperService{repo: repo}
}

func (s *ShopkeeperService) List(ctx context.Context) ([]domain.Shopkeeper, error) {
	return s.repo.ListShopkeepers(ctx)
}

func (s *ShopkeeperService) Get(ctx context.Context, id string) (domain.Shopkeeper, error) {
	return s.repo.GetShopkeeper(ctx, id)
}
