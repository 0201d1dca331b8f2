package app

import (
	"context"

	"github.com/shrutigoyal04/V-Market/internal/domain"
)

type HistoryRepository interface {
	ListTransfersForShopkeeper(ctx context.Context, shopkeeperID string) ([]domain.TransferRecord, error)
	FindTransferForShopkeeper(ctx context.Context, id, shopkeeperID string) (domain.TransferRecord, error)
}

// HistoryService reads the transfer audit trail. Records are only ever
// written by the acceptance transaction in RequestService.
type HistoryService struct {
	repo HistoryRepository
}

func NewHistoryService(repo HistoryRepository) *HistoryService {
	return &HistoryService{repo: repo}
}

// ListForShopkeeper returns transfers the shopkeeper sent or received,
// newest first.
func (s *HistoryService) ListForShopkeeper(ctx context.Context, shopkeeperID string) ([]domain.TransferRecord, error) {
	return s.repo.ListTransfersForShopkeeper(ctx, shopkeeperID)
}

// Get returns a single transfer record, visible only to its sender or
// receiver.
func (s *HistoryService) Get(ctx context.Context, id, shopkeeperID string) (domain.TransferRecord, error) {
	return s.repo.FindTransferForShopkeeper(ctx, id, shopkeeperID)
}
