package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shrutigoyal04/V-Market/internal/domain"
)

type HistoryRepository struct {
	pool *pgxpool.Pool
}

func NewHistoryRepository(pool *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{pool: pool}
}

const historyQuery = `
SELECT h.id, h.product_id, h.initiator_shopkeeper_id, h.receiver_shopkeeper_id,
       h.quantity_transferred, COALESCE(h.request_id::text, ''), COALESCE(h.notes, ''), h.created_at,
       p.name, si.shop_name, sr.shop_name
FROM product_transfer_history h
JOIN products p ON p.id = h.product_id
JOIN shopkeepers si ON si.id = h.initiator_shopkeeper_id
JOIN shopkeepers sr ON sr.id = h.receiver_shopkeeper_id`

func scanTransfer(row pgx.Row) (domain.TransferRecord, error) {
	var rec domain.TransferRecord
	err := row.Scan(
		&rec.ID, &rec.ProductID, &rec.InitiatorShopkeeperID, &rec.ReceiverShopkeeperID,
		&rec.QuantityTransferred, &rec.RequestID, &rec.Notes, &rec.CreatedAt,
		&rec.ProductName, &rec.InitiatorShopName, &rec.ReceiverShopName,
	)
	return rec, err
}

func (r *HistoryRepository) ListTransfersForShopkeeper(ctx context.Context, shopkeeperID string) ([]domain.TransferRecord, error) {
	query := historyQuery + `
WHERE h.initiator_shopkeeper_id = $1 OR h.receiver_shopkeeper_id = $1
ORDER BY h.created_at DESC`

	rows, err := db(ctx, r.pool).Query(ctx, query, shopkeeperID)
	if err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()

	var out []domain.TransferRecord
	for rows.Next() {
		rec, err := scanTransfer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *HistoryRepository) FindTransferForShopkeeper(ctx context.Context, id, shopkeeperID string) (domain.TransferRecord, error) {
	query := historyQuery + `
WHERE h.id = $1 AND (h.initiator_shopkeeper_id = $2 OR h.receiver_shopkeeper_id = $2)`

	rec, err := scanTransfer(db(ctx, r.pool).QueryRow(ctx, query, id, shopkeeperID))
	if err != nil {
		if isInvalidUUID(err) {
			return domain.TransferRecord{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.TransferRecord{}, domain.ErrTransferNotFound
		}
		return domain.TransferRecord{}, fmt.Errorf("find transfer: %w", err)
	}
	return rec, nil
}
