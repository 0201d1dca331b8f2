package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shrutigoyal04/V-Market/internal/domain"
)

// RequestRepository persists product requests plus the product, shopkeeper
// and transfer-history rows the acceptance transaction touches. All methods
// join the context's transaction when one is active.
type RequestRepository struct {
	pool *pgxpool.Pool
}

func NewRequestRepository(pool *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{pool: pool}
}

func (r *RequestRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, fn)
}

const requestColumns = `
r.id, r.product_id, r.initiator_id, r.requester_id, r.quantity, r.status,
COALESCE(r.notes, ''), r.created_at, r.updated_at,
p.name, si.shop_name, sr.shop_name`

const requestJoins = `
FROM product_requests r
JOIN products p ON p.id = r.product_id
JOIN shopkeepers si ON si.id = r.initiator_id
JOIN shopkeepers sr ON sr.id = r.requester_id`

func scanRequest(row pgx.Row) (domain.ProductRequest, error) {
	var req domain.ProductRequest
	err := row.Scan(
		&req.ID, &req.ProductID, &req.InitiatorID, &req.RequesterID,
		&req.Quantity, &req.Status, &req.Notes, &req.CreatedAt, &req.UpdatedAt,
		&req.ProductName, &req.InitiatorShopName, &req.RequesterShopName,
	)
	return req, err
}

func (r *RequestRepository) CreateRequest(ctx context.Context, req domain.ProductRequest) error {
	const stmt = `
INSERT INTO product_requests (id, product_id, initiator_id, requester_id, quantity, status, notes, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9)`

	_, err := db(ctx, r.pool).Exec(ctx, stmt,
		req.ID, req.ProductID, req.InitiatorID, req.RequesterID,
		req.Quantity, req.Status, req.Notes, req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("create request: %w", err)
	}
	return nil
}

func (r *RequestRepository) GetRequest(ctx context.Context, id string) (domain.ProductRequest, error) {
	query := `SELECT ` + requestColumns + requestJoins + ` WHERE r.id = $1`
	req, err := scanRequest(db(ctx, r.pool).QueryRow(ctx, query, id))
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ProductRequest{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.ProductRequest{}, domain.ErrRequestNotFound
		}
		return domain.ProductRequest{}, fmt.Errorf("get request: %w", err)
	}
	return req, nil
}

// GetRequestForUpdate locks the request row for the rest of the transaction.
func (r *RequestRepository) GetRequestForUpdate(ctx context.Context, id string) (domain.ProductRequest, error) {
	const query = `
SELECT id, product_id, initiator_id, requester_id, quantity, status, COALESCE(notes, ''), created_at, updated_at
FROM product_requests WHERE id = $1 FOR UPDATE`

	var req domain.ProductRequest
	err := db(ctx, r.pool).QueryRow(ctx, query, id).Scan(
		&req.ID, &req.ProductID, &req.InitiatorID, &req.RequesterID,
		&req.Quantity, &req.Status, &req.Notes, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ProductRequest{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.ProductRequest{}, domain.ErrRequestNotFound
		}
		return domain.ProductRequest{}, fmt.Errorf("get request for update: %w", err)
	}
	return req, nil
}

func (r *RequestRepository) UpdateRequestStatus(ctx context.Context, id string, status domain.RequestStatus, updatedAt time.Time) error {
	const stmt = `UPDATE product_requests SET status = $2, updated_at = $3 WHERE id = $1`
	tag, err := db(ctx, r.pool).Exec(ctx, stmt, id, status, updatedAt)
	if err != nil {
		return fmt.Errorf("update request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

func (r *RequestRepository) DeleteRequest(ctx context.Context, id string) error {
	tag, err := db(ctx, r.pool).Exec(ctx, `DELETE FROM product_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

func (r *RequestRepository) ListRequestsForShopkeeper(ctx context.Context, shopkeeperID string) ([]domain.ProductRequest, error) {
	query := `SELECT ` + requestColumns + requestJoins + `
WHERE r.initiator_id = $1 OR r.requester_id = $1
ORDER BY r.created_at DESC`

	rows, err := db(ctx, r.pool).Query(ctx, query, shopkeeperID)
	if err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	var out []domain.ProductRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

func (r *RequestRepository) FindRequestForShopkeeper(ctx context.Context, id, shopkeeperID string) (domain.ProductRequest, error) {
	query := `SELECT ` + requestColumns + requestJoins + `
WHERE r.id = $1 AND (r.initiator_id = $2 OR r.requester_id = $2)`

	req, err := scanRequest(db(ctx, r.pool).QueryRow(ctx, query, id, shopkeeperID))
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ProductRequest{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.ProductRequest{}, domain.ErrRequestNotFound
		}
		return domain.ProductRequest{}, fmt.Errorf("find request: %w", err)
	}
	return req, nil
}

func (r *RequestRepository) GetProductOwnedBy(ctx context.Context, productID, ownerID string) (domain.Product, error) {
	const query = `
SELECT id, shopkeeper_id, name, COALESCE(description, ''), price, quantity, COALESCE(image_url, ''), created_at, updated_at
FROM products WHERE id = $1 AND shopkeeper_id = $2`

	p, err := scanProduct(db(ctx, r.pool).QueryRow(ctx, query, productID, ownerID))
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Product{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, fmt.Errorf("get product owned by: %w", err)
	}
	return p, nil
}

// GetProductForUpdate locks the product row so concurrent acceptances against
// the same stock serialize.
func (r *RequestRepository) GetProductForUpdate(ctx context.Context, productID string) (domain.Product, error) {
	const query = `
SELECT id, shopkeeper_id, name, COALESCE(description, ''), price, quantity, COALESCE(image_url, ''), created_at, updated_at
FROM products WHERE id = $1 FOR UPDATE`

	p, err := scanProduct(db(ctx, r.pool).QueryRow(ctx, query, productID))
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Product{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, fmt.Errorf("get product for update: %w", err)
	}
	return p, nil
}

// AdjustProductQuantity applies a delta, guarded so stock can never go
// negative even if a caller skips the pre-check.
func (r *RequestRepository) AdjustProductQuantity(ctx context.Context, productID string, delta int, updatedAt time.Time) error {
	const stmt = `
UPDATE products SET quantity = quantity + $2, updated_at = $3
WHERE id = $1 AND quantity + $2 >= 0`

	tag, err := db(ctx, r.pool).Exec(ctx, stmt, productID, delta, updatedAt)
	if err != nil {
		return fmt.Errorf("adjust product quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}

func (r *RequestRepository) FindProductByNameAndOwner(ctx context.Context, name, ownerID string) (*domain.Product, error) {
	const query = `
SELECT id, shopkeeper_id, name, COALESCE(description, ''), price, quantity, COALESCE(image_url, ''), created_at, updated_at
FROM products WHERE name = $1 AND shopkeeper_id = $2
LIMIT 1`

	p, err := scanProduct(db(ctx, r.pool).QueryRow(ctx, query, name, ownerID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("find product by name and owner: %w", err)
	}
	return &p, nil
}

func (r *RequestRepository) CreateProduct(ctx context.Context, p domain.Product) error {
	return insertProduct(ctx, db(ctx, r.pool), p)
}

func (r *RequestRepository) GetShopkeeper(ctx context.Context, id string) (domain.Shopkeeper, error) {
	const query = `
SELECT id, email, password_hash, shop_name, COALESCE(address, ''), COALESCE(phone, ''), created_at, updated_at
FROM shopkeepers WHERE id = $1`

	var s domain.Shopkeeper
	err := db(ctx, r.pool).QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Email, &s.PasswordHash, &s.ShopName, &s.Address, &s.Phone, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Shopkeeper{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Shopkeeper{}, domain.ErrShopkeeperNotFound
		}
		return domain.Shopkeeper{}, fmt.Errorf("get shopkeeper: %w", err)
	}
	return s, nil
}

func (r *RequestRepository) CreateTransferRecord(ctx context.Context, rec domain.TransferRecord) error {
	const stmt = `
INSERT INTO product_transfer_history (id, product_id, initiator_shopkeeper_id, receiver_shopkeeper_id, quantity_transferred, request_id, notes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8)`

	_, err := db(ctx, r.pool).Exec(ctx, stmt,
		rec.ID, rec.ProductID, rec.InitiatorShopkeeperID, rec.ReceiverShopkeeperID,
		rec.QuantityTransferred, rec.RequestID, rec.Notes, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create transfer record: %w", err)
	}
	return nil
}
