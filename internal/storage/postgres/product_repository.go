package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shrutigoyal04/V-Market/internal/domain"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID, &p.ShopkeeperID, &p.Name, &p.Description, &p.Price,
		&p.Quantity, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func insertProduct(ctx context.Context, q querier, p domain.Product) error {
	const stmt = `
INSERT INTO products (id, shopkeeper_id, name, description, price, quantity, image_url, created_at, updated_at)
VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, NULLIF($7, ''), $8, $9)`

	_, err := q.Exec(ctx, stmt,
		p.ID, p.ShopkeeperID, p.Name, p.Description, p.Price,
		p.Quantity, p.ImageURL, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (r *ProductRepository) CreateProduct(ctx context.Context, p domain.Product) error {
	return insertProduct(ctx, db(ctx, r.pool), p)
}

func (r *ProductRepository) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	const query = `
SELECT id, shopkeeper_id, name, COALESCE(description, ''), price, quantity, COALESCE(image_url, ''), created_at, updated_at
FROM products WHERE id = $1`

	p, err := scanProduct(db(ctx, r.pool).QueryRow(ctx, query, id))
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Product{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// ListProducts returns ownerID's products, or every product when ownerID is
// empty, newest first.
func (r *ProductRepository) ListProducts(ctx context.Context, ownerID string) ([]domain.Product, error) {
	const base = `
SELECT id, shopkeeper_id, name, COALESCE(description, ''), price, quantity, COALESCE(image_url, ''), created_at, updated_at
FROM products`

	var (
		rows pgx.Rows
		err  error
	)
	if ownerID == "" {
		rows, err = db(ctx, r.pool).Query(ctx, base+` ORDER BY created_at DESC`)
	} else {
		rows, err = db(ctx, r.pool).Query(ctx, base+` WHERE shopkeeper_id = $1 ORDER BY created_at DESC`, ownerID)
	}
	if err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProductRepository) UpdateProduct(ctx context.Context, p domain.Product) error {
	const stmt = `
UPDATE products
SET name = $2, description = NULLIF($3, ''), price = $4, quantity = $5, image_url = NULLIF($6, ''), updated_at = $7
WHERE id = $1`

	tag, err := db(ctx, r.pool).Exec(ctx, stmt,
		p.ID, p.Name, p.Description, p.Price, p.Quantity, p.ImageURL, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) DeleteProduct(ctx context.Context, id string) error {
	tag, err := db(ctx, r.pool).Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
