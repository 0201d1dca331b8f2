package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shrutigoyal04/V-Market/internal/domain"
)

type ShopkeeperRepository struct {
	pool *pgxpool.Pool
}

func NewShopkeeperRepository(pool *pgxpool.Pool) *ShopkeeperRepository {
	return &ShopkeeperRepository{pool: pool}
}

const shopkeeperColumns = `
id, email, password_hash, shop_name, COALESCE(address, ''), COALESCE(phone, ''), created_at, updated_at`

func scanShopkeeper(row pgx.Row) (domain.Shopkeeper, error) {
	var s domain.Shopkeeper
	err := row.Scan(&s.ID, &s.Email, &s.PasswordHash, &s.ShopName, &s.Address, &s.Phone, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func (r *ShopkeeperRepository) CreateShopkeeper(ctx context.Context, s domain.Shopkeeper) error {
	const stmt = `
INSERT INTO shopkeepers (id, email, password_hash, shop_name, address, phone, created_at, updated_at)
VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7, $8)`

	_, err := db(ctx, r.pool).Exec(ctx, stmt,
		s.ID, s.Email, s.PasswordHash, s.ShopName, s.Address, s.Phone, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("create shopkeeper: %w", err)
	}
	return nil
}

func (r *ShopkeeperRepository) GetShopkeeper(ctx context.Context, id string) (domain.Shopkeeper, error) {
	query := `SELECT ` + shopkeeperColumns + ` FROM shopkeepers WHERE id = $1`
	s, err := scanShopkeeper(db(ctx, r.pool).QueryRow(ctx, query, id))
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

func (r *ShopkeeperRepository) GetShopkeeperByEmail(ctx context.Context, email string) (*domain.Shopkeeper, error) {
	query := `SELECT ` + shopkeeperColumns + ` FROM shopkeepers WHERE email = $1`
	s, err := scanShopkeeper(db(ctx, r.pool).QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get shopkeeper by email: %w", err)
	}
	return &s, nil
}

func (r *ShopkeeperRepository) ListShopkeepers(ctx context.Context) ([]domain.Shopkeeper, error) {
	query := `SELECT ` + shopkeeperColumns + ` FROM shopkeepers ORDER BY shop_name`
	rows, err := db(ctx, r.pool).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list shopkeepers: %w", err)
	}
	defer rows.Close()

	var out []domain.Shopkeeper
	for rows.Next() {
		s, err := scanShopkeeper(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shopkeeper: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
