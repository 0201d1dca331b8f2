package app

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/shrutigoyal04/V-Market/internal/auth"
	"github.com/shrutigoyal04/V-Market/internal/clock"
	"github.com/shrutigoyal04/V-Market/internal/domain"
)

type ShopkeeperRepository interface {
	CreateShopkeeper(ctx context.Context, s domain.Shopkeeper) error
	GetShopkeeper(ctx context.Context, id string) (domain.Shopkeeper, error)
	GetShopkeeperByEmail(ctx context.Context, email string) (*domain.Shopkeeper, error)
	ListShopkeepers(ctx context.Context) ([]domain.Shopkeeper, error)
}

const bcryptCost = 10

// AuthService registers shopkeeper accounts and exchanges credentials for
// bearer tokens. Everything downstream only sees the authenticated
// shopkeeper id.
type AuthService struct {
	repo   ShopkeeperRepository
	clock  clock.Clock
	secret string
}

func NewAuthService(repo ShopkeeperRepository, clk clock.Clock, jwtSecret string) *AuthService {
	return &AuthService{repo: repo, clock: clk, secret: jwtSecret}
}

type RegisterInput struct {
	Email    string
	Password string
	ShopName string
	Address  string
	Phone    string
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (domain.Shopkeeper, string, error) {
	existing, err := s.repo.GetShopkeeperByEmail(ctx, in.Email)
	if err != nil {
		return domain.Shopkeeper{}, "", err
	}
	if existing != nil {
		return domain.Shopkeeper{}, "", domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return domain.Shopkeeper{}, "", err
	}

	now := s.clock.Now()
	keeper := domain.Shopkeeper{
		ID:           newID(),
		Email:        in.Email,
		PasswordHash: string(hash),
		ShopName:     in.ShopName,
		Address:      in.Address,
		Phone:        in.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.CreateShopkeeper(ctx, keeper); err != nil {
		return domain.Shopkeeper{}, "", err
	}

	token, err := auth.GenerateToken(s.secret, keeper.ID, keeper.Email, keeper.ShopName)
	if err != nil {
		return domain.Shopkeeper{}, "", err
	}
	return keeper, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Shopkeeper, string, error) {
	keeper, err := s.repo.GetShopkeeperByEmail(ctx, email)
	if err != nil {
		return domain.Shopkeeper{}, "", err
	}
	if keeper == nil {
		return domain.Shopkeeper{}, "", domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(keeper.PasswordHash), []byte(password)) != nil {
		return domain.Shopkeeper{}, "", domain.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(s.secret, keeper.ID, keeper.Email, keeper.ShopName)
	if err != nil {
		return domain.Shopkeeper{}, "", err
	}
	return *keeper, token, nil
}

func (s *AuthService) Profile(ctx context.Context, shopkeeperID string) (domain.Shopkeeper, error) {
	return s.repo.GetShopkeeper(ctx, shopkeeperID)
}
