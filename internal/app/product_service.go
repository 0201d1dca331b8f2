package app

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/shrutigoyal04/V-Market/internal/clock"
	"github.com/shrutigoyal04/V-Market/internal/domain"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, p domain.Product) error
	GetProduct(ctx context.Context, id string) (domain.Product, error)
	ListProducts(ctx context.Context, ownerID string) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, p domain.Product) error
	DeleteProduct(ctx context.Context, id string) error
}

// ProductService is plain catalog CRUD. Stock movement between shopkeepers
// never goes through here; that is RequestService's transaction.
type ProductService struct {
	repo  ProductRepository
	clock clock.Clock
}

func NewProductService(repo ProductRepository, clk clock.Clock) *ProductService {
	return &ProductService{repo: repo, clock: clk}
}

type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int
	ImageURL    string
}

func (s *ProductService) Create(ctx context.Context, ownerID string, in ProductInput) (domain.Product, error) {
	if in.Quantity < 0 {
		return domain.Product{}, domain.ErrInvalidQuantity
	}
	now := s.clock.Now()
	p := domain.Product{
		ID:           newID(),
		ShopkeeperID: ownerID,
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		Quantity:     in.Quantity,
		ImageURL:     in.ImageURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.CreateProduct(ctx, p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// List returns ownerID's products, or every product when ownerID is empty.
func (s *ProductService) List(ctx context.Context, ownerID string) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx, ownerID)
}

func (s *ProductService) Get(ctx context.Context, id string) (domain.Product, error) {
	return s.repo.GetProduct(ctx, id)
}

func (s *ProductService) Update(ctx context.Context, id, ownerID string, in ProductInput) (domain.Product, error) {
	if in.Quantity < 0 {
		return domain.Product{}, domain.ErrInvalidQuantity
	}
	p, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	if p.ShopkeeperID != ownerID {
		return domain.Product{}, domain.ErrForbidden
	}

	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	p.Quantity = in.Quantity
	p.ImageURL = in.ImageURL
	p.UpdatedAt = s.clock.Now()
	if err := s.repo.UpdateProduct(ctx, p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, id, ownerID string) error {
	p, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return err
	}
	if p.ShopkeeperID != ownerID {
		return domain.ErrForbidden
	}
	return s.repo.DeleteProduct(ctx, id)
}
