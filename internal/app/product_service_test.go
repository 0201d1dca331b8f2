package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shrutigoyal04/V-Market/internal/clock"
	"github.com/shrutigoyal04/V-Market/internal/domain"
)

func TestProductService(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	makeSvc := func() (*ProductService, *fakeProductRepo) {
		repo := newFakeProductRepo()
		return NewProductService(repo, clock.NewFixed(now)), repo
	}

	input := ProductInput{
		Name:     "Tea",
		Price:    decimal.RequireFromString("9.99"),
		Quantity: 10,
	}

	t.Run("create", func(t *testing.T) {
		svc, repo := makeSvc()

		p, err := svc.Create(context.Background(), "keeper-a", input)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if p.ID == "" || p.ShopkeeperID != "keeper-a" {
			t.Fatalf("unexpected product: %+v", p)
		}
		if !p.Price.Equal(decimal.RequireFromString("9.99")) {
			t.Fatalf("unexpected price %s", p.Price)
		}
		if len(repo.products) != 1 {
			t.Fatalf("expected 1 stored product, got %d", len(repo.products))
		}
	})

	t.Run("create rejects negative quantity", func(t *testing.T) {
		svc, _ := makeSvc()

		bad := input
		bad.Quantity = -1
		_, err := svc.Create(context.Background(), "keeper-a", bad)
		if !errors.Is(err, domain.ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("update is owner-only", func(t *testing.T) {
		svc, repo := makeSvc()
		repo.add(domain.Product{ID: "prod-1", ShopkeeperID: "keeper-a", Name: "Tea", Quantity: 10})

		_, err := svc.Update(context.Background(), "prod-1", "keeper-b", input)
		if !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}

		updated := input
		updated.Quantity = 7
		p, err := svc.Update(context.Background(), "prod-1", "keeper-a", updated)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if p.Quantity != 7 || p.UpdatedAt != now {
			t.Fatalf("unexpected product: %+v", p)
		}
	})

	t.Run("delete is owner-only", func(t *testing.T) {
		svc, repo := makeSvc()
		repo.add(domain.Product{ID: "prod-1", ShopkeeperID: "keeper-a", Name: "Tea"})

		if err := svc.Delete(context.Background(), "prod-1", "keeper-b"); !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
		if err := svc.Delete(context.Background(), "prod-1", "keeper-a"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(repo.products) != 0 {
			t.Fatalf("expected product removed")
		}
	})

	t.Run("list scopes to owner when given", func(t *testing.T) {
		svc, repo := makeSvc()
		repo.add(domain.Product{ID: "prod-1", ShopkeeperID: "keeper-a", Name: "Tea"})
		repo.add(domain.Product{ID: "prod-2", ShopkeeperID: "keeper-b", Name: "Coffee"})

		all, err := svc.List(context.Background(), "")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(all) != 2 {
			t.Fatalf("expected 2 products, got %d", len(all))
		}

		mine, err := svc.List(context.Background(), "keeper-a")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(mine) != 1 || mine[0].ID != "prod-1" {
			t.Fatalf("unexpected products: %+v", mine)
		}
	})
}

type fakeProductRepo struct {
	products map[string]domain.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]domain.Product)}
}

func (f *fakeProductRepo) add(p domain.Product) { f.products[p.ID] = p }

func (f *fakeProductRepo) CreateProduct(_ context.Context, p domain.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) GetProduct(_ context.Context, id string) (domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return p, nil
}

func (f *fakeProductRepo) ListProducts(_ context.Context, ownerID string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range f.products {
		if ownerID == "" || p.ShopkeeperID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) UpdateProduct(_ context.Context, p domain.Product) error {
	if _, ok := f.products[p.ID]; !ok {
		return domain.ErrProductNotFound
	}
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) DeleteProduct(_ context.Context, id string) error {
	if _, ok := f.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(f.products, id)
	return nil
}
