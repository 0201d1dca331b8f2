package app

import (
	"context"

	"github.com/shrutigoyal04/V-Market/internal/domain"
)

// MergePolicy decides which of the receiver's products absorbs transferred
// stock. Returning nil means no match: the transfer creates a new product.
//
// The policy runs inside the acceptance transaction, so repository reads made
// through it see the transaction's view.
type MergePolicy interface {
	MatchExisting(ctx context.Context, source domain.Product, ownerID string) (*domain.Product, error)
}

type productFinder interface {
	FindProductByNameAndOwner(ctx context.Context, name, ownerID string) (*domain.Product, error)
}

// nameMergePolicy matches by exact product name, the behavior shipped today.
// It is deliberately behind the MergePolicy seam so a SKU-based match can
// replace it without touching the transaction logic.
type nameMergePolicy struct {
	products productFinder
}

func NewNameMergePolicy(products productFinder) MergePolicy {
	return nameMergePolicy{products: products}
}

func (p nameMergePolicy) MatchExisting(ctx context.Context, source domain.Product, ownerID string) (*domain.Product, error) {
	return p.products.FindProductByNameAndOwner(ctx, source.Name, ownerID)
}
