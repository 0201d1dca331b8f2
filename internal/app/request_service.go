package app

import (
	"context"
	"fmt"
	"time"

	"github.com/shrutigoyal04/V-Market/internal/clock"
	"github.com/shrutigoyal04/V-Market/internal/domain"
)

type RequestRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error

	CreateRequest(ctx context.Context, req domain.ProductRequest) error
	GetRequest(ctx context.Context, id string) (domain.ProductRequest, error)
	GetRequestForUpdate(ctx context.Context, id string) (domain.ProductRequest, error)
	UpdateRequestStatus(ctx context.Context, id string, status domain.RequestStatus, updatedAt time.Time) error
	DeleteRequest(ctx context.Context, id string) error
	ListRequestsForShopkeeper(ctx context.Context, shopkeeperID string) ([]domain.ProductRequest, error)
	FindRequestForShopkeeper(ctx context.Context, id, shopkeeperID string) (domain.ProductRequest, error)

	GetProductOwnedBy(ctx context.Context, productID, ownerID string) (domain.Product, error)
	GetProductForUpdate(ctx context.Context, productID string) (domain.Product, error)
	AdjustProductQuantity(ctx context.Context, productID string, delta int, updatedAt time.Time) error
	FindProductByNameAndOwner(ctx context.Context, name, ownerID string) (*domain.Product, error)
	CreateProduct(ctx context.Context, p domain.Product) error

	GetShopkeeper(ctx context.Context, id string) (domain.Shopkeeper, error)
	CreateTransferRecord(ctx context.Context, rec domain.TransferRecord) error
}

// RequestService owns the transfer-request state machine: PENDING requests
// are accepted or rejected by the requester, or cancelled (deleted) by the
// initiator. Acceptance moves stock between the two shopkeepers atomically.
type RequestService struct {
	repo   RequestRepository
	clock  clock.Clock
	events EventSink
	merge  MergePolicy
}

func NewRequestService(repo RequestRepository, clk clock.Clock, events EventSink, opts ...RequestServiceOption) *RequestService {
	if events == nil {
		events = discardSink{}
	}
	svc := &RequestService{
		repo:   repo,
		clock:  clk,
		events: events,
		merge:  NewNameMergePolicy(repo),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

type RequestServiceOption func(*RequestService)

// WithMergePolicy overrides how transferred stock is merged into the
// receiver's inventory.
func WithMergePolicy(p MergePolicy) RequestServiceOption {
	return func(s *RequestService) {
		if p != nil {
			s.merge = p
		}
	}
}

type CreateRequestInput struct {
	ProductID   string
	RequesterID string
	Quantity    int
	Notes       string
}

// CreateExportRequest lets the owner of a product (the initiator) offer stock
// to another shopkeeper. Stock is only snapshot-checked here; it is not
// reserved, and is re-validated under lock when the request is accepted.
func (s *RequestService) CreateExportRequest(ctx context.Context, initiatorID string, in CreateRequestInput) (domain.ProductRequest, error) {
	if in.Quantity <= 0 {
		return domain.ProductRequest{}, domain.ErrInvalidQuantity
	}

	product, err := s.repo.GetProductOwnedBy(ctx, in.ProductID, initiatorID)
	if err != nil {
		return domain.ProductRequest{}, err
	}
	if product.Quantity < in.Quantity {
		return domain.ProductRequest{}, domain.ErrExceedsStock
	}

	requester, err := s.repo.GetShopkeeper(ctx, in.RequesterID)
	if err != nil {
		return domain.ProductRequest{}, err
	}
	if in.RequesterID == initiatorID {
		return domain.ProductRequest{}, domain.ErrSelfRequest
	}
	initiator, err := s.repo.GetShopkeeper(ctx, initiatorID)
	if err != nil {
		return domain.ProductRequest{}, err
	}

	now := s.clock.Now()
	req := domain.ProductRequest{
		ID:          newID(),
		ProductID:   product.ID,
		InitiatorID: initiatorID,
		RequesterID: requester.ID,
		Quantity:    in.Quantity,
		Status:      domain.RequestStatusPending,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,

		ProductName:       product.Name,
		InitiatorShopName: initiator.ShopName,
		RequesterShopName: requester.ShopName,
	}
	if err := s.repo.CreateRequest(ctx, req); err != nil {
		return domain.ProductRequest{}, err
	}

	s.events.Publish(ctx, domain.RequestCreated{Request: req})
	return req, nil
}

// UpdateStatus transitions a pending request to ACCEPTED or REJECTED. Only
// the requester may call it. Acceptance re-checks stock under lock and moves
// it in a single transaction: the initiator's product is decremented, the
// requester's matching product is incremented (or cloned when none exists),
// the status flips and a transfer record is written, all or nothing.
func (s *RequestService) UpdateStatus(ctx context.Context, requestID, actorID string, status domain.RequestStatus) (domain.ProductRequest, error) {
	if status != domain.RequestStatusAccepted && status != domain.RequestStatusRejected {
		return domain.ProductRequest{}, domain.ErrInvalidStatus
	}

	req, err := s.repo.GetRequest(ctx, requestID)
	if err != nil {
		return domain.ProductRequest{}, err
	}
	if req.RequesterID != actorID {
		return domain.ProductRequest{}, domain.ErrForbidden
	}
	if req.Status != domain.RequestStatusPending {
		return domain.ProductRequest{}, fmt.Errorf("%w: already %s", domain.ErrRequestNotPending, req.Status)
	}

	now := s.clock.Now()

	if status == domain.RequestStatusRejected {
		if err := s.repo.UpdateRequestStatus(ctx, req.ID, domain.RequestStatusRejected, now); err != nil {
			return domain.ProductRequest{}, err
		}
		req.Status = domain.RequestStatusRejected
		req.UpdatedAt = now
		s.events.Publish(ctx, domain.RequestRejected{Request: req})
		return req, nil
	}

	err = s.repo.WithTx(ctx, func(txCtx context.Context) error {
		locked, err := s.repo.GetRequestForUpdate(txCtx, req.ID)
		if err != nil {
			return err
		}
		if locked.Status != domain.RequestStatusPending {
			return fmt.Errorf("%w: already %s", domain.ErrRequestNotPending, locked.Status)
		}

		product, err := s.repo.GetProductForUpdate(txCtx, locked.ProductID)
		if err != nil {
			return err
		}
		if product.Quantity < locked.Quantity {
			return domain.ErrInsufficientStock
		}

		if err := s.repo.AdjustProductQuantity(txCtx, product.ID, -locked.Quantity, now); err != nil {
			return err
		}

		existing, err := s.merge.MatchExisting(txCtx, product, locked.RequesterID)
		if err != nil {
			return err
		}
		if existing != nil {
			if err := s.repo.AdjustProductQuantity(txCtx, existing.ID, locked.Quantity, now); err != nil {
				return err
			}
		} else {
			clone := domain.Product{
				ID:           newID(),
				ShopkeeperID: locked.RequesterID,
				Name:         product.Name,
				Description:  product.Description,
				Price:        product.Price,
				Quantity:     locked.Quantity,
				ImageURL:     product.ImageURL,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if err := s.repo.CreateProduct(txCtx, clone); err != nil {
				return err
			}
		}

		if err := s.repo.UpdateRequestStatus(txCtx, locked.ID, domain.RequestStatusAccepted, now); err != nil {
			return err
		}
		return s.repo.CreateTransferRecord(txCtx, domain.TransferRecord{
			ID:                    newID(),
			ProductID:             locked.ProductID,
			InitiatorShopkeeperID: locked.InitiatorID,
			ReceiverShopkeeperID:  locked.RequesterID,
			QuantityTransferred:   locked.Quantity,
			RequestID:             locked.ID,
			CreatedAt:             now,
		})
	})
	if err != nil {
		return domain.ProductRequest{}, err
	}

	req.Status = domain.RequestStatusAccepted
	req.UpdatedAt = now
	s.events.Publish(ctx, domain.RequestAccepted{Request: req})
	return req, nil
}

// Remove cancels a still-pending request. Only the initiator may do this; the
// record is deleted outright, no transfer record is written.
func (s *RequestService) Remove(ctx context.Context, requestID, actorID string) error {
	req, err := s.repo.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if req.InitiatorID != actorID || req.Status != domain.RequestStatusPending {
		return domain.ErrForbidden
	}
	if err := s.repo.DeleteRequest(ctx, req.ID); err != nil {
		return err
	}
	s.events.Publish(ctx, domain.RequestCancelled{Request: req})
	return nil
}

// ListForShopkeeper returns every request the shopkeeper participates in,
// newest first. Callers partition into outgoing and incoming by comparing
// their own id against InitiatorID.
func (s *RequestService) ListForShopkeeper(ctx context.Context, shopkeeperID string) ([]domain.ProductRequest, error) {
	return s.repo.ListRequestsForShopkeeper(ctx, shopkeeperID)
}

// Get returns a single request, but only to its initiator or requester.
// Anyone else gets ErrRequestNotFound rather than ErrForbidden so the
// request's existence is not leaked.
func (s *RequestService) Get(ctx context.Context, requestID, shopkeeperID string) (domain.ProductRequest, error) {
	return s.repo.FindRequestForShopkeeper(ctx, requestID, shopkeeperID)
}
