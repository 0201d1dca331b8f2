package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/shrutigoyal04/V-Market/internal/app"
	"github.com/shrutigoyal04/V-Market/internal/domain"
)

// ProductCatalog is the slice of ProductService the catalog handlers need.
type ProductCatalog interface {
	Create(ctx context.Context, ownerID string, in app.ProductInput) (domain.Product, error)
	List(ctx context.Context, ownerID string) ([]domain.Product, error)
	Get(ctx context.Context, id string) (domain.Product, error)
	Update(ctx context.Context, id, ownerID string, in app.ProductInput) (domain.Product, error)
	Delete(ctx context.Context, id, ownerID string) error
}

type productBody struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    *int            `json:"quantity"`
	ImageURL    string          `json:"imageUrl"`
}

func (b productBody) toInput() app.ProductInput {
	in := app.ProductInput{
		Name:        b.Name,
		Description: b.Description,
		Price:       b.Price,
		ImageURL:    b.ImageURL,
	}
	if b.Quantity != nil {
		in.Quantity = *b.Quantity
	}
	return in
}

func HandleCreateProduct(svc ProductCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body productBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidBody, "invalid request body")
			return
		}
		if body.Name == "" || body.Quantity == nil {
			writeError(w, http.StatusBadRequest, codeInvalidBody, "name and quantity are required")
			return
		}

		p, err := svc.Create(r.Context(), shopkeeperID(r), body.toInput())
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toProductView(p))
	}
}

// HandleListProducts serves the full marketplace catalog, or a single
// shop's stock when ?shopkeeperId= is given. GET /products/mine is routed
// here with mine=true to list the caller's own products.
func HandleListProducts(svc ProductCatalog, mine bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID := r.URL.Query().Get("shopkeeperId")
		if mine {
			ownerID = shopkeeperID(r)
		}

		products, err := svc.List(r.Context(), ownerID)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		views := make([]productView, 0, len(products))
		for _, p := range products {
			views = append(views, toProductView(p))
		}
		writeJSON(w, http.StatusOK, views)
	}
}

func HandleGetProduct(svc ProductCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Get(r.Context(), r.PathValue("id"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toProductView(p))
	}
}

func HandleUpdateProduct(svc ProductCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body productBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidBody, "invalid request body")
			return
		}
		if body.Name == "" || body.Quantity == nil {
			writeError(w, http.StatusBadRequest, codeInvalidBody, "name and quantity are required")
			return
		}

		p, err := svc.Update(r.Context(), r.PathValue("id"), shopkeeperID(r), body.toInput())
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toProductView(p))
	}
}

func HandleDeleteProduct(svc ProductCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), r.PathValue("id"), shopkeeperID(r)); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
