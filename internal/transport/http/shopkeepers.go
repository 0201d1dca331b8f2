package http

import (
	"context"
	"net/http"

	"github.com/shrutigoyal04/V-Market/internal/domain"
)

// ShopkeeperDirectory lists the shops a caller can browse and send
// transfer requests to.
type ShopkeeperDirectory interface {
	List(ctx context.Context) ([]domain.Shopkeeper, error)
	Get(ctx context.Context, id string) (domain.Shopkeeper, error)
}

func HandleListShopkeepers(svc ShopkeeperDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		keepers, err := svc.List(r.Context())
		if err != nil {
			writeDomainError(w, err)
			return
		}

		views := make([]shopkeeperView, 0, len(keepers))
		for _, k := range keepers {
			views = append(views, toShopkeeperView(k))
		}
		writeJSON(w, http.StatusOK, views)
	}
}

func HandleGetShopkeeper(svc ShopkeeperDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		keeper, err := svc.Get(r.Context(), r.PathValue("id"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toShopkeeperView(keeper))
	}
}
