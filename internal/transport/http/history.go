package http

import (
	"context"
	"net/http"

	"github.com/shrutigoyal04/V-Market/internal/domain"
)

// TransferHistory is the slice of HistoryService the history handlers need.
type TransferHistory interface {
	ListForShopkeeper(ctx context.Context, shopkeeperID string) ([]domain.TransferRecord, error)
	Get(ctx context.Context, id, shopkeeperID string) (domain.TransferRecord, error)
}

// HandleListTransferHistory returns the caller's sent and received transfers.
func HandleListTransferHistory(svc TransferHistory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recs, err := svc.ListForShopkeeper(r.Context(), shopkeeperID(r))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		views := make([]transferView, 0, len(recs))
		for _, rec := range recs {
			views = append(views, toTransferView(rec))
		}
		writeJSON(w, http.StatusOK, views)
	}
}

// HandleGetTransferRecord returns one transfer record to its sender or
// receiver.
func HandleGetTransferRecord(svc TransferHistory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.Get(r.Context(), r.PathValue("id"), shopkeeperID(r))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toTransferView(rec))
	}
}
