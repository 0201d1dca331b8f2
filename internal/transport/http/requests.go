package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shrutigoyal04/V-Market/internal/app"
	"github.com/shrutigoyal04/V-Market/internal/domain"
)

// RequestLedger is the slice of RequestService the request handlers need.
type RequestLedger interface {
	CreateExportRequest(ctx context.Context, initiatorID string, in app.CreateRequestInput) (domain.ProductRequest, error)
	UpdateStatus(ctx context.Context, requestID, actorID string, status domain.RequestStatus) (domain.ProductRequest, error)
	Remove(ctx context.Context, requestID, actorID string) error
	ListForShopkeeper(ctx context.Context, shopkeeperID string) ([]domain.ProductRequest, error)
	Get(ctx context.Context, requestID, shopkeeperID string) (domain.ProductRequest, error)
}

type createRequestBody struct {
	ProductID   string `json:"productId"`
	RequesterID string `json:"requesterId"`
	Quantity    int    `json:"quantity"`
	Notes       string `json:"notes"`
}

// HandleCreateExportRequest creates a transfer request for a product the
// caller owns.
func HandleCreateExportRequest(svc RequestLedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body createRequestBody
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidBody, "invalid request body")
			return
		}
		if body.ProductID == "" || body.RequesterID == "" {
			writeError(w, http.StatusBadRequest, codeInvalidBody, "productId and requesterId are required")
			return
		}

		req, err := svc.CreateExportRequest(r.Context(), shopkeeperID(r), app.CreateRequestInput{
			ProductID:   body.ProductID,
			RequesterID: body.RequesterID,
			Quantity:    body.Quantity,
			Notes:       body.Notes,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toRequestView(req))
	}
}

// HandleListRequests returns every request the caller participates in.
func HandleListRequests(svc RequestLedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reqs, err := svc.ListForShopkeeper(r.Context(), shopkeeperID(r))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toRequestViews(reqs))
	}
}

// HandleGetRequest returns one request, visible only to its participants.
func HandleGetRequest(svc RequestLedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := svc.Get(r.Context(), r.PathValue("id"), shopkeeperID(r))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toRequestView(req))
	}
}

type updateStatusBody struct {
	Status string `json:"status"`
}

// HandleUpdateRequestStatus lets the requester accept or reject a pending
// request.
func HandleUpdateRequestStatus(svc RequestLedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body updateStatusBody
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidBody, "invalid request body")
			return
		}

		req, err := svc.UpdateStatus(r.Context(), r.PathValue("id"), shopkeeperID(r), domain.RequestStatus(body.Status))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toRequestView(req))
	}
}

// HandleCancelRequest lets the initiator cancel a still-pending request.
func HandleCancelRequest(svc RequestLedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Remove(r.Context(), r.PathValue("id"), shopkeeperID(r)); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
