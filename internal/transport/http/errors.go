package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shrutigoyal04/V-Market/internal/domain"
)

const (
	codeMethodNotAllowed  = "method_not_allowed"
	codeNotFound          = "not_found"
	codeInvalidBody       = "invalid_request_body"
	codeInvalidQuantity   = "invalid_quantity"
	codeInvalidID         = "invalid_id"
	codeSelfRequest       = "self_request"
	codeExceedsStock      = "exceeds_available_stock"
	codeInsufficientStock = "insufficient_stock"
	codeRequestNotPending = "request_not_pending"
	codeInvalidStatus     = "invalid_status"
	codeForbidden         = "forbidden"
	codeUnauthorized      = "unauthorized"
	codeEmailTaken        = "email_taken"
	codeInternalError     = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{Error: msg, Code: code})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

// writeDomainError maps the service error taxonomy onto HTTP statuses:
// not-found 404, bad input 400, forbidden 403, state conflicts 409.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrShopkeeperNotFound),
		errors.Is(err, domain.ErrRequestNotFound),
		errors.Is(err, domain.ErrTransferNotFound),
		errors.Is(err, domain.ErrNotificationNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidQuantity):
		writeError(w, http.StatusBadRequest, codeInvalidQuantity, err.Error())
	case errors.Is(err, domain.ErrSelfRequest):
		writeError(w, http.StatusBadRequest, codeSelfRequest, err.Error())
	case errors.Is(err, domain.ErrExceedsStock):
		writeError(w, http.StatusBadRequest, codeExceedsStock, err.Error())
	case errors.Is(err, domain.ErrInvalidID):
		writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
	case errors.Is(err, domain.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, codeInvalidStatus, err.Error())
	case errors.Is(err, domain.ErrEmailTaken):
		writeError(w, http.StatusBadRequest, codeEmailTaken, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, codeForbidden, err.Error())
	case errors.Is(err, domain.ErrRequestNotPending):
		writeError(w, http.StatusConflict, codeRequestNotPending, err.Error())
	case errors.Is(err, domain.ErrInsufficientStock):
		writeError(w, http.StatusConflict, codeInsufficientStock, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, codeUnauthorized, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}
