package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shrutigoyal04/V-Market/internal/app"
	"github.com/shrutigoyal04/V-Market/internal/domain"
)

// Authenticator is the slice of AuthService the auth handlers need.
type Authenticator interface {
	Register(ctx context.Context, in app.RegisterInput) (domain.Shopkeeper, string, error)
	Login(ctx context.Context, email, password string) (domain.Shopkeeper, string, error)
	Profile(ctx context.Context, shopkeeperID string) (domain.Shopkeeper, error)
}

type registerBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	ShopName string `json:"shopName"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
}

type authResponse struct {
	AccessToken string         `json:"access_token"`
	Shopkeeper  shopkeeperView `json:"shopkeeper"`
}

func HandleRegister(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body registerBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidBody, "invalid request body")
			return
		}
		if body.Email == "" || len(body.Password) < 6 || body.ShopName == "" {
			writeError(w, http.StatusBadRequest, codeInvalidBody, "email, shopName and a password of at least 6 characters are required")
			return
		}

		keeper, token, err := svc.Register(r.Context(), app.RegisterInput{
			Email:    body.Email,
			Password: body.Password,
			ShopName: body.ShopName,
			Address:  body.Address,
			Phone:    body.Phone,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, authResponse{AccessToken: token, Shopkeeper: toShopkeeperView(keeper)})
	}
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func HandleLogin(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body loginBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidBody, "invalid request body")
			return
		}

		keeper, token, err := svc.Login(r.Context(), body.Email, body.Password)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, authResponse{AccessToken: token, Shopkeeper: toShopkeeperView(keeper)})
	}
}

// HandleProfile returns the authenticated caller's own profile.
func HandleProfile(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		keeper, err := svc.Profile(r.Context(), shopkeeperID(r))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toShopkeeperView(keeper))
	}
}
