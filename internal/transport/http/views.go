package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shrutigoyal04/V-Market/internal/domain"
)

// JSON views shared across handlers.

type requestView struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productId"`
	InitiatorID string    `json:"initiatorId"`
	RequesterID string    `json:"requesterId"`
	Quantity    int       `json:"quantity"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	ProductName       string `json:"productName"`
	InitiatorShopName string `json:"initiatorShopName"`
	RequesterShopName string `json:"requesterShopName"`
}

func toRequestView(req domain.ProductRequest) requestView {
	return requestView{
		ID:          req.ID,
		ProductID:   req.ProductID,
		InitiatorID: req.InitiatorID,
		RequesterID: req.RequesterID,
		Quantity:    req.Quantity,
		Status:      string(req.Status),
		Notes:       req.Notes,
		CreatedAt:   req.CreatedAt,
		UpdatedAt:   req.UpdatedAt,

		ProductName:       req.ProductName,
		InitiatorShopName: req.InitiatorShopName,
		RequesterShopName: req.RequesterShopName,
	}
}

func toRequestViews(reqs []domain.ProductRequest) []requestView {
	out := make([]requestView, 0, len(reqs))
	for _, req := range reqs {
		out = append(out, toRequestView(req))
	}
	return out
}

type productView struct {
	ID           string          `json:"id"`
	ShopkeeperID string          `json:"shopkeeperId"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	ImageURL     string          `json:"imageUrl,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func toProductView(p domain.Product) productView {
	return productView{
		ID:           p.ID,
		ShopkeeperID: p.ShopkeeperID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Quantity:     p.Quantity,
		ImageURL:     p.ImageURL,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

type shopkeeperView struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	ShopName string `json:"shopName"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

func toShopkeeperView(s domain.Shopkeeper) shopkeeperView {
	return shopkeeperView{
		ID:       s.ID,
		Email:    s.Email,
		ShopName: s.ShopName,
		Address:  s.Address,
		Phone:    s.Phone,
	}
}

type transferView struct {
	ID                    string    `json:"id"`
	ProductID             string    `json:"productId"`
	InitiatorShopkeeperID string    `json:"initiatorShopkeeperId"`
	ReceiverShopkeeperID  string    `json:"receiverShopkeeperId"`
	QuantityTransferred   int       `json:"quantityTransferred"`
	RequestID             string    `json:"requestId,omitempty"`
	Notes                 string    `json:"notes,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`

	ProductName       string `json:"productName"`
	InitiatorShopName string `json:"initiatorShopName"`
	ReceiverShopName  string `json:"receiverShopName"`
}

func toTransferView(rec domain.TransferRecord) transferView {
	return transferView{
		ID:                    rec.ID,
		ProductID:             rec.ProductID,
		InitiatorShopkeeperID: rec.InitiatorShopkeeperID,
		ReceiverShopkeeperID:  rec.ReceiverShopkeeperID,
		QuantityTransferred:   rec.QuantityTransferred,
		RequestID:             rec.RequestID,
		Notes:                 rec.Notes,
		CreatedAt:             rec.CreatedAt,

		ProductName:       rec.ProductName,
		InitiatorShopName: rec.InitiatorShopName,
		ReceiverShopName:  rec.ReceiverShopName,
	}
}

type notificationView struct {
	ID              string     `json:"id"`
	Type            string     `json:"type"`
	Message         string     `json:"message"`
	Link            string     `json:"link,omitempty"`
	IsRead          bool       `json:"isRead"`
	SenderID        string     `json:"senderId,omitempty"`
	ReceiverID      string     `json:"receiverId"`
	RelatedEntityID string     `json:"relatedEntityId,omitempty"`
	ExpiresAt       *time.Time `json:"expiresAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

func toNotificationView(n domain.Notification) notificationView {
	return notificationView{
		ID:              n.ID,
		Type:            string(n.Type),
		Message:         n.Message,
		Link:            n.Link,
		IsRead:          n.IsRead,
		SenderID:        n.SenderID,
		ReceiverID:      n.ReceiverID,
		RelatedEntityID: n.RelatedEntityID,
		ExpiresAt:       n.ExpiresAt,
		CreatedAt:       n.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
