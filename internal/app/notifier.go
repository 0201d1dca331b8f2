package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shrutigoyal04/V-Market/internal/domain"
)

// Notifier listens to ledger events and fans them out as notifications and
// push events. It runs after the originating transaction has committed, so
// failures here are logged and swallowed, never surfaced to the ledger
// caller.
//
// Rejection and cancellation are intentionally silent, matching current
// product behavior; their event types exist so turning them on is a local
// change.
type Notifier struct {
	notifications *NotificationService
	push          Broadcaster
	logger        *zap.Logger
}

func NewNotifier(notifications *NotificationService, push Broadcaster, logger *zap.Logger) *Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notifier{notifications: notifications, push: push, logger: logger}
}

func (n *Notifier) Publish(ctx context.Context, event any) {
	switch e := event.(type) {
	case domain.RequestCreated:
		n.requestSent(ctx, e.Request)
	case domain.RequestAccepted:
		n.requestAccepted(ctx, e.Request)
	case domain.RequestRejected, domain.RequestCancelled:
		// Silent, see type comment.
	default:
		n.logger.Warn("unknown ledger event", zap.Any("event", event))
	}
}

func (n *Notifier) requestSent(ctx context.Context, req domain.ProductRequest) {
	msg := fmt.Sprintf("New product transfer request for %q from %q for quantity %d.",
		req.ProductName, req.InitiatorShopName, req.Quantity)

	_, err := n.notifications.Create(ctx, CreateNotificationInput{
		SenderID:        req.InitiatorID,
		ReceiverID:      req.RequesterID,
		Type:            domain.NotificationRequestSent,
		Message:         msg,
		RelatedEntityID: req.ID,
		Link:            requestLink(req.ID),
	})
	if err != nil {
		n.logger.Error("notify request sent", zap.String("request_id", req.ID), zap.Error(err))
	}
}

func (n *Notifier) requestAccepted(ctx context.Context, req domain.ProductRequest) {
	msg := fmt.Sprintf("Your product transfer request for %q (qty: %d) was ACCEPTED by %q.",
		req.ProductName, req.Quantity, req.RequesterShopName)

	_, err := n.notifications.Create(ctx, CreateNotificationInput{
		SenderID:        req.RequesterID,
		ReceiverID:      req.InitiatorID,
		Type:            domain.NotificationRequestAccepted,
		Message:         msg,
		RelatedEntityID: req.ID,
		Link:            requestLink(req.ID),
	})
	if err != nil {
		n.logger.Error("notify request accepted", zap.String("request_id", req.ID), zap.Error(err))
	}

	n.push.Publish(req.RequesterID, "productRequest.updated", map[string]any{
		"requestId":      req.ID,
		"status":         string(req.Status),
		"updatedRequest": req,
	})
}

func requestLink(requestID string) string {
	return "/requests?requestId=" + requestID
}
