package app

import (
	"context"
	"time"

	"github.com/shrutigoyal04/V-Market/internal/clock"
	"github.com/shrutigoyal04/V-Market/internal/domain"
)

type NotificationRepository interface {
	CreateNotification(ctx context.Context, n domain.Notification) error
	ListNotificationsForReceiver(ctx context.Context, receiverID string, isRead *bool) ([]domain.Notification, error)
	GetNotificationForReceiver(ctx context.Context, id, receiverID string) (domain.Notification, error)
	MarkNotificationRead(ctx context.Context, id, receiverID string, updatedAt time.Time) (domain.Notification, error)
	MarkAllNotificationsRead(ctx context.Context, receiverID string, updatedAt time.Time) (int64, error)
	DeleteNotification(ctx context.Context, id, receiverID string) error
	DeleteExpiredNotifications(ctx context.Context, before time.Time) (int64, error)
}

// Broadcaster is the push channel addressed by shopkeeper id. Delivery is
// best-effort; a shopkeeper without a live connection simply misses the push
// and reads the persisted notification later.
type Broadcaster interface {
	Publish(shopkeeperID, event string, payload any)
}

// NotificationService persists notifications and mirrors every change onto
// the receiver's push channel.
type NotificationService struct {
	repo  NotificationRepository
	push  Broadcaster
	clock clock.Clock
}

func NewNotificationService(repo NotificationRepository, push Broadcaster, clk clock.Clock) *NotificationService {
	return &NotificationService{repo: repo, push: push, clock: clk}
}

type CreateNotificationInput struct {
	SenderID        string
	ReceiverID      string
	Type            domain.NotificationType
	Message         string
	RelatedEntityID string
	Link            string
	ExpiresAt       *time.Time
}

func (s *NotificationService) Create(ctx context.Context, in CreateNotificationInput) (domain.Notification, error) {
	now := s.clock.Now()
	n := domain.Notification{
		ID:              newID(),
		Type:            in.Type,
		Message:         in.Message,
		Link:            in.Link,
		IsRead:          false,
		SenderID:        in.SenderID,
		ReceiverID:      in.ReceiverID,
		RelatedEntityID: in.RelatedEntityID,
		ExpiresAt:       in.ExpiresAt,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.CreateNotification(ctx, n); err != nil {
		return domain.Notification{}, err
	}
	s.push.Publish(in.ReceiverID, "notification.new", n)
	return n, nil
}

// ListForShopkeeper returns the shopkeeper's notifications, newest first,
// optionally filtered by read state.
func (s *NotificationService) ListForShopkeeper(ctx context.Context, shopkeeperID string, isRead *bool) ([]domain.Notification, error) {
	return s.repo.ListNotificationsForReceiver(ctx, shopkeeperID, isRead)
}

func (s *NotificationService) MarkRead(ctx context.Context, id, shopkeeperID string) (domain.Notification, error) {
	n, err := s.repo.MarkNotificationRead(ctx, id, shopkeeperID, s.clock.Now())
	if err != nil {
		return domain.Notification{}, err
	}
	s.push.Publish(shopkeeperID, "notification.updated", n)
	return n, nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, shopkeeperID string) (int64, error) {
	affected, err := s.repo.MarkAllNotificationsRead(ctx, shopkeeperID, s.clock.Now())
	if err != nil {
		return 0, err
	}
	if affected > 0 {
		s.push.Publish(shopkeeperID, "notification.all-read", map[string]any{"count": affected})
	}
	return affected, nil
}

func (s *NotificationService) Delete(ctx context.Context, id, shopkeeperID string) error {
	if err := s.repo.DeleteNotification(ctx, id, shopkeeperID); err != nil {
		return err
	}
	s.push.Publish(shopkeeperID, "notification.deleted", map[string]string{"id": id})
	return nil
}

// CleanupExpired removes notifications whose expiry has passed.
func (s *NotificationService) CleanupExpired(ctx context.Context) (int64, error) {
	return s.repo.DeleteExpiredNotifications(ctx, s.clock.Now())
}
