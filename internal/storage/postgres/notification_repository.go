package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shrutigoyal04/V-Market/internal/domain"
)

type NotificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

const notificationColumns = `
id, type, message, COALESCE(link, ''), is_read, COALESCE(sender_id::text, ''), receiver_id,
COALESCE(related_entity_id::text, ''), expires_at, created_at, updated_at`

func scanNotification(row pgx.Row) (domain.Notification, error) {
	var n domain.Notification
	err := row.Scan(
		&n.ID, &n.Type, &n.Message, &n.Link, &n.IsRead, &n.SenderID, &n.ReceiverID,
		&n.RelatedEntityID, &n.ExpiresAt, &n.CreatedAt, &n.UpdatedAt,
	)
	return n, err
}

func (r *NotificationRepository) CreateNotification(ctx context.Context, n domain.Notification) error {
	const stmt = `
INSERT INTO notifications (id, type, message, link, is_read, sender_id, receiver_id, related_entity_id, expires_at, created_at, updated_at)
VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, '')::uuid, $7, NULLIF($8, '')::uuid, $9, $10, $11)`

	_, err := db(ctx, r.pool).Exec(ctx, stmt,
		n.ID, n.Type, n.Message, n.Link, n.IsRead, n.SenderID, n.ReceiverID,
		n.RelatedEntityID, n.ExpiresAt, n.CreatedAt, n.UpdatedAt,
	)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}

func (r *NotificationRepository) ListNotificationsForReceiver(ctx context.Context, receiverID string, isRead *bool) ([]domain.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE receiver_id = $1`
	args := []any{receiverID}
	if isRead != nil {
		query += ` AND is_read = $2`
		args = append(args, *isRead)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var out []domain.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *NotificationRepository) GetNotificationForReceiver(ctx context.Context, id, receiverID string) (domain.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE id = $1 AND receiver_id = $2`
	n, err := scanNotification(db(ctx, r.pool).QueryRow(ctx, query, id, receiverID))
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Notification{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Notification{}, domain.ErrNotificationNotFound
		}
		return domain.Notification{}, fmt.Errorf("get notification: %w", err)
	}
	return n, nil
}

func (r *NotificationRepository) MarkNotificationRead(ctx context.Context, id, receiverID string, updatedAt time.Time) (domain.Notification, error) {
	query := `
UPDATE notifications SET is_read = TRUE, updated_at = $3
WHERE id = $1 AND receiver_id = $2
RETURNING ` + notificationColumns

	n, err := scanNotification(db(ctx, r.pool).QueryRow(ctx, query, id, receiverID, updatedAt))
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Notification{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Notification{}, domain.ErrNotificationNotFound
		}
		return domain.Notification{}, fmt.Errorf("mark notification read: %w", err)
	}
	return n, nil
}

func (r *NotificationRepository) MarkAllNotificationsRead(ctx context.Context, receiverID string, updatedAt time.Time) (int64, error) {
	const stmt = `UPDATE notifications SET is_read = TRUE, updated_at = $2 WHERE receiver_id = $1 AND is_read = FALSE`
	tag, err := db(ctx, r.pool).Exec(ctx, stmt, receiverID, updatedAt)
	if err != nil {
		if isInvalidUUID(err) {
			return 0, domain.ErrInvalidID
		}
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *NotificationRepository) DeleteNotification(ctx context.Context, id, receiverID string) error {
	tag, err := db(ctx, r.pool).Exec(ctx, `DELETE FROM notifications WHERE id = $1 AND receiver_id = $2`, id, receiverID)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("delete notification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepository) DeleteExpiredNotifications(ctx context.Context, before time.Time) (int64, error) {
	tag, err := db(ctx, r.pool).Exec(ctx, `DELETE FROM notifications WHERE expires_at IS NOT NULL AND expires_at < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("delete expired notifications: %w", err)
	}
	return tag.RowsAffected(), nil
}
