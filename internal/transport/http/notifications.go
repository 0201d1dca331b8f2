package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/shrutigoyal04/V-Market/internal/domain"
)

// NotificationStore is the slice of NotificationService the handlers need.
type NotificationStore interface {
	ListForShopkeeper(ctx context.Context, shopkeeperID string, isRead *bool) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id, shopkeeperID string) (domain.Notification, error)
	MarkAllRead(ctx context.Context, shopkeeperID string) (int64, error)
	Delete(ctx context.Context, id, shopkeeperID string) error
}

// HandleListNotifications returns the caller's notifications, optionally
// filtered with ?isRead=true|false.
func HandleListNotifications(svc NotificationStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var isRead *bool
		if raw := r.URL.Query().Get("isRead"); raw != "" {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidBody, "isRead must be a boolean")
				return
			}
			isRead = &v
		}

		ns, err := svc.ListForShopkeeper(r.Context(), shopkeeperID(r), isRead)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		views := make([]notificationView, 0, len(ns))
		for _, n := range ns {
			views = append(views, toNotificationView(n))
		}
		writeJSON(w, http.StatusOK, views)
	}
}

func HandleMarkNotificationRead(svc NotificationStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := svc.MarkRead(r.Context(), r.PathValue("id"), shopkeeperID(r))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toNotificationView(n))
	}
}

func HandleMarkAllNotificationsRead(svc NotificationStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		affected, err := svc.MarkAllRead(r.Context(), shopkeeperID(r))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]int64{"updated": affected})
	}
}

func HandleDeleteNotification(svc NotificationStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), r.PathValue("id"), shopkeeperID(r)); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
