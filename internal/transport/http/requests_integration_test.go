package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shrutigoyal04/V-Market/internal/app"
	"github.com/shrutigoyal04/V-Market/internal/clock"
	"github.com/shrutigoyal04/V-Market/internal/domain"
	"github.com/shrutigoyal04/V-Market/internal/push"
	"github.com/shrutigoyal04/V-Market/internal/storage/postgres"
	"github.com/shrutigoyal04/V-Market/internal/testutil"
)

func TestTransferRequestFlow_HTTPIntegration(t *testing.T) {
	pool := testutil.NewTestPool(t)
	testutil.ApplyMigrations(t, context.Background(), pool)

	now := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)
	hub := push.NewHub()
	notificationSvc := app.NewNotificationService(postgres.NewNotificationRepository(pool), hub, clock.NewFixed(now))
	notifier := app.NewNotifier(notificationSvc, hub, nil)
	requestSvc := app.NewRequestService(postgres.NewRequestRepository(pool), clock.NewFixed(now), notifier)

	ctx := context.Background()
	testutil.TruncateAll(t, ctx, pool)
	initiatorID := testutil.InsertShopkeeper(t, ctx, pool, "a@example.com", "Shop A")
	requesterID := testutil.InsertShopkeeper(t, ctx, pool, "b@example.com", "Shop B")
	productID := testutil.InsertProduct(t, ctx, pool, initiatorID, "Tea", 10)

	requesterEvents, cancelSub := hub.Subscribe(requesterID)
	defer cancelSub()

	// Initiator offers 4 units to the requester.
	body := `{"productId":"` + productID + `","requesterId":"` + requesterID + `","quantity":4}`
	req := authedRequest(http.MethodPost, "/requests", body, initiatorID)
	rec := httptest.NewRecorder()
	HandleCreateExportRequest(requestSvc).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created requestView
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.Status != string(domain.RequestStatusPending) {
		t.Fatalf("expected PENDING, got %s", created.Status)
	}

	// The requester got a persisted notification and a push event.
	notifications, err := notificationSvc.ListForShopkeeper(ctx, requesterID, nil)
	if err != nil {
		t.Fatalf("list notifications: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifications))
	}
	if notifications[0].Type != domain.NotificationRequestSent {
		t.Fatalf("expected PRODUCT_REQUEST_SENT, got %s", notifications[0].Type)
	}
	select {
	case ev := <-requesterEvents:
		if ev.Name != "notification.new" {
			t.Fatalf("expected notification.new push, got %s", ev.Name)
		}
	default:
		t.Fatalf("expected a push event for the requester")
	}

	// Requester accepts; stock moves atomically.
	acceptReq := authedRequest(http.MethodPatch, "/requests/"+created.ID+"/status", `{"status":"ACCEPTED"}`, requesterID)
	acceptReq.SetPathValue("id", created.ID)
	acceptRec := httptest.NewRecorder()
	HandleUpdateRequestStatus(requestSvc).ServeHTTP(acceptRec, acceptReq)

	if acceptRec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", acceptRec.Code, acceptRec.Body.String())
	}

	var initiatorStock int
	if err := pool.QueryRow(ctx, `SELECT quantity FROM products WHERE id = $1`, productID).Scan(&initiatorStock); err != nil {
		t.Fatalf("query initiator stock: %v", err)
	}
	if initiatorStock != 6 {
		t.Fatalf("expected initiator stock 6, got %d", initiatorStock)
	}

	var requesterStock int
	if err := pool.QueryRow(ctx,
		`SELECT quantity FROM products WHERE shopkeeper_id = $1 AND name = 'Tea'`, requesterID,
	).Scan(&requesterStock); err != nil {
		t.Fatalf("query requester stock: %v", err)
	}
	if requesterStock != 4 {
		t.Fatalf("expected requester stock 4, got %d", requesterStock)
	}

	var transfers int
	if err := pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM product_transfer_history WHERE request_id = $1`, created.ID,
	).Scan(&transfers); err != nil {
		t.Fatalf("query transfers: %v", err)
	}
	if transfers != 1 {
		t.Fatalf("expected 1 transfer record, got %d", transfers)
	}

	// A second accept must conflict.
	retryReq := authedRequest(http.MethodPatch, "/requests/"+created.ID+"/status", `{"status":"ACCEPTED"}`, requesterID)
	retryReq.SetPathValue("id", created.ID)
	retryRec := httptest.NewRecorder()
	HandleUpdateRequestStatus(requestSvc).ServeHTTP(retryRec, retryReq)

	if retryRec.Code != http.StatusConflict {
		t.Fatalf("expected status 409 on repeat accept, got %d", retryRec.Code)
	}

	// The initiator was told about the acceptance.
	initiatorNotifications, err := notificationSvc.ListForShopkeeper(ctx, initiatorID, nil)
	if err != nil {
		t.Fatalf("list initiator notifications: %v", err)
	}
	if len(initiatorNotifications) != 1 {
		t.Fatalf("expected 1 notification for initiator, got %d", len(initiatorNotifications))
	}
	if initiatorNotifications[0].Type != domain.NotificationRequestAccepted {
		t.Fatalf("expected PRODUCT_REQUEST_ACCEPTED, got %s", initiatorNotifications[0].Type)
	}
}

func TestCancelRequestFlow_HTTPIntegration(t *testing.T) {
	pool := testutil.NewTestPool(t)
	testutil.ApplyMigrations(t, context.Background(), pool)

	now := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)
	requestSvc := app.NewRequestService(postgres.NewRequestRepository(pool), clock.NewFixed(now), nil)

	ctx := context.Background()
	testutil.TruncateAll(t, ctx, pool)
	initiatorID := testutil.InsertShopkeeper(t, ctx, pool, "a@example.com", "Shop A")
	requesterID := testutil.InsertShopkeeper(t, ctx, pool, "b@example.com", "Shop B")
	productID := testutil.InsertProduct(t, ctx, pool, initiatorID, "Tea", 10)

	reqID := testutil.InsertRequest(t, ctx, pool, domain.ProductRequest{
		ProductID:   productID,
		InitiatorID: initiatorID,
		RequesterID: requesterID,
		Quantity:    4,
		Status:      domain.RequestStatusPending,
	})

	// The requester cannot cancel.
	forbidden := authedRequest(http.MethodDelete, "/requests/"+reqID, "", requesterID)
	forbidden.SetPathValue("id", reqID)
	forbiddenRec := httptest.NewRecorder()
	HandleCancelRequest(requestSvc).ServeHTTP(forbiddenRec, forbidden)
	if forbiddenRec.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", forbiddenRec.Code)
	}

	// The initiator can.
	cancelReq := authedRequest(http.MethodDelete, "/requests/"+reqID, "", initiatorID)
	cancelReq.SetPathValue("id", reqID)
	cancelRec := httptest.NewRecorder()
	HandleCancelRequest(requestSvc).ServeHTTP(cancelRec, cancelReq)
	if cancelRec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", cancelRec.Code)
	}

	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM product_requests WHERE id = $1`, reqID).Scan(&count); err != nil {
		t.Fatalf("query requests: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected request deleted, found %d rows", count)
	}
}
