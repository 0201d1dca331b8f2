package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/shrutigoyal04/V-Market/internal/push"
)

// RouterConfig carries everything the HTTP surface depends on.
type RouterConfig struct {
	Auth          Authenticator
	Shopkeepers   ShopkeeperDirectory
	Products      ProductCatalog
	Requests      RequestLedger
	History       TransferHistory
	Notifications NotificationStore
	Hub           *push.Hub
	JWTSecret     string
	CORSOrigins   []string
	Logger        *zap.Logger
}

// NewRouter wires every route. Registration and login are public; everything
// else sits behind bearer auth.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", HealthHandler)
	mux.Handle("POST /auth/register", HandleRegister(cfg.Auth))
	mux.Handle("POST /auth/login", HandleLogin(cfg.Auth))

	authed := http.NewServeMux()
	authed.Handle("GET /auth/profile", HandleProfile(cfg.Auth))

	authed.Handle("GET /shopkeepers", HandleListShopkeepers(cfg.Shopkeepers))
	authed.Handle("GET /shopkeepers/{id}", HandleGetShopkeeper(cfg.Shopkeepers))

	authed.Handle("POST /products", HandleCreateProduct(cfg.Products))
	authed.Handle("GET /products", HandleListProducts(cfg.Products, false))
	authed.Handle("GET /products/mine", HandleListProducts(cfg.Products, true))
	authed.Handle("GET /products/{id}", HandleGetProduct(cfg.Products))
	authed.Handle("PUT /products/{id}", HandleUpdateProduct(cfg.Products))
	authed.Handle("DELETE /products/{id}", HandleDeleteProduct(cfg.Products))

	authed.Handle("POST /requests", HandleCreateExportRequest(cfg.Requests))
	authed.Handle("GET /requests", HandleListRequests(cfg.Requests))
	authed.Handle("GET /requests/{id}", HandleGetRequest(cfg.Requests))
	authed.Handle("PATCH /requests/{id}/status", HandleUpdateRequestStatus(cfg.Requests))
	authed.Handle("DELETE /requests/{id}", HandleCancelRequest(cfg.Requests))

	authed.Handle("GET /history", HandleListTransferHistory(cfg.History))
	authed.Handle("GET /history/{id}", HandleGetTransferRecord(cfg.History))

	authed.Handle("GET /notifications", HandleListNotifications(cfg.Notifications))
	authed.Handle("PATCH /notifications/read-all", HandleMarkAllNotificationsRead(cfg.Notifications))
	authed.Handle("PATCH /notifications/{id}/read", HandleMarkNotificationRead(cfg.Notifications))
	authed.Handle("DELETE /notifications/{id}", HandleDeleteNotification(cfg.Notifications))

	authed.Handle("GET /events", HandleEventStream(cfg.Hub))

	mux.Handle("/auth/profile", RequireAuth(cfg.JWTSecret, authed))
	mux.Handle("/shopkeepers", RequireAuth(cfg.JWTSecret, authed))
	mux.Handle("/shopkeepers/", RequireAuth(cfg.JWTSecret, authed))
	mux.Handle("/products", RequireAuth(cfg.JWTSecret, authed))
	mux.Handle("/products/", RequireAuth(cfg.JWTSecret, authed))
	mux.Handle("/requests", RequireAuth(cfg.JWTSecret, authed))
	mux.Handle("/requests/", RequireAuth(cfg.JWTSecret, authed))
	mux.Handle("/history", RequireAuth(cfg.JWTSecret, authed))
	mux.Handle("/history/", RequireAuth(cfg.JWTSecret, authed))
	mux.Handle("/notifications", RequireAuth(cfg.JWTSecret, authed))
	mux.Handle("/notifications/", RequireAuth(cfg.JWTSecret, authed))
	mux.Handle("/events", RequireAuth(cfg.JWTSecret, authed))
	mux.Handle("/", NotFoundHandler())

	return RequestLogger(CORS(cfg.CORSOrigins, mux), cfg.Logger)
}
