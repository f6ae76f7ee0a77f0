package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fahrtenbuch/backend/internal/pkg/models"
	natspkg "github.com/fahrtenbuch/backend/internal/pkg/nats"
	"github.com/fahrtenbuch/backend/services/billing"
	httpHandler "github.com/fahrtenbuch/backend/services/billing/handler/http"
	natsHandler "github.com/fahrtenbuch/backend/services/billing/handler/nats"
)

// Handler combines all handlers for the billing service
type Handler struct {
	billingHTTP *httpHandler.BillingHandler
	consumer    *natsHandler.Consumer
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(billingUC billing.BillingUC, natsClient *natspkg.Client, cfg *models.Config) *Handler {
	return &Handler{
		billingHTTP: httpHandler.NewBillingHandler(billingUC),
		consumer:    natsHandler.NewConsumer(billingUC, natsClient),
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, authMiddleware echo.MiddlewareFunc) {
	receiptsGroup := e.Group("/receipts", authMiddleware)
	receiptsGroup.GET("", h.billingHTTP.ListReceipts)
	receiptsGroup.POST("", h.billingHTTP.CreateReceipt)
	receiptsGroup.DELETE("/:receiptID", h.billingHTTP.DeleteReceipt)

	typesGroup := e.Group("/receipt-types", authMiddleware)
	typesGroup.GET("", h.billingHTTP.ListReceiptTypes)
	typesGroup.POST("", h.billingHTTP.CreateReceiptType)
	typesGroup.PUT("/:typeID", h.billingHTTP.UpdateReceiptType)
	typesGroup.POST("/:typeID/deactivate", h.billingHTTP.DeactivateReceiptType)
	typesGroup.DELETE("/:typeID", h.billingHTTP.DeleteReceiptType)

	costsGroup := e.Group("/costs", authMiddleware)
	costsGroup.GET("/group", h.billingHTTP.GetGroupCosts)
	costsGroup.GET("/drivers", h.billingHTTP.GetDriverCosts)
	costsGroup.GET("/account", h.billingHTTP.GetGroupAccount)

	paymentsGroup := e.Group("/payments", authMiddleware)
	paymentsGroup.POST("/checkout/success", h.billingHTTP.CheckoutSuccess)
	paymentsGroup.POST("/checkout/cancel", h.billingHTTP.CheckoutCancel)
}

// StartConsumer subscribes the cache invalidation consumer
func (h *Handler) StartConsumer() error {
	return h.consumer.Start()
}

// StopConsumer drops the subscriptions
func (h *Handler) StopConsumer() {
	h.consumer.Stop()
}
