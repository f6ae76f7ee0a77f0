package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fahrtenbuch/backend/internal/pkg/logger"
	"github.com/fahrtenbuch/backend/internal/pkg/middleware"
	"github.com/fahrtenbuch/backend/internal/pkg/models"
	"github.com/fahrtenbuch/backend/internal/utils"
	"github.com/fahrtenbuch/backend/services/billing"
)

// BillingHandler handles HTTP requests for receipts, types and cost summaries
type BillingHandler struct {
	billingUC billing.BillingUC
}

// NewBillingHandler creates a new billing HTTP handler
func NewBillingHandler(billingUC billing.BillingUC) *BillingHandler {
	return &BillingHandler{billingUC: billingUC}
}

// CreateReceipt handles the create receipt request
func (h *BillingHandler) CreateReceipt(c echo.Context) error {
	session := middleware.GetSession(c)

	var req models.ReceiptRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	receipt, err := h.billingUC.CreateReceipt(c.Request().Context(), session, req)
	if err != nil {
		return billingErrorResponse(c, err, "Failed to create receipt")
	}

	logger.Info("Receipt created",
		logger.String("receipt_id", receipt.ID.String()),
		logger.Float64("amount", receipt.Amount))

	return utils.SuccessResponse(c, http.StatusCreated, "Receipt created successfully", receipt)
}

// ListReceipts returns the caller's group receipts
func (h *BillingHandler) ListReceipts(c echo.Context) error {
	session := middleware.GetSession(c)

	list, err := h.billingUC.ListReceipts(c.Request().Context(), session)
	if err != nil {
		return billingErrorResponse(c, err, "Failed to list receipts")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// DeleteReceipt removes a receipt within the allowed window
func (h *BillingHandler) DeleteReceipt(c echo.Context) error {
	session := middleware.GetSession(c)

	receiptID, err := uuid.Parse(c.Param("receiptID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid receipt ID")
	}

	if err := h.billingUC.DeleteReceipt(c.Request().Context(), session, receiptID); err != nil {
		return billingErrorResponse(c, err, "Failed to delete receipt")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Receipt deleted successfully", nil)
}

// CreateReceiptType adds a new receipt category
func (h *BillingHandler) CreateReceiptType(c echo.Context) error {
	session := middleware.GetSession(c)

	var req models.ReceiptTypeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	rt, err := h.billingUC.CreateReceiptType(c.Request().Context(), session, req)
	if err != nil {
		return billingErrorResponse(c, err, "Failed to create receipt type")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Receipt type created successfully", rt)
}

// ListReceiptTypes returns the receipt categories
func (h *BillingHandler) ListReceiptTypes(c echo.Context) error {
	session := middleware.GetSession(c)

	list, err := h.billingUC.ListReceiptTypes(c.Request().Context(), session)
	if err != nil {
		return billingErrorResponse(c, err, "Failed to list receipt types")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// UpdateReceiptType edits a receipt category
func (h *BillingHandler) UpdateReceiptType(c echo.Context) error {
	session := middleware.GetSession(c)

	typeID, err := uuid.Parse(c.Param("typeID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid receipt type ID")
	}

	var req models.ReceiptTypeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	rt, err := h.billingUC.UpdateReceiptType(c.Request().Context(), session, typeID, req)
	if err != nil {
		return billingErrorResponse(c, err, "Failed to update receipt type")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Receipt type updated successfully", rt)
}

// DeactivateReceiptType soft-deletes a receipt category
func (h *BillingHandler) DeactivateReceiptType(c echo.Context) error {
	session := middleware.GetSession(c)

	typeID, err := uuid.Parse(c.Param("typeID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid receipt type ID")
	}

	if err := h.billingUC.DeactivateReceiptType(c.Request().Context(), session, typeID); err != nil {
		return billingErrorResponse(c, err, "Failed to deactivate receipt type")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Receipt type deactivated successfully", nil)
}

// DeleteReceiptType hard-deletes an unreferenced receipt category
func (h *BillingHandler) DeleteReceiptType(c echo.Context) error {
	session := middleware.GetSession(c)

	typeID, err := uuid.Parse(c.Param("typeID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid receipt type ID")
	}

	if err := h.billingUC.DeleteReceiptType(c.Request().Context(), session, typeID); err != nil {
		return billingErrorResponse(c, err, "Failed to delete receipt type")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Receipt type deleted successfully", nil)
}

// GetGroupCosts returns the caller's group cost summary
func (h *BillingHandler) GetGroupCosts(c echo.Context) error {
	session := middleware.GetSession(c)

	costs, err := h.billingUC.GetGroupCosts(c.Request().Context(), session)
	if err != nil {
		return billingErrorResponse(c, err, "Failed to load group costs")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", costs)
}

// GetDriverCosts returns the per-driver summaries of the caller's group
func (h *BillingHandler) GetDriverCosts(c echo.Context) error {
	session := middleware.GetSession(c)

	costs, err := h.billingUC.GetDriverCosts(c.Request().Context(), session)
	if err != nil {
		return billingErrorResponse(c, err, "Failed to load driver costs")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", costs)
}

// GetGroupAccount returns balance plus transaction rows
func (h *BillingHandler) GetGroupAccount(c echo.Context) error {
	session := middleware.GetSession(c)

	account, err := h.billingUC.GetGroupAccount(c.Request().Context(), session)
	if err != nil {
		return billingErrorResponse(c, err, "Failed to load group account")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", account)
}

// CheckoutSuccess records a settlement paid through the checkout screen
func (h *BillingHandler) CheckoutSuccess(c echo.Context) error {
	session := middleware.GetSession(c)

	var result models.CheckoutResult
	if err := c.Bind(&result); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	receipt, err := h.billingUC.RecordSettlement(c.Request().Context(), session, result)
	if err != nil {
		return billingErrorResponse(c, err, "Failed to record settlement")
	}

	logger.Info("Settlement recorded",
		logger.String("receipt_id", receipt.ID.String()),
		logger.Float64("amount", receipt.Amount))

	return utils.SuccessResponse(c, http.StatusCreated, "Settlement recorded successfully", receipt)
}

// CheckoutCancel acknowledges an aborted checkout. Nothing is booked.
func (h *BillingHandler) CheckoutCancel(c echo.Context) error {
	session := middleware.GetSession(c)

	logger.Info("Checkout cancelled", logger.String("user_id", session.UserID.String()))

	return utils.SuccessResponse(c, http.StatusOK, "Checkout cancelled", nil)
}

// billingErrorResponse maps domain errors to HTTP responses
func billingErrorResponse(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, billing.ErrAmountNotPositive),
		errors.Is(err, billing.ErrDateInFuture),
		errors.Is(err, billing.ErrLabelRequired),
		errors.Is(err, billing.ErrNoGroup):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, billing.ErrNotReceiptOwner),
		errors.Is(err, billing.ErrDeleteWindowExpired),
		errors.Is(err, billing.ErrForbidden):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, billing.ErrReceiptNotFound), errors.Is(err, billing.ErrTypeNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, billing.ErrTypeInUse):
		return utils.ErrorResponseHandler(c, http.StatusConflict, err.Error())
	default:
		logger.Error(fallback, logger.Err(err))
		return utils.InternalServerErrorResponse(c, fallback)
	}
}
