package billing

import "errors"

var (
	// ErrReceiptNotFound is returned when no receipt exists with the given ID
	ErrReceiptNotFound = errors.New("receipt not found")

	// ErrTypeNotFound is returned when no receipt type exists with the given ID
	ErrTypeNotFound = errors.New("receipt type not found")

	// ErrAmountNotPositive is returned when a receipt amount is zero or negative
	ErrAmountNotPositive = errors.New("receipt amount must be positive")

	// ErrDateInFuture is returned when a receipt is dated in the future
	ErrDateInFuture = errors.New("receipt date must not be in the future")

	// ErrDeleteWindowExpired is returned when a non-admin tries to delete a
	// receipt more than 24 hours after it was created
	ErrDeleteWindowExpired = errors.New("receipts can only be deleted within 24 hours of creation")

	// ErrNotReceiptOwner is returned when a non-admin tries to delete
	// someone else's receipt
	ErrNotReceiptOwner = errors.New("only the receipt's creator or an admin may delete it")

	// ErrTypeInUse is returned when a hard delete is attempted on a receipt
	// type that existing receipts reference
	ErrTypeInUse = errors.New("receipt type is referenced by existing receipts")

	// ErrLabelRequired is returned when a receipt type has no label
	ErrLabelRequired = errors.New("receipt type label must not be empty")

	// ErrForbidden is returned when the caller lacks the required capability
	ErrForbidden = errors.New("operation not permitted")

	// ErrNoGroup is returned when the caller is not assigned to a group
	ErrNoGroup = errors.New("user is not assigned to a group")

	// ErrSettlementTypeMissing is returned when the configured settlement
	// receipt type does not exist
	ErrSettlementTypeMissing = errors.New("settlement receipt type is not configured")
)
