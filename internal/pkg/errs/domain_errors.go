package errs

import "errors"

// Sentinel errors shared across usecase layers
var (
	// Shop errors
	ErrShopNotFound        = errors.New("shop not found")
	ErrShopAlreadyExists   = errors.New("shop already exists for this owner")
	ErrInvalidShopCategory = errors.New("invalid shop category")

	// Order errors
	ErrOrderNotFound      = errors.New("order not found")
	ErrEmptyOrderItems    = errors.New("no order items")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrNegativePricing    = errors.New("pricing must not be negative")
	ErrOrderConflict      = errors.New("order was modified concurrently")
	ErrForbiddenOrder     = errors.New("actor is not allowed to act on this order")

	// Product errors
	ErrProductNotFound  = errors.New("product not found")
	ErrForbiddenProduct = errors.New("actor is not allowed to act on this product")

	// User errors
	ErrEmailAlreadyUsed = errors.New("email already in use")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
