package purchase

import "errors"

// Validation errors are raised before any store operation; the handler maps
// them to 400.
var (
	ErrInvalidQuantity        = errors.New("quantity must be a positive integer")
	ErrInvalidPrice           = errors.New("price per unit must be positive")
	ErrCollectionNameRequired = errors.New("collection name is required")
	ErrBrandRequired          = errors.New("brand is required")
	ErrInvalidPaymentStatus   = errors.New("payment status must be unpaid, paid or refunded")

	ErrPurchaseNotFound = errors.New("purchase not found")
)
