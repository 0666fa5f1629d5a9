package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound        = errors.New("resource not found")
	ErrDuplicateItem   = errors.New("item already registered in this category")
	ErrUnknownItem     = errors.New("item not registered in this category")
	ErrUnitMismatch    = errors.New("unit does not match the catalog unit for this item")
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	ErrInvalidInput    = errors.New("invalid input")
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailExists     = errors.New("email already registered")
	ErrUnauthorized    = errors.New("unauthorized")

	// ErrReconciliation means an item's ledger no longer satisfies
	// currentStock + inField == totalPurchased. A violation indicates a write
	// path that bypassed the store; reads must abort rather than return a
	// misleading snapshot.
	ErrReconciliation = errors.New("stock reconciliation failed")
)
