package store

import (
	"errors"
	"fmt"
)

// Not-found sentinels. Callers translate these into 404 responses.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrUserNotFound    = errors.New("user not found")
)

// ValidationError reports caller input that cannot be acted on, such as
// missing checkout fields or an empty cart.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NewValidationError builds a ValidationError from a format string.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// InsufficientStockError reports a requested quantity above the
// product's available stock.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	if e.ProductName != "" {
		return fmt.Sprintf("insufficient stock for %s", e.ProductName)
	}
	return fmt.Sprintf("insufficient stock for product %s", e.ProductID)
}
