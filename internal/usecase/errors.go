package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrOutOfStock      = errors.New("product out of stock")
	ErrInvalidInput    = errors.New("invalid input")
)

// ErrorKind names the outcome of a failed mutation.
type ErrorKind string

const (
	KindNotFound     ErrorKind = "NOT_FOUND"
	KindOutOfStock   ErrorKind = "OUT_OF_STOCK"
	KindInvalidInput ErrorKind = "INVALID_INPUT"
)

// MutationError is the failure outcome of a mutation use case.
//
// Message is meant for display as-is. errors.Is matches the sentinel that
// corresponds to Kind, so callers can branch either way.
type MutationError struct {
	Kind      ErrorKind
	ProductID string
	Message   string
}

func (e *MutationError) Error() string {
	return e.Message
}

func (e *MutationError) Is(target error) bool {
	switch target {
	case ErrProductNotFound:
		return e.Kind == KindNotFound
	case ErrOutOfStock:
		return e.Kind == KindOutOfStock
	case ErrInvalidInput:
		return e.Kind == KindInvalidInput
	}
	return false
}

// KindOf extracts the mutation outcome from err.
func KindOf(err error) (ErrorKind, bool) {
	var me *MutationError
	if errors.As(err, &me) {
		return me.Kind, true
	}
	return "", false
}

func notFound(productID, message string) *MutationError {
	return &MutationError{Kind: KindNotFound, ProductID: productID, Message: message}
}

func outOfStock(productID string) *MutationError {
	return &MutationError{Kind: KindOutOfStock, ProductID: productID, Message: "Product is out of stock"}
}

func invalidInput(productID, format string, args ...any) *MutationError {
	return &MutationError{Kind: KindInvalidInput, ProductID: productID, Message: fmt.Sprintf(format, args...)}
}
