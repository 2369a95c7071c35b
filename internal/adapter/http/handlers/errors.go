package handlers

import (
	"context"
	"errors"
	"net/http"

	"storefront/internal/usecase"
	"storefront/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest   = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errProductNotFound  = pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	errRequestCancelled = pkg.NewDomainErrorSimple("REQUEST_CANCELLED", "Request cancelled before completion", http.StatusRequestTimeout)
)

// mapMutationError turns a use case failure into an AppError. The
// MutationError message is shown to the shopper verbatim.
func mapMutationError(err error) *pkg.AppError {
	var me *usecase.MutationError
	if errors.As(err, &me) {
		switch me.Kind {
		case usecase.KindNotFound:
			return pkg.NewDomainError("PRODUCT_NOT_FOUND", me.Message, err, http.StatusNotFound)
		case usecase.KindOutOfStock:
			return pkg.NewDomainError("OUT_OF_STOCK", me.Message, err, http.StatusConflict)
		case usecase.KindInvalidInput:
			return pkg.NewDomainError("INVALID_INPUT", me.Message, err, http.StatusBadRequest)
		}
	}

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return pkg.NewDomainError(errRequestCancelled.Code, errRequestCancelled.Message, err, errRequestCancelled.HTTPStatus)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func abortWithError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		_ = c.Error(appErr)
	}
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
