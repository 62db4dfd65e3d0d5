package controller

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/ledger/internal/integration/lock"
)

// handleError writes the HTTP response for an error returned by a use case.
// Domain errors keep their code and message; anything else is logged and hidden.
func handleError(ctx *gin.Context, err error) {
	if code, message, ok := domainCode(err); ok {
		ctx.JSON(statusForKind(domainerror.KindOf(err)), dto.ErrorResponse{
			Error: message,
			Code:  code,
		})
		return
	}

	if errors.Is(err, lock.ErrLockTimeout) || errors.Is(err, context.DeadlineExceeded) {
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "The wallet is busy, please retry",
		})
		return
	}

	slog.Error("Request failed",
		"method", ctx.Request.Method,
		"path", ctx.FullPath(),
		"error", err,
	)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusForKind maps a domain error kind to an HTTP status code.
func statusForKind(kind domainerror.ErrorKind) int {
	switch kind {
	case domainerror.KindInvalidArgument:
		return http.StatusBadRequest
	case domainerror.KindNotFound:
		return http.StatusNotFound
	case domainerror.KindInvariantViolation:
		return http.StatusUnprocessableEntity
	case domainerror.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// domainCode extracts the code and message of the first coded domain error in err's chain.
func domainCode(err error) (code, message string, ok bool) {
	var (
		walletErr     *domainerror.WalletError
		entryErr      *domainerror.EntryError
		categoryErr   *domainerror.CategoryError
		creditCardErr *domainerror.CreditCardError
		recurringErr  *domainerror.RecurringError
	)

	switch {
	case errors.As(err, &walletErr):
		return string(walletErr.Code), walletErr.Message, true
	case errors.As(err, &entryErr):
		return string(entryErr.Code), entryErr.Message, true
	case errors.As(err, &categoryErr):
		return string(categoryErr.Code), categoryErr.Message, true
	case errors.As(err, &creditCardErr):
		return string(creditCardErr.Code), creditCardErr.Message, true
	case errors.As(err, &recurringErr):
		return string(recurringErr.Code), recurringErr.Message, true
	default:
		return "", "", false
	}
}

// bindingError writes a 400 response for a malformed request.
func bindingError(ctx *gin.Context, code string, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid request",
		Code:    code,
		Details: err.Error(),
	})
}

// parseID reads a UUID path parameter, writing a 400 response when it is malformed.
func parseID(ctx *gin.Context, param, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(param))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + what + " ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}
