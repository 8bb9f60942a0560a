// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/project-ledger/backend/internal/domain/error"
	"github.com/project-ledger/backend/internal/integration/entrypoint/dto"
)

// handleDomainError translates domain errors into HTTP responses.
// Anything unrecognized becomes a 500; the in-progress database
// transaction has already been rolled back by then.
func handleDomainError(ctx *gin.Context, err error) {
	var prjErr *domainerror.ProjectError
	if errors.As(err, &prjErr) {
		ctx.JSON(projectStatusCode(prjErr.Code), dto.ErrorResponse{
			Message: prjErr.Message,
			Code:    string(prjErr.Code),
		})
		return
	}

	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		ctx.JSON(categoryStatusCode(catErr.Code), dto.ErrorResponse{
			Message: catErr.Message,
			Code:    string(catErr.Code),
		})
		return
	}

	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(transactionStatusCode(txnErr.Code), dto.ErrorResponse{
			Message: txnErr.Message,
			Code:    string(txnErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Message: "An internal error occurred",
	})
}

// projectStatusCode maps project error codes to HTTP status codes.
func projectStatusCode(code domainerror.ProjectErrorCode) int {
	switch code {
	case domainerror.ErrCodeProjectNameRequired:
		return http.StatusBadRequest
	case domainerror.ErrCodeProjectNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeProjectNameExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// categoryStatusCode maps category error codes to HTTP status codes.
func categoryStatusCode(code domainerror.CategoryErrorCode) int {
	switch code {
	case domainerror.ErrCodeCategoryFieldsMissing,
		domainerror.ErrCodeInvalidCategoryType:
		return http.StatusBadRequest
	case domainerror.ErrCodeCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCategoryNameExists,
		domainerror.ErrCodeCategoryInUse:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// transactionStatusCode maps transaction error codes to HTTP status codes.
func transactionStatusCode(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionFieldsMissing,
		domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidTxnCategory:
		return http.StatusBadRequest
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
