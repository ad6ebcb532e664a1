package api

import (
	"net/http"

	"flash-coupon/internal/domain/issuance"
	"flash-coupon/internal/handler/httperr"
	"flash-coupon/internal/pkg/errs"
	"flash-coupon/internal/usecase/commands"
	"flash-coupon/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// Error codes clients branch on.
const (
	codeNotFound     = "NOT_FOUND"
	codeForbidden    = "FORBIDDEN"
	codeAlreadyUsed  = "ALREADY_USED"
	codeExpired      = "RECORD_EXPIRED"
	codeValidation   = "VALIDATION_ERROR"
	codeConflict     = "CONFLICT"
	codeUnavailable  = "SERVICE_UNAVAILABLE"
	codeInternal     = "INTERNAL_ERROR"
	codeInvalidInput = "INVALID_REQUEST"
)

type errorMapping struct {
	target error
	status int
	code   string
	msg    string
}

var errorMappings = []errorMapping{
	{commands.ErrCouponNotFound, http.StatusNotFound, codeNotFound, "Coupon not found"},
	{queries.ErrCouponNotFound, http.StatusNotFound, codeNotFound, "Coupon not found"},
	{commands.ErrUserNotFound, http.StatusNotFound, codeNotFound, "User not found"},
	{commands.ErrIssuedCouponNotFound, http.StatusNotFound, codeNotFound, "Issued coupon not found"},
	{issuance.ErrNotOwner, http.StatusForbidden, codeForbidden, "Coupon belongs to another user"},
	{issuance.ErrAlreadyUsed, http.StatusBadRequest, codeAlreadyUsed, "Coupon already used"},
	{issuance.ErrExpired, http.StatusBadRequest, codeExpired, "Coupon expired"},
	{commands.ErrDuplicateEmail, http.StatusConflict, codeConflict, "Email already registered"},
	{errs.ErrDomainValidation, http.StatusBadRequest, codeValidation, "Validation failed"},
	{errs.ErrAllocationStoreUnavailable, http.StatusServiceUnavailable, codeUnavailable, "Allocation store unavailable"},
}

// abortWithUsecaseError maps usecase sentinels to HTTP responses. Unknown errors are 500.
func abortWithUsecaseError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			var detail any
			if m.code == codeValidation {
				detail = err.Error()
			}
			httperr.AbortWithCode(c, m.status, err, m.code, m.msg, detail)
			return
		}
	}
	httperr.AbortWithCode(c, http.StatusInternalServerError, err, codeInternal, "Internal server error", nil)
}

func abortInvalidRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithCode(c, http.StatusBadRequest, err, codeInvalidInput, msg, nil)
}
