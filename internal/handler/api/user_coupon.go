package api

import (
	"net/http"

	"flash-coupon/internal/domain/issuance"
	reqdto "flash-coupon/internal/handler/dto/request"
	resdto "flash-coupon/internal/handler/dto/response"
	"flash-coupon/internal/usecase/commands"
	"flash-coupon/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserCouponHandler struct {
	ledger commands.LedgerCommands
	q      queries.IssuedCouponQueries
}

func NewUserCouponHandler(ledger commands.LedgerCommands, q queries.IssuedCouponQueries) *UserCouponHandler {
	return &UserCouponHandler{ledger: ledger, q: q}
}

// @Summary My coupons
// @Description Page through a user's issued coupons, newest first. isExpired is computed at read time.
// @Tags user-coupons
// @Produce json
// @Param userId query string true "User ID"
// @Param status query string false "ISSUED, USED or EXPIRED"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} resdto.MyCouponsResponse
// @Failure 400 {object} httperr.Response
// @Router /api/user/coupons/my-coupons [get]
func (h *UserCouponHandler) MyCoupons(c *gin.Context) {
	var query reqdto.MyCouponsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortInvalidRequest(c, err, "Invalid query")
		return
	}
	userID, err := uuid.Parse(query.UserID)
	if err != nil {
		abortInvalidRequest(c, err, "Invalid user id")
		return
	}

	var status *issuance.Status
	if query.Status != "" {
		s, parseErr := issuance.ParseStatus(query.Status)
		if parseErr != nil {
			abortInvalidRequest(c, parseErr, "Invalid status")
			return
		}
		status = &s
	}

	page, err := h.q.ListForUser(c.Request.Context(), userID, status, query.Page, query.Limit)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromIssuedCouponPage(page))
}

// @Summary Use coupon
// @Description Redeem an issued coupon. Checks run owner, used, expired in that order.
// @Tags user-coupons
// @Accept json
// @Produce json
// @Param issuedCouponId path string true "Issued coupon ID"
// @Param request body reqdto.UseCouponRequest true "Use request"
// @Success 200 {object} resdto.UseCouponResponse
// @Failure 400 {object} httperr.Response "ALREADY_USED or RECORD_EXPIRED"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/user/coupons/{issuedCouponId}/use [post]
func (h *UserCouponHandler) Use(c *gin.Context) {
	issuedCouponID, err := uuid.Parse(c.Param("issuedCouponId"))
	if err != nil {
		abortInvalidRequest(c, err, "Invalid issued coupon id")
		return
	}
	var req reqdto.UseCouponRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		abortInvalidRequest(c, bindErr, "Invalid request")
		return
	}
	used, err := h.ledger.Use(c.Request.Context(), issuedCouponID, req.UserID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUsedCoupon(used))
}
