package api

import (
	"net/http"

	reqdto "flash-coupon/internal/handler/dto/request"
	resdto "flash-coupon/internal/handler/dto/response"
	"flash-coupon/internal/usecase/commands"
	"flash-coupon/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type IssuanceHandler struct {
	cmds  commands.IssuanceCommands
	stats queries.StatsQueries
}

func NewIssuanceHandler(cmds commands.IssuanceCommands, stats queries.StatsQueries) *IssuanceHandler {
	return &IssuanceHandler{cmds: cmds, stats: stats}
}

// @Summary Issue coupon
// @Description Try to allocate one unit to the user. Every admission outcome is a 200 with a status:
// @Description SUCCESS, DUPLICATED, SOLD_OUT, NOT_STARTED or EXPIRED. remaining is set on SUCCESS only.
// @Description The ledger row is written asynchronously, so my-coupons can lag a SUCCESS briefly.
// @Tags coupons
// @Accept json
// @Produce json
// @Param id path string true "Coupon ID"
// @Param request body reqdto.IssueCouponRequest true "Issue request"
// @Success 200 {object} resdto.IssueResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/coupons/{id}/issue [post]
func (h *IssuanceHandler) Issue(c *gin.Context) {
	couponID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortInvalidRequest(c, err, "Invalid coupon id")
		return
	}
	var req reqdto.IssueCouponRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		abortInvalidRequest(c, bindErr, "Invalid request")
		return
	}
	result, err := h.cmds.Issue(c.Request.Context(), couponID, req.UserID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromIssueResult(couponID, req.UserID, result))
}

// @Summary Issued marker
// @Description Whether the allocation store holds an issued marker for the user
// @Tags coupons
// @Produce json
// @Param id path string true "Coupon ID"
// @Param userId path string true "User ID"
// @Success 200 {object} resdto.IssuedStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/coupons/{id}/issued/{userId} [get]
func (h *IssuanceHandler) HasIssued(c *gin.Context) {
	couponID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortInvalidRequest(c, err, "Invalid coupon id")
		return
	}
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		abortInvalidRequest(c, err, "Invalid user id")
		return
	}
	issued, err := h.stats.HasIssued(c.Request.Context(), couponID, userID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.IssuedStatusResponse{
		CouponID: couponID.String(),
		UserID:   userID.String(),
		Issued:   issued,
	})
}
