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

type CouponAdminHandler struct {
	cmds      commands.CouponCommands
	reconcile commands.ReconcileCommands
	q         queries.CouponQueries
	stats     queries.StatsQueries
}

func NewCouponAdminHandler(
	cmds commands.CouponCommands,
	reconcile commands.ReconcileCommands,
	q queries.CouponQueries,
	stats queries.StatsQueries,
) *CouponAdminHandler {
	return &CouponAdminHandler{cmds: cmds, reconcile: reconcile, q: q, stats: stats}
}

// @Summary Create coupon
// @Description Create a coupon and seed its remaining counter with the total quantity
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCouponRequest true "Create coupon request"
// @Success 201 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/admin/coupons [post]
func (h *CouponAdminHandler) Create(c *gin.Context) {
	var req reqdto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err, "Invalid request")
		return
	}
	created, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCoupon(created))
}

// @Summary List coupons
// @Description List every coupon with ledger counts and the live remaining counter
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CouponWithStatsResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/admin/coupons [get]
func (h *CouponAdminHandler) List(c *gin.Context) {
	views, err := h.q.ListWithStats(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponWithStatsList(views))
}

// @Summary Get coupon
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 200 {object} resdto.CouponWithStatsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/coupons/{id} [get]
func (h *CouponAdminHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortInvalidRequest(c, err, "Invalid coupon id")
		return
	}
	view, err := h.q.GetWithStats(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponWithStats(view))
}

// @Summary Update coupon
// @Description Change name, discount or window. Quantity and type are fixed at creation.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Param request body reqdto.UpdateCouponRequest true "Fields to change"
// @Success 200 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/coupons/{id} [patch]
func (h *CouponAdminHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortInvalidRequest(c, err, "Invalid coupon id")
		return
	}
	var req reqdto.UpdateCouponRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		abortInvalidRequest(c, bindErr, "Invalid request")
		return
	}
	updated, err := h.cmds.Update(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCoupon(updated))
}

// @Summary Reconcile counters
// @Description Rewrite every remaining counter as max(0, totalQuantity - ledger rows).
// @Description Allocations running at the same time can be overwritten; run it off-peak.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SyncResponse
// @Failure 503 {object} httperr.Response
// @Router /api/admin/coupons/sync [post]
func (h *CouponAdminHandler) Sync(c *gin.Context) {
	result, err := h.reconcile.Reconcile(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SyncResponse{Message: "counters reconciled", Synced: result.Synced})
}

// @Summary Coupon stats
// @Description Ledger counts by status plus the live counter. An unreachable counter reads as 0.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 200 {object} resdto.CouponStatsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/coupons/{id}/stats [get]
func (h *CouponAdminHandler) Stats(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortInvalidRequest(c, err, "Invalid coupon id")
		return
	}
	stats, err := h.stats.StatsFor(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponStats(stats))
}
