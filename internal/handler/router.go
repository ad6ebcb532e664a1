package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"flash-coupon/internal/domain/user"
	"flash-coupon/internal/handler/api"
	"flash-coupon/internal/handler/middleware"
	"flash-coupon/internal/pkg/config"
	"flash-coupon/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	CouponAdmin *api.CouponAdminHandler
	Issuance    *api.IssuanceHandler
	UserCoupon  *api.UserCouponHandler
	User        *api.UserHandler
	Auth        *middleware.AuthMiddleware
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, m *metrics.Metrics, reg *prometheus.Registry, h Handlers) {
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, reg, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.Tracing())
	engine.Use(middleware.Metrics(m))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, reg *prometheus.Registry, h Handlers) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		admin := apiGroup.Group("/admin/coupons")
		admin.Use(h.Auth.RequireAuth(), h.Auth.RequireRoleAtLeast(user.RoleAdmin))
		addRoutes(admin, []route{
			{Method: http.MethodPost, Path: "", Handler: h.CouponAdmin.Create},
			{Method: http.MethodGet, Path: "", Handler: h.CouponAdmin.List},
			{Method: http.MethodPost, Path: "/sync", Handler: h.CouponAdmin.Sync},
			{Method: http.MethodGet, Path: "/:id", Handler: h.CouponAdmin.Get},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.CouponAdmin.Update},
			{Method: http.MethodGet, Path: "/:id/stats", Handler: h.CouponAdmin.Stats},
		})

		addRoutes(apiGroup.Group("/coupons"), []route{
			{Method: http.MethodPost, Path: "/:id/issue", Handler: h.Issuance.Issue},
			{Method: http.MethodGet, Path: "/:id/issued/:userId", Handler: h.Issuance.HasIssued},
		})

		addRoutes(apiGroup.Group("/user/coupons"), []route{
			{Method: http.MethodGet, Path: "/my-coupons", Handler: h.UserCoupon.MyCoupons},
			{Method: http.MethodPost, Path: "/:issuedCouponId/use", Handler: h.UserCoupon.Use},
		})

		addRoutes(apiGroup.Group("/users"), []route{
			{Method: http.MethodPost, Path: "/test", Handler: h.User.CreateTest},
			{Method: http.MethodGet, Path: "", Handler: h.User.List},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
