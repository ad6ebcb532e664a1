package components

import (
	"flash-coupon/internal/handler"
	"flash-coupon/internal/handler/api"
	"flash-coupon/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCouponAdminHandler,
		api.NewIssuanceHandler,
		api.NewUserCouponHandler,
		api.NewUserHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
