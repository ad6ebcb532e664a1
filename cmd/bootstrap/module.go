package bootstrap

import (
	"flash-coupon/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	TracingModule,
	DBModule,
	RedisModule,
	JWTModule,
	components.PersistenceModule,
	components.UseCaseModule,
	LedgerModule,
	WorkerModule,
	components.HandlerModule,
)
