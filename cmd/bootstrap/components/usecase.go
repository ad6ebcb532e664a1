package components

import (
	"log/slog"

	"flash-coupon/internal/pkg/clock"
	"flash-coupon/internal/pkg/config"
	"flash-coupon/internal/pkg/metrics"
	"flash-coupon/internal/usecase"
	"flash-coupon/internal/usecase/commands"
	"flash-coupon/internal/usecase/queries"
	"flash-coupon/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCouponCommands,
		commands.NewIssuanceCommands,
		commands.NewLedgerCommands,
		commands.NewUserCommands,
		func(uow shared.UnitOfWork, store shared.AllocationStore, cfg config.Config, m *metrics.Metrics, logger *slog.Logger) commands.ReconcileCommands {
			return commands.NewReconcileCommands(uow, store, cfg.Reconcile, m, logger)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCouponQueries,
		queries.NewIssuedCouponQueries,
		queries.NewStatsQueries,
		queries.NewUserQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
