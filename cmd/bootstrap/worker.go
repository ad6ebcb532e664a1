package bootstrap

import (
	"context"
	"log/slog"

	"flash-coupon/internal/pkg/config"
	"flash-coupon/internal/usecase/commands"
	"flash-coupon/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Invoke(StartReconcileScheduler),
)

func StartReconcileScheduler(lc fx.Lifecycle, cfg config.Config, cmds commands.ReconcileCommands, logger *slog.Logger) {
	scheduler := worker.NewReconcileScheduler(cmds, cfg.Reconcile, logger)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			scheduler.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return scheduler.Stop(ctx)
		},
	})
}
