package bootstrap

import (
	"context"
	"log/slog"

	"flash-coupon/internal/infra/ledgerqueue"
	"flash-coupon/internal/pkg/config"
	"flash-coupon/internal/pkg/metrics"
	"flash-coupon/internal/usecase/commands"
	"flash-coupon/internal/usecase/shared"

	"go.uber.org/fx"
)

var LedgerModule = fx.Module("ledger",
	fx.Provide(
		fx.Annotate(
			NewLedgerQueue,
			fx.As(new(shared.IssuanceQueue)),
		),
	),
)

// NewLedgerQueue starts the ledger workers with the app and drains them on stop.
func NewLedgerQueue(
	lc fx.Lifecycle,
	cfg config.Config,
	appender commands.LedgerCommands,
	m *metrics.Metrics,
	logger *slog.Logger,
) ledgerqueue.Queue {
	var queue ledgerqueue.Queue
	switch cfg.Ledger.Driver {
	case config.LedgerDriverKafka:
		queue = ledgerqueue.NewKafkaQueue(
			ledgerqueue.NewKafkaWriter(cfg.Kafka),
			ledgerqueue.NewKafkaReader(cfg.Kafka),
			appender, cfg.Ledger, m, logger,
		)
	default:
		queue = ledgerqueue.NewMemoryQueue(appender, cfg.Ledger, m, logger)
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			queue.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return queue.Stop(ctx)
		},
	})
	return queue
}
