package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"flash-coupon/internal/pkg/config"
	"flash-coupon/internal/usecase/commands"
)

// ReconcileScheduler runs Reconcile on a fixed interval. A zero interval disables it.
type ReconcileScheduler struct {
	cmds     commands.ReconcileCommands
	interval time.Duration
	logger   *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewReconcileScheduler(cmds commands.ReconcileCommands, cfg config.ReconcileConfig, logger *slog.Logger) *ReconcileScheduler {
	return &ReconcileScheduler{
		cmds:     cmds,
		interval: cfg.Interval,
		logger:   logger,
	}
}

func (s *ReconcileScheduler) Start() {
	if s.interval <= 0 {
		s.logger.Info("reconcile scheduler disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.loop(ctx)
	}()
	s.logger.Info("reconcile scheduler started", "interval", s.interval)
}

func (s *ReconcileScheduler) Stop(ctx context.Context) error {
	if s.cancel == nil {
		return nil
	}
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("reconcile scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *ReconcileScheduler) loop(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *ReconcileScheduler) runOnce(ctx context.Context) {
	started := time.Now()
	result, err := s.cmds.Reconcile(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Error("scheduled reconcile failed", "error", err)
		return
	}
	s.logger.Info("scheduled reconcile completed",
		"synced", result.Synced,
		"duration", time.Since(started),
	)
}
