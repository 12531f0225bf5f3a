// Package sweeper cancels pending requests nobody claimed within the
// configured TTL. It is the implicit-timeout half of the cancellation path;
// explicit customer cancellation lives in the request commands.
package sweeper

import (
	"context"
	"log/slog"

	"shopdispatch/internal/infra/db"
	"shopdispatch/internal/pkg/clock"
	"shopdispatch/internal/pkg/config"
	"shopdispatch/internal/usecase/shared"

	"github.com/robfig/cron/v3"
)

type Sweeper struct {
	cfg         config.SweepConfig
	uow         shared.UnitOfWork
	requestRepo shared.RequestRepository
	metrics     shared.MetricsSink
	clock       clock.Clock
	logger      *slog.Logger
	cron        *cron.Cron
}

func New(
	cfg config.SweepConfig,
	uow shared.UnitOfWork,
	requestRepo shared.RequestRepository,
	metrics shared.MetricsSink,
	clock clock.Clock,
	logger *slog.Logger,
) *Sweeper {
	return &Sweeper{
		cfg:         cfg,
		uow:         uow,
		requestRepo: requestRepo,
		metrics:     metrics,
		clock:       clock,
		logger:      logger,
	}
}

func (s *Sweeper) Start() error {
	if !s.cfg.Enabled {
		s.logger.Info("stale request sweeper disabled")
		return nil
	}

	s.cron = cron.New()
	if _, err := s.cron.AddFunc(s.cfg.Schedule, func() {
		if err := s.SweepOnce(context.Background()); err != nil {
			s.logger.Error("sweep failed", "error", err.Error())
		}
	}); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("stale request sweeper started", "schedule", s.cfg.Schedule, "pending_ttl", s.cfg.PendingTTL.String())
	return nil
}

func (s *Sweeper) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

// SweepOnce cancels every pending request older than the TTL. It reuses the
// same predicated-update discipline as the arbiter, so it can never race a
// concurrent accept into an inconsistent state: each row goes to exactly one
// of them.
func (s *Sweeper) SweepOnce(ctx context.Context) error {
	cutoff := s.clock.Now().Add(-s.cfg.PendingTTL)

	var cancelled int64
	err := s.uow.WithDB(ctx, func(ctx context.Context, tx db.DBTX) error {
		n, err := s.requestRepo.CancelStalePending(ctx, tx, cutoff)
		if err != nil {
			return err
		}
		cancelled = n
		return nil
	})
	if err != nil {
		return err
	}

	if cancelled > 0 {
		s.metrics.RecordSweepCancelled(cancelled)
		s.logger.Info("cancelled stale pending requests", "count", cancelled, "cutoff", cutoff)
	}
	return nil
}
