// Package worker runs the periodic maintenance jobs next to the API server.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"gatekeeper/config"
	"gatekeeper/internal/delivery"
	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/delivery/worker/handler"
	"gatekeeper/internal/domain/lifecycle"
	"gatekeeper/internal/errors"
	"gatekeeper/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Job is one periodic task. Run reports how many records it touched.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) (int64, error)
}

type workerServer struct {
	logger *slog.Logger
	jobs   []Job

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc                 fx.Lifecycle
	Cfg                *config.Config
	Logger             *slog.Logger
	MaintenanceHandler *handler.MaintenanceHandler
}

// NewServer creates the maintenance worker
func NewServer(params ServerParams) (delivery.Delivery, error) {
	var sweepInterval, purgeInterval time.Duration
	if params.Cfg.RateLimit != nil {
		sweepInterval = params.Cfg.RateLimit.SweepInterval
	}
	if params.Cfg.Audit != nil {
		purgeInterval = params.Cfg.Audit.PurgeInterval
	}

	jobs := []Job{
		{Name: "rate_limit_sweep", Interval: sweepInterval, Run: params.MaintenanceHandler.SweepRateLimits},
		{Name: "revocation_sweep", Interval: sweepInterval, Run: params.MaintenanceHandler.SweepRevocations},
		{Name: "audit_purge", Interval: purgeInterval, Run: params.MaintenanceHandler.PurgeAuditEvents},
	}

	srv := newWorkerServer(params.Logger, jobs)
	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newWorkerServer(logger *slog.Logger, jobs []Job) *workerServer {
	ctx, cancel := context.WithCancel(context.Background())

	return &workerServer{
		logger: logger.With(slog.String("component", "worker")),
		jobs:   jobs,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Serve starts every job with a positive interval and blocks until the worker stops.
func (s *workerServer) Serve(_ context.Context) error {
	for _, job := range s.jobs {
		if job.Interval <= 0 {
			s.logger.Info("Worker job disabled", slog.String("job", job.Name))

			continue
		}

		s.logger.Info("Worker job scheduled",
			slog.String("job", job.Name),
			slog.String("interval", util.FormatDuration(job.Interval)),
		)
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.loop(job)
		}()
	}
	s.logger.Info("Worker started", slog.Int("jobs", len(s.jobs)))

	<-s.ctx.Done()

	return nil
}

func (s *workerServer) loop(job Job) {
	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.runOnce(job)
		}
	}
}

func (s *workerServer) runOnce(job Job) {
	runID := uuid.NewString()
	logger := s.logger.With(slog.String("job", job.Name), slog.String("runId", runID))
	ctx := deliverycontext.WithLogger(deliverycontext.WithRequestID(s.ctx, runID), logger)

	start := time.Now()
	affected, err := job.Run(ctx)
	if err != nil {
		logger.Error("Worker job failed", slog.Any("error", err))

		return
	}
	logger.Debug("Worker job finished",
		slog.Int64("affected", affected),
		slog.Duration("elapsed", time.Since(start)),
	)
}

// stop cancels the job loops and waits for in-flight runs to finish
func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down worker")
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-shutdownCtx.Done():
		return errors.Wrap(shutdownCtx.Err(), "worker shutdown timed out")
	}
}
