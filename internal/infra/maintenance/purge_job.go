// Package maintenance runs background storage hygiene jobs.
package maintenance

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"

	"vetclinic/config"
	"vetclinic/internal/domain/lifecycle"
	"vetclinic/internal/domain/repository"
)

const defaultPurgeSpec = "0 3 * * *"

// PurgeJob deletes used and expired password-reset tokens on a schedule.
// Expiry is a query-time predicate, so the purge is hygiene, not correctness.
type PurgeJob struct {
	tokenRepo repository.ResetTokenRepository
	cron      *cron.Cron
	spec      string
	logger    *slog.Logger
}

// PurgeJobParams holds dependencies for the purge job, injected by Fx.
type PurgeJobParams struct {
	fx.In
	fx.Lifecycle

	TokenRepo repository.ResetTokenRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewPurgeJob creates the purge job and hooks it into the app lifecycle.
func NewPurgeJob(params PurgeJobParams) (*PurgeJob, error) {
	spec := defaultPurgeSpec
	if params.Config.Maintenance != nil && params.Config.Maintenance.ResetTokenPurgeCron != "" {
		spec = params.Config.Maintenance.ResetTokenPurgeCron
	}

	job := &PurgeJob{
		tokenRepo: params.TokenRepo,
		cron:      cron.New(),
		spec:      spec,
		logger:    params.Logger.With(slog.String("job", "reset_token_purge")),
	}

	if _, err := job.cron.AddFunc(spec, job.runOnce); err != nil {
		return nil, errors.Wrapf(err, "invalid purge cron spec %q", spec)
	}

	params.Append(fx.Hook{
		OnStart: job.start,
		OnStop:  job.stop,
	})

	return job, nil
}

func (j *PurgeJob) start(ctx context.Context) error {
	j.logger.Info("Starting reset token purge job", slog.String("spec", j.spec))
	j.cron.Start()

	return nil
}

func (j *PurgeJob) stop(ctx context.Context) error {
	j.logger.Info("Stopping reset token purge job")

	stopCtx := j.cron.Stop()
	select {
	case <-stopCtx.Done():
		return nil
	case <-time.After(lifecycle.DefaultTimeout):
		return errors.New("timed out waiting for purge job to stop")
	}
}

func (j *PurgeJob) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	removed, err := j.tokenRepo.PurgeExpired(ctx, time.Now())
	if err != nil {
		j.logger.Error("Reset token purge failed", slog.Any("error", err))

		return
	}

	j.logger.Info("Reset token purge completed", slog.Int64("removed", removed))
}
