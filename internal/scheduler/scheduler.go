package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/socialhub/internal/story"
	"github.com/orgball2608/socialhub/pkg/config"
	"github.com/orgball2608/socialhub/pkg/logger"
	"go.uber.org/fx"
)

const reportJobName = "stories_report"

type Opts struct {
	fx.In

	Config  *config.Config
	Clock   clockwork.Clock
	Stories story.Service
	Logger  logger.Logger
}

// StoriesReport periodically logs how many stories are still active.
// It only reads; expired stories stay in the store.
type StoriesReport struct {
	stories  story.Service
	logger   logger.Logger
	interval time.Duration
	cron     gocron.Scheduler
}

func New(opts Opts) (*StoriesReport, error) {
	log := opts.Logger.WithComponent("Scheduler")

	cron, err := gocron.NewScheduler(
		gocron.WithClock(opts.Clock),
		gocron.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	r := &StoriesReport{
		stories:  opts.Stories,
		logger:   log,
		interval: opts.Config.Stories.ReportInterval,
		cron:     cron,
	}

	_, err = cron.NewJob(
		gocron.DurationJob(r.interval),
		gocron.NewTask(func(ctx context.Context) {
			if err := r.Report(ctx); err != nil {
				r.logger.Error("Stories report failed", "error", err)
			}
		}),
		gocron.WithName(reportJobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule stories report: %w", err)
	}

	return r, nil
}

func (r *StoriesReport) Report(ctx context.Context) error {
	active, total, err := r.stories.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count stories: %w", err)
	}
	r.logger.Info("Stories report", "active", active, "expired", total-active, "total", total)
	return nil
}

func (r *StoriesReport) Start() {
	r.logger.Info("Starting stories report", "interval", r.interval)
	r.cron.Start()
}

func (r *StoriesReport) Shutdown() error {
	r.logger.Info("Stopping stories report")
	if err := r.cron.Shutdown(); err != nil {
		return fmt.Errorf("failed to shut down scheduler: %w", err)
	}
	return nil
}
