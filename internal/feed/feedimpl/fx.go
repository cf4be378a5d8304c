package feedimpl

import (
	"context"
	"fmt"

	"github.com/orgball2608/socialhub/internal/feed"
	"github.com/orgball2608/socialhub/pkg/config"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/fx"
)

var Module = fx.Module("feed_service",
	fx.Provide(
		NewPool,
		fx.Annotate(
			New,
			fx.As(new(feed.Service)),
		),
	),
)

// NewPool creates the worker pool that runs the parallel loads behind each feed.
func NewPool(lc fx.Lifecycle, cfg *config.Config) (*ants.Pool, error) {
	pool, err := ants.NewPool(cfg.Feed.WorkerPoolSize, ants.WithPreAlloc(true))
	if err != nil {
		return nil, fmt.Errorf("failed to create worker pool: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			pool.Release()
			return nil
		},
	})
	return pool, nil
}
