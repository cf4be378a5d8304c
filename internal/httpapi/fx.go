package httpapi

import (
	"net/http"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/socialhub/internal/ratelimit"
	"github.com/orgball2608/socialhub/pkg/config"
	"go.uber.org/fx"
)

var Module = fx.Module("http_api",
	fx.Provide(
		NewMetrics,
		NewRouter,
		NewServer,
		fx.Annotate(
			func(cfg *config.Config, clock clockwork.Clock) *ratelimit.InMemoryLimiter {
				return ratelimit.NewInMemoryLimiter(clock, cfg.RateLimit.Requests, cfg.RateLimit.Per, cfg.RateLimit.Burst)
			},
			fx.As(new(ratelimit.Limiter)),
		),
	),
	fx.Invoke(func(*http.Server) {}),
)
