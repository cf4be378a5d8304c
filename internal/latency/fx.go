package latency

import (
	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/socialhub/pkg/config"
	"github.com/orgball2608/socialhub/pkg/logger"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	func(cfg *config.Config, clock clockwork.Clock, log logger.Logger) Injector {
		if !cfg.Latency.Enabled {
			log.Info("Artificial latency disabled")
			return Off{}
		}
		return NewClock(clock)
	},
)
