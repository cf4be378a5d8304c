package notificationimpl

import (
	"github.com/orgball2608/socialhub/internal/notification"
	"go.uber.org/fx"
)

var Module = fx.Module("notification_service",
	fx.Provide(
		fx.Annotate(
			New,
			fx.As(new(notification.Service)),
		),
	),
)
