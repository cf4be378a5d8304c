package messageimpl

import (
	"github.com/orgball2608/socialhub/internal/message"
	"go.uber.org/fx"
)

var Module = fx.Module("message_service",
	fx.Provide(
		fx.Annotate(
			New,
			fx.As(new(message.Service)),
		),
	),
)
