package userimpl

import (
	"github.com/orgball2608/socialhub/internal/user"
	"go.uber.org/fx"
)

var Module = fx.Module("user_service",
	fx.Provide(
		fx.Annotate(
			New,
			fx.As(new(user.Service)),
		),
	),
)
