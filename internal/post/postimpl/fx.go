package postimpl

import (
	"github.com/orgball2608/socialhub/internal/post"
	"go.uber.org/fx"
)

var Module = fx.Module("post_service",
	fx.Provide(
		fx.Annotate(
			New,
			fx.As(new(post.Service)),
		),
	),
)
