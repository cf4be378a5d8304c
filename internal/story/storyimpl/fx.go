package storyimpl

import (
	"github.com/orgball2608/socialhub/internal/story"
	"go.uber.org/fx"
)

var Module = fx.Module("story_service",
	fx.Provide(
		fx.Annotate(
			New,
			fx.As(new(story.Service)),
		),
	),
)
