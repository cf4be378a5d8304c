package app

import (
	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/socialhub/internal/feed/feedimpl"
	"github.com/orgball2608/socialhub/internal/httpapi"
	"github.com/orgball2608/socialhub/internal/latency"
	"github.com/orgball2608/socialhub/internal/message/messageimpl"
	"github.com/orgball2608/socialhub/internal/notification/notificationimpl"
	"github.com/orgball2608/socialhub/internal/post/postimpl"
	"github.com/orgball2608/socialhub/internal/scheduler"
	"github.com/orgball2608/socialhub/internal/seed"
	"github.com/orgball2608/socialhub/internal/story/storyimpl"
	"github.com/orgball2608/socialhub/internal/user/userimpl"
	"github.com/orgball2608/socialhub/pkg/config"
	"github.com/orgball2608/socialhub/pkg/logger"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		clockwork.NewRealClock,
		seed.New,
	),
	latency.Module,
	userimpl.Module,
	postimpl.Module,
	storyimpl.Module,
	feedimpl.Module,
	notificationimpl.Module,
	messageimpl.Module,
	httpapi.Module,
	scheduler.Module,
)
