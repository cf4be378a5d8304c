package notificationimpl

import (
	"context"
	"time"

	"github.com/orgball2608/socialhub/internal/domain"
	"github.com/orgball2608/socialhub/internal/latency"
	"github.com/orgball2608/socialhub/internal/notification"
	"github.com/orgball2608/socialhub/internal/seed"
	"github.com/orgball2608/socialhub/internal/store"
	"github.com/orgball2608/socialhub/pkg/errors"
	"github.com/orgball2608/socialhub/pkg/logger"
	"go.uber.org/fx"
)

const (
	listDelay  = 250 * time.Millisecond
	countDelay = 100 * time.Millisecond
	markDelay  = 200 * time.Millisecond
)

type Opts struct {
	fx.In

	Seed    *seed.Data
	Latency latency.Injector
	Logger  logger.Logger
}

type NotificationImpl struct {
	notifications *store.Collection[domain.Notification]
	latency       latency.Injector
	logger        logger.Logger
}

func New(opts Opts) *NotificationImpl {
	var notifications []domain.Notification
	if opts.Seed != nil {
		notifications = opts.Seed.Notifications
	}
	return &NotificationImpl{
		notifications: store.NewCollection(notifications,
			func(n *domain.Notification) *int { return &n.ID },
			domain.Notification.Clone,
		),
		latency: opts.Latency,
		logger:  opts.Logger.WithComponent("NotificationService"),
	}
}

var _ notification.Service = (*NotificationImpl)(nil)

func (s *NotificationImpl) List(ctx context.Context, filter notification.Filter) ([]domain.Notification, error) {
	if err := s.latency.Delay(ctx, listDelay); err != nil {
		return nil, err
	}
	return s.notifications.Filter(filter.Match, 0), nil
}

func (s *NotificationImpl) UnreadCount(ctx context.Context) (int, error) {
	if err := s.latency.Delay(ctx, countDelay); err != nil {
		return 0, err
	}
	unread := s.notifications.Filter(func(n domain.Notification) bool { return !n.IsRead }, 0)
	return len(unread), nil
}

func (s *NotificationImpl) MarkRead(ctx context.Context, id int) (domain.Notification, error) {
	if err := s.latency.Delay(ctx, markDelay); err != nil {
		return domain.Notification{}, err
	}
	n, ok, err := s.notifications.Update(id, func(n *domain.Notification) error {
		n.IsRead = true
		return nil
	})
	if err != nil {
		return domain.Notification{}, err
	}
	if !ok {
		return domain.Notification{}, errors.NotFound(notification.Kind, id)
	}
	return n, nil
}

func (s *NotificationImpl) MarkAllRead(ctx context.Context) (int, error) {
	if err := s.latency.Delay(ctx, markDelay); err != nil {
		return 0, err
	}
	marked := s.notifications.UpdateAll(func(n *domain.Notification) bool {
		if n.IsRead {
			return false
		}
		n.IsRead = true
		return true
	})
	s.logger.Info("Notifications marked read", "count", marked)
	return marked, nil
}
