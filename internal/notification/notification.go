package notification

import (
	"context"

	"github.com/orgball2608/socialhub/internal/domain"
)

// Kind names notifications in not found errors.
const Kind = "notification"

// Filter selects the notification tab.
type Filter string

const (
	FilterAll      Filter = "all"
	FilterMentions Filter = "mentions"
	FilterLikes    Filter = "likes"
	FilterFollows  Filter = "follows"
)

// ParseFilter accepts the tab names; empty selects every notification.
func ParseFilter(s string) (Filter, bool) {
	switch f := Filter(s); f {
	case "":
		return FilterAll, true
	case FilterAll, FilterMentions, FilterLikes, FilterFollows:
		return f, true
	}
	return "", false
}

// Match reports whether n belongs on the tab. Comments only show under FilterAll.
func (f Filter) Match(n domain.Notification) bool {
	switch f {
	case FilterMentions:
		return n.Type == domain.NotificationMention
	case FilterLikes:
		return n.Type == domain.NotificationLike
	case FilterFollows:
		return n.Type == domain.NotificationFollow
	default:
		return true
	}
}

//go:generate go run go.uber.org/mock/mockgen -source=notification.go -destination=mocks/mock.go
type Service interface {
	// List returns the notifications on the tab, newest first
	List(ctx context.Context, filter Filter) ([]domain.Notification, error)

	// UnreadCount counts unread notifications across every tab
	UnreadCount(ctx context.Context) (int, error)

	MarkRead(ctx context.Context, id int) (domain.Notification, error)

	// MarkAllRead marks every notification read and returns how many were unread
	MarkAllRead(ctx context.Context) (int, error)
}
