package domain

import "time"

type NotificationType string

const (
	NotificationLike    NotificationType = "like"
	NotificationFollow  NotificationType = "follow"
	NotificationComment NotificationType = "comment"
	NotificationMention NotificationType = "mention"
)

// Notification tells the viewer that another user interacted with them.
// ActorID is the user who acted.
type Notification struct {
	ID           int              `json:"Id" yaml:"id"`
	Type         NotificationType `json:"type" yaml:"type"`
	ActorID      int              `json:"actorId" yaml:"actorId"`
	Action       string           `json:"action" yaml:"action"`
	Content      string           `json:"content,omitempty" yaml:"content"`
	OriginalPost string           `json:"originalPost,omitempty" yaml:"originalPost"`
	IsRead       bool             `json:"isRead" yaml:"isRead"`
	CreatedAt    time.Time        `json:"createdAt" yaml:"createdAt"`
}

func (n Notification) Clone() Notification {
	return n
}
