package message

import (
	"context"

	"github.com/orgball2608/socialhub/internal/domain"
)

// ConversationKind names conversations in not found errors.
const ConversationKind = "conversation"

//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=mocks/mock.go
type Service interface {
	// ListConversations returns the viewer's conversations, most recent activity first
	ListConversations(ctx context.Context) ([]domain.Conversation, error)

	// Messages returns the thread of a conversation, oldest first
	Messages(ctx context.Context, conversationID int) ([]domain.Message, error)

	// Send appends a message from the viewer, refreshes the conversation
	// preview and clears its unread counter
	Send(ctx context.Context, conversationID int, content string) (domain.Message, error)
}
