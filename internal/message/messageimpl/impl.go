package messageimpl

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/socialhub/internal/domain"
	"github.com/orgball2608/socialhub/internal/latency"
	"github.com/orgball2608/socialhub/internal/message"
	"github.com/orgball2608/socialhub/internal/seed"
	"github.com/orgball2608/socialhub/internal/store"
	"github.com/orgball2608/socialhub/pkg/errors"
	"github.com/orgball2608/socialhub/pkg/logger"
	"go.uber.org/fx"
)

const (
	listDelay   = 300 * time.Millisecond
	threadDelay = 250 * time.Millisecond
	sendDelay   = 350 * time.Millisecond
)

type Opts struct {
	fx.In

	Seed    *seed.Data
	Latency latency.Injector
	Clock   clockwork.Clock
	Logger  logger.Logger
}

type MessageImpl struct {
	viewerID      int
	conversations *store.Collection[domain.Conversation]
	messages      *store.Collection[domain.Message]
	latency       latency.Injector
	clock         clockwork.Clock
	logger        logger.Logger
}

func New(opts Opts) *MessageImpl {
	var (
		viewerID      = seed.DefaultViewerID
		conversations []domain.Conversation
		messages      []domain.Message
	)
	if opts.Seed != nil {
		if opts.Seed.ViewerID != 0 {
			viewerID = opts.Seed.ViewerID
		}
		conversations = opts.Seed.Conversations
		messages = opts.Seed.Messages
	}
	return &MessageImpl{
		viewerID: viewerID,
		conversations: store.NewCollection(conversations,
			func(c *domain.Conversation) *int { return &c.ID },
			domain.Conversation.Clone,
		),
		messages: store.NewCollection(messages,
			func(m *domain.Message) *int { return &m.ID },
			domain.Message.Clone,
		),
		latency: opts.Latency,
		clock:   opts.Clock,
		logger:  opts.Logger.WithComponent("MessageService"),
	}
}

var _ message.Service = (*MessageImpl)(nil)

func (s *MessageImpl) ListConversations(ctx context.Context) ([]domain.Conversation, error) {
	if err := s.latency.Delay(ctx, listDelay); err != nil {
		return nil, err
	}
	conversations := s.conversations.All()
	slices.SortStableFunc(conversations, func(a, b domain.Conversation) int {
		return b.LastMessageAt.Compare(a.LastMessageAt)
	})
	return conversations, nil
}

func (s *MessageImpl) Messages(ctx context.Context, conversationID int) ([]domain.Message, error) {
	if err := s.latency.Delay(ctx, threadDelay); err != nil {
		return nil, err
	}
	if _, ok := s.conversations.Get(conversationID); !ok {
		return nil, errors.NotFound(message.ConversationKind, conversationID)
	}
	thread := s.messages.Filter(func(m domain.Message) bool {
		return m.ConversationID == conversationID
	}, 0)
	slices.SortStableFunc(thread, func(a, b domain.Message) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return thread, nil
}

func (s *MessageImpl) Send(ctx context.Context, conversationID int, content string) (domain.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Message{}, errors.Invalid("message must not be empty")
	}
	if err := s.latency.Delay(ctx, sendDelay); err != nil {
		return domain.Message{}, err
	}

	now := s.clock.Now().UTC()
	var sent domain.Message
	// The message is stored while the conversation is locked, so a missing
	// conversation never gains a message.
	_, ok, err := s.conversations.Update(conversationID, func(c *domain.Conversation) error {
		sent = s.messages.Insert(func(id int) domain.Message {
			return domain.Message{
				ID:             id,
				ConversationID: conversationID,
				SenderID:       s.viewerID,
				Content:        content,
				IsOwn:          true,
				CreatedAt:      now,
			}
		}, store.Back)
		c.LastMessage = content
		c.LastMessageAt = now
		c.Unread = 0
		return nil
	})
	if err != nil {
		return domain.Message{}, err
	}
	if !ok {
		return domain.Message{}, errors.NotFound(message.ConversationKind, conversationID)
	}

	s.logger.Info("Message sent", "conversation_id", conversationID, "message_id", sent.ID)
	return sent, nil
}
