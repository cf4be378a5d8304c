package seed

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/socialhub/internal/domain"
	"github.com/orgball2608/socialhub/pkg/config"
	"github.com/orgball2608/socialhub/pkg/logger"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var embedded []byte

// DefaultViewerID is the signed-in user when the seed does not name one.
const DefaultViewerID = 1

// Data is the initial content of every collection.
type Data struct {
	// ViewerID is the signed-in user: the sender of outgoing messages and
	// the recipient of notifications.
	ViewerID      int
	Users         []domain.User
	Posts         []domain.Post
	Stories       []domain.Story
	Notifications []domain.Notification
	Conversations []domain.Conversation
	Messages      []domain.Message
}

type file struct {
	ViewerID      int                 `yaml:"viewerId"`
	Users         []domain.User       `yaml:"users"`
	Posts         []postEntry         `yaml:"posts"`
	Stories       []storyEntry        `yaml:"stories"`
	Notifications []notificationEntry `yaml:"notifications"`
	Conversations []conversationEntry `yaml:"conversations"`
	Messages      []messageEntry      `yaml:"messages"`
}

// Timestamps in the seed file are ages relative to load time so the
// content looks fresh whenever the process starts.
type postEntry struct {
	ID       int           `yaml:"id"`
	AuthorID int           `yaml:"authorId"`
	Content  string        `yaml:"content"`
	Location string        `yaml:"location"`
	Hashtags []string      `yaml:"hashtags"`
	Media    []string      `yaml:"media"`
	Likes    int           `yaml:"likes"`
	Comments int           `yaml:"comments"`
	Shares   int           `yaml:"shares"`
	Age      time.Duration `yaml:"age"`
}

type storyEntry struct {
	ID        int           `yaml:"id"`
	UserID    int           `yaml:"userId"`
	Media     string        `yaml:"media"`
	ViewCount int           `yaml:"viewCount"`
	Age       time.Duration `yaml:"age"`
}

type notificationEntry struct {
	ID           int                     `yaml:"id"`
	Type         domain.NotificationType `yaml:"type"`
	ActorID      int                     `yaml:"actorId"`
	Action       string                  `yaml:"action"`
	Content      string                  `yaml:"content"`
	OriginalPost string                  `yaml:"originalPost"`
	IsRead       bool                    `yaml:"isRead"`
	Age          time.Duration           `yaml:"age"`
}

type conversationEntry struct {
	ID     int `yaml:"id"`
	UserID int `yaml:"userId"`
	Unread int `yaml:"unread"`
}

type messageEntry struct {
	ID             int           `yaml:"id"`
	ConversationID int           `yaml:"conversationId"`
	SenderID       int           `yaml:"senderId"`
	Content        string        `yaml:"content"`
	Age            time.Duration `yaml:"age"`
}

// Parse decodes seed yaml, resolving ages against now.
func Parse(raw []byte, now time.Time) (*Data, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to decode seed: %w", err)
	}

	data := &Data{
		ViewerID:      f.ViewerID,
		Users:         f.Users,
		Posts:         make([]domain.Post, 0, len(f.Posts)),
		Stories:       make([]domain.Story, 0, len(f.Stories)),
		Notifications: make([]domain.Notification, 0, len(f.Notifications)),
		Conversations: make([]domain.Conversation, 0, len(f.Conversations)),
		Messages:      make([]domain.Message, 0, len(f.Messages)),
	}
	if data.ViewerID == 0 {
		data.ViewerID = DefaultViewerID
	}
	if err := checkIDs("user", len(f.Users), func(i int) int { return f.Users[i].ID }); err != nil {
		return nil, err
	}
	if err := checkIDs("post", len(f.Posts), func(i int) int { return f.Posts[i].ID }); err != nil {
		return nil, err
	}
	if err := checkIDs("story", len(f.Stories), func(i int) int { return f.Stories[i].ID }); err != nil {
		return nil, err
	}
	if err := checkIDs("notification", len(f.Notifications), func(i int) int { return f.Notifications[i].ID }); err != nil {
		return nil, err
	}
	if err := checkIDs("conversation", len(f.Conversations), func(i int) int { return f.Conversations[i].ID }); err != nil {
		return nil, err
	}
	if err := checkIDs("message", len(f.Messages), func(i int) int { return f.Messages[i].ID }); err != nil {
		return nil, err
	}

	for _, p := range f.Posts {
		if p.Hashtags == nil {
			p.Hashtags = []string{}
		}
		if p.Media == nil {
			p.Media = []string{}
		}
		data.Posts = append(data.Posts, domain.Post{
			ID:        p.ID,
			AuthorID:  p.AuthorID,
			Content:   p.Content,
			Location:  p.Location,
			Hashtags:  p.Hashtags,
			Media:     p.Media,
			Likes:     p.Likes,
			Comments:  p.Comments,
			Shares:    p.Shares,
			CreatedAt: now.Add(-p.Age).UTC(),
		})
	}

	for _, s := range f.Stories {
		created := now.Add(-s.Age).UTC()
		data.Stories = append(data.Stories, domain.Story{
			ID:        s.ID,
			UserID:    s.UserID,
			Media:     s.Media,
			ViewCount: s.ViewCount,
			CreatedAt: created,
			ExpiresAt: created.Add(domain.StoryLifetime),
		})
	}

	for _, n := range f.Notifications {
		data.Notifications = append(data.Notifications, domain.Notification{
			ID:           n.ID,
			Type:         n.Type,
			ActorID:      n.ActorID,
			Action:       n.Action,
			Content:      n.Content,
			OriginalPost: n.OriginalPost,
			IsRead:       n.IsRead,
			CreatedAt:    now.Add(-n.Age).UTC(),
		})
	}

	threads := make(map[int]int, len(f.Conversations))
	for i, c := range f.Conversations {
		threads[c.ID] = i
		data.Conversations = append(data.Conversations, domain.Conversation{
			ID:     c.ID,
			UserID: c.UserID,
			Unread: c.Unread,
		})
	}

	// The conversation preview is the newest message of its thread.
	for _, m := range f.Messages {
		i, ok := threads[m.ConversationID]
		if !ok {
			return nil, fmt.Errorf("seed message %d refers to unknown conversation %d", m.ID, m.ConversationID)
		}
		msg := domain.Message{
			ID:             m.ID,
			ConversationID: m.ConversationID,
			SenderID:       m.SenderID,
			Content:        m.Content,
			IsOwn:          m.SenderID == data.ViewerID,
			CreatedAt:      now.Add(-m.Age).UTC(),
		}
		data.Messages = append(data.Messages, msg)

		conv := &data.Conversations[i]
		if conv.LastMessageAt.IsZero() || msg.CreatedAt.After(conv.LastMessageAt) {
			conv.LastMessage = msg.Content
			conv.LastMessageAt = msg.CreatedAt
		}
	}

	return data, nil
}

func checkIDs(kind string, n int, id func(int) int) error {
	seen := make(map[int]bool, n)
	for i := 0; i < n; i++ {
		v := id(i)
		if v <= 0 {
			return fmt.Errorf("seed %s at index %d has invalid id %d", kind, i, v)
		}
		if seen[v] {
			return fmt.Errorf("seed %s id %d is duplicated", kind, v)
		}
		seen[v] = true
	}
	return nil
}

// Default returns the embedded seed data.
func Default(now time.Time) (*Data, error) {
	return Parse(embedded, now)
}

// Load reads the seed from path, or the embedded seed when path is empty.
func Load(path string, now time.Time) (*Data, error) {
	if path == "" {
		return Default(now)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return Parse(raw, now)
}

func New(cfg *config.Config, clock clockwork.Clock, log logger.Logger) (*Data, error) {
	data, err := Load(cfg.Seed.Path, clock.Now())
	if err != nil {
		return nil, err
	}
	log.Info("Seed data loaded",
		"users", len(data.Users),
		"posts", len(data.Posts),
		"stories", len(data.Stories),
		"notifications", len(data.Notifications),
		"conversations", len(data.Conversations),
		"source", sourceName(cfg.Seed.Path),
	)
	return data, nil
}

func sourceName(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
