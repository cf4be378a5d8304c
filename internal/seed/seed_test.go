package seed_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orgball2608/socialhub/internal/seed"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestDefault(t *testing.T) {
	data, err := seed.Default(now)
	require.NoError(t, err)

	require.Len(t, data.Users, 6)
	assert.Equal(t, "sarahchen", data.Users[0].Username)
	assert.NotEmpty(t, data.Posts)
	assert.NotEmpty(t, data.Stories)

	for _, p := range data.Posts {
		assert.NotNil(t, p.Hashtags)
		assert.NotNil(t, p.Media)
		assert.False(t, p.CreatedAt.After(now))
	}
	for _, s := range data.Stories {
		assert.Equal(t, 24*time.Hour, s.ExpiresAt.Sub(s.CreatedAt))
	}
}

func TestParseResolvesAges(t *testing.T) {
	raw := []byte(`
posts:
  - id: 1
    authorId: 2
    content: hi
    age: 90m
stories:
  - id: 4
    userId: 2
    media: x.jpg
    age: 25h
`)
	data, err := seed.Parse(raw, now)
	require.NoError(t, err)

	assert.Equal(t, now.Add(-90*time.Minute), data.Posts[0].CreatedAt)
	assert.False(t, data.Stories[0].ActiveAt(now))
}

func TestParseRejectsDuplicateIds(t *testing.T) {
	raw := []byte(`
users:
  - id: 1
    username: a
  - id: 1
    username: b
`)
	_, err := seed.Parse(raw, now)
	assert.ErrorContains(t, err, "duplicated")
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("users:\n  - id: 9\n    username: solo\n"), 0o600))

	data, err := seed.Load(path, now)
	require.NoError(t, err)
	require.Len(t, data.Users, 1)
	assert.Equal(t, 9, data.Users[0].ID)

	_, err = seed.Load(filepath.Join(t.TempDir(), "missing.yaml"), now)
	assert.Error(t, err)
}

func TestDefaultInbox(t *testing.T) {
	data, err := seed.Default(now)
	require.NoError(t, err)

	assert.Equal(t, seed.DefaultViewerID, data.ViewerID)
	assert.NotEmpty(t, data.Notifications)
	require.NotEmpty(t, data.Conversations)
	for _, c := range data.Conversations {
		assert.NotEmpty(t, c.LastMessage, "conversation %d", c.ID)
	}
	assert.Contains(t, data.Posts[0].Content, "#Design")
}

func TestParseRejectsOrphanMessage(t *testing.T) {
	raw := []byte(`
messages:
  - id: 1
    conversationId: 7
    senderId: 2
    content: lost
`)
	_, err := seed.Parse(raw, now)
	assert.ErrorContains(t, err, "unknown conversation")
}
